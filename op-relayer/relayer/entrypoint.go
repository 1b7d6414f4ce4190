package relayer

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/flags"
	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	"github.com/mantlenetworkio/mantle-relayer/op-service/cliapp"
	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
)

// Main is the entrypoint into the batch relayer service.
func Main(version string) cliapp.LifecycleAction {
	return func(cliCtx *cli.Context, _ context.CancelCauseFunc) (cliapp.Lifecycle, error) {
		if err := flags.CheckRequired(cliCtx); err != nil {
			return nil, err
		}
		cfg := NewConfig(cliCtx)
		if err := cfg.Check(); err != nil {
			return nil, fmt.Errorf("invalid CLI flags: %w", err)
		}

		l := oplog.NewLogger(oplog.AppOut(cliCtx), cfg.LogConfig)
		oplog.SetGlobalLogHandler(l.Handler())
		opservice.ValidateEnvVars(flags.EnvVarPrefix, flags.Flags, l)

		l.Info("initializing batch relayer")
		return BatchRelayerServiceFromCLIConfig(cliCtx.Context, version, cfg, l)
	}
}
