package main

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/flags"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/metrics"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/relayer"
	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	"github.com/mantlenetworkio/mantle-relayer/op-service/cliapp"
	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
	"github.com/mantlenetworkio/mantle-relayer/op-service/metrics/doc"
)

var (
	Version   = "v0.0.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	oplog.SetupDefaults()

	app := cli.NewApp()
	app.Flags = cliapp.ProtectFlags(flags.Flags)
	app.Version = opservice.FormatVersion(Version, GitCommit, GitDate, "")
	app.Name = "op-relayer"
	app.Usage = "L1 Multi Message Relayer"
	app.Description = "Service for relaying batches of L2 to L1 messages through the OVM_L1MultiMessageRelayer"
	app.Action = cliapp.LifecycleCmd(relayer.Main(Version))
	app.Commands = []*cli.Command{
		{
			Name:        "doc",
			Subcommands: doc.NewSubcommands(metrics.NewMetrics("default")),
		},
		calldataCommand,
		statusCommand,
		submitCommand,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Crit("Application failed", "message", err)
	}
}
