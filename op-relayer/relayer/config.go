package relayer

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/flags"
	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
	oprpc "github.com/mantlenetworkio/mantle-relayer/op-service/rpc"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

type CLIConfig struct {
	L1EthRpc                   string
	MultiMessageRelayerAddress string
	AddressManagerAddress      string
	AddressBook                string
	ResolverCacheTTL           time.Duration
	PollInterval               time.Duration
	MaxBatchSize               int
	MaxPending                 int
	MaxRetries                 int
	SubmitInterval             time.Duration
	DataDir                    string
	TxMgrConfig                txmgr.CLIConfig
	RPCConfig                  oprpc.CLIConfig
	LogConfig                  oplog.CLIConfig
	MetricsConfig              opmetrics.CLIConfig
}

// Check reports every invalid setting at once.
func (c *CLIConfig) Check() error {
	var result *multierror.Error
	if err := c.RPCConfig.Check(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.MetricsConfig.Check(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.TxMgrConfig.Check(); err != nil {
		result = multierror.Append(result, err)
	}

	if _, err := opservice.ParseAddress(c.MultiMessageRelayerAddress); err != nil {
		result = multierror.Append(result, fmt.Errorf("multi message relayer address: %w", err))
	}
	switch {
	case c.AddressManagerAddress == "" && c.AddressBook == "":
		result = multierror.Append(result, errors.New("one of the address manager address or the address book is required"))
	case c.AddressManagerAddress != "" && c.AddressBook != "":
		result = multierror.Append(result, errors.New("only one of the address manager address or the address book may be set"))
	case c.AddressManagerAddress != "":
		if _, err := opservice.ParseAddress(c.AddressManagerAddress); err != nil {
			result = multierror.Append(result, fmt.Errorf("address manager address: %w", err))
		}
	}
	if c.PollInterval <= 0 {
		result = multierror.Append(result, errors.New("poll interval must be positive"))
	}
	if c.MaxBatchSize <= 0 {
		result = multierror.Append(result, errors.New("max batch size must be positive"))
	}
	if c.MaxPending < 0 {
		result = multierror.Append(result, errors.New("max pending must not be negative"))
	}
	if c.MaxRetries < 0 {
		result = multierror.Append(result, errors.New("max retries must not be negative"))
	}
	if c.SubmitInterval < 0 {
		result = multierror.Append(result, errors.New("submit interval must not be negative"))
	}
	return result.ErrorOrNil()
}

func NewConfig(ctx *cli.Context) *CLIConfig {
	return &CLIConfig{
		// Required Flags
		L1EthRpc:                   ctx.String(flags.L1EthRpcFlag.Name),
		MultiMessageRelayerAddress: ctx.String(flags.MultiMessageRelayerAddressFlag.Name),
		TxMgrConfig:                txmgr.ReadCLIConfig(ctx),

		// Optional Flags
		AddressManagerAddress: ctx.String(flags.AddressManagerAddressFlag.Name),
		AddressBook:           ctx.Path(flags.AddressBookFlag.Name),
		ResolverCacheTTL:      ctx.Duration(flags.ResolverCacheTTLFlag.Name),
		PollInterval:          ctx.Duration(flags.PollIntervalFlag.Name),
		MaxBatchSize:          ctx.Int(flags.MaxBatchSizeFlag.Name),
		MaxPending:            ctx.Int(flags.MaxPendingFlag.Name),
		MaxRetries:            ctx.Int(flags.MaxRetriesFlag.Name),
		SubmitInterval:        ctx.Duration(flags.SubmitIntervalFlag.Name),
		DataDir:               ctx.Path(flags.DataDirFlag.Name),
		RPCConfig:             oprpc.ReadCLIConfig(ctx),
		LogConfig:             oplog.ReadCLIConfig(ctx),
		MetricsConfig:         opmetrics.ReadCLIConfig(ctx),
	}
}
