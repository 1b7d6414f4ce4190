package flags

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
	oprpc "github.com/mantlenetworkio/mantle-relayer/op-service/rpc"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

const EnvVarPrefix = "OP_RELAYER"

func prefixEnvVars(name string) []string {
	return opservice.PrefixEnvVar(EnvVarPrefix, name)
}

var (
	// Required Flags
	L1EthRpcFlag = &cli.StringFlag{
		Name:     txmgr.L1RPCFlagName,
		Usage:    "The RPC URL for the L1 chain the messages are relayed to",
		EnvVars:  prefixEnvVars("L1_ETH_RPC"),
		Required: true,
	}
	MultiMessageRelayerAddressFlag = &cli.StringFlag{
		Name:     "multi-message-relayer-address",
		Usage:    "The address of the OVM_L1MultiMessageRelayer contract",
		EnvVars:  prefixEnvVars("MULTI_MESSAGE_RELAYER_ADDRESS"),
		Required: true,
	}

	// Optional Flags
	AddressManagerAddressFlag = &cli.StringFlag{
		Name:    "address-manager-address",
		Usage:   "The address of the Lib_AddressManager contract. Either this or --address-book must be set",
		EnvVars: prefixEnvVars("ADDRESS_MANAGER_ADDRESS"),
	}
	AddressBookFlag = &cli.PathFlag{
		Name:    "address-book",
		Usage:   "Path to a TOML address book used instead of the on-chain address manager",
		EnvVars: prefixEnvVars("ADDRESS_BOOK"),
	}
	ResolverCacheTTLFlag = &cli.DurationFlag{
		Name:    "resolver-cache-ttl",
		Usage:   "How long on-chain address manager lookups are cached",
		Value:   time.Minute,
		EnvVars: prefixEnvVars("RESOLVER_CACHE_TTL"),
	}
	PollIntervalFlag = &cli.DurationFlag{
		Name:    "poll-interval",
		Usage:   "How frequently to check the pending queue for messages to relay",
		Value:   5 * time.Second,
		EnvVars: prefixEnvVars("POLL_INTERVAL"),
	}
	MaxBatchSizeFlag = &cli.IntFlag{
		Name:    "max-batch-size",
		Usage:   "Maximum number of messages per batchRelayMessages transaction",
		Value:   20,
		EnvVars: prefixEnvVars("MAX_BATCH_SIZE"),
	}
	MaxPendingFlag = &cli.IntFlag{
		Name:    "max-pending",
		Usage:   "Maximum number of messages waiting to be relayed. 0 means unbounded",
		Value:   10_000,
		EnvVars: prefixEnvVars("MAX_PENDING"),
	}
	MaxRetriesFlag = &cli.IntFlag{
		Name:    "max-retries",
		Usage:   "Number of failed attempts after which a message is dropped. 0 means never",
		Value:   5,
		EnvVars: prefixEnvVars("MAX_RETRIES"),
	}
	SubmitIntervalFlag = &cli.DurationFlag{
		Name:    "submit-interval",
		Usage:   "Minimum time between two batch transactions. 0 disables the limit",
		Value:   0,
		EnvVars: prefixEnvVars("SUBMIT_INTERVAL"),
	}
	DataDirFlag = &cli.PathFlag{
		Name:    "data-dir",
		Usage:   "Directory of the relayed message store. Empty keeps the store in memory",
		EnvVars: prefixEnvVars("DATA_DIR"),
	}
)

var requiredFlags = []cli.Flag{
	L1EthRpcFlag,
	MultiMessageRelayerAddressFlag,
}

var optionalFlags = []cli.Flag{
	AddressManagerAddressFlag,
	AddressBookFlag,
	ResolverCacheTTLFlag,
	PollIntervalFlag,
	MaxBatchSizeFlag,
	MaxPendingFlag,
	MaxRetriesFlag,
	SubmitIntervalFlag,
	DataDirFlag,
}

func init() {
	optionalFlags = append(optionalFlags, oprpc.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, opmetrics.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, txmgr.CLIFlags(EnvVarPrefix)...)

	Flags = append(requiredFlags, optionalFlags...)
}

// Flags contains the list of configuration options available to the binary.
var Flags []cli.Flag

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
