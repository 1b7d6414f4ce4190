package relayer

import (
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/flags"
	"github.com/mantlenetworkio/mantle-relayer/op-service/cliapp"
	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
	oprpc "github.com/mantlenetworkio/mantle-relayer/op-service/rpc"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func validConfig() *CLIConfig {
	txCfg := txmgr.NewCLIConfig("http://localhost:8545", txmgr.DefaultRelayerFlagValues)
	txCfg.PrivateKey = testPrivateKey
	return &CLIConfig{
		L1EthRpc:                   "http://localhost:8545",
		MultiMessageRelayerAddress: relayerAddr.Hex(),
		AddressManagerAddress:      "0x00000000000000000000000000000000000000a1",
		ResolverCacheTTL:           time.Minute,
		PollInterval:               time.Second,
		MaxBatchSize:               20,
		MaxPending:                 100,
		MaxRetries:                 5,
		TxMgrConfig:                txCfg,
		RPCConfig:                  oprpc.DefaultCLIConfig(),
		LogConfig:                  oplog.DefaultCLIConfig(),
		MetricsConfig:              opmetrics.DefaultCLIConfig(),
	}
}

func TestValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Check())

	cfg := validConfig()
	cfg.AddressManagerAddress = ""
	cfg.AddressBook = "addresses.toml"
	require.NoError(t, cfg.Check())
}

func TestConfigCheckErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CLIConfig)
		msg    string
	}{
		{"bad relayer address", func(c *CLIConfig) { c.MultiMessageRelayerAddress = "0x12" }, "multi message relayer address"},
		{"no resolver", func(c *CLIConfig) { c.AddressManagerAddress = "" }, "is required"},
		{"two resolvers", func(c *CLIConfig) { c.AddressBook = "addresses.toml" }, "only one of"},
		{"bad address manager", func(c *CLIConfig) { c.AddressManagerAddress = "nope" }, "address manager address"},
		{"poll interval", func(c *CLIConfig) { c.PollInterval = 0 }, "poll interval"},
		{"batch size", func(c *CLIConfig) { c.MaxBatchSize = 0 }, "max batch size"},
		{"max pending", func(c *CLIConfig) { c.MaxPending = -1 }, "max pending"},
		{"max retries", func(c *CLIConfig) { c.MaxRetries = -1 }, "max retries"},
		{"submit interval", func(c *CLIConfig) { c.SubmitInterval = -time.Second }, "submit interval"},
		{"no key", func(c *CLIConfig) { c.TxMgrConfig.PrivateKey = "" }, "private key or a mnemonic"},
		{"metrics port", func(c *CLIConfig) {
			c.MetricsConfig.Enabled = true
			c.MetricsConfig.ListenPort = 70000
		}, "invalid metrics port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Check()
			require.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestConfigCheckCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.PollInterval = 0
	cfg.MaxBatchSize = 0
	cfg.MaxRetries = -1
	err := cfg.Check()
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 3)
}

func TestNewConfigFromFlags(t *testing.T) {
	var cfg *CLIConfig
	app := cli.NewApp()
	app.Flags = cliapp.ProtectFlags(flags.Flags)
	app.Action = func(ctx *cli.Context) error {
		cfg = NewConfig(ctx)
		return nil
	}
	require.NoError(t, app.Run([]string{
		"op-relayer",
		"--l1-eth-rpc=http://localhost:8545",
		"--multi-message-relayer-address=" + relayerAddr.Hex(),
		"--address-book=addresses.toml",
		"--max-batch-size=7",
		"--private-key=" + testPrivateKey,
	}))
	require.Equal(t, "http://localhost:8545", cfg.L1EthRpc)
	require.Equal(t, "http://localhost:8545", cfg.TxMgrConfig.L1RPCURL)
	require.Equal(t, relayerAddr.Hex(), cfg.MultiMessageRelayerAddress)
	require.Equal(t, "addresses.toml", cfg.AddressBook)
	require.Equal(t, 7, cfg.MaxBatchSize)
	require.Equal(t, 5*time.Second, cfg.PollInterval)
	require.Equal(t, 5, cfg.MaxRetries)
	require.Equal(t, txmgr.DefaultRelayerFlagValues.NumConfirmations, cfg.TxMgrConfig.NumConfirmations)
	require.NoError(t, cfg.Check())
}
