package txmgr

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
	"github.com/urfave/cli/v2"

	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	opcrypto "github.com/mantlenetworkio/mantle-relayer/op-service/crypto"
	"github.com/mantlenetworkio/mantle-relayer/op-service/dial"
)

const (
	// Duplicated L1 RPC flag
	L1RPCFlagName = "l1-eth-rpc"
	// Key Management Flags (also have signer client flags)
	MnemonicFlagName   = "mnemonic"
	HDPathFlagName     = "hd-path"
	PrivateKeyFlagName = "private-key"
	// TxMgr Flags (new + legacy + some shared flags)
	NumConfirmationsFlagName     = "num-confirmations"
	FeeLimitMultiplierFlagName   = "fee-limit-multiplier"
	MinTipCapFlagName            = "txmgr.min-tip-cap"
	MinBaseFeeFlagName           = "txmgr.min-basefee"
	NetworkTimeoutFlagName       = "network-timeout"
	ResubmissionTimeoutFlagName  = "resubmission-timeout"
	TxSendTimeoutFlagName        = "txmgr.send-timeout"
	ReceiptQueryIntervalFlagName = "txmgr.receipt-query-interval"
)

type DefaultFlagValues struct {
	NumConfirmations     uint64
	FeeLimitMultiplier   uint64
	MinTipCapGwei        float64
	MinBaseFeeGwei       float64
	NetworkTimeout       time.Duration
	ResubmissionTimeout  time.Duration
	TxSendTimeout        time.Duration
	ReceiptQueryInterval time.Duration
}

var DefaultRelayerFlagValues = DefaultFlagValues{
	NumConfirmations:     uint64(3),
	FeeLimitMultiplier:   uint64(5),
	MinTipCapGwei:        1.0,
	MinBaseFeeGwei:       1.0,
	NetworkTimeout:       10 * time.Second,
	ResubmissionTimeout:  48 * time.Second,
	TxSendTimeout:        10 * time.Minute,
	ReceiptQueryInterval: 12 * time.Second,
}

func CLIFlags(envPrefix string) []cli.Flag {
	return CLIFlagsWithDefaults(envPrefix, DefaultRelayerFlagValues)
}

func CLIFlagsWithDefaults(envPrefix string, defaults DefaultFlagValues) []cli.Flag {
	prefixEnvVars := func(name string) []string {
		return opservice.PrefixEnvVar(envPrefix, name)
	}
	return []cli.Flag{
		&cli.StringFlag{
			Name:    MnemonicFlagName,
			Usage:   "The mnemonic used to derive the relayer wallet",
			EnvVars: prefixEnvVars("MNEMONIC"),
		},
		&cli.StringFlag{
			Name:    HDPathFlagName,
			Usage:   "The HD path used to derive the relayer wallet from the mnemonic. The mnemonic flag must also be set.",
			EnvVars: prefixEnvVars("HD_PATH"),
		},
		&cli.StringFlag{
			Name:    PrivateKeyFlagName,
			Usage:   "The private key to use with the service. Must not be used with mnemonic.",
			EnvVars: prefixEnvVars("PRIVATE_KEY"),
		},
		&cli.Uint64Flag{
			Name:    NumConfirmationsFlagName,
			Usage:   "Number of confirmations which we will wait after sending a transaction",
			Value:   defaults.NumConfirmations,
			EnvVars: prefixEnvVars("NUM_CONFIRMATIONS"),
		},
		&cli.Uint64Flag{
			Name:    FeeLimitMultiplierFlagName,
			Usage:   "The multiplier applied to the suggested tip and base fee to cap the fee cap of a transaction",
			Value:   defaults.FeeLimitMultiplier,
			EnvVars: prefixEnvVars("TXMGR_FEE_LIMIT_MULTIPLIER"),
		},
		&cli.Float64Flag{
			Name:    MinTipCapFlagName,
			Usage:   "Enforces a minimum tip cap (in GWei) to use when determining tx fees. 1 GWei by default.",
			Value:   defaults.MinTipCapGwei,
			EnvVars: prefixEnvVars("TXMGR_MIN_TIP_CAP"),
		},
		&cli.Float64Flag{
			Name:    MinBaseFeeFlagName,
			Usage:   "Enforces a minimum base fee (in GWei) to assume when determining tx fees. 1 GWei by default.",
			Value:   defaults.MinBaseFeeGwei,
			EnvVars: prefixEnvVars("TXMGR_MIN_BASEFEE"),
		},
		&cli.DurationFlag{
			Name:    NetworkTimeoutFlagName,
			Usage:   "Timeout for all network operations",
			Value:   defaults.NetworkTimeout,
			EnvVars: prefixEnvVars("NETWORK_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:    ResubmissionTimeoutFlagName,
			Usage:   "Duration we will wait before resubmitting a transaction to L1 with bumped fees",
			Value:   defaults.ResubmissionTimeout,
			EnvVars: prefixEnvVars("RESUBMISSION_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:    TxSendTimeoutFlagName,
			Usage:   "Timeout for sending transactions. If 0 it is disabled.",
			Value:   defaults.TxSendTimeout,
			EnvVars: prefixEnvVars("TXMGR_TX_SEND_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:    ReceiptQueryIntervalFlagName,
			Usage:   "Frequency to poll for receipts",
			Value:   defaults.ReceiptQueryInterval,
			EnvVars: prefixEnvVars("TXMGR_RECEIPT_QUERY_INTERVAL"),
		},
	}
}

type CLIConfig struct {
	L1RPCURL             string
	Mnemonic             string
	HDPath               string
	PrivateKey           string
	NumConfirmations     uint64
	FeeLimitMultiplier   uint64
	MinTipCapGwei        float64
	MinBaseFeeGwei       float64
	NetworkTimeout       time.Duration
	ResubmissionTimeout  time.Duration
	TxSendTimeout        time.Duration
	ReceiptQueryInterval time.Duration
}

func NewCLIConfig(l1RPCURL string, defaults DefaultFlagValues) CLIConfig {
	return CLIConfig{
		L1RPCURL:             l1RPCURL,
		NumConfirmations:     defaults.NumConfirmations,
		FeeLimitMultiplier:   defaults.FeeLimitMultiplier,
		MinTipCapGwei:        defaults.MinTipCapGwei,
		MinBaseFeeGwei:       defaults.MinBaseFeeGwei,
		NetworkTimeout:       defaults.NetworkTimeout,
		ResubmissionTimeout:  defaults.ResubmissionTimeout,
		TxSendTimeout:        defaults.TxSendTimeout,
		ReceiptQueryInterval: defaults.ReceiptQueryInterval,
	}
}

func (m CLIConfig) Check() error {
	if m.L1RPCURL == "" {
		return errors.New("must provide a L1 RPC url")
	}
	if m.NumConfirmations == 0 {
		return errors.New("NumConfirmations must not be 0")
	}
	if m.NetworkTimeout == 0 {
		return errors.New("must provide NetworkTimeout")
	}
	if m.FeeLimitMultiplier == 0 {
		return errors.New("must provide FeeLimitMultiplier")
	}
	if m.ResubmissionTimeout == 0 {
		return errors.New("must provide ResubmissionTimeout")
	}
	if m.MinBaseFeeGwei < m.MinTipCapGwei {
		return fmt.Errorf("minBaseFee smaller than minTipCap, have %f < %f",
			m.MinBaseFeeGwei, m.MinTipCapGwei)
	}
	if m.ReceiptQueryInterval == 0 {
		return errors.New("must provide ReceiptQueryInterval")
	}
	if m.PrivateKey != "" && m.Mnemonic != "" {
		return errors.New("can only provide at most one of: [private key, mnemonic]")
	}
	if m.PrivateKey == "" && m.Mnemonic == "" {
		return errors.New("must provide either a private key or a mnemonic")
	}
	return nil
}

func ReadCLIConfig(ctx *cli.Context) CLIConfig {
	return CLIConfig{
		L1RPCURL:             ctx.String(L1RPCFlagName),
		Mnemonic:             ctx.String(MnemonicFlagName),
		HDPath:               ctx.String(HDPathFlagName),
		PrivateKey:           ctx.String(PrivateKeyFlagName),
		NumConfirmations:     ctx.Uint64(NumConfirmationsFlagName),
		FeeLimitMultiplier:   ctx.Uint64(FeeLimitMultiplierFlagName),
		MinTipCapGwei:        ctx.Float64(MinTipCapFlagName),
		MinBaseFeeGwei:       ctx.Float64(MinBaseFeeFlagName),
		NetworkTimeout:       ctx.Duration(NetworkTimeoutFlagName),
		ResubmissionTimeout:  ctx.Duration(ResubmissionTimeoutFlagName),
		TxSendTimeout:        ctx.Duration(TxSendTimeoutFlagName),
		ReceiptQueryInterval: ctx.Duration(ReceiptQueryIntervalFlagName),
	}
}

// NewConfig dials the L1 endpoint, resolves the chain ID and builds the signer.
func NewConfig(cfg CLIConfig, l log.Logger) (*Config, error) {
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l1, err := dial.DialEthClientWithTimeout(context.Background(), dial.DefaultDialTimeout, l, cfg.L1RPCURL)
	if err != nil {
		return nil, fmt.Errorf("could not dial eth client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.NetworkTimeout)
	defer cancel()
	chainID, err := l1.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not dial fetch L1 chain ID: %w", err)
	}

	signerFactory, from, err := opcrypto.SignerFactoryFromConfig(l, cfg.PrivateKey, cfg.Mnemonic, cfg.HDPath)
	if err != nil {
		return nil, fmt.Errorf("could not init signer: %w", err)
	}

	return &Config{
		Backend:              l1,
		ChainID:              chainID,
		Signer:               signerFactory(chainID),
		From:                 from,
		FeeLimitMultiplier:   cfg.FeeLimitMultiplier,
		MinTipCap:            GweiToWei(cfg.MinTipCapGwei),
		MinBaseFee:           GweiToWei(cfg.MinBaseFeeGwei),
		NetworkTimeout:       cfg.NetworkTimeout,
		ResubmissionTimeout:  cfg.ResubmissionTimeout,
		TxSendTimeout:        cfg.TxSendTimeout,
		ReceiptQueryInterval: cfg.ReceiptQueryInterval,
		NumConfirmations:     cfg.NumConfirmations,
	}, nil
}

// GweiToWei converts a float amount of GWei into Wei, truncating fractions of a Wei.
func GweiToWei(gwei float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(gwei), big.NewFloat(params.GWei)).Int(nil)
	return wei
}

// Config houses parameters for altering the behavior of a SimpleTxManager.
type Config struct {
	Backend ETHBackend

	// ChainID is the chain ID of the L1 chain.
	ChainID *big.Int

	// The multiplier applied to fee suggestions to put a hard limit on fee increases.
	FeeLimitMultiplier uint64

	// Minimum tip cap (in Wei) to enforce when determining tx fees.
	MinTipCap *big.Int
	// Minimum base fee (in Wei) to assume when determining tx fees.
	MinBaseFee *big.Int

	// NetworkTimeout is the allowed duration for a single network request.
	NetworkTimeout time.Duration

	// ResubmissionTimeout is the interval at which, if no previously
	// published transaction has been mined, the new tx with a bumped gas
	// price will be published. Bumping stops at the fee limit.
	ResubmissionTimeout time.Duration

	// TxSendTimeout is how long to wait for sending a transaction.
	// By default it is unbounded.
	TxSendTimeout time.Duration

	// ReceiptQueryInterval is the interval at which the tx manager will
	// query the backend to check for confirmations after a tx has been published.
	ReceiptQueryInterval time.Duration

	// NumConfirmations specifies how many blocks are need to consider a
	// transaction confirmed.
	NumConfirmations uint64

	Signer opcrypto.SignerFn
	From   common.Address
}

func (m *Config) Check() error {
	if m.Backend == nil {
		return errors.New("must provide the Backend")
	}
	if m.NumConfirmations == 0 {
		return errors.New("NumConfirmations must not be 0")
	}
	if m.NetworkTimeout == 0 {
		return errors.New("must provide NetworkTimeout")
	}
	if m.FeeLimitMultiplier == 0 {
		return errors.New("must provide FeeLimitMultiplier")
	}
	if m.ResubmissionTimeout == 0 {
		return errors.New("must provide ResubmissionTimeout")
	}
	if m.ReceiptQueryInterval == 0 {
		return errors.New("must provide ReceiptQueryInterval")
	}
	if m.Signer == nil {
		return errors.New("must provide the Signer")
	}
	if m.ChainID == nil {
		return errors.New("must provide the ChainID")
	}
	return nil
}
