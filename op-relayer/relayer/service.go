package relayer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/metrics"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/store"
	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	"github.com/mantlenetworkio/mantle-relayer/op-service/cliapp"
	"github.com/mantlenetworkio/mantle-relayer/op-service/dial"
	"github.com/mantlenetworkio/mantle-relayer/op-service/httputil"
	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
	oprpc "github.com/mantlenetworkio/mantle-relayer/op-service/rpc"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

var ErrAlreadyStopped = errors.New("already stopped")

type BatchRelayerDriver interface {
	Start() error
	Stop() error
	RelayNow(ctx context.Context) (RoundResult, error)
}

type BatchRelayerService struct {
	Log     log.Logger
	Metrics metrics.Metricer

	BatchRelayerConfig

	TxManager txmgr.TxManager
	Client    *ethclient.Client
	Resolver  addressmanager.Resolver
	Store     *store.Store
	Queue     *Queue

	driver *BatchRelayer

	Version string

	metricsSrv *httputil.HTTPServer
	rpcServer  *oprpc.Server

	balanceMetricer io.Closer

	stopped atomic.Bool
}

func BatchRelayerServiceFromCLIConfig(ctx context.Context, version string, cfg *CLIConfig, log log.Logger) (*BatchRelayerService, error) {
	var bs BatchRelayerService
	if err := bs.initFromCLIConfig(ctx, version, cfg, log); err != nil {
		return nil, errors.Join(err, bs.Stop(ctx))
	}
	return &bs, nil
}

func (bs *BatchRelayerService) initFromCLIConfig(ctx context.Context, version string, cfg *CLIConfig, log log.Logger) error {
	bs.Version = version
	bs.Log = log

	bs.initMetrics(cfg)

	if err := bs.initBatchRelayerConfig(cfg); err != nil {
		return err
	}
	if err := bs.initRPCClients(ctx, cfg); err != nil {
		return err
	}
	if err := bs.initResolver(cfg); err != nil {
		return fmt.Errorf("failed to init resolver: %w", err)
	}
	if err := bs.initStore(cfg); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	bs.Queue = NewQueue(cfg.MaxPending, cfg.MaxRetries)
	if err := bs.initTxManager(cfg); err != nil {
		return fmt.Errorf("failed to init tx manager: %w", err)
	}
	if err := bs.initMetricsServer(cfg); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	if err := bs.initDriver(); err != nil {
		return fmt.Errorf("failed to init driver: %w", err)
	}
	if err := bs.initRPCServer(cfg); err != nil {
		return fmt.Errorf("failed to start rpc server: %w", err)
	}

	bs.initBalanceMonitor(cfg)

	bs.Metrics.RecordInfo(bs.Version)
	bs.Metrics.RecordUp()
	return nil
}

func (bs *BatchRelayerService) initMetrics(cfg *CLIConfig) {
	if cfg.MetricsConfig.Enabled {
		procName := "default"
		bs.Metrics = metrics.NewMetrics(procName)
	} else {
		bs.Metrics = metrics.NoopMetrics
	}
}

func (bs *BatchRelayerService) initBatchRelayerConfig(cfg *CLIConfig) error {
	relayerAddr, err := opservice.ParseAddress(cfg.MultiMessageRelayerAddress)
	if err != nil {
		return err
	}
	bs.BatchRelayerConfig = BatchRelayerConfig{
		RelayerAddr:    relayerAddr,
		PollInterval:   cfg.PollInterval,
		MaxBatchSize:   cfg.MaxBatchSize,
		SubmitInterval: cfg.SubmitInterval,
		TxTimeout:      cfg.TxMgrConfig.TxSendTimeout,
	}
	return nil
}

func (bs *BatchRelayerService) initRPCClients(ctx context.Context, cfg *CLIConfig) error {
	client, err := dial.DialEthClientWithTimeout(ctx, dial.DefaultDialTimeout, bs.Log, cfg.L1EthRpc)
	if err != nil {
		return fmt.Errorf("failed to dial rpc: %w", err)
	}
	bs.Client = client
	return nil
}

func (bs *BatchRelayerService) initResolver(cfg *CLIConfig) error {
	resolver, err := NewResolver(bs.Log, cfg, bs.Client)
	if err != nil {
		return err
	}
	bs.Resolver = resolver
	return nil
}

// NewResolver returns the address book named by cfg, or a cached resolver
// reading the on-chain address manager through caller.
func NewResolver(l log.Logger, cfg *CLIConfig, caller bind.ContractCaller) (addressmanager.Resolver, error) {
	if cfg.AddressBook != "" {
		book, err := addressmanager.LoadAddressBook(cfg.AddressBook)
		if err != nil {
			return nil, err
		}
		l.Info("loaded address book", "path", cfg.AddressBook, "entries", len(book.Entries()))
		return book, nil
	}
	addr, err := opservice.ParseAddress(cfg.AddressManagerAddress)
	if err != nil {
		return nil, err
	}
	return addressmanager.NewChainResolver(l, addr, caller, cfg.ResolverCacheTTL)
}

func (bs *BatchRelayerService) initStore(cfg *CLIConfig) error {
	st, err := store.Open(cfg.DataDir, bs.Log)
	if err != nil {
		return err
	}
	bs.Store = st
	return nil
}

func (bs *BatchRelayerService) initBalanceMonitor(cfg *CLIConfig) {
	if cfg.MetricsConfig.Enabled {
		bs.balanceMetricer = bs.Metrics.StartBalanceMetrics(bs.Log, bs.Client, bs.TxManager.From())
	}
}

func (bs *BatchRelayerService) initTxManager(cfg *CLIConfig) error {
	txManager, err := txmgr.NewSimpleTxManager("relayer", bs.Log, bs.Metrics, cfg.TxMgrConfig)
	if err != nil {
		return err
	}
	bs.TxManager = txManager
	return nil
}

func (bs *BatchRelayerService) initMetricsServer(cfg *CLIConfig) error {
	if !cfg.MetricsConfig.Enabled {
		bs.Log.Info("metrics disabled")
		return nil
	}
	m, ok := bs.Metrics.(opmetrics.RegistryMetricer)
	if !ok {
		return fmt.Errorf("metrics were enabled, but metricer %T does not expose registry for metrics-server", bs.Metrics)
	}
	bs.Log.Debug("starting metrics server", "addr", cfg.MetricsConfig.ListenAddr, "port", cfg.MetricsConfig.ListenPort)
	metricsSrv, err := opmetrics.StartServer(m.Registry(), cfg.MetricsConfig.ListenAddr, cfg.MetricsConfig.ListenPort)
	if err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	bs.Log.Info("started metrics server", "addr", metricsSrv.Addr())
	bs.metricsSrv = metricsSrv
	return nil
}

func (bs *BatchRelayerService) initDriver() error {
	driver, err := NewBatchRelayer(DriverSetup{
		Log:      bs.Log,
		Metr:     bs.Metrics,
		Cfg:      bs.BatchRelayerConfig,
		Txmgr:    bs.TxManager,
		Resolver: bs.Resolver,
		Store:    bs.Store,
		Queue:    bs.Queue,
		Client:   bs.Client,
	})
	if err != nil {
		return err
	}
	bs.driver = driver
	return nil
}

func (bs *BatchRelayerService) initRPCServer(cfg *CLIConfig) error {
	server := oprpc.NewServer(
		cfg.RPCConfig.ListenAddr,
		cfg.RPCConfig.ListenPort,
		bs.Version,
		oprpc.WithLogger(bs.Log),
		oprpc.WithRPCRecorder(bs.Metrics.NewRecorder("main")),
	)
	server.AddAPI(GetRelayerAPI(NewRelayerAPI(bs.Queue, bs.Store, bs.Log)))
	if cfg.RPCConfig.EnableAdmin {
		server.AddAPI(GetAdminAPI(NewAdminAPI(bs.driver, bs.Log)))
		bs.Log.Info("admin rpc enabled")
	}
	bs.Log.Info("starting json-rpc server")
	if err := server.Start(); err != nil {
		return fmt.Errorf("unable to start rpc server: %w", err)
	}
	bs.rpcServer = server
	return nil
}

func (bs *BatchRelayerService) Start(_ context.Context) error {
	return bs.driver.Start()
}

func (bs *BatchRelayerService) Stopped() bool {
	return bs.stopped.Load()
}

func (bs *BatchRelayerService) Kill() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return bs.Stop(ctx)
}

func (bs *BatchRelayerService) Stop(ctx context.Context) error {
	if bs.Stopped() {
		return ErrAlreadyStopped
	}
	bs.Log.Info("stopping batch relayer")

	var result *multierror.Error
	if bs.driver != nil {
		if err := bs.driver.Stop(); err != nil && !errors.Is(err, ErrRelayerNotRunning) {
			result = multierror.Append(result, fmt.Errorf("failed to stop batch relayer: %w", err))
		}
	}

	if bs.rpcServer != nil {
		if err := bs.rpcServer.Stop(); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to stop rpc server: %w", err))
		}
	}

	if bs.balanceMetricer != nil {
		if err := bs.balanceMetricer.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to close balance metricer: %w", err))
		}
	}

	if bs.TxManager != nil {
		bs.TxManager.Close()
	}

	if bs.Store != nil {
		if err := bs.Store.Close(); err != nil && !errors.Is(err, store.ErrClosed) {
			result = multierror.Append(result, fmt.Errorf("failed to close store: %w", err))
		}
	}

	if bs.metricsSrv != nil {
		if err := bs.metricsSrv.Stop(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to stop metrics server: %w", err))
		}
	}

	if bs.Client != nil {
		bs.Client.Close()
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	bs.stopped.Store(true)
	bs.Log.Info("stopped batch relayer")
	return nil
}

var _ cliapp.Lifecycle = (*BatchRelayerService)(nil)

func (bs *BatchRelayerService) Driver() BatchRelayerDriver {
	return bs.driver
}
