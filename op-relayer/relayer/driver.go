package relayer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	"github.com/mantlenetworkio/mantle-relayer/op-bindings/bindings"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/metrics"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/store"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

var (
	ErrRelayerRunning    = errors.New("batch relayer is already running")
	ErrRelayerNotRunning = errors.New("batch relayer is not running")
)

// statusChecks bounds the concurrent successfulMessages calls of a round.
const statusChecks = 8

type BatchRelayerConfig struct {
	// RelayerAddr is the L1 multi message relayer the batches are sent to.
	RelayerAddr    common.Address
	PollInterval   time.Duration
	MaxBatchSize   int
	SubmitInterval time.Duration
	TxTimeout      time.Duration
}

func (c BatchRelayerConfig) Check() error {
	if c.RelayerAddr == (common.Address{}) {
		return errors.New("multi message relayer address is required")
	}
	if c.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if c.MaxBatchSize <= 0 {
		return errors.New("max batch size must be positive")
	}
	if c.SubmitInterval < 0 {
		return errors.New("submit interval must not be negative")
	}
	return nil
}

type DriverSetup struct {
	Log      log.Logger
	Metr     metrics.Metricer
	Cfg      BatchRelayerConfig
	Txmgr    txmgr.TxManager
	Resolver addressmanager.Resolver
	Store    *store.Store
	Queue    *Queue
	// Client is used to check which messages are already relayed on chain.
	// It may be nil, in which case only the local store is consulted.
	Client bind.ContractCaller
}

// RoundResult summarizes one submitted batch.
type RoundResult struct {
	BatchID   string        `json:"batchId"`
	TxHash    common.Hash   `json:"txHash"`
	Block     uint64        `json:"block"`
	Submitted bool          `json:"submitted"`
	Relayed   []common.Hash `json:"relayed"`
	Failed    []common.Hash `json:"failed"`
	Skipped   []common.Hash `json:"skipped"`
	Pending   int           `json:"pending"`
}

// BatchRelayer drains the pending queue into batchRelayMessages transactions.
type BatchRelayer struct {
	DriverSetup

	wg   sync.WaitGroup
	done chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	mutex   sync.Mutex
	running bool

	// roundMu keeps the loop and RelayNow from submitting the same messages.
	roundMu sync.Mutex
	limiter *rate.Limiter

	failedTopic common.Hash
}

func NewBatchRelayer(setup DriverSetup) (*BatchRelayer, error) {
	if err := setup.Cfg.Check(); err != nil {
		return nil, err
	}
	if setup.Txmgr == nil || setup.Resolver == nil || setup.Store == nil || setup.Queue == nil {
		return nil, errors.New("batch relayer requires a tx manager, resolver, store and queue")
	}
	parsed, err := bindings.OVML1CrossDomainMessengerMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	limit := rate.Inf
	if setup.Cfg.SubmitInterval > 0 {
		limit = rate.Every(setup.Cfg.SubmitInterval)
	}
	return &BatchRelayer{
		DriverSetup: setup,
		limiter:     rate.NewLimiter(limit, 1),
		failedTopic: parsed.Events["FailedRelayedMessage"].ID,
	}, nil
}

func (d *BatchRelayer) Start() error {
	d.Log.Info("starting batch relayer")

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.running {
		return ErrRelayerRunning
	}
	d.running = true
	d.ctx, d.cancel = context.WithCancel(context.Background())
	d.done = make(chan struct{})

	d.wg.Add(1)
	go d.loop(d.ctx, d.done)

	d.Log.Info("started batch relayer", "relayer", d.Cfg.RelayerAddr, "from", d.Txmgr.From())
	return nil
}

func (d *BatchRelayer) Stop() error {
	d.Log.Info("stopping batch relayer")

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.running {
		return ErrRelayerNotRunning
	}
	d.running = false

	d.cancel()
	close(d.done)
	d.wg.Wait()

	d.Log.Info("stopped batch relayer")
	return nil
}

func (d *BatchRelayer) Running() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.running
}

func (d *BatchRelayer) loop(ctx context.Context, done chan struct{}) {
	defer d.wg.Done()
	defer d.Log.Info("loop returning")

	ticker := time.NewTicker(d.Cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Prioritize quit signal
			select {
			case <-done:
				return
			default:
			}

			if _, err := d.RelayNow(ctx); err != nil {
				d.Log.Warn("relay round failed", "err", err)
			}
		case <-done:
			return
		}
	}
}

// RelayNow runs a single relay round: it submits at most one batch.
func (d *BatchRelayer) RelayNow(ctx context.Context) (RoundResult, error) {
	d.roundMu.Lock()
	defer d.roundMu.Unlock()

	var res RoundResult
	defer func() {
		res.Pending = d.Queue.Len()
		d.Metr.RecordPending(res.Pending)
	}()

	if d.Queue.Len() == 0 {
		return res, nil
	}

	if err := d.checkAuthorized(ctx); err != nil {
		d.Metr.RecordUnauthorized()
		return res, err
	}

	messenger, err := d.Resolver.Resolve(ctx, NameL1CrossDomainMessenger)
	if err != nil {
		return res, fmt.Errorf("failed to resolve %s: %w", NameL1CrossDomainMessenger, err)
	}

	batch, skipped, err := d.nextBatch(ctx, messenger)
	if err != nil {
		return res, err
	}
	res.Skipped = skipped
	if len(batch) == 0 {
		return res, nil
	}

	data, err := crossdomain.PackBatchRelayMessages(batch)
	if err != nil {
		return res, fmt.Errorf("failed to pack batch: %w", err)
	}
	if err := d.limiter.Wait(ctx); err != nil {
		return res, err
	}

	res.BatchID = uuid.NewString()
	hashes := crossdomain.Hashes(batch)
	l := d.Log.New("batch", res.BatchID, "size", len(batch))
	l.Info("submitting batch")

	sendCtx := ctx
	if d.Cfg.TxTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.Cfg.TxTimeout)
		defer cancel()
	}
	receipt, err := d.Txmgr.Send(sendCtx, txmgr.TxCandidate{
		TxData: data,
		To:     &d.Cfg.RelayerAddr,
	})
	if err != nil {
		d.Metr.RecordBatchFailed()
		dropped := d.Queue.Retry(hashes...)
		if len(dropped) > 0 {
			d.Metr.RecordMessagesDropped(len(dropped))
			l.Error("dropped messages after too many attempts", "dropped", dropped)
		}
		return res, fmt.Errorf("failed to submit batch %s: %w", res.BatchID, err)
	}
	res.Submitted = true
	res.TxHash = receipt.TxHash
	res.Block = receipt.BlockNumber.Uint64()

	failed := d.failedRelays(receipt, messenger)
	now := uint64(time.Now().Unix())
	records := make([]store.Record, 0, len(hashes))
	for _, h := range hashes {
		if _, ok := failed[h]; ok {
			res.Failed = append(res.Failed, h)
			continue
		}
		res.Relayed = append(res.Relayed, h)
		records = append(records, store.Record{
			MessageHash: h,
			TxHash:      receipt.TxHash,
			BlockNumber: res.Block,
			BatchID:     res.BatchID,
			RelayedAt:   now,
		})
	}
	if err := d.Store.MarkRelayed(records...); err != nil {
		return res, fmt.Errorf("failed to record batch %s: %w", res.BatchID, err)
	}
	d.Queue.Remove(res.Relayed...)
	if len(res.Failed) > 0 {
		d.Metr.RecordFailedRelays(len(res.Failed))
		if dropped := d.Queue.Retry(res.Failed...); len(dropped) > 0 {
			d.Metr.RecordMessagesDropped(len(dropped))
		}
	}
	d.Metr.RecordBatchSubmitted(len(batch))
	d.Metr.RecordMessagesRelayed(len(res.Relayed))
	l.Info("batch submitted", "tx", receipt.TxHash, "block", res.Block, "relayed", len(res.Relayed), "failed", len(res.Failed))
	return res, nil
}

// checkAuthorized fails when the signer is not the registered batch relayer.
func (d *BatchRelayer) checkAuthorized(ctx context.Context) error {
	if err := checkBatchRelayer(ctx, d.Resolver, d.Txmgr.From()); err != nil {
		d.Log.Warn("signer is not the registered batch relayer, not submitting", "from", d.Txmgr.From(), "err", err)
		return err
	}
	return nil
}

// nextBatch takes up to MaxBatchSize messages from the queue, removing the
// ones that were relayed already.
func (d *BatchRelayer) nextBatch(ctx context.Context, messenger common.Address) ([]crossdomain.L2ToL1Message, []common.Hash, error) {
	candidates := d.Queue.Peek(d.Cfg.MaxBatchSize)
	done := make([]bool, len(candidates))

	for i := range candidates {
		ok, err := d.Store.IsRelayed(candidates[i].Hash())
		if err != nil {
			return nil, nil, err
		}
		done[i] = ok
	}

	if d.Client != nil {
		caller, err := bindings.NewOVML1CrossDomainMessengerCaller(messenger, d.Client)
		if err != nil {
			return nil, nil, err
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(statusChecks)
		for i := range candidates {
			if done[i] {
				continue
			}
			g.Go(func() error {
				ok, err := caller.SuccessfulMessages(&bind.CallOpts{Context: gctx}, candidates[i].Hash())
				if err != nil {
					return fmt.Errorf("failed to check message %s: %w", candidates[i].Hash(), err)
				}
				done[i] = ok
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	var batch []crossdomain.L2ToL1Message
	var skipped []common.Hash
	for i := range candidates {
		if done[i] {
			skipped = append(skipped, candidates[i].Hash())
			continue
		}
		batch = append(batch, candidates[i])
	}
	if len(skipped) > 0 {
		d.Queue.Remove(skipped...)
		d.Log.Info("removed messages that were already relayed", "count", len(skipped))
	}
	return batch, skipped, nil
}

// failedRelays collects the FailedRelayedMessage hashes the messenger logged.
func (d *BatchRelayer) failedRelays(receipt *types.Receipt, messenger common.Address) map[common.Hash]struct{} {
	failed := make(map[common.Hash]struct{})
	filterer, err := bindings.NewOVML1CrossDomainMessengerFilterer(messenger, nil)
	if err != nil {
		d.Log.Error("failed to bind messenger filterer", "err", err)
		return failed
	}
	for _, lg := range receipt.Logs {
		if lg.Address != messenger || len(lg.Topics) == 0 || lg.Topics[0] != d.failedTopic {
			continue
		}
		ev, err := filterer.ParseFailedRelayedMessage(*lg)
		if err != nil {
			d.Log.Warn("failed to parse FailedRelayedMessage", "tx", receipt.TxHash, "err", err)
			continue
		}
		failed[ev.MsgHash] = struct{}{}
	}
	return failed
}
