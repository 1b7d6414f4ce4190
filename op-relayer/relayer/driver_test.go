package relayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-bindings/bindings"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain/testutils"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/metrics"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/store"
	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

// fakeChain is a tx manager that executes batchRelayMessages calldata against
// in-process contracts and turns the outcome into a receipt.
type fakeChain struct {
	t         *testing.T
	from      common.Address
	relayer   *MultiMessageRelayer
	messenger *CrossDomainMessenger

	mu      sync.Mutex
	block   uint64
	batches [][]crossdomain.L2ToL1Message
	sendErr error
}

func (c *fakeChain) Send(ctx context.Context, candidate txmgr.TxCandidate) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return nil, c.sendErr
	}
	require.Equal(c.t, relayerAddr, *candidate.To)
	msgs, err := crossdomain.UnpackBatchRelayMessages(candidate.TxData)
	if err != nil {
		return nil, err
	}
	c.batches = append(c.batches, msgs)
	c.block++

	events := make(chan RelayEvent, len(msgs))
	sub := c.messenger.SubscribeRelayEvents(events)
	defer sub.Unsubscribe()

	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      common.BigToHash(new(big.Int).SetUint64(c.block)),
		BlockNumber: new(big.Int).SetUint64(c.block),
	}
	if err := c.relayer.BatchRelayMessages(ctx, c.from, msgs); err != nil {
		receipt.Status = types.ReceiptStatusFailed
		return receipt, fmt.Errorf("%w: %v", txmgr.ErrTransactionReverted, err)
	}
	parsed, err := bindings.OVML1CrossDomainMessengerMetaData.GetAbi()
	require.NoError(c.t, err)
	for len(events) > 0 {
		ev := <-events
		if ev.Success {
			continue
		}
		receipt.Logs = append(receipt.Logs, &types.Log{
			Address: messengerAddr,
			Topics:  []common.Hash{parsed.Events["FailedRelayedMessage"].ID},
			Data:    ev.MsgHash.Bytes(),
		})
	}
	return receipt, nil
}

func (c *fakeChain) SendAsync(ctx context.Context, candidate txmgr.TxCandidate, ch chan txmgr.SendResponse) {
	go func() {
		receipt, err := c.Send(ctx, candidate)
		ch <- txmgr.SendResponse{Receipt: receipt, Err: err}
	}()
}

func (c *fakeChain) From() common.Address { return c.from }

func (c *fakeChain) BlockNumber(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.block, nil
}

func (c *fakeChain) Close()         {}
func (c *fakeChain) IsClosed() bool { return false }

func (c *fakeChain) sentBatches() [][]crossdomain.L2ToL1Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batches
}

type driverEnv struct {
	chain     *fakeChain
	registry  *addressmanager.AddressManager
	messenger *CrossDomainMessenger
	queue     *Queue
	store     *store.Store
	driver    *BatchRelayer
}

func setupDriver(t *testing.T, maxBatchSize, maxRetries int) *driverEnv {
	l := testlog.Logger(t, log.LevelDebug)
	am := addressmanager.New(owner)
	require.NoError(t, am.SetAddress(owner, NameL2BatchMessageRelayer, batchRelayer))
	require.NoError(t, am.SetAddress(owner, NameL1CrossDomainMessenger, messengerAddr))
	require.NoError(t, am.SetAddress(owner, NameL2MessageRelayer, relayerAddr))
	require.NoError(t, am.SetAddress(owner, NameCanonicalTransactionChain, canonicalChain))

	messenger := NewCrossDomainMessenger(l, owner, am)
	chain := &fakeChain{
		t:         t,
		from:      batchRelayer,
		relayer:   NewMultiMessageRelayer(relayerAddr, am, StaticMessengers{messengerAddr: messenger}, l),
		messenger: messenger,
	}
	st, err := store.Open("", l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	queue := NewQueue(0, maxRetries)

	driver, err := NewBatchRelayer(DriverSetup{
		Log:  l,
		Metr: metrics.NoopMetrics,
		Cfg: BatchRelayerConfig{
			RelayerAddr:  relayerAddr,
			PollInterval: 10 * time.Millisecond,
			MaxBatchSize: maxBatchSize,
		},
		Txmgr:    chain,
		Resolver: am,
		Store:    st,
		Queue:    queue,
	})
	require.NoError(t, err)
	return &driverEnv{chain: chain, registry: am, messenger: messenger, queue: queue, store: st, driver: driver}
}

func (e *driverEnv) add(t *testing.T, msgs ...crossdomain.L2ToL1Message) {
	for _, msg := range msgs {
		_, _, err := e.queue.Add(msg)
		require.NoError(t, err)
	}
}

func TestRelayNowEmptyQueue(t *testing.T) {
	env := setupDriver(t, 10, 0)
	res, err := env.driver.RelayNow(context.Background())
	require.NoError(t, err)
	require.False(t, res.Submitted)
	require.Empty(t, env.chain.sentBatches())
}

func TestRelayNowSplitsIntoBatches(t *testing.T) {
	env := setupDriver(t, 2, 0)
	for i := int64(0); i < 5; i++ {
		env.add(t, testutils.Message(i))
	}

	var sizes []int
	for env.queue.Len() > 0 {
		res, err := env.driver.RelayNow(context.Background())
		require.NoError(t, err)
		require.True(t, res.Submitted)
		require.NotEmpty(t, res.BatchID)
		sizes = append(sizes, len(res.Relayed))
	}
	require.Equal(t, []int{2, 2, 1}, sizes)
	require.Len(t, env.chain.sentBatches(), 3)

	for i := int64(0); i < 5; i++ {
		msg := testutils.Message(i)
		require.True(t, env.messenger.SuccessfulMessages(msg.Hash()))
		rec, err := env.store.Get(msg.Hash())
		require.NoError(t, err)
		require.NotZero(t, rec.BlockNumber)
	}
}

func TestRelayNowUnauthorizedSendsNothing(t *testing.T) {
	env := setupDriver(t, 10, 0)
	require.NoError(t, env.registry.SetAddress(owner, NameL2BatchMessageRelayer, stranger))
	env.add(t, testutils.Messages()...)

	res, err := env.driver.RelayNow(context.Background())
	require.ErrorIs(t, err, ErrNotBatchRelayer)
	require.False(t, res.Submitted)
	require.Empty(t, env.chain.sentBatches())
	require.Equal(t, 2, env.queue.Len())
}

func TestRelayNowRetriesOnSendError(t *testing.T) {
	env := setupDriver(t, 10, 1)
	env.add(t, testutils.Message(1))
	boom := errors.New("connection refused")
	env.chain.sendErr = boom

	_, err := env.driver.RelayNow(context.Background())
	require.ErrorIs(t, err, boom)
	retries, ok := env.queue.Retries(testutils.Message(1).Hash())
	require.True(t, ok)
	require.Equal(t, 1, retries)

	_, err = env.driver.RelayNow(context.Background())
	require.ErrorIs(t, err, boom)
	require.Zero(t, env.queue.Len())
}

func TestRelayNowRevertedBatchStaysQueued(t *testing.T) {
	env := setupDriver(t, 10, 0)
	require.NoError(t, env.messenger.Pause(owner))
	env.add(t, testutils.Message(1))

	res, err := env.driver.RelayNow(context.Background())
	require.ErrorIs(t, err, txmgr.ErrTransactionReverted)
	require.False(t, res.Submitted)
	require.Equal(t, 1, env.queue.Len())

	require.NoError(t, env.messenger.Unpause(owner))
	res, err = env.driver.RelayNow(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Relayed, 1)
	require.Zero(t, env.queue.Len())
}

func TestRelayNowFailedRelayIsRetried(t *testing.T) {
	env := setupDriver(t, 10, 0)
	fail := true
	env.messenger.RegisterTarget(testutils.DefaultTarget, TargetFunc(func(_ context.Context, _ common.Address, msg []byte) error {
		if fail {
			return errors.New("target reverted")
		}
		return nil
	}))
	msg := testutils.Message(1)
	env.add(t, msg)

	res, err := env.driver.RelayNow(context.Background())
	require.NoError(t, err)
	require.True(t, res.Submitted)
	require.Equal(t, []common.Hash{msg.Hash()}, res.Failed)
	require.Empty(t, res.Relayed)
	require.True(t, env.queue.Contains(msg.Hash()))
	relayed, err := env.store.IsRelayed(msg.Hash())
	require.NoError(t, err)
	require.False(t, relayed)

	fail = false
	res, err = env.driver.RelayNow(context.Background())
	require.NoError(t, err)
	require.Equal(t, []common.Hash{msg.Hash()}, res.Relayed)
	require.Zero(t, env.queue.Len())
}

func TestRelayNowSkipsStoredMessages(t *testing.T) {
	env := setupDriver(t, 10, 0)
	done := testutils.Message(1)
	require.NoError(t, env.store.MarkRelayed(store.Record{MessageHash: done.Hash()}))
	env.add(t, done, testutils.Message(2))

	res, err := env.driver.RelayNow(context.Background())
	require.NoError(t, err)
	require.Equal(t, []common.Hash{done.Hash()}, res.Skipped)
	require.Equal(t, []common.Hash{testutils.Message(2).Hash()}, res.Relayed)
	batches := env.chain.sentBatches()
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 1)
}

func TestDriverStartStop(t *testing.T) {
	env := setupDriver(t, 10, 0)
	require.ErrorIs(t, env.driver.Stop(), ErrRelayerNotRunning)
	require.NoError(t, env.driver.Start())
	require.ErrorIs(t, env.driver.Start(), ErrRelayerRunning)
	require.True(t, env.driver.Running())

	env.add(t, testutils.Messages()...)
	require.Eventually(t, func() bool {
		return env.queue.Len() == 0
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, env.driver.Stop())
	require.False(t, env.driver.Running())

	// A stopped relayer can be started again.
	require.NoError(t, env.driver.Start())
	require.NoError(t, env.driver.Stop())
}

func TestBatchRelayerConfigCheck(t *testing.T) {
	valid := BatchRelayerConfig{RelayerAddr: relayerAddr, PollInterval: time.Second, MaxBatchSize: 1}
	require.NoError(t, valid.Check())

	tests := []struct {
		name   string
		mutate func(c *BatchRelayerConfig)
	}{
		{"no relayer", func(c *BatchRelayerConfig) { c.RelayerAddr = common.Address{} }},
		{"no poll interval", func(c *BatchRelayerConfig) { c.PollInterval = 0 }},
		{"no batch size", func(c *BatchRelayerConfig) { c.MaxBatchSize = 0 }},
		{"negative submit interval", func(c *BatchRelayerConfig) { c.SubmitInterval = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.Error(t, cfg.Check())
		})
	}
}
