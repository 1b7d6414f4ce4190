package txmgr

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	opcrypto "github.com/mantlenetworkio/mantle-relayer/op-service/crypto"
	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr/metrics"
)

type mockBackend struct {
	mu       sync.Mutex
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	revert   bool
	sendErr  error
	closed   bool
	// withhold is the number of publications that never get a receipt,
	// negative for all of them.
	withhold int
}

func newMockBackend() *mockBackend {
	return &mockBackend{receipts: make(map[common.Hash]*types.Receipt)}
}

func (b *mockBackend) BlockNumber(context.Context) (uint64, error) { return 100, nil }

func (b *mockBackend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (b *mockBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx)
	if b.withhold != 0 {
		b.withhold--
		return nil
	}
	status := types.ReceiptStatusSuccessful
	if b.revert {
		status = types.ReceiptStatusFailed
	}
	b.receipts[tx.Hash()] = &types.Receipt{
		TxHash:            tx.Hash(),
		Status:            status,
		BlockNumber:       big.NewInt(90),
		GasUsed:           tx.Gas(),
		EffectiveGasPrice: tx.GasFeeCap(),
	}
	return nil
}

func (b *mockBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(10)}, nil
}

func (b *mockBackend) SuggestGasTipCap(context.Context) (*big.Int, error) { return big.NewInt(1), nil }

func (b *mockBackend) NonceAt(context.Context, common.Address, *big.Int) (uint64, error) {
	return 7, nil
}

func (b *mockBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}

func (b *mockBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 50_000, nil
}

func (b *mockBackend) Close() { b.closed = true }

func (b *mockBackend) sentTxs() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*types.Transaction(nil), b.sent...)
}

func newTestTxManager(t *testing.T, backend *mockBackend, opts ...func(*Config)) *SimpleTxManager {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	factory, from, err := opcrypto.SignerFactoryFromConfig(testlog.Logger(t, log.LevelInfo),
		"0x"+common.Bytes2Hex(crypto.FromECDSA(key)), "", "")
	require.NoError(t, err)
	chainID := big.NewInt(900)
	cfg := &Config{
		Backend:              backend,
		ChainID:              chainID,
		FeeLimitMultiplier:   5,
		MinTipCap:            big.NewInt(2),
		NetworkTimeout:       time.Second,
		ResubmissionTimeout:  time.Minute,
		ReceiptQueryInterval: 5 * time.Millisecond,
		NumConfirmations:     1,
		Signer:               factory(chainID),
		From:                 from,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	mgr, err := NewSimpleTxManagerFromConfig("test", testlog.Logger(t, log.LevelDebug), &metrics.NoopTxMetrics{}, cfg)
	require.NoError(t, err)
	return mgr
}

func TestSendAssignsSequentialNonces(t *testing.T) {
	backend := newMockBackend()
	mgr := newTestTxManager(t, backend)
	to := common.Address{0xaa}

	for i := 0; i < 3; i++ {
		receipt, err := mgr.Send(context.Background(), TxCandidate{TxData: []byte{byte(i)}, To: &to})
		require.NoError(t, err)
		require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	}
	require.Len(t, backend.sent, 3)
	for i, tx := range backend.sent {
		require.Equal(t, uint64(7+i), tx.Nonce())
		require.Equal(t, uint64(50_000), tx.Gas())
		// min tip cap enforced, fee cap = tip + 2*basefee
		require.Equal(t, big.NewInt(2), tx.GasTipCap())
		require.Equal(t, big.NewInt(22), tx.GasFeeCap())
	}
}

func TestSendUsesProvidedGasLimit(t *testing.T) {
	backend := newMockBackend()
	mgr := newTestTxManager(t, backend)
	to := common.Address{0xaa}
	_, err := mgr.Send(context.Background(), TxCandidate{To: &to, GasLimit: 21_000})
	require.NoError(t, err)
	require.Equal(t, uint64(21_000), backend.sent[0].Gas())
}

func TestSendReverted(t *testing.T) {
	backend := newMockBackend()
	backend.revert = true
	mgr := newTestTxManager(t, backend)
	to := common.Address{0xaa}
	receipt, err := mgr.Send(context.Background(), TxCandidate{To: &to})
	require.ErrorIs(t, err, ErrTransactionReverted)
	require.NotNil(t, receipt)
	require.Equal(t, types.ReceiptStatusFailed, receipt.Status)
}

func TestSendPublishErrorResetsNonce(t *testing.T) {
	backend := newMockBackend()
	backend.sendErr = errors.New("boom")
	mgr := newTestTxManager(t, backend)
	to := common.Address{0xaa}
	_, err := mgr.Send(context.Background(), TxCandidate{To: &to})
	require.ErrorContains(t, err, "boom")

	backend.mu.Lock()
	backend.sendErr = nil
	backend.mu.Unlock()
	_, err = mgr.Send(context.Background(), TxCandidate{To: &to})
	require.NoError(t, err)
	require.Equal(t, uint64(7), backend.sent[0].Nonce())
}

func TestSendBumpsFeesUntilIncluded(t *testing.T) {
	backend := newMockBackend()
	backend.withhold = 2
	mgr := newTestTxManager(t, backend, func(cfg *Config) {
		cfg.ResubmissionTimeout = 20 * time.Millisecond
	})
	to := common.Address{0xaa}

	receipt, err := mgr.Send(context.Background(), TxCandidate{To: &to})
	require.NoError(t, err)

	sent := backend.sentTxs()
	require.Len(t, sent, 3)
	require.Equal(t, sent[2].Hash(), receipt.TxHash)
	for i := 1; i < len(sent); i++ {
		require.Equal(t, sent[0].Nonce(), sent[i].Nonce())
		require.Equal(t, sent[0].Data(), sent[i].Data())
		require.Equal(t, 1, sent[i].GasTipCap().Cmp(sent[i-1].GasTipCap()))
		require.Equal(t, 1, sent[i].GasFeeCap().Cmp(sent[i-1].GasFeeCap()))
	}
	// 10% bump of 22, then of 24
	require.Equal(t, big.NewInt(24), sent[1].GasFeeCap())
	require.Equal(t, big.NewInt(26), sent[2].GasFeeCap())
}

func TestSendStopsBumpingAtFeeLimit(t *testing.T) {
	backend := newMockBackend()
	backend.withhold = -1
	mgr := newTestTxManager(t, backend, func(cfg *Config) {
		cfg.FeeLimitMultiplier = 2
		cfg.ResubmissionTimeout = 5 * time.Millisecond
	})
	to := common.Address{0xaa}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err := mgr.Send(ctx, TxCandidate{To: &to})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// limit is (10 + 2) * 2 = 24: 22 is published, then 24, then nothing more
	sent := backend.sentTxs()
	require.Len(t, sent, 2)
	require.Equal(t, big.NewInt(24), sent[1].GasFeeCap())
}

func TestUpdateFees(t *testing.T) {
	tip, feeCap := updateFees(big.NewInt(100), big.NewInt(1000), big.NewInt(50), big.NewInt(100))
	require.Equal(t, big.NewInt(110), tip)
	require.Equal(t, big.NewInt(1100), feeCap)

	tip, feeCap = updateFees(big.NewInt(100), big.NewInt(1000), big.NewInt(200), big.NewInt(1000))
	require.Equal(t, big.NewInt(200), tip)
	require.Equal(t, big.NewInt(2200), feeCap)

	require.Equal(t, big.NewInt(2), calcThresholdValue(big.NewInt(1)))
}

func TestClosedTxManager(t *testing.T) {
	backend := newMockBackend()
	mgr := newTestTxManager(t, backend)
	mgr.Close()
	require.True(t, mgr.IsClosed())
	require.True(t, backend.closed)
	_, err := mgr.Send(context.Background(), TxCandidate{})
	require.ErrorIs(t, err, ErrClosed)
}

func TestCLIConfigCheck(t *testing.T) {
	cfg := NewCLIConfig("http://localhost:8545", DefaultRelayerFlagValues)
	require.ErrorContains(t, cfg.Check(), "private key or a mnemonic")
	cfg.PrivateKey = "0x01"
	require.NoError(t, cfg.Check())
	cfg.Mnemonic = "test"
	require.ErrorContains(t, cfg.Check(), "at most one")
	cfg.Mnemonic = ""
	cfg.MinBaseFeeGwei = 0.5
	require.ErrorContains(t, cfg.Check(), "minBaseFee smaller than minTipCap")
}

func TestGweiToWei(t *testing.T) {
	require.Equal(t, big.NewInt(1_500_000_000), GweiToWei(1.5))
	require.Equal(t, big.NewInt(0), GweiToWei(0))
}
