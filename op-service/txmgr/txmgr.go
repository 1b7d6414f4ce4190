package txmgr

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/txpool"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"

	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr/metrics"
)

var (
	ErrClosed              = errors.New("transaction manager is closed")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrFeeLimitExceeded    = errors.New("fee limit exceeded")
)

// priceBump is the minimum percentage a replacement must raise both fee
// fields by to be accepted by geth's transaction pool.
const priceBump int64 = 10

// TxCandidate is a transaction candidate that can be submitted to ask the
// [TxManager] to construct a transaction with gas price bounds.
type TxCandidate struct {
	// TxData is the transaction calldata to be used in the constructed tx.
	TxData []byte
	// To is the recipient of the constructed tx. Nil means contract creation.
	To *common.Address
	// GasLimit is the gas limit to be used in the constructed tx.
	// Zero means the gas limit is estimated.
	GasLimit uint64
	// Value is the value to be used in the constructed tx.
	Value *big.Int
}

type SendResponse struct {
	Receipt *types.Receipt
	Nonce   uint64
	Err     error
}

// TxManager is an interface that allows callers to reliably publish txs,
// bumping the gas price if needed, and obtain the receipt of the resulting tx.
type TxManager interface {
	// Send is used to create & send a transaction. It will handle increasing
	// the gas price & ensuring that the transaction remains in the transaction pool.
	// It can be stopped by canceling the provided context; however, the transaction
	// may be included on L1 even if the context is canceled.
	//
	// NOTE: Send can be called concurrently, the nonce will be managed internally.
	Send(ctx context.Context, candidate TxCandidate) (*types.Receipt, error)

	// SendAsync is used to create & send a transaction asynchronously. The nonce
	// is assigned before SendAsync returns, the response is delivered on ch.
	SendAsync(ctx context.Context, candidate TxCandidate, ch chan SendResponse)

	// From returns the sending address associated with the instance of the transaction manager.
	From() common.Address

	// BlockNumber returns the most recent block number from the underlying network.
	BlockNumber(ctx context.Context) (uint64, error)

	// Close the underlying connection
	Close()
	IsClosed() bool
}

// ETHBackend is the set of methods that the transaction manager uses to resubmit gas & determine
// when transactions are included on L1.
type ETHBackend interface {
	// BlockNumber returns the most recent block number.
	BlockNumber(ctx context.Context) (uint64, error)

	// TransactionReceipt queries the backend for a receipt associated with
	// txHash. If lookup does not fail, but the transaction is not found,
	// nil should be returned for both values.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// SendTransaction submits a signed transaction to L1.
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// These functions are used to estimate what the base fee & priority fee should be set to.
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)

	// NonceAt returns the account nonce of the given account.
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)

	// EstimateGas returns an estimate of the amount of gas needed to execute the given transaction.
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// Close the underlying eth connection
	Close()
}

// SimpleTxManager is a implementation of TxManager that performs linear fee
// bumping of a tx until it confirms.
type SimpleTxManager struct {
	cfg     *Config
	chainID *big.Int
	name    string
	backend ETHBackend
	l       log.Logger
	metr    metrics.TxMetricer

	nonce     *uint64
	nonceLock sync.Mutex

	pending atomic.Int64
	closed  atomic.Bool
}

// NewSimpleTxManager initializes a new SimpleTxManager with the passed Config.
func NewSimpleTxManager(name string, l log.Logger, m metrics.TxMetricer, cfg CLIConfig) (*SimpleTxManager, error) {
	conf, err := NewConfig(cfg, l)
	if err != nil {
		return nil, err
	}
	return NewSimpleTxManagerFromConfig(name, l, m, conf)
}

// NewSimpleTxManagerFromConfig initializes a new SimpleTxManager with the passed Config.
func NewSimpleTxManagerFromConfig(name string, l log.Logger, m metrics.TxMetricer, conf *Config) (*SimpleTxManager, error) {
	if err := conf.Check(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &SimpleTxManager{
		chainID: conf.ChainID,
		name:    name,
		cfg:     conf,
		backend: conf.Backend,
		l:       l.New("service", name),
		metr:    m,
	}, nil
}

func (m *SimpleTxManager) From() common.Address {
	return m.cfg.From
}

func (m *SimpleTxManager) BlockNumber(ctx context.Context) (uint64, error) {
	return m.backend.BlockNumber(ctx)
}

// Close closes the underlying connection, and sets the closed flag.
// once closed, the tx manager will refuse to send any new transactions, and may abandon pending ones.
func (m *SimpleTxManager) Close() {
	if m.closed.CompareAndSwap(false, true) {
		m.backend.Close()
	}
}

func (m *SimpleTxManager) IsClosed() bool {
	return m.closed.Load()
}

// Send is used to publish a transaction with incrementally higher gas prices
// until the transaction eventually confirms.
//
// NOTE: Send can be called concurrently, the nonce will be managed internally.
func (m *SimpleTxManager) Send(ctx context.Context, candidate TxCandidate) (*types.Receipt, error) {
	ch := make(chan SendResponse, 1)
	m.SendAsync(ctx, candidate, ch)
	res := <-ch
	return res.Receipt, res.Err
}

func (m *SimpleTxManager) SendAsync(ctx context.Context, candidate TxCandidate, ch chan SendResponse) {
	if cap(ch) == 0 {
		panic("SendAsync: channel must be buffered")
	}
	if m.closed.Load() {
		ch <- SendResponse{Err: ErrClosed}
		return
	}

	m.metr.RecordPendingTx(m.pending.Add(1))

	var cancel context.CancelFunc
	if m.cfg.TxSendTimeout == 0 {
		ctx, cancel = context.WithCancel(ctx)
	} else {
		ctx, cancel = context.WithTimeout(ctx, m.cfg.TxSendTimeout)
	}

	tx, err := m.prepare(ctx, candidate)
	if err != nil {
		m.resetNonce()
		m.metr.RecordPendingTx(m.pending.Add(-1))
		cancel()
		ch <- SendResponse{Err: err}
		return
	}

	go func() {
		defer cancel()
		defer func() {
			m.metr.RecordPendingTx(m.pending.Add(-1))
		}()
		receipt, err := m.publishAndWait(ctx, tx)
		if err != nil {
			m.resetNonce()
		}
		ch <- SendResponse{Receipt: receipt, Nonce: tx.Nonce(), Err: err}
	}()
}

// prepare crafts and signs the transaction, assigning the next nonce.
func (m *SimpleTxManager) prepare(ctx context.Context, candidate TxCandidate) (*types.Transaction, error) {
	tip, baseFee, err := m.suggestGasPriceCaps(ctx)
	if err != nil {
		m.metr.RPCError()
		return nil, fmt.Errorf("failed to get gas price info: %w", err)
	}
	gasFeeCap := calcGasFeeCap(baseFee, tip)
	if err := m.checkLimits(tip, baseFee, gasFeeCap); err != nil {
		return nil, err
	}

	gasLimit := candidate.GasLimit
	if gasLimit == 0 {
		cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
		gas, err := m.backend.EstimateGas(cCtx, ethereum.CallMsg{
			From:      m.cfg.From,
			To:        candidate.To,
			GasTipCap: tip,
			GasFeeCap: gasFeeCap,
			Data:      candidate.TxData,
			Value:     candidate.Value,
		})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to estimate gas: %w", err)
		}
		gasLimit = gas
	}

	m.nonceLock.Lock()
	defer m.nonceLock.Unlock()
	if m.nonce == nil {
		cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
		defer cancel()
		nonce, err := m.backend.NonceAt(cCtx, m.cfg.From, nil)
		if err != nil {
			m.metr.RPCError()
			return nil, fmt.Errorf("failed to get nonce: %w", err)
		}
		m.nonce = &nonce
	} else {
		*m.nonce++
	}
	m.metr.RecordNonce(*m.nonce)

	rawTx := &types.DynamicFeeTx{
		ChainID:   m.chainID,
		Nonce:     *m.nonce,
		To:        candidate.To,
		GasTipCap: tip,
		GasFeeCap: gasFeeCap,
		Gas:       gasLimit,
		Data:      candidate.TxData,
		Value:     candidate.Value,
	}
	m.l.Info("Creating tx", "to", rawTx.To, "from", m.cfg.From, "nonce", rawTx.Nonce, "gas", rawTx.Gas)

	cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer cancel()
	tx, err := m.cfg.Signer(cCtx, m.cfg.From, types.NewTx(rawTx))
	if err != nil {
		// decrement the nonce, so we can retry signing with the same nonce next time
		*m.nonce--
		return nil, fmt.Errorf("failed to sign tx: %w", err)
	}
	return tx, nil
}

// resetNonce resets the internal nonce tracking. This is called if any pending send
// returns an error.
func (m *SimpleTxManager) resetNonce() {
	m.nonceLock.Lock()
	defer m.nonceLock.Unlock()
	m.nonce = nil
}

// publishAndWait publishes tx and waits for a receipt of it or of any of its
// fee-bumped replacements. Every ResubmissionTimeout without a receipt the tx
// is re-signed with higher fees under the same nonce.
func (m *SimpleTxManager) publishAndWait(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	l := m.l.New("nonce", tx.Nonce())
	var published []common.Hash
	publish := func(tx *types.Transaction) error {
		cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
		err := m.backend.SendTransaction(cCtx, tx)
		cancel()
		if err != nil && !errStringMatch(err, txpool.ErrAlreadyKnown) {
			l.Warn("Failed to publish transaction", "tx", tx.Hash(), "err", err)
			m.metr.TxPublished(err.Error())
			return err
		}
		published = append(published, tx.Hash())
		m.metr.TxPublished("")
		l.Info("Transaction successfully published", "tx", tx.Hash(), "tip", tx.GasTipCap(), "feeCap", tx.GasFeeCap())
		return nil
	}
	if err := publish(tx); err != nil {
		return nil, fmt.Errorf("failed to publish tx: %w", err)
	}
	sendTime := time.Now()

	receiptTicker := time.NewTicker(m.cfg.ReceiptQueryInterval)
	defer receiptTicker.Stop()
	bumpTicker := time.NewTicker(m.cfg.ResubmissionTimeout)
	defer bumpTicker.Stop()
	bumps := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-bumpTicker.C:
			bumped, err := m.increaseGasPrice(ctx, tx)
			if err != nil {
				l.Warn("Not bumping transaction fees", "tx", tx.Hash(), "err", err)
				continue
			}
			if err := publish(bumped); err != nil {
				if errStringMatch(err, core.ErrNonceTooLow) {
					// an earlier publication was mined, keep polling for it
					l.Info("Replacement rejected, nonce already used", "tx", bumped.Hash())
				}
				continue
			}
			tx = bumped
			bumps++
		case <-receiptTicker.C:
		}
		for _, h := range published {
			receipt, err := m.queryReceipt(ctx, h)
			if err != nil {
				l.Warn("Receipt retrieval failed", "tx", h, "err", err)
				continue
			}
			if receipt == nil {
				continue
			}
			m.metr.RecordGasBumpCount(bumps)
			m.metr.RecordTxConfirmationLatency(time.Since(sendTime).Milliseconds())
			m.metr.TxConfirmed(receipt)
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: tx %s", ErrTransactionReverted, h)
			}
			return receipt, nil
		}
	}
}

// increaseGasPrice re-signs tx under the same nonce with fees raised by at
// least priceBump percent, or to the current suggestion if that is higher.
func (m *SimpleTxManager) increaseGasPrice(ctx context.Context, tx *types.Transaction) (*types.Transaction, error) {
	tip, baseFee, err := m.suggestGasPriceCaps(ctx)
	if err != nil {
		m.metr.RPCError()
		return nil, fmt.Errorf("failed to get gas price info: %w", err)
	}
	bumpedTip, bumpedFeeCap := updateFees(tx.GasTipCap(), tx.GasFeeCap(), tip, baseFee)
	if err := m.checkLimits(tip, baseFee, bumpedFeeCap); err != nil {
		return nil, err
	}

	rawTx := &types.DynamicFeeTx{
		ChainID:   m.chainID,
		Nonce:     tx.Nonce(),
		To:        tx.To(),
		GasTipCap: bumpedTip,
		GasFeeCap: bumpedFeeCap,
		Gas:       tx.Gas(),
		Data:      tx.Data(),
		Value:     tx.Value(),
	}
	cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer cancel()
	signed, err := m.cfg.Signer(cCtx, m.cfg.From, types.NewTx(rawTx))
	if err != nil {
		return nil, fmt.Errorf("failed to sign bumped tx: %w", err)
	}
	return signed, nil
}

// checkLimits fails when feeCap exceeds FeeLimitMultiplier times the
// currently suggested fees.
func (m *SimpleTxManager) checkLimits(tip, baseFee, feeCap *big.Int) error {
	limit := new(big.Int).Mul(new(big.Int).Add(baseFee, tip), new(big.Int).SetUint64(m.cfg.FeeLimitMultiplier))
	if feeCap.Cmp(limit) > 0 {
		return fmt.Errorf("%w: gas fee cap %v exceeds the limit %v", ErrFeeLimitExceeded, feeCap, limit)
	}
	return nil
}

// queryReceipt returns the receipt once it has the configured number of confirmations.
func (m *SimpleTxManager) queryReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer cancel()
	receipt, err := m.backend.TransactionReceipt(cCtx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	} else if err != nil {
		m.metr.RPCError()
		return nil, err
	} else if receipt == nil {
		return nil, nil
	}

	tip, err := m.backend.BlockNumber(cCtx)
	if err != nil {
		m.metr.RPCError()
		return nil, err
	}
	txHeight := receipt.BlockNumber.Uint64()
	if txHeight+m.cfg.NumConfirmations > tip+1 {
		m.l.Debug("Transaction not yet confirmed", "tx", txHash, "block", txHeight, "tip", tip)
		return nil, nil
	}
	return receipt, nil
}

// suggestGasPriceCaps suggests what the new tip and base fee should be based
// on the current L1 conditions, clamped to the configured minimums.
func (m *SimpleTxManager) suggestGasPriceCaps(ctx context.Context) (*big.Int, *big.Int, error) {
	cCtx, cancel := context.WithTimeout(ctx, m.cfg.NetworkTimeout)
	defer cancel()
	tip, err := m.backend.SuggestGasTipCap(cCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch the suggested gas tip cap: %w", err)
	} else if tip == nil {
		return nil, nil, errors.New("the suggested tip was nil")
	}
	head, err := m.backend.HeaderByNumber(cCtx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch the suggested base fee: %w", err)
	} else if head.BaseFee == nil {
		return nil, nil, errors.New("txmgr does not support pre-london blocks that do not have a base fee")
	}
	baseFee := head.BaseFee
	m.metr.RecordBaseFee(baseFee)
	m.metr.RecordTipCap(tip)

	if m.cfg.MinTipCap != nil && tip.Cmp(m.cfg.MinTipCap) < 0 {
		m.l.Debug("Enforcing min tip cap", "minTipCap", m.cfg.MinTipCap, "origTipCap", tip)
		tip = new(big.Int).Set(m.cfg.MinTipCap)
	}
	if m.cfg.MinBaseFee != nil && baseFee.Cmp(m.cfg.MinBaseFee) < 0 {
		m.l.Debug("Enforcing min base fee", "minBaseFee", m.cfg.MinBaseFee, "origBaseFee", baseFee)
		baseFee = new(big.Int).Set(m.cfg.MinBaseFee)
	}
	return tip, baseFee, nil
}

// updateFees returns the larger of the bumped old fees and the new suggestion,
// for the tip and the fee cap independently.
func updateFees(oldTip, oldFeeCap, newTip, newBaseFee *big.Int) (*big.Int, *big.Int) {
	newFeeCap := calcGasFeeCap(newBaseFee, newTip)
	tip := calcThresholdValue(oldTip)
	if newTip.Cmp(tip) > 0 {
		tip = newTip
	}
	feeCap := calcThresholdValue(oldFeeCap)
	if newFeeCap.Cmp(feeCap) > 0 {
		feeCap = newFeeCap
	}
	return tip, feeCap
}

// calcThresholdValue returns x raised by priceBump percent, and by at least one wei.
func calcThresholdValue(x *big.Int) *big.Int {
	threshold := new(big.Int).Mul(x, big.NewInt(100+priceBump))
	threshold.Div(threshold, big.NewInt(100))
	if threshold.Cmp(x) <= 0 {
		threshold.Add(x, common.Big1)
	}
	return threshold
}

func errStringMatch(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	return strings.Contains(err.Error(), target.Error())
}

// calcGasFeeCap deterministically computes the recommended gas fee cap given
// the base fee and gasTipCap. The resulting gasFeeCap is equal to:
//
//	gasTipCap + 2*baseFee.
func calcGasFeeCap(baseFee, gasTipCap *big.Int) *big.Int {
	return new(big.Int).Add(
		gasTipCap,
		new(big.Int).Mul(baseFee, big.NewInt(2)),
	)
}
