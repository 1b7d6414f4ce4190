package metrics

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/prometheus/client_golang/prometheus"

	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
)

type TxMetricer interface {
	RecordNonce(uint64)
	RecordPendingTx(pending int64)
	RecordTxConfirmationLatency(int64)
	RecordGasBumpCount(int)
	TxConfirmed(*types.Receipt)
	TxPublished(string)
	RecordBaseFee(*big.Int)
	RecordTipCap(*big.Int)
	RPCError()
}

type TxMetrics struct {
	TxL1GasFee          prometheus.Gauge
	txFees              prometheus.Counter
	TxGasUsed           prometheus.Gauge
	txGasUsed           prometheus.Counter
	currentNonce        prometheus.Gauge
	pendingTxs          prometheus.Gauge
	txPublishError      *prometheus.CounterVec
	publishEvent        prometheus.Counter
	confirmEvent        prometheus.Counter
	baseFee             prometheus.Gauge
	tipCap              prometheus.Gauge
	rpcError            prometheus.Counter
	confirmationLatency prometheus.Histogram
	gasBumpCount        prometheus.Gauge
}

func receiptStatusString(receipt *types.Receipt) string {
	switch receipt.Status {
	case types.ReceiptStatusSuccessful:
		return "success"
	case types.ReceiptStatusFailed:
		return "failed"
	default:
		return "unknown_status"
	}
}

const TxMetricsSubsystem = "txmgr"

var _ TxMetricer = (*TxMetrics)(nil)

func MakeTxMetrics(ns string, factory opmetrics.Factory) TxMetrics {
	return TxMetrics{
		TxL1GasFee: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "tx_fee_gwei",
			Help:      "L1 gas fee for transactions in GWEI",
			Subsystem: TxMetricsSubsystem,
		}),
		txFees: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "tx_fee_gwei_total",
			Help:      "Sum of fees spent for all transactions in GWEI",
			Subsystem: TxMetricsSubsystem,
		}),
		TxGasUsed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "tx_gas_used",
			Help:      "Gas used by transactions",
			Subsystem: TxMetricsSubsystem,
		}),
		txGasUsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "tx_gas_used_total",
			Help:      "Sum of gas used by all transactions",
			Subsystem: TxMetricsSubsystem,
		}),
		currentNonce: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "current_nonce",
			Help:      "Current nonce of the from address",
			Subsystem: TxMetricsSubsystem,
		}),
		pendingTxs: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "pending_txs",
			Help:      "Number of transactions pending receipts",
			Subsystem: TxMetricsSubsystem,
		}),
		txPublishError: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "tx_publish_error_count",
			Help:      "Count of publish errors. Labels are sanitized error strings",
			Subsystem: TxMetricsSubsystem,
		}, []string{"error"}),
		publishEvent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "publish_total",
			Help:      "Count of transactions published",
			Subsystem: TxMetricsSubsystem,
		}),
		confirmEvent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "confirm_total",
			Help:      "Count of transactions confirmed",
			Subsystem: TxMetricsSubsystem,
		}),
		baseFee: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "basefee_wei",
			Help:      "Latest L1 baseFee (in Wei)",
			Subsystem: TxMetricsSubsystem,
		}),
		tipCap: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "tipcap_wei",
			Help:      "Latest L1 suggested tip cap (in Wei)",
			Subsystem: TxMetricsSubsystem,
		}),
		rpcError: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "rpc_error_count",
			Help:      "Temporary: Count of RPC errors (like timeouts) that have occurred",
			Subsystem: TxMetricsSubsystem,
		}),
		confirmationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "confirmation_latency_ms",
			Help:      "Latency between publishing a transaction and its confirmation, in milliseconds",
			Subsystem: TxMetricsSubsystem,
			Buckets:   prometheus.ExponentialBuckets(1000, 2, 10),
		}),
		gasBumpCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "gas_bump_count",
			Help:      "Number of times a transaction gas needed to be bumped before it got included",
			Subsystem: TxMetricsSubsystem,
		}),
	}
}

func (t *TxMetrics) RecordNonce(nonce uint64) {
	t.currentNonce.Set(float64(nonce))
}

func (t *TxMetrics) RecordPendingTx(pending int64) {
	t.pendingTxs.Set(float64(pending))
}

func (t *TxMetrics) RecordTxConfirmationLatency(latency int64) {
	t.confirmationLatency.Observe(float64(latency))
}

func (t *TxMetrics) RecordGasBumpCount(times int) {
	t.gasBumpCount.Set(float64(times))
}

// TxConfirmed records lots of information about the confirmed transaction
func (t *TxMetrics) TxConfirmed(receipt *types.Receipt) {
	fee := float64(new(big.Int).Mul(receipt.EffectiveGasPrice, big.NewInt(int64(receipt.GasUsed))).Uint64() / params.GWei)
	t.confirmEvent.Inc()
	t.TxL1GasFee.Set(fee)
	t.txFees.Add(fee)
	t.TxGasUsed.Set(float64(receipt.GasUsed))
	t.txGasUsed.Add(float64(receipt.GasUsed))
}

// TxPublished records a publish attempt; a non-empty errString is counted as a publish error.
func (t *TxMetrics) TxPublished(errString string) {
	if errString != "" {
		t.txPublishError.WithLabelValues(errString).Inc()
	} else {
		t.publishEvent.Inc()
	}
}

func (t *TxMetrics) RecordBaseFee(baseFee *big.Int) {
	bff, _ := baseFee.Float64()
	t.baseFee.Set(bff)
}

func (t *TxMetrics) RecordTipCap(tipcap *big.Int) {
	tcf, _ := tipcap.Float64()
	t.tipCap.Set(tcf)
}

func (t *TxMetrics) RPCError() {
	t.rpcError.Inc()
}
