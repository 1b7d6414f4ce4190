package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
	txmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/txmgr/metrics"
)

const Namespace = "op_relayer"

var _ opmetrics.RegistryMetricer = (*Metrics)(nil)

type Metricer interface {
	RecordInfo(version string)
	RecordUp()

	opmetrics.RPCMetricer
	txmetrics.TxMetricer

	StartBalanceMetrics(l log.Logger, client opmetrics.BalanceClient, account common.Address) io.Closer

	RecordBatchSubmitted(size int)
	RecordBatchFailed()
	RecordMessagesRelayed(n int)
	RecordFailedRelays(n int)
	RecordMessagesDropped(n int)
	RecordUnauthorized()
	RecordPending(n int)
}

type Metrics struct {
	ns       string
	registry *prometheus.Registry
	factory  opmetrics.Factory

	opmetrics.RPCMetrics
	txmetrics.TxMetrics

	info             prometheus.GaugeVec
	up               prometheus.Gauge
	batchesSubmitted prometheus.Counter
	batchesFailed    prometheus.Counter
	batchSize        prometheus.Histogram
	messagesRelayed  prometheus.Counter
	failedRelays     prometheus.Counter
	messagesDropped  prometheus.Counter
	unauthorized     prometheus.Counter
	pending          prometheus.Gauge
}

var _ Metricer = (*Metrics)(nil)

func NewMetrics(procName string) *Metrics {
	if procName == "" {
		procName = "default"
	}
	ns := Namespace + "_" + procName

	registry := opmetrics.NewRegistry()
	factory := opmetrics.With(registry)

	return &Metrics{
		ns:       ns,
		registry: registry,
		factory:  factory,

		RPCMetrics: opmetrics.MakeRPCMetrics(ns, factory),
		TxMetrics:  txmetrics.MakeTxMetrics(ns, factory),

		info: *factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "info",
			Help:      "Information about the relayer",
		}, []string{
			"version",
		}),
		up: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "up",
			Help:      "1 if the op-relayer has finished starting up",
		}),
		batchesSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "batches_submitted_total",
			Help:      "Number of batchRelayMessages transactions that succeeded",
		}),
		batchesFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "batches_failed_total",
			Help:      "Number of batchRelayMessages transactions that failed or reverted",
		}),
		batchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "batch_size",
			Help:      "Number of messages per submitted batch",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		messagesRelayed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "messages_relayed_total",
			Help:      "Number of messages included in successful batches",
		}),
		failedRelays: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "failed_relays_total",
			Help:      "Number of FailedRelayedMessage events seen in batch receipts",
		}),
		messagesDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "messages_dropped_total",
			Help:      "Number of messages dropped after exceeding the retry limit",
		}),
		unauthorized: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "unauthorized_rounds_total",
			Help:      "Number of rounds skipped because the signer is not the OVM_L2BatchMessageRelayer",
		}),
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "pending_messages",
			Help:      "Number of messages waiting to be relayed",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) StartBalanceMetrics(l log.Logger, client opmetrics.BalanceClient, account common.Address) io.Closer {
	return opmetrics.LaunchBalanceMetrics(l, m.registry, m.ns, client, account, 10*time.Second)
}

func (m *Metrics) RecordInfo(version string) {
	m.info.WithLabelValues(version).Set(1)
}

func (m *Metrics) RecordUp() {
	m.up.Set(1)
}

func (m *Metrics) RecordBatchSubmitted(size int) {
	m.batchesSubmitted.Inc()
	m.batchSize.Observe(float64(size))
}

func (m *Metrics) RecordBatchFailed() {
	m.batchesFailed.Inc()
}

func (m *Metrics) RecordMessagesRelayed(n int) {
	m.messagesRelayed.Add(float64(n))
}

func (m *Metrics) RecordFailedRelays(n int) {
	m.failedRelays.Add(float64(n))
}

func (m *Metrics) RecordMessagesDropped(n int) {
	m.messagesDropped.Add(float64(n))
}

func (m *Metrics) RecordUnauthorized() {
	m.unauthorized.Inc()
}

func (m *Metrics) RecordPending(n int) {
	m.pending.Set(float64(n))
}

func (m *Metrics) Document() []opmetrics.DocumentedMetric {
	return m.factory.Document()
}
