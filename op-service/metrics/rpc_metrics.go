package metrics

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	RPCServerSubsystem = "rpc_server"
	RPCClientSubsystem = "rpc_client"
)

type RPCMetricer interface {
	NewRecorder(name string) rpc.Recorder
}

// RPCMetrics tracks JSON-RPC traffic. It is embedded into the service metrics
// type after the namespace and factory are set up.
type RPCMetrics struct {
	clientRequestsTotal *prometheus.CounterVec

	serverRequestsTotal          *prometheus.CounterVec
	serverRequestDurationSeconds *prometheus.HistogramVec
	serverResponsesTotal         *prometheus.CounterVec
}

var _ RPCMetricer = (*RPCMetrics)(nil)

func (m *RPCMetrics) NewRecorder(name string) rpc.Recorder {
	return &rpcRecorder{m: m, name: name}
}

func MakeRPCMetrics(ns string, factory Factory) RPCMetrics {
	return RPCMetrics{
		clientRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: RPCClientSubsystem,
			Name:      "requests_total",
			Help:      "Total RPC requests initiated",
		}, []string{
			"rpc",
			"method",
		}),
		serverRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: RPCServerSubsystem,
			Name:      "requests_total",
			Help:      "Total requests to the RPC server",
		}, []string{
			"rpc",
			"method",
		}),
		serverRequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: RPCServerSubsystem,
			Name:      "request_duration_seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			Help:      "Histogram of RPC server request durations",
		}, []string{
			"rpc",
			"method",
		}),
		serverResponsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: RPCServerSubsystem,
			Name:      "responses_total",
			Help:      "Total RPC request responses served",
		}, []string{
			"rpc",
			"method",
			"error",
		}),
	}
}

type rpcRecorder struct {
	m    *RPCMetrics
	name string
}

func (rec *rpcRecorder) RecordOutgoing(ctx context.Context, msg rpc.RecordedMsg) rpc.RecordDone {
	if msg.MsgIsNotification() {
		return nil
	}
	rec.m.clientRequestsTotal.WithLabelValues(rec.name, msg.MsgMethod()).Inc()
	return nil
}

func (rec *rpcRecorder) RecordIncoming(ctx context.Context, msg rpc.RecordedMsg) rpc.RecordDone {
	if msg.MsgIsNotification() {
		return nil
	}
	rec.m.serverRequestsTotal.WithLabelValues(rec.name, msg.MsgMethod()).Inc()
	timer := prometheus.NewTimer(rec.m.serverRequestDurationSeconds.WithLabelValues(rec.name, msg.MsgMethod()))
	return func(ctx context.Context, input, output rpc.RecordedMsg) {
		timer.ObserveDuration()
		if output != nil {
			errStr := "<nil>"
			if msgErr := output.MsgError(); msgErr != nil {
				errStr = fmt.Sprintf("rpc_%d", msgErr.ErrorCode())
			}
			rec.m.serverResponsesTotal.WithLabelValues(rec.name, input.MsgMethod(), errStr).Inc()
		}
	}
}

type NoopRPCMetrics struct{}

func (n *NoopRPCMetrics) NewRecorder(name string) rpc.Recorder {
	return &NoopRPCRecorder{}
}

type NoopRPCRecorder struct{}

func (n *NoopRPCRecorder) RecordIncoming(ctx context.Context, msg rpc.RecordedMsg) rpc.RecordDone {
	return nil
}

func (n *NoopRPCRecorder) RecordOutgoing(ctx context.Context, msg rpc.RecordedMsg) rpc.RecordDone {
	return nil
}

var _ RPCMetricer = (*NoopRPCMetrics)(nil)
