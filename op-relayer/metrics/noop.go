package metrics

import (
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	opmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
	txmetrics "github.com/mantlenetworkio/mantle-relayer/op-service/txmgr/metrics"
)

type noopMetrics struct {
	opmetrics.NoopRPCMetrics
	txmetrics.NoopTxMetrics
}

var NoopMetrics Metricer = new(noopMetrics)

func (*noopMetrics) RecordInfo(string) {}
func (*noopMetrics) RecordUp()         {}

func (*noopMetrics) StartBalanceMetrics(log.Logger, opmetrics.BalanceClient, common.Address) io.Closer {
	return nopCloser{}
}

func (*noopMetrics) RecordBatchSubmitted(int)  {}
func (*noopMetrics) RecordBatchFailed()        {}
func (*noopMetrics) RecordMessagesRelayed(int) {}
func (*noopMetrics) RecordFailedRelays(int)    {}
func (*noopMetrics) RecordMessagesDropped(int) {}
func (*noopMetrics) RecordUnauthorized()       {}
func (*noopMetrics) RecordPending(int)         {}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
