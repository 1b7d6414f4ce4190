package metrics

import (
	"context"
	"io"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
	"github.com/prometheus/client_golang/prometheus"
)

type BalanceClient interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type balanceMetric struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (b *balanceMetric) Close() error {
	b.cancel()
	<-b.done
	return nil
}

func weiToEther(wei *big.Int) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether)).Float64()
	return f
}

// LaunchBalanceMetrics polls the balance of account every interval and
// exposes it, in ether, as <ns>_balance. Closing the result stops polling.
func LaunchBalanceMetrics(l log.Logger, r *prometheus.Registry, ns string, client BalanceClient, account common.Address, interval time.Duration) io.Closer {
	balanceGauge := With(r).NewGauge(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "balance",
		Help:      "balance (in ether) of account " + account.String(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			reqCtx, reqCancel := context.WithTimeout(ctx, interval)
			bigBal, err := client.BalanceAt(reqCtx, account, nil)
			reqCancel()
			if err != nil {
				l.Warn("failed to get balance of account", "err", err, "address", account)
			} else {
				balanceGauge.Set(weiToEther(bigBal))
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return &balanceMetric{cancel: cancel, done: done}
}
