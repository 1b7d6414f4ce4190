package metrics

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
)

type staticBalance struct {
	bal *big.Int
}

func (s staticBalance) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return s.bal, nil
}

func TestLaunchBalanceMetrics(t *testing.T) {
	r := NewRegistry()
	bal := new(big.Int).Mul(big.NewInt(3), big.NewInt(params.Ether))
	closer := LaunchBalanceMetrics(testlog.Logger(t, log.LevelInfo), r, "test", staticBalance{bal: bal}, common.Address{0x1}, time.Millisecond)
	defer closer.Close()

	require.Eventually(t, func() bool {
		mfs, err := r.Gather()
		if err != nil {
			return false
		}
		for _, mf := range mfs {
			if mf.GetName() == "test_balance" {
				return mf.GetMetric()[0].GetGauge().GetValue() == 3.0
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestWeiToEther(t *testing.T) {
	require.Equal(t, 0.5, weiToEther(big.NewInt(params.Ether/2)))
}
