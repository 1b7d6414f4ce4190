package txmgr

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct {
	mu     sync.Mutex
	nonce  uint64
	failOn map[byte]bool
	// release gates the async responses
	release chan struct{}
}

func (f *fakeTxManager) Send(ctx context.Context, candidate TxCandidate) (*types.Receipt, error) {
	ch := make(chan SendResponse, 1)
	f.SendAsync(ctx, candidate, ch)
	res := <-ch
	return res.Receipt, res.Err
}

func (f *fakeTxManager) SendAsync(_ context.Context, candidate TxCandidate, ch chan SendResponse) {
	f.mu.Lock()
	nonce := f.nonce
	f.nonce++
	f.mu.Unlock()
	go func() {
		if f.release != nil {
			<-f.release
		}
		if len(candidate.TxData) > 0 && f.failOn[candidate.TxData[0]] {
			ch <- SendResponse{Nonce: nonce, Err: errors.New("send failed")}
			return
		}
		ch <- SendResponse{Nonce: nonce, Receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: common.Hash{candidate.TxData[0]}}}
	}()
}

func (f *fakeTxManager) From() common.Address                        { return common.Address{} }
func (f *fakeTxManager) BlockNumber(context.Context) (uint64, error) { return 0, nil }
func (f *fakeTxManager) Close()                                      {}
func (f *fakeTxManager) IsClosed() bool                              { return false }

func TestQueueSend(t *testing.T) {
	mgr := &fakeTxManager{}
	q := NewQueue[int](context.Background(), mgr, 2)
	receipts := make(chan TxReceipt[int], 4)
	for i := 0; i < 4; i++ {
		q.Send(i, TxCandidate{TxData: []byte{byte(i)}}, receipts)
	}
	require.NoError(t, q.Wait())
	close(receipts)
	seen := make(map[int]bool)
	for r := range receipts {
		require.NoError(t, r.Err)
		require.Equal(t, common.Hash{byte(r.ID)}, r.Receipt.TxHash)
		seen[r.ID] = true
	}
	require.Len(t, seen, 4)
}

func TestQueueTrySendFull(t *testing.T) {
	mgr := &fakeTxManager{release: make(chan struct{})}
	q := NewQueue[int](context.Background(), mgr, 1)
	receipts := make(chan TxReceipt[int], 2)
	require.True(t, q.TrySend(0, TxCandidate{TxData: []byte{0}}, receipts))
	require.False(t, q.TrySend(1, TxCandidate{TxData: []byte{1}}, receipts))
	close(mgr.release)
	require.NoError(t, q.Wait())
	r := <-receipts
	require.Equal(t, 0, r.ID)
}

func TestQueueWaitReturnsError(t *testing.T) {
	mgr := &fakeTxManager{failOn: map[byte]bool{1: true}}
	q := NewQueue[int](context.Background(), mgr, 0)
	receipts := make(chan TxReceipt[int], 2)
	q.Send(0, TxCandidate{TxData: []byte{0}}, receipts)
	q.Send(1, TxCandidate{TxData: []byte{1}}, receipts)
	require.ErrorContains(t, q.Wait(), "send failed")
}
