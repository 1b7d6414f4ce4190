package txmgr

import (
	"context"
	"math"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"
)

// TxReceipt pairs the outcome of a queued send with the caller supplied ID.
type TxReceipt[T any] struct {
	ID      T
	Receipt *types.Receipt
	Err     error
}

// Queue sends transactions through a TxManager with a cap on the number of
// in-flight sends. Nonces are assigned in call order.
type Queue[T any] struct {
	ctx        context.Context
	txMgr      TxManager
	maxPending uint64

	groupLock sync.Mutex
	groupCtx  context.Context
	group     *errgroup.Group
}

// NewQueue creates a Queue bound to ctx. A maxPending of 0 means no limit.
func NewQueue[T any](ctx context.Context, txMgr TxManager, maxPending uint64) *Queue[T] {
	if maxPending > math.MaxInt {
		maxPending = math.MaxInt
	}
	return &Queue[T]{
		ctx:        ctx,
		txMgr:      txMgr,
		maxPending: maxPending,
	}
}

// Wait blocks until every queued send has produced a receipt or an error.
func (q *Queue[T]) Wait() error {
	q.groupLock.Lock()
	group := q.group
	q.groupLock.Unlock()
	if group == nil {
		return nil
	}
	return group.Wait()
}

// Send blocks until a pending slot frees up, then hands the candidate to the
// tx manager. The result is delivered on receiptCh tagged with id.
func (q *Queue[T]) Send(id T, candidate TxCandidate, receiptCh chan TxReceipt[T]) {
	group, ctx := q.groupContext()
	responseCh := make(chan SendResponse, 1)
	group.Go(func() error {
		return forwardResponse(ctx, responseCh, receiptCh, id)
	})
	q.txMgr.SendAsync(ctx, candidate, responseCh)
}

// TrySend is like Send but returns false instead of blocking when the queue is full.
func (q *Queue[T]) TrySend(id T, candidate TxCandidate, receiptCh chan TxReceipt[T]) bool {
	group, ctx := q.groupContext()
	responseCh := make(chan SendResponse, 1)
	if !group.TryGo(func() error {
		return forwardResponse(ctx, responseCh, receiptCh, id)
	}) {
		return false
	}
	q.txMgr.SendAsync(ctx, candidate, responseCh)
	return true
}

func forwardResponse[T any](ctx context.Context, in chan SendResponse, out chan TxReceipt[T], id T) error {
	select {
	case res := <-in:
		out <- TxReceipt[T]{ID: id, Receipt: res.Receipt, Err: res.Err}
		return res.Err
	case <-ctx.Done():
		out <- TxReceipt[T]{ID: id, Err: ctx.Err()}
		return ctx.Err()
	}
}

// groupContext returns the current send group. A failed send cancels the
// group; the next caller drains it and starts a fresh one.
func (q *Queue[T]) groupContext() (*errgroup.Group, context.Context) {
	q.groupLock.Lock()
	defer q.groupLock.Unlock()
	if q.groupCtx == nil || q.groupCtx.Err() != nil {
		if q.group != nil {
			_ = q.group.Wait()
		}
		q.group, q.groupCtx = errgroup.WithContext(q.ctx)
		if q.maxPending > 0 {
			q.group.SetLimit(int(q.maxPending))
		}
	}
	return q.group, q.groupCtx
}
