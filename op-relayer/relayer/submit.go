package relayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

// BatchReceipt is the outcome of one batch sent by SubmitBatches.
type BatchReceipt struct {
	Index  int           `json:"index"`
	Hashes []common.Hash `json:"hashes"`
	TxHash common.Hash   `json:"txHash"`
	Block  uint64        `json:"block"`
	Err    error         `json:"-"`
}

// SplitBatches drops repeated messages and groups the rest, in order, into
// batches of at most size messages.
func SplitBatches(msgs []crossdomain.L2ToL1Message, size int) [][]crossdomain.L2ToL1Message {
	seen := make(map[common.Hash]struct{}, len(msgs))
	var batches [][]crossdomain.L2ToL1Message
	var cur []crossdomain.L2ToL1Message
	for _, msg := range msgs {
		h := msg.Hash()
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		cur = append(cur, msg)
		if len(cur) == size {
			batches = append(batches, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}

// SubmitBatches sends msgs to the multi message relayer at relayerAddr,
// keeping at most maxPending transactions in flight. When resolver is set
// the signer is checked against the registered batch relayer first.
func SubmitBatches(ctx context.Context, l log.Logger, mgr txmgr.TxManager, resolver addressmanager.Resolver, relayerAddr common.Address, msgs []crossdomain.L2ToL1Message, maxBatchSize int, maxPending uint64) ([]BatchReceipt, error) {
	if maxBatchSize <= 0 {
		return nil, errors.New("max batch size must be positive")
	}
	if resolver != nil {
		if err := checkBatchRelayer(ctx, resolver, mgr.From()); err != nil {
			return nil, err
		}
	}

	batches := SplitBatches(msgs, maxBatchSize)
	calldata := make([][]byte, len(batches))
	for i, batch := range batches {
		data, err := crossdomain.PackBatchRelayMessages(batch)
		if err != nil {
			return nil, fmt.Errorf("failed to pack batch %d: %w", i, err)
		}
		calldata[i] = data
	}

	queue := txmgr.NewQueue[int](ctx, mgr, maxPending)
	receipts := make(chan txmgr.TxReceipt[int], len(batches))
	for i := range batches {
		l.Info("sending batch", "index", i, "size", len(batches[i]))
		queue.Send(i, txmgr.TxCandidate{TxData: calldata[i], To: &relayerAddr}, receipts)
	}
	_ = queue.Wait()
	close(receipts)

	out := make([]BatchReceipt, len(batches))
	var result error
	for r := range receipts {
		br := BatchReceipt{Index: r.ID, Hashes: crossdomain.Hashes(batches[r.ID]), Err: r.Err}
		if r.Receipt != nil {
			br.TxHash = r.Receipt.TxHash
			if r.Receipt.BlockNumber != nil {
				br.Block = r.Receipt.BlockNumber.Uint64()
			}
		}
		if r.Err != nil {
			result = errors.Join(result, fmt.Errorf("batch %d: %w", r.ID, r.Err))
			l.Error("batch failed", "index", r.ID, "err", r.Err)
		} else {
			l.Info("batch relayed", "index", r.ID, "tx", br.TxHash, "block", br.Block)
		}
		out[r.ID] = br
	}
	return out, result
}

// checkBatchRelayer fails when from is not the registered batch relayer, in
// which case any batch it signs would revert.
func checkBatchRelayer(ctx context.Context, resolver addressmanager.Resolver, from common.Address) error {
	authorized, err := resolver.Resolve(ctx, NameL2BatchMessageRelayer)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", NameL2BatchMessageRelayer, err)
	}
	if authorized == (common.Address{}) || authorized != from {
		return fmt.Errorf("%w: signer %s, registered %s", ErrNotBatchRelayer, from, authorized)
	}
	return nil
}
