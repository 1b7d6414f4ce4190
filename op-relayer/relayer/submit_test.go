package relayer

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain/testutils"
	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
)

func TestSplitBatches(t *testing.T) {
	msgs := []crossdomain.L2ToL1Message{
		testutils.Message(1), testutils.Message(2), testutils.Message(2),
		testutils.Message(3), testutils.Message(4), testutils.Message(1),
	}
	batches := SplitBatches(msgs, 3)
	require.Len(t, batches, 2)
	require.Equal(t, crossdomain.Hashes([]crossdomain.L2ToL1Message{testutils.Message(1), testutils.Message(2), testutils.Message(3)}), crossdomain.Hashes(batches[0]))
	require.Equal(t, crossdomain.Hashes([]crossdomain.L2ToL1Message{testutils.Message(4)}), crossdomain.Hashes(batches[1]))
	require.Empty(t, SplitBatches(nil, 3))
}

func TestSubmitBatches(t *testing.T) {
	env := setupDriver(t, 10, 0)
	var msgs []crossdomain.L2ToL1Message
	for i := int64(0); i < 5; i++ {
		msgs = append(msgs, testutils.Message(i))
	}

	receipts, err := SubmitBatches(context.Background(), testlog.Logger(t, log.LevelDebug), env.chain, env.registry, relayerAddr, msgs, 2, 1)
	require.NoError(t, err)
	require.Len(t, receipts, 3)
	for i, r := range receipts {
		require.Equal(t, i, r.Index)
		require.NoError(t, r.Err)
		require.NotZero(t, r.Block)
	}
	require.Len(t, env.chain.sentBatches(), 3)
	for _, msg := range msgs {
		require.True(t, env.messenger.SuccessfulMessages(msg.Hash()))
	}
}

func TestSubmitBatchesUnauthorized(t *testing.T) {
	env := setupDriver(t, 10, 0)
	require.NoError(t, env.registry.SetAddress(owner, NameL2BatchMessageRelayer, stranger))

	_, err := SubmitBatches(context.Background(), testlog.Logger(t, log.LevelDebug), env.chain, env.registry, relayerAddr, testutils.Messages(), 2, 1)
	require.ErrorIs(t, err, ErrNotBatchRelayer)
	require.Empty(t, env.chain.sentBatches())
}

func TestSubmitBatchesReportsSendErrors(t *testing.T) {
	env := setupDriver(t, 10, 0)
	sendErr := errors.New("nonce too low")
	env.chain.sendErr = sendErr

	receipts, err := SubmitBatches(context.Background(), testlog.Logger(t, log.LevelDebug), env.chain, nil, relayerAddr, []crossdomain.L2ToL1Message{testutils.Message(1)}, 2, 1)
	require.ErrorIs(t, err, sendErr)
	require.Len(t, receipts, 1)
	require.ErrorIs(t, receipts[0].Err, sendErr)
}

func TestSubmitBatchesRejectsBadSize(t *testing.T) {
	env := setupDriver(t, 10, 0)
	_, err := SubmitBatches(context.Background(), testlog.Logger(t, log.LevelDebug), env.chain, nil, relayerAddr, testutils.Messages(), 0, 1)
	require.Error(t, err)
}
