package relayer

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain/testutils"
	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
)

var (
	owner          = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	batchRelayer   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	stranger       = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	relayerAddr    = common.HexToAddress("0x00000000000000000000000000000000000000dd")
	messengerAddr  = common.HexToAddress("0x00000000000000000000000000000000000000ee")
	canonicalChain = common.HexToAddress("0x00000000000000000000000000000000000000ff")
)

type relayCall struct {
	caller common.Address
	msg    crossdomain.L2ToL1Message
}

// countingMessenger records every relayMessage call.
type countingMessenger struct {
	calls []relayCall
	err   error
	// failAt makes the call with this index fail, when err is set.
	failAt int
}

func (m *countingMessenger) RelayMessage(_ context.Context, caller common.Address, msg crossdomain.L2ToL1Message) error {
	idx := len(m.calls)
	m.calls = append(m.calls, relayCall{caller: caller, msg: msg})
	if m.err != nil && idx == m.failAt {
		return m.err
	}
	return nil
}

func setupMultiRelayer(t *testing.T, messenger Messenger) (*MultiMessageRelayer, *addressmanager.AddressManager) {
	am := addressmanager.New(owner)
	require.NoError(t, am.SetAddress(owner, NameL2BatchMessageRelayer, batchRelayer))
	require.NoError(t, am.SetAddress(owner, NameL1CrossDomainMessenger, messengerAddr))
	r := NewMultiMessageRelayer(relayerAddr, am, StaticMessengers{messengerAddr: messenger}, testlog.Logger(t, log.LevelDebug))
	return r, am
}

func TestBatchRelayMessagesRelaysEachMessage(t *testing.T) {
	messenger := new(countingMessenger)
	r, _ := setupMultiRelayer(t, messenger)
	msgs := testutils.Messages()

	require.NoError(t, r.BatchRelayMessages(context.Background(), batchRelayer, msgs))

	require.Len(t, messenger.calls, len(msgs))
	for i, call := range messenger.calls {
		require.Equal(t, relayerAddr, call.caller)
		require.Equal(t, msgs[i].Hash(), call.msg.Hash())
	}
}

func TestBatchRelayMessagesRejectsOtherCallers(t *testing.T) {
	messenger := new(countingMessenger)
	r, _ := setupMultiRelayer(t, messenger)

	err := r.BatchRelayMessages(context.Background(), stranger, testutils.Messages())
	require.ErrorIs(t, err, ErrNotBatchRelayer)
	require.EqualError(t, err, "OVM_L1MultiMessageRelayer: Function can only be called by the OVM_L2BatchMessageRelayer")
	require.Empty(t, messenger.calls)
}

func TestBatchRelayMessagesFollowsRegistry(t *testing.T) {
	messenger := new(countingMessenger)
	r, am := setupMultiRelayer(t, messenger)
	require.NoError(t, am.SetAddress(owner, NameL2BatchMessageRelayer, stranger))

	err := r.BatchRelayMessages(context.Background(), batchRelayer, testutils.Messages())
	require.ErrorIs(t, err, ErrNotBatchRelayer)
	require.Empty(t, messenger.calls)

	require.NoError(t, r.BatchRelayMessages(context.Background(), stranger, testutils.Messages()))
	require.Len(t, messenger.calls, 3)
}

func TestBatchRelayMessagesUnsetRelayer(t *testing.T) {
	messenger := new(countingMessenger)
	am := addressmanager.New(owner)
	require.NoError(t, am.SetAddress(owner, NameL1CrossDomainMessenger, messengerAddr))
	r := NewMultiMessageRelayer(relayerAddr, am, StaticMessengers{messengerAddr: messenger}, testlog.Logger(t, log.LevelDebug))

	for _, caller := range []common.Address{{}, batchRelayer} {
		err := r.BatchRelayMessages(context.Background(), caller, testutils.Messages())
		require.ErrorIs(t, err, ErrNotBatchRelayer)
	}
	require.Empty(t, messenger.calls)
}

func TestBatchRelayMessagesEmptyBatch(t *testing.T) {
	messenger := new(countingMessenger)
	r, _ := setupMultiRelayer(t, messenger)
	require.NoError(t, r.BatchRelayMessages(context.Background(), batchRelayer, nil))
	require.Empty(t, messenger.calls)

	require.ErrorIs(t, r.BatchRelayMessages(context.Background(), stranger, nil), ErrNotBatchRelayer)
}

func TestBatchRelayMessagesStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	messenger := &countingMessenger{err: boom, failAt: 1}
	r, _ := setupMultiRelayer(t, messenger)
	msgs := testutils.Messages()

	err := r.BatchRelayMessages(context.Background(), batchRelayer, msgs)
	require.ErrorIs(t, err, boom)
	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	require.Equal(t, 1, batchErr.Index)
	require.Equal(t, msgs[1].Hash(), batchErr.Hash)
	require.Len(t, messenger.calls, 2)
}

func TestBatchRelayMessagesUnknownMessenger(t *testing.T) {
	r, am := setupMultiRelayer(t, new(countingMessenger))
	require.NoError(t, am.SetAddress(owner, NameL1CrossDomainMessenger, stranger))
	err := r.BatchRelayMessages(context.Background(), batchRelayer, testutils.Messages())
	require.ErrorIs(t, err, ErrNoMessenger)
}

func TestResolve(t *testing.T) {
	r, _ := setupMultiRelayer(t, new(countingMessenger))
	addr, err := r.Resolve(context.Background(), NameL2BatchMessageRelayer)
	require.NoError(t, err)
	require.Equal(t, batchRelayer, addr)
	require.Equal(t, relayerAddr, r.Address())
}

// The relayer is registered as the messenger's relayer, so the full path
// relays every unique message and rejects the duplicate as a replay.
func TestBatchRelayMessagesThroughMessenger(t *testing.T) {
	am := addressmanager.New(owner)
	require.NoError(t, am.SetAddress(owner, NameL2BatchMessageRelayer, batchRelayer))
	require.NoError(t, am.SetAddress(owner, NameL1CrossDomainMessenger, messengerAddr))
	require.NoError(t, am.SetAddress(owner, NameL2MessageRelayer, relayerAddr))
	l := testlog.Logger(t, log.LevelDebug)
	messenger := NewCrossDomainMessenger(l, owner, am)
	r := NewMultiMessageRelayer(relayerAddr, am, StaticMessengers{messengerAddr: messenger}, l)

	unique := testutils.Messages()[:2]
	require.NoError(t, r.BatchRelayMessages(context.Background(), batchRelayer, unique))
	for _, msg := range unique {
		require.True(t, messenger.SuccessfulMessages(msg.Hash()))
		require.True(t, messenger.RelayedMessages(msg, relayerAddr))
	}

	err := r.BatchRelayMessages(context.Background(), batchRelayer, testutils.Messages())
	require.ErrorIs(t, err, ErrAlreadyReceived)
	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	require.Equal(t, 0, batchErr.Index)

	// Relaying directly, bypassing the multi message relayer, is rejected.
	require.ErrorIs(t, messenger.RelayMessage(context.Background(), batchRelayer, testutils.Message(9)), ErrNotMessageRelayer)
}
