package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain/testutils"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/relayer"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/store"
)

func TestCalldataRoundTrip(t *testing.T) {
	msgs := testutils.Messages()
	in, err := json.Marshal(msgs)
	require.NoError(t, err)

	hexData, err := encodeCalldata(in)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hexData, "0x"))

	out, err := decodeCalldata([]byte(hexData + "\n"))
	require.NoError(t, err)
	decoded, err := parseMessages([]byte(out))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(crossdomain.Hashes(msgs), crossdomain.Hashes(decoded)))
}

func TestParseMessagesFillsMissingFields(t *testing.T) {
	msgs, err := parseMessages([]byte(`[{"target":"0x1100000000000000000000000000000000000000","messageNonce":3}]`))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Zero(t, msgs[0].Proof.StateRootBatchHeader.BatchSize.Sign())

	hexData, err := encodeCalldata([]byte(`[{"target":"0x1100000000000000000000000000000000000000"}]`))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hexData, "0x"))
}

func TestParseMessagesRejectsInvalid(t *testing.T) {
	_, err := parseMessages([]byte(`[{"target":"0x1100000000000000000000000000000000000000","messageNonce":-1}]`))
	require.ErrorIs(t, err, crossdomain.ErrNegativeNonce)

	_, err = parseMessages([]byte(`{`))
	require.Error(t, err)
}

func TestDecodeCalldataRejectsGarbage(t *testing.T) {
	_, err := decodeCalldata([]byte("not hex"))
	require.ErrorContains(t, err, "invalid calldata")
}

func TestRenderStatus(t *testing.T) {
	relayed := testutils.Message(1).Hash()
	pending := testutils.Message(2).Hash()
	out := renderStatus(4, []relayer.MessageStatus{
		{
			Hash:   relayed,
			Status: relayer.StatusRelayed,
			Record: &store.Record{MessageHash: relayed, TxHash: common.HexToHash("0xabc"), BlockNumber: 12, BatchID: "batch-1"},
		},
		{Hash: pending, Status: relayer.StatusPending, Retries: 2},
	})
	require.Contains(t, out, "pending messages: 4")
	require.Contains(t, out, relayed.Hex())
	require.Contains(t, out, pending.Hex())
	require.Contains(t, out, "batch-1")
	require.Contains(t, out, relayer.StatusRelayed)

	require.Equal(t, "pending messages: 0\n", renderStatus(0, nil))
}
