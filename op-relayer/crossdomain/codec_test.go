package crossdomain_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain/testutils"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
	cmpopts.EquateEmpty(),
}

func TestEncodeXDomainCalldata(t *testing.T) {
	msg := testutils.Message(1)
	data := msg.XDomainCalldata()
	require.Equal(t, hexutil.MustDecode("0xcbd4ece9"), data[:4])
	// target, sender, offset, nonce, length, padded message
	require.Len(t, data, 4+32*6)
	require.Equal(t, common.LeftPadBytes(testutils.DefaultTarget.Bytes(), 32), data[4:36])
	require.Equal(t, common.LeftPadBytes(testutils.DefaultSender.Bytes(), 32), data[36:68])
	require.Equal(t, common.LeftPadBytes([]byte{0x80}, 32), data[68:100])
	require.Equal(t, common.LeftPadBytes([]byte{1}, 32), data[100:132])
	require.Equal(t, common.LeftPadBytes([]byte{32}, 32), data[132:164])
	require.Equal(t, testutils.NonNullBytes32.Bytes(), data[164:196])

	require.Equal(t, crypto.Keccak256Hash(data), msg.Hash())

	target, sender, message, nonce, err := crossdomain.DecodeXDomainCalldata(data)
	require.NoError(t, err)
	require.Equal(t, msg.Target, target)
	require.Equal(t, msg.Sender, sender)
	require.Equal(t, []byte(msg.Message), message)
	require.Equal(t, 0, nonce.Cmp(big.NewInt(1)))

	_, _, _, _, err = crossdomain.DecodeXDomainCalldata([]byte{1, 2, 3, 4})
	require.Error(t, err)
}

func TestHashIgnoresProof(t *testing.T) {
	a := testutils.Message(5)
	b := testutils.Message(5)
	b.Proof.StateRoot = common.Hash{0xde, 0xad}
	b.Proof.StateTrieWitness = []byte("other")
	require.Equal(t, a.Hash(), b.Hash())

	c := testutils.Message(6)
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestHashNilFieldsMatchZero(t *testing.T) {
	a := crossdomain.L2ToL1Message{Target: testutils.DefaultTarget}
	b := crossdomain.L2ToL1Message{Target: testutils.DefaultTarget, MessageNonce: big.NewInt(0), Message: []byte{}}
	require.Equal(t, a.Hash(), b.Hash())
}

func TestBatchRelayMessagesRoundTrip(t *testing.T) {
	msgs := testutils.Messages()
	data, err := crossdomain.PackBatchRelayMessages(msgs)
	require.NoError(t, err)
	require.Equal(t, hexutil.MustDecode("0x16e9cd9b"), data[:4])
	require.Equal(t, crossdomain.BatchRelayMessagesSelector(), data[:4])

	decoded, err := crossdomain.UnpackBatchRelayMessages(data)
	require.NoError(t, err)
	if diff := cmp.Diff(msgs, decoded, cmpOpts...); diff != "" {
		t.Fatalf("decoded messages mismatch (-want +got):\n%s", diff)
	}
	// duplicates are kept at this layer
	require.Equal(t, decoded[1].Hash(), decoded[2].Hash())
}

func TestBatchRelayMessagesEmpty(t *testing.T) {
	data, err := crossdomain.PackBatchRelayMessages(nil)
	require.NoError(t, err)
	// selector, offset, zero length
	require.Len(t, data, 4+64)
	decoded, err := crossdomain.UnpackBatchRelayMessages(data)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestPackBatchRelayMessagesNormalizes(t *testing.T) {
	msgs := []crossdomain.L2ToL1Message{{Target: testutils.DefaultTarget}}
	data, err := crossdomain.PackBatchRelayMessages(msgs)
	require.NoError(t, err)
	// the input is left untouched
	require.Nil(t, msgs[0].MessageNonce)

	decoded, err := crossdomain.UnpackBatchRelayMessages(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, 0, decoded[0].MessageNonce.Sign())
	require.Equal(t, msgs[0].Hash(), decoded[0].Hash())
}

func TestPackRejectsInvalid(t *testing.T) {
	msg := testutils.Message(1)
	msg.MessageNonce = big.NewInt(-1)
	_, err := crossdomain.PackBatchRelayMessages([]crossdomain.L2ToL1Message{msg})
	require.ErrorIs(t, err, crossdomain.ErrNegativeNonce)
	_, err = crossdomain.PackRelayMessage(msg)
	require.ErrorIs(t, err, crossdomain.ErrNegativeNonce)
}

func TestUnpackRejectsOtherCalldata(t *testing.T) {
	_, err := crossdomain.UnpackBatchRelayMessages(testutils.Message(1).XDomainCalldata())
	require.Error(t, err)
	_, err = crossdomain.UnpackBatchRelayMessages(nil)
	require.Error(t, err)
}

func TestPackRelayMessage(t *testing.T) {
	data, err := crossdomain.PackRelayMessage(testutils.Message(3))
	require.NoError(t, err)
	require.Equal(t, hexutil.MustDecode("0xd7fd19dd"), data[:4])
	require.True(t, bytes.Contains(data, []byte("some more bytes")))
}

func TestBatchRelayMessagesCarriesBytes(t *testing.T) {
	msg := testutils.Message(4)
	msg.Message = []byte("payload")
	msg.Proof.StateRootBatchHeader.ExtraData = []byte("extra")
	msg.Proof.StateTrieWitness = []byte("state witness")
	data, err := crossdomain.PackBatchRelayMessages([]crossdomain.L2ToL1Message{msg})
	require.NoError(t, err)
	for _, want := range []string{"payload", "extra", "state witness", "some more bytes"} {
		require.True(t, bytes.Contains(data, []byte(want)), want)
	}

	decoded, err := crossdomain.UnpackBatchRelayMessages(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, []byte("payload"), []byte(decoded[0].Message))
	require.Equal(t, []byte("extra"), []byte(decoded[0].Proof.StateRootBatchHeader.ExtraData))
	require.Equal(t, msg.Proof.StateRootProof.Siblings, decoded[0].Proof.StateRootProof.Siblings)
	require.Equal(t, msg.Hash(), decoded[0].Hash())
}

func TestValidate(t *testing.T) {
	msg := testutils.Message(1)
	require.NoError(t, msg.Validate())

	msg.MessageNonce = nil
	require.ErrorIs(t, msg.Validate(), crossdomain.ErrNilNonce)

	msg = testutils.Message(1)
	msg.Proof.StateRootBatchHeader.BatchSize = nil
	require.Error(t, msg.Validate())
	msg.Normalize()
	require.NoError(t, msg.Validate())
}

func TestValidateRejectsOversizedNumbers(t *testing.T) {
	limit := new(big.Int).Lsh(big.NewInt(1), 256)
	over := new(big.Int).Add(limit, big.NewInt(1))

	msg := testutils.Message(1)
	msg.MessageNonce = over
	require.ErrorIs(t, msg.Validate(), crossdomain.ErrNonceOverflow)
	_, err := crossdomain.PackBatchRelayMessages([]crossdomain.L2ToL1Message{msg})
	require.ErrorIs(t, err, crossdomain.ErrNonceOverflow)

	msg.MessageNonce = new(big.Int).Sub(limit, big.NewInt(1))
	require.NoError(t, msg.Validate())

	msg = testutils.Message(1)
	msg.Proof.StateRootBatchHeader.BatchIndex = over
	require.ErrorContains(t, msg.Validate(), "batch index")

	msg = testutils.Message(1)
	msg.Proof.StateRootProof.Index = big.NewInt(-1)
	require.ErrorContains(t, msg.Validate(), "state root proof index")
}

func TestMessageJSON(t *testing.T) {
	msg := testutils.Message(7)
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.True(t, bytes.Contains(data, []byte(`"messageNonce":7`)))
	require.True(t, bytes.Contains(data, []byte(`"message":"0x1111`)))

	var decoded crossdomain.L2ToL1Message
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(msg, decoded, cmpOpts...); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, msg.Hash(), decoded.Hash())
}
