// Package testutils provides fixed message fixtures for relayer tests.
package testutils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
)

var (
	NonNullBytes32 = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	NonZeroAddress = common.HexToAddress("0x1111111111111111111111111111111111111111")

	DefaultTarget = common.HexToAddress("0x1100000000000000000000000000000000000000")
	DefaultSender = common.HexToAddress("0x2200000000000000000000000000000000000000")
)

// DummyProof satisfies the ABI shape without being verifiable.
func DummyProof() crossdomain.L2MessageInclusionProof {
	return crossdomain.L2MessageInclusionProof{
		StateRoot: NonNullBytes32,
		StateRootBatchHeader: crossdomain.ChainBatchHeader{
			BatchIndex:        big.NewInt(0),
			BatchRoot:         common.Hash{},
			BatchSize:         big.NewInt(0),
			PrevTotalElements: big.NewInt(0),
			ExtraData:         common.Hash{}.Bytes(),
		},
		StateRootProof: crossdomain.ChainInclusionProof{
			Index:    big.NewInt(0),
			Siblings: []common.Hash{{}},
		},
		StateTrieWitness:   []byte("some bytes"),
		StorageTrieWitness: []byte("some more bytes"),
	}
}

// Message returns a message to DefaultTarget from DefaultSender with the given nonce.
func Message(nonce int64) crossdomain.L2ToL1Message {
	return crossdomain.L2ToL1Message{
		Target:       DefaultTarget,
		Sender:       DefaultSender,
		Message:      NonNullBytes32.Bytes(),
		MessageNonce: big.NewInt(nonce),
		Proof:        DummyProof(),
	}
}

// Messages returns three messages with nonces 1, 2 and 2; the last two are
// identical and share a hash.
func Messages() []crossdomain.L2ToL1Message {
	return []crossdomain.L2ToL1Message{Message(1), Message(2), Message(2)}
}
