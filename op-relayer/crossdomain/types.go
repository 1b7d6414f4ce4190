// Package crossdomain holds the L2 to L1 message model shared by the
// relayer contracts and the submission service.
package crossdomain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNilNonce      = errors.New("message nonce must be set")
	ErrNegativeNonce = errors.New("message nonce must not be negative")
	ErrNonceOverflow = errors.New("message nonce does not fit in uint256")
)

// ChainBatchHeader identifies the state root batch a proof points into.
type ChainBatchHeader struct {
	BatchIndex        *big.Int      `json:"batchIndex"`
	BatchRoot         common.Hash   `json:"batchRoot"`
	BatchSize         *big.Int      `json:"batchSize"`
	PrevTotalElements *big.Int      `json:"prevTotalElements"`
	ExtraData         hexutil.Bytes `json:"extraData"`
}

// ChainInclusionProof is a merkle path of a state root within its batch.
type ChainInclusionProof struct {
	Index    *big.Int      `json:"index"`
	Siblings []common.Hash `json:"siblings"`
}

// L2MessageInclusionProof is carried opaquely; only the messenger's
// verifier interprets it.
type L2MessageInclusionProof struct {
	StateRoot            common.Hash         `json:"stateRoot"`
	StateRootBatchHeader ChainBatchHeader    `json:"stateRootBatchHeader"`
	StateRootProof       ChainInclusionProof `json:"stateRootProof"`
	StateTrieWitness     hexutil.Bytes       `json:"stateTrieWitness"`
	StorageTrieWitness   hexutil.Bytes       `json:"storageTrieWitness"`
}

// L2ToL1Message is a single entry of a batchRelayMessages call.
// Field order mirrors the ABI tuple and must not change.
type L2ToL1Message struct {
	Target       common.Address          `json:"target"`
	Sender       common.Address          `json:"sender"`
	Message      hexutil.Bytes           `json:"message"`
	MessageNonce *big.Int                `json:"messageNonce"`
	Proof        L2MessageInclusionProof `json:"proof"`
}

// XDomainCalldata returns the calldata the L2 messenger committed to for this message.
func (m L2ToL1Message) XDomainCalldata() []byte {
	return EncodeXDomainCalldata(m.Target, m.Sender, m.Message, m.MessageNonce)
}

// Hash is the keccak256 of the xDomain calldata. The proof is not part of it.
func (m L2ToL1Message) Hash() common.Hash {
	return crypto.Keccak256Hash(m.XDomainCalldata())
}

// Validate reports whether the message can be ABI encoded as is. Every
// numeric field must be set and fit in a uint256, since the encoder would
// otherwise wrap it and two different messages could share a hash.
func (m L2ToL1Message) Validate() error {
	if m.MessageNonce == nil {
		return ErrNilNonce
	}
	if m.MessageNonce.Sign() < 0 {
		return ErrNegativeNonce
	}
	if m.MessageNonce.BitLen() > 256 {
		return ErrNonceOverflow
	}
	h := m.Proof.StateRootBatchHeader
	if h.BatchIndex == nil || h.BatchSize == nil || h.PrevTotalElements == nil {
		return errors.New("batch header numeric fields must be set")
	}
	if m.Proof.StateRootProof.Index == nil {
		return errors.New("state root proof index must be set")
	}
	fields := []struct {
		name string
		v    *big.Int
	}{
		{"batch index", h.BatchIndex},
		{"batch size", h.BatchSize},
		{"prev total elements", h.PrevTotalElements},
		{"state root proof index", m.Proof.StateRootProof.Index},
	}
	for _, f := range fields {
		if !isUint256(f.v) {
			return fmt.Errorf("%s %v is not a uint256", f.name, f.v)
		}
	}
	return nil
}

func isUint256(v *big.Int) bool {
	return v.Sign() >= 0 && v.BitLen() <= 256
}

// Normalize replaces nil numeric fields with zero and nil byte slices with
// empty ones, so that a partially filled message packs cleanly.
func (m *L2ToL1Message) Normalize() {
	zeroIfNil := func(v **big.Int) {
		if *v == nil {
			*v = new(big.Int)
		}
	}
	zeroIfNil(&m.MessageNonce)
	zeroIfNil(&m.Proof.StateRootBatchHeader.BatchIndex)
	zeroIfNil(&m.Proof.StateRootBatchHeader.BatchSize)
	zeroIfNil(&m.Proof.StateRootBatchHeader.PrevTotalElements)
	zeroIfNil(&m.Proof.StateRootProof.Index)
	if m.Message == nil {
		m.Message = hexutil.Bytes{}
	}
	if m.Proof.StateRootProof.Siblings == nil {
		m.Proof.StateRootProof.Siblings = []common.Hash{}
	}
}

func (m L2ToL1Message) String() string {
	return fmt.Sprintf("L2ToL1Message{hash: %s, target: %s, sender: %s, nonce: %v}", m.Hash(), m.Target, m.Sender, m.MessageNonce)
}

// Hashes returns the message hashes in batch order.
func Hashes(msgs []L2ToL1Message) []common.Hash {
	out := make([]common.Hash, len(msgs))
	for i := range msgs {
		out[i] = msgs[i].Hash()
	}
	return out
}
