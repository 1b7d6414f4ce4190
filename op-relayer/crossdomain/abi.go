package crossdomain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/mantlenetworkio/mantle-relayer/op-bindings/bindings"
)

// The ABI packer only accepts plain []byte for bytes values, so messages are
// packed through the binding structs rather than the JSON friendly types.

func (m L2ToL1Message) toBinding() bindings.OVML1MultiMessageRelayerL2ToL1Message {
	return bindings.OVML1MultiMessageRelayerL2ToL1Message{
		Target:       m.Target,
		Sender:       m.Sender,
		Message:      []byte(m.Message),
		MessageNonce: m.MessageNonce,
		Proof:        m.Proof.toBinding(),
	}
}

func (p L2MessageInclusionProof) toBinding() bindings.IOVML1CrossDomainMessengerL2MessageInclusionProof {
	siblings := make([][32]byte, len(p.StateRootProof.Siblings))
	for i, s := range p.StateRootProof.Siblings {
		siblings[i] = s
	}
	h := p.StateRootBatchHeader
	return bindings.IOVML1CrossDomainMessengerL2MessageInclusionProof{
		StateRoot: p.StateRoot,
		StateRootBatchHeader: bindings.LibOVMCodecChainBatchHeader{
			BatchIndex:        h.BatchIndex,
			BatchRoot:         h.BatchRoot,
			BatchSize:         h.BatchSize,
			PrevTotalElements: h.PrevTotalElements,
			ExtraData:         bytesOrEmpty(h.ExtraData),
		},
		StateRootProof: bindings.LibOVMCodecChainInclusionProof{
			Index:    p.StateRootProof.Index,
			Siblings: siblings,
		},
		StateTrieWitness:   bytesOrEmpty(p.StateTrieWitness),
		StorageTrieWitness: bytesOrEmpty(p.StorageTrieWitness),
	}
}

func messageFromBinding(b bindings.OVML1MultiMessageRelayerL2ToL1Message) L2ToL1Message {
	p := b.Proof
	siblings := make([]common.Hash, len(p.StateRootProof.Siblings))
	for i, s := range p.StateRootProof.Siblings {
		siblings[i] = s
	}
	return L2ToL1Message{
		Target:       b.Target,
		Sender:       b.Sender,
		Message:      b.Message,
		MessageNonce: b.MessageNonce,
		Proof: L2MessageInclusionProof{
			StateRoot: p.StateRoot,
			StateRootBatchHeader: ChainBatchHeader{
				BatchIndex:        p.StateRootBatchHeader.BatchIndex,
				BatchRoot:         p.StateRootBatchHeader.BatchRoot,
				BatchSize:         p.StateRootBatchHeader.BatchSize,
				PrevTotalElements: p.StateRootBatchHeader.PrevTotalElements,
				ExtraData:         p.StateRootBatchHeader.ExtraData,
			},
			StateRootProof: ChainInclusionProof{
				Index:    p.StateRootProof.Index,
				Siblings: siblings,
			},
			StateTrieWitness:   p.StateTrieWitness,
			StorageTrieWitness: p.StorageTrieWitness,
		},
	}
}

func bytesOrEmpty(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
