package relayer

// Names the relayer contracts look up in the address manager.
const (
	NameL1CrossDomainMessenger    = "OVM_L1CrossDomainMessenger"
	NameL2BatchMessageRelayer     = "OVM_L2BatchMessageRelayer"
	NameL2MessageRelayer          = "OVM_L2MessageRelayer"
	NameCanonicalTransactionChain = "OVM_CanonicalTransactionChain"
	NameL1MultiMessageRelayer     = "OVM_L1MultiMessageRelayer"
)
