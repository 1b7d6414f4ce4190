package crossdomain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mantlenetworkio/mantle-relayer/op-bindings/bindings"
)

const (
	xDomainSignature   = "relayMessage(address,address,bytes,uint256)"
	batchRelayMethod   = "batchRelayMessages"
	relayMessageMethod = "relayMessage"
)

var (
	xDomainSelector = crypto.Keccak256([]byte(xDomainSignature))[:4]
	xDomainArgs     abi.Arguments

	relayerABI   *abi.ABI
	messengerABI *abi.ABI
)

func init() {
	addressType, _ := abi.NewType("address", "", nil)
	bytesType, _ := abi.NewType("bytes", "", nil)
	uint256Type, _ := abi.NewType("uint256", "", nil)
	xDomainArgs = abi.Arguments{
		{Name: "_target", Type: addressType},
		{Name: "_sender", Type: addressType},
		{Name: "_message", Type: bytesType},
		{Name: "_messageNonce", Type: uint256Type},
	}

	var err error
	if relayerABI, err = bindings.OVML1MultiMessageRelayerMetaData.GetAbi(); err != nil {
		panic(fmt.Errorf("multi message relayer abi: %w", err))
	}
	if messengerABI, err = bindings.OVML1CrossDomainMessengerMetaData.GetAbi(); err != nil {
		panic(fmt.Errorf("cross domain messenger abi: %w", err))
	}
}

// EncodeXDomainCalldata builds the calldata the L2 messenger records for a
// sent message: the relayMessage(address,address,bytes,uint256) selector
// followed by the ABI encoded arguments. A nil nonce encodes as zero. Nonces
// outside uint256 wrap, callers check them with Validate first.
func EncodeXDomainCalldata(target, sender common.Address, message []byte, nonce *big.Int) []byte {
	if nonce == nil {
		nonce = new(big.Int)
	}
	if message == nil {
		message = []byte{}
	}
	packed, err := xDomainArgs.Pack(target, sender, message, nonce)
	if err != nil {
		// the argument types are fixed, packing cannot fail
		panic(fmt.Errorf("encode xdomain calldata: %w", err))
	}
	return append(append(make([]byte, 0, 4+len(packed)), xDomainSelector...), packed...)
}

// DecodeXDomainCalldata is the inverse of EncodeXDomainCalldata.
func DecodeXDomainCalldata(data []byte) (target, sender common.Address, message []byte, nonce *big.Int, err error) {
	if len(data) < 4 || string(data[:4]) != string(xDomainSelector) {
		return common.Address{}, common.Address{}, nil, nil, errors.New("not xdomain calldata")
	}
	values, err := xDomainArgs.Unpack(data[4:])
	if err != nil {
		return common.Address{}, common.Address{}, nil, nil, fmt.Errorf("unpack xdomain calldata: %w", err)
	}
	return values[0].(common.Address), values[1].(common.Address), values[2].([]byte), values[3].(*big.Int), nil
}

func normalized(msgs []L2ToL1Message) ([]bindings.OVML1MultiMessageRelayerL2ToL1Message, error) {
	out := make([]bindings.OVML1MultiMessageRelayerL2ToL1Message, len(msgs))
	for i := range msgs {
		msg := msgs[i]
		msg.Normalize()
		if err := msg.Validate(); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		out[i] = msg.toBinding()
	}
	return out, nil
}

// PackBatchRelayMessages returns calldata for batchRelayMessages(messages).
func PackBatchRelayMessages(msgs []L2ToL1Message) ([]byte, error) {
	norm, err := normalized(msgs)
	if err != nil {
		return nil, err
	}
	data, err := relayerABI.Pack(batchRelayMethod, norm)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", batchRelayMethod, err)
	}
	return data, nil
}

// UnpackBatchRelayMessages decodes batchRelayMessages calldata, selector included.
func UnpackBatchRelayMessages(calldata []byte) ([]L2ToL1Message, error) {
	method, ok := relayerABI.Methods[batchRelayMethod]
	if !ok {
		return nil, fmt.Errorf("abi has no method %s", batchRelayMethod)
	}
	if len(calldata) < 4 || string(calldata[:4]) != string(method.ID) {
		return nil, fmt.Errorf("calldata is not a %s call", batchRelayMethod)
	}
	values, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", batchRelayMethod, err)
	}
	var decoded []bindings.OVML1MultiMessageRelayerL2ToL1Message
	if err := method.Inputs.Copy(&decoded, values); err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", batchRelayMethod, err)
	}
	msgs := make([]L2ToL1Message, len(decoded))
	for i := range decoded {
		msgs[i] = messageFromBinding(decoded[i])
	}
	return msgs, nil
}

// PackRelayMessage returns calldata for the messenger's five argument relayMessage.
func PackRelayMessage(msg L2ToL1Message) ([]byte, error) {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	data, err := messengerABI.Pack(relayMessageMethod, msg.Target, msg.Sender, []byte(msg.Message), msg.MessageNonce, msg.Proof.toBinding())
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", relayMessageMethod, err)
	}
	return data, nil
}

// BatchRelayMessagesSelector is the 4 byte selector of batchRelayMessages.
func BatchRelayMessagesSelector() []byte {
	return relayerABI.Methods[batchRelayMethod].ID
}
