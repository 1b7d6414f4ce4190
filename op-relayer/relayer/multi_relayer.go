package relayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
)

var ErrNotBatchRelayer = errors.New("OVM_L1MultiMessageRelayer: Function can only be called by the OVM_L2BatchMessageRelayer")

// BatchError reports the message that stopped a batch.
type BatchError struct {
	Index int
	Hash  common.Hash
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("message %d (%s) failed to relay: %v", e.Index, e.Hash, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// MultiMessageRelayer forwards batches of L2 to L1 messages to the cross
// domain messenger. Only the address registered as OVM_L2BatchMessageRelayer
// may submit batches.
type MultiMessageRelayer struct {
	log        log.Logger
	self       common.Address
	resolver   addressmanager.Resolver
	messengers MessengerLocator
}

func NewMultiMessageRelayer(self common.Address, resolver addressmanager.Resolver, messengers MessengerLocator, l log.Logger) *MultiMessageRelayer {
	return &MultiMessageRelayer{
		log:        l,
		self:       self,
		resolver:   resolver,
		messengers: messengers,
	}
}

func (r *MultiMessageRelayer) Address() common.Address {
	return r.self
}

// Resolve looks up name in the relayer's address manager.
func (r *MultiMessageRelayer) Resolve(ctx context.Context, name string) (common.Address, error) {
	return r.resolver.Resolve(ctx, name)
}

// BatchRelayMessages relays each message, in order, through the cross domain
// messenger. The relayer is the caller the messenger sees. The first failing
// message stops the batch; messages before it stay relayed.
func (r *MultiMessageRelayer) BatchRelayMessages(ctx context.Context, caller common.Address, msgs []crossdomain.L2ToL1Message) error {
	authorized, err := r.resolver.Resolve(ctx, NameL2BatchMessageRelayer)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", NameL2BatchMessageRelayer, err)
	}
	if authorized == (common.Address{}) || caller != authorized {
		r.log.Warn("Rejected batch from unauthorized caller", "caller", caller, "authorized", authorized)
		return ErrNotBatchRelayer
	}

	messengerAddr, err := r.resolver.Resolve(ctx, NameL1CrossDomainMessenger)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", NameL1CrossDomainMessenger, err)
	}
	messenger, err := r.messengers.Messenger(messengerAddr)
	if err != nil {
		return err
	}

	for i := range msgs {
		if err := messenger.RelayMessage(ctx, r.self, msgs[i]); err != nil {
			return &BatchError{Index: i, Hash: msgs[i].Hash(), Err: err}
		}
	}
	r.log.Debug("Relayed batch", "count", len(msgs), "messenger", messengerAddr)
	return nil
}
