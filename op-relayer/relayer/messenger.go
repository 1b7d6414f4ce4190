package relayer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/addressmanager"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
)

var (
	ErrNotMessageRelayer  = errors.New("Only OVM_L2MessageRelayer can relay L2-to-L1 messages.")
	ErrMessageNotVerified = errors.New("Provided message could not be verified.")
	ErrAlreadyReceived    = errors.New("Provided message has already been received.")
	ErrMessageBlocked     = errors.New("Provided message has been blocked.")
	ErrSystemTarget       = errors.New("Cannot send L2->L1 messages to L1 system contracts.")
	ErrSenderNotSet       = errors.New("xDomainMessageSender is not set")
	ErrPaused             = errors.New("Pausable: paused")
	ErrNotPaused          = errors.New("Pausable: not paused")
	ErrReentrantCall      = errors.New("ReentrancyGuard: reentrant call")
	ErrNoMessenger        = errors.New("no messenger deployed at address")
)

// Messenger relays a single L2 to L1 message on behalf of caller.
type Messenger interface {
	RelayMessage(ctx context.Context, caller common.Address, msg crossdomain.L2ToL1Message) error
}

// MessengerLocator finds the messenger deployed at an address.
type MessengerLocator interface {
	Messenger(addr common.Address) (Messenger, error)
}

// StaticMessengers is a fixed address to messenger mapping.
type StaticMessengers map[common.Address]Messenger

func (s StaticMessengers) Messenger(addr common.Address) (Messenger, error) {
	m, ok := s[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMessenger, addr)
	}
	return m, nil
}

// Target receives relayed messages. A returned error marks the relay as failed.
type Target interface {
	HandleMessage(ctx context.Context, sender common.Address, message []byte) error
}

type TargetFunc func(ctx context.Context, sender common.Address, message []byte) error

func (f TargetFunc) HandleMessage(ctx context.Context, sender common.Address, message []byte) error {
	return f(ctx, sender, message)
}

// Verifier checks the inclusion proof of a message against the L2 state.
type Verifier interface {
	VerifyMessage(ctx context.Context, msg crossdomain.L2ToL1Message) (bool, error)
}

type VerifierFunc func(ctx context.Context, msg crossdomain.L2ToL1Message) (bool, error)

func (f VerifierFunc) VerifyMessage(ctx context.Context, msg crossdomain.L2ToL1Message) (bool, error) {
	return f(ctx, msg)
}

// RelayEvent mirrors the RelayedMessage and FailedRelayedMessage logs.
type RelayEvent struct {
	MsgHash common.Hash
	Success bool
	Err     error
}

type MessengerOption func(m *CrossDomainMessenger)

// WithVerifier installs a proof verifier. Without one every proof is accepted.
func WithVerifier(v Verifier) MessengerOption {
	return func(m *CrossDomainMessenger) {
		m.verifier = v
	}
}

// CrossDomainMessenger is the L1 side of the L2 to L1 bridge. It checks that
// a message may be relayed, delivers it to its target and remembers the
// outcome. It handles one relay at a time: a RelayMessage that overlaps
// another one, from the target or from any other caller, fails with
// ErrReentrantCall.
type CrossDomainMessenger struct {
	log      log.Logger
	resolver addressmanager.Resolver
	verifier Verifier

	// entered is set for the whole of a relay, so the cross domain sender is well defined.
	entered atomic.Bool

	mu                 sync.RWMutex
	owner              common.Address
	paused             bool
	xDomainMsgSender   common.Address
	xDomainSenderSet   bool
	successfulMessages map[common.Hash]bool
	blockedMessages    map[common.Hash]bool
	relayedMessages    map[common.Hash]bool
	targets            map[common.Address]Target

	feed event.Feed
}

func NewCrossDomainMessenger(l log.Logger, owner common.Address, resolver addressmanager.Resolver, opts ...MessengerOption) *CrossDomainMessenger {
	m := &CrossDomainMessenger{
		log:                l,
		resolver:           resolver,
		owner:              owner,
		successfulMessages: make(map[common.Hash]bool),
		blockedMessages:    make(map[common.Hash]bool),
		relayedMessages:    make(map[common.Hash]bool),
		targets:            make(map[common.Address]Target),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ Messenger = (*CrossDomainMessenger)(nil)

// RelayMessage delivers msg to its target. A failing target does not make
// RelayMessage fail: the failure is reported as an event and the message can
// be relayed again later.
func (m *CrossDomainMessenger) RelayMessage(ctx context.Context, caller common.Address, msg crossdomain.L2ToL1Message) error {
	if !m.entered.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	defer m.entered.Store(false)

	if m.isPaused() {
		return ErrPaused
	}
	if err := m.checkRelayer(ctx, caller); err != nil {
		return err
	}
	if m.verifier != nil {
		ok, err := m.verifier.VerifyMessage(ctx, msg)
		if err != nil {
			return fmt.Errorf("failed to verify message: %w", err)
		}
		if !ok {
			return ErrMessageNotVerified
		}
	}

	calldata := msg.XDomainCalldata()
	hash := crypto.Keccak256Hash(calldata)
	if m.SuccessfulMessages(hash) {
		return ErrAlreadyReceived
	}
	if m.BlockedMessages(hash) {
		return ErrMessageBlocked
	}
	ctc, err := m.resolver.Resolve(ctx, NameCanonicalTransactionChain)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", NameCanonicalTransactionChain, err)
	}
	if msg.Target == ctc {
		return ErrSystemTarget
	}

	m.mu.Lock()
	m.xDomainMsgSender = msg.Sender
	m.xDomainSenderSet = true
	target := m.targets[msg.Target]
	m.mu.Unlock()

	var targetErr error
	if target != nil {
		targetErr = target.HandleMessage(ctx, msg.Sender, msg.Message)
	}

	m.mu.Lock()
	m.xDomainMsgSender = common.Address{}
	m.xDomainSenderSet = false
	if targetErr == nil {
		m.successfulMessages[hash] = true
	}
	m.relayedMessages[crypto.Keccak256Hash(calldata, caller.Bytes())] = true
	m.mu.Unlock()

	if targetErr == nil {
		m.log.Info("Relayed message", "hash", hash, "target", msg.Target, "nonce", msg.MessageNonce)
	} else {
		m.log.Warn("Failed to relay message", "hash", hash, "target", msg.Target, "nonce", msg.MessageNonce, "err", targetErr)
	}
	m.feed.Send(RelayEvent{MsgHash: hash, Success: targetErr == nil, Err: targetErr})
	return nil
}

func (m *CrossDomainMessenger) checkRelayer(ctx context.Context, caller common.Address) error {
	relayer, err := m.resolver.Resolve(ctx, NameL2MessageRelayer)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", NameL2MessageRelayer, err)
	}
	if relayer != (common.Address{}) && caller != relayer {
		return ErrNotMessageRelayer
	}
	return nil
}

// XDomainMessageSender returns the L2 sender of the message being relayed.
func (m *CrossDomainMessenger) XDomainMessageSender() (common.Address, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.xDomainSenderSet {
		return common.Address{}, ErrSenderNotSet
	}
	return m.xDomainMsgSender, nil
}

func (m *CrossDomainMessenger) SuccessfulMessages(hash common.Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.successfulMessages[hash]
}

func (m *CrossDomainMessenger) BlockedMessages(hash common.Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blockedMessages[hash]
}

// RelayedMessages reports whether caller has attempted to relay the message
// identified by the xDomain calldata hash.
func (m *CrossDomainMessenger) RelayedMessages(msg crossdomain.L2ToL1Message, caller common.Address) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.relayedMessages[crypto.Keccak256Hash(msg.XDomainCalldata(), caller.Bytes())]
}

func (m *CrossDomainMessenger) BlockMessage(caller common.Address, hash common.Hash) error {
	return m.setBlocked(caller, hash, true)
}

func (m *CrossDomainMessenger) AllowMessage(caller common.Address, hash common.Hash) error {
	return m.setBlocked(caller, hash, false)
}

func (m *CrossDomainMessenger) setBlocked(caller common.Address, hash common.Hash, blocked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if caller != m.owner {
		return addressmanager.ErrNotOwner
	}
	m.blockedMessages[hash] = blocked
	m.log.Info("Updated message block list", "hash", hash, "blocked", blocked)
	return nil
}

func (m *CrossDomainMessenger) Pause(caller common.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if caller != m.owner {
		return addressmanager.ErrNotOwner
	}
	if m.paused {
		return ErrPaused
	}
	m.paused = true
	return nil
}

func (m *CrossDomainMessenger) Unpause(caller common.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if caller != m.owner {
		return addressmanager.ErrNotOwner
	}
	if !m.paused {
		return ErrNotPaused
	}
	m.paused = false
	return nil
}

func (m *CrossDomainMessenger) isPaused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// RegisterTarget makes t the receiver for messages sent to addr.
func (m *CrossDomainMessenger) RegisterTarget(addr common.Address, t Target) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.targets[addr] = t
}

func (m *CrossDomainMessenger) SubscribeRelayEvents(ch chan<- RelayEvent) event.Subscription {
	return m.feed.Subscribe(ch)
}
