// Package addressmanager provides the name to address registry the relayer
// contracts use to look up their peers and their authorized callers.
package addressmanager

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
)

var (
	ErrNotOwner     = errors.New("Ownable: caller is not the owner")
	ErrZeroNewOwner = errors.New("Ownable: new owner is the zero address")
)

// Resolver looks up the address registered under a name.
// Unset names resolve to the zero address without an error.
type Resolver interface {
	Resolve(ctx context.Context, name string) (common.Address, error)
}

// AddressSet is emitted whenever a name is (re)assigned.
type AddressSet struct {
	Name       string
	NewAddress common.Address
	OldAddress common.Address
}

// AddressManager is an in-memory, owner controlled name registry.
type AddressManager struct {
	mu        sync.RWMutex
	owner     common.Address
	addresses map[common.Hash]common.Address
	names     map[common.Hash]string

	feed event.Feed
}

var _ Resolver = (*AddressManager)(nil)

func New(owner common.Address) *AddressManager {
	return &AddressManager{
		owner:     owner,
		addresses: make(map[common.Hash]common.Address),
		names:     make(map[common.Hash]string),
	}
}

func nameKey(name string) common.Hash {
	return crypto.Keccak256Hash([]byte(name))
}

// SetAddress registers addr under name. Only the owner may call it.
func (m *AddressManager) SetAddress(caller common.Address, name string, addr common.Address) error {
	m.mu.Lock()
	if caller != m.owner {
		m.mu.Unlock()
		return ErrNotOwner
	}
	key := nameKey(name)
	old := m.addresses[key]
	m.addresses[key] = addr
	m.names[key] = name
	m.mu.Unlock()

	m.feed.Send(AddressSet{Name: name, NewAddress: addr, OldAddress: old})
	return nil
}

// GetAddress returns the address registered under name, or the zero address.
func (m *AddressManager) GetAddress(name string) common.Address {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.addresses[nameKey(name)]
}

func (m *AddressManager) Resolve(_ context.Context, name string) (common.Address, error) {
	return m.GetAddress(name), nil
}

func (m *AddressManager) Owner() common.Address {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.owner
}

func (m *AddressManager) TransferOwnership(caller, newOwner common.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if caller != m.owner {
		return ErrNotOwner
	}
	if newOwner == (common.Address{}) {
		return ErrZeroNewOwner
	}
	m.owner = newOwner
	return nil
}

// SubscribeAddressSet delivers every subsequent SetAddress to ch.
func (m *AddressManager) SubscribeAddressSet(ch chan<- AddressSet) event.Subscription {
	return m.feed.Subscribe(ch)
}

// Entries returns a snapshot of all registered names, sorted by name.
func (m *AddressManager) Entries() []AddressSet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]AddressSet, 0, len(m.names))
	for key, name := range m.names {
		out = append(out, AddressSet{Name: name, NewAddress: m.addresses[key]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
