package addressmanager

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mantlenetworkio/mantle-relayer/op-bindings/bindings"
)

const resolverCacheSize = 128

// ChainResolver resolves names against a deployed Lib_AddressManager.
// Non-zero results are cached for ttl.
type ChainResolver struct {
	log      log.Logger
	address  common.Address
	contract *bindings.LibAddressManagerCaller
	cache    *expirable.LRU[string, common.Address]
}

var _ Resolver = (*ChainResolver)(nil)

func NewChainResolver(l log.Logger, address common.Address, caller bind.ContractCaller, ttl time.Duration) (*ChainResolver, error) {
	contract, err := bindings.NewLibAddressManagerCaller(address, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to bind address manager at %s: %w", address, err)
	}
	return &ChainResolver{
		log:      l,
		address:  address,
		contract: contract,
		cache:    expirable.NewLRU[string, common.Address](resolverCacheSize, nil, ttl),
	}, nil
}

func (r *ChainResolver) Resolve(ctx context.Context, name string) (common.Address, error) {
	if addr, ok := r.cache.Get(name); ok {
		return addr, nil
	}
	addr, err := r.contract.GetAddress(&bind.CallOpts{Context: ctx}, name)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	if addr != (common.Address{}) {
		r.cache.Add(name, addr)
	}
	r.log.Debug("Resolved address", "name", name, "address", addr)
	return addr, nil
}

// Owner reads the current owner of the on-chain registry. It is never cached.
func (r *ChainResolver) Owner(ctx context.Context) (common.Address, error) {
	return r.contract.Owner(&bind.CallOpts{Context: ctx})
}

// Address is the registry contract the resolver reads from.
func (r *ChainResolver) Address() common.Address {
	return r.address
}

// Invalidate drops a cached entry so the next Resolve hits the chain.
func (r *ChainResolver) Invalidate(name string) {
	r.cache.Remove(name)
}

func (r *ChainResolver) Purge() {
	r.cache.Purge()
}
