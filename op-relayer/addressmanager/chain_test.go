package addressmanager

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-bindings/bindings"
	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
)

// registryCaller answers getAddress and owner calls the way a deployed
// Lib_AddressManager would.
type registryCaller struct {
	abi   *abi.ABI
	reg   *AddressManager
	calls int
}

func newRegistryCaller(t *testing.T, reg *AddressManager) *registryCaller {
	parsed, err := bindings.LibAddressManagerMetaData.GetAbi()
	require.NoError(t, err)
	return &registryCaller{abi: parsed, reg: reg}
}

func (c *registryCaller) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (c *registryCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	c.calls++
	method, err := c.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "getAddress":
		return method.Outputs.Pack(c.reg.GetAddress(args[0].(string)))
	case "owner":
		return method.Outputs.Pack(c.reg.Owner())
	default:
		return nil, errors.New("unsupported method " + method.Name)
	}
}

func TestChainResolverCaches(t *testing.T) {
	reg := New(owner)
	require.NoError(t, reg.SetAddress(owner, "OVM_L1CrossDomainMessenger", common.Address{0x01}))
	caller := newRegistryCaller(t, reg)

	r, err := NewChainResolver(testlog.Logger(t, log.LevelDebug), common.Address{0xee}, caller, time.Minute)
	require.NoError(t, err)
	require.Equal(t, common.Address{0xee}, r.Address())

	for i := 0; i < 3; i++ {
		addr, err := r.Resolve(context.Background(), "OVM_L1CrossDomainMessenger")
		require.NoError(t, err)
		require.Equal(t, common.Address{0x01}, addr)
	}
	require.Equal(t, 1, caller.calls)

	// registry changes are invisible until invalidated
	require.NoError(t, reg.SetAddress(owner, "OVM_L1CrossDomainMessenger", common.Address{0x02}))
	addr, _ := r.Resolve(context.Background(), "OVM_L1CrossDomainMessenger")
	require.Equal(t, common.Address{0x01}, addr)
	r.Invalidate("OVM_L1CrossDomainMessenger")
	addr, _ = r.Resolve(context.Background(), "OVM_L1CrossDomainMessenger")
	require.Equal(t, common.Address{0x02}, addr)
	require.Equal(t, 2, caller.calls)

	r.Purge()
	_, _ = r.Resolve(context.Background(), "OVM_L1CrossDomainMessenger")
	require.Equal(t, 3, caller.calls)
}

func TestChainResolverDoesNotCacheUnset(t *testing.T) {
	reg := New(owner)
	caller := newRegistryCaller(t, reg)
	r, err := NewChainResolver(testlog.Logger(t, log.LevelDebug), common.Address{0xee}, caller, time.Minute)
	require.NoError(t, err)

	addr, err := r.Resolve(context.Background(), "OVM_L2BatchMessageRelayer")
	require.NoError(t, err)
	require.Equal(t, common.Address{}, addr)

	require.NoError(t, reg.SetAddress(owner, "OVM_L2BatchMessageRelayer", common.Address{0x03}))
	addr, err = r.Resolve(context.Background(), "OVM_L2BatchMessageRelayer")
	require.NoError(t, err)
	require.Equal(t, common.Address{0x03}, addr)

	o, err := r.Owner(context.Background())
	require.NoError(t, err)
	require.Equal(t, owner, o)
}
