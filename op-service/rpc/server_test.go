package rpc

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
)

type testAPI struct{}

func (a *testAPI) Frobnicate(n int) int {
	return n * 2
}

func TestBaseServer(t *testing.T) {
	server := NewServer(
		"127.0.0.1",
		0,
		"1.2.3-unstable",
		WithLogger(testlog.Logger(t, log.LevelInfo)),
	)
	server.AddAPI(rpc.API{
		Namespace: "test",
		Service:   new(testAPI),
	})
	require.NoError(t, server.Start())
	t.Cleanup(func() {
		_ = server.Stop()
	})

	client, err := rpc.DialContext(context.Background(), "http://"+server.Endpoint())
	require.NoError(t, err)
	defer client.Close()

	var version string
	require.NoError(t, client.CallContext(context.Background(), &version, "health_status"))
	require.Equal(t, "1.2.3-unstable", version)

	var res int
	require.NoError(t, client.CallContext(context.Background(), &res, "test_frobnicate", 2))
	require.Equal(t, 4, res)
}
