package dial

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

// DefaultDialTimeout is a default timeout for dialing a client.
const DefaultDialTimeout = 1 * time.Minute
const defaultRetryCount = 30
const defaultRetryTime = 2 * time.Second
const defaultConnectTimeout = 10 * time.Second

// DialEthClientWithTimeout attempts to dial the L1 provider using the provided
// URL. If the dial doesn't complete within timeout, this method will return an error.
func DialEthClientWithTimeout(ctx context.Context, timeout time.Duration, log log.Logger, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c, err := dialRPCClientWithBackoff(ctx, log, url)
	if err != nil {
		return nil, err
	}

	return ethclient.NewClient(c), nil
}

// DialRPCClientWithTimeout attempts to dial the RPC provider using the provided URL.
func DialRPCClientWithTimeout(ctx context.Context, timeout time.Duration, log log.Logger, url string, opts ...rpc.ClientOption) (*rpc.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return dialRPCClientWithBackoff(ctx, log, url, opts...)
}

// Dials a JSON-RPC endpoint repeatedly, with a fixed backoff, until a client connection is established.
func dialRPCClientWithBackoff(ctx context.Context, log log.Logger, addr string, opts ...rpc.ClientOption) (*rpc.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= defaultRetryCount; attempt++ {
		c, err := dialRPCClient(ctx, addr, opts...)
		if err == nil {
			return c, nil
		}
		lastErr = err
		log.Warn("Failed to dial RPC endpoint, retrying", "addr", addr, "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up dialing %s: %w", addr, ctx.Err())
		case <-time.After(defaultRetryTime):
		}
	}
	return nil, fmt.Errorf("failed to dial %s after %d attempts: %w", addr, defaultRetryCount, lastErr)
}

// Dials a JSON-RPC endpoint once, and checks it responds.
func dialRPCClient(ctx context.Context, addr string, opts ...rpc.ClientOption) (*rpc.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	c, err := rpc.DialOptions(dialCtx, addr, opts...)
	if err != nil {
		return nil, err
	}
	var chainID string
	if err := c.CallContext(dialCtx, &chainID, "eth_chainId"); err != nil {
		c.Close()
		return nil, fmt.Errorf("endpoint %s did not respond to eth_chainId: %w", addr, err)
	}
	return c, nil
}
