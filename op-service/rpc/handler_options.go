package rpc

import (
	"github.com/ethereum/go-ethereum/log"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

type Option func(b *Handler)

func WithCORSHosts(hosts []string) Option {
	return func(b *Handler) {
		b.corsHosts = hosts
	}
}

func WithVHosts(hosts []string) Option {
	return func(b *Handler) {
		b.vHosts = hosts
	}
}

func WithLogger(lgr log.Logger) Option {
	return func(b *Handler) {
		b.log = lgr
	}
}

// WithRPCRecorder adds an RPC recorder to the RPC handler stack.
// See op-service RPCMetricer to create a recorder that maintains RPC metrics.
func WithRPCRecorder(recorder gethrpc.Recorder) Option {
	return func(b *Handler) {
		b.recorder = recorder
	}
}
