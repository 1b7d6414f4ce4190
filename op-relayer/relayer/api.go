package relayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/store"
	oprpc "github.com/mantlenetworkio/mantle-relayer/op-service/rpc"
)

const (
	StatusUnknown = "unknown"
	StatusPending = "pending"
	StatusRelayed = "relayed"
)

type RelayerDriver interface {
	Start() error
	Stop() error
	RelayNow(ctx context.Context) (RoundResult, error)
}

type SubmitResult struct {
	Accepted   int           `json:"accepted"`
	Duplicates int           `json:"duplicates"`
	Hashes     []common.Hash `json:"hashes"`
}

type MessageStatus struct {
	Hash    common.Hash   `json:"hash"`
	Status  string        `json:"status"`
	Retries int           `json:"retries"`
	Record  *store.Record `json:"record,omitempty"`
}

type relayerAPI struct {
	log   log.Logger
	queue *Queue
	store *store.Store
}

func NewRelayerAPI(queue *Queue, st *store.Store, log log.Logger) *relayerAPI {
	return &relayerAPI{log: log, queue: queue, store: st}
}

func GetRelayerAPI(api *relayerAPI) gethrpc.API {
	return gethrpc.API{
		Namespace: "relayer",
		Service:   api,
	}
}

// SubmitMessages queues messages for relaying. Messages that are already
// queued or already relayed count as duplicates.
func (a *relayerAPI) SubmitMessages(_ context.Context, msgs []crossdomain.L2ToL1Message) (*SubmitResult, error) {
	res := &SubmitResult{Hashes: make([]common.Hash, 0, len(msgs))}
	for i, msg := range msgs {
		msg.Normalize()
		if err := msg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid message %d: %w", i, err)
		}
		relayed, err := a.store.IsRelayed(msg.Hash())
		if err != nil {
			return nil, err
		}
		if relayed {
			res.Duplicates++
			res.Hashes = append(res.Hashes, msg.Hash())
			continue
		}
		hash, added, err := a.queue.Add(msg)
		if err != nil {
			return nil, fmt.Errorf("message %d not queued (%d accepted before it): %w", i, res.Accepted, err)
		}
		if added {
			res.Accepted++
		} else {
			res.Duplicates++
		}
		res.Hashes = append(res.Hashes, hash)
	}
	a.log.Info("Received messages", "accepted", res.Accepted, "duplicates", res.Duplicates)
	return res, nil
}

func (a *relayerAPI) PendingCount(_ context.Context) (int, error) {
	return a.queue.Len(), nil
}

func (a *relayerAPI) MessageStatus(_ context.Context, hash common.Hash) (*MessageStatus, error) {
	if retries, ok := a.queue.Retries(hash); ok {
		return &MessageStatus{Hash: hash, Status: StatusPending, Retries: retries}, nil
	}
	rec, err := a.store.Get(hash)
	if errors.Is(err, store.ErrNotFound) {
		return &MessageStatus{Hash: hash, Status: StatusUnknown}, nil
	} else if err != nil {
		return nil, err
	}
	return &MessageStatus{Hash: hash, Status: StatusRelayed, Record: &rec}, nil
}

type adminAPI struct {
	*oprpc.CommonAdminAPI
	d RelayerDriver
}

func NewAdminAPI(d RelayerDriver, log log.Logger) *adminAPI {
	return &adminAPI{
		CommonAdminAPI: oprpc.NewCommonAdminAPI(log),
		d:              d,
	}
}

func GetAdminAPI(api *adminAPI) gethrpc.API {
	return gethrpc.API{
		Namespace: "admin",
		Service:   api,
	}
}

func (a *adminAPI) StartRelayer(_ context.Context) error {
	return a.d.Start()
}

func (a *adminAPI) StopRelayer(_ context.Context) error {
	return a.d.Stop()
}

func (a *adminAPI) RelayNow(ctx context.Context) (RoundResult, error) {
	return a.d.RelayNow(ctx)
}
