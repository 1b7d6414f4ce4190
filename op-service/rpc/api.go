package rpc

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
)

type CommonAdminAPI struct {
	log log.Logger
}

func NewCommonAdminAPI(log log.Logger) *CommonAdminAPI {
	return &CommonAdminAPI{
		log: log,
	}
}

func (n *CommonAdminAPI) SetLogLevel(ctx context.Context, lvlStr string) error {
	lvl, err := oplog.LevelFromString(lvlStr)
	if err != nil {
		return err
	}
	h, ok := n.log.Handler().(*log.GlogHandler)
	if !ok {
		return fmt.Errorf("log handler type %T cannot change log level", n.log.Handler())
	}
	h.Verbosity(lvl)
	return nil
}
