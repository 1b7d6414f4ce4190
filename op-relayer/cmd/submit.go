package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/flags"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/metrics"
	"github.com/mantlenetworkio/mantle-relayer/op-relayer/relayer"
	opservice "github.com/mantlenetworkio/mantle-relayer/op-service"
	"github.com/mantlenetworkio/mantle-relayer/op-service/cliapp"
	"github.com/mantlenetworkio/mantle-relayer/op-service/dial"
	oplog "github.com/mantlenetworkio/mantle-relayer/op-service/log"
	"github.com/mantlenetworkio/mantle-relayer/op-service/txmgr"
)

var (
	messagesFlag = &cli.PathFlag{
		Name:     "messages",
		Usage:    "JSON file holding the list of messages to relay",
		Required: true,
	}
	maxInflightFlag = &cli.Uint64Flag{
		Name:  "max-inflight",
		Usage: "Maximum number of batch transactions in flight, 0 for no limit",
		Value: 1,
	}
)

var submitCommand = &cli.Command{
	Name:  "submit",
	Usage: "Relays the messages of a file once and exits",
	Flags: append(cliapp.ProtectFlags(flags.Flags), messagesFlag, maxInflightFlag),
	Action: func(ctx *cli.Context) error {
		if err := flags.CheckRequired(ctx); err != nil {
			return err
		}
		cfg := relayer.NewConfig(ctx)
		if err := cfg.Check(); err != nil {
			return fmt.Errorf("invalid CLI flags: %w", err)
		}
		l := oplog.NewLogger(oplog.AppOut(ctx), cfg.LogConfig)

		msgs, err := readMessages(ctx.Path(messagesFlag.Name))
		if err != nil {
			return err
		}
		relayerAddr, err := opservice.ParseAddress(cfg.MultiMessageRelayerAddress)
		if err != nil {
			return err
		}

		client, err := dial.DialEthClientWithTimeout(ctx.Context, dial.DefaultDialTimeout, l, cfg.L1EthRpc)
		if err != nil {
			return fmt.Errorf("failed to dial rpc: %w", err)
		}
		defer client.Close()
		resolver, err := relayer.NewResolver(l, cfg, client)
		if err != nil {
			return err
		}
		mgr, err := txmgr.NewSimpleTxManager("relayer", l, metrics.NoopMetrics, cfg.TxMgrConfig)
		if err != nil {
			return err
		}
		defer mgr.Close()

		receipts, err := relayer.SubmitBatches(ctx.Context, l, mgr, resolver, relayerAddr, msgs, cfg.MaxBatchSize, ctx.Uint64(maxInflightFlag.Name))
		out, jerr := json.MarshalIndent(receipts, "", "  ")
		if jerr != nil {
			return jerr
		}
		if _, werr := fmt.Fprintln(ctx.App.Writer, string(out)); werr != nil {
			return werr
		}
		return err
	},
}
