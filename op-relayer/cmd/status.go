package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/relayer"
)

var (
	printGreen  = color.New(color.FgGreen).SprintFunc()
	printYellow = color.New(color.FgYellow).SprintFunc()
	printRed    = color.New(color.FgRed).SprintFunc()
)

var relayerRPCFlag = &cli.StringFlag{
	Name:    "relayer-rpc",
	Usage:   "RPC endpoint of a running op-relayer",
	Value:   "http://localhost:8545",
	EnvVars: []string{"OP_RELAYER_STATUS_RPC"},
}

var statusCommand = &cli.Command{
	Name:      "status",
	Usage:     "Shows the pending count and the status of the given message hashes",
	ArgsUsage: "[message hash...]",
	Flags:     []cli.Flag{relayerRPCFlag},
	Action: func(ctx *cli.Context) error {
		hashes := make([]common.Hash, 0, ctx.NArg())
		for _, arg := range ctx.Args().Slice() {
			var h common.Hash
			if err := h.UnmarshalText([]byte(arg)); err != nil {
				return fmt.Errorf("invalid message hash %q: %w", arg, err)
			}
			hashes = append(hashes, h)
		}

		client, err := rpc.DialContext(ctx.Context, ctx.String(relayerRPCFlag.Name))
		if err != nil {
			return fmt.Errorf("failed to dial relayer: %w", err)
		}
		defer client.Close()

		var pending int
		if err := client.CallContext(ctx.Context, &pending, "relayer_pendingCount"); err != nil {
			return err
		}
		statuses := make([]relayer.MessageStatus, len(hashes))
		for i, h := range hashes {
			if err := client.CallContext(ctx.Context, &statuses[i], "relayer_messageStatus", h); err != nil {
				return fmt.Errorf("failed to fetch status of %s: %w", h, err)
			}
		}
		_, err = fmt.Fprint(ctx.App.Writer, renderStatus(pending, statuses))
		return err
	},
}

func renderStatus(pending int, statuses []relayer.MessageStatus) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "pending messages: %d\n", pending)
	if len(statuses) == 0 {
		return buf.String()
	}
	table := tablewriter.NewWriter(buf)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Message", "Status", "Retries", "Tx", "Block", "Batch"})
	for _, s := range statuses {
		row := []string{s.Hash.Hex(), colorStatus(s.Status), strconv.Itoa(s.Retries), "", "", ""}
		if s.Record != nil {
			row[3] = s.Record.TxHash.Hex()
			row[4] = strconv.FormatUint(s.Record.BlockNumber, 10)
			row[5] = s.Record.BatchID
		}
		table.Append(row)
	}
	table.Render()
	return buf.String()
}

func colorStatus(status string) string {
	switch status {
	case relayer.StatusRelayed:
		return printGreen(status)
	case relayer.StatusPending:
		return printYellow(status)
	default:
		return printRed(status)
	}
}
