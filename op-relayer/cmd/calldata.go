package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
)

var inputFlag = &cli.PathFlag{
	Name:    "in",
	Usage:   "Input file, stdin when unset",
	EnvVars: []string{"OP_RELAYER_CALLDATA_IN"},
}

var calldataCommand = &cli.Command{
	Name:  "calldata",
	Usage: "Encode and decode batchRelayMessages calldata",
	Subcommands: cli.Commands{
		{
			Name:      "encode",
			Usage:     "Reads a JSON list of messages and prints the hex calldata",
			Flags:     []cli.Flag{inputFlag},
			ArgsUsage: " ",
			Action: func(ctx *cli.Context) error {
				in, err := readInput(ctx)
				if err != nil {
					return err
				}
				out, err := encodeCalldata(in)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(ctx.App.Writer, out)
				return err
			},
		},
		{
			Name:  "decode",
			Usage: "Reads hex calldata and prints the messages as JSON",
			Flags: []cli.Flag{inputFlag},
			Action: func(ctx *cli.Context) error {
				in, err := readInput(ctx)
				if err != nil {
					return err
				}
				out, err := decodeCalldata(in)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(ctx.App.Writer, out)
				return err
			},
		},
	},
}

func readInput(ctx *cli.Context) ([]byte, error) {
	if path := ctx.Path(inputFlag.Name); path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(ctx.App.Reader)
}

func readMessages(path string) ([]crossdomain.L2ToL1Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseMessages(data)
}

func parseMessages(data []byte) ([]crossdomain.L2ToL1Message, error) {
	var msgs []crossdomain.L2ToL1Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	for i := range msgs {
		msgs[i].Normalize()
		if err := msgs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid message %d: %w", i, err)
		}
	}
	return msgs, nil
}

func encodeCalldata(in []byte) (string, error) {
	msgs, err := parseMessages(in)
	if err != nil {
		return "", err
	}
	data, err := crossdomain.PackBatchRelayMessages(msgs)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}

func decodeCalldata(in []byte) (string, error) {
	data, err := hexutil.Decode(strings.TrimSpace(string(in)))
	if err != nil {
		return "", fmt.Errorf("invalid calldata: %w", err)
	}
	msgs, err := crossdomain.UnpackBatchRelayMessages(data)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
