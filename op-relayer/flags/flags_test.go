package flags

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestUniqueFlags(t *testing.T) {
	seenCLI := make(map[string]struct{})
	for _, flag := range Flags {
		for _, name := range flag.Names() {
			if _, ok := seenCLI[name]; ok {
				t.Errorf("duplicate flag %v", name)
				continue
			}
			seenCLI[name] = struct{}{}
		}
	}
}

func TestCorrectEnvVarPrefix(t *testing.T) {
	for _, flag := range Flags {
		envVars := flag.(interface{ GetEnvVars() []string }).GetEnvVars()
		require.Len(t, envVars, 1, "flag %v", flag.Names()[0])
		require.True(t, strings.HasPrefix(envVars[0], EnvVarPrefix+"_"), "flag %v env var %v", flag.Names()[0], envVars[0])
	}
}

func TestRequiredFlagsAreRequired(t *testing.T) {
	for _, flag := range requiredFlags {
		reqFlag, ok := flag.(cli.RequiredFlag)
		require.True(t, ok)
		require.True(t, reqFlag.IsRequired(), "flag %v", flag.Names()[0])
	}
	for _, flag := range optionalFlags {
		if reqFlag, ok := flag.(cli.RequiredFlag); ok {
			require.False(t, reqFlag.IsRequired(), "flag %v", flag.Names()[0])
		}
	}
}

func TestCheckRequired(t *testing.T) {
	app := cli.NewApp()
	app.Flags = slices.Clone(optionalFlags)
	for _, f := range requiredFlags {
		sf := *(f.(*cli.StringFlag))
		sf.Required = false
		app.Flags = append(app.Flags, &sf)
	}
	var got error
	app.Action = func(ctx *cli.Context) error {
		got = CheckRequired(ctx)
		return nil
	}
	require.NoError(t, app.Run([]string{"op-relayer", "--l1-eth-rpc=http://localhost:8545"}))
	require.ErrorContains(t, got, "multi-message-relayer-address")

	require.NoError(t, app.Run([]string{"op-relayer", "--l1-eth-rpc=http://localhost:8545", "--multi-message-relayer-address=0x1100000000000000000000000000000000000000"}))
	require.NoError(t, got)
}
