package cliapp

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// ProtectFlags ensures that no flags are safe to Apply() flag sets to without accidental flag-value mutation.
// ProtectFlags panics if any of the flag definitions cannot be protected.
func ProtectFlags(flags []cli.Flag) []cli.Flag {
	out := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		fCopy, err := cloneFlag(f)
		if err != nil {
			panic(fmt.Errorf("failed to clone flag %q: %w", f.Names()[0], err))
		}
		out = append(out, fCopy)
	}
	return out
}

// cloneFlag copies a generic flag, so its Value is not shared between app runs.
func cloneFlag(f cli.Flag) (cli.Flag, error) {
	switch typedFlag := f.(type) {
	case *cli.GenericFlag:
		cpy := *typedFlag
		if cloneable, ok := typedFlag.Value.(interface{ Clone() any }); ok {
			cpy.Value = cloneable.Clone().(cli.Generic)
		} else {
			return nil, fmt.Errorf("generic flag %q of type %T is not cloneable", typedFlag.Name, typedFlag.Value)
		}
		return &cpy, nil
	default:
		return f, nil
	}
}

// PrintDocumentedFlags renders a short flag listing, used by the doc subcommand.
func PrintDocumentedFlags(flags []cli.Flag) string {
	var b strings.Builder
	for _, f := range flags {
		docFlag, ok := f.(cli.DocGenerationFlag)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "--%s\t%s\n", f.Names()[0], docFlag.GetUsage())
	}
	return b.String()
}
