package doc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/mantlenetworkio/mantle-relayer/op-service/metrics"
)

var (
	Markdown = "markdown"
	JSON     = "json"
)

type Documenter interface {
	Document() []metrics.DocumentedMetric
}

func NewSubcommands(m Documenter) cli.Commands {
	return cli.Commands{
		{
			Name:  "metrics",
			Usage: "Dumps a list of supported metrics to stdout",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: Markdown,
					Usage: "Output format (json|markdown)",
				},
			},
			Action: func(ctx *cli.Context) error {
				out, err := Render(m.Document(), ctx.String("format"))
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(ctx.App.Writer, out)
				return err
			},
		},
	}
}

// Render formats the documented metrics, sorted as registered.
func Render(supportedMetrics []metrics.DocumentedMetric, format string) (string, error) {
	switch format {
	case Markdown:
		buf := new(bytes.Buffer)
		table := tablewriter.NewWriter(buf)
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Metric", "Description", "Labels", "Type"})
		for _, metric := range supportedMetrics {
			labels := ""
			if len(metric.Labels) > 0 {
				labels = strings.Join(metric.Labels, ",")
			}
			table.Append([]string{
				fmt.Sprintf("`%s`", metric.Name),
				metric.Help,
				labels,
				metric.Type,
			})
		}
		table.Render()
		return buf.String(), nil
	case JSON:
		enc, err := json.MarshalIndent(supportedMetrics, "", "  ")
		if err != nil {
			return "", err
		}
		return string(enc) + "\n", nil
	default:
		return "", fmt.Errorf("invalid format: %q", format)
	}
}
