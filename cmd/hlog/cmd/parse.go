package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
	"github.com/msto63/hlog/foundation/template"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseOutput string

// parseResult is what "hlog parse" prints
type parseResult struct {
	Template     string                 `json:"template" yaml:"template"`
	Marker       string                 `json:"marker" yaml:"marker"`
	Placeholders []template.Placeholder `json:"placeholders" yaml:"placeholders"`
}

func newParseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "parse TEMPLATE",
		Short: "List the placeholders of a template",
		Long: `Parses TEMPLATE and prints every placeholder with its kind and rune
offsets. Malformed templates fail with the offset of the bad marker.

  hlog parse -- "-i items, -s found"`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	c.Flags().StringVarP(&parseOutput, "output", "o", "yaml", "Output format (yaml, json)")
	return c
}

func runParse(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	parser, err := template.NewParser(template.WithMarker(settings.Marker))
	if err != nil {
		return err
	}

	placeholders, err := parser.Parse(args[0])
	if err != nil {
		return err
	}

	result := parseResult{
		Template:     args[0],
		Marker:       string(parser.Marker()),
		Placeholders: placeholders,
	}
	if result.Placeholders == nil {
		result.Placeholders = []template.Placeholder{}
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(parseOutput) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		return hlogerror.Newf("unknown output format %q, use yaml or json", parseOutput).
			WithCode(hlogerror.CodeInvalidInput).
			WithOperation("cmd.parse").
			WithDetail("output", parseOutput)
	}
}
