package cmd

import (
	_ "embed"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codelexer/pkg/pretok"
)

//go:embed help/config.md
var configHelp string

func configCmd(opts *options) *cobra.Command {
	var sequence bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "config [flags]",
		Short: "Print the effective pre-tokenizer configuration as JSON",
		Long:  configHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pt pretok.PreTokenizer = opts.codeLexer()
			if sequence {
				pt = pretok.NewSequence(pt)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(pt)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&sequence, "sequence", false, "wrap the configuration in a Sequence")

	return cmd
}
