package cmd

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codelexer/internal/fence"
	"github.com/ezerfernandes/codelexer/internal/mdcode"
)

//go:embed help/fences.md
var fencesHelp string

func fencesCmd(opts *options) *cobra.Command {
	var commonmark bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "fences [flags] [path]",
		Aliases: []string{"f"},
		Short:   "List the fenced code blocks of a document",
		Long:    fencesHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := opts.inputs(args, nil)
			if err != nil {
				return err
			}

			if len(inputs) != 1 {
				return fmt.Errorf("%w: got %d documents", errSingleDocument, len(inputs))
			}

			src, err := opts.read(inputs[0])
			if err != nil {
				return err
			}

			if commonmark {
				return listBlocks(cmd.OutOrStdout(), src)
			}

			listFences(cmd.OutOrStdout(), string(src), opts)

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&commonmark, "commonmark", false, "parse the document as CommonMark instead of scanning for fences")

	return cmd
}

func listFences(w io.Writer, text string, opts *options) {
	cl := opts.codeLexer()

	tbl := table.New("lang", "header", "code", "footer", "lexed").WithWriter(w)

	for _, m := range fence.Scan(text) {
		lang := m.Lang
		if lang == "" {
			lang = "-"
		}

		tbl.AddRow(lang, rng(m.Header), rng(m.Code), rng(m.Footer), cl.IsSupported(m.Lang))
	}

	tbl.Print()
}

func listBlocks(w io.Writer, src []byte) error {
	blocks, err := mdcode.Unfence(src)
	if err != nil {
		return err
	}

	tbl := table.New("lang", "lines", "code", "meta").WithWriter(w)

	for _, b := range blocks {
		lang := b.Lang
		if lang == "" {
			lang = "-"
		}

		tbl.AddRow(lang, fmt.Sprintf("L%d-%d", b.StartLine, b.EndLine), fmt.Sprintf("[%d,%d)", b.Start, b.End), b.Meta.String())
	}

	tbl.Print()

	return nil
}

func rng(r fence.Range) string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
