package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ezerfernandes/codelexer/pkg/pretok"
)

//go:embed help/split.md
var splitHelp string

// document is one processed input.
type document struct {
	name   string
	text   string
	splits []pretok.Split
}

func splitCmd(opts *options) *cobra.Command {
	var (
		format  string
		include []string
		check   bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "split [flags] [path...]",
		Aliases: []string{"s"},
		Short:   "Print the pre-token splits of documents",
		Long:    splitHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = opts.cfg.Output.Format
			}

			if !cmd.Flags().Changed("include") {
				include = opts.cfg.Output.Include
			}

			w, err := newWriter(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			docs, err := splitRun(cmd.Context(), opts, args, include)
			if err != nil {
				return err
			}

			for _, doc := range docs {
				if check {
					if err := pretok.Check(doc.splits, len(doc.text)); err != nil {
						return fmt.Errorf("%s: %w", doc.name, err)
					}
				}

				if err := w.write(doc); err != nil {
					return err
				}
			}

			opts.status("%d document(s) split\n", len(docs))

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format ("+formatNames+")")
	cmd.Flags().StringSliceVarP(&include, "include", "i", nil, "file name patterns to pick from directories")
	cmd.Flags().BoolVar(&check, "check", false, "verify that the splits partition every document")

	return cmd
}

// splitRun splits every input concurrently with one shared CodeLexer and
// returns the documents in input order.
func splitRun(ctx context.Context, opts *options, args, include []string) ([]*document, error) {
	inputs, err := opts.inputs(args, include)
	if err != nil {
		return nil, err
	}

	cl := opts.codeLexer()
	docs := make([]*document, len(inputs))

	if ctx == nil {
		ctx = context.Background()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, in := range inputs {
		i, in := i, in // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := opts.read(in)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}

			text := string(data)
			docs[i] = &document{name: in.name, text: text, splits: cl.Split(text)}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}
