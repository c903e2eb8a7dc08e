// Package cmd implements the codelexer command line.
package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezerfernandes/codelexer/internal/config"
	"github.com/ezerfernandes/codelexer/pkg/pretok"
)

//go:embed help/root.md
var rootHelp string

type statusFunc func(format string, args ...interface{})

type options struct {
	configPath string
	langs      []string
	logLevel   string
	logFormat  string
	quiet      bool

	stdin  io.Reader
	fsys   fs.FS
	locate func(string) string
	load   func(path string) (config.Config, error)

	cfg    config.Config
	log    *slog.Logger
	status statusFunc
}

// Execute runs the command line with args and exits non-zero on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	opts := &options{
		stdin:  os.Stdin,
		fsys:   os.DirFS("/"),
		locate: rootRelative,
		load:   config.LoadOS,
	}

	if f, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}

	if err := run(args, stdout, stderr, opts); err != nil {
		fmt.Fprintln(stderr, "codelexer:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, opts *options) error {
	root := rootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "codelexer",
		Short: "Split fenced code into language-aware pre-token boundaries",
		Long:  rootHelp,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},

		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (default "+config.DefaultFile+" if present)")
	flags.StringSliceVarP(&opts.langs, "lang", "l", nil, "language tags to lex, overrides configuration")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic level (debug|info|warn|error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "diagnostic format (text|json)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")

	root.AddCommand(splitCmd(opts), fencesCmd(opts), configCmd(opts))

	return root
}

// setup resolves the configuration, flags taking precedence over the
// environment and the file.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := o.load(o.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("lang") {
		cfg.Languages = o.langs
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.log = cfg.Log.Logger(cmd.ErrOrStderr())
	o.createStatus(cmd.ErrOrStderr())

	return nil
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func (o *options) codeLexer() *pretok.CodeLexer {
	return pretok.New(o.cfg.LanguageList(), pretok.WithLogger(o.log))
}

// rootRelative maps a local path to its name in os.DirFS("/").
func rootRelative(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	rel := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if rel == "" {
		return "."
	}

	return rel
}
