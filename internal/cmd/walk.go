package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/gobwas/glob"
)

const stdinName = "-"

// input is one document to process.
type input struct {
	name string // as given by the user, or joined under a directory argument
	path string // name within options.fsys; empty for standard input
}

// inputs expands args into documents. Directories are walked and their
// files kept when the base name matches one of the include patterns.
func (o *options) inputs(args []string, include []string) ([]input, error) {
	if len(args) == 0 {
		return []input{{name: stdinName}}, nil
	}

	globs, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	var (
		inputs []input
		stdin  bool
	)

	for _, arg := range args {
		if arg == stdinName {
			if !stdin {
				inputs = append(inputs, input{name: stdinName})
			}

			stdin = true

			continue
		}

		root := o.locate(arg)

		info, err := fs.Stat(o.fsys, root)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}

		if !info.IsDir() {
			inputs = append(inputs, input{name: arg, path: root})

			continue
		}

		err = fs.WalkDir(o.fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !matchAny(globs, d.Name()) {
				return nil
			}

			inputs = append(inputs, input{name: path.Join(arg, relative(root, p)), path: p})

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return inputs, nil
}

func (o *options) read(in input) ([]byte, error) {
	if in.path == "" {
		return io.ReadAll(o.stdin)
	}

	return fs.ReadFile(o.fsys, in.path)
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	if len(globs) == 0 {
		return true
	}

	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}

func relative(root, p string) string {
	if root == "." {
		return p
	}

	if len(p) > len(root) {
		return p[len(root)+1:]
	}

	return ""
}
