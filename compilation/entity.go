package compilation

import (
	"path/filepath"
	"strings"
)

// Compilation is the canonical, fully-initialized record of one
// translation unit. It is never mutated after construction.
//
// Two Compilations are equal iff their (Directory, Source, Phase,
// Flags) tuples are equal; Compiler and Output are deliberately
// excluded, so the same translation unit compiled twice with a
// different output name collapses to one record. Key returns a string
// that preserves exactly that equality, suitable as a Go map key since
// Flags (a slice) can't be compared directly.
type Compilation struct {
	Compiler  string
	Language  Language
	Phase     string
	Flags     []string
	Directory string
	Source    string
	// Output is nil when no -o was observed.
	Output *string
}

// unitSeparator and recordSeparator build an unambiguous join of
// Flags and of the four identity fields respectively; neither
// character can appear in a compiler flag or a filesystem path.
const (
	unitSeparator   = "\x1f"
	recordSeparator = "\x1e"
)

// New constructs a Compilation, normalizing directory and resolving
// source against it when source is relative. directory is expected to
// already be absolute (an Execution's cwd always is); New cleans it so
// that equivalent spellings such as "/p/./" and "/p" produce the same
// key. A relative directory is cleaned but stays relative.
func New(compiler string, language Language, phase string, flags []string, directory, src string, output *string) Compilation {
	dir := filepath.Clean(directory)
	source := src
	if !filepath.IsAbs(source) {
		source = filepath.Join(dir, source)
	}
	source = filepath.Clean(source)

	return Compilation{
		Compiler:  compiler,
		Language:  language,
		Phase:     phase,
		Flags:     append([]string(nil), flags...),
		Directory: dir,
		Source:    source,
		Output:    output,
	}
}

// Key returns the equality/hash key described above.
func (c Compilation) Key() string {
	return strings.Join([]string{
		c.Directory,
		c.Source,
		c.Phase,
		strings.Join(c.Flags, unitSeparator),
	}, recordSeparator)
}

// RelativeSource returns Source relative to Directory, the form used
// for the "file" field of a compile_commands.json entry. A Source
// outside Directory yields a path with leading ".." elements; Source
// is returned unchanged only if filepath.Rel fails.
func (c Compilation) RelativeSource() string {
	rel, err := filepath.Rel(c.Directory, c.Source)
	if err != nil {
		return c.Source
	}
	return rel
}

// Arguments reconstructs the argv this Compilation would serialize to:
// [compiler, phase] ++ flags ++ ["-o", output]? ++ [file].
func (c Compilation) Arguments() []string {
	file := c.RelativeSource()
	args := make([]string, 0, len(c.Flags)+5)
	args = append(args, c.Compiler, c.Phase)
	args = append(args, c.Flags...)
	if c.Output != nil {
		args = append(args, "-o", *c.Output)
	}
	return append(args, file)
}
