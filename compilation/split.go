package compilation

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rizsotto/Bear/mpi"
	"github.com/rizsotto/Bear/source"
	"github.com/rizsotto/Bear/tool"
	"github.com/rizsotto/Bear/trace"
)

// abortTokens stop the whole invocation from being treated as a
// compilation: preprocess-only, driver-internal, or dry-run passes.
var abortTokens = map[string]bool{
	"-E": true, "-cc1": true, "-cc1as": true, "-M": true, "-MM": true, "-###": true,
}

var phaseTokens = map[string]bool{"-S": true, "-c": true}

var twoTokenFlags = map[string]bool{"-D": true, "-U": true, "-I": true, "-include": true}

var linkerArgPattern = regexp.MustCompile(`^-(l|L|Wl,).+`)

// Command is the intermediate result of scanning a compiler invocation's
// argument list, before it is split per source file into Compilations.
type Command struct {
	Compiler string
	Language Language
	Phase    []string
	Flags    []string
	Files    []string
	Output   []string
}

// Split classifies exec and, if it is a compilation, yields zero or
// more Compilation records, one per source file mentioned on the
// command line that still exists on disk. A non-compilation execution
// (not a compiler, preprocess-only, linker-only, MPI resolution
// failure) yields nothing; that is not an error.
func Split(exec trace.Execution, cfg tool.Config) []Compilation {
	compiler, language, rest, ok := splitCompiler(exec.Argv, cfg)
	if !ok {
		return nil
	}
	cmd, ok := splitCommand(compiler, language, rest)
	if !ok {
		return nil
	}
	return emit(exec.Cwd, cmd)
}

// splitCompiler recursively peels wrappers (ccache, distcc) and expands
// MPI wrappers (mpicc and friends) until it finds a program it
// recognizes as a C, C++, or Fortran compiler, or runs out of argv.
func splitCompiler(argv []string, cfg tool.Config) (compiler string, language Language, rest []string, ok bool) {
	if len(argv) == 0 {
		return "", "", nil, false
	}
	executable := filepath.Base(argv[0])
	parameters := argv[1:]

	switch {
	case tool.IsWrapper(executable):
		if c, l, r, found := splitCompiler(parameters, cfg); found {
			return c, l, r, true
		}
		// A wrapper with no inner compiler is treated as a C compiler.
		return argv[0], C, parameters, true
	case tool.IsMPIWrapper(executable):
		mpiArgv, err := mpi.Resolve(argv[0])
		if err != nil {
			return "", "", nil, false
		}
		expanded := append(append([]string(nil), mpiArgv...), parameters...)
		return splitCompiler(expanded, cfg)
	case cfg.IsCCompiler(executable):
		return argv[0], C, parameters, true
	case cfg.IsCXXCompiler(executable):
		return argv[0], CXX, parameters, true
	case cfg.IsFortranCompiler(executable):
		return argv[0], Fortran, parameters, true
	}
	return "", "", nil, false
}

// splitCommand scans the argument stream of a recognized compiler
// invocation left to right, classifying each token per the rules in
// the command splitter design. It returns ok=false when the invocation
// should abort (preprocess-only etc.) or mentions no source file.
func splitCommand(compiler string, language Language, rest []string) (Command, bool) {
	cmd := Command{Compiler: compiler, Language: language}
	cCompilerContext := language != CXX

	i, n := 0, len(rest)
	next := func() (string, bool) {
		if i < n {
			tok := rest[i]
			i++
			return tok, true
		}
		return "", false
	}

	for {
		tok, has := next()
		if !has {
			break
		}
		switch {
		case abortTokens[tok]:
			return Command{}, false
		case phaseTokens[tok]:
			cmd.Phase = append(cmd.Phase, tok)
		default:
			if skip, isIgnored := IgnoredFlags[tok]; isIgnored {
				for k := 0; k < skip; k++ {
					next()
				}
				continue
			}
			if linkerArgPattern.MatchString(tok) {
				continue
			}
			if twoTokenFlags[tok] {
				cmd.Flags = append(cmd.Flags, tok)
				if arg, has := next(); has {
					cmd.Flags = append(cmd.Flags, arg)
				}
				continue
			}
			if tok == "-o" {
				if arg, has := next(); has {
					cmd.Output = append(cmd.Output, arg)
				}
				continue
			}
			if !strings.HasPrefix(tok, "-") {
				if _, isSource := source.Classify(tok, cCompilerContext); isSource {
					cmd.Files = append(cmd.Files, tok)
					continue
				}
			}
			cmd.Flags = append(cmd.Flags, tok)
		}
	}

	if len(cmd.Files) == 0 {
		return Command{}, false
	}
	return cmd, true
}

// emit builds one Compilation per source file in cmd, normalizing
// paths against directory and dropping any whose source no longer
// exists on disk.
func emit(directory string, cmd Command) []Compilation {
	phase := "-c"
	if len(cmd.Phase) > 0 {
		phase = cmd.Phase[0]
	}
	var output *string
	if len(cmd.Output) > 0 {
		o := cmd.Output[0]
		output = &o
	}

	var results []Compilation
	for _, src := range cmd.Files {
		c := New(cmd.Compiler, cmd.Language, phase, cmd.Flags, directory, src, output)
		if _, err := os.Stat(c.Source); err != nil {
			continue
		}
		results = append(results, c)
	}
	return results
}
