// Package tool classifies executable basenames as C, C++, or Fortran
// compilers, compiler wrappers (ccache, distcc), or MPI wrappers
// (mpicc and friends), following a fixed table of name patterns plus an
// operator-supplied override list.
package tool

import (
	"path/filepath"
	"regexp"
)

// Config is the operator-declared compiler allowlist plus the switch
// that disables pattern-based classification entirely.
type Config struct {
	// OnlyUse, when set, disables all pattern matching: only the
	// basenames listed below are accepted as compilers.
	OnlyUse bool

	CCompilers       []string
	CXXCompilers     []string
	FortranCompilers []string
}

var (
	wrapperPattern    = regexp.MustCompile(`^(distcc|ccache)$`)
	mpiWrapperPattern = regexp.MustCompile(`^mpi(cc|cxx|CC|c\+\+|fort|f77|f90)$`)

	cPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^([^-]*-)*[mg]cc(-?\d+(\.\d+){0,2})?$`),
		regexp.MustCompile(`^([^-]*-)*clang(-\d+(\.\d+){0,2})?$`),
		regexp.MustCompile(`^(|i)cc$`),
		regexp.MustCompile(`^(g|)xlc$`),
	}

	cxxPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(c\+\+|cxx|CC)$`),
		regexp.MustCompile(`^([^-]*-)*[mg]\+\+(-?\d+(\.\d+){0,2})?$`),
		regexp.MustCompile(`^([^-]*-)*clang\+\+(-\d+(\.\d+){0,2})?$`),
		regexp.MustCompile(`^icpc$`),
		regexp.MustCompile(`^(g|)xl(C|c\+\+)$`),
	}

	fortranPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(f95)$`),
		regexp.MustCompile(`^(gfortran)$`),
		regexp.MustCompile(`^(ifort)$`),
		regexp.MustCompile(`^(pg)(f77|f90|f95|fortran)$`),
	}
)

// IsWrapper reports whether basename is a transparent compiler wrapper
// (ccache, distcc).
func IsWrapper(basename string) bool {
	return wrapperPattern.MatchString(basename)
}

// IsMPIWrapper reports whether basename is an MPI compiler wrapper
// (mpicc and friends).
func IsMPIWrapper(basename string) bool {
	return mpiWrapperPattern.MatchString(basename)
}

// IsCCompiler reports whether basename should be classified as a C
// compiler, given cfg.
func (cfg Config) IsCCompiler(basename string) bool {
	return cfg.matches(basename, cfg.CCompilers, cPatterns)
}

// IsCXXCompiler reports whether basename should be classified as a C++
// compiler, given cfg.
func (cfg Config) IsCXXCompiler(basename string) bool {
	return cfg.matches(basename, cfg.CXXCompilers, cxxPatterns)
}

// IsFortranCompiler reports whether basename should be classified as a
// Fortran compiler, given cfg.
func (cfg Config) IsFortranCompiler(basename string) bool {
	return cfg.matches(basename, cfg.FortranCompilers, fortranPatterns)
}

func (cfg Config) matches(basename string, declared []string, patterns []*regexp.Regexp) bool {
	for _, compiler := range declared {
		if basename == filepath.Base(compiler) {
			return true
		}
	}
	if cfg.OnlyUse {
		return false
	}
	for _, pattern := range patterns {
		if pattern.MatchString(basename) {
			return true
		}
	}
	return false
}
