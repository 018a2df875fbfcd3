// Package source maps a filename extension to a source-language tag,
// the way a C/C++ compiler driver would, without inspecting file
// contents.
package source

import "path/filepath"

// extensions maps a file extension (with its leading dot, exact case)
// to the language it is classified as when the enclosing compiler
// invocation is a C (or Objective-C-capable) compiler. See Classify for
// the handling of the C-vs-C++ ambiguity on ".c" and ".i".
var extensions = map[string]string{
	".i":   "c-cpp-output",
	".ii":  "c++-cpp-output",
	".m":   "objective-c",
	".mi":  "objective-c-cpp-output",
	".mm":  "objective-c++",
	".mii": "objective-c++-cpp-output",
	".cc":  "c++",
	".cp":  "c++",
	".cpp": "c++",
	".cxx": "c++",
	".c++": "c++",
	".C":   "c++",
	".CC":  "c++",
	".C++": "c++",
	".txx": "c++",
	".s":   "assembly",
	".S":   "assembly",
	".sx":  "assembly",
	".asm": "assembly",
	".f":   "fortran",
	".F":   "fortran",
	".f77": "fortran",
	".f90": "fortran",
	".F90": "fortran",
	".f95": "fortran",
	".F95": "fortran",
	".FOR": "fortran",
	".for": "fortran",
	".fc":  "fortran",
	".ftn": "fortran",
	".fpp": "fortran",
}

// Classify returns the presumed source language for filename based on
// its extension, and true if filename is recognized as a source file at
// all. cCompiler indicates whether the enclosing invocation is a C (as
// opposed to C++) compiler, which only affects the ".c" and ".i"
// extensions — every other extension's language is compiler-independent.
func Classify(filename string, cCompiler bool) (language string, ok bool) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".c":
		if cCompiler {
			return "c", true
		}
		return "c++", true
	case ".i":
		if cCompiler {
			return "c-cpp-output", true
		}
		return "c++-cpp-output", true
	}
	lang, ok := extensions[ext]
	return lang, ok
}

// IsSource reports whether filename's extension is recognized as a
// source file at all, independent of which language it is classified
// as.
func IsSource(filename string) bool {
	_, ok := Classify(filename, true)
	return ok
}
