package compilation

// Language tags the source language a Compilation (or an intermediate
// Command) was built for.
type Language string

const (
	C       Language = "C"
	CXX     Language = "CXX"
	Fortran Language = "FORTRAN"
	Other   Language = "OTHER"
)
