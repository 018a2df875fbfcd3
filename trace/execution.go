// Package trace decodes the binary execution-trace files written by the
// (out of scope) interception library and enumerates them in the order
// they were created.
package trace

// Execution is the recorded cwd and argv of a single intercepted child
// process. It is immutable once parsed.
type Execution struct {
	Cwd  string
	Argv []string
}
