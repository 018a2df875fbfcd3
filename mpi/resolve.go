// Package mpi recovers the real compiler argv that an MPI compiler
// wrapper (mpicc and friends) would expand to, by querying the wrapper
// itself rather than guessing its flags.
package mpi

import (
	"bytes"
	"os/exec"
	"strings"

	"go.chromium.org/luci/common/errors"

	"github.com/rizsotto/Bear/shellsplit"
)

// queryFlags are tried in order; the first one that exits zero and
// prints at least one line wins.
var queryFlags = []string{"-show", "--showme"}

// Resolve invokes the MPI wrapper at path with each of queryFlags in
// turn and shell-splits the first line of output from the first
// successful query. It returns an error if neither query succeeds,
// which callers must treat as "this execution is not a compilation",
// not as a fatal pipeline error.
func Resolve(path string) ([]string, error) {
	for _, flag := range queryFlags {
		line, err := queryFirstLine(path, flag)
		if err != nil || line == "" {
			continue
		}
		return shellsplit.Split(line)
	}
	return nil, errors.Reason("mpi: could not determine flags for %s", path).Err()
}

func queryFirstLine(path, flag string) (string, error) {
	cmd := exec.Command(path, flag)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	lines := strings.SplitN(out.String(), "\n", 2)
	if len(lines) == 0 {
		return "", nil
	}
	return strings.TrimRight(lines[0], "\r"), nil
}
