package trace

import (
	"encoding/binary"
	"io"
	"os"

	"go.chromium.org/luci/common/errors"
)

// stringTag and listTag are the 3-byte type tags that prefix every
// length-prefixed field in a trace file. They are a fixed contract with
// the interception library (ear.c in the original implementation) and
// must never change independently of it.
var (
	stringTag = [3]byte{'s', 't', 'r'}
	listTag   = [3]byte{'l', 's', 't'}
)

// Decode reads exactly one cwd STRING followed by one argv LIST from the
// trace file at path. Any short read or unexpected type tag is reported
// as an error; callers must treat that as "discard this one file and
// continue" per the corrupt-trace-file policy, never as a fatal error.
func Decode(path string) (Execution, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return Execution{}, err
	}
	defer f.Close()

	cwd, err := readString(f)
	if err != nil {
		return Execution{}, errors.Annotate(err, "%s: read cwd", path).Err()
	}
	argv, err := readStringList(f)
	if err != nil {
		return Execution{}, errors.Annotate(err, "%s: read argv", path).Err()
	}
	return Execution{Cwd: cwd, Argv: argv}, nil
}

func readTag(r io.Reader, want [3]byte) error {
	var got [3]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return errors.Annotate(err, "read type tag").Err()
	}
	if got != want {
		return errors.Reason("type not expected: got %q, want %q", got, want).Err()
	}
	return nil
}

func readLength(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Annotate(err, "read length").Err()
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readString(r io.Reader) (string, error) {
	if err := readTag(r, stringTag); err != nil {
		return "", err
	}
	length, err := readLength(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", errors.Annotate(err, "read string bytes").Err()
	}
	return string(buf), nil
}

func readStringList(r io.Reader) ([]string, error) {
	if err := readTag(r, listTag); err != nil {
		return nil, err
	}
	count, err := readLength(r)
	if err != nil {
		return nil, err
	}
	list := make([]string, count)
	for i := range list {
		s, err := readString(r)
		if err != nil {
			return nil, errors.Annotate(err, "element %d", i).Err()
		}
		list[i] = s
	}
	return list, nil
}
