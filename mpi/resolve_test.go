package mpi

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeFakeWrapper(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake wrapper script is a shell script")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "mpicc")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	Convey("A wrapper answering -show is resolved", t, func() {
		path := writeFakeWrapper(t, "#!/bin/sh\nif [ \"$1\" = \"-show\" ]; then echo gcc -I/opt/mpi/include -lmpi; fi\n")

		argv, err := Resolve(path)

		So(err, ShouldBeNil)
		So(argv, ShouldResemble, []string{"gcc", "-I/opt/mpi/include", "-lmpi"})
	})

	Convey("A wrapper only answering --showme falls back to the second query", t, func() {
		path := writeFakeWrapper(t, "#!/bin/sh\nif [ \"$1\" = \"--showme\" ]; then echo g++ -c; else exit 1; fi\n")

		argv, err := Resolve(path)

		So(err, ShouldBeNil)
		So(argv, ShouldResemble, []string{"g++", "-c"})
	})

	Convey("A wrapper answering neither query is a fatal error for this resolution", t, func() {
		path := writeFakeWrapper(t, "#!/bin/sh\nexit 1\n")

		_, err := Resolve(path)

		So(err, ShouldNotBeNil)
	})
}
