package compilation

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewNormalizesPaths(t *testing.T) {
	Convey("A relative source is joined against the directory", t, func() {
		c := New("gcc", C, "-c", nil, "/p/./", "foo.c", nil)

		So(c.Directory, ShouldEqual, "/p")
		So(c.Source, ShouldEqual, "/p/foo.c")
	})

	Convey("An absolute source is left as-is but still cleaned", t, func() {
		c := New("gcc", C, "-c", nil, "/p", "/q/../r/foo.c", nil)

		So(c.Source, ShouldEqual, "/r/foo.c")
	})
}

func TestKeyEquality(t *testing.T) {
	Convey("Compiler, output and language do not affect the key", t, func() {
		output := "a.o"
		a := New("gcc", C, "-c", []string{"-O2"}, "/p", "a.c", &output)
		b := New("clang", CXX, "-c", []string{"-O2"}, "/p", "a.c", nil)

		So(a.Key(), ShouldEqual, b.Key())
	})

	Convey("Different flags produce different keys", t, func() {
		a := New("gcc", C, "-c", []string{"-O2"}, "/p", "a.c", nil)
		b := New("gcc", C, "-c", []string{"-O3"}, "/p", "a.c", nil)

		So(a.Key(), ShouldNotEqual, b.Key())
	})

	Convey("Different phases produce different keys", t, func() {
		a := New("gcc", C, "-c", nil, "/p", "a.c", nil)
		b := New("gcc", C, "-S", nil, "/p", "a.c", nil)

		So(a.Key(), ShouldNotEqual, b.Key())
	})
}

func TestRelativeSource(t *testing.T) {
	Convey("RelativeSource computes the path of source relative to directory", t, func() {
		c := New("gcc", C, "-c", nil, "/p", "sub/a.c", nil)

		So(c.RelativeSource(), ShouldEqual, filepath.Join("sub", "a.c"))
	})
}

func TestArguments(t *testing.T) {
	Convey("Arguments rebuilds argv with an output segment when present", t, func() {
		output := "a.o"
		c := New("gcc", C, "-c", []string{"-O2"}, "/p", "a.c", &output)

		So(c.Arguments(), ShouldResemble, []string{"gcc", "-c", "-O2", "-o", "a.o", "a.c"})
	})

	Convey("Arguments omits the output segment when absent", t, func() {
		c := New("gcc", C, "-c", []string{"-O2"}, "/p", "a.c", nil)

		So(c.Arguments(), ShouldResemble, []string{"gcc", "-c", "-O2", "a.c"})
	})
}
