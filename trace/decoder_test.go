package trace

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeString(t *testing.T, buf *[]byte, s string) {
	t.Helper()
	*buf = append(*buf, 's', 't', 'r')
	length := make([]byte, 4)
	binary.LittleEndian.PutUint32(length, uint32(len(s)))
	*buf = append(*buf, length...)
	*buf = append(*buf, s...)
}

func writeList(t *testing.T, buf *[]byte, items []string) {
	t.Helper()
	*buf = append(*buf, 'l', 's', 't')
	count := make([]byte, 4)
	binary.LittleEndian.PutUint32(count, uint32(len(items)))
	*buf = append(*buf, count...)
	for _, item := range items {
		writeString(t, buf, item)
	}
}

func writeTraceFile(t *testing.T, dir, name, cwd string, argv []string) string {
	t.Helper()
	var buf []byte
	writeString(t, &buf, cwd)
	writeList(t, &buf, argv)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()

	Convey("Decoding a well formed trace file", t, func() {
		path := writeTraceFile(t, dir, "execution.0", "/p", []string{"gcc", "-c", "foo.c"})

		exec, err := Decode(path)

		So(err, ShouldBeNil)
		So(exec.Cwd, ShouldEqual, "/p")
		So(exec.Argv, ShouldResemble, []string{"gcc", "-c", "foo.c"})
	})

	Convey("Decoding an empty argv", t, func() {
		path := writeTraceFile(t, dir, "execution.1", "/p", []string{})

		exec, err := Decode(path)

		So(err, ShouldBeNil)
		So(exec.Argv, ShouldBeEmpty)
	})

	Convey("A truncated file is reported as an error, never a panic", t, func() {
		path := filepath.Join(dir, "execution.2")
		if err := os.WriteFile(path, []byte("st"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Decode(path)

		So(err, ShouldNotBeNil)
	})

	Convey("A bad type tag is reported as an error", t, func() {
		path := filepath.Join(dir, "execution.3")
		if err := os.WriteFile(path, []byte("xxx\x00\x00\x00\x00"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Decode(path)

		So(err, ShouldNotBeNil)
	})

	Convey("A missing file is reported as an error", t, func() {
		_, err := Decode(filepath.Join(dir, "does-not-exist"))

		So(err, ShouldNotBeNil)
	})
}
