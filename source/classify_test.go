package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("C extension depends on the enclosing compiler", t, func() {
		lang, ok := Classify("foo.c", true)
		So(ok, ShouldBeTrue)
		So(lang, ShouldEqual, "c")

		lang, ok = Classify("foo.c", false)
		So(ok, ShouldBeTrue)
		So(lang, ShouldEqual, "c++")
	})

	Convey("C++ extensions are unambiguous", t, func() {
		for _, ext := range []string{"foo.cc", "foo.cpp", "foo.cxx", "foo.C", "foo.txx"} {
			lang, ok := Classify(ext, true)
			So(ok, ShouldBeTrue)
			So(lang, ShouldEqual, "c++")
		}
	})

	Convey("Fortran, assembly and objective-c extensions are recognized", t, func() {
		lang, ok := Classify("foo.f90", true)
		So(ok, ShouldBeTrue)
		So(lang, ShouldEqual, "fortran")

		lang, ok = Classify("foo.s", true)
		So(ok, ShouldBeTrue)
		So(lang, ShouldEqual, "assembly")

		lang, ok = Classify("foo.mm", true)
		So(ok, ShouldBeTrue)
		So(lang, ShouldEqual, "objective-c++")
	})

	Convey("An unrecognized extension is not a source file", t, func() {
		_, ok := Classify("foo.o", true)
		So(ok, ShouldBeFalse)

		_, ok = Classify("foo.txt", true)
		So(ok, ShouldBeFalse)

		_, ok = Classify("foo", true)
		So(ok, ShouldBeFalse)
	})
}

func TestIsSource(t *testing.T) {
	Convey("IsSource agrees with Classify", t, func() {
		So(IsSource("foo.c"), ShouldBeTrue)
		So(IsSource("foo.o"), ShouldBeFalse)
	})
}
