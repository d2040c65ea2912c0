package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should round-trip a sheet through the in-memory backend", func() {
			SetMemMapFs()
			So(API().WriteFile("/styles.toml", []byte("[styles.card]\nwidth = 4\n"), 0o644), ShouldBeNil)

			exists, err := API().Exists("/styles.toml")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
