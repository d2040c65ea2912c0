package config

import (
	"encoding/json"
	"testing"

	"github.com/decor-cli/decor/filesystem"
	"github.com/decor-cli/decor/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.RenderWrap), ShouldEqual, 0)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("render.wrap")
			So(result, ShouldEqual, "render_wrap")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the sheet path field", t, func() {
		field := Default[key.SheetPath]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "DECOR_SHEET_PATH")
		})

		Convey("MarshalJSON should report the declared type", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.SheetPath)
			So(decoded["type"], ShouldEqual, "string")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.SheetPath)
		})
	})
}
