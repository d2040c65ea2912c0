package log

import (
	"testing"

	"github.com/decor-cli/decor/filesystem"
	"github.com/decor-cli/decor/key"
	"github.com/decor-cli/decor/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Entries are discarded", func() {
			So(func() { WithFields(nil).Info("dropped") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		t.Setenv(where.EnvConfigPath, "/decor-log-test")
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("A dated log file is created under the logs directory", func() {
			Debugf("merged %d ops", 3)
			entries, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})
	})
}
