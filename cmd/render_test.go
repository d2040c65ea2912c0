package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/decor-cli/decor/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const renderSheet = `
[styles.card]
padding = 2
border = [1, "#ff0000"]
`

func TestRenderOverrides(t *testing.T) {
	Convey("Overrides are appended after the sheet chain", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().WriteFile("/styles.toml", []byte(renderSheet), 0o644))

		var out bytes.Buffer
		renderCmd.SetOut(&out)
		defer renderCmd.SetOut(os.Stdout)
		defer rootCmd.SetArgs(nil)

		rootCmd.SetArgs([]string{
			"render",
			"--sheet", "/styles.toml",
			"--style", "card",
			"--padding", "1",
			"--width", "20",
			"--fill", "0.5",
			"--chain",
		})
		So(rootCmd.Execute(), ShouldBeNil)

		So(strings.TrimSpace(out.String()), ShouldEqual,
			"modifier.padding(2).border(1, #ff0000).padding(1).width(20).fillMaxWidth(0.5)")
	})
}
