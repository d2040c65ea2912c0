package sheet

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/filesystem"
	"github.com/decor-cli/decor/modifier"
	"github.com/decor-cli/decor/style"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/multierr"
)

func init() {
	filesystem.SetMemMapFs()
}

const tomlSheet = `
[styles.card]
padding = [1, 2]
background = { color = "#1e1e2e", shape = "rounded" }
border = { width = 1, color = "blue", shape = "rounded" }
width = 40

[styles.banner]
padding = 1
background = "mauve"
fill_max_width = 0.5

[styles.badge]
border = [2, "red"]
`

const yamlSheet = `
styles:
  edges:
    padding: [15, 16, 16, 16]
    border:
      brush: ["#f38ba8", "#89b4fa"]
      shape: circle
`

func write(path, content string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	Convey("Given a TOML sheet", t, func() {
		write("/sheets/styles.toml", tomlSheet)

		s, err := Load("/sheets/styles.toml")
		So(err, ShouldBeNil)

		Convey("Names are sorted", func() {
			So(s.Names(), ShouldResemble, []string{"badge", "banner", "card"})
			So(s.Len(), ShouldEqual, 3)
		})

		Convey("Entries build in canonical order", func() {
			chain, ok := s.Lookup("card")
			So(ok, ShouldBeTrue)
			So(chain.Ops(), ShouldResemble, []modifier.Op{
				modifier.PaddingAxis{Horizontal: 1, Vertical: 2},
				modifier.BackgroundShaped{Color: color.New("#1e1e2e"), Shape: modifier.Rounded},
				modifier.BorderFillShape{Width: 1, Fill: modifier.ColorFill(color.Blue), Shape: modifier.Rounded},
				modifier.Width{Cells: 40},
			})
		})

		Convey("Fill fractions and palette names resolve", func() {
			chain, ok := s.Lookup("banner")
			So(ok, ShouldBeTrue)
			So(chain.Ops(), ShouldResemble, []modifier.Op{
				modifier.PaddingAll{All: 1},
				modifier.BackgroundColor{Color: color.Mauve},
				modifier.FillMaxWidth{Fraction: 0.5},
			})
		})

		Convey("A two-element border list is width and color", func() {
			chain, _ := s.Lookup("badge")
			So(chain.Ops(), ShouldResemble, []modifier.Op{modifier.BorderWidthColor{Width: 2, Color: color.Red}})
		})

		Convey("Unknown styles are missing", func() {
			_, ok := s.Lookup("cards")
			So(ok, ShouldBeFalse)
		})

		Convey("Flat returns a copy that can take a click handler", func() {
			flat, ok := s.Flat("card")
			So(ok, ShouldBeTrue)

			clicked := false
			flat.OnClick = func() { clicked = true }
			So(flat.Build().Click(), ShouldBeTrue)
			So(clicked, ShouldBeTrue)

			chain, _ := s.Lookup("card")
			So(chain.Clickable(), ShouldBeFalse)
		})
	})

	Convey("Given a YAML sheet", t, func() {
		write("/sheets/styles.yaml", yamlSheet)

		s, err := Load("/sheets/styles.yaml")
		So(err, ShouldBeNil)

		Convey("Four-edge padding and brushes resolve", func() {
			chain, ok := s.Lookup("edges")
			So(ok, ShouldBeTrue)

			ops := chain.Ops()
			So(ops, ShouldHaveLength, 2)
			So(ops[0], ShouldResemble, modifier.PaddingEdges{Left: 15, Top: 16, Right: 16, Bottom: 16})

			border, ok := ops[1].(modifier.BorderFillShape)
			So(ok, ShouldBeTrue)
			So(border.Shape, ShouldEqual, modifier.Circle)
			So(border.Fill.IsRight(), ShouldBeTrue)
		})
	})

	Convey("Given a sheet with malformed styles", t, func() {
		write("/sheets/broken.toml", `
[styles.good]
padding = 1

[styles.wide]
padding = "wide"

[styles.huge]
fill_max_size = 3.0
`)

		_, err := Load("/sheets/broken.toml")

		Convey("Every broken style is reported", func() {
			So(err, ShouldNotBeNil)
			So(multierr.Errors(err), ShouldHaveLength, 2)
		})

		Convey("Shape errors keep their cause", func() {
			So(errors.Is(err, style.ErrUnrecognizedShape), ShouldBeTrue)

			var sheetErr *Error
			So(errors.As(err, &sheetErr), ShouldBeTrue)
			So(sheetErr.Path, ShouldEqual, "/sheets/broken.toml")
		})
	})

	Convey("Given a sheet with misspelled fields", t, func() {
		write("/sheets/typos.toml", `
[styles.card]
paddng = 3
backgroud = "blue"
width = 10
`)

		_, err := Load("/sheets/typos.toml")
		So(err, ShouldNotBeNil)

		Convey("Every unknown field is reported with its style", func() {
			So(multierr.Errors(err), ShouldHaveLength, 2)
			So(errors.Is(err, ErrUnknownField), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"paddng"`)
			So(err.Error(), ShouldContainSubstring, `"backgroud"`)

			var sheetErr *Error
			So(errors.As(err, &sheetErr), ShouldBeTrue)
			So(sheetErr.Style, ShouldEqual, "card")
		})
	})

	Convey("Unknown top-level keys are reported", t, func() {
		write("/sheets/toplevel.yaml", "style:\n  card:\n    padding: 1\n")

		_, err := Load("/sheets/toplevel.yaml")
		So(errors.Is(err, ErrUnknownField), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, `"style"`)
	})

	Convey("Style names keep their case and dots", t, func() {
		write("/sheets/names.toml", `
[styles.PrimaryButton]
padding = 1

[styles."v1.card"]
width = 4
`)

		s, err := Load("/sheets/names.toml")
		So(err, ShouldBeNil)
		So(s.Names(), ShouldResemble, []string{"PrimaryButton", "v1.card"})

		chain, ok := s.Lookup("PrimaryButton")
		So(ok, ShouldBeTrue)
		So(chain.Ops(), ShouldResemble, []modifier.Op{modifier.PaddingAll{All: 1}})

		chain, ok = s.Lookup("v1.card")
		So(ok, ShouldBeTrue)
		So(chain.Ops(), ShouldResemble, []modifier.Op{modifier.Width{Cells: 4}})

		_, ok = s.Lookup("primarybutton")
		So(ok, ShouldBeFalse)
		So(s.Suggest("primarybutton"), ShouldEqual, "PrimaryButton")
	})

	Convey("JSON sheets load", t, func() {
		write("/sheets/styles.json", `{"styles": {"chip": {"padding": [1, 0], "border": [1, "red"], "width": 12}}}`)

		s, err := Load("/sheets/styles.json")
		So(err, ShouldBeNil)

		chain, _ := s.Lookup("chip")
		So(chain.Ops(), ShouldResemble, []modifier.Op{
			modifier.PaddingAxis{Horizontal: 1, Vertical: 0},
			modifier.BorderWidthColor{Width: 1, Color: color.Red},
			modifier.Width{Cells: 12},
		})
	})

	Convey("Unsupported sheet types are an error", t, func() {
		write("/sheets/styles.ini", "[styles]")

		_, err := Load("/sheets/styles.ini")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "unsupported sheet type")
	})

	Convey("A missing sheet is an error", t, func() {
		_, err := Load("/sheets/missing.toml")
		So(err, ShouldNotBeNil)

		var sheetErr *Error
		So(errors.As(err, &sheetErr), ShouldBeTrue)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a loaded sheet", t, func() {
		write("/sheets/search.toml", tomlSheet)
		s := lo.Must(Load("/sheets/search.toml"))

		Convey("Suggest finds the closest name", func() {
			So(s.Suggest("crad"), ShouldEqual, "card")
			So(s.Suggest("banners"), ShouldEqual, "banner")
		})

		Convey("Filter matches fuzzily", func() {
			So(s.Filter("bn"), ShouldResemble, []string{"banner"})
			So(s.Filter(""), ShouldResemble, s.Names())
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema describes styles", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "styles")
		So(string(data), ShouldContainSubstring, "fill_max_width")
	})
}
