package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/sheet"
	. "github.com/smartystreets/goconvey/convey"
)

func testSheet() *sheet.Sheet {
	width := 10
	s, err := sheet.FromDocument("memory", sheet.Document{Styles: map[string]sheet.Entry{
		"card":  {Padding: 1, Border: []any{1, "red"}},
		"plain": {Width: &width},
	}})
	if err != nil {
		panic(err)
	}
	return s
}

func TestModel(t *testing.T) {
	Convey("Given a preview model", t, func() {
		m, err := newModel(&Options{Sheet: testSheet(), Text: "hi"})
		So(err, ShouldBeNil)
		So(m.current(), ShouldEqual, "card")

		Convey("Tab cycles through styles", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(m.current(), ShouldEqual, "plain")

			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(m.current(), ShouldEqual, "card")

			m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
			So(m.current(), ShouldEqual, "plain")
		})

		Convey("Enter clicks the current element", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(m.clicks["card"], ShouldEqual, 1)
			So(m.View(), ShouldContainSubstring, "1 clicks")
		})

		Convey("A left release on the element clicks it", func() {
			el := m.element()
			So(lipgloss.Width(el), ShouldEqual, 6)
			So(lipgloss.Height(el), ShouldEqual, 5)

			release := func(x, y int) tea.MouseMsg {
				return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
			}

			m.Update(release(0, boxTop))
			m.Update(release(5, boxTop+4))
			So(m.clicks["card"], ShouldEqual, 2)

			Convey("Releases outside the element are ignored", func() {
				m.Update(release(0, boxTop-1))
				m.Update(release(6, boxTop))
				m.Update(release(0, boxTop+5))
				So(m.clicks["card"], ShouldEqual, 2)
			})

			Convey("Presses are ignored", func() {
				m.Update(tea.MouseMsg{X: 1, Y: boxTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
				So(m.clicks["card"], ShouldEqual, 2)
			})
		})

		Convey("Window size becomes the frame", func() {
			m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
			So(m.frame.Width, ShouldEqual, 80)
			So(m.frame.Height, ShouldEqual, 25-chrome)
		})

		Convey("q quits", func() {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			So(cmd, ShouldNotBeNil)
		})
	})

	Convey("Starting on a named style", t, func() {
		m, err := newModel(&Options{Sheet: testSheet(), Style: "plain"})
		So(err, ShouldBeNil)
		So(m.current(), ShouldEqual, "plain")
	})

	Convey("An unknown style suggests the closest name", t, func() {
		_, err := newModel(&Options{Sheet: testSheet(), Style: "crad"})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `"card"`)
	})

	Convey("An empty sheet cannot be previewed", t, func() {
		_, err := newModel(&Options{})
		So(err, ShouldNotBeNil)
	})
}
