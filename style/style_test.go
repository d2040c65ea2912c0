package style

import (
	"testing"

	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/modifier"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSizeStyle(t *testing.T) {
	Convey("Given an empty size holder", t, func() {
		s := NewSizeStyle(modifier.Empty)

		Convey("Every assignment appends exactly one op", func() {
			s.Update(func(s *SizeStyle) {
				s.SetWidth(10)
				s.SetHeight(2)
				s.SetFillMaxHeight(0.5)
			})
			So(s.Chain().Len(), ShouldEqual, 3)
		})

		Convey("Assigning the same field twice stacks both ops", func() {
			s.SetWidth(100)
			s.SetWidth(200)

			So(s.Chain().Ops(), ShouldResemble, []modifier.Op{
				modifier.Width{Cells: 100},
				modifier.Width{Cells: 200},
			})
			So(s.Width(), ShouldResemble, mo.Some(200))
		})

		Convey("FillMaxSize without a fraction fills everything", func() {
			s.FillMaxSize()

			So(s.Chain().Ops(), ShouldResemble, []modifier.Op{modifier.FillMaxSize{Fraction: 1}})
			So(s.SizeFraction(), ShouldResemble, mo.Some(1.0))
		})

		Convey("FillMaxWidth and FillMaxHeight default to 1 as well", func() {
			s.FillMaxWidth().FillMaxHeight()

			So(s.Chain().Ops(), ShouldResemble, []modifier.Op{
				modifier.FillMaxWidth{Fraction: 1},
				modifier.FillMaxHeight{Fraction: 1},
			})
		})

		Convey("Unassigned fields read as absent", func() {
			So(s.Height().IsAbsent(), ShouldBeTrue)
			So(s.WidthFraction().IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("A holder built on a base chain keeps the base ops first", t, func() {
		s := NewSizeStyle(modifier.Of(modifier.PaddingAll{All: 1})).SetHeight(3)
		So(s.Chain().Kinds(), ShouldResemble, []modifier.Kind{modifier.KindPadding, modifier.KindSize})
	})
}

func TestAppearanceStyle(t *testing.T) {
	Convey("Given an empty appearance holder", t, func() {
		a := NewAppearanceStyle(modifier.Empty)

		Convey("A solid background yields one single-color op", func() {
			a.SetBackground(Solid{Color: color.Blue})
			So(a.Chain().Ops(), ShouldResemble, []modifier.Op{modifier.BackgroundColor{Color: color.Blue}})
		})

		Convey("A shaped background keeps both values", func() {
			a.SetBackground(ShapedBackground{Color: color.Blue, Shape: modifier.Circle})
			So(a.Chain().Ops(), ShouldResemble, []modifier.Op{
				modifier.BackgroundShaped{Color: color.Blue, Shape: modifier.Circle},
			})
		})

		Convey("Assignment order is preserved", func() {
			a.Update(func(a *AppearanceStyle) {
				a.SetBorder(WidthColorBorder{Width: 2, Color: color.Red})
				a.SetBackground(Solid{Color: color.Blue})
				a.SetPadding(PaddingUniform{Distance: 1})
			})
			So(a.Chain().Kinds(), ShouldResemble, []modifier.Kind{
				modifier.KindBorder, modifier.KindBackground, modifier.KindPadding,
			})
			So(a.Padding().MustGet(), ShouldResemble, PaddingUniform{Distance: 1})
		})

		Convey("Nil variants are ignored", func() {
			a.SetBackground(nil).SetBorder(nil).SetPadding(nil)
			So(a.Chain().IsEmpty(), ShouldBeTrue)
			So(a.Border().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestInteractionStyle(t *testing.T) {
	Convey("Given an interaction holder", t, func() {
		i := NewInteractionStyle(modifier.Empty)

		Convey("No handler contributes nothing", func() {
			i.Update(func(*InteractionStyle) {})
			So(i.Chain().IsEmpty(), ShouldBeTrue)
			So(i.OnClick(), ShouldBeNil)
		})

		Convey("A handler becomes a clickable op", func() {
			clicks := 0
			i.SetOnClick(func() { clicks++ })

			So(i.Chain().Kinds(), ShouldResemble, []modifier.Kind{modifier.KindClickable})
			So(i.Chain().Click(), ShouldBeTrue)
			So(clicks, ShouldEqual, 1)
		})

		Convey("A nil handler is ignored", func() {
			i.SetOnClick(nil)
			So(i.Chain().IsEmpty(), ShouldBeTrue)
		})
	})
}

func TestDecorate(t *testing.T) {
	Convey("Decorate keeps the order concern blocks were entered in", t, func() {
		chain := Decorate(func(d *Decor) {
			d.Appearance(func(a *AppearanceStyle) {
				a.SetBackground(Solid{Color: color.Blue})
			})
			d.Size(func(s *SizeStyle) {
				s.SetWidth(10)
			})
			d.Appearance(func(a *AppearanceStyle) {
				a.SetBorder(WidthColorBorder{Width: 1, Color: color.Red})
			})
		})

		So(chain.Kinds(), ShouldResemble, []modifier.Kind{
			modifier.KindBackground, modifier.KindSize, modifier.KindBorder,
		})
	})

	Convey("Re-entering a concern", t, func() {
		block := func(d *Decor) {
			d.Size(func(s *SizeStyle) { s.SetWidth(1) })
			d.Size(func(s *SizeStyle) { s.SetHeight(2) })
		}

		Convey("MergeNew appends only the new ops", func() {
			chain := Decorate(block)
			So(chain.Ops(), ShouldResemble, []modifier.Op{
				modifier.Width{Cells: 1},
				modifier.Height{Cells: 2},
			})
		})

		Convey("MergeAll re-appends everything accumulated so far", func() {
			chain := Decorate(block, WithMerge(MergeAll))
			So(chain.Ops(), ShouldResemble, []modifier.Op{
				modifier.Width{Cells: 1},
				modifier.Width{Cells: 1},
				modifier.Height{Cells: 2},
			})
		})
	})

	Convey("Then appends an external chain", t, func() {
		chain := Decorate(func(d *Decor) {
			d.Size(func(s *SizeStyle) { s.FillMaxWidth() })
			d.Then(modifier.Of(modifier.PaddingAll{All: 1}))
		})
		So(chain.Kinds(), ShouldResemble, []modifier.Kind{modifier.KindSize, modifier.KindPadding})
	})

	Convey("Each call starts from fresh holders", t, func() {
		block := func(d *Decor) {
			d.Interaction(func(i *InteractionStyle) { i.SetOnClick(func() {}) })
		}
		So(Decorate(block).Len(), ShouldEqual, 1)
		So(Decorate(block).Len(), ShouldEqual, 1)
	})
}

func TestParseMergePolicy(t *testing.T) {
	Convey("ParseMergePolicy", t, func() {
		p, err := ParseMergePolicy("ALL")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, MergeAll)

		p, err = ParseMergePolicy("")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, MergeNew)

		_, err = ParseMergePolicy("latest")
		So(err, ShouldNotBeNil)
	})
}

func TestFlat(t *testing.T) {
	Convey("Build emits ops in canonical order regardless of assignment order", t, func() {
		chain := Build(func(f *Flat) {
			f.Height = mo.Some(3)
			f.Width = mo.Some(20)
			f.OnClick = func() {}
			f.Border = WidthColorBorder{Width: 1, Color: color.Red}
			f.Background = Solid{Color: color.Blue}
			f.Padding = PaddingUniform{Distance: 1}
		})

		So(chain.Kinds(), ShouldResemble, []modifier.Kind{
			modifier.KindPadding,
			modifier.KindBackground,
			modifier.KindBorder,
			modifier.KindClickable,
			modifier.KindSize,
			modifier.KindSize,
		})
		So(chain.Ops()[4], ShouldResemble, modifier.Width{Cells: 20})
		So(chain.Ops()[5], ShouldResemble, modifier.Height{Cells: 3})
	})

	Convey("The latest assignment wins", t, func() {
		chain := Build(func(f *Flat) {
			f.Width = mo.Some(100)
			f.Width = mo.Some(200)
		})
		So(chain.Ops(), ShouldResemble, []modifier.Op{modifier.Width{Cells: 200}})
	})

	Convey("Fill fractions follow explicit sizes", t, func() {
		chain := Build(func(f *Flat) {
			f.FillMaxSize = mo.Some(1.0)
			f.Width = mo.Some(4)
		})
		So(chain.Ops(), ShouldResemble, []modifier.Op{
			modifier.Width{Cells: 4},
			modifier.FillMaxSize{Fraction: 1},
		})
	})

	Convey("An empty builder yields the empty chain", t, func() {
		So(Build(func(*Flat) {}).IsEmpty(), ShouldBeTrue)
	})
}
