package style

import (
	"github.com/decor-cli/decor/modifier"
	"github.com/samber/mo"
)

// Flat keeps the latest value per field. Nothing is emitted until Build,
// which always orders ops padding, background, border, clickable, size,
// whatever order the fields were assigned in.
type Flat struct {
	Padding    Padding
	Background Background
	Border     Border
	OnClick    func()

	Width  mo.Option[int]
	Height mo.Option[int]

	FillMaxWidth  mo.Option[float64]
	FillMaxHeight mo.Option[float64]
	FillMaxSize   mo.Option[float64]
}

// Build materializes the chain.
func (f *Flat) Build() modifier.Chain {
	var ops []modifier.Op

	if f.Padding != nil {
		ops = append(ops, f.Padding.paddingOp())
	}
	if f.Background != nil {
		ops = append(ops, f.Background.backgroundOp())
	}
	if f.Border != nil {
		ops = append(ops, f.Border.borderOp())
	}
	if f.OnClick != nil {
		ops = append(ops, modifier.Clickable{OnClick: f.OnClick})
	}
	if w, ok := f.Width.Get(); ok {
		ops = append(ops, modifier.Width{Cells: w})
	}
	if h, ok := f.Height.Get(); ok {
		ops = append(ops, modifier.Height{Cells: h})
	}
	if fr, ok := f.FillMaxWidth.Get(); ok {
		ops = append(ops, modifier.FillMaxWidth{Fraction: fr})
	}
	if fr, ok := f.FillMaxHeight.Get(); ok {
		ops = append(ops, modifier.FillMaxHeight{Fraction: fr})
	}
	if fr, ok := f.FillMaxSize.Get(); ok {
		ops = append(ops, modifier.FillMaxSize{Fraction: fr})
	}

	return modifier.Of(ops...)
}

// Build runs block against an empty Flat and returns its chain.
func Build(block func(*Flat)) modifier.Chain {
	var f Flat
	block(&f)
	return f.Build()
}
