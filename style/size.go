package style

import (
	"github.com/decor-cli/decor/modifier"
	"github.com/samber/mo"
)

// SizeStyle holds sizing. Every setter appends one op immediately, so
// assigning the same field twice leaves two ops in the chain.
type SizeStyle struct {
	chain modifier.Chain

	width, height                            mo.Option[int]
	fillMaxWidth, fillMaxHeight, fillMaxSize mo.Option[float64]
}

// NewSizeStyle creates a holder whose chain starts from base.
func NewSizeStyle(base modifier.Chain) *SizeStyle {
	return &SizeStyle{chain: base}
}

func (s *SizeStyle) Chain() modifier.Chain { return s.chain }

func (s *SizeStyle) Update(block func(*SizeStyle)) { block(s) }

func (s *SizeStyle) SetWidth(cells int) *SizeStyle {
	s.width = mo.Some(cells)
	s.chain = s.chain.With(modifier.Width{Cells: cells})
	return s
}

func (s *SizeStyle) SetHeight(cells int) *SizeStyle {
	s.height = mo.Some(cells)
	s.chain = s.chain.With(modifier.Height{Cells: cells})
	return s
}

// SetFillMaxWidth takes fraction of the available width.
func (s *SizeStyle) SetFillMaxWidth(fraction float64) *SizeStyle {
	s.fillMaxWidth = mo.Some(fraction)
	s.chain = s.chain.With(modifier.FillMaxWidth{Fraction: fraction})
	return s
}

// SetFillMaxHeight takes fraction of the available height.
func (s *SizeStyle) SetFillMaxHeight(fraction float64) *SizeStyle {
	s.fillMaxHeight = mo.Some(fraction)
	s.chain = s.chain.With(modifier.FillMaxHeight{Fraction: fraction})
	return s
}

// SetFillMaxSize takes fraction of both available dimensions.
func (s *SizeStyle) SetFillMaxSize(fraction float64) *SizeStyle {
	s.fillMaxSize = mo.Some(fraction)
	s.chain = s.chain.With(modifier.FillMaxSize{Fraction: fraction})
	return s
}

// FillMaxWidth takes the whole available width.
func (s *SizeStyle) FillMaxWidth() *SizeStyle { return s.SetFillMaxWidth(1) }

// FillMaxHeight takes the whole available height.
func (s *SizeStyle) FillMaxHeight() *SizeStyle { return s.SetFillMaxHeight(1) }

// FillMaxSize takes the whole available area.
func (s *SizeStyle) FillMaxSize() *SizeStyle { return s.SetFillMaxSize(1) }

func (s *SizeStyle) Width() mo.Option[int]              { return s.width }
func (s *SizeStyle) Height() mo.Option[int]             { return s.height }
func (s *SizeStyle) WidthFraction() mo.Option[float64]  { return s.fillMaxWidth }
func (s *SizeStyle) HeightFraction() mo.Option[float64] { return s.fillMaxHeight }
func (s *SizeStyle) SizeFraction() mo.Option[float64]   { return s.fillMaxSize }
