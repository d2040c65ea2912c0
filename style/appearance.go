package style

import (
	"github.com/decor-cli/decor/modifier"
	"github.com/samber/mo"
)

// AppearanceStyle holds background, border and padding. Every setter
// appends the op its variant resolves to.
type AppearanceStyle struct {
	chain modifier.Chain

	background mo.Option[Background]
	border     mo.Option[Border]
	padding    mo.Option[Padding]
}

// NewAppearanceStyle creates a holder whose chain starts from base.
func NewAppearanceStyle(base modifier.Chain) *AppearanceStyle {
	return &AppearanceStyle{chain: base}
}

func (s *AppearanceStyle) Chain() modifier.Chain { return s.chain }

func (s *AppearanceStyle) Update(block func(*AppearanceStyle)) { block(s) }

func (s *AppearanceStyle) SetBackground(bg Background) *AppearanceStyle {
	if bg == nil {
		return s
	}
	s.background = mo.Some(bg)
	s.chain = s.chain.With(bg.backgroundOp())
	return s
}

func (s *AppearanceStyle) SetBorder(b Border) *AppearanceStyle {
	if b == nil {
		return s
	}
	s.border = mo.Some(b)
	s.chain = s.chain.With(b.borderOp())
	return s
}

func (s *AppearanceStyle) SetPadding(p Padding) *AppearanceStyle {
	if p == nil {
		return s
	}
	s.padding = mo.Some(p)
	s.chain = s.chain.With(p.paddingOp())
	return s
}

func (s *AppearanceStyle) Background() mo.Option[Background] { return s.background }
func (s *AppearanceStyle) Border() mo.Option[Border]         { return s.border }
func (s *AppearanceStyle) Padding() mo.Option[Padding]       { return s.padding }
