package style

import (
	"github.com/decor-cli/decor/modifier"
)

// InteractionStyle holds the click handler. A holder that never receives a
// handler contributes no ops.
type InteractionStyle struct {
	chain   modifier.Chain
	onClick func()
}

// NewInteractionStyle creates a holder whose chain starts from base.
func NewInteractionStyle(base modifier.Chain) *InteractionStyle {
	return &InteractionStyle{chain: base}
}

func (s *InteractionStyle) Chain() modifier.Chain { return s.chain }

func (s *InteractionStyle) Update(block func(*InteractionStyle)) { block(s) }

// SetOnClick makes the element clickable. A nil handler is ignored.
func (s *InteractionStyle) SetOnClick(fn func()) *InteractionStyle {
	if fn == nil {
		return s
	}
	s.onClick = fn
	s.chain = s.chain.With(modifier.Clickable{OnClick: fn})
	return s
}

// OnClick returns the most recently assigned handler, or nil.
func (s *InteractionStyle) OnClick() func() { return s.onClick }
