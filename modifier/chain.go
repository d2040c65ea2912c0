// Package modifier holds the decoration chain: an ordered, immutable list of
// styling ops that is applied to a lipgloss style in call order.
package modifier

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Chain is an ordered sequence of ops. The zero value is the empty chain.
// Chains are never mutated; every combinator returns a new chain.
type Chain struct {
	ops []Op
}

// Empty is the chain with no ops.
var Empty = Chain{}

// Of builds a chain from ops in order.
func Of(ops ...Op) Chain {
	return Empty.With(ops...)
}

// With returns a chain with ops appended.
func (c Chain) With(ops ...Op) Chain {
	if len(ops) == 0 {
		return c
	}
	out := make([]Op, 0, len(c.ops)+len(ops))
	out = append(out, c.ops...)
	return Chain{ops: append(out, ops...)}
}

// Then returns a chain with next's ops appended after c's.
func (c Chain) Then(next Chain) Chain {
	return c.With(next.ops...)
}

// Ops returns a copy of the chain's ops.
func (c Chain) Ops() []Op {
	return append([]Op(nil), c.ops...)
}

// Len reports the number of ops in the chain.
func (c Chain) Len() int {
	return len(c.ops)
}

// IsEmpty reports whether the chain has no ops.
func (c Chain) IsEmpty() bool {
	return len(c.ops) == 0
}

// Kinds lists the kind of every op in order.
func (c Chain) Kinds() []Kind {
	return lo.Map(c.ops, func(op Op, _ int) Kind { return op.Kind() })
}

// Apply layers every op onto base in order. Later ops override earlier ones
// for the same property, except padding, which accumulates.
func (c Chain) Apply(base lipgloss.Style, f Frame) lipgloss.Style {
	return lo.Reduce(c.ops, func(st lipgloss.Style, op Op, _ int) lipgloss.Style {
		return op.apply(st, f)
	}, base)
}

// Style applies the chain to a fresh style.
func (c Chain) Style(f Frame) lipgloss.Style {
	return c.Apply(lipgloss.NewStyle(), f)
}

// Render renders strs with the chain applied inside frame f.
func (c Chain) Render(f Frame, strs ...string) string {
	return c.Style(f).Render(strs...)
}

// Clickable reports whether any op registers a click handler.
func (c Chain) Clickable() bool {
	return lo.SomeBy(c.ops, func(op Op) bool {
		click, ok := op.(Clickable)
		return ok && click.OnClick != nil
	})
}

// Click invokes every registered click handler in chain order and reports
// whether there was at least one.
func (c Chain) Click() bool {
	clicked := false
	for _, op := range c.ops {
		if click, ok := op.(Clickable); ok && click.OnClick != nil {
			click.OnClick()
			clicked = true
		}
	}
	return clicked
}

func (c Chain) String() string {
	if c.IsEmpty() {
		return "modifier"
	}
	return "modifier." + strings.Join(lo.Map(c.ops, func(op Op, _ int) string {
		return op.String()
	}), ".")
}
