package style

import (
	"fmt"
	"strings"

	"github.com/decor-cli/decor/log"
	"github.com/decor-cli/decor/modifier"
)

// MergePolicy decides what a concern block contributes to the aggregate
// chain when the same concern is entered more than once.
type MergePolicy int

const (
	// MergeNew appends only the ops added since the concern was last merged.
	MergeNew MergePolicy = iota

	// MergeAll appends the concern's entire chain on every entry, so ops
	// from earlier entries are repeated.
	MergeAll
)

func (p MergePolicy) String() string {
	switch p {
	case MergeNew:
		return "new"
	case MergeAll:
		return "all"
	default:
		return fmt.Sprintf("merge(%d)", int(p))
	}
}

// ParseMergePolicy resolves a policy by name.
func ParseMergePolicy(name string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "new":
		return MergeNew, nil
	case "all":
		return MergeAll, nil
	default:
		return MergeNew, fmt.Errorf("unknown merge policy %q, expected new or all", name)
	}
}

const (
	concernSize        = "size"
	concernAppearance  = "appearance"
	concernInteraction = "interaction"
)

// Decor aggregates one holder per concern into a single chain, in the
// order concern blocks are entered.
type Decor struct {
	size        *SizeStyle
	appearance  *AppearanceStyle
	interaction *InteractionStyle

	chain  modifier.Chain
	policy MergePolicy
	merged map[string]int
}

// Option configures a Decor.
type Option func(*Decor)

// WithMerge selects how repeated concern blocks are merged.
func WithMerge(policy MergePolicy) Option {
	return func(d *Decor) {
		d.policy = policy
	}
}

// NewDecor creates an aggregator with empty holders and an empty chain.
func NewDecor(opts ...Option) *Decor {
	d := &Decor{
		size:        NewSizeStyle(modifier.Empty),
		appearance:  NewAppearanceStyle(modifier.Empty),
		interaction: NewInteractionStyle(modifier.Empty),
		merged:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Size configures sizing and merges the result.
func (d *Decor) Size(block func(*SizeStyle)) {
	enter(d, concernSize, d.size, block)
}

// Appearance configures background, border and padding and merges the result.
func (d *Decor) Appearance(block func(*AppearanceStyle)) {
	enter(d, concernAppearance, d.appearance, block)
}

// Interaction configures click handling and merges the result.
func (d *Decor) Interaction(block func(*InteractionStyle)) {
	enter(d, concernInteraction, d.interaction, block)
}

// Then appends an externally built chain.
func (d *Decor) Then(c modifier.Chain) {
	d.chain = d.chain.Then(c)
}

// Chain returns the aggregate chain built so far.
func (d *Decor) Chain() modifier.Chain {
	return d.chain
}

func enter[T Style[T]](d *Decor, concern string, holder T, block func(T)) {
	holder.Update(block)

	ops := holder.Chain().Ops()
	from := 0
	if d.policy == MergeNew {
		from = d.merged[concern]
	}
	d.merged[concern] = len(ops)
	d.chain = d.chain.With(ops[from:]...)

	log.Debugf("decor: merged %d %s ops (policy %s, total %d)", len(ops)-from, concern, d.policy, d.chain.Len())
}

// Decorate runs block against a fresh aggregator and returns its chain.
func Decorate(block func(*Decor), opts ...Option) modifier.Chain {
	d := NewDecor(opts...)
	block(d)
	return d.Chain()
}
