// Package style is the declarative front end for building decoration chains.
//
// Three ways in, from most to least flexible:
//
//   - Decorate runs a block against a Decor aggregator whose concern holders
//     (size, appearance, interaction) append one op per assignment.
//   - Build runs a block against a Flat builder that keeps the latest value
//     per field and emits ops in a fixed order.
//   - Loose accepts untyped values (Go tuples or decoded config) and resolves
//     them into a Flat builder, reporting malformed shapes as ConfigError.
package style

import "github.com/decor-cli/decor/modifier"

// Style is a concern holder: it accumulates a decoration chain and can be
// reconfigured by a block that receives the holder itself.
type Style[T any] interface {
	// Chain returns every op appended so far.
	Chain() modifier.Chain

	// Update runs block with the holder as its receiver.
	Update(block func(T))
}

var (
	_ Style[*SizeStyle]        = (*SizeStyle)(nil)
	_ Style[*AppearanceStyle]  = (*AppearanceStyle)(nil)
	_ Style[*InteractionStyle] = (*InteractionStyle)(nil)
)
