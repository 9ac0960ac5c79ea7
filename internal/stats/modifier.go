// Package stats implements the per-actor stat engine: named base values
// with ordered modifier stacks, category blocks (health, combat, defense,
// movement, progression), and the runtime state that goes with them.
// The package is pure simulation code with no external dependencies;
// randomness, logging, and event consumers are injected by the caller.
package stats

// ModifierKind determines how a modifier combines with a base value.
type ModifierKind int

const (
	// Flat adds its value to the base before any percentages apply.
	Flat ModifierKind = iota
	// PercentAdd contributes to a single summed percentage bonus.
	// Two +20% PercentAdd modifiers yield +40%, not compounding.
	PercentAdd
	// PercentMult multiplies the running result. Applies after Flat
	// and the combined PercentAdd bonus, compounding with other
	// PercentMult modifiers.
	PercentMult
)

// String returns the kind's name.
func (k ModifierKind) String() string {
	switch k {
	case Flat:
		return "Flat"
	case PercentAdd:
		return "PercentAdd"
	case PercentMult:
		return "PercentMult"
	default:
		return "Unknown"
	}
}

// applyOrder returns the resolution rank for the kind.
// Flat always resolves before PercentAdd, which resolves before
// PercentMult, regardless of insertion order.
func (k ModifierKind) applyOrder() int {
	switch k {
	case Flat:
		return 1
	case PercentAdd:
		return 2
	default:
		return 3
	}
}

// Modifier is an immutable adjustment to a named stat.
// Source is an opaque identity used only for bulk removal (all
// modifiers granted by one buff or equipment piece); it carries no
// ownership. Sources are matched with ==, so they must be comparable
// values such as strings or pointers, never slices, maps, or
// functions.
type Modifier struct {
	Value  float64
	Kind   ModifierKind
	Source any

	order int
}

// NewModifier creates a modifier. The apply order is fixed by the kind
// at construction and never changes afterwards.
func NewModifier(value float64, kind ModifierKind, source any) Modifier {
	return Modifier{
		Value:  value,
		Kind:   kind,
		Source: source,
		order:  kind.applyOrder(),
	}
}
