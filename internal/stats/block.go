package stats

import "sort"

// Stat name keys shared by the category blocks.
const (
	StatMaxHealth        = "maxHealth"
	StatMaxShield        = "maxShield"
	StatShieldRegenRate  = "shieldRegenRate"
	StatShieldRegenDelay = "shieldRegenDelay"
	StatDamage           = "damage"
	StatFireRate         = "fireRate"
	StatCritChance       = "criticalChance"
	StatCritMultiplier   = "criticalMultiplier"
	StatArmor            = "armor"
	StatDamageReduction  = "damageReduction"
	StatMoveSpeed        = "moveSpeed"
)

// Listener receives stat-changed notifications: the stat's name and its
// newly recomputed effective value. All registered listeners fire
// synchronously before the mutating call returns; there is no ordering
// guarantee between independent listeners.
type Listener func(stat string, value float64)

// Block holds the base values and modifier stacks for one stat category.
// It is owned by a single actor and mutated only from the simulation
// tick, so it needs no locking.
type Block struct {
	base      map[string]float64
	modifiers map[string][]Modifier
	listeners []Listener
}

// NewBlock creates a block over the given base values. The map is
// copied; the block never mutates the caller's configuration.
func NewBlock(base map[string]float64) *Block {
	b := &Block{
		base:      make(map[string]float64, len(base)),
		modifiers: make(map[string][]Modifier),
	}
	for k, v := range base {
		b.base[k] = v
	}
	return b
}

// Subscribe registers a stat-changed listener.
func (b *Block) Subscribe(l Listener) {
	if l != nil {
		b.listeners = append(b.listeners, l)
	}
}

// Base returns the unmodified base value for a stat (0 if unknown).
func (b *Block) Base(stat string) float64 {
	return b.base[stat]
}

// Value returns the effective value of a named stat: the base value run
// through the stat's current modifier stack.
func (b *Block) Value(stat string) float64 {
	return b.Calculate(b.base[stat], stat)
}

// Calculate computes the effective value for an arbitrary base.
//
// Modifiers resolve by kind: every Flat adds to the base first, then
// the sum of all PercentAdd values is applied once as a single
// (1 + sum) factor, then each PercentMult multiplies the running
// result. Multiplicative stacking always compounds on top of additive
// stacking, never the reverse.
func (b *Block) Calculate(baseValue float64, stat string) float64 {
	mods := b.modifiers[stat]
	if len(mods) == 0 {
		return baseValue
	}

	// Re-sort on read: same-kind modifiers can arrive in any order
	// from different sources, only the kind ranking is contractual.
	sorted := make([]Modifier, len(mods))
	copy(sorted, mods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].order < sorted[j].order
	})

	result := baseValue
	percentAddSum := 0.0
	percentAddApplied := false

	for _, m := range sorted {
		switch m.Kind {
		case Flat:
			result += m.Value
		case PercentAdd:
			percentAddSum += m.Value
		case PercentMult:
			if !percentAddApplied {
				result *= 1 + percentAddSum
				percentAddApplied = true
			}
			result *= m.Value
		}
	}
	if !percentAddApplied {
		result *= 1 + percentAddSum
	}

	return result
}

// AddModifier appends a modifier to the named stat. No deduplication is
// performed; adding the same modifier twice stacks it twice.
func (b *Block) AddModifier(stat string, m Modifier) {
	b.modifiers[stat] = append(b.modifiers[stat], m)
	b.notify(stat)
}

// RemoveModifiersFrom removes every modifier on the stat whose source
// matches the given identity. Returns the number removed; no-op (and no
// notification) if none match.
func (b *Block) RemoveModifiersFrom(stat string, source any) int {
	mods := b.modifiers[stat]
	kept := mods[:0]
	removed := 0
	for _, m := range mods {
		if m.Source == source {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	if removed == 0 {
		return 0
	}
	if len(kept) == 0 {
		delete(b.modifiers, stat)
	} else {
		b.modifiers[stat] = kept
	}
	b.notify(stat)
	return removed
}

// ClearModifiers empties one stat's modifier stack.
func (b *Block) ClearModifiers(stat string) {
	if _, ok := b.modifiers[stat]; !ok {
		return
	}
	delete(b.modifiers, stat)
	b.notify(stat)
}

// ClearAllModifiers empties every stat's modifier stack, notifying for
// each affected stat.
func (b *Block) ClearAllModifiers() {
	stats := make([]string, 0, len(b.modifiers))
	for stat := range b.modifiers {
		stats = append(stats, stat)
	}
	sort.Strings(stats)
	for _, stat := range stats {
		delete(b.modifiers, stat)
		b.notify(stat)
	}
}

// ModifierCount returns how many modifiers are attached to a stat.
func (b *Block) ModifierCount(stat string) int {
	return len(b.modifiers[stat])
}

// notify fires all listeners with the stat's recomputed value.
func (b *Block) notify(stat string) {
	if len(b.listeners) == 0 {
		return
	}
	value := b.Value(stat)
	for _, l := range b.listeners {
		l(stat, value)
	}
}
