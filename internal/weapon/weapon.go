package weapon

import "github.com/stardrift/stardrift/internal/core"

// DamageSource supplies the per-volley damage roll and the fire rate
// used to derive cooldowns. stats.Combat satisfies it.
type DamageSource interface {
	CalculateDamageOutput() float64
	FireRate() float64
}

// EventSink receives weapon events. A nil sink discards them.
type EventSink func(evt core.Event)

// Weapon owns a set of strategies, one of which is active, and gates
// trigger pulls behind a shared cooldown. One burst sequence can be in
// flight at a time; pulling the trigger again before it finishes is
// blocked by the cooldown, which always outlasts the burst train.
type Weapon struct {
	slots    []Strategy
	active   int
	source   DamageSource
	sink     EventSink
	cooldown float64
	sequence *Sequence
}

// New creates a weapon with the given strategies. The first slot is
// active. At least one strategy is required; callers construct the
// slots, so an empty set is a programming error and panics.
func New(source DamageSource, sink EventSink, slots ...Strategy) *Weapon {
	if len(slots) == 0 {
		panic("weapon: no strategies")
	}
	return &Weapon{slots: slots, source: source, sink: sink}
}

// DefaultLoadout returns the standard five-slot weapon: single, burst,
// triple, spread, circle.
func DefaultLoadout(source DamageSource, sink EventSink) *Weapon {
	return New(source, sink,
		NewSingle(),
		DefaultBurst(),
		NewTriple(),
		DefaultSpread(),
		DefaultCircle(),
	)
}

// Active returns the currently selected strategy.
func (w *Weapon) Active() Strategy {
	return w.slots[w.active]
}

// ActiveIndex returns the selected slot index.
func (w *Weapon) ActiveIndex() int {
	return w.active
}

// SlotCount returns the number of strategies.
func (w *Weapon) SlotCount() int {
	return len(w.slots)
}

// Ready reports whether a trigger pull would fire.
func (w *Weapon) Ready() bool {
	return w.cooldown <= 0
}

// TryFire pulls the trigger. If the weapon is cooling down it returns
// nil. Otherwise it rolls damage once for the whole volley, fires the
// active strategy, starts the cooldown, and retains any burst
// sequence. A zero aim falls back to +X via Vec2.Normalize.
func (w *Weapon) TryFire(origin, aim core.Vec2) []SpawnRequest {
	if w.cooldown > 0 {
		return nil
	}

	strat := w.Active()
	damage := w.source.CalculateDamageOutput()
	reqs, seq := strat.Fire(origin, aim, damage)

	w.sequence = seq
	w.cooldown = w.cooldownFor(strat)
	return reqs
}

// Advance moves the cooldown and any in-flight burst forward by dt
// seconds, returning burst bullets that became due.
func (w *Weapon) Advance(dt float64) []SpawnRequest {
	if w.cooldown > 0 {
		w.cooldown -= dt
		if w.cooldown < 0 {
			w.cooldown = 0
		}
	}

	if w.sequence == nil {
		return nil
	}
	due := w.sequence.Advance(dt)
	if w.sequence.Done() {
		w.sequence = nil
	}
	return due
}

// Cancel discards any in-flight burst. Called when the owner dies so
// queued bullets never fire from a dead ship.
func (w *Weapon) Cancel() {
	if w.sequence != nil {
		w.sequence.Cancel()
		w.sequence = nil
	}
}

// Select switches to the given slot. Out-of-range indexes and
// reselecting the active slot are no-ops. Switching cancels any
// in-flight burst but keeps the running cooldown.
func (w *Weapon) Select(i int) bool {
	if i < 0 || i >= len(w.slots) || i == w.active {
		return false
	}
	w.Cancel()
	w.active = i
	w.emitSwitched()
	return true
}

// Cycle advances to the next slot, wrapping around.
func (w *Weapon) Cycle() {
	w.Cancel()
	w.active = (w.active + 1) % len(w.slots)
	w.emitSwitched()
}

func (w *Weapon) cooldownFor(strat Strategy) float64 {
	rate := w.source.FireRate()
	if rate <= 0 {
		rate = 1
	}
	return strat.CooldownMultiplier() / rate
}

func (w *Weapon) emitSwitched() {
	if w.sink != nil {
		w.sink(core.Event{
			Kind:  core.EventWeaponSwitched,
			Name:  w.Active().Name(),
			Value: float64(w.active),
		})
	}
}
