package stats

import "github.com/stardrift/stardrift/internal/core"

// EventSink receives simulation events (damage taken, level up, ...).
// Sinks are fire-and-forget: the engine never depends on a subscriber
// being present and a nil sink is valid.
type EventSink func(evt core.Event)

// WarnFunc receives warning-level diagnostics, e.g. a missing
// configuration record. A nil WarnFunc silently drops warnings.
type WarnFunc func(format string, args ...any)

// emit invokes the sink if one is set.
func emit(sink EventSink, evt core.Event) {
	if sink != nil {
		sink(evt)
	}
}

// warn invokes the warn func if one is set.
func warn(w WarnFunc, format string, args ...any) {
	if w != nil {
		w(format, args...)
	}
}
