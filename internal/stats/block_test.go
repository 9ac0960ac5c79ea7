package stats

import (
	"math"
	"testing"
)

func TestCalculateNoModifiers(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 42})

	if got := b.Value(StatDamage); got != 42 {
		t.Errorf("Value with no modifiers = %v, expected 42", got)
	}
	if got := b.Calculate(7.5, "anything"); got != 7.5 {
		t.Errorf("Calculate with no modifiers = %v, expected base unchanged", got)
	}
}

func TestCalculateFlatSumsBeforePercent(t *testing.T) {
	// Flat contributions sum before any percentage, regardless of
	// insertion order.
	orders := [][]Modifier{
		{
			NewModifier(10, Flat, nil),
			NewModifier(5, Flat, nil),
			NewModifier(0.5, PercentAdd, nil),
		},
		{
			NewModifier(0.5, PercentAdd, nil),
			NewModifier(5, Flat, nil),
			NewModifier(10, Flat, nil),
		},
	}

	for i, mods := range orders {
		b := NewBlock(map[string]float64{StatDamage: 100})
		for _, m := range mods {
			b.AddModifier(StatDamage, m)
		}
		// (100 + 10 + 5) * 1.5 = 172.5
		if got := b.Value(StatDamage); got != 172.5 {
			t.Errorf("order %d: Value = %v, expected 172.5", i, got)
		}
	}
}

func TestCalculatePercentAddSumsNotCompounds(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 100})
	b.AddModifier(StatDamage, NewModifier(0.2, PercentAdd, nil))
	b.AddModifier(StatDamage, NewModifier(0.3, PercentAdd, nil))

	// 100 * (1 + 0.2 + 0.3) = 150, not 100*1.2*1.3 = 156
	if got := b.Value(StatDamage); got != 150 {
		t.Errorf("Value = %v, expected 150 (summed, not compounded)", got)
	}
}

func TestCalculatePercentMultAppliesLast(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 100})
	// Insert in reverse kind order to prove re-sorting on read.
	b.AddModifier(StatDamage, NewModifier(2.0, PercentMult, nil))
	b.AddModifier(StatDamage, NewModifier(0.5, PercentAdd, nil))
	b.AddModifier(StatDamage, NewModifier(10, Flat, nil))

	// ((100 + 10) * 1.5) * 2.0 = 330
	if got := b.Value(StatDamage); got != 330 {
		t.Errorf("Value = %v, expected 330", got)
	}
}

func TestCalculatePercentMultCompounds(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 100})
	b.AddModifier(StatDamage, NewModifier(2.0, PercentMult, nil))
	b.AddModifier(StatDamage, NewModifier(1.5, PercentMult, nil))

	if got := b.Value(StatDamage); got != 300 {
		t.Errorf("Value = %v, expected 300 (multiplicative compounding)", got)
	}
}

func TestRemoveModifiersFrom(t *testing.T) {
	buff := "speed-buff"
	equip := "engine-mk2"

	b := NewBlock(map[string]float64{StatMoveSpeed: 10})
	b.AddModifier(StatMoveSpeed, NewModifier(2, Flat, buff))
	b.AddModifier(StatMoveSpeed, NewModifier(3, Flat, equip))
	b.AddModifier(StatMoveSpeed, NewModifier(0.1, PercentAdd, buff))

	removed := b.RemoveModifiersFrom(StatMoveSpeed, buff)
	if removed != 2 {
		t.Errorf("removed = %d, expected 2", removed)
	}

	// Only the equipment modifier remains: 10 + 3 = 13
	if got := b.Value(StatMoveSpeed); got != 13 {
		t.Errorf("Value after removal = %v, expected 13", got)
	}

	// Removing a source with no modifiers is a no-op
	if removed := b.RemoveModifiersFrom(StatMoveSpeed, "nothing"); removed != 0 {
		t.Errorf("removal of unknown source = %d, expected 0", removed)
	}
}

func TestClearModifiers(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 10, StatFireRate: 2})
	b.AddModifier(StatDamage, NewModifier(5, Flat, nil))
	b.AddModifier(StatFireRate, NewModifier(2.0, PercentMult, nil))

	b.ClearModifiers(StatDamage)
	if got := b.Value(StatDamage); got != 10 {
		t.Errorf("Value after ClearModifiers = %v, expected base 10", got)
	}
	if got := b.Value(StatFireRate); got != 4 {
		t.Errorf("other stat should be untouched, got %v", got)
	}

	b.ClearAllModifiers()
	if got := b.Value(StatFireRate); got != 2 {
		t.Errorf("Value after ClearAllModifiers = %v, expected base 2", got)
	}
}

func TestNotificationsFire(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 10})

	var gotStat string
	var gotValue float64
	calls := 0
	b.Subscribe(func(stat string, value float64) {
		gotStat = stat
		gotValue = value
		calls++
	})

	src := "buff"
	b.AddModifier(StatDamage, NewModifier(5, Flat, src))
	if calls != 1 || gotStat != StatDamage || gotValue != 15 {
		t.Errorf("after add: calls=%d stat=%q value=%v, expected 1/%q/15", calls, gotStat, gotValue, StatDamage)
	}

	b.RemoveModifiersFrom(StatDamage, src)
	if calls != 2 || gotValue != 10 {
		t.Errorf("after remove: calls=%d value=%v, expected 2/10", calls, gotValue)
	}

	// No-op removal must not notify
	b.RemoveModifiersFrom(StatDamage, src)
	if calls != 2 {
		t.Errorf("no-op removal should not notify, calls=%d", calls)
	}
}

func TestMultipleSubscribersAllFire(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 1})

	fired := 0
	for i := 0; i < 3; i++ {
		b.Subscribe(func(string, float64) { fired++ })
	}

	b.AddModifier(StatDamage, NewModifier(1, Flat, nil))
	if fired != 3 {
		t.Errorf("all subscribers should fire, got %d of 3", fired)
	}
}

func TestCalculateAlwaysFinite(t *testing.T) {
	b := NewBlock(map[string]float64{StatDamage: 100})
	b.AddModifier(StatDamage, NewModifier(-250, Flat, nil))
	b.AddModifier(StatDamage, NewModifier(-0.5, PercentAdd, nil))
	b.AddModifier(StatDamage, NewModifier(0, PercentMult, nil))

	got := b.Value(StatDamage)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("Value should always be finite, got %v", got)
	}
}
