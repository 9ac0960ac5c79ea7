package weapon

import (
	"math"
	"testing"

	"github.com/stardrift/stardrift/internal/core"
)

func angleOf(r SpawnRequest) float64 {
	return r.Direction.AngleDegrees()
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSingleFiresOneBulletAlongAim(t *testing.T) {
	origin := core.NewVec2(10, 20)
	reqs, seq := NewSingle().Fire(origin, core.NewVec2(0, 3), 25)

	if seq != nil {
		t.Fatal("single shot should not return a sequence")
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, expected 1", len(reqs))
	}
	if reqs[0].Origin != origin {
		t.Errorf("origin = %v, expected %v", reqs[0].Origin, origin)
	}
	if !closeTo(reqs[0].Direction.Len(), 1) {
		t.Errorf("direction should be normalized, len = %v", reqs[0].Direction.Len())
	}
	if !closeTo(angleOf(reqs[0]), 90) {
		t.Errorf("angle = %v, expected 90", angleOf(reqs[0]))
	}
	if reqs[0].Damage != 25 {
		t.Errorf("damage = %v, expected full 25", reqs[0].Damage)
	}
}

func TestZeroAimFallsBackToPlusX(t *testing.T) {
	reqs, _ := NewSingle().Fire(core.Vec2{}, core.Vec2{}, 10)
	if !closeTo(angleOf(reqs[0]), 0) {
		t.Errorf("zero aim should fire along +X, got %v degrees", angleOf(reqs[0]))
	}
}

func TestTripleAngles(t *testing.T) {
	reqs, seq := NewTriple().Fire(core.Vec2{}, core.NewVec2(1, 0), 12)

	if seq != nil {
		t.Fatal("triple shot should not return a sequence")
	}
	if len(reqs) != 3 {
		t.Fatalf("got %d requests, expected 3", len(reqs))
	}

	// Center, then +15, then -15 relative to the aim
	expected := []float64{0, 15, -15}
	for i, want := range expected {
		if !closeTo(angleOf(reqs[i]), want) {
			t.Errorf("bullet %d angle = %v, expected %v", i, angleOf(reqs[i]), want)
		}
		if reqs[i].Damage != 12 {
			t.Errorf("bullet %d damage = %v, expected full 12", i, reqs[i].Damage)
		}
	}
}

func TestTripleFollowsAim(t *testing.T) {
	reqs, _ := NewTriple().Fire(core.Vec2{}, core.FromDegrees(90), 10)

	expected := []float64{90, 105, 75}
	for i, want := range expected {
		if !closeTo(angleOf(reqs[i]), want) {
			t.Errorf("bullet %d angle = %v, expected %v", i, angleOf(reqs[i]), want)
		}
	}
}

func TestSpreadFanGeometry(t *testing.T) {
	reqs, seq := DefaultSpread().Fire(core.Vec2{}, core.NewVec2(1, 0), 10)

	if seq != nil {
		t.Fatal("spread should not return a sequence")
	}
	if len(reqs) != 5 {
		t.Fatalf("got %d requests, expected 5", len(reqs))
	}

	// 30 degree fan centered on the aim: -15, -7.5, 0, 7.5, 15
	expected := []float64{-15, -7.5, 0, 7.5, 15}
	for i, want := range expected {
		if !closeTo(angleOf(reqs[i]), want) {
			t.Errorf("bullet %d angle = %v, expected %v", i, angleOf(reqs[i]), want)
		}
	}
	for i, r := range reqs {
		if !closeTo(r.Damage, 7) {
			t.Errorf("bullet %d damage = %v, expected 10*0.7", i, r.Damage)
		}
	}
}

func TestSpreadCentersOnAim(t *testing.T) {
	s, err := NewSpread(3, 60, 1, 1)
	if err != nil {
		t.Fatalf("NewSpread: %v", err)
	}
	reqs, _ := s.Fire(core.Vec2{}, core.FromDegrees(90), 10)

	expected := []float64{60, 90, 120}
	for i, want := range expected {
		if !closeTo(angleOf(reqs[i]), want) {
			t.Errorf("bullet %d angle = %v, expected %v", i, angleOf(reqs[i]), want)
		}
	}
}

func TestSpreadRejectsTooFewBullets(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := NewSpread(n, 30, 0.7, 1.8); err == nil {
			t.Errorf("NewSpread(%d) should fail", n)
		}
	}
}

func TestCircleIgnoresAim(t *testing.T) {
	c := DefaultCircle()

	for _, aim := range []core.Vec2{core.NewVec2(1, 0), core.FromDegrees(37), {}} {
		reqs, seq := c.Fire(core.Vec2{}, aim, 10)

		if seq != nil {
			t.Fatal("circle should not return a sequence")
		}
		if len(reqs) != 8 {
			t.Fatalf("got %d requests, expected 8", len(reqs))
		}
		for i, r := range reqs {
			want := float64(i) * 45
			got := angleOf(r)
			if got < 0 {
				got += 360
			}
			if !closeTo(got, want) {
				t.Errorf("aim %v bullet %d angle = %v, expected %v", aim, i, got, want)
			}
			if !closeTo(r.Damage, 5) {
				t.Errorf("bullet %d damage = %v, expected 10*0.5", i, r.Damage)
			}
		}
	}
}

func TestCircleRejectsZeroBullets(t *testing.T) {
	if _, err := NewCircle(0, 0.5, 2.5); err == nil {
		t.Error("NewCircle(0) should fail")
	}
}

func TestCooldownMultipliers(t *testing.T) {
	tests := []struct {
		strat    Strategy
		expected float64
	}{
		{NewSingle(), 1.0},
		{DefaultBurst(), 1.5},
		{NewTriple(), 1.3},
		{DefaultSpread(), 1.8},
		{DefaultCircle(), 2.5},
	}

	for _, tc := range tests {
		if got := tc.strat.CooldownMultiplier(); got != tc.expected {
			t.Errorf("%s multiplier = %v, expected %v", tc.strat.Name(), got, tc.expected)
		}
	}
}
