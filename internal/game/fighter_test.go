package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// newDuelPair returns two grounded fighters standing within striking
// distance of each other, facing inward.
func newDuelPair() (tun *Tuning, left, right *Fighter) {
	t := DefaultTuning()
	tun = &t
	left = NewFighter("left", core.ColorRed, 300, FaceRight, tun)
	right = NewFighter("right", core.ColorBlue, 300+t.FighterW+t.Reach/2, FaceLeft, tun)
	left.X = left.SpawnX
	right.X = right.SpawnX
	return tun, left, right
}

func TestMetersStayInRange(t *testing.T) {
	_, a, d := newDuelPair()

	inputs := []core.Snapshot{
		{Attack: true},
		{Left: true, Attack: true},
		{Right: true, Jump: true},
		{Block: true},
		{},
	}

	for i := 0; i < 500; i++ {
		in := inputs[i%len(inputs)]
		a.Update(d, in)
		d.Update(a, in)

		for _, f := range []*Fighter{a, d} {
			if f.Health < 0 || f.Health > 100 {
				t.Fatalf("tick %d: health out of range: %v", i, f.Health)
			}
			if f.Stamina < 0 || f.Stamina > 100 {
				t.Fatalf("tick %d: stamina out of range: %v", i, f.Stamina)
			}
		}
	}
}

func TestDownedFighterIsFrozen(t *testing.T) {
	_, a, d := newDuelPair()

	d.Health = 1
	a.Update(d, core.Snapshot{Attack: true})

	if d.Downed {
		t.Fatal("the downed transition belongs to the victim's own update")
	}

	// The victim evaluates its final frame, then drops at the end of it.
	d.Update(a, core.Snapshot{})
	if !d.Downed {
		t.Fatal("lethally hit fighter should drop at the end of its own update")
	}

	x, y, health := d.X, d.Y, d.Health
	for i := 0; i < 50; i++ {
		d.Update(a, core.Snapshot{Left: true, Right: true, Jump: true, Attack: true, Block: true})
	}

	if d.X != x || d.Y != y || d.Health != health {
		t.Errorf("downed fighter moved: pos (%v,%v) -> (%v,%v), health %v -> %v",
			x, y, d.X, d.Y, health, d.Health)
	}
	if d.Attacking || d.Blocking {
		t.Error("downed fighter must ignore all input")
	}
}

func TestAttackStaminaGate(t *testing.T) {
	t.Run("exactly at cost succeeds", func(t *testing.T) {
		_, a, d := newDuelPair()
		a.Stamina = 10

		a.Update(d, core.Snapshot{Attack: true})

		if !a.Attacking {
			t.Error("attack at stamina == cost should trigger")
		}
		if a.Stamina != 0 {
			t.Errorf("stamina = %v, expected 0", a.Stamina)
		}
		if d.Health == 100 {
			t.Error("attack in range should deal damage")
		}
	})

	t.Run("below cost is suppressed", func(t *testing.T) {
		_, a, d := newDuelPair()
		a.Stamina = 9

		a.Update(d, core.Snapshot{Attack: true})

		if a.Attacking {
			t.Error("attack below stamina cost must not trigger")
		}
		if a.Cooldown != 0 {
			t.Errorf("cooldown = %d, expected 0 (no attack happened)", a.Cooldown)
		}
		if a.Stamina < 9 {
			t.Errorf("stamina = %v, must not be deducted", a.Stamina)
		}
		if d.Health != 100 {
			t.Errorf("defender health = %v, expected untouched", d.Health)
		}
	})
}

func TestLowStaminaHalvesDamage(t *testing.T) {
	_, a, d := newDuelPair()
	a.Stamina = 10 // 0 after the attack cost, below the winded bar

	a.Update(d, core.Snapshot{Attack: true})

	if got := 100 - d.Health; got != 8 {
		t.Errorf("winded damage = %v, expected 8 (16 halved)", got)
	}
}

func TestBlockingReducesDamage(t *testing.T) {
	t.Run("facing the attacker", func(t *testing.T) {
		_, a, d := newDuelPair()
		d.Blocking = true // facing left, toward the attacker

		a.Update(d, core.Snapshot{Attack: true})

		if got := 100 - d.Health; got != 6 {
			t.Errorf("blocked damage = %v, expected 6", got)
		}
	})

	t.Run("guard turned away does not count", func(t *testing.T) {
		_, a, d := newDuelPair()
		d.Blocking = true
		d.Facing = a.Facing // facing the same way as the attacker

		a.Update(d, core.Snapshot{Attack: true})

		if got := 100 - d.Health; got != 16 {
			t.Errorf("damage = %v, expected full 16", got)
		}
	})
}

func TestKnockback(t *testing.T) {
	_, a, d := newDuelPair()

	a.Update(d, core.Snapshot{Attack: true})

	if d.VelY != -4 {
		t.Errorf("victim vertical velocity = %v, expected -4", d.VelY)
	}
	if d.OnGround {
		t.Error("victim must be forced airborne")
	}
	if d.VelX != a.Facing*3 {
		t.Errorf("victim horizontal velocity = %v, expected %v", d.VelX, a.Facing*3)
	}
}

func TestCooldownGate(t *testing.T) {
	_, a, d := newDuelPair()

	a.Update(d, core.Snapshot{Attack: true})
	healthAfterFirst := d.Health
	if healthAfterFirst == 100 {
		t.Fatal("first attack should land")
	}

	a.Update(d, core.Snapshot{Attack: true})

	if d.Health != healthAfterFirst {
		t.Errorf("second frame landed a hit at cooldown %d: health %v -> %v",
			a.Cooldown, healthAfterFirst, d.Health)
	}
}

func TestAttackClearsAfterCooldown(t *testing.T) {
	tun, a, d := newDuelPair()

	a.Update(d, core.Snapshot{Attack: true})
	if !a.Attacking {
		t.Fatal("attack should be active")
	}

	// The attack frame itself already decays the counter once, so the flag
	// holds for the rest of the cooldown and then clears.
	for i := 0; i < tun.CooldownTicks-2; i++ {
		a.Update(d, core.Snapshot{})
		if !a.Attacking {
			t.Fatalf("attacking cleared early at tick %d (cooldown %d)", i+1, a.Cooldown)
		}
	}
	a.Update(d, core.Snapshot{})
	if a.Attacking {
		t.Error("attacking should clear once cooldown reaches zero")
	}
}

func TestStaminaRegen(t *testing.T) {
	_, a, d := newDuelPair()
	a.Stamina = 50

	a.Update(d, core.Snapshot{})
	if math.Abs(a.Stamina-50.45) > 1e-9 {
		t.Errorf("stamina = %v, expected 50.45", a.Stamina)
	}

	// No regen while blocking.
	before := a.Stamina
	a.Update(d, core.Snapshot{Block: true})
	if a.Stamina != before {
		t.Errorf("stamina regenerated while blocking: %v -> %v", before, a.Stamina)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	tun, a, d := newDuelPair()

	a.Update(d, core.Snapshot{Jump: true})
	if a.OnGround {
		t.Fatal("jump should leave the ground")
	}
	velAfterJump := a.VelY

	// Holding jump mid-air must not re-trigger the impulse; only gravity
	// acts on the vertical velocity.
	a.Update(d, core.Snapshot{Jump: true})
	if a.VelY <= velAfterJump {
		t.Errorf("VelY = %v after mid-air jump input, expected gravity only (> %v)", a.VelY, velAfterJump)
	}

	// Fighter eventually lands back on the baseline.
	for i := 0; i < 200 && !a.OnGround; i++ {
		a.Update(d, core.Snapshot{})
	}
	if !a.OnGround || a.Y != tun.GroundY {
		t.Errorf("fighter did not land: y = %v, onGround = %v", a.Y, a.OnGround)
	}
}

func TestArenaBoundaryClamp(t *testing.T) {
	tun, a, d := newDuelPair()

	maxX := tun.ArenaW - tun.FighterW - tun.Margin

	for i := 0; i < 400; i++ {
		a.Update(d, core.Snapshot{Right: true})
		if a.X > maxX {
			t.Fatalf("x = %v exceeded right bound %v", a.X, maxX)
		}
	}
	if a.X != maxX {
		t.Errorf("x = %v, expected pinned at %v", a.X, maxX)
	}

	for i := 0; i < 400; i++ {
		a.Update(d, core.Snapshot{Left: true})
		if a.X < tun.Margin {
			t.Fatalf("x = %v went below left bound %v", a.X, tun.Margin)
		}
	}
	if a.X != tun.Margin {
		t.Errorf("x = %v, expected pinned at %v", a.X, tun.Margin)
	}
}

func TestHorizontalDecay(t *testing.T) {
	_, a, d := newDuelPair()

	a.Update(d, core.Snapshot{Right: true})
	if a.VelX != 5 {
		t.Fatalf("VelX = %v, expected 5", a.VelX)
	}

	// With no input the velocity decays and snaps to zero.
	for i := 0; i < 30; i++ {
		a.Update(d, core.Snapshot{})
	}
	if a.VelX != 0 {
		t.Errorf("VelX = %v, expected exact 0 after decay", a.VelX)
	}

	// Holding both directions behaves like holding neither.
	a.Update(d, core.Snapshot{Left: true, Right: true})
	if a.VelX != 0 {
		t.Errorf("VelX = %v, expected 0 with conflicting input", a.VelX)
	}
}

func TestFacingFollowsMovement(t *testing.T) {
	_, a, d := newDuelPair()

	a.Update(d, core.Snapshot{Left: true})
	if a.Facing != FaceLeft {
		t.Errorf("facing = %v, expected left", a.Facing)
	}

	a.Update(d, core.Snapshot{Right: true})
	if a.Facing != FaceRight {
		t.Errorf("facing = %v, expected right", a.Facing)
	}
}

func TestOutOfRangeAttackMisses(t *testing.T) {
	tun, a, d := newDuelPair()
	d.X = a.X + tun.FighterW + tun.Reach + 1

	a.Update(d, core.Snapshot{Attack: true})

	if d.Health != 100 {
		t.Errorf("defender health = %v, expected no hit out of reach", d.Health)
	}
	if !a.Attacking {
		t.Error("a whiffed attack still costs the swing")
	}
	if a.Stamina != 90 {
		t.Errorf("stamina = %v, expected 90 (cost charged on the attempt)", a.Stamina)
	}
}

func TestAttackFacingAway(t *testing.T) {
	_, a, d := newDuelPair()
	a.Facing = FaceLeft // defender stands to the right

	a.Update(d, core.Snapshot{Attack: true})

	if d.Health != 100 {
		t.Errorf("defender health = %v, hit-box must extend in the facing direction only", d.Health)
	}
}

func TestResetIdempotence(t *testing.T) {
	_, a, d := newDuelPair()

	// Churn some state first.
	for i := 0; i < 40; i++ {
		a.Update(d, core.Snapshot{Right: true, Attack: true})
		d.Update(a, core.Snapshot{Block: true})
	}

	a.Reset()
	once := *a
	a.Reset()
	twice := *a

	if once != twice {
		t.Errorf("reset is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}

	if a.X != a.SpawnX || a.Y != a.tun.GroundY {
		t.Errorf("reset position = (%v,%v), expected spawn (%v,%v)", a.X, a.Y, a.SpawnX, a.tun.GroundY)
	}
	if a.Health != 100 || a.Stamina != 100 {
		t.Errorf("reset meters = %v/%v, expected 100/100", a.Health, a.Stamina)
	}
	if a.Blocking || a.Attacking || a.Downed || !a.OnGround {
		t.Error("reset flags should be cleared and fighter grounded")
	}
	if a.Facing != a.SpawnFacing {
		t.Errorf("reset facing = %v, expected spawn facing %v", a.Facing, a.SpawnFacing)
	}
}

func TestRectDerivedFromBaseline(t *testing.T) {
	tun, a, _ := newDuelPair()

	r := a.Rect()
	if r.X != a.X {
		t.Errorf("rect x = %v, expected %v", r.X, a.X)
	}
	if r.Y != a.Y-tun.FighterH {
		t.Errorf("rect y = %v, expected foot baseline minus height %v", r.Y, a.Y-tun.FighterH)
	}
	if r.W != tun.FighterW || r.H != tun.FighterH {
		t.Errorf("rect size = %vx%v, expected %vx%v", r.W, r.H, tun.FighterW, tun.FighterH)
	}
}
