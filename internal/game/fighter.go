package game

import "github.com/vovakirdan/tui-duel/internal/core"

// Facing direction conventions.
const (
	FaceRight = 1.0
	FaceLeft  = -1.0
)

// Fighter is one combatant's full physics and combat state. X is the left
// edge of the body, Y is the foot baseline (not the top), both in logical
// arena units with Y growing downward. A Fighter is owned by its Match and
// mutated only through Update and Reset.
type Fighter struct {
	// Identity, fixed for the life of the match.
	Name        string
	Color       core.Color
	SpawnX      float64
	SpawnFacing float64

	// Kinematics.
	X, Y       float64
	VelX, VelY float64
	Facing     float64 // FaceRight or FaceLeft

	// Combat state.
	Health    float64
	Stamina   float64
	Cooldown  int // Ticks before the next attack is allowed
	Blocking  bool
	Attacking bool
	OnGround  bool
	Downed    bool // Terminal for the round, cleared only by Reset

	tun *Tuning
}

// NewFighter creates a fighter at its spawn position with full meters.
func NewFighter(name string, color core.Color, spawnX, facing float64, tun *Tuning) *Fighter {
	f := &Fighter{
		Name:        name,
		Color:       color,
		SpawnX:      spawnX,
		SpawnFacing: facing,
		tun:         tun,
	}
	f.Reset()
	return f
}

// Rect returns the fighter's current bounding box. The top-left corner is
// derived from the foot baseline minus the body height.
func (f *Fighter) Rect() core.RectF {
	return core.NewRectF(f.X, f.Y-f.tun.FighterH, f.tun.FighterW, f.tun.FighterH)
}

// attackBox returns the transient hit-box for an attack attempt: a box
// extending Reach units in front of the body, spanning the full height.
func (f *Fighter) attackBox() core.RectF {
	top := f.Y - f.tun.FighterH
	if f.Facing >= 0 {
		return core.NewRectF(f.X+f.tun.FighterW, top, f.tun.Reach, f.tun.FighterH)
	}
	return core.NewRectF(f.X-f.tun.Reach, top, f.tun.Reach, f.tun.FighterH)
}

// Update advances the fighter by one tick. It mutates the receiver and,
// when a hit lands, the opponent (health, velocity, grounding). The
// opponent reference is borrowed per call, never stored.
//
// A downed fighter is frozen: the call returns immediately and no input
// has any effect until Reset.
func (f *Fighter) Update(opponent *Fighter, in core.Snapshot) {
	if f.Downed {
		return
	}

	tun := f.tun

	// Horizontal control. Holding both directions cancels out and decays
	// like no input at all.
	switch {
	case in.Left && !in.Right:
		f.VelX = -tun.MoveSpeed
		f.Facing = FaceLeft
	case in.Right && !in.Left:
		f.VelX = tun.MoveSpeed
		f.Facing = FaceRight
	default:
		f.VelX *= tun.FrictionDecay
		if f.VelX < tun.StopEpsilon && f.VelX > -tun.StopEpsilon {
			f.VelX = 0
		}
	}

	// Guard mirrors the input directly: no toggle, no cooldown, no
	// stamina gate.
	f.Blocking = in.Block

	if in.Jump && f.OnGround {
		f.VelY = tun.JumpImpulse
		f.OnGround = false
	}

	attacked := false
	if in.Attack && f.Cooldown <= 0 && f.Stamina >= tun.AttackCost {
		attacked = true
		f.Attacking = true
		f.Cooldown = tun.CooldownTicks
		f.Stamina = core.ClampF(f.Stamina-tun.AttackCost, 0, tun.MaxStamina)

		if f.attackBox().Intersects(opponent.Rect()) {
			f.strike(opponent)
		}
	}

	// Physics integration runs every tick regardless of the above.
	f.X += f.VelX
	f.VelY += tun.Gravity
	f.Y += f.VelY
	if f.Y >= tun.GroundY {
		f.Y = tun.GroundY
		f.VelY = 0
		f.OnGround = true
	}

	f.X = core.ClampF(f.X, tun.Margin, tun.ArenaW-tun.FighterW-tun.Margin)

	if f.Cooldown > 0 {
		f.Cooldown--
	}
	if f.Cooldown <= 0 && !attacked {
		f.Attacking = false
	}

	if !f.Attacking && !f.Blocking {
		f.Stamina = core.ClampF(f.Stamina+tun.StaminaRegen, 0, tun.MaxStamina)
	}

	// Total clamps: never trust intermediate arithmetic to stay in range.
	f.Health = core.ClampF(f.Health, 0, tun.MaxHealth)
	f.Stamina = core.ClampF(f.Stamina, 0, tun.MaxStamina)

	// A fighter whose health ran out finishes this frame and then drops.
	if f.Health <= 0 {
		f.down()
	}
}

// strike resolves a landed attack against the opponent: block check,
// damage, and knockback. It never applies the downed transition; that
// belongs to the victim's own update, so a lethally hit fighter still
// evaluates its final frame and a trade within one tick can drop both.
func (f *Fighter) strike(opponent *Fighter) {
	tun := f.tun

	// A block only counts when the defender faces the attacker.
	blocked := opponent.Blocking && opponent.Facing == -f.Facing

	damage := tun.HitDamage
	if blocked {
		damage = tun.BlockedDamage
	}
	// Winded attackers hit softer. Stamina was already charged for this
	// attack, so the bar is checked post-cost.
	if f.Stamina < tun.LowStaminaBar {
		damage *= tun.LowStaminaScale
	}

	opponent.Health = core.ClampF(opponent.Health-damage, 0, tun.MaxHealth)
	opponent.VelX += f.Facing * tun.KnockbackX
	opponent.VelY = tun.KnockupY
	opponent.OnGround = false
}

// down is the one-way transition to the terminal round state.
func (f *Fighter) down() {
	f.Downed = true
	f.VelX = 0
	f.Attacking = false
}

// Reset restores the fighter to its spawn state for a new round. Identity
// (name, color, spawn position, default facing) is untouched.
func (f *Fighter) Reset() {
	f.X = f.SpawnX
	f.Y = f.tun.GroundY
	f.VelX = 0
	f.VelY = 0
	f.Facing = f.SpawnFacing
	f.Health = f.tun.MaxHealth
	f.Stamina = f.tun.MaxStamina
	f.Cooldown = 0
	f.Blocking = false
	f.Attacking = false
	f.OnGround = true
	f.Downed = false
}

// HealthPercent returns health as 0..100 for UI bars.
func (f *Fighter) HealthPercent() float64 {
	if f.tun.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(f.Health/f.tun.MaxHealth*100, 0, 100)
}

// StaminaPercent returns stamina as 0..100 for UI bars.
func (f *Fighter) StaminaPercent() float64 {
	if f.tun.MaxStamina <= 0 {
		return 0
	}
	return core.ClampF(f.Stamina/f.tun.MaxStamina*100, 0, 100)
}
