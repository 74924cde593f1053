// Package game implements the duel simulation: two fighters with melee
// combat, resolved one tick at a time. The simulation is pure (no I/O, no
// terminal knowledge) and runs in a fixed logical arena; rendering scales
// it to whatever screen is available.
package game

// Tuning holds every per-tick constant of the simulation. All rates are
// "per tick": the simulation is deliberately coupled to the tick rate, so
// a faster driver produces a faster fight. Values are overridable via the
// config package; Default is the canonical balance.
type Tuning struct {
	// Arena geometry, in logical units.
	ArenaW  float64
	ArenaH  float64
	GroundY float64 // Foot baseline fighters stand on
	Margin  float64 // Horizontal keep-in margin on both sides

	// Fighter geometry.
	FighterW   float64
	FighterH   float64
	SpawnInset float64 // Spawn distance from each arena edge

	// Movement.
	MoveSpeed     float64 // Horizontal speed while a direction is held
	JumpImpulse   float64 // Upward velocity on jump (negative = up)
	Gravity       float64 // Added to vertical velocity each tick
	FrictionDecay float64 // Horizontal velocity multiplier when idle
	StopEpsilon   float64 // Speeds below this snap to zero

	// Combat.
	Reach           float64 // How far the attack box extends past the body
	HitDamage       float64 // Damage of an unblocked hit
	BlockedDamage   float64 // Damage of a blocked hit
	AttackCost      float64 // Stamina deducted per attack
	LowStaminaBar   float64 // Below this (post-cost) damage is scaled down
	LowStaminaScale float64
	KnockbackX      float64 // Horizontal shove, signed by attacker facing
	KnockupY        float64 // Vertical pop applied to the victim
	CooldownTicks   int     // Ticks between attacks
	StaminaRegen    float64 // Stamina per tick while neither attacking nor blocking

	// Meters.
	MaxHealth  float64
	MaxStamina float64
}

// DefaultTuning returns the canonical balance.
func DefaultTuning() Tuning {
	return Tuning{
		ArenaW:  1024,
		ArenaH:  576,
		GroundY: 530,
		Margin:  30,

		FighterW:   40,
		FighterH:   120,
		SpawnInset: 180,

		MoveSpeed:     5,
		JumpImpulse:   -16,
		Gravity:       0.8,
		FrictionDecay: 0.8,
		StopEpsilon:   0.1,

		Reach:           70,
		HitDamage:       16,
		BlockedDamage:   6,
		AttackCost:      10,
		LowStaminaBar:   15,
		LowStaminaScale: 0.5,
		KnockbackX:      3,
		KnockupY:        -4,
		CooldownTicks:   28,
		StaminaRegen:    0.45,

		MaxHealth:  100,
		MaxStamina: 100,
	}
}
