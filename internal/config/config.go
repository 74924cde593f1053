// Package config provides YAML-based tuning configuration for the duel.
package config

import "github.com/vovakirdan/tui-duel/internal/game"

// DuelConfig is the on-disk shape of the simulation tuning.
type DuelConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Fighter FighterConfig `yaml:"fighter"`
	Physics PhysicsConfig `yaml:"physics"`
	Combat  CombatConfig  `yaml:"combat"`
}

// ArenaConfig defines the logical arena geometry.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance of the ground line from the bottom
	Margin       float64 `yaml:"margin"`
}

// FighterConfig defines fighter geometry and spawning.
type FighterConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnInset float64 `yaml:"spawn_inset"`
}

// PhysicsConfig defines per-tick movement parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	MoveSpeed     float64 `yaml:"move_speed"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	FrictionDecay float64 `yaml:"friction_decay"`
	StopEpsilon   float64 `yaml:"stop_epsilon"`
}

// CombatConfig defines damage, stamina economy and knockback.
type CombatConfig struct {
	Reach           float64 `yaml:"reach"`
	HitDamage       float64 `yaml:"hit_damage"`
	BlockedDamage   float64 `yaml:"blocked_damage"`
	AttackCost      float64 `yaml:"attack_cost"`
	LowStaminaBar   float64 `yaml:"low_stamina_bar"`
	LowStaminaScale float64 `yaml:"low_stamina_scale"`
	KnockbackX      float64 `yaml:"knockback_x"`
	KnockupY        float64 `yaml:"knockup_y"`
	CooldownTicks   int     `yaml:"cooldown_ticks"`
	StaminaRegen    float64 `yaml:"stamina_regen"`
	MaxHealth       float64 `yaml:"max_health"`
	MaxStamina      float64 `yaml:"max_stamina"`
}

// Tuning converts the config to simulation tuning values. Zero or missing
// fields fall back to the canonical defaults so a partial YAML file only
// overrides what it names.
func (c DuelConfig) Tuning() game.Tuning {
	t := game.DefaultTuning()

	setF(&t.ArenaW, c.Arena.Width)
	setF(&t.ArenaH, c.Arena.Height)
	if c.Arena.GroundOffset > 0 {
		t.GroundY = t.ArenaH - c.Arena.GroundOffset
	}
	setF(&t.Margin, c.Arena.Margin)

	setF(&t.FighterW, c.Fighter.Width)
	setF(&t.FighterH, c.Fighter.Height)
	setF(&t.SpawnInset, c.Fighter.SpawnInset)

	setF(&t.Gravity, c.Physics.Gravity)
	setF(&t.MoveSpeed, c.Physics.MoveSpeed)
	if c.Physics.JumpImpulse != 0 {
		t.JumpImpulse = c.Physics.JumpImpulse
	}
	setF(&t.FrictionDecay, c.Physics.FrictionDecay)
	setF(&t.StopEpsilon, c.Physics.StopEpsilon)

	setF(&t.Reach, c.Combat.Reach)
	setF(&t.HitDamage, c.Combat.HitDamage)
	setF(&t.BlockedDamage, c.Combat.BlockedDamage)
	setF(&t.AttackCost, c.Combat.AttackCost)
	setF(&t.LowStaminaBar, c.Combat.LowStaminaBar)
	setF(&t.LowStaminaScale, c.Combat.LowStaminaScale)
	setF(&t.KnockbackX, c.Combat.KnockbackX)
	if c.Combat.KnockupY != 0 {
		t.KnockupY = c.Combat.KnockupY
	}
	if c.Combat.CooldownTicks > 0 {
		t.CooldownTicks = c.Combat.CooldownTicks
	}
	setF(&t.StaminaRegen, c.Combat.StaminaRegen)
	setF(&t.MaxHealth, c.Combat.MaxHealth)
	setF(&t.MaxStamina, c.Combat.MaxStamina)

	return t
}

func setF(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
