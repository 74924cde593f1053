package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the built-in tuning, mirroring the embedded
// YAML. Used as the last-resort fallback if the embedded file fails to
// parse.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Arena: ArenaConfig{
			Width:        1024,
			Height:       576,
			GroundOffset: 46,
			Margin:       30,
		},
		Fighter: FighterConfig{
			Width:      40,
			Height:     120,
			SpawnInset: 180,
		},
		Physics: PhysicsConfig{
			Gravity:       0.8,
			MoveSpeed:     5,
			JumpImpulse:   -16,
			FrictionDecay: 0.8,
			StopEpsilon:   0.1,
		},
		Combat: CombatConfig{
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
			MaxHealth:       100,
			MaxStamina:      100,
		},
	}
}
