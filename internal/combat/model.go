// Package combat provides the pure combat model shared by the player, the
// tower and the enemies.
//
// Every function here is deterministic and side-effect free. The float64
// evaluation order of Damage and TowerDamage is part of the balance contract:
// changing it changes the floor results at some levels.
package combat

import "math"

// =============================================================================
// COMBAT MODEL
// =============================================================================
//
// Weapon damage:   floor((10 + 5*(lvl-1)) * (1 + 0.1*(lvl-1)))
// Armor defense:   5 * lvl
// Incoming damage: max(1, base - defense)
// Experience:      required(lvl) = 100*lvl + 50*(lvl-1)  (cumulative total)
// Tower damage:    floor(10 * 1.1^lvl)

const (
	baseWeaponDamage   = 10
	weaponDamagePerLvl = 5
	weaponScalePerLvl  = 0.1
	defensePerLvl      = 5
	towerBaseDamage    = 10.0
	towerGrowth        = 1.1

	// timeEpsilon absorbs float drift in accumulated clocks so that a
	// cooldown of 0.3s is ready at exactly 0.3s after the last action.
	timeEpsilon = 1e-9
)

// Damage returns the damage dealt per hit by a weapon of the given level.
// Levels below 1 are treated as level 1.
func Damage(weaponLevel int) int {
	if weaponLevel < 1 {
		weaponLevel = 1
	}
	steps := float64(weaponLevel - 1)
	base := float64(baseWeaponDamage + weaponDamagePerLvl*(weaponLevel-1))
	return int(math.Floor(base * (1 + weaponScalePerLvl*steps)))
}

// Defense returns the flat damage reduction of an armor level.
func Defense(armorLevel int) int {
	return defensePerLvl * armorLevel
}

// IncomingDamage returns the damage an attack of base strength deals through
// the given armor. Every landed hit deals at least 1.
func IncomingDamage(base, armorLevel int) int {
	d := base - Defense(armorLevel)
	if d < 1 {
		d = 1
	}
	return d
}

// ExperienceRequired returns the total experience needed to reach level.
func ExperienceRequired(level int) int {
	return 100*level + 50*(level-1)
}

// TowerDamage returns the damage of one tower shot at the given tower level.
func TowerDamage(level int) int {
	return int(math.Floor(towerBaseDamage * math.Pow(towerGrowth, float64(level))))
}

// Ready reports whether at least cooldown seconds have passed since last.
func Ready(now, last, cooldown float64) bool {
	return now-last >= cooldown-timeEpsilon
}
