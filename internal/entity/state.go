package entity

// GameState is the single authoritative progression record. It is owned by
// the game loop and lent to subsystems for the duration of one tick.
//
// Invariant: 0 <= Health <= MaxHealth after every mutation.
type GameState struct {
	Level          int
	Experience     int
	Health         int
	MaxHealth      int
	WeaponLevel    int
	ArmorLevel     int
	MeatCount      int
	ProcessedMeats int
	Money          int
}

// NewGameState creates a level 1 state with full health.
func NewGameState(startHealth int) *GameState {
	return &GameState{
		Level:       1,
		Health:      startHealth,
		MaxHealth:   startHealth,
		WeaponLevel: 1,
		ArmorLevel:  1,
	}
}

// ClampHealth restores the health invariant.
func (s *GameState) ClampHealth() {
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
	if s.Health < 0 {
		s.Health = 0
	}
}

// ApplyDamage subtracts amount from health. Reaching zero restores full
// health; there is no game-over state.
// It returns true when the hit was lethal and triggered the restore.
func (s *GameState) ApplyDamage(amount int) bool {
	if amount <= 0 {
		return false
	}
	s.Health -= amount
	if s.Health <= 0 {
		s.Health = s.MaxHealth
		return true
	}
	s.ClampHealth()
	return false
}

// Heal restores health up to MaxHealth and returns the amount healed.
func (s *GameState) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.Health
	s.Health += amount
	s.ClampHealth()
	return s.Health - before
}

// SpendMoney deducts amount, never going below zero.
func (s *GameState) SpendMoney(amount int) {
	s.Money -= amount
	if s.Money < 0 {
		s.Money = 0
	}
}

// Currency returns the displayed currency for the given exchange rate.
// It is a presentation value; Money stays coin-denominated.
func (s *GameState) Currency(rate int) int {
	return s.Money * rate
}
