package combat

import "testing"

func TestDamageGoldenValues(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 10}, // 10 * 1.0
		{2, 16}, // floor(15 * 1.1) = floor(16.5)
		{3, 24}, // floor(20 * 1.2)
		{4, 32}, // floor(25 * 1.3) = floor(32.5)
		{6, 52}, // floor(35 * 1.5) = floor(52.5)
		{11, 120},
	}

	for _, tt := range tests {
		if got := Damage(tt.level); got != tt.want {
			t.Errorf("Damage(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestDamageMonotonic(t *testing.T) {
	for lvl := 1; lvl < 200; lvl++ {
		if Damage(lvl+1) <= Damage(lvl) {
			t.Fatalf("Damage(%d)=%d is not greater than Damage(%d)=%d",
				lvl+1, Damage(lvl+1), lvl, Damage(lvl))
		}
	}
}

func TestDamageBelowOneClampsToLevelOne(t *testing.T) {
	if Damage(0) != Damage(1) {
		t.Errorf("Damage(0) = %d, want %d", Damage(0), Damage(1))
	}
}

func TestDefenseLinear(t *testing.T) {
	for lvl := 1; lvl <= 10; lvl++ {
		if got := Defense(lvl); got != 5*lvl {
			t.Errorf("Defense(%d) = %d, want %d", lvl, got, 5*lvl)
		}
	}
}

func TestIncomingDamage(t *testing.T) {
	// Enemy base damage 10
	if got := IncomingDamage(10, 0); got != 10 {
		t.Errorf("IncomingDamage(10, 0) = %d, want 10", got)
	}
	if got := IncomingDamage(10, 1); got != 5 {
		t.Errorf("IncomingDamage(10, 1) = %d, want 5", got)
	}
	// 10 - 10 = 0 -> min 1
	if got := IncomingDamage(10, 2); got != 1 {
		t.Errorf("IncomingDamage(10, 2) = %d, want minimum 1", got)
	}
	if got := IncomingDamage(10, 9); got != 1 {
		t.Errorf("IncomingDamage(10, 9) = %d, want minimum 1", got)
	}
}

func TestExperienceRequired(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 250},
		{3, 400},
		{10, 1450},
	}
	for _, tt := range tests {
		if got := ExperienceRequired(tt.level); got != tt.want {
			t.Errorf("ExperienceRequired(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestTowerDamage(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 11}, // floor(11.0)
		{2, 12}, // floor(12.1)
		{3, 13}, // floor(13.31)
		{5, 16}, // floor(16.1051)
		{10, 25},
	}
	for _, tt := range tests {
		if got := TowerDamage(tt.level); got != tt.want {
			t.Errorf("TowerDamage(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestReady(t *testing.T) {
	if Ready(0.2, 0, 0.3) {
		t.Error("Ready(0.2, 0, 0.3) should be false")
	}
	if !Ready(0.3, 0, 0.3) {
		t.Error("Ready(0.3, 0, 0.3) should be true")
	}
	// 3*0.3 - 2*0.3 is slightly below 0.3 in float64
	if !Ready(float64(3)*0.3, float64(2)*0.3, 0.3) {
		t.Error("accumulated clock drift should not delay a ready cooldown")
	}
}
