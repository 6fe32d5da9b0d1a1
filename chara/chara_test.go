package chara

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRoster(t *testing.T, contents string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "characters.json")
	if err := os.WriteFile(fname, []byte(contents), 0600); err != nil {
		t.Fatalf("Unexpected error writing roster file: %v", err)
	}
	return fname
}

const goodRoster = `{
	"Characters": [
		{
			"Name": "Puncher",
			"Health": 20,
			"Defense": 2,
			"Moves": [
				{ "Name": "Punch", "Damage": 8, "Cooldown": 0 },
				{ "Name": "Guard Up", "Damage": 0, "Cooldown": 2, "Effect": "blocks next attack" }
			]
		},
		{
			"Name": "Dodger",
			"Health": 20,
			"Defense": 3,
			"Moves": [
				{ "Name": "Kick", "Damage": 7, "Cooldown": 1 },
				{ "Name": "Sidestep", "Damage": 0, "Cooldown": 2, "Effect": "dodge next attack" }
			]
		}
	]
}`

func TestLoadRoster(t *testing.T) {
	r, err := LoadRoster(writeRoster(t, goodRoster))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(r.Characters) != 2 {
		t.Fatalf("Expected 2 characters, got %d", len(r.Characters))
	}
	c := r.Characters[0]
	if c.Name != "Puncher" || c.Health != 20 || c.Defense != 2 {
		t.Errorf("Expected Puncher 20/2, got %s %d/%d", c.Name, c.Health, c.Defense)
	}
	if len(c.Moves) != 2 {
		t.Fatalf("Expected 2 moves, got %d", len(c.Moves))
	}
	if c.Moves[1].Effect != EffectBlock {
		t.Errorf("Expected block effect, got %q", c.Moves[1].Effect)
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	if _, err := LoadRoster(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadRosterMalformedJSON(t *testing.T) {
	if _, err := LoadRoster(writeRoster(t, `{"Characters": [`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestValidateRejectsBadRosters(t *testing.T) {
	punch := []Move{{Name: "Punch", Damage: 8}}
	cases := []struct {
		name   string
		roster Roster
	}{
		{"too few characters", Roster{Characters: []Character{
			{Name: "Solo", Health: 10, Moves: punch},
		}}},
		{"duplicate names", Roster{Characters: []Character{
			{Name: "Twin", Health: 10, Moves: punch},
			{Name: "Twin", Health: 10, Moves: punch},
		}}},
		{"no moves", Roster{Characters: []Character{
			{Name: "Armless", Health: 10},
			{Name: "Other", Health: 10, Moves: punch},
		}}},
		{"zero health", Roster{Characters: []Character{
			{Name: "Ghost", Health: 0, Moves: punch},
			{Name: "Other", Health: 10, Moves: punch},
		}}},
		{"negative damage", Roster{Characters: []Character{
			{Name: "Healer", Health: 10, Moves: []Move{{Name: "Soothe", Damage: -5}}},
			{Name: "Other", Health: 10, Moves: punch},
		}}},
		{"negative cooldown", Roster{Characters: []Character{
			{Name: "Hasty", Health: 10, Moves: []Move{{Name: "Blur", Damage: 1, Cooldown: -1}}},
			{Name: "Other", Health: 10, Moves: punch},
		}}},
		{"duplicate move names", Roster{Characters: []Character{
			{Name: "Echo", Health: 10, Moves: []Move{{Name: "Punch", Damage: 1}, {Name: "Punch", Damage: 2}}},
			{Name: "Other", Health: 10, Moves: punch},
		}}},
	}
	for _, tc := range cases {
		if err := tc.roster.Validate(); err == nil {
			t.Errorf("Expected validation error for %s", tc.name)
		}
	}
}

func TestNewFighter(t *testing.T) {
	c := Character{Name: "Puncher", Health: 20, Defense: 2,
		Moves: []Move{{Name: "Punch", Damage: 8}, {Name: "Uppercut", Damage: 12, Cooldown: 2}}}
	f := NewFighter(c)
	g := NewFighter(c)

	if f.UUID == "" {
		t.Error("Expected a UUID on a new fighter")
	}
	if f.UUID == g.UUID {
		t.Error("Expected distinct UUIDs for distinct fighters")
	}
	if f.CooldownAt(0) != 0 || f.CooldownAt(1) != 0 {
		t.Error("Expected all cooldowns to start at 0")
	}
	if f.Guarding() {
		t.Error("Expected guard flag to start cleared")
	}

	// damage to the fighter leaves the source character alone
	f.ReceiveDamage(5)
	if f.GetHP() != 15 {
		t.Errorf("Expected fighter health 15, got %d", f.GetHP())
	}
	if c.Health != 20 {
		t.Errorf("Expected source character untouched at 20, got %d", c.Health)
	}
}

func TestFighterReset(t *testing.T) {
	f := NewFighter(Character{Name: "Puncher", Health: 20,
		Moves: []Move{{Name: "Punch", Damage: 8, Cooldown: 3}}})
	f.SetCooldown(0, 3)
	f.SetGuarding(true)

	f.Reset()
	if f.CooldownAt(0) != 0 {
		t.Errorf("Expected cooldown 0 after reset, got %d", f.CooldownAt(0))
	}
	if f.Guarding() {
		t.Error("Expected guard flag cleared after reset")
	}
}

func TestTickCooldownsNeverBelowZero(t *testing.T) {
	f := NewFighter(Character{Name: "Puncher", Health: 20,
		Moves: []Move{{Name: "Punch", Damage: 8}, {Name: "Uppercut", Damage: 12, Cooldown: 2}}})
	f.SetCooldown(1, 2)

	f.TickCooldowns()
	if f.CooldownAt(1) != 1 {
		t.Errorf("Expected cooldown 1 after one tick, got %d", f.CooldownAt(1))
	}
	f.TickCooldowns()
	f.TickCooldowns()
	if f.CooldownAt(0) != 0 || f.CooldownAt(1) != 0 {
		t.Errorf("Expected cooldowns floored at 0, got %d and %d", f.CooldownAt(0), f.CooldownAt(1))
	}
}

func TestIsGuard(t *testing.T) {
	if !(Move{Name: "Guard Up", Effect: EffectBlock}).IsGuard() {
		t.Error("Expected block move to be a guard")
	}
	if !(Move{Name: "Sidestep", Effect: EffectDodge}).IsGuard() {
		t.Error("Expected dodge move to be a guard")
	}
	if (Move{Name: "Punch", Damage: 8}).IsGuard() {
		t.Error("Expected plain attack not to be a guard")
	}
	if (Move{Name: "Flame Fist", Damage: 6, Effect: "burns"}).IsGuard() {
		t.Error("Expected non-defense effect not to be a guard")
	}
}

func TestAutoCompleteMoves(t *testing.T) {
	moves := []Move{
		{Name: "Punch", Damage: 8},
		{Name: "Skull Crusher", Damage: 14},
		{Name: "Sidestep", Effect: EffectDodge},
	}

	if idx, err := AutoCompleteMoves("punch", moves); err != nil || idx != 0 {
		t.Errorf("Expected index 0 for %q, got %d (%v)", "punch", idx, err)
	}
	if idx, err := AutoCompleteMoves("sk", moves); err != nil || idx != 1 {
		t.Errorf("Expected index 1 for %q, got %d (%v)", "sk", idx, err)
	}
	if idx, err := AutoCompleteMoves("skull c", moves); err != nil || idx != 1 {
		t.Errorf("Expected index 1 for %q, got %d (%v)", "skull c", idx, err)
	}
	if idx, err := AutoCompleteMoves("SIDE", moves); err != nil || idx != 2 {
		t.Errorf("Expected index 2 for %q, got %d (%v)", "SIDE", idx, err)
	}
	if _, err := AutoCompleteMoves("headbutt", moves); err == nil {
		t.Error("Expected error for unknown move name")
	}
}
