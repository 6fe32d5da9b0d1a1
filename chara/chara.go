package chara

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultRosterFile = "chara/characters.json"

// Effect tags a move can carry. A guard effect raises the user's active
// defense instead of dealing damage; anything else is narrated but has no
// mechanical meaning of its own.
const (
	EffectBlock = "blocks next attack"
	EffectDodge = "dodge next attack"
)

type Move struct {
	Name     string `json:"Name"`
	Damage   int    `json:"Damage"`
	Cooldown int    `json:"Cooldown"`
	Effect   string `json:"Effect,omitempty"`
}

func (m Move) IsGuard() bool {
	return m.Effect == EffectBlock || m.Effect == EffectDodge
}

type Character struct {
	Name    string `json:"Name"`
	Health  int    `json:"Health"`
	Defense int    `json:"Defense"`
	Moves   []Move `json:"Moves"`
}

type Roster struct {
	Characters []Character `json:"Characters"`
}

func LoadRoster(fname string) (*Roster, error) {
	f, err := os.ReadFile(fname)
	if err != nil {
		fmt.Printf("unable to open character file: %s\n", err)
		return nil, err
	}

	r := &Roster{}
	err = json.Unmarshal(f, r)
	if err != nil {
		fmt.Printf("error unmarshaling JSON: %s\n", err)
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the roster before any bout starts, so bad data is a
// startup failure rather than a surprise mid-fight.
func (r *Roster) Validate() error {
	if len(r.Characters) < 2 {
		return fmt.Errorf("roster needs at least 2 characters, has %d", len(r.Characters))
	}
	seen := map[string]bool{}
	for _, c := range r.Characters {
		if c.Name == "" {
			return fmt.Errorf("character with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate character name: %q", c.Name)
		}
		seen[c.Name] = true
		if c.Health <= 0 {
			return fmt.Errorf("character %q has health %d", c.Name, c.Health)
		}
		if c.Defense < 0 {
			return fmt.Errorf("character %q has negative defense", c.Name)
		}
		if len(c.Moves) == 0 {
			return fmt.Errorf("character %q has no moves", c.Name)
		}
		moveSeen := map[string]bool{}
		for _, m := range c.Moves {
			if m.Name == "" {
				return fmt.Errorf("character %q has a move with an empty name", c.Name)
			}
			if moveSeen[m.Name] {
				return fmt.Errorf("character %q has duplicate move %q", c.Name, m.Name)
			}
			moveSeen[m.Name] = true
			if m.Damage < 0 {
				return fmt.Errorf("move %q of %q has negative damage", m.Name, c.Name)
			}
			if m.Cooldown < 0 {
				return fmt.Errorf("move %q of %q has negative cooldown", m.Name, c.Name)
			}
		}
	}
	return nil
}

// A Fighter is one character's battle-scoped state: a mutable health copy,
// remaining cooldowns indexed parallel to Moves, and the one-shot guard
// flag. The Character record it was built from stays untouched, so a
// rematch starts from fresh copies.
type Fighter struct {
	Character
	UUID      string
	cooldowns []int
	guarding  bool
}

func NewFighter(c Character) *Fighter {
	return &Fighter{
		Character: c,
		UUID:      uuid.New().String(),
		cooldowns: make([]int, len(c.Moves)),
	}
}

// Reset zeroes every cooldown and drops the guard flag, ready for a new bout.
func (f *Fighter) Reset() {
	for i := range f.cooldowns {
		f.cooldowns[i] = 0
	}
	f.guarding = false
}

func (f *Fighter) GetName() string {
	return f.Name
}

func (f *Fighter) GetHP() int {
	return f.Health
}

func (f *Fighter) GetDefense() int {
	return f.Defense
}

func (f *Fighter) ReceiveDamage(dmg int) {
	f.Health -= dmg
}

func (f *Fighter) MoveCount() int {
	return len(f.Moves)
}

func (f *Fighter) MoveAt(i int) Move {
	return f.Moves[i]
}

func (f *Fighter) CooldownAt(i int) int {
	return f.cooldowns[i]
}

func (f *Fighter) SetCooldown(i, turns int) {
	f.cooldowns[i] = turns
}

// TickCooldowns knocks one turn off every move still cooling down, never
// going below 0.
func (f *Fighter) TickCooldowns() {
	for i := range f.cooldowns {
		if f.cooldowns[i] > 0 {
			f.cooldowns[i]--
		}
	}
}

func (f *Fighter) Guarding() bool {
	return f.guarding
}

func (f *Fighter) SetGuarding(g bool) {
	f.guarding = g
}

// AutoCompleteMoves resolves a typed move name, or any prefix of one, to
// its index in the fighter's move list. Matching is case-insensitive, so
// "use hay" finds "Haymaker".
func AutoCompleteMoves(stub string, moves []Move) (int, error) {
	stub = cases.Title(language.English).String(strings.ToLower(stub))
	for i, m := range moves {
		if strings.HasPrefix(m.Name, stub) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("not found: %q", stub)
}
