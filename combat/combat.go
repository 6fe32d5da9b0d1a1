package combat

import "github.com/lpbeast/pitfight/chara"

// This exists so the engine can drive either side of a bout the same way,
// whichever one the player is controlling.

type Combatant interface {
	GetName() string
	GetHP() int
	GetDefense() int
	ReceiveDamage(dmg int)
	MoveCount() int
	MoveAt(i int) chara.Move
	CooldownAt(i int) int
	SetCooldown(i, turns int)
	TickCooldowns()
	Guarding() bool
	SetGuarding(g bool)
	Reset()
}
