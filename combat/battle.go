package combat

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrConceded is returned from Run when the player quits out of the bout
// instead of picking a move.
var ErrConceded = errors.New("player conceded")

type Outcome int

const (
	// OutcomeOnCooldown means the move was refused and the turn wasted.
	OutcomeOnCooldown Outcome = iota
	// OutcomeNullified means the defender's active guard ate the attack.
	OutcomeNullified
	// OutcomeGuardRaised means the attacker spent the turn raising a guard.
	OutcomeGuardRaised
	// OutcomeHit means damage resolution ran, possibly for 0 damage.
	OutcomeHit
)

// A MoveSelector picks the index of the move a combatant will attempt on
// its turn. It may return an index that's still on cooldown; the engine
// refuses it and the turn is spent anyway.
type MoveSelector interface {
	SelectMove(attacker Combatant) (int, error)
}

// RandomSelector is the computer side: a uniform pick over the whole move
// list. It deliberately does not look at cooldowns, so the computer can
// waste its turn on a cooling move and the engine will refuse it.
type RandomSelector struct {
	Rand *rand.Rand
}

func (s *RandomSelector) SelectMove(attacker Combatant) (int, error) {
	return s.Rand.Intn(attacker.MoveCount()), nil
}

// A Battle owns all state for one bout: both fighters (with their cooldown
// and guard state), and the sink narrative text gets written to. The
// caller keeps presentation concerns out here entirely.
type Battle struct {
	Player Combatant
	CPU    Combatant
	Out    io.Writer

	titler cases.Caser
}

func NewBattle(player, cpu Combatant, out io.Writer) *Battle {
	return &Battle{
		Player: player,
		CPU:    cpu,
		Out:    out,
		titler: cases.Title(language.English),
	}
}

// NewRandomSelector seeds from the clock. Tests build a RandomSelector
// directly with a fixed source instead.
func NewRandomSelector() *RandomSelector {
	return &RandomSelector{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Reset zeroes cooldowns and clears guard flags on both sides.
func (b *Battle) Reset() {
	b.Player.Reset()
	b.CPU.Reset()
}

// ExecuteMove resolves one attempted move. Branch order matters and is
// load-bearing: the cooldown gate runs first, then the defender's active
// guard (which also eats guard moves, not just attacks), then the
// attacker's own guard effect, then plain damage.
func (b *Battle) ExecuteMove(attacker, defender Combatant, idx int) Outcome {
	mv := attacker.MoveAt(idx)

	if attacker.CooldownAt(idx) > 0 {
		fmt.Fprintf(b.Out, "%s is on cooldown!\n", mv.Name)
		return OutcomeOnCooldown
	}

	if defender.Guarding() {
		fmt.Fprintf(b.Out, "%s blocked or dodged the attack!\n", defender.GetName())
		defender.SetGuarding(false)
		attacker.SetCooldown(idx, mv.Cooldown)
		return OutcomeNullified
	}

	if mv.IsGuard() {
		fmt.Fprintf(b.Out, "%s used %s! %s.\n", attacker.GetName(), mv.Name, b.titler.String(mv.Effect))
		attacker.SetGuarding(true)
		attacker.SetCooldown(idx, mv.Cooldown)
		return OutcomeGuardRaised
	}

	dmg := mv.Damage - defender.GetDefense()
	if dmg < 0 {
		dmg = 0
	}
	defender.ReceiveDamage(dmg)
	fmt.Fprintf(b.Out, "%s used %s! It dealt %d damage.\n", attacker.GetName(), mv.Name, dmg)
	attacker.SetCooldown(idx, mv.Cooldown)

	if mv.Effect != "" {
		fmt.Fprintf(b.Out, "Effect applied: %s\n", mv.Effect)
	}

	return OutcomeHit
}

// TickCooldowns advances time for both sides by one turn. It runs after
// every single turn, not after each full round, so a cooldown of 2 means
// the move comes back on the user's next-but-one turn.
func (b *Battle) TickCooldowns() {
	b.Player.TickCooldowns()
	b.CPU.TickCooldowns()
}

// Winner compares final healths after the loop exits: lower health loses.
// The loser's health can be negative from the last blow; the comparison
// still holds.
func (b *Battle) Winner() Combatant {
	if b.Player.GetHP() < b.CPU.GetHP() {
		return b.CPU
	}
	return b.Player
}

// Run alternates turns strictly player-then-computer until either side's
// health hits 0 or below, then reports the winner. Selector errors abort
// the bout, which is how the player concedes.
func (b *Battle) Run(playerSel, cpuSel MoveSelector) (Combatant, error) {
	b.Reset()

	playerTurn := true
	for b.Player.GetHP() > 0 && b.CPU.GetHP() > 0 {
		fmt.Fprintf(b.Out, "\n%s Health: %d\n", b.Player.GetName(), b.Player.GetHP())
		fmt.Fprintf(b.Out, "%s Health: %d\n\n", b.CPU.GetName(), b.CPU.GetHP())

		var attacker, defender Combatant
		var sel MoveSelector
		if playerTurn {
			fmt.Fprintf(b.Out, "Your turn!\n")
			attacker, defender, sel = b.Player, b.CPU, playerSel
		} else {
			fmt.Fprintf(b.Out, "%s's turn!\n", b.CPU.GetName())
			attacker, defender, sel = b.CPU, b.Player, cpuSel
		}

		idx, err := sel.SelectMove(attacker)
		if err != nil {
			return nil, err
		}
		b.ExecuteMove(attacker, defender, idx)

		b.TickCooldowns()
		playerTurn = !playerTurn
	}

	return b.Winner(), nil
}
