package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lpbeast/pitfight/chara"
	"github.com/lpbeast/pitfight/combat"
	"github.com/lpbeast/pitfight/commands"
)

const helpText = `Pick a move by number, or:
  use <name>   attempt a move by name or name prefix
  moves        show your moves and their cooldowns
  status       show both fighters' health
  quit         concede the fight
`

// consoleSelector drives the human side of the bout: show the move list,
// read a selection, re-prompt until the input is valid. Commands that
// don't pick a move (moves, status, help) don't consume the turn.
type consoleSelector struct {
	in  *bufio.Scanner
	out io.Writer
	foe combat.Combatant
}

func (s *consoleSelector) SelectMove(attacker combat.Combatant) (int, error) {
	showMoves(s.out, attacker)
	for {
		fmt.Fprintf(s.out, "Choose a move for %s (1-%d): ", attacker.GetName(), attacker.MoveCount())
		if !s.in.Scan() {
			return 0, combat.ErrConceded
		}
		pc, err := commands.ParseCommand(s.in.Text())
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number.\n")
			continue
		}
		switch pc.Command.Type {
		case commands.QUIT:
			return 0, combat.ErrConceded
		case commands.MOVES:
			showMoves(s.out, attacker)
			continue
		case commands.STATUS:
			fmt.Fprintf(s.out, "%s Health: %d\n", attacker.GetName(), attacker.GetHP())
			fmt.Fprintf(s.out, "%s Health: %d\n", s.foe.GetName(), s.foe.GetHP())
			continue
		case commands.HELP:
			fmt.Fprint(s.out, helpText)
			continue
		}
		idx, err := commands.ResolveMove(pc, moveList(attacker))
		if err != nil {
			fmt.Fprintf(s.out, "Invalid move. Try again.\n")
			continue
		}
		return idx, nil
	}
}

func moveList(c combat.Combatant) []chara.Move {
	ml := make([]chara.Move, c.MoveCount())
	for i := range ml {
		ml[i] = c.MoveAt(i)
	}
	return ml
}

func showMoves(out io.Writer, c combat.Combatant) {
	fmt.Fprintf(out, "\n%s's moves:\n", c.GetName())
	for i := 0; i < c.MoveCount(); i++ {
		mv := c.MoveAt(i)
		fmt.Fprintf(out, "%d. Move: %s (Cooldown: %d)\n", i+1, mv.Name, c.CooldownAt(i))
	}
}

// selectCharacters runs the roster menu: the player picks by number, and
// the computer gets a uniform pick from the characters that are left.
func selectCharacters(in *bufio.Scanner, out io.Writer, r *chara.Roster, rng *rand.Rand) (*chara.Fighter, *chara.Fighter, error) {
	fmt.Fprintln(out, "Available characters:")
	for i, c := range r.Characters {
		fmt.Fprintf(out, "%d. %s (Health: %d) (Defense: %d)\n", i+1, c.Name, c.Health, c.Defense)
	}

	choice := -1
	for choice < 0 {
		fmt.Fprintf(out, "Choose your character (1-%d): ", len(r.Characters))
		if !in.Scan() {
			return nil, nil, io.EOF
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
			continue
		}
		if n < 1 || n > len(r.Characters) {
			fmt.Fprintln(out, "Invalid choice. Please select a valid number.")
			continue
		}
		choice = n - 1
	}

	rest := []chara.Character{}
	for i, c := range r.Characters {
		if i != choice {
			rest = append(rest, c)
		}
	}
	player := chara.NewFighter(r.Characters[choice])
	cpu := chara.NewFighter(rest[rng.Intn(len(rest))])
	fmt.Fprintf(out, "You chose %s. CPU chose %s.\n", player.GetName(), cpu.GetName())
	return player, cpu, nil
}

func main() {
	var file string
	flag.StringVar(&file, "f", chara.DefaultRosterFile, "path to the character JSON file")
	flag.StringVar(&file, "file", chara.DefaultRosterFile, "path to the character JSON file")
	flag.Parse()

	roster, err := chara.LoadRoster(file)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "Welcome to Pit Fight. Type 'help' at the move prompt for commands.")
	player, cpu, err := selectCharacters(in, out, roster, rng)
	if err != nil {
		log.Fatal(err)
	}

	b := combat.NewBattle(player, cpu, out)
	playerSel := &consoleSelector{in: in, out: out, foe: cpu}
	cpuSel := &combat.RandomSelector{Rand: rng}

	winner, err := b.Run(playerSel, cpuSel)
	if err != nil {
		if errors.Is(err, combat.ErrConceded) {
			fmt.Fprintln(out, "You concede the fight. CPU wins.")
			return
		}
		log.Fatal(err)
	}

	if winner == combat.Combatant(player) {
		fmt.Fprintln(out, "You won! CPU is defeated.")
	} else {
		fmt.Fprintln(out, "You lost! CPU wins.")
	}
}
