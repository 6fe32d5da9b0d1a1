package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lpbeast/pitfight/chara"
)

type ParsedCommand struct {
	Command   Token
	Arguments []Token
}

func ParseCommand(in string) (*ParsedCommand, error) {
	words := strings.Fields(strings.ToLower(in))
	if len(words) == 0 {
		return nil, errors.New("empty command")
	}
	newCmd := lookupCommand(words[0])
	newArgs := []Token{}
	for _, v := range words[1:] {
		newArgs = append(newArgs, lookupIdent(v))
	}
	return &ParsedCommand{newCmd, newArgs}, nil
}

// ErrNotAMove means the command parsed fine but doesn't select a move, so
// the prompt loop should handle it some other way (moves, status, help).
var ErrNotAMove = errors.New("not a move selection")

// ResolveMove turns a parsed prompt command into an index into the given
// move list. A bare number is shorthand for "use <n>"; "use" also takes a
// move name or name prefix, possibly in several words.
func ResolveMove(pc *ParsedCommand, moves []chara.Move) (int, error) {
	switch pc.Command.Type {
	case NUMBER:
		return moveIndex(pc.Command.Literal, len(moves))
	case USE:
		if len(pc.Arguments) == 0 {
			return 0, errors.New("use which move?")
		}
		if pc.Arguments[0].Type == NUMBER {
			return moveIndex(pc.Arguments[0].Literal, len(moves))
		}
		words := []string{}
		for _, a := range pc.Arguments {
			words = append(words, a.Literal)
		}
		return chara.AutoCompleteMoves(strings.Join(words, " "), moves)
	default:
		return 0, ErrNotAMove
	}
}

func moveIndex(lit string, count int) (int, error) {
	n, err := strconv.Atoi(lit)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("no move numbered %d", n)
	}
	return n - 1, nil
}
