package commands

import (
	"strings"
)

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
}

const (
	ILLEGAL = "ILLEGAL"
	NOOP    = "NOOP"
	QUIT    = "QUIT"

	IDENT  = "IDENT"
	NUMBER = "NUMBER"

	USE    = "USE"
	MOVES  = "MOVES"
	STATUS = "STATUS"
	HELP   = "HELP"
)

var keywords = map[string]TokenType{
	"quit": QUIT,

	"use": USE,
	"u":   USE,

	"moves":  MOVES,
	"m":      MOVES,
	"status": STATUS,
	"st":     STATUS,
	"help":   HELP,
	"h":      HELP,
	"?":      HELP,
}

var keywordsList = []string{
	"quit",
	"use",
	"moves",
	"status",
	"help",
}

func lookupCommand(ident string) Token {
	if isNumber(ident) {
		return Token{NUMBER, ident}
	}
	if tok, ok := keywords[ident]; ok {
		return Token{tok, ident}
	} else {
		newIdent := AutoComplete(ident, keywordsList)
		if tok, ok := keywords[newIdent]; ok {
			return Token{tok, ident}
		}
	}
	return Token{ILLEGAL, ident}
}

func lookupIdent(ident string) Token {
	if isNumber(ident) {
		return Token{NUMBER, ident}
	}
	return Token{IDENT, ident}
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func AutoComplete(stub string, words []string) string {
	for _, s := range words {
		if strings.HasPrefix(s, stub) {
			return s
		}
	}
	return stub
}
