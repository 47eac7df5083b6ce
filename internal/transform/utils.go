package transform

import (
	bbcode "github.com/withastro/bbcode/internal"
	"github.com/withastro/bbcode/internal/loc"
)

func locAt(start int) loc.Loc {
	return loc.Loc{Start: start}
}

func textToken(data string, start int) bbcode.Token {
	return bbcode.Token{Type: bbcode.TextToken, Data: data, Loc: locAt(start)}
}
