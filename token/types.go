package token

import "fmt"

type TokenType int

const (
	TInteger TokenType = iota
	TIdent
	TPlus
	TMinus
	TStar
	TSlash
	TCaret
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TInteger: "TInteger",
		TIdent:   "TIdent",
		TPlus:    "TPlus",
		TMinus:   "TMinus",
		TStar:    "TStar",
		TSlash:   "TSlash",
		TCaret:   "TCaret",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
