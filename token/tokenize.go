// Package token tokenizes formula source text.
//
// The token set is small: ASCII operator symbols (+ - * / ^), ASCII
// parentheses, unsigned decimal integer runs, and Unicode-letter
// identifiers. Whitespace separates tokens and is otherwise ignored.
// Identifiers are normalized to NFC so visually identical spellings name
// the same variable.
package token

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Norm is the form to which identifier runes are normalized.
const Norm = norm.NFC

var (
	ErrToken    = errors.New("token error")
	ErrEncoding = errors.New("invalid encoding")
)

// Tokenize appends the tokens of src to dst. It fails on the first byte
// that starts no token.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch {
		case c == '\n':
			posDoc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < n && asciiDigit(src[j]) {
				j++
			}
			dst = append(dst, Token{Type: TInteger, Bytes: src[i:j], Pos: posDoc.Pos(i)})
			i = j
		default:
			if t, ok := opToken(c); ok {
				dst = append(dst, Token{Type: t, Bytes: src[i : i+1], Pos: posDoc.Pos(i)})
				i++
				continue
			}
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size == 1 {
				return nil, fmt.Errorf("%w %s", ErrEncoding, posDoc.Pos(i))
			}
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("%w: unexpected character %q %s", ErrToken, r, posDoc.Pos(i))
			}
			j := i + size
			for j < n {
				r, size := utf8.DecodeRune(src[j:])
				if r == utf8.RuneError && size == 1 {
					return nil, fmt.Errorf("%w %s", ErrEncoding, posDoc.Pos(j))
				}
				if !identRune(r) {
					break
				}
				j += size
			}
			dst = append(dst, Token{Type: TIdent, Bytes: Norm.Bytes(src[i:j]), Pos: posDoc.Pos(i)})
			i = j
		}
	}
	return dst, nil
}

func opToken(c byte) (TokenType, bool) {
	switch c {
	case '+':
		return TPlus, true
	case '-':
		return TMinus, true
	case '*':
		return TStar, true
	case '/':
		return TSlash, true
	case '^':
		return TCaret, true
	case '(':
		return TLParen, true
	case ')':
		return TRParen, true
	}
	return 0, false
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// identRune reports whether r may continue an identifier. Starts are
// restricted to letters by the caller; digits and combining marks may
// follow.
func identRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
