package token

import (
	"errors"
	"testing"
)

func TestTokenizeOK(t *testing.T) {
	type tok struct {
		t TokenType
		s string
	}
	tests := []struct {
		name string
		in   string
		want []tok
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\r\n", nil},
		{"integer", "42", []tok{{TInteger, "42"}}},
		{"identifier", "velocity", []tok{{TIdent, "velocity"}}},
		{"operators", "+-*/^()", []tok{
			{TPlus, "+"}, {TMinus, "-"}, {TStar, "*"}, {TSlash, "/"},
			{TCaret, "^"}, {TLParen, "("}, {TRParen, ")"},
		}},
		{"formula", "3*x + 1", []tok{
			{TInteger, "3"}, {TStar, "*"}, {TIdent, "x"},
			{TPlus, "+"}, {TInteger, "1"},
		}},
		{"no whitespace needed", "2x", []tok{{TInteger, "2"}, {TIdent, "x"}}},
		{"digits continue identifiers", "x2", []tok{{TIdent, "x2"}}},
		{"unicode identifier", "αβ*2", []tok{{TIdent, "αβ"}, {TStar, "*"}, {TInteger, "2"}}},
		{"identifier normalizes to NFC", "écart", []tok{{TIdent, "écart"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatalf("Tokenize() error: %v", err)
			}
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(tt.want))
			}
			for i := range toks {
				if toks[i].Type != tt.want[i].t || toks[i].String() != tt.want[i].s {
					t.Errorf("token %d: got %s %q, want %s %q",
						i, toks[i].Type, toks[i].String(), tt.want[i].t, tt.want[i].s)
				}
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"stray symbol", []byte("x $ y"), ErrToken},
		{"stray punctuation", []byte("a,b"), ErrToken},
		{"invalid utf8", []byte{'x', 0xff}, ErrEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(nil, tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Tokenize() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	src := []byte("x + 1\n  * y")
	toks, err := Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	wantLC := [][2]int{
		{0, 0}, // x
		{0, 2}, // +
		{0, 4}, // 1
		{1, 2}, // *
		{1, 4}, // y
	}
	if len(toks) != len(wantLC) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantLC))
	}
	for i, want := range wantLC {
		line, col := toks[i].Pos.LineCol()
		if line != want[0] || col != want[1] {
			t.Errorf("token %d %q: line, col = %d, %d, want %d, %d",
				i, toks[i].String(), line, col, want[0], want[1])
		}
	}
}

// Info is the form debug traces print: token type plus position context.
func TestTokenInfo(t *testing.T) {
	toks, err := Tokenize(nil, []byte("x + 1"))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		i    int
		want string
	}{
		{0, "TIdent `...x + 1...` at offset 0 (line=0, col=0)"},
		{1, "TPlus `...x + 1...` at offset 2 (line=0, col=2)"},
		{2, "TInteger `...x + 1...` at offset 4 (line=0, col=4)"},
	}
	for _, tt := range tests {
		if got := toks[tt.i].Info(); got != tt.want {
			t.Errorf("token %d Info() = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestTokenizeAppends(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	toks, err = Tokenize(toks, []byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].String() != "a" || toks[1].String() != "b" {
		t.Errorf("appending tokenize runs: got %v", toks)
	}
}
