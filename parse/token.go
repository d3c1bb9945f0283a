// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parse

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies the syntax-type of a token.
type TokenKind int

const (
	EOF TokenKind = iota
	Ident
	CapIdent
	Lambda
	Dot
	Let
	In
	Equals
	LParen
	RParen
	Arrow
	Forall
)

var tokenNames = [...]string{
	EOF:      "end of input",
	Ident:    "identifier",
	CapIdent: "type constructor",
	Lambda:   "'lambda'",
	Dot:      "'.'",
	Let:      "'let'",
	In:       "'in'",
	Equals:   "'='",
	LParen:   "'('",
	RParen:   "')'",
	Arrow:    "'->'",
	Forall:   "'forall'",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

var keywords = map[string]TokenKind{
	"lambda": Lambda,
	"let":    Let,
	"in":     In,
	"forall": Forall,
	"to":     Arrow,
}

// Token is a lexical token with its byte offset in the source text.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, CapIdent:
		return t.Kind.String() + " '" + t.Text + "'"
	}
	return t.Kind.String()
}

// Tokenize splits src into tokens. The final token is always EOF.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		start := i
		switch {
		case unicode.IsSpace(r):
			i += size
			continue
		case r == '.':
			tokens = append(tokens, Token{Dot, ".", start})
		case r == 'λ' || r == '\\':
			tokens = append(tokens, Token{Lambda, string(r), start})
		case r == '∀':
			tokens = append(tokens, Token{Forall, string(r), start})
		case r == '→':
			tokens = append(tokens, Token{Arrow, string(r), start})
		case r == '=':
			tokens = append(tokens, Token{Equals, "=", start})
		case r == '(':
			tokens = append(tokens, Token{LParen, "(", start})
		case r == ')':
			tokens = append(tokens, Token{RParen, ")", start})
		case r == '-' && i+1 < len(src) && src[i+1] == '>':
			tokens = append(tokens, Token{Arrow, "->", start})
			size = 2
		case isIdentStart(r):
			for i += size; i < len(src); i += size {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !isIdentPart(r) {
					break
				}
			}
			text := src[start:i]
			kind, ok := keywords[text]
			if !ok {
				kind = Ident
				if first, _ := utf8.DecodeRuneInString(text); unicode.IsUpper(first) {
					kind = CapIdent
				}
			}
			tokens = append(tokens, Token{kind, text, start})
			continue
		default:
			return tokens, &Error{Kind: InvalidCharacter, Offset: start, Found: string(r)}
		}
		i += size
	}
	return append(tokens, Token{Kind: EOF, Offset: len(src)}), nil
}

func isIdentStart(r rune) bool { return r == '_' || (r != 'λ' && unicode.IsLetter(r)) }

func isIdentPart(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsDigit(r) || (r != 'λ' && unicode.IsLetter(r))
}
