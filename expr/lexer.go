package expr

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokInvalid
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	pos := l.i
	op := func(k tokenKind) token {
		l.i++
		return token{kind: k, text: l.s[pos:l.i], pos: pos}
	}
	switch l.s[l.i] {
	case '+':
		return op(tokPlus)
	case '-':
		return op(tokMinus)
	case '*':
		return op(tokStar)
	case '/':
		return op(tokSlash)
	case '%':
		return op(tokPercent)
	case '^':
		return op(tokCaret)
	case '(', '[':
		return op(tokLParen)
	case ')', ']':
		return op(tokRParen)
	case ',':
		return op(tokComma)
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		l.i++
		for l.i < len(l.s) && isIdentContinue(rune(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[pos:l.i], pos: pos}
	}
	if ch == '.' || unicode.IsDigit(ch) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[pos:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil || l.i == pos {
			if l.i == pos {
				l.i++
				txt = l.s[pos:l.i]
			}
			return token{kind: tokInvalid, text: txt, pos: pos}
		}
		return token{kind: tokNumber, text: txt, num: f, pos: pos}
	}

	l.i++
	return token{kind: tokInvalid, text: string(ch), pos: pos}
}

// scanNumber returns the end of the numeric literal starting at i. An exponent is only consumed
// when digits follow it, so "2e" lexes as 2 followed by the identifier e.
func scanNumber(s string, i int) int {
	start := i
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' && s[start] != '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	if i == start+1 && s[start] == '.' {
		return start
	}
	return i
}

// Identifiers are ASCII; the lexer walks bytes.
func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
