package python

import (
	"unicode"
	"unicode/utf8"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isBin(b byte) bool { return b == '0' || b == '1' }

// peekRune decodes the rune under the cursor.
func (c *cursor) peekRune() (rune, int) {
	if c.eof() {
		return utf8.RuneError, 0
	}

	if b := c.src[c.off]; b < utf8.RuneSelf {
		return rune(b), 1
	}

	return utf8.DecodeRuneInString(c.src[c.off:])
}

// isStringPrefix reports whether s (case-insensitive) may precede a quote.
func isStringPrefix(s string) bool {
	switch len(s) {
	case 1:
		switch s[0] | 0x20 {
		case 'r', 'u', 'b', 'f':
			return true
		}
	case 2:
		a, b := s[0]|0x20, s[1]|0x20
		if a > b {
			a, b = b, a
		}

		return (a == 'b' && b == 'r') || (a == 'f' && b == 'r')
	}

	return false
}
