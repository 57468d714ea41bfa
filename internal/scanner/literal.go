package scanner

import (
	"github.com/saibing/gors/internal/token"
)

// scanNumber scans an integer, float, or imaginary literal starting at the
// current character (spec §4.2): decimal/hex/octal/binary integers,
// underscore digit separators, dot-leading/trailing fractions, exponents
// ("e"/"E"/"p"/"P"), and a trailing "i" for imaginary literals.
func (s *Scanner) scanNumber() (token.Token, string, error) {
	start := s.offset
	tok := token.INT

	if s.ch == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		s.advance()
		s.scanDigits(isHexDigit)
		if s.ch == '.' {
			tok = token.FLOAT
			s.advance()
			s.scanDigits(isHexDigit)
		}
		if s.ch == 'p' || s.ch == 'P' {
			tok = token.FLOAT
			s.scanExponent('p', 'P')
		}
	} else if s.ch == '0' && (s.peek() == 'o' || s.peek() == 'O') {
		s.advance()
		s.advance()
		s.scanDigits(isOctalDigit)
	} else if s.ch == '0' && (s.peek() == 'b' || s.peek() == 'B') {
		s.advance()
		s.advance()
		s.scanDigits(isBinaryDigit)
	} else {
		s.scanDigits(isDecimalDigit)
		if s.ch == '.' {
			tok = token.FLOAT
			s.advance()
			s.scanDigits(isDecimalDigit)
		}
		if s.ch == 'e' || s.ch == 'E' {
			tok = token.FLOAT
			s.scanExponent('e', 'E')
		}
	}

	if s.ch == 'i' {
		tok = token.IMAG
		s.advance()
	}

	return tok, string(s.src[start:s.offset]), nil
}

func (s *Scanner) scanExponent(lower, upper rune) {
	if s.ch == lower || s.ch == upper {
		s.advance()
		if s.ch == '+' || s.ch == '-' {
			s.advance()
		}
		s.scanDigits(isDecimalDigit)
	}
}

func (s *Scanner) scanDigits(valid func(rune) bool) {
	for valid(s.ch) || s.ch == '_' {
		s.advance()
	}
}

func isDecimalDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
func isHexDigit(ch rune) bool {
	return isDecimalDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
func isOctalDigit(ch rune) bool  { return '0' <= ch && ch <= '7' }
func isBinaryDigit(ch rune) bool { return ch == '0' || ch == '1' }

// scanString scans a `"…"` interpreted string literal, including escape
// sequences. The returned lexeme includes the surrounding quotes.
func (s *Scanner) scanString() (string, error) {
	start := s.offset
	startPos := s.pos()
	s.advance() // opening quote
	for {
		if s.ch == eof || s.ch == '\n' {
			return "", &UnterminatedLiteral{At: startPos, Kind: "string"}
		}
		if s.ch == '"' {
			s.advance()
			break
		}
		if s.ch == '\\' {
			if err := s.scanEscape('"'); err != nil {
				return "", err
			}
			continue
		}
		s.advance()
	}
	return string(s.src[start:s.offset]), nil
}

// scanRawString scans a `` `…` `` raw string literal: no escapes, newlines
// preserved.
func (s *Scanner) scanRawString() (string, error) {
	start := s.offset
	startPos := s.pos()
	s.advance() // opening backtick
	for {
		if s.ch == eof {
			return "", &UnterminatedLiteral{At: startPos, Kind: "raw string"}
		}
		if s.ch == '`' {
			s.advance()
			break
		}
		s.advance()
	}
	return string(s.src[start:s.offset]), nil
}

// scanRune scans a `'…'` rune literal.
func (s *Scanner) scanRune() (string, error) {
	start := s.offset
	startPos := s.pos()
	s.advance() // opening quote
	if s.ch == '\\' {
		if err := s.scanEscape('\''); err != nil {
			return "", err
		}
	} else if s.ch != eof && s.ch != '\n' && s.ch != '\'' {
		s.advance()
	}
	if s.ch != '\'' {
		return "", &UnterminatedLiteral{At: startPos, Kind: "rune"}
	}
	s.advance()
	return string(s.src[start:s.offset]), nil
}

// scanEscape consumes a backslash escape sequence: \a \b \f \n \r \t \v \\
// \' \" and octal (\nnn), hex (\xhh), small unicode (\uhhhh), and large
// unicode (\Uhhhhhhhh) numeric escapes.
func (s *Scanner) scanEscape(quote rune) error {
	escPos := s.pos()
	s.advance() // backslash
	switch s.ch {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', quote:
		s.advance()
		return nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		for i := 0; i < 3; i++ {
			if !isOctalDigit(s.ch) {
				return &InvalidEscape{At: escPos, Char: s.ch}
			}
			s.advance()
		}
		return nil
	case 'x':
		s.advance()
		for i := 0; i < 2; i++ {
			if !isHexDigit(s.ch) {
				return &InvalidEscape{At: escPos, Char: s.ch}
			}
			s.advance()
		}
		return nil
	case 'u':
		s.advance()
		for i := 0; i < 4; i++ {
			if !isHexDigit(s.ch) {
				return &InvalidEscape{At: escPos, Char: s.ch}
			}
			s.advance()
		}
		return nil
	case 'U':
		s.advance()
		for i := 0; i < 8; i++ {
			if !isHexDigit(s.ch) {
				return &InvalidEscape{At: escPos, Char: s.ch}
			}
			s.advance()
		}
		return nil
	default:
		return &InvalidEscape{At: escPos, Char: s.ch}
	}
}

// scanComment scans a "// … \n" line comment (the terminating newline is not
// consumed) or a "/* … */" block comment, and reports whether it contained a
// newline (relevant to ASI: spec §4.2).
func (s *Scanner) scanComment() (string, bool, error) {
	start := s.offset
	startPos := s.pos()
	if s.peek() == '/' {
		s.advance()
		s.advance()
		for s.ch != eof && s.ch != '\n' {
			s.advance()
		}
		return string(s.src[start:s.offset]), false, nil
	}

	s.advance()
	s.advance()
	sawNewline := false
	for {
		if s.ch == eof {
			return "", false, &UnterminatedLiteral{At: startPos, Kind: "comment"}
		}
		if s.ch == '\n' {
			sawNewline = true
		}
		if s.ch == '*' && s.peek() == '/' {
			s.advance()
			s.advance()
			break
		}
		s.advance()
	}
	return string(s.src[start:s.offset]), sawNewline, nil
}
