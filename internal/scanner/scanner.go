// Package scanner implements a hand-written lexer for Go source text,
// including Go's automatic semicolon insertion rule (spec §4.2). A Scanner
// is constructed over a single (filename, buffer) pair and consumed by
// repeatedly calling Scan until it yields an EOF triple or an error.
package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/saibing/gors/internal/token"
)

const eof = -1

// Triple is one lexical item: its source position, its token kind, and its
// lexeme (the exact slice of source text that produced it).
type Triple struct {
	Pos token.Position
	Tok token.Token
	Lit string
}

// Scanner lexes a single source buffer. It is not safe for concurrent use,
// but independent Scanner instances over independent buffers share no state
// (spec §5).
type Scanner struct {
	directory string
	file      string
	src       []byte

	offset   int  // byte offset of ch
	rdOffset int  // byte offset after ch
	ch       rune // current character, eof at end of input
	line     int
	column   int

	insertSemi bool // true if the last token could end a statement
}

// New constructs a Scanner over buffer, named filename. Iteration is
// single-pass; to rescan, construct a new Scanner over the same buffer
// (spec §9, "Iterator restart").
func New(filename string, buffer []byte) *Scanner {
	directory, file := token.SplitFilename(filename)
	s := &Scanner{
		directory: directory,
		file:      file,
		src:       buffer,
		line:      1,
		column:    0,
	}
	s.advance()
	return s
}

// advance reads the next code point into s.ch, advancing offset/line/column.
func (s *Scanner) advance() {
	if s.rdOffset >= len(s.src) {
		s.offset = len(s.src)
		s.ch = eof
		return
	}
	s.offset = s.rdOffset
	r, w := rune(s.src[s.rdOffset]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.rdOffset:])
	}
	s.rdOffset += w
	if s.ch == '\n' {
		s.line++
		s.column = 0
	}
	s.column++
	s.ch = r
}

func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

func (s *Scanner) pos() token.Position {
	return token.Position{
		Directory: s.directory,
		File:      s.file,
		Line:      s.line,
		Column:    s.column,
		Offset:    s.offset,
	}
}

// Scan returns the next lexical triple. After the final EOF triple, further
// calls keep returning EOF with no error. On failure it returns a non-nil
// error of type *IllegalToken, *UnterminatedLiteral, or *InvalidEscape and
// the caller must stop scanning (spec §4.2, §7: no recovery).
func (s *Scanner) Scan() (Triple, error) {
	for {
		switch s.ch {
		case ' ', '\t', '\r':
			s.advance()
			continue
		case '\n':
			if s.insertSemi {
				pos := s.pos()
				s.advance()
				return s.emit(pos, token.SEMICOLON, "\n", false), nil
			}
			s.advance()
			continue
		}
		break
	}
	if s.ch == eof && s.insertSemi {
		pos := s.pos()
		return s.emit(pos, token.SEMICOLON, "", false), nil
	}

	pos := s.pos()
	insertSemi := false

	switch ch := s.ch; {
	case isLetter(ch):
		lit := s.scanIdentifier()
		tok := token.Lookup(lit)
		switch tok {
		case token.IDENT, token.BREAK, token.CONTINUE, token.FALLTHROUGH, token.RETURN:
			insertSemi = true
		}
		return s.emit(pos, tok, lit, insertSemi), nil
	case isDigit(ch):
		tok, lit, err := s.scanNumber()
		if err != nil {
			return Triple{}, err
		}
		return s.emit(pos, tok, lit, true), nil
	}

	switch ch := s.ch; ch {
	case eof:
		return s.emit(pos, token.EOF, "", false), nil
	case '"':
		lit, err := s.scanString()
		if err != nil {
			return Triple{}, err
		}
		return s.emit(pos, token.STRING, lit, true), nil
	case '`':
		lit, err := s.scanRawString()
		if err != nil {
			return Triple{}, err
		}
		return s.emit(pos, token.STRING, lit, true), nil
	case '\'':
		lit, err := s.scanRune()
		if err != nil {
			return Triple{}, err
		}
		return s.emit(pos, token.CHAR, lit, true), nil
	case '.':
		if isDigit(rune(s.peek())) {
			tok, lit, err := s.scanNumber()
			if err != nil {
				return Triple{}, err
			}
			return s.emit(pos, tok, lit, true), nil
		}
		s.advance()
		if s.ch == '.' && s.peek() == '.' {
			s.advance()
			s.advance()
			return s.emit(pos, token.ELLIPSIS, "...", false), nil
		}
		return s.emit(pos, token.PERIOD, ".", false), nil
	case ',':
		s.advance()
		return s.emit(pos, token.COMMA, ",", false), nil
	case ';':
		s.advance()
		return s.emit(pos, token.SEMICOLON, ";", false), nil
	case ':':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.DEFINE, ":=", false), nil
		}
		return s.emit(pos, token.COLON, ":", false), nil
	case '(':
		s.advance()
		return s.emit(pos, token.LPAREN, "(", false), nil
	case ')':
		s.advance()
		return s.emit(pos, token.RPAREN, ")", true), nil
	case '[':
		s.advance()
		return s.emit(pos, token.LBRACK, "[", false), nil
	case ']':
		s.advance()
		return s.emit(pos, token.RBRACK, "]", true), nil
	case '{':
		s.advance()
		return s.emit(pos, token.LBRACE, "{", false), nil
	case '}':
		s.advance()
		return s.emit(pos, token.RBRACE, "}", true), nil
	case '+':
		s.advance()
		switch s.ch {
		case '+':
			s.advance()
			return s.emit(pos, token.INC, "++", true), nil
		case '=':
			s.advance()
			return s.emit(pos, token.ADD_ASSIGN, "+=", false), nil
		}
		return s.emit(pos, token.ADD, "+", false), nil
	case '-':
		s.advance()
		switch s.ch {
		case '-':
			s.advance()
			return s.emit(pos, token.DEC, "--", true), nil
		case '=':
			s.advance()
			return s.emit(pos, token.SUB_ASSIGN, "-=", false), nil
		}
		return s.emit(pos, token.SUB, "-", false), nil
	case '*':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.MUL_ASSIGN, "*=", false), nil
		}
		return s.emit(pos, token.MUL, "*", false), nil
	case '/':
		if s.peek() == '/' || s.peek() == '*' {
			// A block comment that contains a newline acts like a bare
			// newline for ASI purposes (spec §4.2): if a semicolon is
			// pending, it fires here, at the comment's start, and the
			// comment itself is scanned on the following call. Any other
			// comment, including a line comment, passes through
			// transparently, leaving insertSemi untouched; a line comment's
			// terminating newline then triggers the pending semicolon.
			if s.insertSemi && s.peek() == '*' && s.commentImpliesNewline() {
				return s.emit(pos, token.SEMICOLON, "\n", false), nil
			}
			lit, _, err := s.scanComment()
			if err != nil {
				return Triple{}, err
			}
			return Triple{Pos: pos, Tok: token.COMMENT, Lit: lit}, nil
		}
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.QUO_ASSIGN, "/=", false), nil
		}
		return s.emit(pos, token.QUO, "/", false), nil
	case '%':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.REM_ASSIGN, "%=", false), nil
		}
		return s.emit(pos, token.REM, "%", false), nil
	case '^':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.XOR_ASSIGN, "^=", false), nil
		}
		return s.emit(pos, token.XOR, "^", false), nil
	case '<':
		s.advance()
		switch s.ch {
		case '-':
			s.advance()
			return s.emit(pos, token.ARROW, "<-", false), nil
		case '=':
			s.advance()
			return s.emit(pos, token.LEQ, "<=", false), nil
		case '<':
			s.advance()
			if s.ch == '=' {
				s.advance()
				return s.emit(pos, token.SHL_ASSIGN, "<<=", false), nil
			}
			return s.emit(pos, token.SHL, "<<", false), nil
		}
		return s.emit(pos, token.LSS, "<", false), nil
	case '>':
		s.advance()
		switch s.ch {
		case '=':
			s.advance()
			return s.emit(pos, token.GEQ, ">=", false), nil
		case '>':
			s.advance()
			if s.ch == '=' {
				s.advance()
				return s.emit(pos, token.SHR_ASSIGN, ">>=", false), nil
			}
			return s.emit(pos, token.SHR, ">>", false), nil
		}
		return s.emit(pos, token.GTR, ">", false), nil
	case '=':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.EQL, "==", false), nil
		}
		return s.emit(pos, token.ASSIGN, "=", false), nil
	case '!':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return s.emit(pos, token.NEQ, "!=", false), nil
		}
		return s.emit(pos, token.NOT, "!", false), nil
	case '&':
		s.advance()
		switch s.ch {
		case '&':
			s.advance()
			return s.emit(pos, token.LAND, "&&", false), nil
		case '=':
			s.advance()
			return s.emit(pos, token.AND_ASSIGN, "&=", false), nil
		case '^':
			s.advance()
			if s.ch == '=' {
				s.advance()
				return s.emit(pos, token.AND_NOT_ASSIGN, "&^=", false), nil
			}
			return s.emit(pos, token.AND_NOT, "&^", false), nil
		}
		return s.emit(pos, token.AND, "&", false), nil
	case '|':
		s.advance()
		switch s.ch {
		case '|':
			s.advance()
			return s.emit(pos, token.LOR, "||", false), nil
		case '=':
			s.advance()
			return s.emit(pos, token.OR_ASSIGN, "|=", false), nil
		}
		return s.emit(pos, token.OR, "|", false), nil
	}

	illegal := s.ch
	s.advance()
	return Triple{}, &IllegalToken{At: pos, Char: illegal}
}

// emit finalizes a triple and updates the ASI flag for the *next* newline.
func (s *Scanner) emit(pos token.Position, tok token.Token, lit string, insertSemi bool) Triple {
	s.insertSemi = insertSemi
	return Triple{Pos: pos, Tok: tok, Lit: lit}
}

// commentImpliesNewline is a read-only lookahead (spec §4.2): called with
// s.ch == '/' and the next byte either '/' or '*', it reports whether the
// comment about to be scanned contains (or, for a line comment, is
// necessarily followed by) a newline, without consuming any input.
func (s *Scanner) commentImpliesNewline() bool {
	if s.peek() == '/' {
		return true
	}
	i := s.rdOffset + 1 // skip over '/' and '*'
	for i < len(s.src) {
		if s.src[i] == '\n' {
			return true
		}
		if s.src[i] == '*' && i+1 < len(s.src) && s.src[i+1] == '/' {
			return false
		}
		i++
	}
	return false
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || (ch >= utf8.RuneSelf && unicode.IsDigit(ch))
}

func (s *Scanner) scanIdentifier() string {
	start := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.advance()
	}
	return string(s.src[start:s.offset])
}
