package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/token"
)

func tokenize(t *testing.T, src string) []Triple {
	t.Helper()
	triples, err := Tokenize("test.go", []byte(src))
	require.NoError(t, err)
	return triples
}

func TestScanPackageClause(t *testing.T) {
	triples := tokenize(t, "package main\n")
	require.Len(t, triples, 4)

	require.Equal(t, token.PACKAGE, triples[0].Tok)
	require.Equal(t, "package", triples[0].Lit)
	require.Equal(t, 1, triples[0].Pos.Line)
	require.Equal(t, 1, triples[0].Pos.Column)

	require.Equal(t, token.IDENT, triples[1].Tok)
	require.Equal(t, "main", triples[1].Lit)
	require.Equal(t, 9, triples[1].Pos.Column)

	require.Equal(t, token.SEMICOLON, triples[2].Tok)
	require.Equal(t, "\n", triples[2].Lit)

	require.Equal(t, token.EOF, triples[3].Tok)
}

func TestAsiAfterIdentLiteralsAndKeywords(t *testing.T) {
	triples := tokenize(t, "a\n1\n1.0\n\"s\"\n)\n]\n}\n++\n--\nbreak\ncontinue\nfallthrough\nreturn\n")
	var semis int
	for _, tr := range triples {
		if tr.Tok == token.SEMICOLON {
			semis++
			require.Equal(t, "\n", tr.Lit)
		}
	}
	require.Equal(t, 13, semis)
}

func TestAsiNotTriggeredAfterOperator(t *testing.T) {
	triples := tokenize(t, "a +\nb\n")
	// a, +, b: the newline after "+" must not insert a semicolon (the one
	// after "b" is expected and follows these three).
	for _, tr := range triples[:3] {
		require.NotEqual(t, token.SEMICOLON, tr.Tok, "no semicolon expected before the plus's right operand")
	}
}

func TestAsiAtEOF(t *testing.T) {
	triples := tokenize(t, "package p")
	last := triples[len(triples)-2]
	require.Equal(t, token.SEMICOLON, last.Tok)
	require.Equal(t, "", last.Lit)
	require.Equal(t, token.EOF, triples[len(triples)-1].Tok)
}

func TestCommentsPassThroughAsi(t *testing.T) {
	triples := tokenize(t, "a // comment\n= 1\n")
	require.Equal(t, token.IDENT, triples[0].Tok)
	require.Equal(t, token.COMMENT, triples[1].Tok)
	require.Equal(t, token.SEMICOLON, triples[2].Tok)
}

func TestBlockCommentWithNewlineActsLikeNewline(t *testing.T) {
	triples := tokenize(t, "a /* multi\nline */ b\n")
	require.Equal(t, token.IDENT, triples[0].Tok)
	require.Equal(t, token.SEMICOLON, triples[1].Tok)
	require.Equal(t, token.COMMENT, triples[2].Tok)
	require.Equal(t, token.IDENT, triples[3].Tok)
}

func TestBlockCommentWithoutNewlineIsTransparent(t *testing.T) {
	triples := tokenize(t, "a /* x */ + b\n")
	require.Equal(t, token.IDENT, triples[0].Tok)
	require.Equal(t, token.COMMENT, triples[1].Tok)
	require.Equal(t, token.ADD, triples[2].Tok)
}

func TestStringCharAndNumberLiterals(t *testing.T) {
	triples := tokenize(t, `"fmt" 'a' 0x1F 0b101 0o17 1_000 1.5e3 2i`+"\n")
	kinds := []token.Token{token.STRING, token.CHAR, token.INT, token.INT, token.INT, token.INT, token.FLOAT, token.IMAG}
	for i, k := range kinds {
		require.Equal(t, k, triples[i].Tok, "index %d", i)
	}
}

func TestRawString(t *testing.T) {
	triples := tokenize(t, "`a\nb`\n")
	require.Equal(t, token.STRING, triples[0].Tok)
	require.Equal(t, "`a\nb`", triples[0].Lit)
}

func TestIllegalToken(t *testing.T) {
	_, err := Tokenize("test.go", []byte("a $ b\n"))
	require.Error(t, err)
	var illegal *IllegalToken
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, '$', illegal.Char)
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize("test.go", []byte(`"abc`))
	require.Error(t, err)
	var unterminated *UnterminatedLiteral
	require.ErrorAs(t, err, &unterminated)
	require.Equal(t, "string", unterminated.Kind)
}

func TestDeterminism(t *testing.T) {
	src := "package p\nfunc f() int { return 1 + 2*3 }\n"
	a := tokenize(t, src)
	b := tokenize(t, src)
	require.Equal(t, a, b)
}
