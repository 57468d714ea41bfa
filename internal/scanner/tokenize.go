package scanner

import "github.com/saibing/gors/internal/token"

// Tokenize drains a Scanner fully, stopping at the first error or after the
// terminal EOF triple (inclusive). It is the convenience entry point used by
// the `tokens` CLI subcommand and by internal/rpcserve's tokenize method.
func Tokenize(filename string, buffer []byte) ([]Triple, error) {
	s := New(filename, buffer)
	var out []Triple
	for {
		t, err := s.Scan()
		if err != nil {
			return out, err
		}
		out = append(out, t)
		if t.Tok == token.EOF {
			return out, nil
		}
	}
}
