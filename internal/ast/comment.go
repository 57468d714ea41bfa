package ast

import "github.com/saibing/gors/internal/token"

// Comment is a single line (`// ...`) or general (`/* ... */`) comment, its
// text including the delimiters.
type Comment struct {
	Slash token.Position
	Text  string
}

func (c *Comment) Pos() token.Position { return c.Slash }
func (c *Comment) End() token.Position {
	end := c.Slash
	end.Offset += len(c.Text)
	return end
}

// CommentGroup is a sequence of comments with no other tokens and no empty
// lines between them.
type CommentGroup struct {
	List []*Comment
}

func (g *CommentGroup) Pos() token.Position { return g.List[0].Pos() }
func (g *CommentGroup) End() token.Position { return g.List[len(g.List)-1].End() }

// Text returns the comment text with the comment markers removed (and, for
// a "//" comment, one space following the marker), each comment followed by
// a newline. Other whitespace and directive lines are kept as they are.
// internal/docprint feeds this text to the Markdown renderer.
func (g *CommentGroup) Text() string {
	if g == nil {
		return ""
	}
	var out []byte
	for _, c := range g.List {
		text := c.Text
		switch {
		case len(text) >= 2 && text[:2] == "//":
			text = text[2:]
			if len(text) > 0 && text[0] == ' ' {
				text = text[1:]
			}
		case len(text) >= 4:
			text = text[2 : len(text)-2]
		}
		out = append(out, []byte(text)...)
		out = append(out, '\n')
	}
	return string(out)
}
