// Package docprint renders the normalized text of a CommentGroup to
// Markdown, the way the teacher's hover handler rendered godoc comments
// for display.
package docprint

import (
	"bytes"

	doc "github.com/slimsag/godocmd"

	"github.com/saibing/gors/internal/ast"
)

// ToMarkdown renders group's comment text as Markdown. It returns "" for a
// nil or empty group.
func ToMarkdown(group *ast.CommentGroup) string {
	text := group.Text()
	if text == "" {
		return ""
	}
	var b bytes.Buffer
	doc.ToMarkdown(&b, text, nil)
	return b.String()
}

// FuncDoc renders a function declaration's doc comment as Markdown, or
// returns "" when the declaration has no doc comment. The result holds the
// comment text only; the function's name is not added to it.
func FuncDoc(decl *ast.FuncDecl) string {
	if decl.Doc == nil {
		return ""
	}
	return ToMarkdown(decl.Doc)
}
