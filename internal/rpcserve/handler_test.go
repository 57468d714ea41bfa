package rpcserve

import (
	"context"
	"testing"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/require"

	"github.com/saibing/gors/internal/config"
)

func call(t *testing.T, h *Handler, method string, params interface{}) (interface{}, error) {
	t.Helper()
	req := &jsonrpc2.Request{Method: method}
	if params != nil {
		require.NoError(t, req.SetParams(params))
	}
	return h.handle(context.Background(), nil, req)
}

func TestHandlerRejectsRequestsBeforeInitialize(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	_, err := call(t, h, "tokenize", FileParams{Filename: "x.go", Contents: "package p\n"})
	require.Error(t, err)
}

func TestHandlerInitializeAppliesOptions(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	emit := "lowered"
	res, err := call(t, h, "initialize", InitializeParams{Options: &config.Options{Emit: &emit}})
	require.NoError(t, err)
	require.Equal(t, "lowered", res.(InitializeResult).Config.Emit)
}

func TestHandlerTokenize(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	_, err := call(t, h, "initialize", InitializeParams{})
	require.NoError(t, err)

	res, err := call(t, h, "tokenize", FileParams{Filename: "x.go", Contents: "package p\n"})
	require.NoError(t, err)
	require.Contains(t, res.(TokensResult).Tokens, `"kind":"package"`)
}

func TestHandlerParseLowersWhenConfigured(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	emit := "lowered"
	_, err := call(t, h, "initialize", InitializeParams{Options: &config.Options{Emit: &emit}})
	require.NoError(t, err)

	res, err := call(t, h, "parse", FileParams{Filename: "x.go", Contents: "package p\n\nfunc f() {\n\treturn\n}\n"})
	require.NoError(t, err)
	require.NotEmpty(t, res.(ASTResult).Tree)
}

func TestHandlerHoverRendersEnclosingFuncDoc(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	_, err := call(t, h, "initialize", InitializeParams{})
	require.NoError(t, err)

	contents := "package p\n\n// Add returns a plus b.\nfunc Add(a, b int) int {\n\treturn a + b\n}\n"
	res, err := call(t, h, "hover", HoverParams{
		Filename: "x.go",
		Contents: contents,
		Position: lsp.Position{Line: 4, Character: 10}, // inside "return a + b"
	})
	require.NoError(t, err)
	hover := res.(HoverResult)
	require.Contains(t, hover.Contents, "Add returns a plus b")
	require.NotNil(t, hover.Range)
}

func TestHandlerHoverOutsideFuncIsEmpty(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	_, err := call(t, h, "initialize", InitializeParams{})
	require.NoError(t, err)

	res, err := call(t, h, "hover", HoverParams{
		Filename: "x.go",
		Contents: "package p\n",
		Position: lsp.Position{Line: 0, Character: 0},
	})
	require.NoError(t, err)
	require.Empty(t, res.(HoverResult).Contents)
}

func TestHandlerUnknownMethod(t *testing.T) {
	h := &Handler{defaultConfig: config.NewDefaultConfig()}
	_, err := call(t, h, "initialize", InitializeParams{})
	require.NoError(t, err)

	_, err = call(t, h, "bogus", nil)
	require.Error(t, err)
}
