// Package rpcserve exposes the scan/parse/lower pipeline as a long-lived
// JSON-RPC 2.0 service, the same way the teacher exposed its type checker
// over an LSP connection: a handshake method that pins down a Config,
// followed by stateless per-file request methods.
package rpcserve

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/config"
	"github.com/saibing/gors/internal/docprint"
	"github.com/saibing/gors/internal/lower"
	"github.com/saibing/gors/internal/parser"
	"github.com/saibing/gors/internal/printer"
	"github.com/saibing/gors/internal/source"
)

// InitializeParams is the "initialize" request body. Options is nil for a
// client that wants the server's built-in defaults.
type InitializeParams struct {
	Options *config.Options `json:"options"`
}

// InitializeResult echoes back the Config the handshake settled on, so a
// client can tell which defaults it inherited.
type InitializeResult struct {
	Config config.Config `json:"config"`
}

// FileParams names the file a tokenize/parse request runs over. Contents is
// the full source text; gors has no workspace to read files from, unlike
// the teacher's textDocument/didOpen-backed file cache.
type FileParams struct {
	Filename string `json:"filename"`
	Contents string `json:"contents"`
}

// TokensResult is the "tokenize" response: the pretty-printed token stream.
type TokensResult struct {
	Tokens string `json:"tokens"`
}

// ASTResult is the "parse" response: the pretty-printed syntax tree, lowered
// first when the handshake Config requested it via Emit == "lowered".
type ASTResult struct {
	Tree string `json:"tree"`
}

// HoverParams is the "hover" request body: a file plus the 0-based
// lsp.Position to hover over, mirroring the teacher's own
// textDocument/hover params shape.
type HoverParams struct {
	Filename string       `json:"filename"`
	Contents string       `json:"contents"`
	Position lsp.Position `json:"position"`
}

// HoverResult is the "hover" response: the Markdown-rendered doc comment of
// the innermost enclosing function declaration, if any, and the protocol
// range it covers. Contents is "" when the position isn't inside a
// documented function declaration.
type HoverResult struct {
	Contents string     `json:"contents"`
	Range    *lsp.Range `json:"range,omitempty"`
}

// Handler is a Go-front-end JSON-RPC 2.0 handler. Use NewHandler to build
// one; the zero value has no default Config.
type Handler struct {
	mu            sync.Mutex
	defaultConfig config.Config
	cfg           *config.Config // set by "initialize"; nil means not yet initialized
}

// NewHandler creates a handler whose Config defaults to defaultCfg until a
// client overrides it via "initialize".
func NewHandler(defaultCfg config.Config) jsonrpc2.Handler {
	h := &Handler{defaultConfig: defaultCfg}
	return jsonrpc2.HandlerWithError(h.handle)
}

func (h *Handler) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	if req.Method != "initialize" && req.Method != "shutdown" && req.Method != "exit" {
		h.mu.Lock()
		ready := h.cfg != nil
		h.mu.Unlock()
		if !ready {
			return nil, errors.New("rpcserve: server must be initialized")
		}
	}

	switch req.Method {
	case "initialize":
		return h.handleInitialize(req)
	case "tokenize":
		return h.handleTokenize(req)
	case "parse":
		return h.handleParse(req)
	case "hover":
		return h.handleHover(req)
	case "shutdown":
		return nil, nil
	case "exit":
		return nil, nil
	default:
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
}

func (h *Handler) handleInitialize(req *jsonrpc2.Request) (interface{}, error) {
	var params InitializeParams
	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			return nil, errors.Wrap(err, "rpcserve: decoding initialize params")
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	cfg := h.defaultConfig.Apply(params.Options)
	h.cfg = &cfg
	return InitializeResult{Config: cfg}, nil
}

func (h *Handler) handleTokenize(req *jsonrpc2.Request) (interface{}, error) {
	params, err := fileParams(req)
	if err != nil {
		return nil, err
	}

	pipeline := &source.Pipeline{Filename: params.Filename, Contents: []byte(params.Contents)}
	triples, err := pipeline.Tokens()
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	if err := printer.FprintTokens(&buf, triples); err != nil {
		return nil, err
	}
	return TokensResult{Tokens: buf.String()}, nil
}

func (h *Handler) handleParse(req *jsonrpc2.Request) (interface{}, error) {
	params, err := fileParams(req)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	cfg := *h.cfg
	h.mu.Unlock()

	pipeline := &source.Pipeline{Filename: params.Filename, Contents: []byte(params.Contents)}

	var file *ast.File
	if cfg.Emit == "lowered" {
		file, err = pipeline.Lowered(lower.Options{Release: cfg.Release})
	} else {
		file, err = pipeline.AST()
	}
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	if err := printer.Fprint(&buf, file); err != nil {
		return nil, err
	}
	return ASTResult{Tree: buf.String()}, nil
}

// handleHover finds the innermost *ast.FuncDecl enclosing params.Position and
// renders its doc comment as Markdown, the same hover-over-a-declaration
// shape as the teacher's own textDocument/hover, but backed by
// PathEnclosingInterval over this package's own AST instead of go/types.
func (h *Handler) handleHover(req *jsonrpc2.Request) (interface{}, error) {
	var params HoverParams
	if req.Params == nil {
		return nil, errors.New("rpcserve: missing params")
	}
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, errors.Wrap(err, "rpcserve: decoding hover params")
	}
	if params.Filename == "" {
		return nil, errors.New("rpcserve: filename is required")
	}

	contents := []byte(params.Contents)
	offset, err := source.OffsetForPosition(contents, params.Position)
	if err != nil {
		return nil, errors.Wrap(err, "rpcserve: resolving hover position")
	}

	file, err := parser.ParseFile(params.Filename, contents)
	if err != nil {
		return nil, err
	}

	path, _ := ast.PathEnclosingInterval(file, offset, offset)
	var fn *ast.FuncDecl
	for _, n := range path {
		if f, ok := n.(*ast.FuncDecl); ok {
			fn = f
			break
		}
	}
	if fn == nil || fn.Doc == nil {
		return HoverResult{}, nil
	}

	text := docprint.FuncDoc(fn)
	rng := source.ToProtocolRange(fn.Pos(), fn.End())
	return HoverResult{Contents: text, Range: &rng}, nil
}

func fileParams(req *jsonrpc2.Request) (FileParams, error) {
	var params FileParams
	if req.Params == nil {
		return params, errors.New("rpcserve: missing params")
	}
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return params, errors.Wrap(err, "rpcserve: decoding request params")
	}
	if params.Filename == "" {
		return params, errors.New("rpcserve: filename is required")
	}
	return params, nil
}
