// Package config holds the options shared by the CLI and the rpcserve
// handshake, mirroring how go-langserver's Config/InitializationOptions
// pair lets either surface set the same fields.
package config

import "runtime"

// Config adjusts pipeline behavior. Keep in sync with Options, its
// optional-field counterpart used at the rpcserve "initialize" boundary.
type Config struct {
	// Emit selects which intermediate artifact build/run stops at:
	// "tokens", "ast", or "lowered". Empty means run the full pipeline.
	//
	// Defaults to "" if not specified.
	Emit string

	// Release hints to the lowering pass that its (deliberately
	// incomplete) output targets a release-mode build of the downstream
	// compiler. It has no effect on the AST or lowered tree themselves.
	//
	// Defaults to false if not specified.
	Release bool

	// DenylistPath names a file listing source paths the watch pipeline
	// should never rescan, one path per line.
	//
	// Defaults to "" (no denylist) if not specified.
	DenylistPath string

	// MaxParallelism is a goroutine limit carried in the config and its
	// "initialize" handshake; no component in this module reads it.
	//
	// Defaults to half of your CPU cores if not specified.
	MaxParallelism int
}

// Options is Config with every field optional, the shape the rpcserve
// "initialize" method accepts over the wire.
type Options struct {
	Emit           *string `json:"emit"`
	Release        *bool   `json:"release"`
	DenylistPath   *string `json:"denylistPath"`
	MaxParallelism *int    `json:"maxParallelism"`
}

// Apply overlays each non-nil field of o onto c, returning the result.
func (c Config) Apply(o *Options) Config {
	if o == nil {
		return c
	}
	if o.Emit != nil {
		c.Emit = *o.Emit
	}
	if o.Release != nil {
		c.Release = *o.Release
	}
	if o.DenylistPath != nil {
		c.DenylistPath = *o.DenylistPath
	}
	if o.MaxParallelism != nil {
		c.MaxParallelism = *o.MaxParallelism
	}
	return c
}

// NewDefaultConfig returns the default config. See the field comments for
// the defaults.
func NewDefaultConfig() Config {
	maxParallelism := runtime.NumCPU() / 2
	if maxParallelism <= 0 {
		maxParallelism = 1
	}
	return Config{MaxParallelism: maxParallelism}
}
