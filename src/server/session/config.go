package session

import (
	"fmt"
	"sync/atomic"

	"sorbet-lsp/src/internal/common"
	"sorbet-lsp/src/utils/filepattern"
)

// Options carries the startup inputs the session consumes: the workspace
// root and the ignore-pattern sets.
type Options struct {
	// RootDirs must contain exactly one entry. The language server has a
	// single workspace root; any other count is a configuration error.
	RootDirs []string

	AbsoluteIgnorePatterns []string
	RelativeIgnorePatterns []string

	// DirsMissingFromClient lists directories the editor client cannot see
	// on its own filesystem; files under them are addressed with sorbet:
	// URIs when the client opts in.
	DirsMissingFromClient []string
}

// Config is the per-session configuration. The root path and pattern sets
// are fixed at construction; the client configuration is installed exactly
// once during the handshake, before concurrent request processing begins.
type Config struct {
	rootPath string
	opts     Options
	logger   *common.SafeLogger

	clientConfig *ClientConfig
	initialized  atomic.Bool
}

// New validates the startup options and builds a session Config. It errors
// unless exactly one root directory was supplied; callers treat that as
// fatal and abort startup.
func New(opts Options, logger *common.SafeLogger) (*Config, error) {
	if len(opts.RootDirs) != 1 {
		return nil, fmt.Errorf("the language server requires a single input directory, got %d", len(opts.RootDirs))
	}
	return &Config{
		rootPath: opts.RootDirs[0],
		opts:     opts,
		logger:   logger,
	}, nil
}

// RootPath returns the canonical workspace root directory
func (c *Config) RootPath() string {
	return c.rootPath
}

// Logger returns the session's logger handle
func (c *Config) Logger() *common.SafeLogger {
	return c.logger
}

// DirsMissingFromClient returns the pattern set for files the client cannot
// resolve on its own filesystem
func (c *Config) DirsMissingFromClient() []string {
	return c.opts.DirsMissingFromClient
}

// SetClientConfig installs the negotiated client configuration. The session
// has a single handshake; installing twice is a programming error.
func (c *Config) SetClientConfig(cfg ClientConfig) {
	if c.clientConfig != nil {
		panic("session: SetClientConfig called twice in one session")
	}
	c.clientConfig = &cfg
}

// ClientConfig returns the negotiated client configuration. Calling it
// before negotiation completes is a programming error.
func (c *Config) ClientConfig() *ClientConfig {
	if c.clientConfig == nil {
		panic("session: client configuration accessed before negotiation")
	}
	return c.clientConfig
}

// HasClientConfig reports whether negotiation has completed
func (c *Config) HasClientConfig() bool {
	return c.clientConfig != nil
}

// MarkInitialized flips the one-shot readiness flag. Single writer; the
// flag only ever transitions false to true.
func (c *Config) MarkInitialized() {
	c.initialized.Store(true)
}

// Initialized reports readiness; safe for concurrent readers
func (c *Config) Initialized() bool {
	return c.initialized.Load()
}

// IsFileIgnored reports whether path matches the session's ignore patterns
func (c *Config) IsFileIgnored(path string) bool {
	return filepattern.IsFileIgnored(c.rootPath, path, c.opts.AbsoluteIgnorePatterns, c.opts.RelativeIgnorePatterns)
}
