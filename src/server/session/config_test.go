package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sorbet-lsp/src/internal/common"
)

func newTestConfig(t *testing.T, opts Options) *Config {
	t.Helper()
	cfg, err := New(opts, common.NewSafeLogger("TEST"))
	require.NoError(t, err)
	return cfg
}

func TestNew_RequiresSingleRootDir(t *testing.T) {
	logger := common.NewSafeLogger("TEST")

	_, err := New(Options{}, logger)
	assert.Error(t, err)

	_, err = New(Options{RootDirs: []string{"/a", "/b"}}, logger)
	assert.Error(t, err)

	cfg, err := New(Options{RootDirs: []string{"/ws"}}, logger)
	require.NoError(t, err)
	assert.Equal(t, "/ws", cfg.RootPath())
}

func TestConfig_ClientConfigWriteOnce(t *testing.T) {
	cfg := newTestConfig(t, Options{RootDirs: []string{"/ws"}})

	assert.False(t, cfg.HasClientConfig())
	assert.Panics(t, func() { cfg.ClientConfig() })

	cfg.SetClientConfig(ClientConfig{RootURI: "file:///ws"})
	require.True(t, cfg.HasClientConfig())
	assert.Equal(t, "file:///ws", cfg.ClientConfig().RootURI)

	assert.Panics(t, func() { cfg.SetClientConfig(ClientConfig{}) })
}

func TestConfig_InitializedFlag(t *testing.T) {
	cfg := newTestConfig(t, Options{RootDirs: []string{"/ws"}})
	assert.False(t, cfg.Initialized())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cfg.Initialized()
		}()
	}
	cfg.MarkInitialized()
	wg.Wait()

	assert.True(t, cfg.Initialized())
}

func TestConfig_IsFileIgnored(t *testing.T) {
	cfg := newTestConfig(t, Options{
		RootDirs:               []string{"/ws"},
		AbsoluteIgnorePatterns: []string{"/vendor"},
		RelativeIgnorePatterns: []string{"node_modules"},
	})

	assert.True(t, cfg.IsFileIgnored("/ws/vendor/a.rb"))
	assert.True(t, cfg.IsFileIgnored("/ws/x/node_modules/y.js"))
	assert.False(t, cfg.IsFileIgnored("/ws/src/a.rb"))
}
