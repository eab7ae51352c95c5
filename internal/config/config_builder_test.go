package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without files is rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrNoConfigFiles)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that later layers win for
// non-zero fields and that zero fields do not erase earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:             App{Version: "1.0.0", Namespace: "env.ns"},
			ConfigFilePaths: []string{"env.yaml"},
		},
		&StructuredConfig{
			App:             App{Namespace: "flag.ns"},
			ConfigFilePaths: []string{"flag.yaml"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flag.ns", cfg.App.Namespace)
	assert.Equal(t, []string{"flag.yaml"}, cfg.ConfigFilePaths)
}

// TestBuild_AppliesDefaults verifies the defaults of unset fields.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePaths: []string{"a.yaml"},
		Probe:           Probe{ServiceKey: "ns.orders.simple_client"},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultNamespace, cfg.App.Namespace)
	assert.Equal(t, DefaultRootKey, cfg.App.RootKey)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultProbePath, cfg.Probe.Path)
	assert.NotNil(t, cfg.SDK)
	assert.False(t, cfg.Server.Enabled())
}

// TestBuild_ServerSettings verifies that address and timeout go together.
func TestBuild_ServerSettings(t *testing.T) {
	tests := []struct {
		name    string
		server  Server
		wantErr bool
	}{
		{name: "both empty", server: Server{}},
		{name: "both set", server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}},
		{name: "address only", server: Server{HTTPAddress: "localhost:8080"}, wantErr: true},
		{name: "timeout only", server: Server{RequestTimeout: time.Second}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{
				Server:          tt.server,
				ConfigFilePaths: []string{"a.yaml"},
			})

			_, err := b.build()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidServerConfigs)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":   "env-version",
		"APP_NAMESPACE": "env.ns",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env.ns", b.configs[0].App.Namespace)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a parse failure is recorded.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnBadFlag verifies that a parse failure is recorded.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
}

// ── withFiles ─────────────────────────────────────────────────────────────────

// TestWithFiles_NoOp_WhenNoPathSet verifies that withFiles does nothing when
// no layer names a file.
func TestWithFiles_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFiles()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFiles_AppendsTree verifies that the merged tree becomes a layer.
func TestWithFiles_AppendsTree(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
custom_root:
  endpoints:
    orders:
      base_endpoint: https://orders.example.com
`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:             App{RootKey: "custom_root"},
		ConfigFilePaths: []string{path},
	})
	b.withFiles()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Contains(t, b.configs[1].SDK, "endpoints")
}

// TestWithFiles_SetsError_WhenFileNotFound verifies that a missing file
// sets b.err.
func TestWithFiles_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePaths: []string{"/nonexistent/config.yaml"},
	})
	b.withFiles()

	assert.Error(t, b.err)
}

// TestWithFiles_DoesNotLoad_WhenErrorAlreadySet verifies that an earlier
// failure short-circuits file loading.
func TestWithFiles_DoesNotLoad_WhenErrorAlreadySet(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePaths: []string{"/nonexistent/config.yaml"},
	})
	b.withFiles()

	assert.Len(t, b.configs, 1)
	assert.ErrorIs(t, b.err, assert.AnError)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EndToEnd(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "9.9.9"})
	path := writeConfigFile(t, "config.json", `{"nab_web_api_base_sdk": {"endpoints": {"a": {"base_endpoint": "https://a"}}}}`)

	cfg, err := GetStructuredConfig([]string{"-c", path, "-namespace", "acme"})

	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "acme", cfg.App.Namespace)
	assert.Contains(t, cfg.SDK, "endpoints")
}
