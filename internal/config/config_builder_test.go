package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// Arrange
	// Configs appended earlier win: mergo only fills fields that are
	// still zero, so env values take precedence over JSON values.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{Path: "env.db"}},
		},
		&StructuredConfig{
			App:       App{Version: "1.0.0"},
			Storage:   Storage{DB: DB{Path: "json.db"}},
			Generator: Generator{Length: 20},
		},
	)

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Storage.DB.Path)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 20, cfg.Generator.Length)
}

func TestConfigBuilder_Defaults(t *testing.T) {
	// Arrange
	b := newConfigBuilder()

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, defaultDBPath, cfg.Storage.DB.Path)
	assert.Equal(t, defaultGeneratorLength, cfg.Generator.Length)
	assert.Equal(t, defaultLogRole, cfg.App.LogRole)
	assert.False(t, cfg.Generator.Extended)
}

func TestConfigBuilder_AccumulatedError(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.err = errors.New("boom")

	// Act
	cfg, err := b.build()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_WithJSON_MissingFile(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "definitely-does-not-exist.json",
	})

	// Act
	cfg, err := b.withJSON().build()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				Storage:   Storage{DB: DB{Path: "vault.db"}},
				Generator: Generator{Length: 12},
			},
			wantErr: nil,
		},
		{
			name: "empty db path",
			cfg: StructuredConfig{
				Generator: Generator{Length: 12},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "non-positive generator length",
			cfg: StructuredConfig{
				Storage:   Storage{DB: DB{Path: "vault.db"}},
				Generator: Generator{Length: -1},
			},
			wantErr: ErrInvalidGeneratorConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
