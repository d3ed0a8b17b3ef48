package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, validate(&cfg))
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trees["tree3"] = TreeConfig{}
	cfg.UI.LeafDisplay = "walrus"
	cfg.UI.OverrideTarget = "tree7"
	cfg.Log.Level = "chatty"
	cfg.Update.Repo = "no-slash"

	err := validate(&cfg)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 5)
	assert.Contains(t, err.Error(), "trees.tree3")
	assert.Contains(t, err.Error(), `ui.leaf_display "walrus"`)
	assert.Contains(t, err.Error(), `ui.override_target "tree7"`)
	assert.Contains(t, err.Error(), `log.level "chatty"`)
	assert.Contains(t, err.Error(), `update.repo "no-slash"`)
}

func TestValidateLogLevelCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "DEBUG"
	assert.NoError(t, validate(&cfg))
}

func TestValidateOverrideTargetEitherTree(t *testing.T) {
	for _, target := range []string{"tree1", "tree2"} {
		cfg := DefaultConfig()
		cfg.UI.OverrideTarget = target
		assert.NoError(t, validate(&cfg), target)
	}
}
