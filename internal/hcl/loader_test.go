package hcl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/hcl"
	"github.com/vk/loomgo/internal/testutil"
)

func writeHCL(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func load(t *testing.T, paths ...string) (*config.Model, error) {
	t.Helper()
	return hcl.NewLoader().Load(testutil.Context(t), paths...)
}

const projectHCL = `
project "churn" {
  workers = ["wrangler", "critic"]
}

worker "wrangler" {
  design = "contest"
  step "scale" {
    techniques = ["minmax", "robust"]
  }
  step "split" {
    techniques = ["kfold"]
  }
}

worker "critic" {
  step "explain" {
    techniques = ["shap"]
  }
  step "report" {
    techniques = ["summary"]
  }
  loop {
    from = "report"
    to   = "explain"
  }
}

technique "minmax" {
  parameters = {
    feature_range = [0, 1]
    clip          = true
  }
}

technique "kfold" {
  parameters = {
    folds   = 5
    shuffle = 0.8
  }
}

technique "shap" {}
`

func TestLoad(t *testing.T) {
	model, err := load(t, writeHCL(t, "churn.hcl", projectHCL))
	require.NoError(t, err)

	assert.Equal(t, "churn", model.Project.Name)
	require.Len(t, model.Workers, 2)

	wrangler := model.Workers[0]
	assert.Equal(t, "wrangler", wrangler.Name)
	assert.Equal(t, "contest", wrangler.Design)
	require.Len(t, wrangler.Steps, 2)
	assert.Equal(t, []string{"minmax", "robust"}, wrangler.Steps[0].Techniques)

	critic := model.Workers[1]
	assert.Empty(t, critic.Design)
	require.NotNil(t, critic.Loop)
	assert.Equal(t, "report", critic.Loop.From)
	assert.Equal(t, "explain", critic.Loop.To)

	t.Run("parameter expressions become plain go values", func(t *testing.T) {
		minmax := model.Parameters["minmax"]
		assert.Equal(t, []any{int64(0), int64(1)}, minmax["feature_range"])
		assert.Equal(t, true, minmax["clip"])

		kfold := model.Parameters["kfold"]
		assert.Equal(t, int64(5), kfold["folds"])
		assert.Equal(t, 0.8, kfold["shuffle"])
	})

	t.Run("technique without parameters decodes to an empty map", func(t *testing.T) {
		params, ok := model.Parameters["shap"]
		require.True(t, ok)
		assert.Empty(t, params)
	})
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workers.hcl"), []byte(`
worker "wrangler" {
  step "scale" {
    techniques = ["minmax"]
  }
}
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not hcl"), 0644))

	model, err := hcl.NewLoader().Load(testutil.Context(t), dir)
	require.NoError(t, err)
	require.Len(t, model.Workers, 1)

	// Without a project block every worker joins an implicit project.
	assert.Equal(t, "project", model.Project.Name)
	assert.Equal(t, []string{"wrangler"}, model.Project.WorkerNames)
}

func TestLoadErrors(t *testing.T) {
	assertConfigErr := func(t *testing.T, err error) *config.ConfigurationError {
		t.Helper()
		var cfgErr *config.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		return cfgErr
	}

	t.Run("missing path", func(t *testing.T) {
		_, err := load(t, "/nonexistent/grid.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config path not found")
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := load(t, writeHCL(t, "bad.hcl", `worker "x" {`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("duplicate worker", func(t *testing.T) {
		_, err := load(t, writeHCL(t, "dup.hcl", `
worker "wrangler" {
  step "scale" { techniques = ["minmax"] }
}
worker "wrangler" {
  step "scale" { techniques = ["robust"] }
}
`))
		cfgErr := assertConfigErr(t, err)
		assert.Equal(t, "wrangler", cfgErr.Subject)
	})

	t.Run("project references undefined worker", func(t *testing.T) {
		_, err := load(t, writeHCL(t, "missing.hcl", `
project "churn" {
  workers = ["ghost"]
}
worker "wrangler" {
  step "scale" { techniques = ["minmax"] }
}
`))
		cfgErr := assertConfigErr(t, err)
		assert.Contains(t, cfgErr.Detail, `"ghost"`)
	})

	t.Run("project without workers", func(t *testing.T) {
		_, err := load(t, writeHCL(t, "empty.hcl", `
project "churn" {
  workers = []
}
`))
		assertConfigErr(t, err)
	})

	t.Run("non-object parameters", func(t *testing.T) {
		_, err := load(t, writeHCL(t, "scalar.hcl", `
worker "wrangler" {
  step "scale" { techniques = ["minmax"] }
}
technique "minmax" {
  parameters = 42
}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parameters must be an object")
	})
}
