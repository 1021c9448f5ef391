package integration_tests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/loomgo/internal/app"
	"github.com/vk/loomgo/internal/hcl"
)

const criticHCL = `
worker "critic" {
  step "explain" {
    techniques = ["shap"]
  }
  step "predict" {
    techniques = ["gini"]
  }
  step "report" {
    techniques = ["summary"]
  }
  loop {
    from = "report"
    to   = "explain"
  }
}
`

func runCritic(t *testing.T, output string, maxRevisits int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "critic.hcl")
	require.NoError(t, os.WriteFile(path, []byte(criticHCL), 0600))

	cfg, err := app.NewConfig(app.Config{
		ProjectPath: path,
		Output:      output,
		MaxRevisits: maxRevisits,
		LogFormat:   "text",
		LogLevel:    "info",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := app.NewApp(out, &bytes.Buffer{}, cfg, hcl.NewLoader())
	require.NoError(t, a.Run(context.Background(), cfg))
	return out.String()
}

func TestFeedbackLoopUnrollsToRevisitBound(t *testing.T) {
	t.Parallel()

	out := runCritic(t, app.OutputPaths, 1)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)

	// Two laps around the loop, then the bound cuts the path.
	assert.Equal(t,
		"critic.explain.shap[0] -> critic.predict.gini[0] -> critic.report.summary[0]"+
			" -> critic.explain.shap[0] -> critic.predict.gini[0] -> critic.report.summary[0] (truncated)",
		lines[0])
}

func TestFeedbackLoopWithZeroRevisits(t *testing.T) {
	t.Parallel()

	out := runCritic(t, app.OutputPaths, 0)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"critic.explain.shap[0] -> critic.predict.gini[0] -> critic.report.summary[0] (truncated)",
		lines[0])
}

func TestFeedbackLoopSummaryReportsTruncation(t *testing.T) {
	t.Parallel()

	out := runCritic(t, app.OutputSummary, 1)
	assert.Contains(t, out, "3 nodes, 3 edges, 1 pipelines (1 truncated)")
}

func TestFeedbackEdgeIsDashedInDOT(t *testing.T) {
	t.Parallel()

	out := runCritic(t, app.OutputDOT, 1)
	assert.Contains(t, out, `"critic.report.summary[0]" -> "critic.explain.shap[0]" [style=dashed, constraint=false];`)
}
