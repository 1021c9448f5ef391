package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/loomgo/internal/builder"
	"github.com/vk/loomgo/internal/design"
	"github.com/vk/loomgo/internal/export"
	"github.com/vk/loomgo/internal/testutil"
	"github.com/vk/loomgo/internal/workflow"
)

func contestGraph(t *testing.T) *workflow.Graph {
	t.Helper()
	cat := testutil.Catalogue(t, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("split", "kfold"),
	), nil)
	g, err := builder.Build(testutil.Context(t), cat, design.Contest{})
	require.NoError(t, err)
	return g
}

func renderDOT(t *testing.T, g *workflow.Graph) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, export.WriteDOT(&sb, g))
	return sb.String()
}

func TestWriteDOT(t *testing.T) {
	out := renderDOT(t, contestGraph(t))

	assert.True(t, strings.HasPrefix(out, "digraph workflow {"))
	assert.Contains(t, out, `subgraph "cluster_wrangler_scale"`)
	assert.Contains(t, out, `subgraph "cluster_wrangler_split"`)
	assert.Contains(t, out, "rank=same;")
	assert.Contains(t, out, `"wrangler.scale.minmax[0]" [label="minmax"];`)
	assert.Contains(t, out, `"wrangler.scale.minmax[0]" -> "wrangler.split.kfold[0]";`)
	assert.Contains(t, out, `"wrangler.scale.robust[0]" -> "wrangler.split.kfold[0]";`)
}

func TestWriteDOTIsDeterministic(t *testing.T) {
	assert.Equal(t, renderDOT(t, contestGraph(t)), renderDOT(t, contestGraph(t)))
}

func TestWriteDOTEdgeMetadata(t *testing.T) {
	t.Run("kanban deliverables become labels", func(t *testing.T) {
		cat := testutil.Catalogue(t, testutil.WorkerDef("wrangler", "kanban",
			testutil.StepDef("scale", "minmax"),
			testutil.StepDef("split", "kfold"),
		), nil)
		g, err := builder.Build(testutil.Context(t), cat, design.Kanban{})
		require.NoError(t, err)
		assert.Contains(t, renderDOT(t, g), `[label="scale"]`)
	})

	t.Run("feedback edges are dashed", func(t *testing.T) {
		g := workflow.New("waterfall")
		a := &workflow.Node{ID: "c.explain.shap[0]", Worker: "c", Step: "explain", Technique: "shap"}
		b := &workflow.Node{ID: "c.report.summary[0]", Worker: "c", Step: "report", Technique: "summary"}
		require.NoError(t, g.AddNode(a))
		require.NoError(t, g.AddNode(b))
		require.NoError(t, g.AddEdge(&workflow.Edge{From: a.ID, To: b.ID}))
		require.NoError(t, g.AddEdge(&workflow.Edge{From: b.ID, To: a.ID, Feedback: true}))
		assert.Contains(t, renderDOT(t, g), "style=dashed")
	})
}
