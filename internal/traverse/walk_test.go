package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/loomgo/internal/builder"
	"github.com/vk/loomgo/internal/catalogue"
	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/design"
	"github.com/vk/loomgo/internal/testutil"
	"github.com/vk/loomgo/internal/traverse"
	"github.com/vk/loomgo/internal/workflow"
)

func build(t *testing.T, rule design.Rule, worker *config.Worker) *workflow.Graph {
	t.Helper()
	cat := testutil.Catalogue(t, worker, nil)
	g, err := builder.Build(testutil.Context(t), cat, rule)
	require.NoError(t, err)
	return g
}

func collect(g *workflow.Graph, opts ...traverse.Option) []traverse.Pipeline {
	var out []traverse.Pipeline
	for p := range traverse.Paths(g, opts...) {
		out = append(out, p)
	}
	return out
}

func TestWaterfallYieldsOneDefaultPath(t *testing.T) {
	g := build(t, design.Waterfall{}, testutil.WorkerDef("wrangler", "waterfall",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("split", "kfold", "holdout"),
		testutil.StepDef("encode", "onehot", "target"),
	))

	pipelines := collect(g)
	require.Len(t, pipelines, 1)
	p := pipelines[0]
	require.Len(t, p.Nodes, 3)
	assert.Equal(t, "minmax", p.Nodes[0].Technique)
	assert.Equal(t, "kfold", p.Nodes[1].Technique)
	assert.Equal(t, "onehot", p.Nodes[2].Technique)
	assert.False(t, p.Truncated)
}

func TestContestYieldsProductOfMenuSizes(t *testing.T) {
	g := build(t, design.Contest{}, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust", "normalize"),
		testutil.StepDef("split", "kfold", "holdout"),
		testutil.StepDef("encode", "onehot", "target"),
	))

	pipelines := collect(g)
	assert.Len(t, pipelines, 3*2*2)
	for _, p := range pipelines {
		assert.Len(t, p.Nodes, 3)
		assert.False(t, p.Truncated)
	}
}

func TestContestEndToEndScenario(t *testing.T) {
	// Catalogue {scale: [minmax, robust], split: [kfold]} must yield
	// exactly (minmax->kfold) and (robust->kfold), in that order.
	g := build(t, design.Contest{}, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("split", "kfold"),
	))

	pipelines := collect(g)
	require.Len(t, pipelines, 2)
	assert.Equal(t, "wrangler.scale.minmax[0] -> wrangler.split.kfold[0]", pipelines[0].String())
	assert.Equal(t, "wrangler.scale.robust[0] -> wrangler.split.kfold[0]", pipelines[1].String())
}

func TestPassThroughStepPreservesPathCount(t *testing.T) {
	with := build(t, design.Contest{}, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("clean", catalogue.PassThrough),
		testutil.StepDef("split", "kfold"),
	))
	without := build(t, design.Contest{}, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("split", "kfold"),
	))

	assert.Len(t, collect(with), len(collect(without)))
}

func TestEnumerationIsRestartable(t *testing.T) {
	g := build(t, design.Contest{}, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("split", "kfold", "holdout"),
	))

	seq := traverse.Paths(g)
	var first, second []string
	for p := range seq {
		first = append(first, p.String())
	}
	for p := range seq {
		second = append(second, p.String())
	}
	assert.Equal(t, first, second)
}

func TestEarlyBreakStopsEnumeration(t *testing.T) {
	g := build(t, design.Contest{}, testutil.WorkerDef("wrangler", "contest",
		testutil.StepDef("scale", "minmax", "robust", "normalize"),
		testutil.StepDef("split", "kfold", "holdout"),
	))

	count := 0
	for range traverse.Paths(g) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func criticGraph(t *testing.T) *workflow.Graph {
	w := testutil.WorkerDef("critic", "waterfall",
		testutil.StepDef("explain", "shap"),
		testutil.StepDef("predict", "gini"),
		testutil.StepDef("report", "summary"),
	)
	w.Loop = &config.Loop{From: "report", To: "explain"}
	return build(t, design.Waterfall{}, w)
}

func TestCyclicRegionTraversal(t *testing.T) {
	t.Run("default bound revisits once and tags truncation", func(t *testing.T) {
		pipelines := collect(criticGraph(t))
		require.Len(t, pipelines, 1)
		p := pipelines[0]
		// explain, predict, report twice over.
		require.Len(t, p.Nodes, 6)
		assert.True(t, p.Truncated)
		assert.Equal(t, "explain", p.Nodes[0].Step)
		assert.Equal(t, "explain", p.Nodes[3].Step)
	})

	t.Run("bound zero visits the cyclic node exactly once", func(t *testing.T) {
		pipelines := collect(criticGraph(t), traverse.WithMaxRevisits(0))
		require.Len(t, pipelines, 1)
		p := pipelines[0]
		require.Len(t, p.Nodes, 3)
		assert.True(t, p.Truncated)
		seen := map[string]int{}
		for _, n := range p.Nodes {
			seen[n.ID]++
		}
		for id, count := range seen {
			assert.Equal(t, 1, count, "node %s revisited", id)
		}
	})

	t.Run("truncation is distinct from natural termination", func(t *testing.T) {
		acyclic := build(t, design.Waterfall{}, testutil.WorkerDef("wrangler", "waterfall",
			testutil.StepDef("scale", "minmax"),
		))
		pipelines := collect(acyclic)
		require.Len(t, pipelines, 1)
		assert.False(t, pipelines[0].Truncated)
	})
}

func TestEvaluatorPrunesAtTraversalTime(t *testing.T) {
	g := build(t, design.Agile{}, testutil.WorkerDef("wrangler", "agile",
		testutil.StepDef("scale", "minmax", "robust"),
		testutil.StepDef("split", "kfold", "holdout"),
	))

	// The construction-time graph holds all candidates; the evaluator
	// rejects holdout continuations while walking.
	keepKfold := func(from, to *workflow.Node) bool {
		return to.Technique != "holdout"
	}
	pipelines := collect(g, traverse.WithEvaluator(keepKfold))
	require.Len(t, pipelines, 2)
	for _, p := range pipelines {
		assert.Equal(t, "kfold", p.Nodes[1].Technique)
		// Pruning is not truncation.
		assert.False(t, p.Truncated)
	}
}
