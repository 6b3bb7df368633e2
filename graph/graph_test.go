// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-ml/lattice/backend/cpu"
	"github.com/lattice-ml/lattice/graph"
	"github.com/lattice-ml/lattice/nn"
)

var backend = cpu.New()

func hidden(inputs, outputs int) *nn.Dense {
	return nn.NewDense(inputs, outputs, nn.Sigmoid, backend)
}

func head(inputs, outputs int) *nn.Output {
	return nn.NewOutput(inputs, outputs, nn.Sigmoid, backend)
}

func TestNew_MinimalGraph(t *testing.T) {
	out := graph.NewProcessing(head(2, 1))
	root := graph.NewInput(out)

	g, err := graph.New(root)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Same(t, root, g.Root())
	assert.Same(t, graph.Node(root), g.NodeAt(0))
	assert.Same(t, graph.Node(out), g.NodeAt(1))
	assert.Same(t, out, g.InferenceOutput())
	assert.Empty(t, g.TrainingOutputs())
	assert.Empty(t, g.TrainingBranches())
}

func TestNew_InvalidRoot(t *testing.T) {
	_, err := graph.New(graph.NewProcessing(head(2, 1)))
	assert.ErrorIs(t, err, graph.ErrInvalidRoot)

	_, err = graph.New(nil)
	assert.ErrorIs(t, err, graph.ErrInvalidRoot)
}

func TestNew_EmptyChildSet(t *testing.T) {
	// A non-output processing node with no children is a dead end.
	root := graph.NewInput(graph.NewProcessing(hidden(2, 4)))

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrEmptyChildSet)
}

func TestNew_InvalidChildType(t *testing.T) {
	out := graph.NewProcessing(head(2, 1))

	t.Run("merge as root child", func(t *testing.T) {
		root := graph.NewInput(graph.NewMerge(out))
		_, err := graph.New(root)
		assert.ErrorIs(t, err, graph.ErrInvalidChildType)
	})

	t.Run("split as root child", func(t *testing.T) {
		root := graph.NewInput(graph.NewSplit(out, graph.NewProcessing(head(2, 1))))
		_, err := graph.New(root)
		assert.ErrorIs(t, err, graph.ErrInvalidChildType)
	})
}

func TestNew_OutputWithChildren(t *testing.T) {
	// An output layer must sit on a childless node.
	tail := graph.NewProcessing(head(1, 1))
	out := graph.NewProcessing(head(2, 1), tail)
	root := graph.NewInput(out)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrOutputHasChildren)
}

func TestNew_DuplicateInferenceOutput(t *testing.T) {
	root := graph.NewInput(
		graph.NewProcessing(head(2, 1)),
		graph.NewProcessing(head(2, 1)),
	)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrDuplicateInferenceOutput)
}

func TestNew_MissingInferenceOutput(t *testing.T) {
	// The inference branch cycles back into the hidden node: the
	// revisit short-circuits without error, so traversal completes
	// having found no inference output.
	h := graph.NewProcessing(hidden(2, 4), nil)
	trainOut := graph.NewProcessing(head(4, 1))
	split := graph.NewSplit(h, trainOut)
	h.Children()[0] = split
	root := graph.NewInput(h)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrMissingInferenceOutput)
}

func TestNew_TrainingSplit(t *testing.T) {
	infOut := graph.NewProcessing(head(4, 1))
	trainOut := graph.NewProcessing(head(4, 1))
	split := graph.NewSplit(infOut, trainOut)
	h := graph.NewProcessing(hidden(2, 4), split)
	root := graph.NewInput(h)

	g, err := graph.New(root)
	require.NoError(t, err)

	assert.Same(t, infOut, g.InferenceOutput())
	outs := g.TrainingOutputs()
	require.Len(t, outs, 1)
	assert.Same(t, trainOut, outs[0])
	assert.NotSame(t, g.InferenceOutput(), outs[0])
}

func TestNew_TwoSplitsAtDifferentDepths(t *testing.T) {
	infOut := graph.NewProcessing(head(4, 1))
	trainOut2 := graph.NewProcessing(head(4, 1))
	split2 := graph.NewSplit(infOut, trainOut2)
	h2 := graph.NewProcessing(hidden(4, 4), split2)

	trainOut1 := graph.NewProcessing(head(4, 1))
	split1 := graph.NewSplit(h2, trainOut1)
	h1 := graph.NewProcessing(hidden(2, 4), split1)
	root := graph.NewInput(h1)

	g, err := graph.New(root)
	require.NoError(t, err)

	assert.Same(t, infOut, g.InferenceOutput())
	outs := g.TrainingOutputs()
	require.Len(t, outs, 2)
	assert.Contains(t, outs, trainOut1)
	assert.Contains(t, outs, trainOut2)

	branches := g.TrainingBranches()
	require.Len(t, branches, 2)
	for i, id := range branches {
		byBranch, ok := g.TrainingOutputByBranch(id)
		require.True(t, ok)
		assert.Same(t, outs[i], byBranch)
	}
}

func TestNew_DuplicateTrainingOutput(t *testing.T) {
	// One training branch fanning out into two output heads.
	fan := graph.NewProcessing(hidden(4, 4),
		graph.NewProcessing(head(4, 1)),
		graph.NewProcessing(head(4, 1)),
	)
	infOut := graph.NewProcessing(head(4, 1))
	split := graph.NewSplit(infOut, fan)
	h := graph.NewProcessing(hidden(2, 4), split)
	root := graph.NewInput(h)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrDuplicateTrainingOutput)
}

func TestNew_NestedSplitInTrainingBranch(t *testing.T) {
	infOut := graph.NewProcessing(head(4, 1))
	inner := graph.NewSplit(
		graph.NewProcessing(head(4, 1)),
		graph.NewProcessing(head(4, 1)),
	)
	split := graph.NewSplit(infOut, inner)
	h := graph.NewProcessing(hidden(2, 4), split)
	root := graph.NewInput(h)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrNestedTrainingSplit)
}

func TestNew_SplitAsInferenceBranch(t *testing.T) {
	inner := graph.NewSplit(
		graph.NewProcessing(head(4, 1)),
		graph.NewProcessing(head(4, 1)),
	)
	outer := graph.NewSplit(inner, graph.NewProcessing(head(4, 1)))
	h := graph.NewProcessing(hidden(2, 4), outer)
	root := graph.NewInput(h)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrNestedTrainingSplit)
}

func TestNew_InputNodeInsideGraph(t *testing.T) {
	inner := graph.NewInput(graph.NewProcessing(head(4, 1)))
	h := graph.NewProcessing(hidden(2, 4), inner)
	root := graph.NewInput(h)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrInvalidNodeType)
}

func TestNew_DiamondFanIn(t *testing.T) {
	// Input -> A, Input -> B, {A, B} -> Merge -> Output.
	out := graph.NewProcessing(head(4, 1))
	merge := graph.NewMerge(out)
	a := graph.NewProcessing(hidden(2, 4), merge)
	b := graph.NewProcessing(hidden(2, 4), merge)
	root := graph.NewInput(a, b)

	g, err := graph.New(root)
	require.NoError(t, err)

	require.Equal(t, 5, g.Len())
	counts := map[graph.Node]int{}
	for _, n := range g.Nodes() {
		counts[n]++
	}
	for _, n := range []graph.Node{root, a, b, merge, out} {
		assert.Equal(t, 1, counts[n], "node %T should appear exactly once", n)
	}
	assert.Same(t, out, g.InferenceOutput())
}

func TestNew_DiscoveryOrder(t *testing.T) {
	out := graph.NewProcessing(head(4, 1))
	h2 := graph.NewProcessing(hidden(4, 4), out)
	h1 := graph.NewProcessing(hidden(2, 4), h2)
	root := graph.NewInput(h1)

	g, err := graph.New(root)
	require.NoError(t, err)

	want := []graph.Node{root, h1, h2, out}
	require.Equal(t, len(want), g.Len())
	for i, n := range want {
		assert.Same(t, n, g.NodeAt(i))
	}
}

func TestNodes_ReturnsCopy(t *testing.T) {
	out := graph.NewProcessing(head(2, 1))
	root := graph.NewInput(out)

	g, err := graph.New(root)
	require.NoError(t, err)

	nodes := g.Nodes()
	nodes[0] = nil
	assert.Same(t, graph.Node(root), g.NodeAt(0))
}

func TestNew_StructurallyIdenticalNodesStayDistinct(t *testing.T) {
	// Two separately constructed but structurally identical output
	// nodes must be tracked as distinct nodes, not deduplicated.
	layer := head(2, 1)
	out1 := graph.NewProcessing(layer)
	out2 := graph.NewProcessing(layer)
	root := graph.NewInput(out1, out2)

	_, err := graph.New(root)
	assert.ErrorIs(t, err, graph.ErrDuplicateInferenceOutput)
}
