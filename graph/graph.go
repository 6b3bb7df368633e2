// Copyright 2025 Lattice ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the validated computation graph of the Lattice
// engine.
//
// A graph is assembled from four node variants — input, processing,
// merge, and training split — and frozen by New, which runs the full
// structural validation exactly once. A constructed Graph is immutable:
// it exposes its root, its flattened node list with O(1) indexed access,
// its single inference output, and its training outputs.
//
// Example:
//
//	backend := cpu.New()
//	out := graph.NewProcessing(nn.NewOutput(4, 1, nn.Sigmoid, backend))
//	hidden := graph.NewProcessing(nn.NewDense(2, 4, nn.Sigmoid, backend), out)
//	g, err := graph.New(graph.NewInput(hidden))
//
// Validation failures are reported through the package's sentinel
// errors; match them with errors.Is.
package graph

import (
	"github.com/lattice-ml/lattice/internal/graph"
	"github.com/lattice-ml/lattice/nn"
)

// Node is one vertex of a computation graph. The variant set is closed:
// InputNode, ProcessingNode, MergeNode, and TrainingSplitNode.
type Node = graph.Node

// InputNode is the entry point of a graph.
type InputNode = graph.InputNode

// ProcessingNode wraps exactly one layer.
type ProcessingNode = graph.ProcessingNode

// MergeNode combines the outputs of two or more upstream branches.
type MergeNode = graph.MergeNode

// TrainingSplitNode forks execution into an inference branch and a
// training-only branch.
type TrainingSplitNode = graph.TrainingSplitNode

// Graph is an immutable, validated computation graph.
type Graph = graph.Graph

// BranchID identifies one training-only branch of a graph.
type BranchID = graph.BranchID

// Structural errors surfaced by New. Match with errors.Is.
var (
	ErrInvalidRoot              = graph.ErrInvalidRoot
	ErrInvalidChildType         = graph.ErrInvalidChildType
	ErrEmptyChildSet            = graph.ErrEmptyChildSet
	ErrOutputHasChildren        = graph.ErrOutputHasChildren
	ErrDuplicateInferenceOutput = graph.ErrDuplicateInferenceOutput
	ErrMissingInferenceOutput   = graph.ErrMissingInferenceOutput
	ErrDuplicateTrainingOutput  = graph.ErrDuplicateTrainingOutput
	ErrNestedTrainingSplit      = graph.ErrNestedTrainingSplit
	ErrInvalidNodeType          = graph.ErrInvalidNodeType
)

// New validates the candidate graph rooted at root and freezes it.
func New(root Node) (*Graph, error) {
	return graph.New(root)
}

// NewInput creates the graph entry node feeding the given children.
func NewInput(children ...Node) *InputNode {
	return graph.NewInput(children...)
}

// NewProcessing creates a node computing the given layer and feeding the
// given children.
func NewProcessing(layer nn.Layer, children ...Node) *ProcessingNode {
	return graph.NewProcessing(layer, children...)
}

// NewMerge creates a merge point feeding the given children.
func NewMerge(children ...Node) *MergeNode {
	return graph.NewMerge(children...)
}

// NewSplit creates a training split with the given inference and
// training branches.
func NewSplit(inference, training Node) *TrainingSplitNode {
	return graph.NewSplit(inference, training)
}
