package graph

import (
	"github.com/lattice-ml/lattice/internal/nn"
)

// Node is one vertex of a candidate computation graph. The variant set is
// closed: InputNode, ProcessingNode, MergeNode, and TrainingSplitNode are
// the only implementations, and validation dispatches over them
// exhaustively. Nodes compare by reference identity: two separately
// constructed nodes are distinct even when structurally identical.
type Node interface {
	isNode()
}

// InputNode is the entry point of a graph. It performs no computation;
// it only hands the input batch to its children. A valid graph has
// exactly one InputNode, as its root, and every direct child of it must
// be a ProcessingNode.
type InputNode struct {
	children []Node
}

// NewInput creates the graph entry node feeding the given children.
func NewInput(children ...Node) *InputNode {
	return &InputNode{children: children}
}

// Children returns the nodes fed by the graph input.
func (n *InputNode) Children() []Node { return n.children }

func (n *InputNode) isNode() {}

// ProcessingNode wraps exactly one layer. A node wrapping a non-output
// layer must have at least one child; a node wrapping an output layer
// must have none.
type ProcessingNode struct {
	layer    nn.Layer
	children []Node
}

// NewProcessing creates a node computing the given layer and feeding the
// given children.
func NewProcessing(layer nn.Layer, children ...Node) *ProcessingNode {
	return &ProcessingNode{layer: layer, children: children}
}

// Layer returns the wrapped layer.
func (n *ProcessingNode) Layer() nn.Layer { return n.layer }

// Children returns the nodes fed by this node's output.
func (n *ProcessingNode) Children() []Node { return n.children }

func (n *ProcessingNode) isNode() {}

// MergeNode combines the outputs of the upstream branches that share it
// as a child; how they are combined (concatenation or summation) is the
// backend's concern. It owns no layer, and like every node its children
// are the downstream consumers of its result.
type MergeNode struct {
	children []Node
}

// NewMerge creates a merge point feeding the given children.
func NewMerge(children ...Node) *MergeNode {
	return &MergeNode{children: children}
}

// Children returns the nodes fed by the merged result.
func (n *MergeNode) Children() []Node { return n.children }

func (n *MergeNode) isNode() {}

// TrainingSplitNode forks execution into an inference branch and a
// training-only branch, attaching an auxiliary prediction head that is
// active only during training. Splits may not nest: a split cannot
// appear inside a training branch, and its inference branch cannot
// itself be a split.
type TrainingSplitNode struct {
	inference Node
	training  Node
}

// NewSplit creates a training split with the given inference and
// training branches.
func NewSplit(inference, training Node) *TrainingSplitNode {
	return &TrainingSplitNode{inference: inference, training: training}
}

// InferenceBranch returns the branch followed during inference.
func (n *TrainingSplitNode) InferenceBranch() Node { return n.inference }

// TrainingBranch returns the training-only branch.
func (n *TrainingSplitNode) TrainingBranch() Node { return n.training }

func (n *TrainingSplitNode) isNode() {}
