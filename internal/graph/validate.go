package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lattice-ml/lattice/internal/nn"
)

// BranchID identifies one training-only branch of a graph. A fresh ID is
// generated each time validation enters the training side of a
// TrainingSplitNode.
type BranchID = uuid.UUID

// branch tags the path validation is currently exploring: either the
// single inference path, or one training branch with its generated ID.
// The explicit flag avoids overloading a zero ID with meaning.
type branch struct {
	training bool
	id       BranchID
}

var inferenceBranch = branch{}

func newTrainingBranch() branch {
	return branch{training: true, id: uuid.New()}
}

// validator holds the state of one structural validation run: the
// visited set (reference identity via interface map keys), the node list
// in discovery order, and the outputs found so far. A validator is used
// once and discarded.
type validator struct {
	visited         map[Node]struct{}
	nodes           []Node
	inferenceOutput *ProcessingNode
	trainingOutputs map[BranchID]*ProcessingNode
	branchOrder     []BranchID
}

// validate explores the candidate graph from root, enforcing every
// structural invariant and flattening the reachable node set into
// discovery order. The order lists the root first and parents before
// nodes only reachable through them, but is not a strict topological
// order under merge fan-in.
func validate(root Node) (*validator, error) {
	in, ok := root.(*InputNode)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidRoot, describe(root))
	}

	v := &validator{
		visited:         map[Node]struct{}{in: {}},
		nodes:           []Node{in},
		trainingOutputs: map[BranchID]*ProcessingNode{},
	}

	for _, child := range in.children {
		if _, ok := child.(*ProcessingNode); !ok {
			return nil, fmt.Errorf("%w: got %s", ErrInvalidChildType, describe(child))
		}
		if err := v.explore(child, inferenceBranch); err != nil {
			return nil, err
		}
	}

	if v.inferenceOutput == nil {
		return nil, ErrMissingInferenceOutput
	}
	return v, nil
}

// explore recursively validates one node under the current branch tag.
// A node already visited in this run short-circuits successfully: that is
// what gives the flattened list set semantics when branches re-merge.
func (v *validator) explore(n Node, b branch) error {
	if _, seen := v.visited[n]; seen {
		return nil
	}
	v.visited[n] = struct{}{}
	v.nodes = append(v.nodes, n)

	switch n := n.(type) {
	case *ProcessingNode:
		if _, ok := n.layer.(nn.OutputLayer); ok {
			return v.recordOutput(n, b)
		}
		if len(n.children) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyChildSet, describe(n))
		}
		for _, child := range n.children {
			if err := v.explore(child, b); err != nil {
				return err
			}
		}
		return nil

	case *MergeNode:
		for _, child := range n.children {
			if err := v.explore(child, b); err != nil {
				return err
			}
		}
		return nil

	case *TrainingSplitNode:
		if b.training {
			return fmt.Errorf("%w: split inside training branch %s", ErrNestedTrainingSplit, b.id)
		}
		if _, ok := n.inference.(*TrainingSplitNode); ok {
			return fmt.Errorf("%w: split as inference branch of another split", ErrNestedTrainingSplit)
		}
		if err := v.explore(n.inference, b); err != nil {
			return err
		}
		return v.explore(n.training, newTrainingBranch())

	default:
		return fmt.Errorf("%w: %s", ErrInvalidNodeType, describe(n))
	}
}

// recordOutput registers an output processing node under the current
// branch: the single inference output on the inference path, or the
// single output of one training branch.
func (v *validator) recordOutput(n *ProcessingNode, b branch) error {
	if len(n.children) != 0 {
		return fmt.Errorf("%w: %s has %d children", ErrOutputHasChildren, describe(n), len(n.children))
	}

	if !b.training {
		if v.inferenceOutput != nil {
			return fmt.Errorf("%w: %s and %s", ErrDuplicateInferenceOutput,
				describe(v.inferenceOutput), describe(n))
		}
		v.inferenceOutput = n
		return nil
	}

	if prev, ok := v.trainingOutputs[b.id]; ok {
		return fmt.Errorf("%w: branch %s resolves to %s and %s", ErrDuplicateTrainingOutput,
			b.id, describe(prev), describe(n))
	}
	v.trainingOutputs[b.id] = n
	v.branchOrder = append(v.branchOrder, b.id)
	return nil
}

// describe renders a node for error messages.
func describe(n Node) string {
	switch n := n.(type) {
	case *InputNode:
		return "input node"
	case *ProcessingNode:
		if n.layer == nil {
			return "processing node (no layer)"
		}
		return fmt.Sprintf("processing node (%s %dx%d)",
			n.layer.Activation().Name(), n.layer.Inputs(), n.layer.Outputs())
	case *MergeNode:
		return fmt.Sprintf("merge node (%d branches)", len(n.children))
	case *TrainingSplitNode:
		return "training split node"
	case nil:
		return "nil node"
	default:
		return fmt.Sprintf("%T", n)
	}
}
