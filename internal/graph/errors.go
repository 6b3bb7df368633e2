package graph

import "errors"

// Structural errors raised during graph construction. Every violation
// aborts construction entirely; no partially validated graph is ever
// observable. Callers match with errors.Is.
var (
	// ErrInvalidRoot reports a root that is not an InputNode.
	ErrInvalidRoot = errors.New("graph: root must be an input node")

	// ErrInvalidChildType reports a direct child of the root that is not
	// a ProcessingNode.
	ErrInvalidChildType = errors.New("graph: input node children must be processing nodes")

	// ErrEmptyChildSet reports a non-output processing node with no
	// children.
	ErrEmptyChildSet = errors.New("graph: non-output processing node has no children")

	// ErrOutputHasChildren reports an output processing node with
	// children.
	ErrOutputHasChildren = errors.New("graph: output processing node has children")

	// ErrDuplicateInferenceOutput reports a second output node reached
	// on the inference path.
	ErrDuplicateInferenceOutput = errors.New("graph: multiple inference outputs")

	// ErrMissingInferenceOutput reports a graph with no output node on
	// the inference path.
	ErrMissingInferenceOutput = errors.New("graph: no inference output found")

	// ErrDuplicateTrainingOutput reports a training branch resolving to
	// more than one output node.
	ErrDuplicateTrainingOutput = errors.New("graph: multiple outputs on one training branch")

	// ErrNestedTrainingSplit reports a training split inside a training
	// branch, or as the inference branch of another split.
	ErrNestedTrainingSplit = errors.New("graph: nested training split")

	// ErrInvalidNodeType reports a node variant the validator does not
	// recognize, including an input node anywhere but the root.
	ErrInvalidNodeType = errors.New("graph: invalid node type")
)
