// Package graph implements the validated computation graph at the core
// of the engine: a DAG of input, processing, merge, and training-split
// nodes, flattened into an indexable node list with one inference output
// and zero or more training outputs.
package graph

// Graph is an immutable, validated computation graph. Construction via
// New is total validation: either every structural invariant holds and a
// frozen graph is returned, or construction fails and no partial graph
// is observable. A constructed Graph is safe to share read-only across
// goroutines.
type Graph struct {
	root            *InputNode
	nodes           []Node
	inferenceOutput *ProcessingNode
	trainingOutputs map[BranchID]*ProcessingNode
	branchOrder     []BranchID
}

// New validates the candidate graph rooted at root and freezes it.
// Any structural violation aborts construction with one of the package's
// sentinel errors, wrapped with the offending node's description.
func New(root Node) (*Graph, error) {
	v, err := validate(root)
	if err != nil {
		return nil, err
	}

	return &Graph{
		root:            root.(*InputNode),
		nodes:           v.nodes,
		inferenceOutput: v.inferenceOutput,
		trainingOutputs: v.trainingOutputs,
		branchOrder:     v.branchOrder,
	}, nil
}

// Root returns the graph's single input node.
func (g *Graph) Root() *InputNode { return g.root }

// Len returns the number of reachable nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// NodeAt returns the i-th node of the flattened node list. The list is
// deduplicated traversal-discovery order: the root is first and every
// node appears before nodes only reachable through it. It is not
// guaranteed to be a strict topological order under merge fan-in; a
// driver that needs one must compute it itself.
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// Nodes returns a copy of the flattened node list.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// InferenceOutput returns the single output node reached via the
// inference path.
func (g *Graph) InferenceOutput() *ProcessingNode { return g.inferenceOutput }

// TrainingOutputs returns the training-branch output nodes in the order
// their branches were discovered.
func (g *Graph) TrainingOutputs() []*ProcessingNode {
	outputs := make([]*ProcessingNode, 0, len(g.branchOrder))
	for _, id := range g.branchOrder {
		outputs = append(outputs, g.trainingOutputs[id])
	}
	return outputs
}

// TrainingBranches returns the identifiers of the graph's training
// branches in discovery order.
func (g *Graph) TrainingBranches() []BranchID {
	ids := make([]BranchID, len(g.branchOrder))
	copy(ids, g.branchOrder)
	return ids
}

// TrainingOutputByBranch returns the output node of one training branch.
func (g *Graph) TrainingOutputByBranch(id BranchID) (*ProcessingNode, bool) {
	n, ok := g.trainingOutputs[id]
	return n, ok
}
