package core

// Assembler accumulates per-node half-edges and node metadata on behalf of
// package builder, then hands the result to one of the New*Graph
// constructors below. It is the seam between "construction policy"
// (validation, deduplication rules, multiplicity preservation — owned by
// builder) and "graph substrate" (owned by core): builder decides what the
// final node→edges mapping looks like, core only knows how to freeze it
// into an immutable graph.
type Assembler struct {
	order []NodeID
	seen  NodeSet
	edges map[NodeID][]Edge
	types map[NodeID]string
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{
		seen:  make(NodeSet),
		edges: make(map[NodeID][]Edge),
		types: make(map[NodeID]string),
	}
}

// EnsureNode registers id (with optional type tag) if not already present,
// preserving first-seen order for the graph's stable iteration order.
func (a *Assembler) EnsureNode(id NodeID, typ string) {
	if !a.seen.Contains(id) {
		a.seen.Add(id)
		a.order = append(a.order, id)
		a.types[id] = typ
		a.edges[id] = nil
	}
}

// AddHalfEdge appends a half-edge from `from`, not touching `target`'s own
// edge list. Undirected builders call this twice per logical edge (once per
// endpoint); directed builders call it once.
func (a *Assembler) AddHalfEdge(from NodeID, e Edge) {
	a.edges[from] = append(a.edges[from], e)
}

// Order returns node ids in first-seen order.
func (a *Assembler) Order() []NodeID { return a.order }

// Type returns the type tag registered for id.
func (a *Assembler) Type(id NodeID) string { return a.types[id] }

// build freezes the assembler into a node map keyed by id, each holding its
// accumulated half-edges.
func (a *Assembler) build() map[NodeID]*node {
	out := make(map[NodeID]*node, len(a.order))
	for _, id := range a.order {
		out[id] = &node{id: id, typ: a.types[id], edges: a.edges[id]}
	}
	return out
}

// NewSimpleUndirectedGraph freezes a from a simple (unweighted, untyped)
// undirected builder.
func NewSimpleUndirectedGraph(a *Assembler) *SimpleUndirectedGraph {
	nodes := a.build()
	return &SimpleUndirectedGraph{&undirectedGraph{
		nodes:      nodes,
		ids:        a.order,
		coreIDs:    a.order,
		nonCoreIDs: a.order,
		weighted:   false,
	}}
}

// NewWeightedUndirectedGraph freezes a from a weighted undirected builder.
func NewWeightedUndirectedGraph(a *Assembler) *WeightedUndirectedGraph {
	nodes := a.build()
	return &WeightedUndirectedGraph{&undirectedGraph{
		nodes:      nodes,
		ids:        a.order,
		coreIDs:    a.order,
		nonCoreIDs: a.order,
		weighted:   true,
	}}
}

// NewTypedGraph freezes a from a bipartite builder. coreIDs/nonCoreIDs
// partition a.Order() by the node's registered type tag.
func NewTypedGraph(a *Assembler, coreIDs, nonCoreIDs []NodeID) *TypedGraph {
	nodes := a.build()
	types := make(map[NodeID]string, len(a.types))
	for id, t := range a.types {
		types[id] = t
	}
	return &TypedGraph{
		undirectedGraph: &undirectedGraph{
			nodes:      nodes,
			ids:        a.order,
			coreIDs:    coreIDs,
			nonCoreIDs: nonCoreIDs,
			weighted:   false,
		},
		nodeTypes: types,
	}
}

// DirectedAssembler is the directed-graph counterpart of Assembler.
type DirectedAssembler struct {
	order   []NodeID
	seen    NodeSet
	outEdge map[NodeID][]Edge
	inEdge  map[NodeID][]Edge
}

// NewDirectedAssembler returns an empty DirectedAssembler.
func NewDirectedAssembler() *DirectedAssembler {
	return &DirectedAssembler{
		seen:    make(NodeSet),
		outEdge: make(map[NodeID][]Edge),
		inEdge:  make(map[NodeID][]Edge),
	}
}

// EnsureNode registers id if not already present, preserving first-seen
// order.
func (a *DirectedAssembler) EnsureNode(id NodeID) {
	if !a.seen.Contains(id) {
		a.seen.Add(id)
		a.order = append(a.order, id)
		a.outEdge[id] = nil
		a.inEdge[id] = nil
	}
}

// AddEdge records a directed half-edge from -> to, updating both endpoints'
// edge lists.
func (a *DirectedAssembler) AddEdge(from, to NodeID, weight float64) {
	a.outEdge[from] = append(a.outEdge[from], Edge{Target: to, Weight: weight})
	a.inEdge[to] = append(a.inEdge[to], Edge{Target: from, Weight: weight})
}

// Order returns node ids in first-seen order.
func (a *DirectedAssembler) Order() []NodeID { return a.order }

// NewSimpleDirectedGraph freezes a into an immutable SimpleDirectedGraph.
func NewSimpleDirectedGraph(a *DirectedAssembler) *SimpleDirectedGraph {
	nodes := make(map[NodeID]*directedNode, len(a.order))
	for _, id := range a.order {
		nodes[id] = &directedNode{id: id, outEdges: a.outEdge[id], inEdges: a.inEdge[id]}
	}
	return &SimpleDirectedGraph{&directedGraph{nodes: nodes, ids: a.order}}
}
