// Package core defines the graph substrate shared by every graph kind in
// graphkit: NodeID, Edge, Node, and the capability interfaces that the
// algorithms package dispatches against.
//
// Graphs are immutable after construction (see package builder). Nothing in
// this package mutates a Node or Graph once built; algorithms read through
// the id→Node mapping only and never hold a reference back to the graph
// that produced a Node.
//
// Four graph kinds share this substrate:
//
//	SimpleUndirectedGraph   — plain undirected graph
//	SimpleDirectedGraph     — directed graph, distinguishes in/out edges
//	WeightedUndirectedGraph — undirected graph with non-negative edge weights
//	TypedGraph              — bipartite graph with core/non-core node types
//
// SimpleUndirectedGraph, WeightedUndirectedGraph, and TypedGraph all satisfy
// UndirectedGraph, so the undirected half of the algorithm catalog attaches
// to all three without a type switch; this is the "virtual capability
// table" dispatch spec.md §9 calls for in a language without sum types.
package core
