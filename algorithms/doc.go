// Package algorithms is the structural algorithm catalog (spec.md §4.D):
// connected components, k-core/k-truss/k-peak decompositions, CNM community
// detection, shortest paths, Brandes and naive betweenness, clustering and
// transitivity (exact and sampled), spectral measures, directed brokerage,
// and acyclicity.
//
// Every function here is written against core.UndirectedGraph or
// core.DirectedGraph, never a concrete graph type, so it attaches
// polymorphically to whichever graph kinds satisfy the interface it needs —
// the capability-advertising dispatch spec.md §9 describes.
package algorithms
