package algorithms

import "github.com/katalvlaran/graphkit/core"

// BrokerRole names a Gould-Fernandez brokerage role (spec.md §4.D.10 and
// SPEC_FULL.md's expansion table).
type BrokerRole int

const (
	Coordinator BrokerRole = iota
	Representative
	Gatekeeper
	Consultant
	Liaison
)

// BrokerCounts tallies, for one node, how many 2-hop directed paths u->v->w
// through it fall into each brokerage role.
type BrokerCounts struct {
	Coordinator    int
	Representative int
	Gatekeeper     int
	Consultant     int
	Liaison        int
}

// BrokerageRoles classifies every 2-hop directed path u->v->w (u != w)
// through each node v by comparing the three nodes' group memberships,
// following Gould-Fernandez:
//
//	g(u)==g(v), g(v)==g(w): Coordinator
//	g(u)==g(v), g(v)!=g(w): Representative
//	g(u)!=g(v), g(v)==g(w): Gatekeeper
//	g(u)!=g(v), g(v)!=g(w), g(u)==g(w): Consultant
//	g(u)!=g(v), g(v)!=g(w), g(u)!=g(w): Liaison
func BrokerageRoles(g core.DirectedGraph, groups map[core.NodeID]int) map[core.NodeID]BrokerCounts {
	counts := make(map[core.NodeID]BrokerCounts, g.CountNodes())
	for _, v := range g.IDs() {
		node := g.NodeDirected(v)
		var c BrokerCounts
		for u := range node.InNeighbors() {
			if u == v {
				continue
			}
			for w := range node.OutNeighbors() {
				if w == v || w == u {
					continue
				}
				uv := groups[u] == groups[v]
				vw := groups[v] == groups[w]
				switch {
				case uv && vw:
					c.Coordinator++
				case uv && !vw:
					c.Representative++
				case !uv && vw:
					c.Gatekeeper++
				case !uv && !vw && groups[u] == groups[w]:
					c.Consultant++
				default:
					c.Liaison++
				}
			}
		}
		counts[v] = c
	}
	return counts
}
