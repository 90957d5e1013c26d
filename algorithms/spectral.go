package algorithms

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphkit/core"
)

// AdjacencyMatrix builds the dense adjacency matrix of g over a fixed node
// ordering (spec.md §4.D.9), returning the matrix alongside the node id at
// each row/column index.
func AdjacencyMatrix(g core.UndirectedGraph) (*mat.Dense, []core.NodeID) {
	ids := g.IDs()
	n := len(ids)
	pos := make(map[core.NodeID]int, n)
	for i, id := range ids {
		pos[id] = i
	}

	data := make([]float64, n*n)
	for i, id := range ids {
		for _, e := range g.Node(id).Edges() {
			j := pos[e.Target]
			data[i*n+j]++
		}
	}
	return mat.NewDense(n, n, data), ids
}

// LaplacianMatrix returns the combinatorial Laplacian D - A (spec.md
// §4.D.9), where D is the diagonal degree matrix and A the adjacency
// matrix, over the same node ordering as AdjacencyMatrix.
func LaplacianMatrix(g core.UndirectedGraph) (*mat.Dense, []core.NodeID) {
	adj, ids := AdjacencyMatrix(g)
	n := len(ids)
	lap := mat.NewDense(n, n, nil)
	for i, id := range ids {
		lap.Set(i, i, float64(g.Node(id).Degree()))
	}
	lap.Sub(lap, adj)
	return lap, ids
}

// AlgebraicConnectivity returns the Fiedler value: the second-smallest
// eigenvalue of the graph Laplacian (spec.md §4.D.9). Requires 2 <= n <=
// ceiling, enforced by the caller per spec.md §5; returns a NumericError if
// the symmetric eigendecomposition fails to converge.
func AlgebraicConnectivity(g core.UndirectedGraph) (float64, error) {
	lap, ids := LaplacianMatrix(g)
	n := len(ids)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, lap.At(i, j))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return 0, core.NewNumericError("symmetric eigendecomposition did not converge", nil)
	}
	values := eig.Values(nil)
	if len(values) < 2 {
		return 0, core.NewPreconditionError("algebraic connectivity requires at least two nodes")
	}
	return values[1], nil
}

// EigenvectorCentrality estimates eigenvector centrality by power iteration
// on the adjacency matrix (spec.md §4.D.9), normalizing by the current max
// entry each step, until the L1 change between iterations falls below eps
// or maxIter is reached.
func EigenvectorCentrality(g core.UndirectedGraph, eps float64, maxIter int) map[core.NodeID]float64 {
	adj, ids := AdjacencyMatrix(g)
	n := len(ids)

	x0 := mat.NewDense(1, n, nil)
	x1 := mat.NewDense(1, n, nil)
	for i := 0; i < n; i++ {
		x1.Set(0, i, 1.0/float64(n))
	}

	diff := func(a, b *mat.Dense) float64 {
		sum := 0.0
		for i := 0; i < n; i++ {
			d := a.At(0, i) - b.At(0, i)
			if d < 0 {
				d = -d
			}
			sum += d
		}
		return sum
	}

	iter := 0
	for diff(x0, x1) > eps && iter < maxIter {
		x0 = mat.DenseCopyOf(x1)
		x1.Mul(x0, adj)
		max := 0.0
		for i := 0; i < n; i++ {
			if v := x1.At(0, i); v > max {
				max = v
			}
		}
		if max != 0 {
			x1.Scale(1/max, x1)
		}
		iter++
	}

	result := make(map[core.NodeID]float64, n)
	for i, id := range ids {
		result[id] = x1.At(0, i)
	}
	return result
}
