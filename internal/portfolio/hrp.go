package portfolio

import (
	"math"

	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
)

// HRPConfig carries the minimum per-asset observation requirement below
// which HRP falls back to equal weight.
type HRPConfig struct {
	MinPeriods int // default 60
}

// DefaultHRPConfig returns spec's default HRP parameters.
func DefaultHRPConfig() HRPConfig {
	return HRPConfig{MinPeriods: 60}
}

// linkageNode is one row of a single-linkage dendrogram: it merges two
// existing nodes (original assets are ids 0..n-1; merged clusters are
// appended with ids n, n+1, ...) at the given distance.
type linkageNode struct {
	left, right int
	distance    float64
	size        int
}

// HRPWeights implements López de Prado's Hierarchical Risk Parity:
// distance matrix from correlation, single-linkage clustering,
// quasi-diagonalization by dendrogram leaf order, and recursive
// bisection allocating inverse-variance-scaled weight down the tree.
// Falls back to equal weight across all symbols when any asset has
// fewer than cfg.MinPeriods observations.
func HRPWeights(symbols []string, returns [][]float64, cfg HRPConfig) map[string]float64 {
	n := len(symbols)
	if n == 0 {
		return map[string]float64{}
	}
	for _, r := range returns {
		if len(r) < cfg.MinPeriods {
			return equalWeight(symbols)
		}
	}

	cov := numerics.Covariance(returns)
	corr := correlationFromCovariance(cov)
	dist := distanceMatrix(corr)

	nodes := singleLinkage(dist, n)
	order := quasiDiagOrder(nodes, n)

	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	recursiveBisection(cov, order, w)

	out := make(map[string]float64, n)
	for i, sym := range symbols {
		out[sym] = w[i]
	}
	return out
}

func equalWeight(symbols []string) map[string]float64 {
	out := make(map[string]float64, len(symbols))
	if len(symbols) == 0 {
		return out
	}
	w := 1.0 / float64(len(symbols))
	for _, s := range symbols {
		out[s] = w
	}
	return out
}

func correlationFromCovariance(cov numerics.Matrix) numerics.Matrix {
	n := len(cov)
	corr := make(numerics.Matrix, n)
	for i := range corr {
		corr[i] = make([]float64, n)
	}
	sd := make([]float64, n)
	for i := 0; i < n; i++ {
		sd[i] = math.Sqrt(math.Max(cov[i][i], 0))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if sd[i] <= 0 || sd[j] <= 0 {
				corr[i][j] = 0
				continue
			}
			corr[i][j] = numerics.Clip(cov[i][j]/(sd[i]*sd[j]), -1, 1)
		}
	}
	return corr
}

// distanceMatrix computes d_ij = sqrt(0.5*(1-rho_ij)), a proper metric
// derived from correlation.
func distanceMatrix(corr numerics.Matrix) numerics.Matrix {
	n := len(corr)
	d := make(numerics.Matrix, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d[i][j] = math.Sqrt(math.Max(0, 0.5*(1-corr[i][j])))
		}
	}
	return d
}

// singleLinkage performs agglomerative single-linkage clustering over n
// original points given their pairwise distance matrix, returning the
// n-1 merge steps in merge order (mirroring scipy's linkage matrix
// shape without the inessential fourth column).
func singleLinkage(dist numerics.Matrix, n int) []linkageNode {
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}
	clusterDist := make(map[[2]int]float64)
	key := func(a, b int) [2]int {
		if a > b {
			a, b = b, a
		}
		return [2]int{a, b}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			clusterDist[key(i, j)] = dist[i][j]
		}
	}
	members := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		members[i] = []int{i}
	}

	var nodes []linkageNode
	nextID := n

	for len(active) > 1 {
		bestI, bestJ := 0, 1
		bestD := math.Inf(1)
		for ai := 0; ai < len(active); ai++ {
			for aj := ai + 1; aj < len(active); aj++ {
				a, b := active[ai], active[aj]
				if d, ok := clusterDist[key(a, b)]; ok && d < bestD {
					bestD, bestI, bestJ = d, ai, aj
				}
			}
		}
		a, b := active[bestI], active[bestJ]

		merged := nextID
		nextID++
		members[merged] = append(append([]int{}, members[a]...), members[b]...)

		newActive := make([]int, 0, len(active)-1)
		for idx, c := range active {
			if idx != bestI && idx != bestJ {
				newActive = append(newActive, c)
			}
		}
		for _, c := range newActive {
			// Single linkage: distance to the merged cluster is the min of
			// the distances to its two constituents.
			da, okA := clusterDist[key(a, c)]
			db, okB := clusterDist[key(b, c)]
			var d float64
			switch {
			case okA && okB:
				d = math.Min(da, db)
			case okA:
				d = da
			case okB:
				d = db
			}
			clusterDist[key(merged, c)] = d
		}
		newActive = append(newActive, merged)
		active = newActive

		nodes = append(nodes, linkageNode{left: a, right: b, distance: bestD, size: len(members[merged])})
	}
	return nodes
}

// quasiDiagOrder reconstructs the leaf order (original asset indices)
// implied by the dendrogram, the standard "sort clustered assets" step
// that places correlated assets adjacent to each other.
func quasiDiagOrder(nodes []linkageNode, n int) []int {
	if len(nodes) == 0 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		return order
	}
	var expand func(id int) []int
	rootID := n + len(nodes) - 1
	merges := make(map[int]linkageNode, len(nodes))
	for i, node := range nodes {
		merges[n+i] = node
	}
	expand = func(id int) []int {
		if id < n {
			return []int{id}
		}
		node := merges[id]
		return append(expand(node.left), expand(node.right)...)
	}
	return expand(rootID)
}

// clusterVariance computes the inverse-variance-portfolio variance of the
// sub-covariance restricted to idx.
func clusterVariance(cov numerics.Matrix, idx []int) float64 {
	ivp := make([]float64, len(idx))
	var total float64
	for i, a := range idx {
		v := cov[a][a]
		if v <= 0 {
			v = volFloor
		}
		ivp[i] = 1 / v
		total += ivp[i]
	}
	if total <= 0 {
		return 0
	}
	for i := range ivp {
		ivp[i] /= total
	}
	var variance float64
	for i, a := range idx {
		for j, b := range idx {
			variance += ivp[i] * ivp[j] * cov[a][b]
		}
	}
	return variance
}

// recursiveBisection splits the quasi-diagonalized order in half at each
// level, allocating weight between the two halves by their relative
// inverse-variance-portfolio variance, and recurses until every cluster
// is a single asset.
func recursiveBisection(cov numerics.Matrix, order []int, w []float64) {
	clusters := [][]int{order}
	for len(clusters) > 0 {
		var next [][]int
		for _, c := range clusters {
			if len(c) <= 1 {
				continue
			}
			mid := len(c) / 2
			left := c[:mid]
			right := c[mid:]

			varLeft := clusterVariance(cov, left)
			varRight := clusterVariance(cov, right)
			alpha := 0.5
			if varLeft+varRight > 0 {
				alpha = 1 - varLeft/(varLeft+varRight)
			}
			for _, a := range left {
				w[a] *= alpha
			}
			for _, a := range right {
				w[a] *= 1 - alpha
			}
			next = append(next, left, right)
		}
		clusters = next
	}
}
