package train

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/SeamusWaldron/cubescan"
)

// node is a training point stored in the kd-tree.
type node struct {
	coords [3]float64
	color  cubescan.Color
}

func (n node) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(node)
	return n.coords[d] - q.coords[d]
}

func (n node) Dims() int { return 3 }

func (n node) Distance(c kdtree.Comparable) float64 {
	q := c.(node)
	var sum float64
	for i := 0; i < 3; i++ {
		d := n.coords[i] - q.coords[i]
		sum += d * d
	}
	return sum
}

// nodes implements kdtree.Interface over a slice of training points.
type nodes []node

func (ns nodes) Index(i int) kdtree.Comparable         { return ns[i] }
func (ns nodes) Len() int                              { return len(ns) }
func (ns nodes) Slice(start, end int) kdtree.Interface { return ns[start:end] }
func (ns nodes) Pivot(d kdtree.Dim) int {
	return plane{nodes: ns, Dim: d}.Pivot()
}

// plane is a helper for sorting nodes along one dimension.
type plane struct {
	kdtree.Dim
	nodes
}

func (p plane) Less(i, j int) bool {
	return p.nodes[i].coords[p.Dim] < p.nodes[j].coords[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.nodes = p.nodes[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i]
}

// KNN votes on the color of a point with its k nearest training samples.
// k is a tenth of the training set, rounded up, so the vote counts stay
// comparable across training runs of different sizes.
type KNN struct {
	tree *kdtree.Tree
	k    int
}

// NewKNN builds the nearest-neighbour model over preprocessed samples.
func NewKNN(points []Point) *KNN {
	ns := make(nodes, len(points))
	for i, p := range points {
		ns[i] = node{coords: p.Coords, color: p.Color}
	}
	k := (len(points) + 9) / 10
	return &KNN{tree: kdtree.New(ns, true), k: k}
}

// K returns the neighbour count used for voting.
func (m *KNN) K() int { return m.k }

// Votes returns, per color, how many of the k nearest training samples
// carry it. The counts sum to k.
func (m *KNN) Votes(coords [3]float64) [cubescan.NumColors]uint16 {
	keeper := kdtree.NewNKeeper(m.k)
	m.tree.NearestSet(keeper, node{coords: coords})

	var votes [cubescan.NumColors]uint16
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil || math.IsInf(cd.Dist, 1) {
			continue
		}
		votes[cd.Comparable.(node).color]++
	}
	return votes
}

// Classify returns the colors ranked by vote count for a preprocessed
// point, best first.
func (m *KNN) Classify(coords [3]float64) []cubescan.Color {
	votes := m.Votes(coords)
	order := make([]cubescan.Color, cubescan.NumColors)
	for c := range order {
		order[c] = cubescan.Color(c)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return votes[order[i]] > votes[order[j]]
	})
	return order
}
