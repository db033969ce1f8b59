package outline

// Node is a single point in the outline layout: a 2-D position and an
// optional comma-joined label of the taxa that collapse onto it. IDs are
// assigned sequentially starting at 1, mirroring graph.py's Node numbering.
// Info is an opaque free-form payload round-tripped verbatim into
// netio.WriteTGF's "{info}" field, mirroring graph.py's Node.info; Sweep
// never sets it itself, so it is empty unless a caller attaches one
// (cmd/phylonet uses the origin node's Info to carry canvas parameters).
type Node struct {
	ID    int
	Label string
	Pos   [2]float64
	Info  string
}

// Edge connects two Node IDs with a weight (the split weight that produced
// it, or 1.0 when SweepOption WithUseWeights is disabled) and records which
// split index (into the Family passed to Sweep) it corresponds to. Info
// mirrors Node.Info: an opaque payload round-tripped into netio.WriteTGF's
// "{info}" field, never set by Sweep itself.
type Edge struct {
	ID       int
	Src, Tar int
	Weight   float64
	SplitIdx int
	Info     string
}

// Graph is a single-owner, single-threaded node/edge container built once
// by Sweep and then only read (by netio.WriteTGF, by tests, or by the
// caller). It carries no locks: see DESIGN.md for why synchronization
// would be pure overhead here.
//
// Adapted from SplitsPy's Graph class in graph.py, generalized
// from Python's linked Node/Edge objects to Go's index-addressed slices —
// the same generalization neighbornet's node pool performs over
// nnet_node.py's pointer-linked nodes.
type Graph struct {
	nodes []*Node
	edges []*Edge
	adj   map[int][]int // node ID -> indices into edges touching it
}

// NewGraph returns an empty outline graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int][]int)}
}

// NewNode appends a new node at pos and returns it.
func (g *Graph) NewNode(pos [2]float64) *Node {
	v := &Node{ID: len(g.nodes) + 1, Pos: pos}
	g.nodes = append(g.nodes, v)
	return v
}

// NewEdge appends a new edge from src to tar with the given weight and
// split index, recording it in both endpoints' adjacency.
func (g *Graph) NewEdge(src, tar *Node, weight float64, splitIdx int) *Edge {
	e := &Edge{ID: len(g.edges) + 1, Src: src.ID, Tar: tar.ID, Weight: weight, SplitIdx: splitIdx}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[src.ID] = append(g.adj[src.ID], idx)
	g.adj[tar.ID] = append(g.adj[tar.ID], idx)
	return e
}

// SetInfo attaches an opaque payload to v, round-tripped by
// netio.WriteTGF into the node's "{info}" field.
func (v *Node) SetInfo(info string) { v.Info = info }

// SetInfo attaches an opaque payload to e, round-tripped by
// netio.WriteTGF into the edge's "{info}" field.
func (e *Edge) SetInfo(info string) { e.Info = info }

// IsAdjacent reports whether any edge connects v to other.
func (g *Graph) IsAdjacent(v, other *Node) bool {
	var idx int
	for _, idx = range g.adj[v.ID] {
		e := g.edges[idx]
		if e.Src == other.ID || e.Tar == other.ID {
			return true
		}
	}
	return false
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges }

// NNodes reports the number of nodes.
func (g *Graph) NNodes() int { return len(g.nodes) }

// NEdges reports the number of edges.
func (g *Graph) NEdges() int { return len(g.edges) }

// BBox returns (xMin, xMax, yMin, yMax) over every node's position. Returns
// all-zero bounds for an empty graph.
func (g *Graph) BBox() (xMin, xMax, yMin, yMax float64) {
	if len(g.nodes) == 0 {
		return 0, 0, 0, 0
	}
	xMin, xMax = g.nodes[0].Pos[0], g.nodes[0].Pos[0]
	yMin, yMax = g.nodes[0].Pos[1], g.nodes[0].Pos[1]
	var v *Node
	for _, v = range g.nodes[1:] {
		if v.Pos[0] < xMin {
			xMin = v.Pos[0]
		}
		if v.Pos[0] > xMax {
			xMax = v.Pos[0]
		}
		if v.Pos[1] < yMin {
			yMin = v.Pos[1]
		}
		if v.Pos[1] > yMax {
			yMax = v.Pos[1]
		}
	}
	return xMin, xMax, yMin, yMax
}
