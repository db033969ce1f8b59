package neighbornet

// none is the sentinel "no link" value for optional node references
// (nbr/ch1/ch2), and also the id of the active-list head itself, so a
// prev/next value of none correctly reads as "points at the list head".
const none = 0

// netNode is one element of the agglomeration working set: either an
// original taxon (id in 1..=n) or a composite cluster synthesized during a
// 3-way/4-way join (id > n). prev/next thread the active doubly linked
// list; nbr pairs two active nodes into a size-2 cluster; ch1/ch2 record
// the two nodes a composite node represents, consumed during expansion.
//
// Ported from nnet_node.py's NetNode, with pointer fields replaced by pool
// indices.
type netNode struct {
	id            int
	nbr, ch1, ch2 int
	prev, next    int
	Sx, Rx        float64
}

// nodePool owns every netNode created during one Cycle computation,
// addressed by id (pool.nodes[id].id == id always). Index 0 is the
// active-list head sentinel. The backing array is preallocated to cap and
// never reallocated, so *netNode values returned by at remain valid for the
// pool's lifetime.
type nodePool struct {
	nodes []netNode
	cap   int
}

// newNodePool allocates a pool with room for up to maxNodes real nodes plus
// the head sentinel.
func newNodePool(maxNodes int) *nodePool {
	nodes := make([]netNode, 1, maxNodes+1)
	nodes[0] = netNode{id: 0, nbr: none, ch1: none, ch2: none, prev: none, next: none}
	return &nodePool{nodes: nodes, cap: maxNodes + 1}
}

// new allocates and returns the id of a fresh netNode.
//
// Panics if the pool's documented capacity (max(3, 3n-5)+1) is exceeded —
// this indicates a bug in the join bookkeeping, not a data-dependent
// failure, per the package's error-handling convention.
func (p *nodePool) new() int {
	if len(p.nodes) >= p.cap {
		panic("neighbornet: node pool exhausted beyond max(3, 3n-5)")
	}
	id := len(p.nodes)
	p.nodes = append(p.nodes, netNode{id: id, nbr: none, ch1: none, ch2: none, prev: none, next: none})
	return id
}

// at returns a pointer to the netNode with the given id.
func (p *nodePool) at(id int) *netNode { return &p.nodes[id] }

// workMatrix is the distance work-matrix M, a flat buffer addressed
// M[u*stride+v].
type workMatrix struct {
	stride int
	data   []float64
}

func newWorkMatrix(maxID int) *workMatrix {
	stride := maxID + 1
	return &workMatrix{stride: stride, data: make([]float64, stride*stride)}
}

func (m *workMatrix) at(i, j int) float64     { return m.data[i*m.stride+j] }
func (m *workMatrix) set(i, j int, v float64) { m.data[i*m.stride+j] = v }
