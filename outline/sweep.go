package outline

import (
	"math"
	"math/big"
	"strings"

	"github.com/husonlab/splitnet/split"
)

// sweepConfig holds Sweep's functional-option state.
type sweepConfig struct {
	rooted    bool
	useWeight bool
}

// SweepOption configures Sweep before it runs.
type SweepOption func(*sweepConfig)

// WithRooted marks the outline as rooted, changing the leaf-angle spread
// from a full 360 degrees to a narrower cone (per outline_algo.py's
// compute: 160 degrees when rooted).
func WithRooted() SweepOption {
	return func(c *sweepConfig) { c.rooted = true }
}

// WithUseWeights controls whether split weights (true, the default) or a
// uniform distance of 1.0 (false) drive node placement and edge weight.
func WithUseWeights(use bool) SweepOption {
	return func(c *sweepConfig) { c.useWeight = use }
}

// Sweep lays out the planar outline diagram for splits arranged around
// cycle, returning the resulting Graph and the per-cycle-position leaf
// angles (index 0 unused, matching Cycle's 1-based convention). Rooting
// must be applied to labels/cycle/splits by the caller beforehand (via
// RootMidpoint/RootOutGroup + applyRoot); Sweep itself only performs the
// boundary-event walk. Ported from
// SplitsPy's outline_algo.py compute (minus its
// rooting branch, factored out to root.go).
func Sweep(labels []string, cycle split.Cycle, splits split.Family, opts ...SweepOption) (*Graph, []float64, error) {
	if len(labels) == 0 {
		return nil, nil, outlineErrorf("Sweep", ErrEmptyLabels)
	}
	nTax := len(labels)
	if cycle.N() != nTax {
		return nil, nil, outlineErrorf("Sweep", ErrLabelCountMismatch)
	}

	cfg := &sweepConfig{useWeight: true}
	var opt SweepOption
	for _, opt = range opts {
		opt(cfg)
	}

	splits = addTrivial(nTax, cycle, splits)

	totalAngle := 360.0
	if cfg.rooted {
		totalAngle = 160.0
	}
	angles := leafAngles(nTax, totalAngle)
	splitAngle, err := computeAngles(angles, cycle, splits)
	if err != nil {
		return nil, nil, outlineErrorf("Sweep", err)
	}

	events, err := setupEvents(nTax, cycle, splits)
	if err != nil {
		return nil, nil, outlineErrorf("Sweep", err)
	}

	graph := NewGraph()
	xy := [2]float64{0, 0}
	start := graph.NewNode(xy)

	currentSplits := new(big.Int)
	splits2node := map[string]*Node{currentSplits.String(): start}

	taxaFound := make([]bool, nTax+1)

	var prevEvent *Event
	prevNode := start

	var e Event
	for _, e = range events {
		cs := new(big.Int).Set(currentSplits)
		if e.IsStart() {
			cs.SetBit(cs, e.S(), 1)
			dist := 1.0
			if cfg.useWeight {
				dist = e.Weight()
			}
			xy = translate(xy, splitAngle[e.S()], dist)
		} else {
			cs.SetBit(cs, e.S(), 0)
			dist := 1.0
			if cfg.useWeight {
				dist = e.Weight()
			}
			xy = translate(xy, splitAngle[e.S()]+180.0, dist)
		}
		currentSplits = cs

		key := currentSplits.String()
		v, found := splits2node[key]
		if !found {
			v = graph.NewNode(xy)
			splits2node[key] = v
		} else {
			xy = v.Pos
		}

		if !graph.IsAdjacent(prevNode, v) {
			weight := 1.0
			if cfg.useWeight {
				weight = e.Weight()
			}
			graph.NewEdge(prevNode, v, weight, e.S())
		}

		if prevEvent != nil && e.S() == prevEvent.S() {
			part := splits[e.S()].PartNotContaining(cycle[1])
			var lab []string
			var t split.Taxon
			for _, t = range part {
				lab = append(lab, labels[t-1])
				taxaFound[t] = true
			}
			prevNode.Label = strings.Join(lab, ",")
		}

		prevNode = v
		eCopy := e
		prevEvent = &eCopy
	}

	var remaining []string
	var t int
	for t = 1; t <= nTax; t++ {
		if !taxaFound[t] {
			remaining = append(remaining, labels[t-1])
		}
	}
	if len(remaining) > 0 {
		start.Label = strings.Join(remaining, ",")
	}

	return graph, angles, nil
}

// addTrivial appends a zero-weight trivial split for every taxon not
// already isolated by an existing trivial split in splits, ensuring every
// leaf gets its own pendant edge in the outline. Ported from
// outline_algo.py's __add_trivial.
func addTrivial(nTax int, cycle split.Cycle, splits split.Family) split.Family {
	seen := make([]bool, nTax+1)
	var sp *split.Split
	for _, sp = range splits {
		if len(sp.Part1()) == 1 {
			seen[sp.Part1()[0]] = true
		} else if len(sp.Part2()) == 1 {
			seen[sp.Part2()[0]] = true
		}
	}

	nSeen := 0
	var t int
	for t = 1; t <= nTax; t++ {
		if seen[t] {
			nSeen++
		}
	}
	if nSeen >= nTax {
		return splits
	}

	out := make(split.Family, len(splits), len(splits)+nTax)
	copy(out, splits)
	var i int
	for i = 1; i <= nTax; i++ {
		if !seen[cycle[i]] {
			triv, err := split.CycSplit(cycle, i, i, 0)
			if err == nil {
				out = append(out, triv)
			}
		}
	}
	return out
}

// leafAngles returns, for each cycle position 1..=nTax, the angle (degrees)
// at which that leaf's outward direction points, spread evenly across
// totalAngle and centered at 270 degrees. Index 0 is unused filler. Ported
// from outline_algo.py's __leaf_angles.
func leafAngles(nTax int, totalAngle float64) []float64 {
	angles := make([]float64, nTax+1)
	var i int
	for i = 1; i <= nTax; i++ {
		angles[i] = totalAngle*(float64(i)-1.0)/float64(nTax) + 270.0 - 0.5*totalAngle
	}
	return angles
}

// computeAngles returns, for each split, the bisecting angle of its
// cycle-position interval. Ported from outline_algo.py's __compute_angles.
func computeAngles(angles []float64, cycle split.Cycle, splits split.Family) ([]float64, error) {
	out := make([]float64, len(splits))
	var i int
	var sp *split.Split
	for i, sp = range splits {
		a, b, err := sp.Interval(cycle)
		if err != nil {
			return nil, err
		}
		out[i] = modulo360(0.5 * (angles[a] + angles[b]))
	}
	return out, nil
}

func modulo360(angle float64) float64 {
	for angle >= 360.0 {
		angle -= 360.0
	}
	for angle < 0.0 {
		angle += 360.0
	}
	return angle
}

func setupEvents(nTax int, cycle split.Cycle, splits split.Family) ([]Event, error) {
	outbound := make([]Event, len(splits))
	inbound := make([]Event, len(splits))
	var s int
	for s = range splits {
		ob, err := NewEvent(s, cycle, splits, true)
		if err != nil {
			return nil, err
		}
		ib, err := NewEvent(s, cycle, splits, false)
		if err != nil {
			return nil, err
		}
		outbound[s] = ob
		inbound[s] = ib
	}
	return RadixSort(nTax, outbound, inbound), nil
}

// translate moves xy by distance along angle (degrees), snapping
// near-zero components to exactly zero. Ported from outline_algo.py's
// __translate.
func translate(xy [2]float64, angle, distance float64) [2]float64 {
	dx := distance * math.Cos(math.Pi/180.0*angle)
	dy := distance * math.Sin(math.Pi/180.0*angle)
	if math.Abs(dx) < 0.000001 {
		dx = 0.0
	}
	if math.Abs(dy) < 0.000001 {
		dy = 0.0
	}
	return [2]float64{xy[0] + dx, xy[1] + dy}
}
