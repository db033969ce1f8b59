package split

import "math/big"

// Split represents a circular bipartition {part1, part2} of 1..=n together
// with a non-negative weight. part1 is stored as a *big.Int membership
// bitset (bit t set iff taxon t is in part1); part2 is always the derived
// complement within 1..=n, never stored, so part1 ∪ part2 == {1..n} and
// part1 ∩ part2 == ∅ hold by construction.
//
// Ported from SplitsPy's Split class in basic_split.py.
type Split struct {
	part1       *big.Int
	n           int
	weight      float64
	confidence  float64
	probability float64
}

// NewSplit constructs a Split over taxa 1..=n whose part1 is exactly the
// taxa listed in part1Taxa. Returns ErrInvalidTaxonCount if n <= 0,
// ErrTaxonOutOfRange if any taxon falls outside 1..=n, and ErrEmptyPart if
// part1Taxa is empty or covers all of 1..=n (a split's sides must both be
// non-empty).
func NewSplit(part1Taxa []Taxon, n int, weight float64) (*Split, error) {
	if n <= 0 {
		return nil, splitErrorf("NewSplit", ErrInvalidTaxonCount)
	}
	if len(part1Taxa) == 0 || len(part1Taxa) >= n {
		return nil, splitErrorf("NewSplit", ErrEmptyPart)
	}

	bits := new(big.Int)
	var t Taxon
	for _, t = range part1Taxa {
		if t < 1 || int(t) > n {
			return nil, splitErrorf("NewSplit", ErrTaxonOutOfRange)
		}
		bits.SetBit(bits, int(t), 1)
	}

	return &Split{part1: bits, n: n, weight: weight, confidence: -1.0, probability: -1.0}, nil
}

// N returns the number of taxa the split is defined over.
func (s *Split) N() int { return s.n }

// Weight returns the split's current weight.
func (s *Split) Weight() float64 { return s.weight }

// SetWeight replaces the split's weight.
func (s *Split) SetWeight(w float64) { s.weight = w }

// Confidence returns the split's confidence value, -1 if unset.
func (s *Split) Confidence() float64 { return s.confidence }

// SetConfidence replaces the split's confidence value.
func (s *Split) SetConfidence(c float64) { s.confidence = c }

// Probability returns the split's probability value, -1 if unset.
func (s *Split) Probability() float64 { return s.probability }

// SetProbability replaces the split's probability value.
func (s *Split) SetProbability(p float64) { s.probability = p }

// inPart1 reports whether taxon t is a member of part1.
func (s *Split) inPart1(t Taxon) bool {
	return s.part1.Bit(int(t)) == 1
}

// InPart1 reports whether taxon t is a member of part1. Exported for
// callers (such as outline.applyRoot) that need to mirror a taxon's side
// when rewriting a split over an expanded taxon set.
func (s *Split) InPart1(t Taxon) bool {
	return s.inPart1(t)
}

// ExpandWithTaxon returns a copy of s defined over n+1 taxa (the new taxon
// numbered s.N()+1), with the new taxon placed into part1 if intoPart1 is
// true, else left out of part1 (and so implicitly in part2). Weight,
// confidence, and probability are copied unchanged; callers typically call
// SetWeight afterward. Used by outline.applyRoot to insert a synthetic root
// taxon into every existing split, mirroring
// basic_split.py's deepcopy + part1()/part2().add(root_id) pattern.
func (s *Split) ExpandWithTaxon(intoPart1 bool) *Split {
	newN := s.n + 1
	bits := new(big.Int).Set(s.part1)
	if intoPart1 {
		bits.SetBit(bits, newN, 1)
	}
	return &Split{part1: bits, n: newN, weight: s.weight, confidence: s.confidence, probability: s.probability}
}

// Part1 returns the taxa on the part1 side, in ascending order.
func (s *Split) Part1() []Taxon {
	return s.partTaxa(true)
}

// Part2 returns the taxa on the part2 (complement) side, in ascending order.
func (s *Split) Part2() []Taxon {
	return s.partTaxa(false)
}

func (s *Split) partTaxa(wantPart1 bool) []Taxon {
	out := make([]Taxon, 0, s.n)
	var t int
	for t = 1; t <= s.n; t++ {
		if (s.part1.Bit(t) == 1) == wantPart1 {
			out = append(out, Taxon(t))
		}
	}
	return out
}

// PartContaining returns the side of the split that contains taxon.
func (s *Split) PartContaining(taxon Taxon) []Taxon {
	return s.partTaxa(s.inPart1(taxon))
}

// PartNotContaining returns the side of the split that does not contain
// taxon.
func (s *Split) PartNotContaining(taxon Taxon) []Taxon {
	return s.partTaxa(!s.inPart1(taxon))
}

// Separates reports whether exactly one of tax1, tax2 is in part1 — i.e.
// whether this split separates the two taxa.
func (s *Split) Separates(tax1, tax2 Taxon) bool {
	return s.inPart1(tax1) != s.inPart1(tax2)
}

// Size returns the size of the smaller side of the split.
func (s *Split) Size() int {
	count := 0
	var t int
	for t = 1; t <= s.n; t++ {
		if s.part1.Bit(t) == 1 {
			count++
		}
	}
	if s.n-count < count {
		return s.n - count
	}
	return count
}

// IsTrivial reports whether this split separates a single leaf from the
// rest (Size() == 1).
func (s *Split) IsTrivial() bool {
	return s.Size() == 1
}

// Interval returns the cycle-position arc (p, q), 1 <= p <= q <= n, occupied
// by PartNotContaining(cycle[1]) — the side of the split that does not
// contain the taxon at cycle position 1. Ported from basic_split.py's
// interval(cycle).
func (s *Split) Interval(cycle Cycle) (p, q int, err error) {
	if err = cycle.Validate(s.n); err != nil {
		return 0, 0, splitErrorf("Split.Interval", err)
	}

	// targetIsPart1 is true when the side not containing cycle[1] is part1.
	targetIsPart1 := !s.inPart1(cycle[1])
	a, b := 0, 0
	var i int
	for i = 1; i <= s.n; i++ {
		if s.inPart1(cycle[i]) != targetIsPart1 {
			continue
		}
		if a == 0 {
			a = i
		}
		b = i
	}

	return a, b, nil
}
