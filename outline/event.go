package outline

import "github.com/husonlab/splitnet/split"

// Event marks a split's arc opening (outbound, is-start) or closing
// (inbound, is-end) at a cycle position, for the boundary sweep in Sweep.
// Ported from SplitsPy's Event class in event.py.
type Event struct {
	s        int // index into the Family passed to Sweep
	weight   float64
	startPos int
	endPos   int
	outbound bool
}

// NewEvent builds the open (outbound=true) or close (outbound=false) event
// for splits[s], whose arc occupies splits[s].Interval(cycle).
func NewEvent(s int, cycle split.Cycle, splits split.Family, outbound bool) (Event, error) {
	p, q, err := splits[s].Interval(cycle)
	if err != nil {
		return Event{}, outlineErrorf("NewEvent", err)
	}
	return Event{s: s, weight: splits[s].Weight(), startPos: p, endPos: q, outbound: outbound}, nil
}

// S returns the split index this event refers to.
func (e Event) S() int { return e.s }

// Weight returns the split's weight.
func (e Event) Weight() float64 { return e.weight }

// StartPos returns the arc's starting cycle position.
func (e Event) StartPos() int { return e.startPos }

// EndPos returns the arc's ending cycle position.
func (e Event) EndPos() int { return e.endPos }

// IsStart reports whether this is the arc-opening event.
func (e Event) IsStart() bool { return e.outbound }

// IsEnd reports whether this is the arc-closing event.
func (e Event) IsEnd() bool { return !e.outbound }

// RadixSort orders outbound (opening) events by ascending start position
// (ties broken by descending end position — larger arcs open earlier) and
// inbound (closing) events by ascending end position (ties broken by
// descending start position — larger arcs close later), then merges the two
// streams so that, at any tie on position, an outbound event with a
// strictly smaller start position than an inbound event's end position+1
// is emitted first. Ported from event.py's radix_sort/__counting_sort/__merge.
func RadixSort(nTax int, outbound, inbound []Event) []Event {
	outbound = countingSort(outbound, nTax, func(e Event) int { return nTax - e.EndPos() })
	outbound = countingSort(outbound, nTax, func(e Event) int { return e.StartPos() })
	inbound = countingSort(inbound, nTax, func(e Event) int { return nTax - e.StartPos() })
	inbound = countingSort(inbound, nTax, func(e Event) int { return e.EndPos() })

	return mergeEvents(outbound, inbound)
}

// countingSort is a stable counting sort over key range 0..=maxKey.
func countingSort(events []Event, maxKey int, key func(Event) int) []Event {
	if len(events) <= 1 {
		return events
	}

	key2pos := make([]int, maxKey+1)
	var e Event
	for _, e = range events {
		key2pos[key(e)]++
	}

	pos := 0
	var i int
	for i = 0; i < len(key2pos); i++ {
		add := key2pos[i]
		key2pos[i] = pos
		pos += add
	}

	out := make([]Event, len(events))
	for _, e = range events {
		k := key(e)
		out[key2pos[k]] = e
		key2pos[k]++
	}

	return out
}

// mergeEvents interleaves outbound and inbound in cycle-walk order: an
// outbound event is taken whenever its start position precedes the current
// inbound event's end position + 1, else the inbound event is taken.
func mergeEvents(outbound, inbound []Event) []Event {
	ob, ib := 0, 0
	events := make([]Event, 0, len(outbound)+len(inbound))

	for ob < len(outbound) && ib < len(inbound) {
		if outbound[ob].StartPos() < inbound[ib].EndPos()+1 {
			events = append(events, outbound[ob])
			ob++
		} else {
			events = append(events, inbound[ib])
			ib++
		}
	}
	for ob < len(outbound) {
		events = append(events, outbound[ob])
		ob++
	}
	for ib < len(inbound) {
		events = append(events, inbound[ib])
		ib++
	}
	return events
}
