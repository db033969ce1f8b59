// Package outline_test exercises event ordering and the outline sweep.
package outline_test

import (
	"testing"

	"github.com/husonlab/splitnet/outline"
	"github.com/husonlab/splitnet/split"
	"github.com/stretchr/testify/require"
)

func buildCircularSplits(t *testing.T, cycle split.Cycle, n int) split.Family {
	t.Helper()
	var fam split.Family
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if i == 1 && j == n {
				continue
			}
			sp, err := split.CycSplit(cycle, i+1, j, float64(j-i))
			require.NoError(t, err)
			fam = append(fam, sp)
		}
	}
	return fam
}

func TestRadixSort_OrdersByStartThenEnd(t *testing.T) {
	n := 5
	cycle := split.Cycle{0, 1, 2, 3, 4, 5}
	splits := buildCircularSplits(t, cycle, n)

	var outbound, inbound []outline.Event
	for s := range splits {
		ob, err := outline.NewEvent(s, cycle, splits, true)
		require.NoError(t, err)
		ib, err := outline.NewEvent(s, cycle, splits, false)
		require.NoError(t, err)
		outbound = append(outbound, ob)
		inbound = append(inbound, ib)
	}

	events := outline.RadixSort(n, outbound, inbound)
	require.Len(t, events, len(outbound)+len(inbound))

	// Opening events come out by ascending start, then descending end;
	// closing events by ascending end, then descending start.
	var prevOut, prevIn *outline.Event
	for i := range events {
		e := events[i]
		if e.IsStart() {
			if prevOut != nil {
				require.True(t, prevOut.StartPos() < e.StartPos() ||
					(prevOut.StartPos() == e.StartPos() && prevOut.EndPos() >= e.EndPos()))
			}
			prevOut = &events[i]
		} else {
			if prevIn != nil {
				require.True(t, prevIn.EndPos() < e.EndPos() ||
					(prevIn.EndPos() == e.EndPos() && prevIn.StartPos() >= e.StartPos()))
			}
			prevIn = &events[i]
		}
	}
}

func TestRadixSort_TrivialInput(t *testing.T) {
	events := outline.RadixSort(3, nil, nil)
	require.Empty(t, events)
}

func TestRadixSort_SingleEventEachSide(t *testing.T) {
	cycle := split.Cycle{0, 1, 2, 3}
	splits := split.Family{}
	sp, err := split.CycSplit(cycle, 2, 2, 1.0)
	require.NoError(t, err)
	splits = append(splits, sp)

	ob, err := outline.NewEvent(0, cycle, splits, true)
	require.NoError(t, err)
	ib, err := outline.NewEvent(0, cycle, splits, false)
	require.NoError(t, err)

	events := outline.RadixSort(3, []outline.Event{ob}, []outline.Event{ib})
	require.Len(t, events, 2)
}
