package tuple

import (
	"sort"

	"github.com/dmoose/rsml/pkg/value"
)

// keypoint is the type-erased intermediate form shared by colorseq and
// numseq while the time axis is normalized (§4.E).
type keypoint struct {
	hasTime  bool
	time     float64
	value    value.Value
	envelope float64
}

// parseKeypointArgs splits the annotation's argument list into keypoint
// entries: each argument is either a bare value (untimed) or a
// TupleData of (time, value[, envelope]).
func parseKeypointArgs(args []value.Value) []keypoint {
	out := make([]keypoint, len(args))
	for i, arg := range args {
		if td, ok := arg.(value.TupleData); ok && len(td) >= 2 {
			t, _ := asNumber(td[0])
			kp := keypoint{hasTime: true, time: t, value: td[1]}
			if len(td) >= 3 {
				kp.envelope, _ = asNumber(td[2])
			}
			out[i] = kp
			continue
		}
		out[i] = keypoint{value: arg}
	}
	return out
}

// completeKeypoints implements the normalization algorithm of §4.E:
// single-input shortcut, stable time-sort of explicit keypoints,
// proportional interpolation of untimed slots, and t=0/t=1 boundary
// insertion.
func completeKeypoints(entries []keypoint) []keypoint {
	if len(entries) == 1 {
		return []keypoint{
			{hasTime: true, time: 0, value: entries[0].value},
			{hasTime: true, time: 1, value: entries[0].value},
		}
	}

	n := len(entries)
	final := make([]keypoint, n)
	var timedIdx []int
	for i, e := range entries {
		if e.hasTime {
			timedIdx = append(timedIdx, i)
		}
	}
	timed := make([]keypoint, len(timedIdx))
	for k, i := range timedIdx {
		timed[k] = entries[i]
	}
	sort.SliceStable(timed, func(a, b int) bool {
		// NaN compares as less, matching the documented stable-sort tie
		// rule for malformed time values.
		ta, tb := timed[a].time, timed[b].time
		if ta != ta {
			return tb == tb
		}
		if tb != tb {
			return false
		}
		return ta < tb
	})
	for k, i := range timedIdx {
		final[i] = keypoint{hasTime: true, time: timed[k].time, value: timed[k].value, envelope: timed[k].envelope}
	}
	for i, e := range entries {
		if !e.hasTime {
			final[i] = e
		}
	}

	for i := range final {
		if final[i].hasTime {
			continue
		}
		startIdx, startTime := 0, 0.0
		for j := i - 1; j >= 0; j-- {
			if final[j].hasTime {
				startIdx, startTime = j, final[j].time
				break
			}
		}
		endIdx, endTime := n-1, 1.0
		for j := i + 1; j < n; j++ {
			if final[j].hasTime {
				endIdx, endTime = j, final[j].time
				break
			}
		}
		t := startTime
		if endIdx != startIdx {
			t = startTime + (endTime-startTime)*float64(i-startIdx)/float64(endIdx-startIdx)
		}
		final[i].hasTime = true
		final[i].time = t
	}

	if len(final) == 0 {
		return final
	}
	if final[0].time != 0 {
		final = append([]keypoint{{hasTime: true, time: 0, value: final[0].value}}, final...)
	}
	if final[len(final)-1].time != 1 {
		final = append(final, keypoint{hasTime: true, time: 1, value: final[len(final)-1].value})
	}
	return final
}

func colorseqAnnotation(args []value.Value) value.Value {
	entries := parseKeypointArgs(args)
	final := completeKeypoints(entries)
	kps := make([]value.ColorSequenceKeypoint, len(final))
	for i, e := range final {
		c, _ := asColor3(e.value)
		kps[i] = value.ColorSequenceKeypoint{Time: e.time, Value: c}
	}
	return value.ColorSequence{Keypoints: kps}
}

func numseqAnnotation(args []value.Value) value.Value {
	entries := parseKeypointArgs(args)
	final := completeKeypoints(entries)
	kps := make([]value.NumberSequenceKeypoint, len(final))
	for i, e := range final {
		n, _ := asNumber(e.value)
		kps[i] = value.NumberSequenceKeypoint{Time: e.time, Value: n, Envelope: e.envelope}
	}
	return value.NumberSequence{Keypoints: kps}
}
