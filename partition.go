package lineart

import (
	"iter"
	"math"
)

// Partition splits l into ceil(|l| / maxLength) lines of equal length. Lines no
// longer than maxLength, including zero-length lines, are returned as is.
//
// The pieces share their endpoints exactly: the first starts at l.P0, the last
// ends at l.P1, and each piece starts where the previous one ended.
// maxLength must be positive.
func Partition(l Line, maxLength float64) []Line {
	length := l.Length()
	if length <= maxLength {
		return []Line{l}
	}
	n := int(math.Ceil(length / maxLength))
	out := make([]Line, n)
	prev := l.P0
	for i := range n {
		var next Point
		if i == n-1 {
			next = l.P1
		} else {
			next = l.Eval(float64(i+1) / float64(n))
		}
		out[i] = Line{prev, next}
		prev = next
	}
	return out
}

// PartitionPath applies [Partition] to every line of seq, preserving order.
func PartitionPath(seq iter.Seq[Line], maxLength float64) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for l := range seq {
			for _, piece := range Partition(l, maxLength) {
				if !yield(piece) {
					return
				}
			}
		}
	}
}
