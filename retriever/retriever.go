/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package retriever answers "how many times, and where" a query occurs in
// a token stream, built on top of the suffixarray package's lexicographic
// search.
package retriever

import "github.com/infinigram-go/infinigram/suffixarray"

// Range is an inclusive [First, Last] interval into the suffix array, or
// the (-1, -1) sentinel when a query has no occurrence.
type Range struct {
	First, Last int
}

// Empty reports whether r is the not-found sentinel.
func (r Range) Empty() bool {
	return r.First < 0 || r.First > r.Last
}

// Count returns the number of occurrences of query in stream and its match
// range. query must be non-empty.
func Count(stream []int32, sa []int, query []int32) (int, Range) {
	first, last := suffixarray.Bounds(stream, sa, query)
	r := Range{First: first, Last: last}

	if r.Empty() {
		return 0, r
	}

	return last - first + 1, r
}

// Retrieve returns the match windows S[sa[i] : sa[i]+len(query)+extend] for
// i in r, in suffix-array order. extend must be 0 or 1. When extend is 1, a
// window may run off the end of stream only for a match ending at the
// stream's very last position; that position is always EOD in a correctly
// built corpus (an EOD marker follows every document), so callers that
// never query a suffix ending in EOD may always read one extra token.
func Retrieve(stream []int32, sa []int, query []int32, extend int, r Range) [][]int32 {
	if r.Empty() {
		return nil
	}

	windows := make([][]int32, 0, r.Last-r.First+1)
	qlen := len(query)

	for i := r.First; i <= r.Last; i++ {
		start := sa[i]
		end := start + qlen + extend

		if end > len(stream) {
			end = len(stream)
		}

		windows = append(windows, stream[start:end])
	}

	return windows
}
