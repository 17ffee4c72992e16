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

package suffixarray

// compareAt compares the suffix starting at sa[i] to query, returning
// <0, 0 or >0: integer compare position-by-position, and a suffix shorter
// than query at some position is strictly less.
func compareAt(stream []int32, sa []int, i int, query []int32) int {
	pos := sa[i]
	n := len(stream)

	for k := 0; k < len(query); k++ {
		if pos+k >= n {
			return -1
		}

		if stream[pos+k] < query[k] {
			return -1
		}

		if stream[pos+k] > query[k] {
			return 1
		}
	}

	return 0
}

// lowerBound finds the smallest i such that suffix(sa[i]) >= query.
func lowerBound(stream []int32, sa []int, query []int32) int {
	lo, hi := 0, len(sa)

	for lo < hi {
		mid := (lo + hi) / 2

		if compareAt(stream, sa, mid, query) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// upperBound finds the smallest i such that suffix(sa[i]) > query.
func upperBound(stream []int32, sa []int, query []int32) int {
	lo, hi := 0, len(sa)

	for lo < hi {
		mid := (lo + hi) / 2

		if compareAt(stream, sa, mid, query) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// Bounds locates the inclusive match range [first, last] in sa whose
// suffixes begin with query. Returns (-1, -1), the sentinel "not found"
// pair, when query has no occurrence. query must be non-empty; callers
// enforce that precondition.
func Bounds(stream []int32, sa []int, query []int32) (first, last int) {
	lo := lowerBound(stream, sa, query)

	if lo >= len(sa) || compareAt(stream, sa, lo, query) != 0 {
		return -1, -1
	}

	hi := upperBound(stream, sa, query)
	return lo, hi - 1
}
