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

import "testing"

// stream: a b a b c, encoded as small ints: a=0 b=1 c=2
var searchStream = []int32{0, 1, 0, 1, 2}

func TestBoundsFindsAllOccurrences(t *testing.T) {
	sa := Build(searchStream, 3)

	first, last := Bounds(searchStream, sa, []int32{0, 1}) // "ab" occurs at 0 and 2
	if first < 0 {
		t.Fatalf("expected a match for 'ab'")
	}
	if got := last - first + 1; got != 2 {
		t.Fatalf("count('ab') = %d, want 2", got)
	}
}

func TestBoundsNotFound(t *testing.T) {
	sa := Build(searchStream, 3)

	first, last := Bounds(searchStream, sa, []int32{2, 2})
	if first != -1 || last != -1 {
		t.Fatalf("got (%d, %d), want (-1, -1) sentinel", first, last)
	}
}

func TestBoundsSingleToken(t *testing.T) {
	sa := Build(searchStream, 3)

	first, last := Bounds(searchStream, sa, []int32{2}) // "c" occurs once
	if first < 0 || last-first+1 != 1 {
		t.Fatalf("count('c') = %d, want 1", last-first+1)
	}
}

// TestBoundsMonotonicity checks that the occurrence count of a longer
// suffix is never greater than that of the shorter suffix it extends
// (match count is non-increasing in suffix length).
func TestBoundsMonotonicity(t *testing.T) {
	stream := []int32{0, 1, 0, 1, 0, 1, 2, 0, 1, 0}
	sa := Build(stream, 3)

	query := []int32{0, 1, 0, 1}

	prevCount := len(stream) + 1
	for n := 1; n <= len(query); n++ {
		suffix := query[len(query)-n:]
		first, last := Bounds(stream, sa, suffix)

		count := 0
		if first >= 0 {
			count = last - first + 1
		}

		if count > prevCount {
			t.Fatalf("count increased from n=%d to n=%d: %d -> %d", n-1, n, prevCount, count)
		}
		prevCount = count
	}
}
