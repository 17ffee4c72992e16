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

package engine

import "testing"

func TestMemoizedResultMatchesUnmemoized(t *testing.T) {
	plain, tok := buildTestEngine(t, Config{})
	memoized, _ := buildTestEngine(t, Config{Memoize: true, MemoCacheSize: 16})

	query, err := tok.EncodeOne("the cat sat")
	if err != nil {
		t.Fatalf("EncodeOne: %v", err)
	}

	wantWindows, wantN, err := plain.LongestMatchingNext(query, 1)
	if err != nil {
		t.Fatalf("LongestMatchingNext (plain): %v", err)
	}

	// Call twice: once to populate the cache, once to hit it.
	for i := 0; i < 2; i++ {
		gotWindows, gotN, err := memoized.LongestMatchingNext(query, 1)
		if err != nil {
			t.Fatalf("LongestMatchingNext (memoized, pass %d): %v", i, err)
		}
		if gotN != wantN {
			t.Fatalf("pass %d: n=%d, want %d", i, gotN, wantN)
		}
		if len(gotWindows) != len(wantWindows) {
			t.Fatalf("pass %d: got %d windows, want %d", i, len(gotWindows), len(wantWindows))
		}
	}
}

func TestQueryKeyDistinguishesMinCount(t *testing.T) {
	q := []int32{1, 2, 3}

	if queryKey(q, 1) == queryKey(q, 2) {
		t.Fatalf("queryKey must vary with minCount")
	}
}

func TestQueryKeyDistinguishesQueries(t *testing.T) {
	if queryKey([]int32{1, 2}, 1) == queryKey([]int32{1, 3}, 1) {
		t.Fatalf("queryKey must vary with query contents")
	}
}
