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

import (
	"fmt"

	"github.com/infinigram-go/infinigram/retriever"

	"github.com/infinigram-go/infinigram"
)

// Count returns the number of occurrences of query in the token stream.
// query must be non-empty.
func (e *Engine) Count(query []int32) (int, retriever.Range, error) {
	if len(query) == 0 {
		return 0, retriever.Range{First: -1, Last: -1}, infinigram.NewError(infinigram.ErrInvalidQuery, "query must be non-empty")
	}

	n, r := retriever.Count(e.stream, e.sa, query)
	return n, r, nil
}

// MatchingNext returns the extension-1 match windows for query.
// Precondition: query is non-empty and does not end with EOD.
func (e *Engine) MatchingNext(query []int32) ([][]int32, error) {
	if err := e.validateQuery(query, true); err != nil {
		return nil, err
	}

	_, r := retriever.Count(e.stream, e.sa, query)
	return retriever.Retrieve(e.stream, e.sa, query, 1, r), nil
}

// LongestMatchingNext finds the largest n in [1, len(query)] such that the
// suffix query[len(query)-n:] occurs at least minCount times in the
// stream, and returns its extension-1 match windows together with n.
// minCount <= 0 is treated as the engine's configured default. Returns
// (nil, 0) if no suffix of length >= 1 meets the threshold.
//
// The search is a binary search over suffix length n, licensed by the
// monotonicity of match count in suffix length: a longer suffix's matches
// are a subset of a shorter suffix's matches.
func (e *Engine) LongestMatchingNext(query []int32, minCount int) ([][]int32, int, error) {
	if err := e.validateQuery(query, true); err != nil {
		return nil, 0, err
	}

	if minCount <= 0 {
		minCount = e.cfg.MinCount
	}

	if e.cache != nil {
		if windows, n, ok := e.cache.get(query, minCount); ok {
			return windows, n, nil
		}
	}

	windows, n := e.longestMatchingNextUncached(query, minCount)

	if e.cache != nil {
		e.cache.put(query, minCount, windows, n)
	}

	return windows, n, nil
}

func (e *Engine) longestMatchingNextUncached(query []int32, minCount int) ([][]int32, int) {
	left, right := 0, len(query)
	bestN := 0
	bestRange := retriever.Range{First: -1, Last: -1}

	for left <= right {
		mid := (left + right) / 2

		if mid == 0 {
			left = 1
			continue
		}

		suffix := query[len(query)-mid:]
		n, r := retriever.Count(e.stream, e.sa, suffix)

		if n >= minCount {
			bestN = mid
			bestRange = r
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	if bestRange.Empty() {
		return nil, 0
	}

	suffix := query[len(query)-bestN:]
	return retriever.Retrieve(e.stream, e.sa, suffix, 1, bestRange), bestN
}

func queryKey(query []int32, minCount int) string {
	b := make([]byte, 0, 4*len(query)+8)

	for _, t := range query {
		b = append(b, byte(t), byte(t>>8), byte(t>>16), byte(t>>24))
	}

	return fmt.Sprintf("%d:%s", minCount, b)
}
