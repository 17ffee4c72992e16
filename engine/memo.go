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

import lru "github.com/hashicorp/golang-lru/v2"

// memoCache is the optional pure-function result cache: same (stream, sa,
// query, minCount) always maps to the same LongestMatchingNext result, so
// it is safe to memoize by query contents alone for the lifetime of one
// immutable Engine.
type memoCache struct {
	lru *lru.Cache[string, memoEntry]
}

type memoEntry struct {
	windows [][]int32
	n       int
}

func newMemoCache(size int) *memoCache {
	c, err := lru.New[string, memoEntry](size)
	if err != nil {
		// size is always > 0 here (Config.normalized enforces it), so
		// lru.New cannot fail in practice.
		panic(err)
	}
	return &memoCache{lru: c}
}

func (c *memoCache) get(query []int32, minCount int) ([][]int32, int, bool) {
	e, ok := c.lru.Get(queryKey(query, minCount))
	if !ok {
		return nil, 0, false
	}
	return e.windows, e.n, true
}

func (c *memoCache) put(query []int32, minCount int, windows [][]int32, n int) {
	c.lru.Add(queryKey(query, minCount), memoEntry{windows: windows, n: n})
}
