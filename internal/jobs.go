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

package internal

import "errors"

// ChunkBounds computes the contiguous, order-preserving partitioning of n
// items across p workers: ceil(n/p)-sized chunks, the last one possibly
// smaller. Returns the [start, end) bounds of each chunk; len(result) <= p.
func ChunkBounds(n, p int) ([][2]int, error) {
	if p <= 0 {
		return nil, errors.New("invalid worker count: must be > 0")
	}

	if n == 0 {
		return nil, nil
	}

	if p > n {
		p = n
	}

	chunkSize := (n + p - 1) / p
	bounds := make([][2]int, 0, p)

	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}

	return bounds, nil
}
