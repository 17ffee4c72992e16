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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/infinigram-go/infinigram/internal"

	"github.com/infinigram-go/infinigram"
)

// ProbNextBatch runs ProbNext on every query in qs. With jobs > 1, qs is
// partitioned into contiguous chunks of size ceil(len(qs)/jobs) (the last
// chunk possibly smaller, per internal.ChunkBounds), each chunk is
// processed by its own worker via errgroup, and results are concatenated
// preserving input order. The engine's state (stream, suffix array) is
// read-only, so workers share it by reference without synchronization
// beyond collecting results.
func (e *Engine) ProbNextBatch(qs [][]int32, jobs int) ([]NextTokenResult, error) {
	if len(qs) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = e.cfg.Jobs
	}

	results := make([]NextTokenResult, len(qs))

	if jobs <= 1 || len(qs) == 1 {
		for i, q := range qs {
			res, err := e.ProbNext(q)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
	} else {
		bounds, err := internal.ChunkBounds(len(qs), jobs)
		if err != nil {
			return nil, infinigram.NewError(infinigram.ErrInvalidQuery, err.Error())
		}

		g, _ := errgroup.WithContext(context.Background())

		for _, b := range bounds {
			start, end := b[0], b[1]
			g.Go(func() error {
				for i := start; i < end; i++ {
					res, err := e.ProbNext(qs[i])
					if err != nil {
						return err
					}
					results[i] = res
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	infinigram.Notify(e.cfg.Listeners, infinigram.NewEvent(infinigram.EvtQueryBatchEnd, int64(len(qs)), "batch query done"))
	return results, nil
}
