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

// Greedy extends query until the sequence is at most maxLen tokens long
// (maxLen counts the prompt tokens too): it repeatedly
// calls ProbNext on the current sequence and appends argmax(distr),
// breaking ties toward the lowest token id for determinism. Generation
// stops when the appended token is EOD, when no continuation is found at
// all (EffectiveN == 0), or when the sequence reaches maxLen. The
// returned sequence always starts with query.
func (e *Engine) Greedy(query []int32, maxLen int) ([]int32, error) {
	if err := e.validateQuery(query, false); err != nil {
		return nil, err
	}

	out := append([]int32(nil), query...)
	eod := e.tok.EODID()

	for len(out) < maxLen {
		res, err := e.ProbNext(out)
		if err != nil {
			return nil, err
		}

		if res.EffectiveN == 0 {
			break
		}

		next := argmaxLowestIndex(res.Distr)
		out = append(out, next)

		if next == eod {
			break
		}
	}

	return out, nil
}

func argmaxLowestIndex(distr []float64) int32 {
	best := 0
	bestVal := distr[0]

	for i := 1; i < len(distr); i++ {
		if distr[i] > bestVal {
			bestVal = distr[i]
			best = i
		}
	}

	return int32(best)
}

// ForcedGen returns, for a token sequence x of length L, the L results
// where result i is ProbNext(x[0:i+1]): it is exactly a batch of L prefix
// queries, run with the engine's configured concurrency.
func (e *Engine) ForcedGen(x []int32) ([]NextTokenResult, error) {
	if len(x) == 0 {
		return nil, nil
	}

	prefixes := make([][]int32, len(x))
	for i := range x {
		prefixes[i] = x[:i+1]
	}

	return e.ProbNextBatch(prefixes, e.cfg.Jobs)
}
