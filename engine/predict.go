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

// NextTokenResult is the outcome of ProbNext. Distr and Count are nil
// ("absent") when EffectiveN is 0, i.e. no suffix of the query met the
// minimum-count threshold.
type NextTokenResult struct {
	Distr      []float64 // length V, sums to 1 when non-nil
	Count      []int     // length V
	EffectiveN int
}

// ProbNext computes the empirical next-token distribution for query.
// Precondition: query contains no EOD anywhere (not just at the end:
// ProbNext predicts a continuation, so a trailing EOD would make the
// question "what follows the end of a document" ill-posed).
func (e *Engine) ProbNext(query []int32) (NextTokenResult, error) {
	if err := e.validateQuery(query, false); err != nil {
		return NextTokenResult{}, err
	}

	windows, n, err := e.LongestMatchingNext(query, e.cfg.MinCount)
	if err != nil {
		return NextTokenResult{}, err
	}

	if len(windows) == 0 {
		return NextTokenResult{EffectiveN: 0}, nil
	}

	v := e.VocabSize()
	count := make([]int, v)

	for _, w := range windows {
		next := w[len(w)-1]
		count[next]++
	}

	distr := make([]float64, v)
	total := float64(len(windows))

	for i, c := range count {
		distr[i] = float64(c) / total
	}

	return NextTokenResult{Distr: distr, Count: count, EffectiveN: n}, nil
}
