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

// Package corpus tokenizes a list of documents and concatenates them, with
// an EOD marker after every document, into the single token stream the
// suffix array is built over.
package corpus

import (
	"context"
	"fmt"

	"github.com/infinigram-go/infinigram/tokenizer"
)

// Build tokenizes every document with tok, appends tok.EODID() after each,
// and concatenates the results in order into a single stream. jobs bounds
// the build-time tokenization concurrency; it has no bearing on the
// result, which is a pure function of (docs, tok).
//
// A tokenization error aborts the whole build.
func Build(ctx context.Context, docs []string, tok tokenizer.Tokenizer, jobs int) ([]int32, error) {
	encoded, err := tok.EncodeMany(ctx, docs, jobs)
	if err != nil {
		return nil, fmt.Errorf("corpus: tokenization failed: %w", err)
	}

	total := 0
	for _, ids := range encoded {
		total += len(ids) + 1
	}

	stream := make([]int32, 0, total)
	eod := tok.EODID()

	for _, ids := range encoded {
		stream = append(stream, ids...)
		stream = append(stream, eod)
	}

	return stream, nil
}
