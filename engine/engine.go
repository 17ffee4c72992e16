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

// Package engine implements the infini-gram query engine: longest-suffix
// search, next-token distribution estimation, greedy and teacher-forced
// generation, and the persisted load/save of a tokenized corpus together
// with its suffix array.
//
// An Engine is immutable once built or loaded: every query method is safe
// for concurrent use.
package engine

import (
	"context"
	"fmt"

	"github.com/infinigram-go/infinigram/corpus"
	"github.com/infinigram-go/infinigram/suffixarray"
	"github.com/infinigram-go/infinigram/tokenizer"

	"github.com/infinigram-go/infinigram"
)

const (
	_DEFAULT_MIN_COUNT       = 1
	_DEFAULT_JOBS            = 1
	_DEFAULT_MEMO_CACHE_SIZE = 4096
)

// Config holds the engine's tunable parameters. Zero-value fields fall
// back to the defaults below.
type Config struct {
	// MinCount is the default minimum occurrence threshold for
	// LongestMatchingNext / ProbNext: larger values trade coverage for
	// statistical strength, since no smoothing is applied below the
	// threshold.
	MinCount int

	// Jobs bounds batch-query and build-time tokenization concurrency.
	Jobs int

	// Memoize turns on the optional pure-function result cache.
	Memoize bool

	// MemoCacheSize bounds the number of cached (query, minCount) entries.
	MemoCacheSize int

	// Listeners receive build/query progress events; may be left nil.
	Listeners []infinigram.Listener
}

func (c Config) normalized() Config {
	if c.MinCount <= 0 {
		c.MinCount = _DEFAULT_MIN_COUNT
	}
	if c.Jobs <= 0 {
		c.Jobs = _DEFAULT_JOBS
	}
	if c.MemoCacheSize <= 0 {
		c.MemoCacheSize = _DEFAULT_MEMO_CACHE_SIZE
	}
	return c
}

// Engine is the queryable infini-gram model: an immutable token stream, its
// suffix array, and the tokenizer used to build them.
type Engine struct {
	stream []int32
	sa     []int
	tok    tokenizer.Tokenizer
	cfg    Config
	cache  *memoCache
}

// New wraps an already-built stream and suffix array into an Engine. Most
// callers should use Build or Load instead.
func New(stream []int32, sa []int, tok tokenizer.Tokenizer, cfg Config) (*Engine, error) {
	if len(sa) != len(stream) {
		return nil, infinigram.NewError(infinigram.ErrCorruptArtifact,
			fmt.Sprintf("engine: |SA|=%d != |S|=%d", len(sa), len(stream)))
	}

	cfg = cfg.normalized()
	e := &Engine{stream: stream, sa: sa, tok: tok, cfg: cfg}

	if cfg.Memoize {
		e.cache = newMemoCache(cfg.MemoCacheSize)
	}

	return e, nil
}

// Build tokenizes docs with tok, builds the token stream and its suffix
// array, and returns the resulting Engine. Two builds from the same
// (docs, tok) yield bitwise-equal streams and suffix arrays.
func Build(ctx context.Context, docs []string, tok tokenizer.Tokenizer, cfg Config) (*Engine, error) {
	cfg = cfg.normalized()
	infinigram.Notify(cfg.Listeners, infinigram.NewEvent(infinigram.EvtBuildStart, int64(len(docs)), "tokenizing documents"))

	stream, err := corpus.Build(ctx, docs, tok, cfg.Jobs)
	if err != nil {
		return nil, infinigram.NewError(infinigram.ErrBuildFailure, err.Error())
	}

	infinigram.Notify(cfg.Listeners, infinigram.NewEvent(infinigram.EvtBuildEnd, int64(len(stream)), "stream ready"))

	sa := suffixarray.Build(stream, tok.VocabSize())
	infinigram.Notify(cfg.Listeners, infinigram.NewEvent(infinigram.EvtSuffixArrayEnd, int64(len(sa)), "suffix array ready"))

	return New(stream, sa, tok, cfg)
}

// Stream returns the immutable token stream backing the engine. Callers
// must not mutate the returned slice.
func (e *Engine) Stream() []int32 {
	return e.stream
}

// SuffixArray returns the immutable suffix array backing the engine.
// Callers must not mutate the returned slice.
func (e *Engine) SuffixArray() []int {
	return e.sa
}

// Tokenizer returns the tokenizer the engine was built or loaded with.
func (e *Engine) Tokenizer() tokenizer.Tokenizer {
	return e.tok
}

// VocabSize returns V, the fixed vocabulary size.
func (e *Engine) VocabSize() int {
	return e.tok.VocabSize()
}

func (e *Engine) validateQuery(q []int32, allowEODSuffix bool) error {
	if len(q) == 0 {
		return infinigram.NewError(infinigram.ErrInvalidQuery, "query must be non-empty")
	}

	eod := e.tok.EODID()

	if !allowEODSuffix {
		for _, t := range q {
			if t == eod {
				return infinigram.NewError(infinigram.ErrInvalidQuery, "query must not contain EOD")
			}
		}
		return nil
	}

	if q[len(q)-1] == eod {
		return infinigram.NewError(infinigram.ErrInvalidQuery, "query must not end with EOD")
	}

	return nil
}
