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

// Package tokenizer defines the tokenizer adapter contract: an opaque
// str <-> []int32 mapping the engine treats as a black box, plus a concrete
// reference implementation (WordVocab) so the rest of the module has
// something real to build and test against.
package tokenizer

import "context"

// Tokenizer is the external str <-> token id contract the engine depends
// on. No assumption is made about reversibility of Decode(Encode(s)); the
// engine only relies on EODID never being produced by EncodeOne/EncodeMany.
type Tokenizer interface {
	// EncodeOne maps a document to token ids. No special tokens are added,
	// no padding, and EODID() is never emitted.
	EncodeOne(s string) ([]int32, error)

	// EncodeMany maps documents to token ids, preserving input order. jobs
	// bounds how many documents are tokenized concurrently; jobs <= 1 means
	// sequential.
	EncodeMany(ctx context.Context, strs []string, jobs int) ([][]int32, error)

	// DecodeOne maps token ids back to a string.
	DecodeOne(ids []int32) (string, error)

	// DecodeMany maps token id sequences back to strings, preserving order.
	DecodeMany(idss [][]int32) ([]string, error)

	// EODID returns the reserved token id marking document boundaries.
	EODID() int32

	// VocabSize returns the fixed vocabulary size V.
	VocabSize() int

	// Save persists tokenizer artifacts to dir.
	Save(dir string) error

	// Load restores tokenizer artifacts from dir.
	Load(dir string) error
}
