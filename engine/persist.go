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
	"os"
	"path/filepath"

	"github.com/infinigram-go/infinigram/internal"
	"github.com/infinigram-go/infinigram/tokenizer"

	"github.com/infinigram-go/infinigram"
)

const tokenizerSubdir = "tokenizer"

// Save persists the engine to dir: dir/documents_tkn.bin holds the token
// stream, dir/suffix_array.bin the suffix array, and dir/tokenizer/
// whatever the tokenizer's own Save writes. The two arrays are each
// checksummed by internal.WriteArray, so a later Load catches a corrupted
// or truncated array file instead of silently serving wrong answers; the
// tokenizer artifacts carry whatever integrity checks tok.Save writes
// (WordVocab's vocab.bin has no checksum).
func (e *Engine) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infinigram.NewError(infinigram.ErrIOFailure, err.Error())
	}

	streamValues := make([]int64, len(e.stream))
	for i, v := range e.stream {
		streamValues[i] = int64(v)
	}

	if err := internal.WriteArray(filepath.Join(dir, "documents_tkn.bin"), internal.TokensMagic, streamValues); err != nil {
		return infinigram.NewError(infinigram.ErrIOFailure, err.Error())
	}

	saValues := make([]int64, len(e.sa))
	for i, v := range e.sa {
		saValues[i] = int64(v)
	}

	if err := internal.WriteArray(filepath.Join(dir, "suffix_array.bin"), internal.SuffixArrayMagic, saValues); err != nil {
		return infinigram.NewError(infinigram.ErrIOFailure, err.Error())
	}

	tokDir := filepath.Join(dir, tokenizerSubdir)
	if err := os.MkdirAll(tokDir, 0o755); err != nil {
		return infinigram.NewError(infinigram.ErrIOFailure, err.Error())
	}

	if err := e.tok.Save(tokDir); err != nil {
		return infinigram.NewError(infinigram.ErrIOFailure, err.Error())
	}

	infinigram.Notify(e.cfg.Listeners, infinigram.NewEvent(infinigram.EvtPersistEnd, int64(len(e.stream)), "engine saved to "+dir))
	return nil
}

// Load rebuilds an Engine from a directory written by Save. tok must be a
// freshly constructed, empty Tokenizer of the same concrete type used at
// Save time; its Load method populates it from dir/tokenizer before the
// stream and suffix array are validated against it (|SA|=|S| and every
// stream token id < tok.VocabSize()).
func Load(dir string, tok tokenizer.Tokenizer, cfg Config) (*Engine, error) {
	if err := tok.Load(filepath.Join(dir, tokenizerSubdir)); err != nil {
		return nil, infinigram.NewError(infinigram.ErrCorruptArtifact, err.Error())
	}

	streamValues, err := internal.ReadArray(filepath.Join(dir, "documents_tkn.bin"), internal.TokensMagic)
	if err != nil {
		return nil, infinigram.NewError(infinigram.ErrCorruptArtifact, err.Error())
	}

	saValues, err := internal.ReadArray(filepath.Join(dir, "suffix_array.bin"), internal.SuffixArrayMagic)
	if err != nil {
		return nil, infinigram.NewError(infinigram.ErrCorruptArtifact, err.Error())
	}

	stream := make([]int32, len(streamValues))
	vocabSize := int64(tok.VocabSize())

	for i, v := range streamValues {
		if v < 0 || v >= vocabSize {
			return nil, infinigram.NewError(infinigram.ErrCorruptArtifact, "documents_tkn.bin: token id out of vocab range")
		}
		stream[i] = int32(v)
	}

	sa := make([]int, len(saValues))
	for i, v := range saValues {
		sa[i] = int(v)
	}

	e, err := New(stream, sa, tok, cfg)
	if err != nil {
		return nil, err
	}

	infinigram.Notify(e.cfg.Listeners, infinigram.NewEvent(infinigram.EvtPersistEnd, int64(len(stream)), "engine loaded from "+dir))
	return e, nil
}
