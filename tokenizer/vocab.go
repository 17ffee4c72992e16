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

package tokenizer

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itgcl/ahocorasick"
	"golang.org/x/sync/errgroup"
)

// WordVocab is a reference Tokenizer grounded on an Aho-Corasick automaton
// (github.com/itgcl/ahocorasick): vocabulary entries are matched greedily,
// longest match first, left to right. It is trained on sample text so that
// every rune encountered during training has at least a singleton vocabulary
// entry, which makes Encode total over any string built from trained runes.
type WordVocab struct {
	vocab   []string
	index   map[string]int32
	matcher *ahocorasick.Matcher
	unkID   int32
	eodID   int32
}

// NewWordVocab trains a WordVocab from sample strings: every whitespace-
// delimited word becomes a vocabulary entry (longest match candidates),
// and every distinct rune becomes a singleton fallback entry so Encode
// never fails on trained input.
func NewWordVocab(samples []string) *WordVocab {
	seen := make(map[string]bool)
	vocab := make([]string, 0, 256)

	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		vocab = append(vocab, s)
	}

	for _, s := range samples {
		for _, word := range strings.Fields(s) {
			add(word)
		}
	}

	for _, s := range samples {
		for _, r := range s {
			add(string(r))
		}
	}

	return buildWordVocab(vocab)
}

func buildWordVocab(vocab []string) *WordVocab {
	index := make(map[string]int32, len(vocab))
	for i, w := range vocab {
		index[w] = int32(i)
	}

	wv := &WordVocab{
		vocab:   vocab,
		index:   index,
		matcher: ahocorasick.NewStringMatcher(vocab),
		unkID:   int32(len(vocab)),
		eodID:   int32(len(vocab)) + 1,
	}

	return wv
}

// EODID returns the reserved end-of-document token id.
func (wv *WordVocab) EODID() int32 {
	return wv.eodID
}

// VocabSize returns V: trained words, plus the unknown bucket, plus EOD.
func (wv *WordVocab) VocabSize() int {
	return len(wv.vocab) + 2
}

// EncodeOne tokenizes s by greedy longest vocabulary match. Each rune with
// no vocabulary coverage becomes one unknown id.
func (wv *WordVocab) EncodeOne(s string) ([]int32, error) {
	runes := []rune(s)
	out := make([]int32, 0, len(runes))

	for pos := 0; pos < len(runes); {
		bestLen, bestID := 0, int32(-1)

		if len(wv.vocab) > 0 {
			rest := string(runes[pos:])
			for _, hit := range wv.matcher.MatchString(rest) {
				word := wv.vocab[hit]
				wlen := len([]rune(word))

				if wlen <= bestLen || wlen > len(runes)-pos {
					continue
				}

				if string(runes[pos:pos+wlen]) == word {
					bestLen, bestID = wlen, int32(hit)
				}
			}
		}

		if bestID < 0 {
			out = append(out, wv.unkID)
			pos++
			continue
		}

		out = append(out, bestID)
		pos += bestLen
	}

	return out, nil
}

// EncodeMany tokenizes strs concurrently, preserving input order (spec
// section 4.1/5.1: build-time tokenization is embarrassingly parallel).
func (wv *WordVocab) EncodeMany(ctx context.Context, strs []string, jobs int) ([][]int32, error) {
	out := make([][]int32, len(strs))

	if jobs <= 1 || len(strs) <= 1 {
		for i, s := range strs {
			ids, err := wv.EncodeOne(s)
			if err != nil {
				return nil, err
			}
			out[i] = ids
		}
		return out, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, s := range strs {
		i, s := i, s
		g.Go(func() error {
			ids, err := wv.EncodeOne(s)
			if err != nil {
				return err
			}
			out[i] = ids
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeOne renders token ids back to text. The unknown id decodes to a
// placeholder rune, so decode is not guaranteed to invert encode.
func (wv *WordVocab) DecodeOne(ids []int32) (string, error) {
	var b strings.Builder

	for _, id := range ids {
		switch {
		case id == wv.eodID:
			continue
		case id == wv.unkID:
			b.WriteRune('�')
		case id >= 0 && int(id) < len(wv.vocab):
			b.WriteString(wv.vocab[id])
		default:
			return "", fmt.Errorf("tokenizer: token id %d out of range [0, %d)", id, wv.VocabSize())
		}
	}

	return b.String(), nil
}

// DecodeMany renders each id sequence back to text, preserving order.
func (wv *WordVocab) DecodeMany(idss [][]int32) ([]string, error) {
	out := make([]string, len(idss))

	for i, ids := range idss {
		s, err := wv.DecodeOne(ids)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

const vocabFileName = "vocab.bin"

// Save persists the trained vocabulary as a length-prefixed string list: a
// little-endian uint32 entry count, then each entry as a uint32 byte length
// followed by its bytes. Unlike the engine's array artifacts, the file has
// no magic number, version or checksum.
func (wv *WordVocab) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, vocabFileName))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if err := binary.Write(w, binary.LittleEndian, uint32(len(wv.vocab))); err != nil {
		return err
	}

	for _, word := range wv.vocab {
		b := []byte(word)

		if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
			return err
		}

		if _, err := w.Write(b); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Load restores a vocabulary previously written by Save.
func (wv *WordVocab) Load(dir string) error {
	f, err := os.Open(filepath.Join(dir, vocabFileName))
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}

	vocab := make([]string, count)

	for i := range vocab {
		var wlen uint32
		if err := binary.Read(r, binary.LittleEndian, &wlen); err != nil {
			return err
		}

		b := make([]byte, wlen)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}

		vocab[i] = string(b)
	}

	*wv = *buildWordVocab(vocab)
	return nil
}
