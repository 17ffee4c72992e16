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
	"context"
	"testing"
)

func TestEncodeOneGreedyLongestMatch(t *testing.T) {
	wv := NewWordVocab([]string{"the cat sat", "the dog ran"})

	ids, err := wv.EncodeOne("the cat ran")
	if err != nil {
		t.Fatalf("EncodeOne: %v", err)
	}
	if len(ids) == 0 {
		t.Fatalf("expected non-empty encoding")
	}

	decoded, err := wv.DecodeOne(ids)
	if err != nil {
		t.Fatalf("DecodeOne: %v", err)
	}
	if decoded != "the cat ran" {
		t.Fatalf("round trip mismatch: got %q, want %q", decoded, "the cat ran")
	}
}

func TestEncodeOneUnknownFallback(t *testing.T) {
	wv := NewWordVocab([]string{"hello"})

	ids, err := wv.EncodeOne("hello!")
	if err != nil {
		t.Fatalf("EncodeOne: %v", err)
	}

	found := false
	for _, id := range ids {
		if id == wv.unkID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown id for untrained rune '!', got %v", ids)
	}
}

func TestEncodeOneTotalOnEmptyVocab(t *testing.T) {
	wv := NewWordVocab(nil)

	ids, err := wv.EncodeOne("anything")
	if err != nil {
		t.Fatalf("EncodeOne on empty vocab: %v", err)
	}
	for _, id := range ids {
		if id != wv.unkID {
			t.Fatalf("expected every token to be unk, got %d", id)
		}
	}
}

func TestEncodeManyPreservesOrder(t *testing.T) {
	wv := NewWordVocab([]string{"alpha beta", "gamma delta"})
	strs := []string{"alpha", "beta", "gamma", "delta", "alpha beta gamma"}

	seq, err := wv.EncodeMany(context.Background(), strs, 4)
	if err != nil {
		t.Fatalf("EncodeMany: %v", err)
	}

	seqOneJob, err := wv.EncodeMany(context.Background(), strs, 1)
	if err != nil {
		t.Fatalf("EncodeMany (jobs=1): %v", err)
	}

	if len(seq) != len(seqOneJob) {
		t.Fatalf("length mismatch between concurrent and sequential encodes")
	}
	for i := range seq {
		if len(seq[i]) != len(seqOneJob[i]) {
			t.Fatalf("sequence %d differs between concurrent and sequential encode", i)
		}
		for j := range seq[i] {
			if seq[i][j] != seqOneJob[i][j] {
				t.Fatalf("sequence %d token %d differs: %d vs %d", i, j, seq[i][j], seqOneJob[i][j])
			}
		}
	}
}

func TestEODIDNeverProducedByEncode(t *testing.T) {
	wv := NewWordVocab([]string{"a document with an eod-like ending"})

	ids, err := wv.EncodeOne("a document with an eod-like ending")
	if err != nil {
		t.Fatalf("EncodeOne: %v", err)
	}
	for _, id := range ids {
		if id == wv.EODID() {
			t.Fatalf("EncodeOne produced EODID, which must be reserved")
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	wv := NewWordVocab([]string{"the quick brown fox", "jumps over the lazy dog"})
	dir := t.TempDir()

	if err := wv.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := &WordVocab{}
	if err := reloaded.Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reloaded.VocabSize() != wv.VocabSize() {
		t.Fatalf("VocabSize mismatch after reload: got %d, want %d", reloaded.VocabSize(), wv.VocabSize())
	}

	ids, err := reloaded.EncodeOne("the quick dog")
	if err != nil {
		t.Fatalf("EncodeOne after reload: %v", err)
	}

	decoded, err := reloaded.DecodeOne(ids)
	if err != nil {
		t.Fatalf("DecodeOne after reload: %v", err)
	}
	if decoded != "the quick dog" {
		t.Fatalf("round trip after reload: got %q, want %q", decoded, "the quick dog")
	}
}
