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
	"testing"

	"github.com/infinigram-go/infinigram/tokenizer"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	eng, tok := buildTestEngine(t, Config{})
	dir := t.TempDir()

	if err := eng.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(dir, &tokenizer.WordVocab{}, Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(reloaded.Stream()) != len(eng.Stream()) {
		t.Fatalf("stream length mismatch: %d vs %d", len(reloaded.Stream()), len(eng.Stream()))
	}
	for i := range eng.Stream() {
		if reloaded.Stream()[i] != eng.Stream()[i] {
			t.Fatalf("stream mismatch at %d: %d vs %d", i, reloaded.Stream()[i], eng.Stream()[i])
		}
	}

	if len(reloaded.SuffixArray()) != len(eng.SuffixArray()) {
		t.Fatalf("suffix array length mismatch: %d vs %d", len(reloaded.SuffixArray()), len(eng.SuffixArray()))
	}
	for i := range eng.SuffixArray() {
		if reloaded.SuffixArray()[i] != eng.SuffixArray()[i] {
			t.Fatalf("suffix array mismatch at %d: %d vs %d", i, reloaded.SuffixArray()[i], eng.SuffixArray()[i])
		}
	}

	query, err := tok.EncodeOne("the cat sat")
	if err != nil {
		t.Fatalf("EncodeOne: %v", err)
	}

	want, err := eng.ProbNext(query)
	if err != nil {
		t.Fatalf("ProbNext (original): %v", err)
	}
	got, err := reloaded.ProbNext(query)
	if err != nil {
		t.Fatalf("ProbNext (reloaded): %v", err)
	}
	if got.EffectiveN != want.EffectiveN {
		t.Fatalf("EffectiveN mismatch after reload: %d vs %d", got.EffectiveN, want.EffectiveN)
	}
}

func TestLoadRejectsCorruptedArtifact(t *testing.T) {
	eng, _ := buildTestEngine(t, Config{})
	dir := t.TempDir()

	if err := eng.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Flip a byte in the persisted token stream payload, past the header,
	// so the checksum no longer matches.
	path := dir + "/documents_tkn.bin"
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if len(data) <= 22 {
		t.Fatalf("artifact too small to corrupt meaningfully")
	}
	data[22] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing corrupted artifact: %v", err)
	}

	if _, err := Load(dir, &tokenizer.WordVocab{}, Config{}); err == nil {
		t.Fatalf("expected Load to detect the corrupted checksum")
	}
}
