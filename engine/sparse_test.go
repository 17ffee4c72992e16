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
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/infinigram-go/infinigram/hash"
	"github.com/infinigram-go/infinigram/internal"
)

func TestWriteSparseBatchProducesValidHeaders(t *testing.T) {
	eng, tok := buildTestEngine(t, Config{})

	phrases := []string{"the cat", "the dog", "on the"}
	qs := make([][]int32, len(phrases))
	for i, p := range phrases {
		ids, err := tok.EncodeOne(p)
		if err != nil {
			t.Fatalf("EncodeOne(%q): %v", p, err)
		}
		qs[i] = ids
	}

	results, err := eng.ProbNextBatch(qs, 1)
	if err != nil {
		t.Fatalf("ProbNextBatch: %v", err)
	}

	prefix := filepath.Join(t.TempDir(), "batch")
	if err := WriteSparseBatch(results, prefix); err != nil {
		t.Fatalf("WriteSparseBatch: %v", err)
	}

	checkHeader(t, prefix+"_counts.bin", sparseCountsMagic, len(results))
	checkHeader(t, prefix+"_distr.bin", sparseDistrMagic, len(results))

	// The effective_n vector is a dense array in internal.WriteArray's
	// format (its header carries an element-width byte), so it is read back
	// with internal.ReadArray, which validates magic, count and checksum.
	effN, err := internal.ReadArray(prefix+"_effn.bin", sparseEffNMagic)
	if err != nil {
		t.Fatalf("reading %s_effn.bin: %v", prefix, err)
	}
	if len(effN) != len(results) {
		t.Fatalf("%s_effn.bin: rows=%d, want %d", prefix, len(effN), len(results))
	}
}

func checkHeader(t *testing.T, path string, wantMagic uint32, wantRows int) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if len(data) < 21 {
		t.Fatalf("%s: too short for a header", path)
	}

	gotMagic := binary.LittleEndian.Uint32(data[0:4])
	if gotMagic != wantMagic {
		t.Fatalf("%s: magic=%08x, want %08x", path, gotMagic, wantMagic)
	}

	gotRows := binary.LittleEndian.Uint64(data[5:13])
	if int(gotRows) != wantRows {
		t.Fatalf("%s: rows=%d, want %d", path, gotRows, wantRows)
	}

	wantChecksum := binary.LittleEndian.Uint64(data[13:21])
	hasher, _ := hash.NewXXHash64(0)
	if got := hasher.Hash(data[21:]); got != wantChecksum {
		t.Fatalf("%s: checksum mismatch", path)
	}
}
