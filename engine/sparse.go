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
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"os"

	"github.com/infinigram-go/infinigram/hash"
	"github.com/infinigram-go/infinigram/internal"
)

const (
	sparseCountsMagic uint32 = 0x49475343 // "IGSC"
	sparseDistrMagic  uint32 = 0x49475344 // "IGSD"
	sparseEffNMagic   uint32 = 0x49475345 // "IGSE"
)

// WriteSparseBatch compresses a []NextTokenResult into row-sparse count
// and distribution matrices plus a dense effective_n vector, since
// distr/count are length-V with typically very few non-zeros. pathPrefix
// + "_counts.bin", pathPrefix + "_distr.bin" and pathPrefix + "_effn.bin"
// are written; this is deliberately outside the Engine's core query path
// -- a caller opts in only when persisting batch results for later
// offline inspection.
func WriteSparseBatch(results []NextTokenResult, pathPrefix string) error {
	effN := make([]int64, len(results))
	for i, r := range results {
		effN[i] = int64(r.EffectiveN)
	}

	if err := internal.WriteArray(pathPrefix+"_effn.bin", sparseEffNMagic, effN); err != nil {
		return err
	}

	if err := writeSparseInts(pathPrefix+"_counts.bin", sparseCountsMagic, results); err != nil {
		return err
	}

	return writeSparseFloats(pathPrefix+"_distr.bin", sparseDistrMagic, results)
}

// writeSparseInts and writeSparseFloats share a layout: magic(4),
// version(1), row count(8), checksum(8) of the payload that follows, then
// one row per result: nnz(4), then nnz * (column index(4), value).
func writeSparseInts(path string, magic uint32, results []NextTokenResult) error {
	var payload bytes.Buffer

	for _, r := range results {
		binary.Write(&payload, binary.LittleEndian, uint32(countNonZero(r.Count)))

		for col, c := range r.Count {
			if c != 0 {
				binary.Write(&payload, binary.LittleEndian, uint32(col))
				binary.Write(&payload, binary.LittleEndian, uint64(c))
			}
		}
	}

	return writeSparseFile(path, magic, len(results), payload.Bytes())
}

func writeSparseFloats(path string, magic uint32, results []NextTokenResult) error {
	var payload bytes.Buffer

	for _, r := range results {
		binary.Write(&payload, binary.LittleEndian, uint32(countNonZeroF(r.Distr)))

		for col, v := range r.Distr {
			if v != 0 {
				binary.Write(&payload, binary.LittleEndian, uint32(col))
				binary.Write(&payload, binary.LittleEndian, math.Float64bits(v))
			}
		}
	}

	return writeSparseFile(path, magic, len(results), payload.Bytes())
}

func writeSparseFile(path string, magic uint32, rows int, payload []byte) error {
	hasher, _ := hash.NewXXHash64(0)
	checksum := hasher.Hash(payload)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var hdr [4 + 1 + 8 + 8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], magic)
	hdr[4] = internal.ArtifactFormatVer
	binary.LittleEndian.PutUint64(hdr[5:13], uint64(rows))
	binary.LittleEndian.PutUint64(hdr[13:21], checksum)

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	return w.Flush()
}

func countNonZero(xs []int) int {
	n := 0
	for _, x := range xs {
		if x != 0 {
			n++
		}
	}
	return n
}

func countNonZeroF(xs []float64) int {
	n := 0
	for _, x := range xs {
		if x != 0 {
			n++
		}
	}
	return n
}
