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

package internal

// Magic numbers and header layout for the two on-disk artifacts: the
// tokenized corpus and the suffix array. Both are a small fixed header
// followed by a contiguous fixed-width little-endian array: magic, format
// version, element width/count and a checksum, then payload.
const (
	TokensMagic       uint32 = 0x49475452 // "IGTR" -- infini-gram token stream
	SuffixArrayMagic  uint32 = 0x49475341 // "IGSA" -- infini-gram suffix array
	ArtifactFormatVer uint8  = 1

	// HeaderSize is magic(4) + version(1) + width(1) + count(8) + checksum(8).
	HeaderSize = 4 + 1 + 1 + 8 + 8
)

// ElementWidth returns the smallest width in {1, 2, 4, 8} bytes that can
// represent every value in [0, maxValue].
func ElementWidth(maxValue uint64) int {
	switch {
	case maxValue <= 0xFF:
		return 1
	case maxValue <= 0xFFFF:
		return 2
	case maxValue <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}
