/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package hash

import "testing"

func TestXXHash64Deterministic(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i * 7)
	}

	h1, _ := NewXXHash64(0)
	h2, _ := NewXXHash64(0)

	if h1.Hash(data) != h2.Hash(data) {
		t.Fatalf("same seed and data must hash identically")
	}
}

func TestXXHash64SensitiveToSeed(t *testing.T) {
	data := []byte("the token stream checksum")

	h1, _ := NewXXHash64(0)
	h2, _ := NewXXHash64(1)

	if h1.Hash(data) == h2.Hash(data) {
		t.Fatalf("different seeds are extremely unlikely to collide on the same data")
	}
}

func TestXXHash64SensitiveToData(t *testing.T) {
	h, _ := NewXXHash64(0)

	a := h.Hash([]byte("artifact-a"))
	b := h.Hash([]byte("artifact-b"))

	if a == b {
		t.Fatalf("different payloads are extremely unlikely to collide")
	}
}

func TestXXHash64EmptyInput(t *testing.T) {
	h, _ := NewXXHash64(42)

	// Must not panic and must be stable across calls.
	a := h.Hash(nil)
	b := h.Hash(nil)

	if a != b {
		t.Fatalf("hashing nil twice must be stable")
	}
}
