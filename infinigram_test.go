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

package infinigram

import "testing"

func TestNewErrorCarriesCodeAndMessage(t *testing.T) {
	err := NewError(ErrCorruptArtifact, "checksum mismatch")

	if err.Code() != ErrCorruptArtifact {
		t.Fatalf("Code() = %d, want %d", err.Code(), ErrCorruptArtifact)
	}
	if err.Error() != "checksum mismatch" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "checksum mismatch")
	}
}

func TestErrorCodesAreDistinct(t *testing.T) {
	codes := []int{ErrInvalidQuery, ErrCorruptArtifact, ErrBuildFailure, ErrIOFailure, ErrUnknown}
	seen := make(map[int]bool)

	for _, c := range codes {
		if seen[c] {
			t.Fatalf("duplicate error code: %d", c)
		}
		seen[c] = true
	}
}
