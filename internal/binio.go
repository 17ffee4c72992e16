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

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/infinigram-go/infinigram/hash"
)

// WriteArray writes values as a fixed-width little-endian array prefixed
// with the header described in magic.go: magic, format version, element
// width (the narrowest of {1,2,4,8} bytes that holds every value in
// values), element count, and an XXHash64 checksum of the payload.
func WriteArray(path string, magic uint32, values []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteArrayTo(w, magic, values); err != nil {
		return err
	}
	return w.Flush()
}

// WriteArrayTo is WriteArray against an arbitrary io.Writer -- a
// BufferStream in tests, a file elsewhere -- so the header/payload codec
// itself doesn't depend on the filesystem.
func WriteArrayTo(w io.Writer, magic uint32, values []int64) error {
	var maxV uint64
	for _, v := range values {
		if uv := uint64(v); uv > maxV {
			maxV = uv
		}
	}

	width := ElementWidth(maxV)
	payload := make([]byte, len(values)*width)

	for i, v := range values {
		putWidth(payload[i*width:(i+1)*width], uint64(v), width)
	}

	hasher, _ := hash.NewXXHash64(0)
	checksum := hasher.Hash(payload)

	var magicBuf [4]byte
	binary.LittleEndian.PutUint32(magicBuf[:], magic)

	if _, err := w.Write(magicBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{ArtifactFormatVer, byte(width)}); err != nil {
		return err
	}

	var countBuf, cksumBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(values)))
	binary.LittleEndian.PutUint64(cksumBuf[:], checksum)

	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(cksumBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	return nil
}

// ReadArray reads an array written by WriteArray, validating the magic
// number, element width and checksum. A mismatch on any of these aborts
// the load rather than returning a partial result.
func ReadArray(path string, wantMagic uint32) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	values, err := ReadArrayFrom(bytes.NewReader(data), wantMagic)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// ReadArrayFrom is ReadArray against an arbitrary io.Reader.
func ReadArrayFrom(r io.Reader, wantMagic uint32) ([]int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) < HeaderSize {
		return nil, fmt.Errorf("truncated header (%d bytes)", len(data))
	}

	gotMagic := binary.LittleEndian.Uint32(data[0:4])
	if gotMagic != wantMagic {
		return nil, fmt.Errorf("bad magic %08x, want %08x", gotMagic, wantMagic)
	}

	version := data[4]
	if version != ArtifactFormatVer {
		return nil, fmt.Errorf("unsupported format version %d", version)
	}

	width := int(data[5])
	if width != 1 && width != 2 && width != 4 && width != 8 {
		return nil, fmt.Errorf("invalid element width %d", width)
	}

	count := binary.LittleEndian.Uint64(data[6:14])
	wantChecksum := binary.LittleEndian.Uint64(data[14:22])
	payload := data[HeaderSize:]

	if uint64(len(payload)) != count*uint64(width) {
		return nil, fmt.Errorf("payload length %d does not match count*width=%d", len(payload), count*uint64(width))
	}

	hasher, _ := hash.NewXXHash64(0)
	if got := hasher.Hash(payload); got != wantChecksum {
		return nil, fmt.Errorf("checksum mismatch: got %x, want %x", got, wantChecksum)
	}

	values := make([]int64, count)
	for i := range values {
		values[i] = int64(getWidth(payload[int(i)*width:(int(i)+1)*width], width))
	}

	return values, nil
}

func putWidth(b []byte, v uint64, width int) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, v)
	}
}

func getWidth(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}
