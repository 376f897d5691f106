// Copyright 2024 JC-Lab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package securebuf provides a growable byte buffer whose storage is
// zeroed before it is released.
package securebuf

import (
	"crypto/subtle"
	"encoding/hex"
	"runtime"

	"github.com/awnumar/memguard"
)

// Buffer owns a byte sequence. Every backing array it drops, on growth,
// Wipe, Destroy or garbage collection, is zeroed first.
type Buffer struct {
	data []byte
}

// New returns a zero-filled buffer of the given length.
func New(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return track(&Buffer{data: make([]byte, size)})
}

// FromBytes returns a buffer holding a copy of src. src is left untouched.
func FromBytes(src []byte) *Buffer {
	b := New(len(src))
	copy(b.data, src)
	return b
}

// Own returns a buffer that takes ownership of b without copying. The
// caller must not use b afterwards.
func Own(b []byte) *Buffer {
	return track(&Buffer{data: b})
}

// FromHex decodes s into a new buffer.
func FromHex(s string) (*Buffer, error) {
	b := New(hex.DecodedLen(len(s)))
	if _, err := hex.Decode(b.data, []byte(s)); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

func track(b *Buffer) *Buffer {
	runtime.SetFinalizer(b, (*Buffer).Destroy)
	return b
}

// Bytes returns the live contents. The slice is invalidated by any call that
// changes the length of the buffer.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Append copies p onto the tail of the buffer.
func (b *Buffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.grow(len(b.data)+len(p), p)
}

// Resize sets the length to n. Bytes cut off are zeroed; new bytes are zero.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(b.data) {
		memguard.WipeBytes(b.data[n:])
		b.data = b.data[:n]
		return
	}
	b.grow(n, nil)
}

// grow extends the buffer to n bytes and copies tail right after the old
// contents. tail may alias the buffer itself.
func (b *Buffer) grow(n int, tail []byte) {
	old := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
		memguard.WipeBytes(b.data[old+copy(b.data[old:], tail):])
		return
	}
	c := 2 * cap(b.data)
	if c < n {
		c = n
	}
	data := make([]byte, n, c)
	copy(data, b.data)
	copy(data[old:], tail)
	memguard.WipeBytes(b.data[:cap(b.data)])
	b.data = data
}

// Equal compares contents in constant time for equal lengths.
func (b *Buffer) Equal(other *Buffer) bool {
	return subtle.ConstantTimeCompare(b.Bytes(), other.Bytes()) == 1
}

func (b *Buffer) Hex() string {
	return hex.EncodeToString(b.Bytes())
}

// Wipe zeroes the contents and truncates the buffer to empty. The buffer
// stays usable.
func (b *Buffer) Wipe() {
	if b == nil {
		return
	}
	memguard.WipeBytes(b.data[:cap(b.data)])
	b.data = b.data[:0]
}

// Destroy zeroes the contents and drops the storage. Safe to call more
// than once.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	memguard.WipeBytes(b.data[:cap(b.data)])
	b.data = nil
	runtime.SetFinalizer(b, nil)
}
