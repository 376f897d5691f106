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

package symmetric

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/awnumar/memguard"
	"github.com/pkg/errors"
)

// Key is an AES key of a declared bit length. The key bytes live in a
// locked, read-only memguard buffer. A Key may be shared by concurrent
// engines once constructed; Destroy must not race with its users.
type Key struct {
	bitLen int
	buf    *memguard.LockedBuffer
}

func validBitLen(bitLen int) bool {
	switch bitLen {
	case 128, 192, 256:
		return true
	}
	return false
}

// NewKey copies keyBytes into a new Key. keyBytes is not modified; callers
// holding sensitive copies should wipe them.
func NewKey(bitLen int, keyBytes []byte) (*Key, error) {
	if !validBitLen(bitLen) {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "unsupported key size %d bits", bitLen)
	}
	if len(keyBytes) != bitLen/8 {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "key size (%d) != expected size (%d)", len(keyBytes), bitLen/8)
	}

	buf := memguard.NewBuffer(bitLen / 8)
	buf.Copy(keyBytes)
	buf.Freeze()

	return &Key{bitLen: bitLen, buf: buf}, nil
}

// GenerateKey returns a random key of the given bit length.
func GenerateKey(bitLen int) (*Key, error) {
	if !validBitLen(bitLen) {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "unsupported key size %d bits", bitLen)
	}

	buf := memguard.NewBufferRandom(bitLen / 8)
	buf.Freeze()

	return &Key{bitLen: bitLen, buf: buf}, nil
}

// BitLen returns the key length in bits: 128, 192 or 256.
func (k *Key) BitLen() int {
	return k.bitLen
}

// Size returns the key length in bytes.
func (k *Key) Size() int {
	return k.bitLen / 8
}

// Bytes returns a copy of the key bytes. The caller owns the copy and
// should wipe it.
func (k *Key) Bytes() ([]byte, error) {
	if !k.alive() {
		return nil, ErrInvalidKey
	}
	out := make([]byte, k.buf.Size())
	copy(out, k.buf.Bytes())
	return out, nil
}

// Destroy wipes and unlocks the key storage.
func (k *Key) Destroy() {
	if k != nil && k.buf != nil {
		k.buf.Destroy()
	}
}

func (k *Key) alive() bool {
	return k != nil && k.buf != nil && k.buf.IsAlive()
}

// newBlock expands the key schedule for the block primitive.
func (k *Key) newBlock() (cipher.Block, error) {
	if !k.alive() || !validBitLen(k.bitLen) || k.buf.Size() != k.bitLen/8 {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(k.buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKey, err.Error())
	}
	return block, nil
}
