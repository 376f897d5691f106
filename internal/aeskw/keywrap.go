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

package aeskw

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"

	"github.com/awnumar/memguard"
	"github.com/pkg/errors"
)

// Constants for AES Key Wrap
const (
	AESKeyWrapBlockSize = 8
	IV                  = 0xA6A6A6A6A6A6A6A6

	// AIV is the high half of the RFC 5649 alternative initial value; the
	// low half carries the message length indicator.
	AIV = 0xA65959A6

	maxMLI = 1<<32 - 1
)

var (
	ErrInvalidKeyDataLength = errors.New("invalid key data length")
	ErrInvalidWrappedLength = errors.New("invalid wrapped key length")
	ErrIntegrityCheckFailed = errors.New("integrity check failed, IV mismatch")
	ErrPaddingError         = errors.New("invalid padding")
)

// KeyWrap performs AES Key Wrap (RFC 3394).
func KeyWrap(block cipher.Block, plaintext []byte) ([]byte, error) {
	if len(plaintext)%AESKeyWrapBlockSize != 0 || len(plaintext) < 2*AESKeyWrapBlockSize {
		return nil, ErrInvalidKeyDataLength
	}
	return wrap(block, IV, plaintext), nil
}

// KeyUnwrap performs AES Key Unwrap (RFC 3394).
func KeyUnwrap(block cipher.Block, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%AESKeyWrapBlockSize != 0 || len(ciphertext) < 3*AESKeyWrapBlockSize {
		return nil, ErrInvalidWrappedLength
	}

	A, plaintext := unwrap(block, ciphertext)

	var expected [AESKeyWrapBlockSize]byte
	binary.BigEndian.PutUint64(expected[:], IV)
	if subtle.ConstantTimeCompare(A[:], expected[:]) != 1 {
		memguard.WipeBytes(plaintext)
		return nil, ErrIntegrityCheckFailed
	}

	return plaintext, nil
}

// KeyWrapPad performs AES Key Wrap with Padding (RFC 5649).
func KeyWrapPad(block cipher.Block, plaintext []byte) ([]byte, error) {
	mli := len(plaintext)
	if mli == 0 || uint64(mli) > maxMLI {
		return nil, ErrInvalidKeyDataLength
	}

	paddedLen := (mli + AESKeyWrapBlockSize - 1) / AESKeyWrapBlockSize * AESKeyWrapBlockSize
	padded := make([]byte, paddedLen)
	defer memguard.WipeBytes(padded)
	copy(padded, plaintext)

	iv := uint64(AIV)<<32 | uint64(mli)

	if paddedLen == AESKeyWrapBlockSize {
		// A single register is encrypted directly as one AES block.
		ciphertext := make([]byte, 2*AESKeyWrapBlockSize)
		binary.BigEndian.PutUint64(ciphertext, iv)
		copy(ciphertext[AESKeyWrapBlockSize:], padded)
		block.Encrypt(ciphertext, ciphertext)
		return ciphertext, nil
	}

	return wrap(block, iv, padded), nil
}

// KeyUnwrapPad performs AES Key Unwrap with Padding (RFC 5649).
func KeyUnwrapPad(block cipher.Block, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%AESKeyWrapBlockSize != 0 || len(ciphertext) < 2*AESKeyWrapBlockSize {
		return nil, ErrInvalidWrappedLength
	}

	var A [AESKeyWrapBlockSize]byte
	var padded []byte
	if len(ciphertext) == 2*AESKeyWrapBlockSize {
		out := make([]byte, 2*AESKeyWrapBlockSize)
		block.Decrypt(out, ciphertext)
		copy(A[:], out)
		padded = make([]byte, AESKeyWrapBlockSize)
		copy(padded, out[AESKeyWrapBlockSize:])
		memguard.WipeBytes(out)
	} else {
		A, padded = unwrap(block, ciphertext)
	}

	var expected [4]byte
	binary.BigEndian.PutUint32(expected[:], AIV)
	if subtle.ConstantTimeCompare(A[:4], expected[:]) != 1 {
		memguard.WipeBytes(padded)
		return nil, ErrIntegrityCheckFailed
	}

	mli := int(binary.BigEndian.Uint32(A[4:]))
	if !validPadding(padded, mli) {
		memguard.WipeBytes(padded)
		return nil, ErrPaddingError
	}

	memguard.WipeBytes(padded[mli:])
	return padded[:mli:mli], nil
}

// validPadding checks mli <= len(padded) <= mli+7 and that every byte after
// mli is zero.
func validPadding(padded []byte, mli int) bool {
	if mli > len(padded) || len(padded) > mli+AESKeyWrapBlockSize-1 {
		return false
	}
	var nz byte
	for _, v := range padded[mli:] {
		nz |= v
	}
	return nz == 0
}

// wrap runs the wrapping process of RFC 3394 section 2.2.1 with initial
// value iv. len(plaintext) must be a multiple of 8 and at least 16.
func wrap(block cipher.Block, iv uint64, plaintext []byte) []byte {
	n := len(plaintext) / AESKeyWrapBlockSize
	ciphertext := make([]byte, (n+1)*AESKeyWrapBlockSize)

	// Copy the plaintext directly into the output buffer (ciphertext)
	copy(ciphertext[AESKeyWrapBlockSize:], plaintext)

	// B = A | R[i]
	var B [2 * AESKeyWrapBlockSize]byte
	defer memguard.WipeBytes(B[:])
	binary.BigEndian.PutUint64(B[:AESKeyWrapBlockSize], iv)

	for j := 0; j <= 5; j++ {
		for i := 1; i <= n; i++ {
			R := ciphertext[i*AESKeyWrapBlockSize : (i+1)*AESKeyWrapBlockSize]
			copy(B[AESKeyWrapBlockSize:], R)
			block.Encrypt(B[:], B[:])

			t := uint64(n*j + i)
			binary.BigEndian.PutUint64(B[:AESKeyWrapBlockSize], binary.BigEndian.Uint64(B[:AESKeyWrapBlockSize])^t)
			copy(R, B[AESKeyWrapBlockSize:])
		}
	}

	// Final A is stored in the first block of ciphertext
	copy(ciphertext[:AESKeyWrapBlockSize], B[:AESKeyWrapBlockSize])

	return ciphertext
}

// unwrap runs the unwrapping process of RFC 3394 section 2.2.2 and returns
// the recovered integrity register with the key data registers. The caller
// checks A.
func unwrap(block cipher.Block, ciphertext []byte) (A [AESKeyWrapBlockSize]byte, plaintext []byte) {
	n := len(ciphertext)/AESKeyWrapBlockSize - 1

	// Copy the ciphertext into the working buffer
	plaintext = make([]byte, n*AESKeyWrapBlockSize)
	copy(plaintext, ciphertext[AESKeyWrapBlockSize:])

	var B [2 * AESKeyWrapBlockSize]byte
	defer memguard.WipeBytes(B[:])
	copy(B[:AESKeyWrapBlockSize], ciphertext[:AESKeyWrapBlockSize])

	for j := 5; j >= 0; j-- {
		for i := n; i >= 1; i-- {
			t := uint64(n*j + i)
			binary.BigEndian.PutUint64(B[:AESKeyWrapBlockSize], binary.BigEndian.Uint64(B[:AESKeyWrapBlockSize])^t)

			R := plaintext[(i-1)*AESKeyWrapBlockSize : i*AESKeyWrapBlockSize]
			copy(B[AESKeyWrapBlockSize:], R)
			block.Decrypt(B[:], B[:])
			copy(R, B[AESKeyWrapBlockSize:])
		}
	}

	copy(A[:], B[:AESKeyWrapBlockSize])
	return A, plaintext
}
