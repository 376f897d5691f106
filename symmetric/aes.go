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

// Package symmetric implements the AES engine of the token: ECB and CBC
// streaming sessions with block padding, and RFC 3394 / RFC 5649 key
// wrapping.
package symmetric

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/awnumar/memguard"
	"github.com/jc-lab/softtoken-aes/internal/securebuf"
	"github.com/pkg/errors"
)

// BlockSize is the AES block size in bytes.
const BlockSize = aes.BlockSize

type state int

const (
	stateIdle state = iota
	stateReady
	stateFinalized
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateReady:
		return "ready"
	default:
		return "finalized"
	}
}

// AES is a single-caller AES engine. A streaming session runs
// Init, any number of Update calls, then Final; after Final (or a failed
// Update/Final) the engine must be Reset before the next Init. Instances are
// not safe for concurrent use.
type AES struct {
	state   state
	dir     Direction
	mode    Mode
	padding bool

	block   cipher.Block
	chain   [BlockSize]byte
	pending *securebuf.Buffer

	owner      *Pool
	checkedOut bool
}

// New returns an idle engine that does not belong to a pool.
func New() *AES {
	return &AES{}
}

// BlockSize returns the block size of the engine, always 16.
func (a *AES) BlockSize() int {
	return BlockSize
}

// EncryptInit starts an encryption session. For CBC iv must be one block;
// for ECB it is ignored.
func (a *AES) EncryptInit(key *Key, mode Mode, iv []byte, opts ...Option) error {
	return a.init(Encrypt, key, mode, iv, opts)
}

// DecryptInit starts a decryption session. For CBC iv must be one block;
// for ECB it is ignored.
func (a *AES) DecryptInit(key *Key, mode Mode, iv []byte, opts ...Option) error {
	return a.init(Decrypt, key, mode, iv, opts)
}

func (a *AES) init(dir Direction, key *Key, mode Mode, iv []byte, opts []Option) error {
	if a.state != stateIdle {
		return errors.Wrapf(ErrInvalidState, "%s init in %s state", dir, a.state)
	}

	o := options{padding: true}
	for _, opt := range opts {
		opt(&o)
	}

	switch mode {
	case ECB:
	case CBC:
		if len(iv) != BlockSize {
			return errors.Wrapf(ErrInvalidIVLength, "IV size (%d) != block size (%d)", len(iv), BlockSize)
		}
	default:
		return errors.Wrapf(ErrInvalidMode, "mode %d", int(mode))
	}

	block, err := key.newBlock()
	if err != nil {
		return err
	}

	a.dir = dir
	a.mode = mode
	a.padding = o.padding
	a.block = block
	if mode == CBC {
		copy(a.chain[:], iv)
	}
	a.pending = securebuf.New(0)
	a.state = stateReady
	return nil
}

// EncryptUpdate encrypts every complete block available and keeps the rest
// for the next call or EncryptFinal.
func (a *AES) EncryptUpdate(input []byte) (*securebuf.Buffer, error) {
	if err := a.checkReady(Encrypt, "update"); err != nil {
		return nil, err
	}

	a.pending.Append(input)
	n := a.pending.Len() / BlockSize * BlockSize

	out := securebuf.New(n)
	a.encryptBlocks(out.Bytes(), a.pending.Bytes()[:n])
	a.consume(n)
	return out, nil
}

// DecryptUpdate decrypts the available complete blocks except the last one,
// which is held back so that DecryptFinal can strip the padding.
func (a *AES) DecryptUpdate(input []byte) (*securebuf.Buffer, error) {
	if err := a.checkReady(Decrypt, "update"); err != nil {
		return nil, err
	}

	a.pending.Append(input)
	n := 0
	if l := a.pending.Len(); l > 0 {
		n = (l - 1) / BlockSize * BlockSize
	}

	out := securebuf.New(n)
	a.decryptBlocks(out.Bytes(), a.pending.Bytes()[:n])
	a.consume(n)
	return out, nil
}

// EncryptFinal pads and encrypts the pending bytes and ends the session.
// With padding enabled the result is always exactly one block.
func (a *AES) EncryptFinal() (*securebuf.Buffer, error) {
	if err := a.checkReady(Encrypt, "final"); err != nil {
		return nil, err
	}
	defer a.finish()

	pending := a.pending.Bytes()
	if !a.padding {
		if len(pending) != 0 {
			return nil, errors.Wrapf(ErrInvalidDataLength, "%d bytes left over", len(pending))
		}
		return securebuf.New(0), nil
	}

	var last [BlockSize]byte
	defer memguard.WipeBytes(last[:])
	pad(last[:], pending)

	out := securebuf.New(BlockSize)
	a.encryptBlocks(out.Bytes(), last[:])
	return out, nil
}

// DecryptFinal decrypts the held back block, removes the padding and ends
// the session.
func (a *AES) DecryptFinal() (*securebuf.Buffer, error) {
	if err := a.checkReady(Decrypt, "final"); err != nil {
		return nil, err
	}
	defer a.finish()

	pending := a.pending.Bytes()
	switch {
	case len(pending) == 0 && !a.padding:
		return securebuf.New(0), nil
	case len(pending) == 0:
		return nil, ErrNoDataProcessed
	case len(pending) != BlockSize:
		return nil, ErrInvalidCiphertextLength
	}

	out := securebuf.New(BlockSize)
	a.decryptBlocks(out.Bytes(), pending)
	if !a.padding {
		return out, nil
	}

	n, ok := unpad(out.Bytes())
	if !ok {
		out.Destroy()
		return nil, ErrPaddingError
	}
	out.Resize(n)
	return out, nil
}

// Reset aborts any session, wipes its state and returns the engine to idle.
func (a *AES) Reset() {
	a.wipe()
	a.state = stateIdle
	a.dir = 0
	a.mode = 0
	a.padding = false
}

// checkReady rejects calls outside a session of direction dir. A call of the
// wrong direction ends the running session.
func (a *AES) checkReady(dir Direction, op string) error {
	if a.state != stateReady {
		return errors.Wrapf(ErrInvalidState, "%s %s in %s state", dir, op, a.state)
	}
	if a.dir != dir {
		a.finish()
		return errors.Wrapf(ErrInvalidState, "%s %s in a %s session", dir, op, a.dir)
	}
	return nil
}

func (a *AES) finish() {
	a.wipe()
	a.state = stateFinalized
}

func (a *AES) wipe() {
	memguard.WipeBytes(a.chain[:])
	a.pending.Destroy()
	a.pending = nil
	a.block = nil
}

// consume drops the first n pending bytes.
func (a *AES) consume(n int) {
	p := a.pending.Bytes()
	a.pending.Resize(copy(p, p[n:]))
}

func (a *AES) encryptBlocks(dst, src []byte) {
	for i := 0; i < len(src); i += BlockSize {
		d, s := dst[i:i+BlockSize], src[i:i+BlockSize]
		if a.mode == CBC {
			xorBytes(d, s, a.chain[:])
			a.block.Encrypt(d, d)
			copy(a.chain[:], d)
		} else {
			a.block.Encrypt(d, s)
		}
	}
}

// decryptBlocks requires dst and src not to overlap.
func (a *AES) decryptBlocks(dst, src []byte) {
	for i := 0; i < len(src); i += BlockSize {
		d, s := dst[i:i+BlockSize], src[i:i+BlockSize]
		a.block.Decrypt(d, s)
		if a.mode == CBC {
			xorBytes(d, d, a.chain[:])
			copy(a.chain[:], s)
		}
	}
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
