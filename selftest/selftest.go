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

// Package selftest runs known-answer tests through the AES engine, the way a
// token checks its cipher implementation before serving requests.
package selftest

import (
	_ "embed"
	"encoding/hex"

	"github.com/awnumar/memguard"
	"github.com/jc-lab/softtoken-aes/internal/securebuf"
	"github.com/jc-lab/softtoken-aes/symmetric"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed vectors.yaml
var defaultVectors []byte

type ModeVector struct {
	Mode       string `yaml:"mode"`
	Key        string `yaml:"key"`
	IV         string `yaml:"iv"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

type WrapVector struct {
	Type    string `yaml:"type"`
	KEK     string `yaml:"kek"`
	Key     string `yaml:"key"`
	Wrapped string `yaml:"wrapped"`
}

type Vectors struct {
	Modes []ModeVector `yaml:"modes"`
	Wraps []WrapVector `yaml:"wraps"`
}

// Load parses a YAML vector set.
func Load(data []byte) (*Vectors, error) {
	var v Vectors
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "parse vectors")
	}
	if len(v.Modes) == 0 && len(v.Wraps) == 0 {
		return nil, errors.New("no vectors")
	}
	return &v, nil
}

// Default returns the built-in vector set.
func Default() (*Vectors, error) {
	return Load(defaultVectors)
}

// Run checks every vector against engines taken from pool and returns the
// number of checks passed. It stops at the first failure.
func Run(pool *symmetric.Pool, vectors *Vectors) (int, error) {
	passed := 0
	for i, v := range vectors.Modes {
		if err := runMode(pool, &v); err != nil {
			return passed, errors.Wrapf(err, "mode vector %d (%s)", i, v.Mode)
		}
		passed++
	}
	for i, v := range vectors.Wraps {
		if err := runWrap(pool, &v); err != nil {
			return passed, errors.Wrapf(err, "wrap vector %d (%s)", i, v.Type)
		}
		passed++
	}
	return passed, nil
}

func decodeKey(s string) (*symmetric.Key, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)
	return symmetric.NewKey(len(raw)*8, raw)
}

func runMode(pool *symmetric.Pool, v *ModeVector) error {
	mode, err := symmetric.ParseMode(v.Mode)
	if err != nil {
		return err
	}
	key, err := decodeKey(v.Key)
	if err != nil {
		return err
	}
	defer key.Destroy()

	iv, err := hex.DecodeString(v.IV)
	if err != nil {
		return err
	}
	plaintext, err := hex.DecodeString(v.Plaintext)
	if err != nil {
		return err
	}
	expected, err := hex.DecodeString(v.Ciphertext)
	if err != nil {
		return err
	}

	ciphertext, err := crypt(pool, symmetric.Encrypt, key, mode, iv, plaintext)
	if err != nil {
		return err
	}
	defer ciphertext.Destroy()
	if !ciphertext.Equal(securebuf.FromBytes(expected)) {
		return errors.New("ciphertext mismatch")
	}

	decrypted, err := crypt(pool, symmetric.Decrypt, key, mode, iv, expected)
	if err != nil {
		return err
	}
	defer decrypted.Destroy()
	if !decrypted.Equal(securebuf.FromBytes(plaintext)) {
		return errors.New("plaintext mismatch")
	}
	return nil
}

// crypt runs a whole session, splitting the input in two updates so that the
// block buffering is exercised as well.
func crypt(pool *symmetric.Pool, dir symmetric.Direction, key *symmetric.Key, mode symmetric.Mode, iv, input []byte) (*securebuf.Buffer, error) {
	a := pool.Get()
	defer pool.Recycle(a)

	start, update, final := a.EncryptInit, a.EncryptUpdate, a.EncryptFinal
	if dir == symmetric.Decrypt {
		start, update, final = a.DecryptInit, a.DecryptUpdate, a.DecryptFinal
	}

	if err := start(key, mode, iv); err != nil {
		return nil, err
	}

	out := securebuf.New(0)
	half := len(input) / 2
	for _, chunk := range [][]byte{input[:half], input[half:]} {
		ob, err := update(chunk)
		if err != nil {
			out.Destroy()
			return nil, err
		}
		out.Append(ob.Bytes())
		ob.Destroy()
	}

	ob, err := final()
	if err != nil {
		out.Destroy()
		return nil, err
	}
	out.Append(ob.Bytes())
	ob.Destroy()
	return out, nil
}

func runWrap(pool *symmetric.Pool, v *WrapVector) error {
	wrapType, err := symmetric.ParseWrapType(v.Type)
	if err != nil {
		return err
	}
	kek, err := decodeKey(v.KEK)
	if err != nil {
		return err
	}
	defer kek.Destroy()

	keyData, err := hex.DecodeString(v.Key)
	if err != nil {
		return err
	}
	expected, err := hex.DecodeString(v.Wrapped)
	if err != nil {
		return err
	}

	a := pool.Get()
	defer pool.Recycle(a)

	wrapped, err := a.WrapKey(kek, wrapType, keyData)
	if err != nil {
		return err
	}
	defer wrapped.Destroy()
	if !wrapped.Equal(securebuf.FromBytes(expected)) {
		return errors.New("wrapped key mismatch")
	}

	unwrapped, err := a.UnwrapKey(kek, wrapType, expected)
	if err != nil {
		return err
	}
	defer unwrapped.Destroy()
	if !unwrapped.Equal(securebuf.FromBytes(keyData)) {
		return errors.New("unwrapped key mismatch")
	}

	// the integrity check must reject a modified blob
	expected[len(expected)-1] ^= 0x01
	if tampered, err := a.UnwrapKey(kek, wrapType, expected); err == nil {
		tampered.Destroy()
		return errors.New("modified wrapped key was accepted")
	}
	return nil
}
