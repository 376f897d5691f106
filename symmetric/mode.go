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
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the block chaining mode of a streaming session.
type Mode int

const (
	ECB Mode = iota + 1
	CBC
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	default:
		return "unknown"
	}
}

// ParseMode accepts "ecb" or "cbc" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ecb":
		return ECB, nil
	case "cbc":
		return CBC, nil
	}
	return 0, errors.Wrapf(ErrInvalidMode, "%q", s)
}

// WrapType selects the key wrapping algorithm.
type WrapType int

const (
	// AESKeyWrap is RFC 3394.
	AESKeyWrap WrapType = iota + 1
	// AESKeyWrapPad is RFC 5649.
	AESKeyWrapPad
)

func (w WrapType) String() string {
	switch w {
	case AESKeyWrap:
		return "AES_KEYWRAP"
	case AESKeyWrapPad:
		return "AES_KEYWRAP_PAD"
	default:
		return "unknown"
	}
}

// ParseWrapType accepts "kw"/"aes_keywrap" and "kwp"/"aes_keywrap_pad".
func ParseWrapType(s string) (WrapType, error) {
	switch strings.ToLower(s) {
	case "kw", "aes_keywrap":
		return AESKeyWrap, nil
	case "kwp", "aes_keywrap_pad":
		return AESKeyWrapPad, nil
	}
	return 0, errors.Wrapf(ErrInvalidMode, "unknown wrap type %q", s)
}

// Direction of a streaming session.
type Direction int

const (
	Encrypt Direction = iota + 1
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

type options struct {
	padding bool
}

// Option configures EncryptInit and DecryptInit.
type Option func(*options)

// WithoutPadding disables block padding. Input must then be block aligned.
func WithoutPadding() Option {
	return func(o *options) {
		o.padding = false
	}
}
