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
	"github.com/jc-lab/softtoken-aes/internal/aeskw"
	"github.com/jc-lab/softtoken-aes/internal/securebuf"
	"github.com/pkg/errors"
)

// WrapKey wraps keyData under kek. AESKeyWrap needs a multiple of 8 bytes and
// at least 16; AESKeyWrapPad accepts any non-empty length.
func WrapKey(kek *Key, wrapType WrapType, keyData []byte) (*securebuf.Buffer, error) {
	block, err := kek.newBlock()
	if err != nil {
		return nil, err
	}

	var wrapped []byte
	switch wrapType {
	case AESKeyWrap:
		wrapped, err = aeskw.KeyWrap(block, keyData)
	case AESKeyWrapPad:
		wrapped, err = aeskw.KeyWrapPad(block, keyData)
	default:
		return nil, errors.Wrapf(ErrInvalidMode, "wrap type %d", int(wrapType))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s wrap of %d bytes", wrapType, len(keyData))
	}

	return securebuf.Own(wrapped), nil
}

// UnwrapKey reverses WrapKey. Integrity and padding failures are returned as
// ErrIntegrityCheckFailed and ErrPaddingError; nothing of the recovered key
// data is returned or left in memory in that case.
func UnwrapKey(kek *Key, wrapType WrapType, wrapped []byte) (*securebuf.Buffer, error) {
	block, err := kek.newBlock()
	if err != nil {
		return nil, err
	}

	var keyData []byte
	switch wrapType {
	case AESKeyWrap:
		keyData, err = aeskw.KeyUnwrap(block, wrapped)
	case AESKeyWrapPad:
		keyData, err = aeskw.KeyUnwrapPad(block, wrapped)
	default:
		return nil, errors.Wrapf(ErrInvalidMode, "wrap type %d", int(wrapType))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s unwrap of %d bytes", wrapType, len(wrapped))
	}

	return securebuf.Own(keyData), nil
}

// WrapKey is WrapKey on a pooled engine; key wrapping keeps no state.
func (a *AES) WrapKey(kek *Key, wrapType WrapType, keyData []byte) (*securebuf.Buffer, error) {
	return WrapKey(kek, wrapType, keyData)
}

// UnwrapKey is UnwrapKey on a pooled engine.
func (a *AES) UnwrapKey(kek *Key, wrapType WrapType, wrapped []byte) (*securebuf.Buffer, error) {
	return UnwrapKey(kek, wrapType, wrapped)
}
