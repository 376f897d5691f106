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
	"github.com/pkg/errors"
)

// Error kinds reported by the engine. Match them with errors.Is; returned
// errors may carry extra context.
var (
	ErrInvalidKeyLength        = errors.New("invalid key length")
	ErrInvalidKey              = errors.New("invalid key")
	ErrInvalidMode             = errors.New("invalid mode")
	ErrInvalidIVLength         = errors.New("invalid IV length")
	ErrInvalidState            = errors.New("operation not valid in current state")
	ErrInvalidDataLength       = errors.New("data is not a multiple of the block size")
	ErrInvalidCiphertextLength = errors.New("ciphertext is not a multiple of the block size")
	ErrNoDataProcessed         = errors.New("no data processed")

	ErrPaddingError         = aeskw.ErrPaddingError
	ErrInvalidKeyDataLength = aeskw.ErrInvalidKeyDataLength
	ErrInvalidWrappedLength = aeskw.ErrInvalidWrappedLength
	ErrIntegrityCheckFailed = aeskw.ErrIntegrityCheckFailed
)

// Reason maps err to a short label for metrics. Unknown errors map to
// "other".
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidKeyLength):
		return "invalid_key_length"
	case errors.Is(err, ErrInvalidKey):
		return "invalid_key"
	case errors.Is(err, ErrInvalidMode):
		return "invalid_mode"
	case errors.Is(err, ErrInvalidIVLength):
		return "invalid_iv_length"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrInvalidDataLength):
		return "invalid_data_length"
	case errors.Is(err, ErrInvalidCiphertextLength):
		return "invalid_ciphertext_length"
	case errors.Is(err, ErrNoDataProcessed):
		return "no_data_processed"
	case errors.Is(err, ErrPaddingError):
		return "padding_error"
	case errors.Is(err, ErrInvalidKeyDataLength):
		return "invalid_key_data_length"
	case errors.Is(err, ErrInvalidWrappedLength):
		return "invalid_wrapped_length"
	case errors.Is(err, ErrIntegrityCheckFailed):
		return "integrity_check_failed"
	default:
		return "other"
	}
}
