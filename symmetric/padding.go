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

import "crypto/subtle"

// pad fills block with data followed by padding bytes whose value is the
// padding length. len(data) < len(block), so there is always at least one
// padding byte and a full block of 0x10 for aligned input.
func pad(block, data []byte) {
	n := copy(block, data)
	p := byte(len(block) - n)
	for i := n; i < len(block); i++ {
		block[i] = p
	}
}

// unpad returns the data length of a padded block. It inspects every byte
// regardless of the padding value.
func unpad(block []byte) (int, bool) {
	size := len(block)
	p := int(block[size-1])

	good := subtle.ConstantTimeLessOrEq(1, p) & subtle.ConstantTimeLessOrEq(p, size)
	for i := 0; i < size; i++ {
		inPad := subtle.ConstantTimeLessOrEq(size, i+p)
		good &= subtle.ConstantTimeSelect(inPad, subtle.ConstantTimeByteEq(block[i], byte(p)), 1)
	}
	if good != 1 {
		return 0, false
	}
	return size - p, true
}
