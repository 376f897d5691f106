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

// Package service exposes the AES engine as one-shot operations over an
// engine pool, with metrics and an HTTP health check that runs the
// known-answer self test.
package service

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/jc-lab/softtoken-aes/internal/securebuf"
	"github.com/jc-lab/softtoken-aes/selftest"
	"github.com/jc-lab/softtoken-aes/symmetric"
)

const (
	opEncrypt  = "encrypt"
	opDecrypt  = "decrypt"
	opWrap     = "wrap"
	opUnwrap   = "unwrap"
	opSelfTest = "selftest"
)

// Service runs one-shot engine operations on engines borrowed from a pool.
type Service struct {
	pool *symmetric.Pool
}

// EncryptRequest is the input of Encrypt. IV is ignored in ECB mode.
type EncryptRequest struct {
	Key       *symmetric.Key
	Mode      symmetric.Mode
	IV        []byte
	Plaintext []byte
	// NoPadding requires Plaintext to be a whole number of blocks.
	NoPadding bool
}

// EncryptResponse holds the padded ciphertext.
type EncryptResponse struct {
	Ciphertext []byte
}

// DecryptRequest is the input of Decrypt. IV is ignored in ECB mode.
type DecryptRequest struct {
	Key        *symmetric.Key
	Mode       symmetric.Mode
	IV         []byte
	Ciphertext []byte
	NoPadding  bool
}

// DecryptResponse carries the plaintext in a wiping buffer; the caller
// destroys it.
type DecryptResponse struct {
	Plaintext *securebuf.Buffer
}

// WrapRequest is the input of WrapKey.
type WrapRequest struct {
	KEK     *symmetric.Key
	Type    symmetric.WrapType
	KeyData []byte
}

// WrapResponse holds the wrapped key, 8 bytes longer than the padded key data.
type WrapResponse struct {
	Wrapped []byte
}

// UnwrapRequest is the input of UnwrapKey.
type UnwrapRequest struct {
	KEK     *symmetric.Key
	Type    symmetric.WrapType
	Wrapped []byte
}

// UnwrapResponse carries the key data in a wiping buffer; the caller
// destroys it.
type UnwrapResponse struct {
	KeyData *securebuf.Buffer
}

// NewService returns a Service that borrows engines from pool.
func NewService(pool *symmetric.Pool) *Service {
	return &Service{
		pool: pool,
	}
}

// Encrypt runs a whole encryption session on a pooled engine.
func (s *Service) Encrypt(ctx context.Context, request *EncryptRequest) (*EncryptResponse, error) {
	uid := uuid.NewString()
	glog.V(4).Infof("Processing request for encryption %s (%s, %d bytes)", uid, request.Mode, len(request.Plaintext))
	defer RecordCryptoOperation(opEncrypt, time.Now().UTC())
	OperationsTotal.WithLabelValues(opEncrypt).Inc()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := s.stream(symmetric.Encrypt, request.Key, request.Mode, request.IV, request.Plaintext, request.NoPadding)
	if err != nil {
		RecordFailure(opEncrypt, err)
		glog.V(4).Infof("Failed request for encryption %s: %v", uid, err)
		return nil, err
	}
	defer out.Destroy()

	glog.V(4).Infof("Processed request for encryption %s", uid)
	return &EncryptResponse{
		Ciphertext: append([]byte(nil), out.Bytes()...),
	}, nil
}

// Decrypt runs a whole decryption session on a pooled engine.
func (s *Service) Decrypt(ctx context.Context, request *DecryptRequest) (*DecryptResponse, error) {
	uid := uuid.NewString()
	glog.V(4).Infof("Processing request for decryption %s (%s, %d bytes)", uid, request.Mode, len(request.Ciphertext))
	defer RecordCryptoOperation(opDecrypt, time.Now().UTC())
	OperationsTotal.WithLabelValues(opDecrypt).Inc()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := s.stream(symmetric.Decrypt, request.Key, request.Mode, request.IV, request.Ciphertext, request.NoPadding)
	if err != nil {
		RecordFailure(opDecrypt, err)
		glog.V(4).Infof("Failed request for decryption %s: %v", uid, err)
		return nil, err
	}

	glog.V(4).Infof("Processed request for decryption %s", uid)
	return &DecryptResponse{
		Plaintext: out,
	}, nil
}

// WrapKey wraps key data under a KEK.
func (s *Service) WrapKey(ctx context.Context, request *WrapRequest) (*WrapResponse, error) {
	uid := uuid.NewString()
	glog.V(4).Infof("Processing request for key wrap %s (%s)", uid, request.Type)
	defer RecordCryptoOperation(opWrap, time.Now().UTC())
	OperationsTotal.WithLabelValues(opWrap).Inc()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := s.pool.Get()
	defer s.pool.Recycle(a)

	wrapped, err := a.WrapKey(request.KEK, request.Type, request.KeyData)
	if err != nil {
		RecordFailure(opWrap, err)
		glog.V(4).Infof("Failed request for key wrap %s: %v", uid, err)
		return nil, err
	}
	defer wrapped.Destroy()

	return &WrapResponse{
		Wrapped: append([]byte(nil), wrapped.Bytes()...),
	}, nil
}

// UnwrapKey recovers key data wrapped under a KEK. Integrity and padding
// failures are returned as is.
func (s *Service) UnwrapKey(ctx context.Context, request *UnwrapRequest) (*UnwrapResponse, error) {
	uid := uuid.NewString()
	glog.V(4).Infof("Processing request for key unwrap %s (%s)", uid, request.Type)
	defer RecordCryptoOperation(opUnwrap, time.Now().UTC())
	OperationsTotal.WithLabelValues(opUnwrap).Inc()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := s.pool.Get()
	defer s.pool.Recycle(a)

	keyData, err := a.UnwrapKey(request.KEK, request.Type, request.Wrapped)
	if err != nil {
		RecordFailure(opUnwrap, err)
		glog.V(4).Infof("Failed request for key unwrap %s: %v", uid, err)
		return nil, err
	}

	return &UnwrapResponse{
		KeyData: keyData,
	}, nil
}

// SelfTest runs the built-in known-answer tests. The tests themselves cannot
// be interrupted; ctx only bounds how long the caller waits.
func (s *Service) SelfTest(ctx context.Context) error {
	defer RecordCryptoOperation(opSelfTest, time.Now().UTC())
	OperationsTotal.WithLabelValues(opSelfTest).Inc()

	if err := ctx.Err(); err != nil {
		RecordFailure(opSelfTest, err)
		return err
	}

	vectors, err := selftest.Default()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		passed, err := selftest.Run(s.pool, vectors)
		glog.V(4).Infof("Self test passed %d vectors", passed)
		done <- err
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		RecordFailure(opSelfTest, err)
	}
	return err
}

func (s *Service) stream(dir symmetric.Direction, key *symmetric.Key, mode symmetric.Mode, iv, input []byte, noPadding bool) (*securebuf.Buffer, error) {
	a := s.pool.Get()
	defer s.pool.Recycle(a)

	var opts []symmetric.Option
	if noPadding {
		opts = append(opts, symmetric.WithoutPadding())
	}

	var err error
	var body, tail *securebuf.Buffer
	if dir == symmetric.Encrypt {
		if err = a.EncryptInit(key, mode, iv, opts...); err != nil {
			return nil, err
		}
		if body, err = a.EncryptUpdate(input); err != nil {
			return nil, err
		}
		tail, err = a.EncryptFinal()
	} else {
		if err = a.DecryptInit(key, mode, iv, opts...); err != nil {
			return nil, err
		}
		if body, err = a.DecryptUpdate(input); err != nil {
			return nil, err
		}
		tail, err = a.DecryptFinal()
	}
	if err != nil {
		body.Destroy()
		return nil, err
	}

	body.Append(tail.Bytes())
	tail.Destroy()
	return body, nil
}
