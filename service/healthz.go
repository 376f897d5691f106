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

package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang/glog"
	"github.com/jc-lab/softtoken-aes/symmetric"
)

// HealthCheckerManager types that encapsulates healthz functionality of the engine.
// The following health checks are performed:
// 1. Running the built-in known-answer tests.
// 2. On request, a round trip with a freshly generated key.
type HealthCheckerManager struct {
	service     *Service
	callTimeout time.Duration
	servingURL  *url.URL
}

func NewHealthChecker(
	service *Service,
	callTimeout time.Duration,
	servingURL *url.URL,
) *HealthCheckerManager {
	return &HealthCheckerManager{
		service:     service,
		callTimeout: callTimeout,
		servingURL:  servingURL,
	}
}

// Serve creates http server for hosting healthz.
func (m *HealthCheckerManager) Serve() chan error {
	errorCh := make(chan error)
	mux := http.NewServeMux()
	mux.HandleFunc(fmt.Sprintf("/%s", m.servingURL.EscapedPath()), m.HandlerFunc)

	go func() {
		defer close(errorCh)
		glog.Infof("Registering healthz listener at %v", m.servingURL)
		select {
		case errorCh <- http.ListenAndServe(m.servingURL.Host, mux):
		default:
		}
	}()

	return errorCh
}

func (m *HealthCheckerManager) HandlerFunc(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), m.callTimeout)
	defer cancel()

	if err := m.service.SelfTest(ctx); err != nil {
		glog.Warningf("Self test failed: %v", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	if r.FormValue("ping-engine") == "true" {
		if err := m.PingEngine(ctx); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// PingEngine encrypts and decrypts a short message under a random key.
func (m *HealthCheckerManager) PingEngine(ctx context.Context) error {
	key, err := symmetric.GenerateKey(256)
	if err != nil {
		return err
	}
	defer key.Destroy()

	iv := make([]byte, symmetric.BlockSize)
	plaintext := []byte("secret")

	encrypted, err := m.service.Encrypt(ctx, &EncryptRequest{
		Key:       key,
		Mode:      symmetric.CBC,
		IV:        iv,
		Plaintext: plaintext,
	})
	if err != nil {
		return fmt.Errorf("failed to ping engine, encrypt: %v", err)
	}

	decrypted, err := m.service.Decrypt(ctx, &DecryptRequest{
		Key:        key,
		Mode:       symmetric.CBC,
		IV:         iv,
		Ciphertext: encrypted.Ciphertext,
	})
	if err != nil {
		return fmt.Errorf("failed to ping engine, decrypt: %v", err)
	}
	defer decrypted.Plaintext.Destroy()

	if !bytes.Equal(decrypted.Plaintext.Bytes(), plaintext) {
		return fmt.Errorf("failed to ping engine, round trip mismatch")
	}
	return nil
}
