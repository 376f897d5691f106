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

package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awnumar/memguard"
	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/jc-lab/softtoken-aes/cmd/util"
	"github.com/jc-lab/softtoken-aes/service"
	"github.com/jc-lab/softtoken-aes/symmetric"
)

var (
	healthzPort    = flag.Int("healthz-port", 8081, "Port on which to publish healthz")
	healthzPath    = flag.String("healthz-path", "healthz", "Path at which to publish healthz")
	healthzTimeout = flag.Duration("healthz-timeout", 5*time.Second, "timeout for running the self test")

	metricsPort = flag.Int("metrics-port", 8082, "Port on which to publish metrics")
	metricsPath = flag.String("metrics-path", "metrics", "Path at which to publish metrics")

	operation = flag.String("op", "serve", "Operation. Possible values: encrypt, decrypt, wrap, unwrap, generate, selftest, serve.")
	mode      = flag.String("mode", "cbc", "Block mode for encrypt/decrypt. Possible values: ecb, cbc.")
	wrapType  = flag.String("wrap", "kwp", "Key wrap algorithm. Possible values: kw (RFC 3394), kwp (RFC 5649).")
	noPadding = flag.Bool("no-padding", false, "Disable block padding; input must be a whole number of blocks")

	keyHex  = flag.String("key", "", "AES_TOKEN_KEY Hex encoded key, or key encryption key for wrap/unwrap. Prompted for when empty.")
	keyBits = flag.Int("key-bits", 256, "Key size for generate. Possible values: 128, 192, 256.")
	ivHex   = flag.String("iv", "", "AES_TOKEN_IV Hex encoded initialization vector for CBC")

	inPath    = flag.String("in", "-", "Input file, - for standard input")
	outPath   = flag.String("out", "-", "Output file, - for standard output")
	hexInput  = flag.Bool("hex-in", false, "Read input hex encoded")
	hexOutput = flag.Bool("hex", false, "Write output hex encoded")
	poolSize  = flag.Int("pool-size", 16, "Number of idle engines kept for reuse")
)

func main() {
	var exitErr error

	flag.Parse()
	useEnv(keyHex, "AES_TOKEN_KEY")
	useEnv(ivHex, "AES_TOKEN_IV")

	// Safely terminate in case of an interrupt signal
	memguard.CatchInterrupt()

	// Purge the session when we return
	defer memguard.Purge()

	defer func() {
		if exitErr != nil {
			glog.Exit(exitErr)
		}
	}()

	svc := service.NewService(symmetric.NewPool(symmetric.WithCapacity(*poolSize)))
	ctx := context.Background()

	switch *operation {
	case "serve":
		exitErr = serve(svc)
	case "selftest":
		if exitErr = svc.SelfTest(ctx); exitErr == nil {
			glog.Info("Self test passed")
		}
	case "generate":
		exitErr = generate()
	case "encrypt", "decrypt":
		exitErr = crypt(ctx, svc, *operation == "encrypt")
	case "wrap", "unwrap":
		exitErr = wrap(ctx, svc, *operation == "wrap")
	default:
		exitErr = fmt.Errorf("invalid value %q for --op", *operation)
	}
}

func useEnv(p *string, name string) {
	if *p != "" {
		return
	}
	*p = os.Getenv(name)
}

func enterKeyIfNeeded(p *string) {
	if *p != "" {
		return
	}

	_, _ = os.Stderr.WriteString("Enter key (hex): ")
	input, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		glog.Exit(err)
	}
	_, _ = os.Stderr.WriteString("\n")
	*p = string(input)
	memguard.WipeBytes(input)
}

// loadKey turns the key flag into a locked key and clears the flag.
func loadKey() (*symmetric.Key, error) {
	enterKeyIfNeeded(keyHex)
	raw := util.MustParseHex("key", *keyHex)
	*keyHex = ""
	defer memguard.WipeBytes(raw)

	return symmetric.NewKey(len(raw)*8, raw)
}

func writeResult(data []byte) error {
	if *hexOutput {
		return util.WriteOutput(*outPath, []byte(hex.EncodeToString(data)+"\n"))
	}
	return util.WriteOutput(*outPath, data)
}

func readInput() ([]byte, error) {
	data, err := util.ReadInput(*inPath)
	if err != nil || !*hexInput {
		return data, err
	}
	defer memguard.WipeBytes(data)
	return util.ParseHex(string(data))
}

func generate() error {
	key, err := symmetric.GenerateKey(*keyBits)
	if err != nil {
		return err
	}
	defer key.Destroy()

	raw, err := key.Bytes()
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(raw)

	return util.WriteOutput(*outPath, []byte(hex.EncodeToString(raw)+"\n"))
}

func crypt(ctx context.Context, svc *service.Service, encrypt bool) error {
	m, err := symmetric.ParseMode(*mode)
	if err != nil {
		return err
	}
	var iv []byte
	if m == symmetric.CBC {
		iv = util.MustParseHex("iv", *ivHex)
	}

	key, err := loadKey()
	if err != nil {
		return err
	}
	defer key.Destroy()

	input, err := readInput()
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(input)

	if encrypt {
		response, err := svc.Encrypt(ctx, &service.EncryptRequest{
			Key:       key,
			Mode:      m,
			IV:        iv,
			Plaintext: input,
			NoPadding: *noPadding,
		})
		if err != nil {
			return err
		}
		return writeResult(response.Ciphertext)
	}

	response, err := svc.Decrypt(ctx, &service.DecryptRequest{
		Key:        key,
		Mode:       m,
		IV:         iv,
		Ciphertext: input,
		NoPadding:  *noPadding,
	})
	if err != nil {
		return err
	}
	defer response.Plaintext.Destroy()
	return writeResult(response.Plaintext.Bytes())
}

func wrap(ctx context.Context, svc *service.Service, isWrap bool) error {
	w, err := symmetric.ParseWrapType(*wrapType)
	if err != nil {
		return err
	}

	kek, err := loadKey()
	if err != nil {
		return err
	}
	defer kek.Destroy()

	input, err := readInput()
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(input)

	if isWrap {
		response, err := svc.WrapKey(ctx, &service.WrapRequest{
			KEK:     kek,
			Type:    w,
			KeyData: input,
		})
		if err != nil {
			return err
		}
		return writeResult(response.Wrapped)
	}

	response, err := svc.UnwrapKey(ctx, &service.UnwrapRequest{
		KEK:     kek,
		Type:    w,
		Wrapped: input,
	})
	if err != nil {
		return err
	}
	defer response.KeyData.Destroy()
	return writeResult(response.KeyData.Bytes())
}

func serve(svc *service.Service) error {
	if err := svc.SelfTest(context.Background()); err != nil {
		return fmt.Errorf("self test failed, refusing to serve: %v", err)
	}

	metrics := &service.Metrics{
		ServingURL: &url.URL{
			Host: fmt.Sprintf("localhost:%d", *metricsPort),
			Path: *metricsPath,
		},
	}

	hc := service.NewHealthChecker(svc, *healthzTimeout, &url.URL{
		Host: fmt.Sprintf("localhost:%d", *healthzPort),
		Path: *healthzPath,
	})

	return run(hc, metrics)
}

func run(h *service.HealthCheckerManager, m *service.Metrics) error {
	signalsChan := make(chan os.Signal, 1)
	signal.Notify(signalsChan, syscall.SIGINT, syscall.SIGTERM)

	metricsErrCh := m.Serve()
	healthzErrCh := h.Serve()

	for {
		select {
		case sig := <-signalsChan:
			return fmt.Errorf("captured %v, shutting down aes-token", sig)
		case metricsErr, ok := <-metricsErrCh:
			if !ok {
				metricsErrCh = nil
				continue
			}
			glog.Warning(metricsErr)
			metricsErrCh = nil
		case healthzErr, ok := <-healthzErrCh:
			if !ok {
				healthzErrCh = nil
				continue
			}
			return healthzErr
		}
	}
}
