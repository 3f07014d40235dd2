// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals small client-side secrets at rest. It is the
// "secure storage" of the client: the session blob is sealed before it
// reaches the local database and opened when it is read back.
package crypto

import "errors"

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// ErrMalformedBlob is returned by Open when the blob is not a sealed value
// produced by Seal (bad encoding, truncated, wrong key, tampered).
var ErrMalformedBlob = errors.New("malformed sealed blob")

// Sealer encrypts and authenticates JSON values with a key derived from a
// configured secret.
//
// Blob layout (Base64, standard encoding):
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext
//
// The salt feeds Argon2id, so every blob has its own key.
type Sealer interface {
	// Seal marshals v to JSON and returns the sealed blob.
	Seal(v any) (string, error)

	// Open decrypts blob and unmarshals the JSON into target, which must be
	// a non-nil pointer. Any failure wraps [ErrMalformedBlob].
	Open(blob string, target any) error
}
