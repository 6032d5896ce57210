// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordHashMethod = "pbkdf2:sha256"
	passwordSaltLength = 16
	passwordKeyLength  = sha256.Size
	saltAlphabet       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrMalformedPasswordHash is returned when a stored hash cannot be parsed.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// HashPassword derives a salted PBKDF2-HMAC-SHA256 digest of rawPassword.
//
// The result is self-describing and has the form
//
//	pbkdf2:sha256:<iterations>$<salt>$<hex digest>
//
// so a hash stays verifiable after the configured iteration count changes.
func HashPassword(rawPassword string, iterations int) (string, error) {
	if iterations <= 0 {
		return "", fmt.Errorf("invalid iteration count %d", iterations)
	}

	salt, err := generateSalt(passwordSaltLength)
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	digest := pbkdf2.Key([]byte(rawPassword), []byte(salt), iterations, passwordKeyLength, sha256.New)

	return fmt.Sprintf("%s:%d$%s$%s", passwordHashMethod, iterations, salt, hex.EncodeToString(digest)), nil
}

// CheckPassword recomputes the digest of rawPassword with the salt and
// iteration count stored in passwordHash and compares both digests in
// constant time. A malformed hash never matches.
func CheckPassword(passwordHash, rawPassword string) bool {
	iterations, salt, want, err := parsePasswordHash(passwordHash)
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(rawPassword), []byte(salt), iterations, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}

func parsePasswordHash(passwordHash string) (int, string, []byte, error) {
	parts := strings.Split(passwordHash, "$")
	if len(parts) != 3 {
		return 0, "", nil, ErrMalformedPasswordHash
	}

	method, salt, digestHex := parts[0], parts[1], parts[2]
	if !strings.HasPrefix(method, passwordHashMethod+":") || salt == "" {
		return 0, "", nil, ErrMalformedPasswordHash
	}

	iterations, err := strconv.Atoi(strings.TrimPrefix(method, passwordHashMethod+":"))
	if err != nil || iterations <= 0 {
		return 0, "", nil, ErrMalformedPasswordHash
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil || len(digest) == 0 {
		return 0, "", nil, ErrMalformedPasswordHash
	}

	return iterations, salt, digest, nil
}

func generateSalt(length int) (string, error) {
	return saltFrom(rand.Reader, length)
}

// saltFrom draws length characters of saltAlphabet from src. Bytes at or
// above the largest multiple of the alphabet size are discarded so every
// character is equally likely.
func saltFrom(src io.Reader, length int) (string, error) {
	const limit = 256 - 256%len(saltAlphabet)

	salt := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(salt) < length {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			salt = append(salt, saltAlphabet[int(b)%len(saltAlphabet)])
			if len(salt) == length {
				break
			}
		}
	}

	return string(salt), nil
}
