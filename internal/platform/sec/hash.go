// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain-text password with its stored hash.
//
// A mismatch returns (false, nil). Any other failure — a truncated or
// malformed hash, an unsupported cost — returns a non-nil error so callers
// surface it as an infrastructure fault instead of a silent "no match".
func VerifyPassword(plainTextPassword, existingHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("sec: failed to verify password: %w", err)
}
