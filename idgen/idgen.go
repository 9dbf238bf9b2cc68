// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// EventIDBytes is the amount of randomness in an event id (48 bits)
const EventIDBytes = 6

// MaxAttempts bounds the collision retry loop in UniqueID
const MaxAttempts = 10

var ErrExhausted = errors.New("could not generate an unused id")

// GenerateShortID creates a random base62 id from byteLen random bytes.
// byteLen must be at most 8.
func GenerateShortID(byteLen int) (string, error) {
	if byteLen < 1 || byteLen > 8 {
		return "", fmt.Errorf("invalid id length %d", byteLen)
	}
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return base62Encode(b), nil
}

// UniqueID draws ids until one is not taken, giving up after MaxAttempts
func UniqueID(taken func(id string) bool) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		id, err := GenerateShortID(EventIDBytes)
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrExhausted
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
// This creates URL-friendly ids without special characters
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
