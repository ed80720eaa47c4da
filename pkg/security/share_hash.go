package security

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// ShareHashLength symbols from a 64 symbol alphabet, 132 bits of entropy.
	ShareHashLength = 22
	shareAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"
)

// NewShareHash returns a URL-safe public identifier for a share link. nanoid
// reads from crypto/rand.
func NewShareHash() (string, error) {
	return gonanoid.Generate(shareAlphabet, ShareHashLength)
}
