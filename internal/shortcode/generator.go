// Package shortcode produces random fixed-length alphanumeric short codes.
package shortcode

import (
	"fmt"
	"math/rand"
)

// Alphabet holds the 62 symbols a short code may contain.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the code length used when nothing else is configured.
const DefaultLength = 6

// Generator draws each character independently and uniformly from Alphabet.
// Codes only need to avoid collisions, so the runtime's non-cryptographic
// source is enough. Safe for concurrent use.
type Generator struct {
	length int
}

// NewGenerator returns a Generator producing codes of the given length.
func NewGenerator(length int) (*Generator, error) {
	if length <= 0 {
		return nil, fmt.Errorf("short code length must be positive, got %d", length)
	}
	return &Generator{length: length}, nil
}

// Length reports how many characters each generated code has.
func (g *Generator) Length() int {
	return g.length
}

// Generate returns a fresh candidate code.
func (g *Generator) Generate() string {
	code := make([]byte, g.length)
	for i := range code {
		code[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(code)
}
