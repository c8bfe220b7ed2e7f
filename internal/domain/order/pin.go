package order

import (
	"math/rand/v2"
	"strconv"
)

// PINGenerator produces customer confirmation PINs
type PINGenerator interface {
	Generate() string
}

// RandomPINGenerator draws PINs uniformly from [1000, 9999]
type RandomPINGenerator struct{}

// Generate returns a 4 digit PIN
func (RandomPINGenerator) Generate() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}

// FixedPINGenerator always returns the same PIN
type FixedPINGenerator string

// Generate returns the fixed PIN
func (p FixedPINGenerator) Generate() string {
	return string(p)
}
