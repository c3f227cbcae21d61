package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Int64  func() int64
	IntN   func(n int) int
	String func(length int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	return Randomizer{
		Int64: random.Int63,
		IntN:  random.Intn,
		String: func(length int) string {
			b := make([]byte, length)
			for i := range b {
				b[i] = letters[random.Intn(len(letters))]
			}

			return string(b)
		},
	}
}
