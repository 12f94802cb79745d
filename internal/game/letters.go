package game

import "math/rand/v2"

// PickLetter draws the letter for the next round, uniformly from Letters
func PickLetter() string {
	return Letters[rand.IntN(len(Letters))]
}
