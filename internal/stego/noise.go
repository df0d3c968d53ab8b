package stego

import "math/rand/v2"

// noiseBound is exclusive: noise nibbles are drawn from [0, 0x0E].
const noiseBound = 0x0F

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // cosmetic noise
}

// fillNoise replaces the low nibble of every slot with a random value.
func fillNoise(slots []uint8, rng *rand.Rand) {
	for i := range slots {
		setLow(slots, i, uint8(rng.IntN(noiseBound))) //nolint:gosec // < 0x0F
	}
}
