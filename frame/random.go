package frame

import (
	"math/rand"
	"time"
)

// A draw in [0, 100) at or below liveThreshold makes a live cell, roughly
// three cells in a hundred.
const liveThreshold = 2

// RandomLife returns a policy that draws from rng once per cell and gives a
// black (live) cell for about 3% of draws, white otherwise. rng must not be
// shared between goroutines.
func RandomLife(rng *rand.Rand) FillPolicy {
	return func(x, y int) Pixel {
		if rng.Intn(100) <= liveThreshold {
			return Black()
		}
		return White()
	}
}

// RandomizeLife fills the whole frame with RandomLife. A single generator is
// seeded for the pass, or one per worker when threads > 1. A seed of 0 picks
// one from the clock.
func RandomizeLife(frame *Frame, seed int64, threads int) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	frame.FillCellsParallel(threads, func(worker int) FillPolicy {
		return RandomLife(rand.New(rand.NewSource(seed + int64(worker))))
	})
}
