package frame

import (
	"math"
	"math/rand"
	"testing"
)

func countBlack(frame *Frame) (black, other int) {
	for y := range frame.Height() {
		for x := range frame.Width() {
			switch frame.Cell(x, y) {
			case Black():
				black++
			case White():
			default:
				other++
			}
		}
	}
	return
}

func TestRandomLifeDensity(t *testing.T) {
	const n = 100000
	policy := RandomLife(rand.New(rand.NewSource(42)))
	black := 0
	for i := range n {
		if policy(i%1000, i/1000) == Black() {
			black++
		}
	}
	// 3% of 100000 has a standard deviation of about 54 cells, allow 6 of them
	if math.Abs(float64(black)-0.03*n) > 6*math.Sqrt(n*0.03*0.97) {
		t.Errorf("want about %d black cells but have %d", int(0.03*n), black)
	}
}

func TestRandomizeLifeFillsEveryCell(t *testing.T) {
	for _, threads := range []int{1, 4} {
		frame := mustNew(t, 400, 250, BGR24)
		RandomizeLife(frame, 7, threads)
		black, other := countBlack(frame)
		if other != 0 {
			t.Errorf("threads %d: want only black or white cells but have %d others", threads, other)
		}
		n := float64(frame.Width() * frame.Height())
		if math.Abs(float64(black)-0.03*n) > 6*math.Sqrt(n*0.03*0.97) {
			t.Errorf("threads %d: want about %d black cells but have %d", threads, int(0.03*n), black)
		}
	}
}

func TestRandomizeLifeIsReproducible(t *testing.T) {
	a := mustNew(t, 64, 64, BGR24)
	b := mustNew(t, 64, 64, BGR24)
	RandomizeLife(a, 99, 3)
	RandomizeLife(b, 99, 3)
	for y := range 64 {
		for x := range 64 {
			if a.Cell(x, y) != b.Cell(x, y) {
				t.Fatalf("cell (%d, %d) differs for the same seed", x, y)
			}
		}
	}
}
