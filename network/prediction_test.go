package network

import (
	"math"
	"testing"
	"time"

	"github.com/semiguerra/lwip-pong/shared/netconfig"
)

func TestZeroValueIsNotDrawable(t *testing.T) {
	var p PredictedBall
	if p.Valid() {
		t.Fatal("zero value reports valid")
	}
	if p.Advance(time.Now()) {
		t.Fatal("zero value advanced")
	}
}

func TestAdvanceExtrapolatesOneFrame(t *testing.T) {
	// The end-to-end contract: a 16.7 ms frame after the authoritative
	// state (40.00, 12.00) v=(0.50, 0.10) lands near (40.50, 12.10).
	var p PredictedBall
	t0 := time.Now()
	p.ApplyAuthoritative(40.00, 12.00, 0.50, 0.10, t0)

	if !p.Advance(t0.Add(16700 * time.Microsecond)) {
		t.Fatal("fresh snapshot did not advance")
	}
	if math.Abs(p.X-40.50) > 0.01 {
		t.Errorf("X = %v, want ≈ 40.50", p.X)
	}
	if math.Abs(p.Y-12.10) > 0.01 {
		t.Errorf("Y = %v, want ≈ 12.10", p.Y)
	}
}

func TestAdvanceCompoundsAcrossFrames(t *testing.T) {
	// Re-basing the timestamp after each advance means N small frames add
	// up to the same displacement as one frame of their total length.
	var split, whole PredictedBall
	t0 := time.Now()
	split.ApplyAuthoritative(10, 10, 0.5, -0.25, t0)
	whole.ApplyAuthoritative(10, 10, 0.5, -0.25, t0)

	at := t0
	for i := 0; i < 10; i++ {
		at = at.Add(10 * time.Millisecond)
		if !split.Advance(at) {
			t.Fatalf("advance %d failed", i)
		}
	}
	if !whole.Advance(t0.Add(100 * time.Millisecond)) {
		t.Fatal("single advance failed")
	}

	if math.Abs(split.X-whole.X) > 1e-9 || math.Abs(split.Y-whole.Y) > 1e-9 {
		t.Errorf("split advance (%v, %v) != whole advance (%v, %v)",
			split.X, split.Y, whole.X, whole.Y)
	}
}

func TestStaleSnapshotSuppressesExtrapolation(t *testing.T) {
	var p PredictedBall
	t0 := time.Now()
	p.ApplyAuthoritative(40, 12, 5, 5, t0)

	if p.Advance(t0.Add(netconfig.StalenessCutoff)) {
		t.Fatal("snapshot at exactly the cutoff still advanced")
	}
	if p.X != 40 || p.Y != 12 {
		t.Fatalf("stale advance moved the ball to (%v, %v)", p.X, p.Y)
	}

	// Just under the cutoff still extrapolates, whatever the velocity.
	if !p.Advance(t0.Add(netconfig.StalenessCutoff - time.Millisecond)) {
		t.Fatal("snapshot under the cutoff refused to advance")
	}
}

func TestAuthoritativeUpdateSnapsWithoutSmoothing(t *testing.T) {
	var p PredictedBall
	t0 := time.Now()
	p.ApplyAuthoritative(10, 10, 1, 1, t0)
	p.Advance(t0.Add(500 * time.Millisecond))

	// The next server state discards the local extrapolation wholesale.
	p.ApplyAuthoritative(70, 3, -1, 0, t0.Add(600*time.Millisecond))
	if p.X != 70 || p.Y != 3 || p.DX != -1 || p.DY != 0 {
		t.Fatalf("authoritative update did not overwrite: %+v", p)
	}
}
