package refresh

import (
	"testing"
	"time"
)

func TestGate_FirstPollIsDue(t *testing.T) {
	g := NewGate(10 * time.Second)
	if !g.Due(time.Now()) {
		t.Fatal("fresh gate should grant the first refresh")
	}
}

func TestGate_FastPollingIsNoOp(t *testing.T) {
	g := NewGate(10 * time.Second)
	now := time.Now()

	if !g.Due(now) {
		t.Fatal("first poll should be due")
	}
	for i := 1; i <= 5; i++ {
		if g.Due(now.Add(time.Duration(i) * time.Second)) {
			t.Fatalf("poll at +%ds granted inside the interval", i)
		}
	}
	if !g.Due(now.Add(10 * time.Second)) {
		t.Fatal("poll at the interval boundary should be due")
	}
}
