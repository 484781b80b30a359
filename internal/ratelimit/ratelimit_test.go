package ratelimit

import "testing"

func TestKeyedAllow(t *testing.T) {
	tests := []struct {
		name     string
		rps      float64
		burst    int
		calls    int
		wantPass int
	}{
		{name: "burst allows initial requests", rps: 1, burst: 3, calls: 3, wantPass: 3},
		{name: "exceeding burst blocks", rps: 1, burst: 2, calls: 5, wantPass: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := New(tt.rps, tt.burst)
			passed := 0
			for i := 0; i < tt.calls; i++ {
				if k.Allow("key") {
					passed++
				}
			}
			if passed != tt.wantPass {
				t.Errorf("passed = %d, want %d", passed, tt.wantPass)
			}
		})
	}
}

func TestKeysAreIndependent(t *testing.T) {
	k := New(1, 1)

	if !k.Allow("a") {
		t.Fatal("first request for key a must pass")
	}
	if k.Allow("a") {
		t.Error("second request for key a must be limited")
	}
	if !k.Allow("b") {
		t.Error("key b has its own bucket and must pass")
	}
}
