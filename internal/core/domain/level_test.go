package domain

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		lifetime  int64
		wantLevel int
		wantNext  int64
	}{
		{0, 1, 1_000},
		{999, 1, 1_000},
		{1_000, 2, 5_000},
		{4_999, 2, 5_000},
		{40_000, 5, 100_000},
		{600_000, 8, 0},
		{9_999_999, 8, 0},
		{-50, 1, 1_000},
	}
	for _, tc := range cases {
		p := LevelFor(tc.lifetime)
		if p.Level != tc.wantLevel {
			t.Fatalf("LevelFor(%d).Level = %d, want %d", tc.lifetime, p.Level, tc.wantLevel)
		}
		if p.NextThreshold != tc.wantNext {
			t.Fatalf("LevelFor(%d).NextThreshold = %d, want %d", tc.lifetime, p.NextThreshold, tc.wantNext)
		}
	}
}
