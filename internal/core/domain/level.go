package domain

// levelThresholds holds the lifetime reward (in integer money units)
// required to reach each level. Index i is the floor of level i+1.
var levelThresholds = []int64{
	0,       // level 1
	1_000,   // level 2
	5_000,   // level 3
	15_000,  // level 4
	40_000,  // level 5
	100_000, // level 6
	250_000, // level 7
	600_000, // level 8
}

// LevelProgress describes where a lifetime reward total sits on the
// level ladder.
type LevelProgress struct {
	Level         int   `json:"level"`
	CurrentFloor  int64 `json:"current_floor"`
	NextThreshold int64 `json:"next_threshold"` // 0 at the top level
}

// LevelFor maps a lifetime reward total onto the level ladder. Negative
// totals are treated as zero.
func LevelFor(lifetimeReward int64) LevelProgress {
	if lifetimeReward < 0 {
		lifetimeReward = 0
	}
	level := 1
	for i := 1; i < len(levelThresholds); i++ {
		if lifetimeReward < levelThresholds[i] {
			break
		}
		level = i + 1
	}
	p := LevelProgress{
		Level:        level,
		CurrentFloor: levelThresholds[level-1],
	}
	if level < len(levelThresholds) {
		p.NextThreshold = levelThresholds[level]
	}
	return p
}
