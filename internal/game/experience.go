package game

// MaxLevel is the highest level a player can reach.
const MaxLevel = 10

// levelTable holds the cumulative XP required to reach each level.
// Index 0 = level 1 (0 XP), index 1 = level 2 (1000 XP), etc.
var levelTable = [MaxLevel]int{
	0,     // Level 1
	1000,  // Level 2
	2500,  // Level 3
	5000,  // Level 4
	9000,  // Level 5
	14000, // Level 6
	20000, // Level 7
	27000, // Level 8
	35000, // Level 9
	45000, // Level 10
}

// ExpForLevel returns the cumulative XP required to reach the given level.
func ExpForLevel(level int) int {
	if level < 1 {
		return 0
	}
	if level > MaxLevel {
		return levelTable[MaxLevel-1]
	}
	return levelTable[level-1]
}

// CalculateLevel returns the highest level whose threshold is within the
// given total XP. Monotonic: more XP never yields a lower level.
func CalculateLevel(totalExp int) int {
	level := 1
	for lvl := 2; lvl <= MaxLevel; lvl++ {
		if totalExp >= ExpForLevel(lvl) {
			level = lvl
		} else {
			break
		}
	}
	return level
}

// NextLevelThreshold returns the cumulative XP needed for the next level,
// or 0 and false at the max level.
func NextLevelThreshold(level int) (int, bool) {
	if level >= MaxLevel {
		return 0, false
	}
	return ExpForLevel(level + 1), true
}

// ExperienceProgress describes how far a player is through their current
// level. At the max level Percent is 100 and HasNext is false.
type ExperienceProgress struct {
	Level      int
	TotalExp   int
	ExpInLevel int
	ExpForNext int
	Percent    int
	HasNext    bool
}

// GetExperienceProgress computes progress toward the next level threshold.
func GetExperienceProgress(totalExp int) ExperienceProgress {
	level := CalculateLevel(totalExp)
	current := ExpForLevel(level)

	next, ok := NextLevelThreshold(level)
	if !ok {
		return ExperienceProgress{
			Level:      level,
			TotalExp:   totalExp,
			ExpInLevel: totalExp - current,
			Percent:    100,
		}
	}

	span := next - current
	earned := totalExp - current
	percent := 0
	if span > 0 {
		percent = earned * 100 / span
	}

	return ExperienceProgress{
		Level:      level,
		TotalExp:   totalExp,
		ExpInLevel: earned,
		ExpForNext: next,
		Percent:    percent,
		HasNext:    true,
	}
}

// AddExperience adds XP; totals never go below zero.
func AddExperience(current, amount int) int {
	total := current + amount
	if total < 0 {
		return 0
	}
	return total
}
