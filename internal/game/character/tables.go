package character

// Constitution hit point adjustment per level, indexed by score 0..25.
var conHitp = [...]int{
	-4, -3, -2, -2, -1, -1, -1, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 2, 2, 3, 3,
	4, 5, 5, 5, 6, 6,
}

// Wisdom practice bonus per level, indexed by score 0..25.
var wisBonus = [...]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 2, 2, 3, 3, 3, 4, 5, 6,
	6, 6, 6, 7, 7, 7,
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score >= len(conHitp):
		return len(conHitp) - 1
	}
	return score
}

// ConHitBonus returns the hit point adjustment for a constitution score.
// Scores outside 0..25 are clamped.
func ConHitBonus(con int) int {
	return conHitp[clampScore(con)]
}

// WisPracticeBonus returns the practice bonus for a wisdom score.
// Scores outside 0..25 are clamped.
func WisPracticeBonus(wis int) int {
	return wisBonus[clampScore(wis)]
}
