package ruleset

// Level tiers. Every mortal formula treats LevelImmortal as the ceiling.
const (
	LevelImmortal    = 51
	LevelGod         = 52
	LevelGreaterGod  = 53
	LevelImplementor = 54
)

// ExpMax is the experience granted to implementors. Every class coefficient
// must keep ExperienceRequired below it at LevelImplementor.
const ExpMax int64 = 4_100_000_000

// IsImmortal reports whether level is at or above the immortal threshold.
func IsImmortal(level int) bool {
	return level >= LevelImmortal
}
