package ruleset

// Title returns the default title for a character of the given class, sex and
// level.
//
// Postcondition: ok is false only when the content lists the level with no
// title text; such gaps are content to be written, not an empty title.
func (r *Registry) Title(id ClassID, sex Sex, level int) (title string, ok bool) {
	female := sex == SexFemale
	if level <= 0 || level > LevelImplementor {
		if female {
			return "the Woman", true
		}
		return "the Man", true
	}
	if level == LevelImplementor {
		if female {
			return "the Implementress", true
		}
		return "the Implementor", true
	}

	c, found := r.classes[id]
	if !found {
		return "the Classless", true
	}
	table := c.Titles.Male
	if female {
		table = c.Titles.Female
	}

	if t, listed := table.Levels[level]; listed {
		if t == "" {
			return "", false
		}
		return t, true
	}
	switch level {
	case LevelImmortal:
		return table.Immortal, true
	case LevelGod:
		return table.God, true
	case LevelGreaterGod:
		return table.GreaterGod, true
	}
	return table.Default, true
}
