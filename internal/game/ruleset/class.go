package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive integer interval used for random gains.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ManaGain describes how a class grows mana on level-up.
// Non-casters never gain mana.
type ManaGain struct {
	Caster bool `yaml:"caster"`
	// Cap is the most mana a single level-up may add.
	Cap int `yaml:"cap"`
}

// Practice controls guildmaster training for a class.
type Practice struct {
	LearnedLevel   int    `yaml:"learned_level"`
	MaxPerPractice int    `yaml:"max_per_practice"`
	MinPerPractice int    `yaml:"min_per_practice"`
	Noun           string `yaml:"noun"` // "spell" or "skill"
}

// Guild names the room a class trains in and the exit its guard watches.
type Guild struct {
	Room      string `yaml:"room"`
	Direction string `yaml:"direction"`
}

// SkillUnlock is the minimum level at which a class may use a skill or spell.
type SkillUnlock struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// TitleTable holds the level titles for one sex of one class.
//
// A level present in Levels with an empty string has no title defined; a
// level absent from Levels falls back to Default.
type TitleTable struct {
	Default    string         `yaml:"default"`
	Levels     map[int]string `yaml:"levels"`
	Immortal   string         `yaml:"immortal"`
	God        string         `yaml:"god"`
	GreaterGod string         `yaml:"greater_god"`
}

// Titles pairs the male and female title tables of a class.
type Titles struct {
	Male   TitleTable `yaml:"male"`
	Female TitleTable `yaml:"female"`
}

// Class defines a playable class and every coefficient the progression
// formulas read for it.
//
// Precondition: Key must name one of the ClassID constants after loading.
type Class struct {
	Key        string `yaml:"id"`
	Name       string `yaml:"name"`
	Abbrev     string `yaml:"abbrev"`
	MenuLetter string `yaml:"menu_letter"`

	ExpCoefficient int64          `yaml:"exp_coefficient"`
	SavingThrows   map[string]int `yaml:"saving_throws"`
	AttackBase     int            `yaml:"attack_base"`

	// AbilityPriority receives the rolled scores from highest to lowest.
	AbilityPriority []Ability `yaml:"ability_priority"`
	// ExceptionalStrength grants a percentile bonus on a natural 18 strength.
	ExceptionalStrength bool `yaml:"exceptional_strength"`

	HitGain  Range    `yaml:"hit_gain"`
	MoveGain Range    `yaml:"move_gain"`
	Mana     ManaGain `yaml:"mana"`
	Practice Practice `yaml:"practice"`

	StartingSkills map[string]int `yaml:"starting_skills"`
	Skills         []SkillUnlock  `yaml:"skills"`
	Guild          Guild          `yaml:"guild"`
	Titles         Titles         `yaml:"titles"`

	// Resolved by the Registry.
	ID    ClassID                `yaml:"-"`
	saves [NumSaveCategories]int `yaml:"-"`
}

// SaveBase returns the level-1 saving throw base for category.
//
// Precondition: c was resolved by a Registry and category is valid.
func (c *Class) SaveBase(category SaveCategory) int {
	return c.saves[category]
}

// LoadClasses reads all .yaml files in dir and parses each as a Class.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c Class
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", path, err)
		}
		classes = append(classes, &c)
	}
	return classes, nil
}
