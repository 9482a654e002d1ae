package ruleset

import (
	"errors"
	"fmt"
	"strings"
)

// Registry indexes the loaded classes and races by enumeration.
// It is immutable after NewRegistry returns.
type Registry struct {
	classes map[ClassID]*Class
	races   map[RaceID]*Race
}

// NewRegistry validates classes and races and indexes them.
//
// Precondition: every playable class and race must appear exactly once.
// Postcondition: Returns a Registry or an error describing every violation found.
func NewRegistry(classes []*Class, races []*Race) (*Registry, error) {
	r := &Registry{
		classes: make(map[ClassID]*Class, len(classes)),
		races:   make(map[RaceID]*Race, len(races)),
	}

	var errs []error
	letters := make(map[string]string)
	for _, c := range classes {
		if c == nil {
			errs = append(errs, errors.New("nil class definition"))
			continue
		}
		id, err := ParseClassID(c.Key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := r.classes[id]; dup {
			errs = append(errs, fmt.Errorf("duplicate class %q", c.Key))
			continue
		}
		c.ID = id
		if err := resolveClass(c); err != nil {
			errs = append(errs, fmt.Errorf("class %q: %w", c.Key, err))
		}
		if prev, dup := letters[c.MenuLetter]; dup {
			errs = append(errs, fmt.Errorf("class %q: menu letter %q already used by %q", c.Key, c.MenuLetter, prev))
		}
		letters[c.MenuLetter] = c.Key
		r.classes[id] = c
	}
	for _, id := range AllClasses() {
		if _, ok := r.classes[id]; !ok {
			errs = append(errs, fmt.Errorf("missing class definition %q", id.Key()))
		}
	}

	raceLetters := make(map[string]string)
	for _, rc := range races {
		if rc == nil {
			errs = append(errs, errors.New("nil race definition"))
			continue
		}
		id, err := ParseRaceID(rc.Key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := r.races[id]; dup {
			errs = append(errs, fmt.Errorf("duplicate race %q", rc.Key))
			continue
		}
		if rc.Name == "" {
			errs = append(errs, fmt.Errorf("race %q: name must not be empty", rc.Key))
		}
		if len(rc.MenuLetter) != 1 {
			errs = append(errs, fmt.Errorf("race %q: menu_letter must be a single character", rc.Key))
		}
		if prev, dup := raceLetters[rc.MenuLetter]; dup {
			errs = append(errs, fmt.Errorf("race %q: menu letter %q already used by %q", rc.Key, rc.MenuLetter, prev))
		}
		raceLetters[rc.MenuLetter] = rc.Key
		rc.ID = id
		r.races[id] = rc
	}
	for i := 0; i < NumRaces; i++ {
		if _, ok := r.races[RaceID(i)]; !ok {
			errs = append(errs, fmt.Errorf("missing race definition %q", RaceID(i).Key()))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid ruleset: %w", errors.Join(errs...))
	}
	return r, nil
}

// LoadRegistry loads classes and races from their content directories and
// builds a Registry.
func LoadRegistry(classesDir, racesDir string) (*Registry, error) {
	classes, err := LoadClasses(classesDir)
	if err != nil {
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	races, err := LoadRaces(racesDir)
	if err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}
	return NewRegistry(classes, races)
}

func resolveClass(c *Class) error {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if len(c.MenuLetter) != 1 {
		errs = append(errs, "menu_letter must be a single character")
	}

	top := int64(LevelImplementor) * c.ExpCoefficient
	switch {
	case c.ExpCoefficient <= 0:
		errs = append(errs, fmt.Sprintf("exp_coefficient must be > 0, got %d", c.ExpCoefficient))
	case top*top >= ExpMax:
		errs = append(errs, fmt.Sprintf("exp_coefficient %d overflows the experience ceiling %d at level %d", c.ExpCoefficient, ExpMax, LevelImplementor))
	}

	for key := range c.SavingThrows {
		if _, err := ParseSaveCategory(key); err != nil {
			errs = append(errs, err.Error())
		}
	}
	for i, key := range saveKeys {
		base, ok := c.SavingThrows[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("saving_throws.%s is missing", key))
			continue
		}
		if base < 0 || base > 100 {
			errs = append(errs, fmt.Sprintf("saving_throws.%s must be 0-100, got %d", key, base))
		}
		c.saves[i] = base
	}
	if c.AttackBase < 0 || c.AttackBase > 100 {
		errs = append(errs, fmt.Sprintf("attack_base must be 0-100, got %d", c.AttackBase))
	}

	if err := validatePriority(c.AbilityPriority); err != nil {
		errs = append(errs, err.Error())
	}
	if c.HitGain.Min > c.HitGain.Max {
		errs = append(errs, fmt.Sprintf("hit_gain min %d exceeds max %d", c.HitGain.Min, c.HitGain.Max))
	}
	if c.MoveGain.Min < 0 || c.MoveGain.Min > c.MoveGain.Max {
		errs = append(errs, fmt.Sprintf("move_gain must satisfy 0 <= min <= max, got [%d, %d]", c.MoveGain.Min, c.MoveGain.Max))
	}
	if c.Mana.Caster && c.Mana.Cap <= 0 {
		errs = append(errs, "mana.cap must be > 0 for casters")
	}
	if c.Titles.Male.Default == "" || c.Titles.Female.Default == "" {
		errs = append(errs, "titles.male.default and titles.female.default must not be empty")
	}
	for _, s := range c.Skills {
		if s.Level < 1 || s.Level >= LevelImmortal {
			errs = append(errs, fmt.Sprintf("skill %q unlock level %d outside mortal range", s.Name, s.Level))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validatePriority(p []Ability) error {
	if len(p) != len(AllAbilities) {
		return fmt.Errorf("ability_priority must list %d abilities, got %d", len(AllAbilities), len(p))
	}
	seen := make(map[Ability]bool, len(p))
	for _, a := range p {
		if !a.Valid() {
			return fmt.Errorf("ability_priority: unknown ability %q", a)
		}
		if seen[a] {
			return fmt.Errorf("ability_priority: %q listed twice", a)
		}
		seen[a] = true
	}
	return nil
}

// Class returns the definition of id.
//
// Postcondition: Returns (class, true) for a playable class, or (nil, false).
func (r *Registry) Class(id ClassID) (*Class, bool) {
	c, ok := r.classes[id]
	return c, ok
}

// Race returns the definition of id.
func (r *Registry) Race(id RaceID) (*Race, bool) {
	rc, ok := r.races[id]
	return rc, ok
}

// Classes returns every class definition ordered by ClassID.
func (r *Registry) Classes() []*Class {
	out := make([]*Class, 0, len(r.classes))
	for _, id := range AllClasses() {
		if c, ok := r.classes[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ClassName returns the display name of id, or "undefined".
func (r *Registry) ClassName(id ClassID) string {
	if c, ok := r.classes[id]; ok {
		return c.Name
	}
	return "undefined"
}

// RaceName returns the display name of id, or "undefined".
func (r *Registry) RaceName(id RaceID) string {
	if rc, ok := r.races[id]; ok {
		return rc.Name
	}
	return "undefined"
}

// FindClassAbbrev returns the first class, in ClassID order, whose name
// starts with arg (case-insensitive). An empty arg never matches.
func (r *Registry) FindClassAbbrev(arg string) (ClassID, bool) {
	for _, c := range r.Classes() {
		if IsAbbrev(arg, c.Name) {
			return c.ID, true
		}
	}
	return ClassUndefined, false
}

// IsAbbrev reports whether arg is a non-empty case-insensitive prefix of full.
func IsAbbrev(arg, full string) bool {
	if arg == "" || len(arg) > len(full) {
		return false
	}
	return strings.EqualFold(arg, full[:len(arg)])
}

// ClassByLetter interprets a creation-menu letter.
//
// Postcondition: Returns ClassUndefined for letters not on the menu.
func (r *Registry) ClassByLetter(letter byte) ClassID {
	l := strings.ToLower(string(letter))
	for _, c := range r.classes {
		if strings.ToLower(c.MenuLetter) == l {
			return c.ID
		}
	}
	return ClassUndefined
}

// RaceByLetter interprets a creation-menu letter.
//
// Postcondition: Returns RaceUndefined for letters not on the menu.
func (r *Registry) RaceByLetter(letter byte) RaceID {
	l := strings.ToLower(string(letter))
	for _, rc := range r.races {
		if strings.ToLower(rc.MenuLetter) == l {
			return rc.ID
		}
	}
	return RaceUndefined
}

// ClassBitvector ORs together the class bits of each menu letter in letters.
// Unknown letters contribute nothing.
func (r *Registry) ClassBitvector(letters string) uint32 {
	var bits uint32
	for i := 0; i < len(letters); i++ {
		bits |= r.ClassByLetter(letters[i]).Bit()
	}
	return bits
}

// RaceBitvector ORs together the race bits of each menu letter in letters.
func (r *Registry) RaceBitvector(letters string) uint32 {
	var bits uint32
	for i := 0; i < len(letters); i++ {
		if id := r.RaceByLetter(letters[i]); id.Valid() {
			bits |= 1 << uint(id)
		}
	}
	return bits
}

// SkillLevel returns the level at which class id may first use skill.
//
// Postcondition: Returns (level, true) if the class ever learns skill, or (0, false).
func (r *Registry) SkillLevel(id ClassID, skill string) (int, bool) {
	c, ok := r.classes[id]
	if !ok {
		return 0, false
	}
	for _, s := range c.Skills {
		if strings.EqualFold(s.Name, skill) {
			return s.Level, true
		}
	}
	return 0, false
}
