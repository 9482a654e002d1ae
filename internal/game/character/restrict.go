package character

import "github.com/cory-johannsen/deadmud/internal/game/ruleset"

// ItemFlags are the restriction bits of an object. Anti-class bits sit at
// the ClassID bit positions, anti-race bits at RaceID positions shifted past them.
type ItemFlags uint32

const raceFlagShift = ruleset.NumClasses

// AntiClass returns the flag that forbids class id from using an object.
func AntiClass(id ruleset.ClassID) ItemFlags {
	return ItemFlags(id.Bit())
}

// AntiRace returns the flag that forbids race id from using an object.
func AntiRace(id ruleset.RaceID) ItemFlags {
	if !id.Valid() {
		return 0
	}
	return 1 << (raceFlagShift + uint(id))
}

// InvalidClass reports whether an object with flags is forbidden to ch's class.
func InvalidClass(ch *Character, flags ItemFlags) bool {
	anti := AntiClass(ch.Class)
	return anti != 0 && flags&anti != 0
}

// InvalidRace reports whether an object with flags is forbidden to ch's race.
func InvalidRace(ch *Character, flags ItemFlags) bool {
	anti := AntiRace(ch.Race)
	return anti != 0 && flags&anti != 0
}
