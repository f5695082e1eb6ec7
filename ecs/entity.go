package ecs

import "strconv"

// Entity is a generational handle: the low 32 bits select a slot and the
// high 32 bits count how often that slot was reused. A handle to a body that
// merged away never resolves to whatever took its slot.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats the handle as slot/generation, e.g. "3/1".
func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return strconv.FormatUint(uint64(e.id()), 10) + "/" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid is false for the zero handle, which means "no entity".
func (e Entity) Valid() bool {
	return e > 0
}
