package core

import (
	"fmt"
	"sync"
)

var (
	Owners      []interface{}
	ownersMutex sync.Mutex
)

// IdentifierAquireNewID hands out the lowest free slot id for owner.
func IdentifierAquireNewID(owner interface{}) uint32 {
	ownersMutex.Lock()
	defer ownersMutex.Unlock()

	if len(Owners) == 0 {
		Owners = make([]interface{}, 100)
	}
	length := uint32(len(Owners))
	for i := uint32(0); i < length; i++ {
		// Existing free spot. Take it.
		if Owners[i] == nil {
			Owners[i] = owner
			return i
		}
	}

	// No free slot left, the new id is the appended one.
	Owners = append(Owners, owner)
	length = uint32(len(Owners))
	return length - 1
}

func IdentifierReleaseID(id uint32) error {
	ownersMutex.Lock()
	defer ownersMutex.Unlock()

	if len(Owners) == 0 {
		return fmt.Errorf("identifier_release_id called before initialization. identifier_aquire_new_id should have been called first. Nothing was done")
	}

	length := uint32(len(Owners))
	if id >= length {
		return fmt.Errorf("identifier_release_id: id '%d' out of range (max=%d). Nothing was done", id, length)
	}

	Owners[id] = nil
	return nil
}
