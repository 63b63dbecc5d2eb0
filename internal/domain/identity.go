package domain

import "strconv"

// Identity tracks whether an entity is backed by a durable store row.
//
// The zero value is the transient state: an entity generated in memory that has
// not been reconciled yet. Reconciliation replaces it with a persisted identity
// carrying the store-assigned id. Keeping the distinction in the type avoids
// the magic "temporary id" constants this design replaces.
type Identity struct {
	id uint
}

// TransientIdentity is the identity of a generated, not-yet-persisted entity.
var TransientIdentity = Identity{}

// PersistedIdentity returns the identity of a durable row with the given id.
// It panics on id 0, which is reserved for the transient state.
func PersistedIdentity(id uint) Identity {
	if id == 0 {
		panic("domain: persisted identity requires a non-zero id")
	}
	return Identity{id: id}
}

// IsTransient reports whether the entity has not been persisted yet.
func (i Identity) IsTransient() bool {
	return i.id == 0
}

// Value returns the durable id and whether the identity is persisted.
func (i Identity) Value() (uint, bool) {
	return i.id, i.id != 0
}

// String renders the identity for logging.
func (i Identity) String() string {
	if i.id == 0 {
		return "transient"
	}
	return strconv.FormatUint(uint64(i.id), 10)
}
