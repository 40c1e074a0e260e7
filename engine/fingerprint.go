package engine

import (
	"maps"
	"slices"
)

// Instruction is the implementation of a fingerprint letter. It returns
// false if it could not act, and the IP reflects.
type Instruction func(eng *Engine, ip *IP) bool

// FingerprintId is a fingerprint name packed big-endian into a cell.
type FingerprintId uint32

// ParseFingerprintId packs a name of one to four ASCII characters.
func ParseFingerprintId(name string) (id FingerprintId, err error) {
	if len(name) == 0 || len(name) > 4 {
		err = ErrFingerprintName(name)
		return
	}

	for _, c := range []byte(name) {
		if c < 0x20 || c >= 0x7f {
			err = ErrFingerprintName(name)
			return
		}
		id = (id << 8) | FingerprintId(c)
	}

	return
}

// String unpacks the name. Non-printable bytes are shown as '?'.
func (id FingerprintId) String() string {
	var text []byte
	for shift := 24; shift >= 0; shift -= 8 {
		c := byte(id >> shift)
		switch {
		case c == 0 && len(text) == 0:
			continue
		case c < 0x20 || c >= 0x7f:
			c = '?'
		}
		text = append(text, c)
	}
	return string(text)
}

// Fingerprint is a named set of overrides for the letters A to Z.
type Fingerprint interface {
	// Id of the fingerprint.
	Id() FingerprintId
	// Lookup returns the implementation of a letter, or nil.
	Lookup(letter byte) Instruction
}

// Table is a Fingerprint backed by a letter map.
type Table struct {
	Name         FingerprintId
	Instructions map[byte]Instruction
}

var _ Fingerprint = (*Table)(nil)

// Id of the fingerprint.
func (table *Table) Id() FingerprintId {
	return table.Name
}

// Lookup returns the implementation of a letter, or nil.
func (table *Table) Lookup(letter byte) Instruction {
	return table.Instructions[letter]
}

// Registry holds every fingerprint the ( instruction can load.
// Fingerprints are shared, not copied, by the alphabets that load them.
type Registry struct {
	fingerprints map[FingerprintId]Fingerprint
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fingerprints: make(map[FingerprintId]Fingerprint),
	}
}

// Register stores a fingerprint, replacing any with the same id.
func (reg *Registry) Register(fp Fingerprint) {
	reg.fingerprints[fp.Id()] = fp
}

// Find looks up a fingerprint.
func (reg *Registry) Find(id FingerprintId) (fp Fingerprint, ok bool) {
	fp, ok = reg.fingerprints[id]
	return
}

// Ids lists the registered fingerprints in ascending order.
func (reg *Registry) Ids() []FingerprintId {
	return slices.Sorted(maps.Keys(reg.fingerprints))
}
