package engine

const letters = 26

// Alphabet is the per-IP stack of loaded fingerprints, with a cache of
// the active implementation for each letter A to Z.
type Alphabet struct {
	loaded []Fingerprint
	active [letters]Instruction
}

func letterIndex(letter byte) (index int, ok bool) {
	if letter < 'A' || letter > 'Z' {
		return
	}
	return int(letter - 'A'), true
}

// Load pushes a fingerprint. Each letter it supplies overrides any
// earlier one.
func (ab *Alphabet) Load(fp Fingerprint) {
	ab.loaded = append(ab.loaded, fp)
	for n := range letters {
		inst := fp.Lookup(byte('A' + n))
		if inst != nil {
			ab.active[n] = inst
		}
	}
}

// Unload pops the most recently loaded fingerprint, restoring for each of
// its letters the next most recent supplier.
func (ab *Alphabet) Unload() (fp Fingerprint, ok bool) {
	if len(ab.loaded) == 0 {
		return
	}

	fp = ab.loaded[len(ab.loaded)-1]
	ab.loaded = ab.loaded[:len(ab.loaded)-1]
	ab.restore(fp)

	return fp, true
}

// Remove drops the most recent load of a fingerprint id, wherever it is
// in the stack.
func (ab *Alphabet) Remove(id FingerprintId) (ok bool) {
	for n := len(ab.loaded) - 1; n >= 0; n-- {
		fp := ab.loaded[n]
		if fp.Id() != id {
			continue
		}
		ab.loaded = append(ab.loaded[:n], ab.loaded[n+1:]...)
		ab.restore(fp)
		return true
	}

	return false
}

// restore recomputes the letters supplied by a removed fingerprint.
func (ab *Alphabet) restore(fp Fingerprint) {
	for n := range letters {
		letter := byte('A' + n)
		if fp.Lookup(letter) == nil {
			continue
		}
		ab.active[n] = nil
		for i := len(ab.loaded) - 1; i >= 0; i-- {
			inst := ab.loaded[i].Lookup(letter)
			if inst != nil {
				ab.active[n] = inst
				break
			}
		}
	}
}

// Resolve returns the active implementation of a letter, or nil.
func (ab *Alphabet) Resolve(letter byte) Instruction {
	index, ok := letterIndex(letter)
	if !ok {
		return nil
	}
	return ab.active[index]
}

// Loaded lists the loaded fingerprint ids, oldest first.
func (ab *Alphabet) Loaded() (ids []FingerprintId) {
	for _, fp := range ab.loaded {
		ids = append(ids, fp.Id())
	}
	return
}

// Clone returns an independent copy sharing the same fingerprints.
func (ab *Alphabet) Clone() (clone Alphabet) {
	clone.loaded = append([]Fingerprint(nil), ab.loaded...)
	clone.active = ab.active
	return
}
