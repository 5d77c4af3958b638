// Package collision detects repeated puzzles by content fingerprint.
package collision

// Duplicate records a name whose fingerprint was already seen.
type Duplicate struct {
	Name        string
	First       string // name tracked first with the same fingerprint
	Fingerprint uint64
}

// Tracker maps fingerprints to the first name seen with them.
type Tracker struct {
	names      map[uint64]string
	duplicates []Duplicate
}

func NewTracker() *Tracker {
	return &Tracker{names: make(map[uint64]string)}
}

// Track records name under fingerprint. When the fingerprint was already
// tracked it returns the duplicate and true; the first name stays the owner.
func (t *Tracker) Track(name string, fingerprint uint64) (Duplicate, bool) {
	if first, exists := t.names[fingerprint]; exists {
		d := Duplicate{Name: name, First: first, Fingerprint: fingerprint}
		t.duplicates = append(t.duplicates, d)

		return d, true
	}
	t.names[fingerprint] = name

	return Duplicate{}, false
}

func (t *Tracker) HasDuplicates() bool {
	return len(t.duplicates) > 0
}

// Duplicates returns every duplicate in tracking order.
func (t *Tracker) Duplicates() []Duplicate {
	return t.duplicates
}

// Count returns the number of distinct fingerprints.
func (t *Tracker) Count() int {
	return len(t.names)
}
