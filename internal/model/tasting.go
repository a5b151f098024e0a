package model

// TastingStatus records a visitor's opinion about a wine. The zero value
// (absence from the ledger) means no opinion has been recorded.
type TastingStatus string

const (
	// StatusTasted marks a wine the user has tasted.
	StatusTasted TastingStatus = "tasted"
	// StatusWant marks a wine the user wants to taste.
	StatusWant TastingStatus = "want"
)

// Label returns the human-readable form used in exports and summaries.
func (s TastingStatus) Label() string {
	switch s {
	case StatusTasted:
		return "Tasted"
	case StatusWant:
		return "Want to Taste"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known status.
func (s TastingStatus) Valid() bool {
	return s == StatusTasted || s == StatusWant
}

// Ledger maps a wine ID to the recorded tasting status. Mutating operations
// return a new ledger value so callers can treat the previous value as
// immutable and re-render on identity change.
type Ledger map[int]TastingStatus

// WithStatus returns a copy of the ledger with the entry for wineID set to
// status. An empty status removes the entry.
func (l Ledger) WithStatus(wineID int, status TastingStatus) Ledger {
	next := make(Ledger, len(l)+1)
	for id, s := range l {
		next[id] = s
	}
	if status == "" {
		delete(next, wineID)
	} else {
		next[wineID] = status
	}
	return next
}

// Toggle applies the checkbox semantics: requesting the status that is
// already recorded for wineID clears it, anything else sets it.
func (l Ledger) Toggle(wineID int, status TastingStatus) Ledger {
	if l[wineID] == status {
		return l.WithStatus(wineID, "")
	}
	return l.WithStatus(wineID, status)
}

// Status returns the recorded status for wineID, or empty if none.
func (l Ledger) Status(wineID int) TastingStatus {
	return l[wineID]
}

// Counts reports how many wines are marked tasted and want-to-taste.
func (l Ledger) Counts() (tasted, want int) {
	for _, s := range l {
		switch s {
		case StatusTasted:
			tasted++
		case StatusWant:
			want++
		}
	}
	return tasted, want
}
