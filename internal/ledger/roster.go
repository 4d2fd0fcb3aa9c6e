package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxOfficers is the most officers a single report may list.
const MaxOfficers = 3

// ErrRosterFull is returned when adding an officer to a full roster.
var ErrRosterFull = fmt.Errorf("a report may list at most %d officers", MaxOfficers)

// ErrLastOfficer is returned when removing the only officer on a roster.
var ErrLastOfficer = errors.New("a report must list at least one officer")

// Officer is one officer on a report. The first officer on a roster is the
// primary (arresting or issuing) officer; the rest are assisting.
type Officer struct {
	Badge         string `json:"badge"`
	Username      string `json:"username"`
	Rank          string `json:"rank"`
	DiscordUserID string `json:"userId"`
	Signature     string `json:"signature,omitempty"`
}

// Empty reports whether every field is blank.
func (o Officer) Empty() bool {
	return strings.TrimSpace(o.Badge) == "" &&
		strings.TrimSpace(o.Username) == "" &&
		strings.TrimSpace(o.Rank) == "" &&
		strings.TrimSpace(o.DiscordUserID) == "" &&
		strings.TrimSpace(o.Signature) == ""
}

// OfficerID identifies an officer entry on a roster.
type OfficerID string

type rosterEntry struct {
	id      OfficerID
	officer Officer
}

// Roster is the ordered list of officers on a report, between one and
// MaxOfficers long.
type Roster struct {
	entries []rosterEntry
}

// NewRoster returns a roster with one blank officer.
func NewRoster() *Roster {
	return &Roster{entries: []rosterEntry{{id: newOfficerID()}}}
}

// RosterOf builds a roster from saved officers. Blank officers are dropped and
// the list is truncated to MaxOfficers. An empty input yields one blank officer.
func RosterOf(officers []Officer) *Roster {
	r := &Roster{}
	for _, o := range officers {
		if o.Empty() {
			continue
		}
		if len(r.entries) == MaxOfficers {
			break
		}
		r.entries = append(r.entries, rosterEntry{id: newOfficerID(), officer: o})
	}
	if len(r.entries) == 0 {
		return NewRoster()
	}
	return r
}

func newOfficerID() OfficerID {
	return OfficerID(uuid.NewString())
}

// Add appends an officer, failing with ErrRosterFull at capacity.
func (r *Roster) Add(o Officer) (OfficerID, error) {
	if len(r.entries) >= MaxOfficers {
		return "", ErrRosterFull
	}
	e := rosterEntry{id: newOfficerID(), officer: o}
	r.entries = append(r.entries, e)
	return e.id, nil
}

// Remove drops an officer. The last officer cannot be removed.
func (r *Roster) Remove(id OfficerID) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("officer %s not on roster", id)
	}
	if len(r.entries) == 1 {
		return ErrLastOfficer
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return nil
}

// Update replaces the officer stored under id.
func (r *Roster) Update(id OfficerID, o Officer) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("officer %s not on roster", id)
	}
	r.entries[i].officer = o
	return nil
}

// IDs returns the entry IDs in order.
func (r *Roster) IDs() []OfficerID {
	ids := make([]OfficerID, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	return ids
}

// Officers returns the officers in order.
func (r *Roster) Officers() []Officer {
	out := make([]Officer, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.officer
	}
	return out
}

// Len returns the number of officers.
func (r *Roster) Len() int {
	return len(r.entries)
}

// Primary returns the first officer.
func (r *Roster) Primary() Officer {
	return r.entries[0].officer
}

// Assisting returns every officer after the first.
func (r *Roster) Assisting() []Officer {
	return r.Officers()[1:]
}

// Validate checks that every officer has a badge, name, rank and Discord user
// ID, plus a signature when requireSignature is set.
func (r *Roster) Validate(requireSignature bool) error {
	var errs []error
	for i, e := range r.entries {
		o := e.officer
		check := func(value, field string) {
			if strings.TrimSpace(value) == "" {
				errs = append(errs, fmt.Errorf("officer %d: %s is required", i+1, field))
			}
		}
		check(o.Badge, "badge number")
		check(o.Username, "name")
		check(o.Rank, "rank")
		check(o.DiscordUserID, "Discord user ID")
		if requireSignature {
			check(o.Signature, "signature")
		}
	}
	return errors.Join(errs...)
}

func (r *Roster) indexOf(id OfficerID) int {
	for i, e := range r.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}
