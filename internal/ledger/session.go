package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zombor/patrol-reports/internal/penalcode"
)

// RowID identifies a row for the lifetime of a session. IDs are never reused,
// so removing a row never shifts the identity of the others.
type RowID string

// Row is one offense in a session. A row with no code selected has a zero fine
// and no jail time.
type Row struct {
	ID          RowID
	Code        string
	Description string
	Fine        decimal.Decimal
	JailTime    penalcode.JailTime
}

// Selected reports whether a code has been chosen for the row.
func (r Row) Selected() bool {
	return r.Code != ""
}

// Line converts the row to its wire form. Unselected rows produce empty strings.
func (r Row) Line() Line {
	if !r.Selected() {
		return Line{}
	}
	return Line{Fine: FormatAmount(r.Fine), JailTime: r.JailTime.String()}
}

// Session is the editable list of offense rows behind one form. It always
// holds at least one row.
//
// A session is not safe for concurrent use.
type Session struct {
	catalog    *penalcode.Catalog
	rows       []Row
	remaining  int
	timeServed bool
	newID      func() string
}

// NewSession starts a session against catalog with a single empty row.
func NewSession(catalog *penalcode.Catalog) *Session {
	s := &Session{
		catalog: catalog,
		newID:   uuid.NewString,
	}
	s.rows = []Row{s.emptyRow()}
	return s
}

// Catalog returns the catalog the session selects codes from.
func (s *Session) Catalog() *penalcode.Catalog {
	return s.catalog
}

func (s *Session) emptyRow() Row {
	return Row{ID: RowID(s.newID()), JailTime: penalcode.None}
}

// Rows returns a copy of the rows in order.
func (s *Session) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// AddRow appends an empty row and returns its ID.
func (s *Session) AddRow() RowID {
	r := s.emptyRow()
	s.rows = append(s.rows, r)
	return r.ID
}

// RemoveRow removes the row with the given ID. The last remaining row cannot
// be removed; RemoveRow reports whether anything changed.
func (s *Session) RemoveRow(id RowID) bool {
	if len(s.rows) <= 1 {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.recompute()
	return true
}

// SelectCode sets the code of a row and fills its fine and jail time from the
// catalog. It returns false if the row or code is unknown, leaving the row
// unchanged.
func (s *Session) SelectCode(id RowID, code string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	c, ok := s.catalog.Lookup(code)
	if !ok {
		return false
	}
	s.rows[i].Code = c.Code
	s.rows[i].Description = c.Description
	s.rows[i].Fine = c.Fine
	s.rows[i].JailTime = c.JailTime
	s.recompute()
	return true
}

// Lines returns the wire form of every row.
func (s *Session) Lines() []Line {
	lines := make([]Line, len(s.rows))
	for i, r := range s.rows {
		lines[i] = r.Line()
	}
	return lines
}

// Selected returns only the rows that have a code.
func (s *Session) Selected() []Row {
	var out []Row
	for _, r := range s.rows {
		if r.Selected() {
			out = append(out, r)
		}
	}
	return out
}

// Totals sums the fine and jail time over all rows.
func (s *Session) Totals() Totals {
	return ComputeTotals(s.Lines())
}

// SetRemaining records the officer's adjusted remaining sentence, clamped to
// [0, total jail time]. It returns the stored value.
func (s *Session) SetRemaining(seconds int) int {
	s.remaining = ClampRemaining(s.Totals().JailTime, seconds)
	return s.remaining
}

// Remaining returns the remaining sentence.
func (s *Session) Remaining() int {
	return s.remaining
}

// SetTimeServed marks whether the sentence has been served in full.
func (s *Session) SetTimeServed(served bool) {
	s.timeServed = served
}

// TimeServed reports whether the sentence was marked as served.
func (s *Session) TimeServed() bool {
	return s.timeServed
}

// Warrant applies the warrant rule to the current state.
func (s *Session) Warrant() Warrant {
	return ComputeWarrant(s.Totals().JailTime, s.remaining, s.timeServed)
}

// Reset returns the session to a single empty row.
func (s *Session) Reset() {
	s.rows = []Row{s.emptyRow()}
	s.remaining = 0
	s.timeServed = false
}

// recompute runs after the rows change. Any manual adjustment of the remaining
// sentence is discarded in favour of the new total.
func (s *Session) recompute() {
	s.remaining = s.Totals().JailTime
}

func (s *Session) indexOf(id RowID) int {
	for i, r := range s.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
