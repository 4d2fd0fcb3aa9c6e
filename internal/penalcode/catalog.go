// Package penalcode holds the static penal code tables used by the citation and
// arrest forms.
//
// The two tables are separate on purpose. They overlap on many codes but do not
// always agree (the speeding bands under (8)15 are numbered differently, for
// example), and neither is treated as the source of truth for the other.
package penalcode

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var codePattern = regexp.MustCompile(`^\(\d\)\d{2}$`)

// ValidCode reports whether code has the "(section)nn" shape.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Charge is one penal code with its canonical fine and jail time.
type Charge struct {
	Code        string
	Description string
	Fine        decimal.Decimal
	JailTime    JailTime
}

// FineApplicable is false for codes whose catalog fine is 0.00. Those offenses
// carry jail time only and are shown without a dollar amount.
func (e Charge) FineApplicable() bool {
	return !e.Fine.IsZero()
}

// MarshalJSON renders the fine with two decimals and the jail time as text.
func (e Charge) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code        string   `json:"code"`
		Description string   `json:"description"`
		Amount      string   `json:"amount"`
		JailTime    JailTime `json:"jailTime"`
	}{e.Code, e.Description, e.Fine.StringFixed(2), e.JailTime})
}

// Catalog is an immutable, ordered table of penal codes.
type Catalog struct {
	name    string
	entries []Charge
	index   map[string]int
}

func newCatalog(name string, entries []Charge) *Catalog {
	c := &Catalog{
		name:    name,
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if !ValidCode(e.Code) {
			panic(fmt.Sprintf("penalcode: %s catalog: malformed code %q", name, e.Code))
		}
		if _, dup := c.index[e.Code]; dup {
			panic(fmt.Sprintf("penalcode: %s catalog: duplicate code %q", name, e.Code))
		}
		c.index[e.Code] = i
	}
	return c
}

// Name returns the catalog name ("citation" or "arrest").
func (c *Catalog) Name() string {
	return c.name
}

// Lookup returns the entry for code.
func (c *Catalog) Lookup(code string) (Charge, bool) {
	i, ok := c.index[code]
	if !ok {
		return Charge{}, false
	}
	return c.entries[i], true
}

// Describe returns the description of code, or "" if the code is unknown.
func (c *Catalog) Describe(code string) string {
	e, _ := c.Lookup(code)
	return e.Description
}

// Entries returns a copy of the table in declaration order.
func (c *Catalog) Entries() []Charge {
	out := make([]Charge, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of codes in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ByName returns the catalog with the given name.
func ByName(name string) (*Catalog, bool) {
	switch name {
	case Citation.name:
		return Citation, true
	case Arrest.name:
		return Arrest, true
	}
	return nil, false
}

func entry(code, description, fine string, jail JailTime) Charge {
	return Charge{
		Code:        code,
		Description: description,
		Fine:        decimal.RequireFromString(fine),
		JailTime:    jail,
	}
}
