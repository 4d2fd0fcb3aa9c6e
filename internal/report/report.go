// Package report validates, stores and publishes citation and arrest
// submissions, and serves them over HTTP.
package report

import (
	"time"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/mugshot"
	"github.com/zombor/patrol-reports/internal/penalcode"
)

// Offense is one validated penal code line on a report.
type Offense struct {
	Code        string             `json:"code"`
	Description string             `json:"description"`
	AmountDue   string             `json:"amountDue"`
	JailTime    penalcode.JailTime `json:"jailTime"`
}

// Court is where the subject of a report answers for it.
type Court struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// withDefaults fills blank fields from d.
func (c Court) withDefaults(d Court) Court {
	if c.Date == "" {
		c.Date = d.Date
	}
	if c.Location == "" {
		c.Location = d.Location
	}
	if c.Phone == "" {
		c.Phone = d.Phone
	}
	return c
}

// Citation is a stored traffic or minor-offense citation.
type Citation struct {
	ID                int64            `json:"id"`
	Officers          []ledger.Officer `json:"officers"`
	ViolatorUsername  string           `json:"violatorUsername"`
	ViolatorSignature string           `json:"violatorSignature"`
	ViolationType     string           `json:"violationType"`
	Offenses          []Offense        `json:"offenses"`
	TotalAmount       string           `json:"totalAmount"`
	TotalJailTime     int              `json:"totalJailTimeSeconds"`
	AdditionalNotes   string           `json:"additionalNotes,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// Codes returns the penal codes on the citation in order.
func (c *Citation) Codes() []string {
	return offenseCodes(c.Offenses)
}

// Arrest is an arrest report. Arrests are published but not persisted.
type Arrest struct {
	ID                string           `json:"id"`
	Officers          []ledger.Officer `json:"officers"`
	SuspectUsername   string           `json:"suspectUsername"`
	SuspectSignature  string           `json:"suspectSignature"`
	Description       string           `json:"description,omitempty"`
	Mugshot           *mugshot.Image   `json:"-"`
	HasMugshot        bool             `json:"hasMugshot"`
	Offenses          []Offense        `json:"offenses"`
	TotalAmount       string           `json:"totalAmount"`
	TotalJailTime     int              `json:"totalJailTimeSeconds"`
	RemainingJailTime int              `json:"remainingJailTimeSeconds"`
	TimeServed        bool             `json:"timeServed"`
	WarrantNeeded     bool             `json:"warrantNeeded"`
	Court             Court            `json:"court"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// Codes returns the penal codes on the arrest in order.
func (a *Arrest) Codes() []string {
	return offenseCodes(a.Offenses)
}

func offenseCodes(offenses []Offense) []string {
	codes := make([]string, len(offenses))
	for i, o := range offenses {
		codes[i] = o.Code
	}
	return codes
}
