// Package ledger computes fine and jail totals for a set of offenses and keeps
// the editable state behind the citation and arrest forms.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zombor/patrol-reports/internal/penalcode"
)

// Line is one offense as it travels on the wire: a fine string and a jail time
// string, either of which may be empty or malformed.
type Line struct {
	Fine     string
	JailTime string
}

// Totals is the sum over a set of lines.
type Totals struct {
	Fine     decimal.Decimal
	JailTime int
}

// FineString renders the fine total with exactly two decimals.
func (t Totals) FineString() string {
	return FormatAmount(t.Fine)
}

// JailTimeString renders the jail total as "N Seconds".
func (t Totals) JailTimeString() string {
	return penalcode.FormatSeconds(t.JailTime)
}

// ComputeTotals sums fines and jail seconds. Unparsable fines and jail times
// contribute zero.
func ComputeTotals(lines []Line) Totals {
	t := Totals{Fine: decimal.Zero}
	for _, l := range lines {
		t.Fine = t.Fine.Add(ParseFine(l.Fine))
		t.JailTime += penalcode.ParseJailTime(l.JailTime).Seconds()
	}
	return t
}

// ParseFine parses a fine amount, returning zero when s is not a number.
func ParseFine(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders d with exactly two decimals and no grouping.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var printer = message.NewPrinter(language.AmericanEnglish)

// DisplayAmount renders d with thousands separators and two decimals, e.g.
// "12,500.00". A zero amount renders as "".
func DisplayAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// Warrant is the outcome of the warrant rule for an arrest.
type Warrant struct {
	Needed    bool
	Remaining int
}

// ClampRemaining bounds a remaining-sentence value to [0, total].
func ClampRemaining(total, remaining int) int {
	if remaining < 0 {
		return 0
	}
	if remaining > total {
		return total
	}
	return remaining
}

// ComputeWarrant decides whether a warrant is needed. Time served zeroes the
// remaining sentence; otherwise a warrant is needed while any time remains.
func ComputeWarrant(total, remaining int, timeServed bool) Warrant {
	if timeServed {
		return Warrant{}
	}
	remaining = ClampRemaining(total, remaining)
	return Warrant{
		Needed:    remaining > 0,
		Remaining: remaining,
	}
}
