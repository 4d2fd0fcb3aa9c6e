// Package notify publishes accepted reports to a Discord channel.
package notify

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/penalcode"
	"github.com/zombor/patrol-reports/internal/report"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var (
	trailingNumber = regexp.MustCompile(`\s+\d+$`)
	discordID      = regexp.MustCompile(`^\d+$`)
)

// Formatter renders reports as Discord message text.
type Formatter struct {
	// PaymentRecipient is the Discord user ID citations are paid to. Empty
	// omits the payment line.
	PaymentRecipient string
	// Court is printed on citations. Callers pass the fully defaulted court,
	// usually Service.Court.
	Court report.Court
}

type citationView struct {
	Violator          string
	ViolatorSignature string
	TicketType        string
	PenalCodes        string
	Total             string
	Notes             string
	RankSignature     string
	Names             string
	Badges            string
	PaymentRecipient  string
	Court             report.Court
}

// Citation renders the citation message.
func (f *Formatter) Citation(c *report.Citation) (string, error) {
	var (
		codes, types, ranks, names, badges []string
		seen                               = map[string]bool{}
	)
	for _, o := range c.Offenses {
		codes = append(codes, bold(o.Code))
		t := o.Description
		if t == "" {
			t = c.ViolationType
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	for _, o := range c.Officers {
		rank := strings.TrimSpace(trailingNumber.ReplaceAllString(o.Rank, ""))
		if o.DiscordUserID != "" {
			rank += " " + mention(o.DiscordUserID)
		}
		ranks = append(ranks, rank)
		names = append(names, o.Username)
		badges = append(badges, o.Badge)
	}

	notes := c.AdditionalNotes
	if notes == "" {
		notes = "N/A"
	}

	return render("citation.tmpl", citationView{
		Violator:          c.ViolatorUsername,
		ViolatorSignature: c.ViolatorSignature,
		TicketType:        strings.Join(types, ", "),
		PenalCodes:        strings.Join(codes, ", "),
		Total:             money(c.TotalAmount),
		Notes:             notes,
		RankSignature:     strings.Join(ranks, "\n"),
		Names:             strings.Join(names, ", "),
		Badges:            strings.Join(badges, ", "),
		PaymentRecipient:  f.PaymentRecipient,
		Court:             f.Court,
	})
}

type arrestView struct {
	OfficerMentions   string
	OfficerNames      string
	Ranks             string
	Badges            string
	Suspect           string
	Description       string
	Offenses          string
	Total             string
	JailTime          string
	TimeServed        bool
	WarrantNeeded     bool
	WarrantTime       string
	SuspectSignature  string
	OfficerSignatures string
	Court             report.Court
}

// Arrest renders the arrest message. caption, when set, describes an attached
// mugshot.
func (f *Formatter) Arrest(a *report.Arrest, caption string) (string, error) {
	var mentions, names, ranks, badges, signatures []string
	for i, o := range a.Officers {
		if o.DiscordUserID != "" {
			mentions = append(mentions, mention(o.DiscordUserID))
		} else {
			mentions = append(mentions, bold(o.Username))
		}
		names = append(names, bold(o.Username))
		ranks = append(ranks, bold(o.Rank))
		badges = append(badges, bold(o.Badge))

		role := "Arresting"
		if i > 0 {
			role = "Assisting"
		}
		sig := o.Signature
		if sig == "" {
			sig = o.DiscordUserID
		}
		signatures = append(signatures, fmt.Sprintf("%s officer signature X: %s", role, signature(sig)))
	}

	var offenses []string
	for _, o := range a.Offenses {
		line := bold(o.Code)
		if !o.JailTime.IsNone() {
			line += " - " + bold(o.JailTime.String())
		}
		if fine := ledger.ParseFine(o.AmountDue); !fine.IsZero() {
			line += " - " + bold("$"+ledger.DisplayAmount(fine))
		}
		offenses = append(offenses, line)
	}

	description := a.Description
	switch {
	case description != "":
	case a.HasMugshot && caption != "":
		description = "See attached mugshot: " + caption
	case a.HasMugshot:
		description = "See attached mugshot"
	default:
		description = "No description provided"
	}

	suspect := ""
	if a.SuspectUsername != "" {
		suspect = signature(a.SuspectUsername)
	}

	return render("arrest.tmpl", arrestView{
		OfficerMentions:   strings.Join(mentions, ", "),
		OfficerNames:      strings.Join(names, ", "),
		Ranks:             strings.Join(ranks, ", "),
		Badges:            strings.Join(badges, ", "),
		Suspect:           suspect,
		Description:       description,
		Offenses:          strings.Join(offenses, "\n"),
		Total:             money(a.TotalAmount),
		JailTime:          penalcode.FormatSeconds(a.TotalJailTime),
		TimeServed:        a.TimeServed,
		WarrantNeeded:     a.WarrantNeeded,
		WarrantTime:       penalcode.FormatSeconds(a.RemainingJailTime),
		SuspectSignature:  signature(a.SuspectSignature),
		OfficerSignatures: strings.Join(signatures, "\n"),
		Court:             a.Court,
	})
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func bold(s string) string {
	return "**" + s + "**"
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

// signature renders a Discord user ID as a mention and anything else in bold.
func signature(s string) string {
	if discordID.MatchString(s) {
		return mention(s)
	}
	return bold(s)
}

// money renders a two-decimal amount with thousands separators.
func money(amount string) string {
	d := ledger.ParseFine(amount)
	if d.IsZero() {
		return "0.00"
	}
	return ledger.DisplayAmount(d)
}
