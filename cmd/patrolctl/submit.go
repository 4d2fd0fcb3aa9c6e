package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v4"

	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/penalcode"
	"github.com/zombor/patrol-reports/internal/report"
)

func (a *app) citationCommand() *ff.Command {
	fs := ff.NewFlagSet("citation").SetParent(a.flags)
	var (
		violator      = fs.StringLong("violator", "", "Discord user ID of the person cited")
		signature     = fs.StringLong("violator-signature", "", "Violator signature (defaults to --violator)")
		violationType = fs.StringLong("type", "", "Violation type shown when a code has no description")
		notes         = fs.StringLong("notes", "", "Additional notes")
	)

	return &ff.Command{
		Name:      "citation",
		Usage:     "patrolctl citation --violator ID [FLAGS] <CODE>...",
		ShortHelp: "file a citation for one or more penal codes",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			a.setup()
			roster, err := a.loadRoster()
			if err != nil {
				return err
			}

			session := ledger.NewSession(penalcode.Citation)
			if err := fillSession(session, args); err != nil {
				return err
			}
			req, err := buildCitationRequest(roster, session, citationForm{
				violator:          strings.TrimSpace(*violator),
				violatorSignature: strings.TrimSpace(*signature),
				violationType:     strings.TrimSpace(*violationType),
				notes:             strings.TrimSpace(*notes),
			})
			if err != nil {
				return err
			}

			citation, err := a.client().SubmitCitation(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Citation #%d filed: %s, total $%s\n",
				citation.ID, strings.Join(citation.Codes(), ", "), displayTotal(citation.TotalAmount))
			return nil
		},
	}
}

func (a *app) arrestCommand() *ff.Command {
	fs := ff.NewFlagSet("arrest").SetParent(a.flags)
	var (
		suspect       = fs.StringLong("suspect", "", "Suspect username")
		signature     = fs.StringLong("suspect-signature", "", "Suspect signature (a Discord user ID renders as a mention)")
		description   = fs.StringLong("description", "", "Description of the suspect")
		mugshotPath   = fs.StringLong("mugshot", "", "Mugshot image file, used when there is no description")
		remaining     = fs.IntLong("remaining", -1, "Remaining jail time in seconds (default: the full sentence)")
		timeServed    = fs.BoolLong("time-served", "The sentence has been served in full")
		courtDate     = fs.StringLong("court-date", "", "Court date (default from the server)")
		courtLocation = fs.StringLong("court-location", "", "Court location (default from the server)")
		courtPhone    = fs.StringLong("court-phone", "", "Court phone (default from the server)")
	)

	return &ff.Command{
		Name:      "arrest",
		Usage:     "patrolctl arrest --suspect-signature SIG (--description TEXT | --mugshot FILE) [FLAGS] <CODE>...",
		ShortHelp: "file an arrest report for one or more penal codes",
		Flags:     fs,
		Exec: func(ctx context.Context, args []string) error {
			a.setup()
			roster, err := a.loadRoster()
			if err != nil {
				return err
			}

			session := ledger.NewSession(penalcode.Arrest)
			if err := fillSession(session, args); err != nil {
				return err
			}
			if *remaining >= 0 {
				session.SetRemaining(*remaining)
			}
			session.SetTimeServed(*timeServed)

			form := arrestForm{
				suspect:          strings.TrimSpace(*suspect),
				suspectSignature: strings.TrimSpace(*signature),
				description:      strings.TrimSpace(*description),
				court: report.Court{
					Date:     strings.TrimSpace(*courtDate),
					Location: strings.TrimSpace(*courtLocation),
					Phone:    strings.TrimSpace(*courtPhone),
				},
			}
			if *mugshotPath != "" {
				form.mugshot, err = readMugshot(*mugshotPath)
				if err != nil {
					return err
				}
			}

			req, err := buildArrestRequest(roster, session, form)
			if err != nil {
				return err
			}

			arrest, err := a.client().SubmitArrest(ctx, req)
			if err != nil {
				return err
			}
			warrant := "no warrant needed"
			if arrest.WarrantNeeded {
				warrant = "warrant needed for " + penalcode.FormatSeconds(arrest.RemainingJailTime)
			}
			fmt.Fprintf(a.stdout, "Arrest report %s filed: %s, total $%s + %s, %s\n",
				arrest.ID, strings.Join(arrest.Codes(), ", "), displayTotal(arrest.TotalAmount),
				penalcode.FormatSeconds(arrest.TotalJailTime), warrant)
			return nil
		},
	}
}

func (a *app) codesCommand() *ff.Command {
	return &ff.Command{
		Name:      "codes",
		Usage:     "patrolctl codes <citation|arrest>",
		ShortHelp: "list the penal codes a report can use",
		Flags:     ff.NewFlagSet("codes").SetParent(a.flags),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("codes takes one table name: citation or arrest")
			}
			catalog, ok := penalcode.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown table %q, want citation or arrest", args[0])
			}
			a.printCatalog(catalog)
			return nil
		},
	}
}

func (a *app) printCatalog(c *penalcode.Catalog) {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tDESCRIPTION\tFINE\tJAIL TIME")
	for _, e := range c.Entries() {
		fine := "-"
		if e.FineApplicable() {
			fine = "$" + ledger.DisplayAmount(e.Fine)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Code, e.Description, fine, e.JailTime)
	}
	tw.Flush()
}

func (a *app) citationsCommand() *ff.Command {
	return &ff.Command{
		Name:      "citations",
		Usage:     "patrolctl citations [ID]",
		ShortHelp: "list filed citations, or show one",
		Flags:     ff.NewFlagSet("citations").SetParent(a.flags),
		Exec: func(ctx context.Context, args []string) error {
			a.setup()
			c := a.client()

			var citations []*report.Citation
			switch len(args) {
			case 0:
				var err error
				citations, err = c.ListCitations(ctx)
				if err != nil {
					return err
				}
			case 1:
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid citation id %q", args[0])
				}
				citation, err := c.GetCitation(ctx, id)
				if err != nil {
					return err
				}
				citations = append(citations, citation)
			default:
				return fmt.Errorf("citations takes at most one id")
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tVIOLATOR\tCODES\tTOTAL\tOFFICER\tFILED")
			for _, ct := range citations {
				officer := ""
				if len(ct.Officers) > 0 {
					officer = ct.Officers[0].Username
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t$%s\t%s\t%s\n",
					ct.ID, ct.ViolatorUsername, strings.Join(ct.Codes(), ", "),
					displayTotal(ct.TotalAmount), officer, ct.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}

func (a *app) loadRoster() (*ledger.Roster, error) {
	cache, err := a.openCache()
	if err != nil {
		return nil, err
	}
	defer cache.Close()
	return cache.Load()
}

func displayTotal(amount string) string {
	d := ledger.ParseFine(amount)
	if d.IsZero() {
		return "0.00"
	}
	return ledger.DisplayAmount(d)
}
