package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v4"

	"github.com/zombor/patrol-reports/internal/ledger"
)

func (a *app) officerCommand() *ff.Command {
	addFlags := ff.NewFlagSet("add").SetParent(a.flags)
	var (
		badge     = addFlags.StringLong("badge", "", "Badge number")
		name      = addFlags.StringLong("name", "", "Law enforcement username")
		rank      = addFlags.StringLong("rank", "", "Rank")
		userID    = addFlags.StringLong("discord-id", "", "Discord user ID")
		signature = addFlags.StringLong("signature", "", "Signature used on arrest reports (a Discord user ID renders as a mention)")
	)

	add := &ff.Command{
		Name:      "add",
		Usage:     "patrolctl officer add --badge N --name NAME --rank RANK --discord-id ID [--signature SIG]",
		ShortHelp: "add an officer, or update the one with the same badge",
		Flags:     addFlags,
		Exec: func(ctx context.Context, args []string) error {
			return a.withRoster(func(r *ledger.Roster) error {
				return addOfficer(r, ledger.Officer{
					Badge:         strings.TrimSpace(*badge),
					Username:      strings.TrimSpace(*name),
					Rank:          strings.TrimSpace(*rank),
					DiscordUserID: strings.TrimSpace(*userID),
					Signature:     strings.TrimSpace(*signature),
				})
			})
		},
	}

	remove := &ff.Command{
		Name:      "remove",
		Usage:     "patrolctl officer remove <N>",
		ShortHelp: "remove the Nth officer",
		Flags:     ff.NewFlagSet("remove").SetParent(a.flags),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("remove takes exactly one officer number")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid officer number %q", args[0])
			}
			return a.withRoster(func(r *ledger.Roster) error {
				ids := r.IDs()
				if n < 1 || n > len(ids) {
					return fmt.Errorf("no officer %d, the roster has %d", n, len(ids))
				}
				return r.Remove(ids[n-1])
			})
		},
	}

	list := &ff.Command{
		Name:      "list",
		Usage:     "patrolctl officer list",
		ShortHelp: "show the saved officers",
		Flags:     ff.NewFlagSet("list").SetParent(a.flags),
		Exec: func(ctx context.Context, args []string) error {
			a.setup()
			cache, err := a.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()

			roster, err := cache.Load()
			if err != nil {
				return err
			}
			a.printRoster(roster)
			return nil
		},
	}

	clearCmd := &ff.Command{
		Name:      "clear",
		Usage:     "patrolctl officer clear",
		ShortHelp: "forget every saved officer",
		Flags:     ff.NewFlagSet("clear").SetParent(a.flags),
		Exec: func(ctx context.Context, args []string) error {
			a.setup()
			cache, err := a.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()
			return cache.Clear()
		},
	}

	return &ff.Command{
		Name:        "officer",
		Usage:       "patrolctl officer <SUBCOMMAND>",
		ShortHelp:   "manage the officers listed on your reports",
		Flags:       ff.NewFlagSet("officer").SetParent(a.flags),
		Subcommands: []*ff.Command{add, remove, list, clearCmd},
		Exec: func(ctx context.Context, args []string) error {
			return ff.ErrHelp
		},
	}
}

// withRoster loads the roster, applies fn and saves the result.
func (a *app) withRoster(fn func(*ledger.Roster) error) error {
	a.setup()
	cache, err := a.openCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	roster, err := cache.Load()
	if err != nil {
		return err
	}
	if err := fn(roster); err != nil {
		return err
	}
	if err := cache.Save(roster); err != nil {
		return fmt.Errorf("saving officers: %w", err)
	}
	a.printRoster(roster)
	return nil
}

// addOfficer fills the blank starting officer, replaces an officer with the
// same badge, or appends.
func addOfficer(r *ledger.Roster, o ledger.Officer) error {
	if o.Badge == "" {
		return fmt.Errorf("--badge is required")
	}
	ids := r.IDs()
	officers := r.Officers()
	for i, existing := range officers {
		if existing.Empty() || existing.Badge == o.Badge {
			return r.Update(ids[i], o)
		}
	}
	_, err := r.Add(o)
	return err
}

func (a *app) printRoster(r *ledger.Roster) {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tBADGE\tNAME\tRANK\tDISCORD ID\tSIGNATURE")
	for i, o := range r.Officers() {
		role := ""
		if i == 0 {
			role = " (primary)"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%s\t%s\t%s\n", i+1, role, o.Badge, o.Username, o.Rank, o.DiscordUserID, o.Signature)
	}
	tw.Flush()
}
