// Command patrolctl files citations and arrest reports from the terminal. It
// keeps the officer roster between runs and computes totals the same way the
// server checks them.
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/zombor/patrol-reports/internal/auth"
	"github.com/zombor/patrol-reports/internal/client"
	"github.com/zombor/patrol-reports/internal/officercache"
	"github.com/zombor/patrol-reports/pkg/logging"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newApp(os.Stdout).command()
	err := root.ParseAndRun(ctx, os.Args[1:],
		ff.WithEnvVarPrefix("PATROLCTL"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	switch {
	case err == nil:
	case errors.Is(err, ff.ErrHelp):
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Command(root.GetSelected()))
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the root flags shared by every subcommand.
type app struct {
	stdout io.Writer

	flags     *ff.FlagSet
	server    *string
	cachePath *string
	userID    *string
	username  *string
	roles     *string
	token     *string
	logLevel  *string
}

func newApp(stdout io.Writer) *app {
	fs := ff.NewFlagSet("patrolctl")
	a := &app{
		stdout:    stdout,
		flags:     fs,
		server:    fs.StringLong("server", "http://localhost:8080", "patrol-reports server URL"),
		cachePath: fs.StringLong("cache", "", "Officer cache file (default in the user config dir)"),
		userID:    fs.StringLong("user-id", "", "Your Discord user ID, sent as the caller identity"),
		username:  fs.StringLong("username", "", "Your Discord username"),
		roles:     fs.StringLong("roles", "", "Comma separated roles sent with the identity headers"),
		token:     fs.StringLong("token", "", "Bearer identity token (replaces the identity headers)"),
		logLevel:  fs.StringLong("log-level", "", "Log level: debug, info, warn or error"),
	}
	fs.StringLong("config", "", "Config file path")
	return a
}

func (a *app) command() *ff.Command {
	showVersion := a.flags.BoolLong("version", "Show version information")
	return &ff.Command{
		Name:      "patrolctl",
		Usage:     "patrolctl [FLAGS] <SUBCOMMAND>",
		ShortHelp: "file citations and arrest reports",
		Flags:     a.flags,
		Subcommands: []*ff.Command{
			a.officerCommand(),
			a.citationCommand(),
			a.arrestCommand(),
			a.codesCommand(),
			a.citationsCommand(),
		},
		Exec: func(ctx context.Context, args []string) error {
			if *showVersion {
				fmt.Fprintln(a.stdout, version)
				return nil
			}
			return ff.ErrHelp
		},
	}
}

// setup runs before every subcommand.
func (a *app) setup() {
	logging.Setup(*a.logLevel)
}

func (a *app) openCache() (*officercache.Cache, error) {
	path := *a.cachePath
	if path == "" {
		var err error
		path, err = officercache.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return officercache.Open(path)
}

func (a *app) client() *client.Client {
	if *a.token != "" {
		return client.New(*a.server, client.WithToken(*a.token))
	}
	return client.New(*a.server, client.WithIdentity(auth.Identity{
		UserID:   *a.userID,
		Username: *a.username,
		Roles:    auth.ParseRoles(*a.roles),
	}))
}
