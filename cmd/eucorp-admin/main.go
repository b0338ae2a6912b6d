package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/eucorp/planning/config"
	"github.com/eucorp/planning/internal/bootstrap"
	"github.com/eucorp/planning/internal/devseed"
	domainauth "github.com/eucorp/planning/internal/domain/auth"
	"github.com/redis/go-redis/v9"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

const sessionKeyPrefix = "session:"

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"db-reset": {
			name:        "db-reset",
			description: "Drop the database schema, run migrations, and optionally seed data",
			run:         runDBReset,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"list-sessions": {
			name:        "list-sessions",
			description: "Inspect active login sessions stored in Redis",
			run:         runListSessions,
		},
		"clear-sessions": {
			name:        "clear-sessions",
			description: "Remove login sessions from Redis, forcing users to sign in again",
			run:         runClearSessions,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: eucorp-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0)
	cmds := commands()
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := cmds[name]
		if err := writef(os.Stdout, "  %-24s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

type migrateOptions struct {
	Timeout time.Duration
}

type dbResetOptions struct {
	Timeout     time.Duration
	Yes         bool
	Seed        bool
	AllowRemote bool
}

type dbSeedOptions struct {
	Timeout     time.Duration
	AllowRemote bool
}

type sessionListOptions struct {
	Email string
	Limit int
}

type sessionClearOptions struct {
	Email  string
	ID     string
	All    bool
	DryRun bool
	Yes    bool
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBResetFlags(args)
	if err != nil {
		return err
	}

	target := fmt.Sprintf(
		"database %q on %s:%d",
		cmdCtx.Config.Postgres.Name,
		cmdCtx.Config.Postgres.Host,
		cmdCtx.Config.Postgres.Port,
	)

	remote, err := guardRemoteHost(cmdCtx, opts.AllowRemote, "drop and recreate the public schema")
	if err != nil {
		return err
	}

	confirmOpts := dbResetConfirmOptions{
		yes:    opts.Yes,
		target: target,
	}
	if remote {
		confirmOpts.remoteHost = cmdCtx.Config.Postgres.Host
	}
	if confirmErr := confirmAction(confirmOpts, "reset database schema"); confirmErr != nil {
		return confirmErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("dropping public schema", "database", cmdCtx.Config.Postgres.Name)
		if resetErr := cmdCtx.resetDatabase(ctx, db); resetErr != nil {
			return resetErr
		}

		cmdCtx.Logger.Info("re-running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		if opts.Seed {
			cmdCtx.Logger.Info("seeding development data after reset")
			if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
				return fmt.Errorf("seed data: %w", seedErr)
			}
		}

		cmdCtx.Logger.Info("database reset completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBSeedFlags(args)
	if err != nil {
		return err
	}

	if _, guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "seed development data on the configured database"); guardErr != nil {
		return guardErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

type sessionEntry struct {
	Key     string
	Session domainauth.Session
	TTL     time.Duration
}

func runListSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseSessionListFlags(args)
	if err != nil {
		return err
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		entries, total, scanErr := collectSessions(ctx, client, cmdCtx.Logger, opts.Email, opts.Limit)
		if scanErr != nil {
			return scanErr
		}
		return printSessionTable(os.Stdout, entries, total)
	})
}

func runClearSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseSessionClearFlags(args)
	if err != nil {
		return err
	}

	if confirmErr := confirmAction(sessionClearConfirmOptions{opts}, "clear login sessions"); confirmErr != nil {
		return confirmErr
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		if opts.ID != "" {
			return clearSessionByID(ctx, client, cmdCtx.Logger, opts)
		}

		entries, _, scanErr := collectSessions(ctx, client, cmdCtx.Logger, opts.Email, 0)
		if scanErr != nil {
			return scanErr
		}
		if len(entries) == 0 {
			return writeln(os.Stdout, "No matching sessions found.")
		}

		if opts.DryRun {
			if err := writef(os.Stdout, "Dry run: %d session(s) would be removed.\n", len(entries)); err != nil {
				return fmt.Errorf("print dry run summary: %w", err)
			}
			return printSessionTable(os.Stdout, entries, len(entries))
		}

		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			keys = append(keys, e.Key)
		}
		removed, delErr := client.Del(ctx, keys...).Result()
		if delErr != nil {
			return fmt.Errorf("delete sessions: %w", delErr)
		}

		cmdCtx.Logger.Info("sessions cleared", "removed", removed)
		return writef(os.Stdout, "Removed %d session(s).\n", removed)
	})
}

func clearSessionByID(
	ctx context.Context,
	client redis.UniversalClient,
	logger *slog.Logger,
	opts sessionClearOptions,
) error {
	key := sessionKeyPrefix + opts.ID
	if opts.DryRun {
		exists, err := client.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("check session %q: %w", opts.ID, err)
		}
		return writef(os.Stdout, "Dry run: %d session(s) would be removed.\n", exists)
	}

	removed, err := client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("delete session %q: %w", opts.ID, err)
	}
	if removed == 0 {
		return writef(os.Stdout, "No session found with id %q.\n", opts.ID)
	}
	logger.Info("session cleared", "session_id", opts.ID)
	return writef(os.Stdout, "Removed session %q.\n", opts.ID)
}

func collectSessions(
	ctx context.Context,
	client redis.UniversalClient,
	logger *slog.Logger,
	emailFilter string,
	limit int,
) ([]sessionEntry, int, error) {
	var (
		entries   []sessionEntry
		total     int
		truncated bool
	)

	iter := client.Scan(ctx, 0, sessionKeyPrefix+"*", 1000).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, 0, fmt.Errorf("read session key %q: %w", key, err)
		}

		var sess domainauth.Session
		if unmarshalErr := json.Unmarshal([]byte(raw), &sess); unmarshalErr != nil {
			if logger != nil {
				logger.Warn("skipping undecodable session key", "key", key, "error", unmarshalErr)
			}
			continue
		}

		if emailFilter != "" && !strings.EqualFold(sess.Email, emailFilter) {
			continue
		}

		total++
		if truncated {
			continue
		}
		if limit > 0 && len(entries) >= limit {
			truncated = true
			continue
		}

		ttl, ttlErr := client.TTL(ctx, key).Result()
		if ttlErr != nil {
			return nil, 0, fmt.Errorf("query redis ttl for key %q: %w", key, ttlErr)
		}

		entries = append(entries, sessionEntry{Key: key, Session: sess, TTL: ttl})
	}
	if err := iter.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan session keys: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Session.Email == entries[j].Session.Email {
			return entries[i].Session.ID < entries[j].Session.ID
		}
		return entries[i].Session.Email < entries[j].Session.Email
	})
	return entries, total, nil
}

func printSessionTable(w io.Writer, entries []sessionEntry, total int) error {
	if len(entries) == 0 {
		return writeln(w, "No sessions found.")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "SESSION ID\tEMAIL\tROLE\tEXPIRES\tTTL"); err != nil {
		return fmt.Errorf("print session table header: %w", err)
	}
	for _, e := range entries {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Session.ID,
			e.Session.Email,
			e.Session.Role,
			e.Session.ExpiresAt.Format(time.RFC3339),
			renderTTL(e.TTL),
		); err != nil {
			return fmt.Errorf("print session row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush session table: %w", err)
	}

	if total > len(entries) {
		return writef(w, "\nShowing %d of %d sessions (use --limit to adjust).\n", len(entries), total)
	}
	return writef(w, "\nTotal: %d session(s)\n", total)
}

func renderTTL(d time.Duration) string {
	switch {
	case d < 0:
		return "none"
	case d == 0:
		return "expired"
	default:
		return d.Round(time.Second).String()
	}
}

type confirmOptions interface {
	IsDryRun() bool
	IsYes() bool
	GetTarget() string
	GetWarning() string
}

type dbResetConfirmOptions struct {
	yes        bool
	target     string
	remoteHost string
}

func (d dbResetConfirmOptions) IsDryRun() bool { return false }
func (d dbResetConfirmOptions) IsYes() bool {
	if d.remoteHost != "" {
		return false
	}
	return d.yes
}

func (d dbResetConfirmOptions) GetWarning() string {
	warning := "WARNING: this will drop and recreate the public schema for the configured database."
	if d.remoteHost != "" {
		warning += fmt.Sprintf(" Host %q appears to be remote; double-check before proceeding.", d.remoteHost)
	}
	return warning
}
func (d dbResetConfirmOptions) GetTarget() string { return d.target }

type sessionClearConfirmOptions struct {
	opts sessionClearOptions
}

func (s sessionClearConfirmOptions) IsDryRun() bool { return s.opts.DryRun }
func (s sessionClearConfirmOptions) IsYes() bool    { return s.opts.Yes }
func (s sessionClearConfirmOptions) GetWarning() string {
	return "WARNING: this will remove every login session and force all users to sign in again."
}

func (s sessionClearConfirmOptions) GetTarget() string {
	if s.opts.ID != "" {
		return fmt.Sprintf("session %q", s.opts.ID)
	}
	if s.opts.Email != "" {
		return fmt.Sprintf("sessions for %q", s.opts.Email)
	}
	return ""
}

func confirmAction(opts confirmOptions, actionType string) error {
	if opts.IsDryRun() || opts.IsYes() {
		return nil
	}

	if err := printConfirmationIntro(opts, actionType); err != nil {
		return err
	}

	if err := write(os.Stdout, "Continue? [y/N]: "); err != nil {
		return fmt.Errorf("print confirmation prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		if writeErr := writef(os.Stdout, "\nFailed to read confirmation input: %v\n", err); writeErr != nil {
			return fmt.Errorf("aborted by user: report write failed: %w", writeErr)
		}
		return errors.New("aborted by user")
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	if resp == "y" || resp == "yes" {
		return nil
	}
	return errors.New("aborted by user")
}

func printConfirmationIntro(opts confirmOptions, actionType string) error {
	target := opts.GetTarget()
	if target == "" {
		if err := writeln(os.Stdout, opts.GetWarning()); err != nil {
			return fmt.Errorf("print confirmation warning: %w", err)
		}
		return nil
	}

	if err := writef(os.Stdout, "About to %s for %s.\n", actionType, target); err != nil {
		return fmt.Errorf("print confirmation message: %w", err)
	}
	return nil
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := migrateOptions{
		Timeout: defaultMigrationTimeout,
	}

	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for migrations to complete",
	)

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}

	if opts.Timeout <= 0 {
		return migrateOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseDBResetFlags(args []string) (dbResetOptions, error) {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbResetOptions{
		Timeout: defaultMigrationTimeout,
	}

	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for reset operations to complete",
	)
	fs.BoolVar(
		&opts.Yes,
		"yes",
		false,
		"Skip confirmation prompt",
	)
	fs.BoolVar(
		&opts.Seed,
		"seed",
		false,
		"Run database seeding after reset completes",
	)
	fs.BoolVar(
		&opts.AllowRemote,
		"allow-remote",
		false,
		"Permit running against database hosts that do not look local",
	)

	if err := fs.Parse(args); err != nil {
		return dbResetOptions{}, err
	}

	if opts.Timeout <= 0 {
		return dbResetOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseDBSeedFlags(args []string) (dbSeedOptions, error) {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbSeedOptions{
		Timeout: defaultMigrationTimeout,
	}

	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for seeding to complete",
	)
	fs.BoolVar(
		&opts.AllowRemote,
		"allow-remote",
		false,
		"Permit running against database hosts that do not look local",
	)

	if err := fs.Parse(args); err != nil {
		return dbSeedOptions{}, err
	}

	if opts.Timeout <= 0 {
		return dbSeedOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseSessionListFlags(args []string) (sessionListOptions, error) {
	fs := flag.NewFlagSet("list-sessions", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := sessionListOptions{Limit: 50}

	fs.StringVar(&opts.Email, "email", "", "Only show sessions for this email address")
	fs.IntVar(&opts.Limit, "limit", 50, "Maximum number of sessions to display (0 for no limit)")

	if err := fs.Parse(args); err != nil {
		return sessionListOptions{}, err
	}

	if opts.Limit < 0 {
		return sessionListOptions{}, errors.New("--limit must be >= 0")
	}

	return opts, nil
}

func parseSessionClearFlags(args []string) (sessionClearOptions, error) {
	fs := flag.NewFlagSet("clear-sessions", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts sessionClearOptions

	fs.StringVar(&opts.Email, "email", "", "Only clear sessions for this email address")
	fs.StringVar(&opts.ID, "id", "", "Clear a single session by id")
	fs.BoolVar(&opts.All, "all", false, "Clear every session")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be removed without deleting anything")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return sessionClearOptions{}, err
	}

	if err := validateSessionClearOptions(&opts); err != nil {
		return sessionClearOptions{}, err
	}

	return opts, nil
}

func validateSessionClearOptions(opts *sessionClearOptions) error {
	if opts == nil {
		return errors.New("clear options are required")
	}
	selectors := 0
	if opts.Email != "" {
		selectors++
	}
	if opts.ID != "" {
		selectors++
	}
	if opts.All {
		selectors++
	}
	if selectors == 0 {
		return errors.New("provide --email, --id, or --all to select sessions")
	}
	if selectors > 1 {
		return errors.New("--email, --id, and --all are mutually exclusive")
	}
	return nil
}

func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", cerr)
		}
	}()

	return f(ctx, db)
}

func withRedis(
	cmdCtx *commandContext,
	f func(context.Context, redis.UniversalClient) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, client, err := connectInfraWithOptions(&connectInfraOptions{
		Logger:    cmdCtx.Logger,
		Config:    &cmdCtx.Config,
		WantDB:    false,
		WantRedis: true,
	})
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("redis is not configured; set REDIS_URI (or sentinel/cluster settings) first")
	}
	defer func() {
		if cerr := closeInfra(nil, client); cerr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", cerr)
		}
	}()

	return f(ctx, client)
}

func guardRemoteHost(cmdCtx *commandContext, allow bool, action string) (bool, error) {
	remote := isLikelyRemoteHost(cmdCtx.Config.Postgres.Host)
	if !remote {
		return false, nil
	}
	if !allow {
		return true, fmt.Errorf(
			"refusing to run against potentially remote database host %q; re-run with --allow-remote if this is intentional",
			cmdCtx.Config.Postgres.Host,
		)
	}
	if err := requireRemoteHostConfirmation(action, cmdCtx.Config.Postgres.Host); err != nil {
		return true, err
	}
	return true, nil
}

func (cmdCtx *commandContext) resetDatabase(ctx context.Context, db *sql.DB) error {
	if cmdCtx == nil {
		return errors.New("command context is required")
	}

	cfg := &cmdCtx.Config.Postgres
	statements := []string{
		"DROP SCHEMA public CASCADE",
		"CREATE SCHEMA public",
		"GRANT ALL ON SCHEMA public TO public",
	}
	if user := strings.TrimSpace(cfg.User); user != "" && !strings.EqualFold(user, "public") {
		statements = append(statements, "GRANT ALL ON SCHEMA public TO "+quoteIdentifier(user))
	}

	for _, stmt := range statements {
		if cmdCtx.Logger != nil {
			cmdCtx.Logger.DebugContext(ctx, "executing reset statement", "sql", stmt)
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func isLikelyRemoteHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return false
	}
	if h == "localhost" || h == "127.0.0.1" || h == "::1" {
		return false
	}
	if strings.HasSuffix(h, ".local") {
		return false
	}
	if ip := net.ParseIP(host); ip != nil {
		return !ip.IsLoopback()
	}
	return true
}

func requireRemoteHostConfirmation(action, host string) error {
	if err := writef(
		os.Stderr,
		"\nWARNING: database host %q does not look like a local address.\n"+
			"This operation will %s.\n",
		host,
		action,
	); err != nil {
		return fmt.Errorf("print remote host warning: %w", err)
	}
	if err := writef(os.Stderr, "Type %q to continue or press enter to abort: ", host); err != nil {
		return fmt.Errorf("print remote host prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		if writeErr := writef(os.Stderr, "\nFailed to read confirmation input: %v\n", err); writeErr != nil {
			return fmt.Errorf("aborted by user: report write failed: %w", writeErr)
		}
		return errors.New("aborted by user")
	}
	if strings.TrimSpace(resp) != host {
		if writeErr := writeln(os.Stderr, "\nRemote safeguard check failed; aborting."); writeErr != nil {
			return fmt.Errorf("print remote safeguard failure: %w", writeErr)
		}
		return errors.New("aborted by user")
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func write(w io.Writer, args ...any) error {
	_, err := fmt.Fprint(w, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}
