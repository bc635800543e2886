package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"courierPortal/internal/cache"
	"courierPortal/internal/config"
	"courierPortal/internal/db"
	"courierPortal/internal/errs"
	"courierPortal/internal/identity"
	"courierPortal/internal/lifecycle"
	"courierPortal/internal/logging"
	"courierPortal/internal/network"
	"courierPortal/internal/store"
	"courierPortal/models"
)

var (
	verbose bool

	logger *zap.Logger
	app    *portalApp
)

// portalApp bundles the wired services behind every command.
type portalApp struct {
	cfg      *config.Config
	db       *sql.DB
	state    *cache.State
	shipping *lifecycle.Manager
	accounts *identity.Manager
	admin    *network.Admin
}

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Courier booking and tracking portal",
	Long: `portal is the courier network's booking-and-tracking shell.

Customers book and track shipments, branch agents move them through the
delivery pipeline, and network administrators manage branches, fleet and
staff.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		cfg, usedFallback := config.LoadOrDefaults()
		if usedFallback {
			logger.Warn("PORTAL_SESSION_SECRET is not set; sessions are signed with the development fallback secret")
		}
		d, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}

		state := cache.New()
		recs := store.NewSQLiteStore(d, cfg.Tracking.Prefix)
		sessions := identity.NewFileSessionStore(cfg.Session.Path, cfg.Session.Secret)
		app = &portalApp{
			cfg:      cfg,
			db:       d,
			state:    state,
			shipping: lifecycle.NewManager(recs, state, logger),
			accounts: identity.NewManager(recs, sessions, state, logger),
			admin:    network.NewAdmin(recs, state, logger),
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil && app.db != nil {
			_ = app.db.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(bookCmd, trackCmd, shipmentsCmd, statusCmd, cancelCmd, notificationsCmd)
	rootCmd.AddCommand(branchCmd, fleetCmd, staffCmd)
}

// currentUser restores the persisted session or fails the command.
func currentUser() (*models.User, error) {
	u, ok, err := app.accounts.Restore()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("not logged in; run `portal login` first")
	}
	return u, nil
}

// fail prints a user-facing message for the portal error kinds.
func fail(err error) error {
	switch {
	case errs.IsValidation(err):
		color.Yellow("%v", err)
	case errs.IsInvalidTransition(err):
		color.Red("%v", err)
	case errors.Is(err, errs.ErrNotFound):
		color.Red("%v", err)
	case errors.Is(err, errs.ErrDuplicate):
		color.Yellow("%v", err)
	case errors.Is(err, errs.ErrNetwork):
		color.Red("store unreachable, try again: %v", err)
	default:
		color.Red("error: %v", err)
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
