// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, global flags and the service wiring
// shared by every subcommand.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/toeirei/littlelemon/buildvars"
	"github.com/toeirei/littlelemon/internal/config"
	"github.com/toeirei/littlelemon/internal/db"
	"github.com/toeirei/littlelemon/internal/i18n"
	"github.com/toeirei/littlelemon/internal/kv"
	"github.com/toeirei/littlelemon/internal/logging"
	"github.com/toeirei/littlelemon/internal/menu"
	"github.com/toeirei/littlelemon/internal/profile"
	"github.com/toeirei/littlelemon/internal/remote"
)

var version = buildvars.VersionOrDefault("dev")
var gitCommit = buildvars.CommitOrDefault("dev")
var buildDate = buildvars.Date // RFC3339
var cfgFile string
var verbose bool

var appConfig config.Config

// app holds the services opened by setupDefaultServices for the running
// command.
var app *services

type services struct {
	kv      kv.Store
	cache   *menu.Cache
	profile *profile.Service
	opened  bool
}

// menu returns the cache, creating the schema and populating it on first
// use in this process.
func (s *services) menu(ctx context.Context) (*menu.Cache, error) {
	if !s.opened {
		if _, err := s.cache.Open(ctx); err != nil {
			return nil, err
		}
		s.opened = true
	}
	return s.cache, nil
}

// menuSchema returns the cache with its schema in place but without
// populating it.
func (s *services) menuSchema(ctx context.Context) (*menu.Cache, error) {
	if err := s.cache.Store().EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s.cache, nil
}

func (s *services) close() {
	if s == nil {
		return
	}
	if err := s.cache.Close(); err != nil {
		log.Warnf("closing menu store: %v", err)
	}
	if err := s.kv.Close(); err != nil {
		log.Warnf("closing kv store: %v", err)
	}
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Warnf("ignoring .env: %v", err)
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optional_config_path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	// Fields left empty in a config file fall back to the defaults.
	appConfig.ApplyDefaults()

	if optional_config_path == nil {
		writeDefaultConfig()
	}

	i18n.Init(appConfig.Language)

	dialect, err := db.ParseDialect(appConfig.Storage.Dialect)
	if err != nil {
		return errors.New(i18n.T("config.error_dialect", err))
	}

	var flat kv.Store
	fileStore, err := kv.OpenFileStore(kv.FileOptions{Path: appConfig.Storage.KVPath, Compress: appConfig.Storage.Compress})
	if err != nil {
		log.Warnf("kv file %s unavailable, using memory: %v", appConfig.Storage.KVPath, err)
		flat = kv.NewMemoryStore()
	} else {
		flat = fileStore
	}

	store := db.OpenStore(cmd.Context(), db.Options{
		Caps:    config.Capabilities(appConfig),
		Dialect: dialect,
		DSN:     appConfig.Storage.DSN,
		Flat:    flat,
	})
	logging.Debugf("menu storage backend: %s", store.Kind())

	client := &http.Client{Timeout: appConfig.Remote.Timeout}
	app = &services{
		kv:      flat,
		cache:   menu.NewCache(store, remote.NewHTTPFetcher(appConfig.Remote.URL, client)),
		profile: profile.NewService(flat),
	}
	return nil
}

// writeDefaultConfig persists the defaults on first run so users have a
// file to edit.
func writeDefaultConfig() {
	path, err := config.GetConfigPath(false)
	if err != nil {
		return
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return
	}
	var c config.Config
	c.ApplyDefaults()
	if err := config.WriteConfigFile(&c, false); err != nil {
		log.Warnf("Warning: could not write default config file: %v", err)
		return
	}
	log.Infof("Wrote default config to %s", path)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	defer func() {
		app.close()
		app = nil
	}()
	err := NewRootCmd().ExecuteContext(context.Background())
	if err != nil {
		newRenderer(os.Stderr).failure(err.Error())
	}
	return err
}

// applyDefaultFlags registers the storage and remote flags on cmd. Flag
// names match config keys so viper can bind them.
func applyDefaultFlags(cmd *cobra.Command) {
	d := config.Defaults()
	flags := cmd.PersistentFlags()
	if flags.Lookup("storage.backend") == nil {
		flags.String("storage.backend", d["storage.backend"].(string), `Menu storage backend ("auto", "relational", "flat")`)
	}
	if flags.Lookup("storage.dialect") == nil {
		flags.String("storage.dialect", d["storage.dialect"].(string), `SQL dialect ("sqlite", "postgres", "mysql")`)
	}
	if flags.Lookup("storage.dsn") == nil {
		flags.String("storage.dsn", d["storage.dsn"].(string), "Database connection string (DSN); sqlite defaults to "+config.DefaultSQLiteDSN)
	}
	if flags.Lookup("storage.kv_path") == nil {
		flags.String("storage.kv_path", d["storage.kv_path"].(string), "Key-value file for profile data and the flat menu store")
	}
	if flags.Lookup("remote.url") == nil {
		flags.String("remote.url", d["remote.url"].(string), "Menu document URL")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. Tests use it
// to get fresh, isolated command trees.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "littlelemon",
		Short: i18n.T("root.short"),
		Long:  i18n.T("root.long"),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logging.SetDebug(true)
				db.SetDebug(true)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE:          runHome,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (includes SQL timings)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Message language ("en", "de")`)
	cmd.PersistentFlags().String("platform", config.PlatformNative, `Host platform ("native", "web")`)
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newMenuCmd(),
		newOnboardCmd(),
		newProfileCmd(),
		newLogoutCmd(),
		newVersionCmd(),
	)
	return cmd
}

// runHome mirrors the app's start screen: the onboarding prompt until
// onboarding is done, the full menu afterwards.
func runHome(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	onboarded, err := app.profile.IsOnboarded(ctx)
	if err != nil {
		return err
	}
	r := newRenderer(cmd.OutOrStdout())
	if !onboarded {
		r.hint(i18n.T("onboard.required"))
		return nil
	}
	cache, err := app.menu(ctx)
	if err != nil {
		return persistError(err)
	}
	r.menu(cache.Query(ctx, "", nil))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		// No services needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info == nil {
		return resolvedVersion, resolvedCommit, resolvedDate
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		resolvedVersion = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				resolvedCommit = s.Value
			}
		case "vcs.time":
			if s.Value != "" {
				resolvedDate = s.Value
			}
		}
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
