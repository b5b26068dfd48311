package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/gigcal/gigcal/internal/cli"
	"github.com/gigcal/gigcal/internal/cli/data"
	"github.com/gigcal/gigcal/internal/cli/events"
	"github.com/gigcal/gigcal/internal/cli/settings"
	"github.com/gigcal/gigcal/internal/cli/system"
	"github.com/gigcal/gigcal/internal/cli/tags"
	"github.com/gigcal/gigcal/internal/config"
	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/errors"
	"github.com/gigcal/gigcal/internal/logger"
	"github.com/gigcal/gigcal/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." default:"${configPath}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init  Init           `cmd:"" help:"Initialize storage and write the config file."`
	Tui   system.TuiCmd  `cmd:"" help:"Launch the interactive calendar." default:"1"`
	View  system.ViewCmd `cmd:"" help:"Print a month grid."`
	Event struct {
		Add    events.AddCmd    `cmd:"" help:"Add an event."`
		Edit   events.EditCmd   `cmd:"" help:"Edit an event."`
		Delete events.DeleteCmd `cmd:"" help:"Delete an event."`
		List   events.ListCmd   `cmd:"" help:"List events."`
		Show   events.ShowCmd   `cmd:"" help:"Show the events on a date."`
	} `cmd:"" help:"Manage events."`
	Tags struct {
		List        tags.ListCmd        `cmd:"" help:"Show the tag vocabulary." default:"1"`
		Color       tags.ColorCmd       `cmd:"" help:"Recolor a category."`
		AddPlace    tags.AddPlaceCmd    `cmd:"" help:"Add a venue name."`
		RemovePlace tags.RemovePlaceCmd `cmd:"" help:"Remove a venue name."`
		AddCity     tags.AddCityCmd     `cmd:"" help:"Add a city name."`
		RemoveCity  tags.RemoveCityCmd  `cmd:"" help:"Remove a city name."`
		Reset       tags.ResetCmd       `cmd:"" help:"Reset the vocabulary to defaults."`
	} `cmd:"" help:"Manage the tag vocabulary."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Export   data.ExportCmd       `cmd:"" help:"Export events to CSV, JSON or ICS."`
	Import   data.ImportCmd       `cmd:"" help:"Import events from a CSV or JSON file."`
	Backup   struct {
		Create  data.BackupCreateCmd  `cmd:"" help:"Create a full-state backup." default:"1"`
		List    data.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore data.BackupRestoreCmd `cmd:"" help:"Restore from a backup file."`
	} `cmd:"" help:"Manage full-state backups."`
	Reset data.ResetCmd `cmd:"" help:"Clear all stored data."`
}

// Init is declared here rather than in the system package wrapper so the
// storage flags land next to the global config flag.
type Init struct {
	Storage string `help:"Storage backend (file|sqlite)." default:"file"`
	DataDir string `help:"Data directory." default:"${dataDir}"`

	cmd system.InitCmd
}

func (c *Init) Run(ctx *cli.Context) error {
	ctx.Config.Storage = config.Backend(c.Storage)
	ctx.Config.DataDir = c.DataDir
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	// The store built in main followed the old config; rebuild it against
	// the directory being initialized.
	dataDir := config.ExpandHome(c.DataDir)
	if dataDir != ctx.DataDir {
		kv, err := openKV(ctx.Config, dataDir)
		if err != nil {
			return err
		}
		ctx.Store.Close()
		ctx.Store = storage.NewStore(kv)
		ctx.DataDir = dataDir
	}
	return c.cmd.Run(ctx)
}

// openKV builds the configured KV backend rooted at dataDir.
func openKV(cfg config.Config, dataDir string) (storage.KV, error) {
	if cfg.Storage == config.BackendSQLite {
		return storage.NewSQLiteKV(filepath.Join(dataDir, constants.AppName+".db"))
	}
	return storage.NewFileKV(dataDir)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal event calendar: dated events with category tags, venue, city and color."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":      constants.Version,
			"configPath":   constants.DefaultConfigPath,
			"dataDir":      constants.DefaultDataDir,
			"defaultColor": constants.DefaultColor,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	dataDir := config.ExpandHome(cfg.DataDir)
	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	kv, err := openKV(cfg, dataDir)
	if err != nil {
		errors.Fatal(err)
	}

	store := storage.NewStore(kv)
	defer store.Close()

	appCtx := &cli.Context{
		Store:      store,
		DataDir:    dataDir,
		ConfigPath: CLI.Config,
		Config:     cfg,
	}
	errors.Fatal(ctx.Run(appCtx))
}
