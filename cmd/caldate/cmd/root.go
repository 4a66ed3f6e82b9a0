package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/mdwcal/foundation/core/config"
	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
	mdwlog "github.com/msto63/mdwcal/foundation/core/log"
	"github.com/msto63/mdwcal/foundation/utils/timex"
	"github.com/msto63/mdwcal/internal/tui"
)

// EnvPrefix prefixes environment overrides, e.g. CALDATE_CALENDAR_LOCALE
const EnvPrefix = "CALDATE"

// Configuration keys for logging
const (
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

var (
	// Global flags
	cfgFile      string
	localeFlag   string
	weekdayFlag  string
	formatFlag   string
	nowFlag      string
	logLevelFlag string
	logFmtFlag   string

	// Resolved values
	settings *config.Config
	cal      *timex.Calendar
	names    timex.Names
	logger   *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "caldate",
	Short: "Calendar arithmetic and relative time formatting",
	Long: `caldate answers calendar questions about dates: weekdays, ISO weeks,
month boundaries, distances between dates and phrases like "2 days ago".

Every date argument accepts ISO dates ("2024-06-15", "2024-06-15T10:30:00Z"),
common layouts ("06/15/2024", "15.6.2024") and epoch milliseconds. Values
that cannot be read are replaced by the current instant and reported in
the log.

Settings are read from --config, or from caldate.toml / caldate.yaml in
the working directory, ./configs or the user config directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		return setup(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	flags.StringVar(&localeFlag, "locale", "", "locale of phrases and names, e.g. en, de, fr")
	flags.StringVar(&weekdayFlag, "first-weekday", "", "first day of the week, e.g. monday or sunday")
	flags.StringVar(&formatFlag, "time-format", "", "clock format: 12, 24 or locale")
	flags.StringVar(&nowFlag, "now", "", "use this instant as the current time")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn, error, off")
	flags.StringVar(&logFmtFlag, "log-format", "", "log format: console, text, json, logfmt")
}

// setup resolves settings, logger and calendar for a command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	settings, err = loadSettings()
	if err != nil {
		return err
	}

	overrides := []struct {
		flag string
		key  string
		val  string
	}{
		{"locale", timex.KeyLocale, localeFlag},
		{"first-weekday", timex.KeyFirstWeekday, weekdayFlag},
		{"time-format", timex.KeyTimeFormat, formatFlag},
		{"log-level", keyLogLevel, logLevelFlag},
		{"log-format", keyLogFormat, logFmtFlag},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			settings.Set(o.key, o.val)
		}
	}

	logger, err = newLogger(settings)
	if err != nil {
		return err
	}
	logger = logger.WithOutput(cmd.ErrOrStderr()).WithFields(mdwlog.Fields{
		"command": cmd.Name(),
	})
	mdwlog.SetDefault(logger)

	base := timex.Config{
		Location: time.Local,
		Logger:   logger,
	}
	if nowFlag != "" {
		probe, err := timex.New(base)
		if err != nil {
			return err
		}
		now, err := probe.Parse(nowFlag)
		if err != nil {
			return mdwerror.Wrap(err, "invalid --now value").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("caldate.setup").
				WithDetail("flag", "now")
		}
		base.Clock = timex.NewFixedClock(now)
	}

	timer := logger.StartTimer("load_calendar").WithField("locale", settings.GetString(timex.KeyLocale))
	cal, err = timex.LoadConfig(settings, nil, base)
	if err == nil {
		names, err = timex.BuiltinNames(cal.Locale().Name)
	}
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	logger.Debug("calendar ready", mdwlog.Fields{
		"calendar": cal.String(),
		"config":   settings.FilePath(),
	})
	logger.Trace("command started", mdwlog.Fields{"args": args})
	return nil
}

func loadSettings() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{EnvPrefix: EnvPrefix})
	}

	paths := []string{".", "configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "caldate"))
	}
	return config.Discover(config.DiscoveryOptions{
		Paths:     paths,
		Filenames: []string{"caldate"},
		EnvPrefix: EnvPrefix,
	})
}

// newLogger builds the command logger. The format defaults to console on a
// terminal and JSON otherwise; each invocation gets its own correlation id.
func newLogger(cfg *config.Config) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.GetString(keyLogLevel, mdwlog.DefaultLevel().String()))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("key", keyLogLevel)
	}

	format := mdwlog.FormatJSON
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		format = mdwlog.FormatConsole
	}
	if value := cfg.GetString(keyLogFormat); value != "" {
		if format, err = mdwlog.ParseFormat(value); err != nil {
			return nil, mdwerror.Wrap(err, "invalid log format").
				WithCode(mdwerror.CodeInvalidConfig).
				WithDetail("key", keyLogFormat)
		}
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "caldate",
	}).WithCorrelationID(uuid.NewString()), nil
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, tui.RenderError(fmt.Sprintf("%s: %v", msg, err)))
}
