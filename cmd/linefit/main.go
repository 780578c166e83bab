package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/linefit/config"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

// flag name -> config key
var flagKeys = map[string]string{
	"input":           "input",
	"epochs":          "epochs",
	"learning-rate":   "learning_rate",
	"verbose":         "verbose",
	"progress-every":  "progress_every",
	"progress-bar":    "progress_bar",
	"plot":            "plot",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"log-path":        "log.path",
	"log-max-size":    "log.max_size",
	"log-max-backups": "log.max_backups",
	"log-max-age":     "log.max_age",
}

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	conf   *config.Config
	logger log.Logger

	closers       []io.Closer
	resetWarnings func()
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "linefit",
		Short:         "Fit a straight line to (x, y) observations by gradient descent",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "configuration file (yaml, toml or json)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-path", "", "also write JSON logs to this file, rotated by size")
	flags.Int("log-max-size", 100, "maximum size in megabytes of the log file before rotation")
	flags.Int("log-max-backups", 0, "maximum number of rotated log files to keep (0 keeps all)")
	flags.Int("log-max-age", 0, "maximum number of days to keep rotated log files (0 keeps all)")

	root.AddCommand(newTrainCommand(a), newEvalCommand(a), newVersionCommand())
	return root
}

// setup loads the configuration for cmd and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if key, ok := flagKeys[flag.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, flag)
		}
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "bind flags")
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	}
	conf, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.conf = conf

	return a.setupLogger(cmd.ErrOrStderr())
}

func (a *app) setupLogger(w io.Writer) error {
	level, err := log.ParseLevel(a.conf.Log.Level)
	if err != nil {
		return err
	}

	var loggers []log.Logger
	switch a.conf.Log.Format {
	case "json":
		if err := log.SetupLogger(a.conf.Log.Level, w); err != nil {
			return err
		}
		loggers = append(loggers, log.NewSlogLogger(nil))
	default:
		loggers = append(loggers, log.NewConsoleLogger(w, level))
	}

	if a.conf.Log.Path != "" {
		file := log.NewRotatingFile(a.conf.Log.Path, a.conf.Log.MaxSize, a.conf.Log.MaxBackups, a.conf.Log.MaxAge)
		a.closers = append(a.closers, file)
		loggers = append(loggers, log.NewZerologLogger(file, level))
	}

	a.logger = log.Multi(loggers...).With(log.ComponentKey, "cli")
	a.resetWarnings = log.InstallWarnings(a.logger)
	return nil
}

// run wraps a subcommand body so the resources opened by setup are released
// even when the body fails.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.CombineErrors(err, a.close())
		}()
		return fn(cmd)
	}
}

func (a *app) close() error {
	if a.resetWarnings != nil {
		a.resetWarnings()
		a.resetWarnings = nil
	}
	var err error
	for _, c := range a.closers {
		err = errors.CombineErrors(err, c.Close())
	}
	a.closers = nil
	return err
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
