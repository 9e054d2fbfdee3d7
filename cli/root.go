// Package cli wires the capitalizer and DoubleSet into a command line tool.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "takehome"
	envPrefix = "TAKEHOME"

	defaultNth    = 3
	defaultPrompt = "doubleset> "
)

type Config struct {
	Debug  bool
	Nth    int
	Prompt string
}

type app struct {
	cfg       Config
	configDir string
	log       *log.Logger
}

// Run executes the command line given in args and logs any failure to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a, root := newApp(stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.WithFields(log.Fields{
			"command": strings.Join(args, " "),
		}).Error(err)
		return err
	}

	return nil
}

func newApp(stdout, stderr io.Writer) (*app, *cobra.Command) {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(log.WarnLevel)

	a := &app{
		cfg: Config{Nth: defaultNth, Prompt: defaultPrompt},
		log: logger,
	}

	root := &cobra.Command{
		Use:   appName,
		Short: "Nth character capitalizer and DoubleSet calculator",

		// usage is for flag errors only
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: a.preRun,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.BoolP("debug", "d", false, "Enable debug log output")
	flags.StringVar(&a.configDir, "config", "", "Directory holding "+appName+".yaml")

	root.AddCommand(
		a.capitalizeCommand(),
		a.doubleSetCommand(),
		a.replCommand(),
	)

	return a, root
}

// preRun resolves flags, TAKEHOME_* environment variables and the optional
// config file, in that order of precedence.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if a.configDir != "" {
		v.AddConfigPath(a.configDir)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("nth", defaultNth)
	v.SetDefault("prompt", defaultPrompt)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "config")
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "flags")
	}

	a.cfg = Config{
		Debug:  v.GetBool("debug"),
		Nth:    v.GetInt("nth"),
		Prompt: v.GetString("prompt"),
	}

	if a.cfg.Debug {
		a.log.SetLevel(log.DebugLevel)
	}

	a.log.WithFields(log.Fields{
		"command": cmd.Name(),
		"config":  v.ConfigFileUsed(),
		"nth":     a.cfg.Nth,
	}).Debug("configuration resolved")

	return nil
}
