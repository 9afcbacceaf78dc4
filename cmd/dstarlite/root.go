package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// logFormat is a pflag.Value restricted to "text" and "json".
type logFormat string

const (
	formatText logFormat = "text"
	formatJSON logFormat = "json"
)

func (f *logFormat) String() string { return string(*f) }
func (f *logFormat) Type() string   { return "format" }

func (f *logFormat) Set(v string) error {
	switch logFormat(v) {
	case formatText, formatJSON:
		*f = logFormat(v)
		return nil
	}

	return fmt.Errorf("unknown log format %q (want text or json)", v)
}

var _ pflag.Value = (*logFormat)(nil)

// app carries state shared by every subcommand.
type app struct {
	logger  *log.Logger
	verbose bool
	format  logFormat
}

func newRootCmd(logger *log.Logger, version string) *cobra.Command {
	a := &app{logger: logger, format: formatText}
	root := &cobra.Command{
		Use:          "dstarlite",
		Short:        "Plan and incrementally replan shortest routes over grid scenarios",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.configureLogger()
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	root.PersistentFlags().Var(&a.format, "log-format", "log output format: text or json")

	root.AddCommand(newPlanCmd(a), newWatchCmd(a))

	return root
}

func (a *app) configureLogger() {
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if a.format == formatJSON {
		a.logger.SetFormatter(&log.JSONFormatter{})
		return
	}
	color := false
	if f, ok := a.logger.Out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	a.logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: !color,
	})
}
