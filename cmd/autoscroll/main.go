package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rneiva/autoscroll/internal/config"
	"github.com/rneiva/autoscroll/internal/layout"
	"github.com/rneiva/autoscroll/internal/validate"
	"github.com/rneiva/autoscroll/internal/viewer"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	seconds    int
	verbose    bool
	configPath = config.DefaultPath

	rootCmd = &cobra.Command{
		Use:   "autoscroll [-s secs] FILE",
		Short: "Display a text file on the terminal, autoscrolling one line per interval.",
		Long: `Display the contents of a text file on the terminal window. The content
autoscrolls one line every second unless a different interval is given with -s.
The status bar shows the current time (HH:MM:SS) and the line range on screen.

ctrl+z pauses scrolling (the clock keeps running), ctrl+c resumes it, and
ctrl+\ or q quits. Reaching the end of the file also exits. Lines longer than
the terminal width wrap, and only display when there is enough free space.`,
		Args: cobra.ExactArgs(1),
		Run:  runViewer,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so diagnostics never land on the display.
	logrus.SetOutput(os.Stderr)

	rootCmd.Flags().IntVarP(&seconds, "seconds", "s", 0,
		fmt.Sprintf("Scroll interval in whole seconds (%d-%d)", viewer.MinInterval, viewer.MaxInterval))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the defaults file")

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func runViewer(cmd *cobra.Command, args []string) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// The viewer only makes sense on an interactive terminal; without one
	// nothing else is worth reporting.
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	interval, err := resolveInterval(cmd.Flags().Changed("seconds"), seconds, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = cmd.Usage()
		os.Exit(1)
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		logrus.Fatalf("Unable to query terminal size: %v", err)
	}
	vp := layout.Viewport{Rows: rows, Cols: cols}
	logrus.Debugf("viewport %dx%d, interval %ds", rows, cols, interval)

	if err := viewer.Run(args[0], interval, vp); err != nil {
		logrus.Fatal(err)
	}
}

// resolveInterval applies flag-beats-config-beats-default precedence and
// bounds an explicit -s value.
func resolveInterval(flagSet bool, flagValue int, cfg config.File) (int, error) {
	if !flagSet {
		return cfg.DefaultInterval, nil
	}
	tag := fmt.Sprintf("gte=%d,lte=%d", viewer.MinInterval, viewer.MaxInterval)
	if err := validate.Var(flagValue, tag); err != nil {
		return 0, fmt.Errorf("Seconds must be a positive integer less than %d.", viewer.MaxInterval+1)
	}
	return flagValue, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
