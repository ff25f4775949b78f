package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gaminglife/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func rootCommand() *cobra.Command {
	var configPath string
	var debug bool
	var profile bool

	root := &cobra.Command{
		Use:          "gaminglife",
		Short:        "Track where your day goes by dragging tasks around",
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			conf.Debug = conf.Debug || debug

			if profile {
				defer ProfileStart()()
			}

			return run(conf)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "path to a toml configuration file")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging and the debug overlay")
	root.Flags().BoolVar(&profile, "profile", false, "write a cpu profile")

	root.AddCommand(defaultsCommand())

	return root
}

func defaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Encode(cmd.OutOrStdout())
		},
	}
}

func run(conf config.Config) error {
	level := log.InfoLevel
	if conf.Debug {
		level = log.DebugLevel
	}

	logger := newLogger(os.Stderr, level)

	view := NewGraphView(conf, logger)

	recorder := &JournalRecorder{Logger: logger.WithPrefix("recorder")}

	// the record layer is drawn on top of the time view
	view.Layer(LayerTimeView, true)
	record := NewAudioRecordController(view, recorder)

	tasks := NewTaskLog(config.GroupIdRelax, time.Now())
	NewTimeViewController(view, conf, tasks, record)

	ebiten.SetWindowSize(conf.Window.Width, conf.Window.Height)
	ebiten.SetWindowTitle(conf.Window.Title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// only draw when something changed
	ebiten.SetScreenClearedEveryFrame(false)

	logger.Info("Starting", "groups", len(conf.Groups))

	if err := ebiten.RunGame(view); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	return nil
}
