// Command inkmark is a terminal Markdown editor with a formatting toolbar
// and live preview.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inkmark/inkmark"
	"github.com/inkmark/inkmark/config"
	"github.com/inkmark/inkmark/storage"
)

var (
	flagConfig string
	flagLog    string
)

var rootCmd = &cobra.Command{
	Use:   "inkmark [file]",
	Short: "Terminal Markdown editor",
	Long:  `Inkmark edits Markdown in the terminal with a formatting toolbar, syntax highlighting, and a rendered preview.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runEditor(path)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inkmark version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(inkmark.VersionTag())
	},
}

func main() {
	rootCmd.Version = inkmark.Version()
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: per-user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "write a debug log to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEditor(path string) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", "recovered", fmt.Sprint(r))
			panic(r)
		}
	}()

	cfgPath := flagConfig
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	prefs, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "path", cfgPath)

	store := storage.NewFileStore()
	text := ""
	if path != "" {
		ok, err := store.Exists(path)
		if err != nil {
			return err
		}
		if ok {
			if text, err = store.Load(path); err != nil {
				return err
			}
		}
	}

	app, err := newApp(appConfig{
		Path:   path,
		Text:   text,
		Prefs:  prefs,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
