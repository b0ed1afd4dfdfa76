// Package main provides the CLI entrypoint for srctype.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/srctype/internal/config"
	"github.com/verte-zerg/srctype/internal/logger"
	"github.com/verte-zerg/srctype/internal/model"
	"github.com/verte-zerg/srctype/internal/session"
	"github.com/verte-zerg/srctype/internal/source"
	"github.com/verte-zerg/srctype/internal/stats"
	"github.com/verte-zerg/srctype/internal/store"
	"github.com/verte-zerg/srctype/internal/tui"
)

const (
	defaultTime  = 30
	defaultLines = 20
	defaultTheme = "dark"
	defaultDir   = "."
)

type options struct {
	time      int
	lines     int
	file      string
	dir       string
	extension string
	theme     string
	debug     bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "srctype",
		Short:         "Typing practice on your own source files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTypingCmd(cmd, opts)
		},
	}

	rootCmd.Flags().IntVar(&opts.time, "time", defaultTime, "run duration in seconds")
	rootCmd.Flags().IntVar(&opts.lines, "line", defaultLines, "number of lines shown at once")
	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "", "file to type (wins over --dir)")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory to pick a random file from")
	rootCmd.Flags().StringVarP(&opts.extension, "extension", "e", "", "only pick files with this extension")
	rootCmd.Flags().StringVarP(&opts.theme, "theme", "t", defaultTheme, "color theme (dark or light)")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "write debug logs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newFilesCmd())

	return rootCmd
}

func runTypingCmd(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts, config.DefaultConfigPath())
	if err != nil {
		return err
	}

	if err := logger.Init(config.DefaultLogPath(), cfg.Debug); err != nil {
		logErrf("logging disabled: %v\n", err)
	}
	defer logger.Close()

	path, err := resolveFile(cfg, source.NewPicker())
	if err != nil {
		return err
	}
	text, err := source.Load(path)
	if err != nil {
		return err
	}
	sess, err := session.New(text, cfg.Time, cfg.Lines)
	if err != nil {
		return fmt.Errorf("failed to prepare %s: %w", path, err)
	}
	logger.Info("typing file", "file", path, "time", cfg.Time, "lines", cfg.Lines, "theme", cfg.Theme)

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	m := tui.NewModel(sess, text, path, st, tui.ThemeByName(cfg.Theme))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	report, err := stats.BuildReport(context.Background(), st)
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), report)
}

// resolveConfig merges the config file under the flags. Changed flags win.
func resolveConfig(cmd *cobra.Command, opts *options, configPath string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "time", &opts.time, fileCfg.Typing.Time)
	applyIntConfig(cmd, "line", &opts.lines, fileCfg.Typing.Lines)
	applyStringConfig(cmd, "theme", &opts.theme, fileCfg.Typing.Theme)
	applyStringConfig(cmd, "extension", &opts.extension, fileCfg.Typing.Extension)
	applyStringConfig(cmd, "dir", &opts.dir, fileCfg.Typing.Dir)
	applyBoolConfig(cmd, "debug", &opts.debug, fileCfg.Log.Debug)

	cfg := model.Config{
		Time:      time.Duration(opts.time) * time.Second,
		Lines:     opts.lines,
		File:      opts.file,
		Dir:       opts.dir,
		Extension: opts.extension,
		Theme:     opts.theme,
		Debug:     opts.debug,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// resolveFile returns the file to type: --file, else a random pick from
// --dir, else a random pick from the working directory.
func resolveFile(cfg model.Config, picker *source.Picker) (string, error) {
	if cfg.File != "" {
		return cfg.File, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	path, err := picker.Pick(dir, cfg.Extension)
	if errors.Is(err, source.ErrNoFiles) {
		if cfg.Extension != "" {
			return "", fmt.Errorf("no .%s files found in %s: %w", strings.TrimPrefix(cfg.Extension, "."), dir, err)
		}
		return "", fmt.Errorf("no files found in %s: %w", dir, err)
	}
	return path, err
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless path exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newFilesCmd() *cobra.Command {
	var dir, extension string
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the files a run could pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = defaultDir
			}
			files, err := source.ListFiles(dir, extension)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return source.ErrNoFiles
			}
			for _, f := range files {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to walk")
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "only list files with this extension")
	return cmd
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# srctype configuration
# Uncomment a value to enable it. CLI flags override config values.

[typing]
# time = %d               # Run duration in seconds
# lines = %d              # Lines shown at once
# theme = %q          # dark or light
# extension = "go"        # Only pick files with this extension
# dir = "."               # Directory to pick files from

[log]
# debug = false           # Write debug logs
`,
		defaultTime,
		defaultLines,
		defaultTheme,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Time < time.Second {
		return fmt.Errorf("--time must be > 0")
	}
	if cfg.Lines <= 0 {
		return fmt.Errorf("--line must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
