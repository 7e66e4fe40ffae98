package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dd0wney/cluso-stations/pkg/audit"
	"github.com/dd0wney/cluso-stations/pkg/config"
	"github.com/dd0wney/cluso-stations/pkg/logging"
	"github.com/dd0wney/cluso-stations/pkg/metrics"
	"github.com/dd0wney/cluso-stations/pkg/registry"
	"github.com/dd0wney/cluso-stations/pkg/service"
	"github.com/dd0wney/cluso-stations/pkg/shell"
	"github.com/dd0wney/cluso-stations/pkg/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	useTUI := flag.Bool("tui", false, "Run the full-screen terminal UI")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *logLevel != "" {
		cfg.Logging.Level = strings.ToLower(*logLevel)
	}
	if *noColor {
		cfg.Shell.Color = false
	}
	if *useTUI {
		cfg.Shell.Mode = config.ModeTUI
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, err := logging.New(cfg.Logging.Output, cfg.LogLevel())
	if err != nil {
		return err
	}

	reg, err := registry.New(cfg.RegistryConfig())
	if err != nil {
		return err
	}

	svc := service.New(reg, service.Options{
		Logger:  logger,
		Metrics: metrics.NewRegistry(),
		Audit:   audit.NewLog(cfg.Audit.BufferSize),
	})

	logger.Info("station registry started",
		logging.Session(svc.Session()),
		logging.String("mode", cfg.Shell.Mode),
		logging.Int("station_capacity", reg.StationCapacity()),
		logging.Int("connection_capacity", reg.ConnectionCapacity()),
	)

	if cfg.Shell.Mode == config.ModeTUI {
		if !cfg.Shell.Color {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		p := tea.NewProgram(tui.New(svc), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run terminal UI: %w", err)
		}
		return nil
	}

	sh := shell.New(svc, os.Stdin, os.Stdout, shell.Options{
		Color:          cfg.Shell.Color,
		SeparatorWidth: cfg.Shell.SeparatorWidth,
	})
	if err := sh.Run(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	st := svc.Stats()
	logger.Info("station registry stopped",
		logging.Int("stations", st.Stations),
		logging.Int("connections", st.Connections),
	)
	return nil
}
