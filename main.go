package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"vpet/internal/config"
	"vpet/internal/mystery"
	"vpet/internal/observability"
	"vpet/internal/pet"
	"vpet/internal/ui"
)

func main() {
	configPath := flag.String("config", "vpet.yaml", "path to the YAML config file")
	name := flag.String("name", "", "name for the pet (overrides config)")
	flag.Parse()

	if err := run(*configPath, *name); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, name string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if name != "" {
		cfg.Pet.Name = name
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("session", uuid.NewString()))

	src := mystery.NewSource()
	if cfg.Pet.Seed != 0 {
		src = mystery.NewSeededSource(cfg.Pet.Seed)
	}

	p := pet.New(cfg.Pet.Name, pet.WithLogger(logger.Named("pet")))
	boxes := mystery.NewSystem(src, mystery.WithLogger(logger.Named("mystery")))
	model := ui.NewModel(p, boxes,
		ui.WithStepInterval(cfg.Pet.StepInterval),
		ui.WithLogger(logger.Named("ui")),
	)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}

	fmt.Printf("%s: %s\n", p.Name(), ui.HealthLine(p.Health()))
	return nil
}
