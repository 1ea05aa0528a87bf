// Package main is the entry point for SpectraLab.
package main

import (
	"os"

	"spectralab/application"
	"spectralab/domain/spectrum"
	"spectralab/infrastructure/config"
	"spectralab/infrastructure/logging"
	"spectralab/presentation"

	"fyne.io/fyne/v2/app"
)

func main() {
	// Initialize logging (dev: console only, prod: rotating file)
	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting SpectraLab")

	// Load configuration (missing file falls back to embedded defaults)
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Initialize the analyzer
	analyzer := application.NewAnalyzer(&application.AnalyzerConfig{
		Registry: spectrum.NewRegistry(),
		Logger:   logger,
	})

	// Initialize Fyne app
	fyneApp := app.New()

	// Initialize main window
	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:      fyneApp,
		Analyzer: analyzer,
		Config:   cfg,
		Logger:   logger,
	})

	// A measurement file given on the command line is loaded immediately.
	if len(os.Args) > 1 {
		if err := analyzer.LoadPath(os.Args[1]); err != nil {
			logger.Error("Failed to load file from command line", "file", os.Args[1], "error", err)
		}
	}

	// Show and run
	mainWindow.Show()
	fyneApp.Run()

	logger.Info("Application shutdown complete")
}
