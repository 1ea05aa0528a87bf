package presentation

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"spectralab/application"
	"spectralab/core/state"
	"spectralab/domain/spectrum"
	"spectralab/infrastructure/config"
)

// MainWindow is the main application window.
type MainWindow struct {
	window   fyne.Window
	app      fyne.App
	analyzer *application.Analyzer
	renderer *PlotRenderer
	panel    *PlotPanel
	frame    *Frame
	logger   *slog.Logger

	exportDPI int

	// UI components - control column
	openBtn      *widget.Button
	fileSelect   *widget.Select
	plotBtn      *widget.Button
	removeBtn    *widget.Button
	intensityBtn *widget.Button
	totalBtn     *widget.Button
	saveBtn      *widget.Button
	statusLabel  *widget.Label
	resultsLog   *widget.Entry
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App      fyne.App
	Analyzer *application.Analyzer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMainWindow creates the main window and wires it to the analyzer.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.Default()
	}

	w := &MainWindow{
		window:    cfg.App.NewWindow("SpectraLab"),
		app:       cfg.App,
		analyzer:  cfg.Analyzer,
		logger:    cfg.Logger,
		exportDPI: appCfg.Export.DPI,
	}

	lineColor, err := config.ParseColor(appCfg.Plot.LineColor)
	if err != nil {
		w.logger.Warn("Bad line color in config, using renderer default", "value", appCfg.Plot.LineColor)
	}
	w.renderer = &PlotRenderer{
		Title:  appCfg.Plot.Title,
		XLabel: appCfg.Plot.XLabel,
		YLabel: appCfg.Plot.YLabel,
		Width:  appCfg.Plot.Width,
		Height: appCfg.Plot.Height,
	}
	if err == nil {
		w.renderer.LineColor = lineColor
	}

	w.init(appCfg)
	w.setupCallbacks()
	w.updateControls()

	w.window.SetOnClosed(func() {
		cfg.App.Quit()
	})

	return w
}

func (w *MainWindow) init(appCfg *config.Config) {
	w.panel = NewPlotPanel(appCfg.Plot.Width, appCfg.Plot.Height)
	w.panel.SetOnPicked(w.onPicked)

	w.openBtn = widget.NewButton("Load Data...", w.handleOpenFolder)
	w.fileSelect = widget.NewSelect(nil, w.onFileSelected)
	w.fileSelect.PlaceHolder = "Select a file"

	w.plotBtn = widget.NewButton("Plot Data", w.handlePlot)
	w.removeBtn = widget.NewButton("Remove Background", w.handleRemoveBackground)
	w.intensityBtn = widget.NewButton("Calculate Intensity", w.handleIntensity)
	w.totalBtn = widget.NewButton("Total Intensity", w.handleTotalIntensity)
	w.saveBtn = widget.NewButton("Save Figure...", w.handleSave)

	w.statusLabel = widget.NewLabel("Load a measurement folder to begin")
	w.statusLabel.Wrapping = fyne.TextWrapWord

	w.resultsLog = widget.NewMultiLineEntry()
	w.resultsLog.Wrapping = fyne.TextWrapWord
	w.resultsLog.Disable()

	quitBtn := widget.NewButton("Quit", w.app.Quit)
	quitBtn.Importance = widget.DangerImportance

	controls := container.NewVBox(
		w.openBtn,
		w.fileSelect,
		widget.NewSeparator(),
		w.plotBtn,
		w.removeBtn,
		w.intensityBtn,
		w.totalBtn,
		w.saveBtn,
		widget.NewSeparator(),
		w.statusLabel,
	)
	left := container.NewBorder(controls, quitBtn, nil, nil, w.resultsLog)

	content := container.NewBorder(nil, nil, left, nil, container.NewCenter(w.panel))
	w.window.SetContent(content)
	w.window.SetMainMenu(w.buildMainMenu())
	w.window.Resize(fyne.NewSize(appCfg.Window.Width, appCfg.Window.Height))
}

func (w *MainWindow) buildMainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Load Data...", w.handleOpenFolder),
			fyne.NewMenuItem("Save Figure...", w.handleSave),
		),
		fyne.NewMenu("Analysis",
			fyne.NewMenuItem("Remove Background", w.handleRemoveBackground),
			fyne.NewMenuItem("Calculate Intensity", w.handleIntensity),
			fyne.NewMenuItem("Total Intensity", w.handleTotalIntensity),
			fyne.NewMenuItem("Cancel Selection", w.handleCancelPick),
		),
	)
}

func (w *MainWindow) setupCallbacks() {
	w.analyzer.SetCallbacks(&application.Callbacks{
		OnSpectrumChanged: func(s spectrum.Spectrum) {
			w.refreshPlot()
			w.logger.Debug("Plot refreshed", "samples", len(s))
		},
		OnStateChanged: func(oldState, newState state.AnalysisState) {
			w.updateControls()
		},
		OnSelectionChanged: func(points []spectrum.Point) {
			w.refreshPlot()
			if len(points) == 1 {
				w.statusLabel.SetText("One more point...")
			}
		},
		OnMeasurement: func(m application.Measurement) {
			w.appendResult(m)
		},
	})
}

// Handlers

func (w *MainWindow) handleOpenFolder() {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, w.window)
			return
		}
		if dir == nil {
			return
		}

		n, err := w.analyzer.OpenFolder(dir.Path())
		if err != nil {
			w.logger.Error("Failed to open measurement folder", "dir", dir.Path(), "error", err)
			dialog.ShowError(err, w.window)
			return
		}

		w.fileSelect.Options = w.analyzer.Registry().List()
		w.fileSelect.ClearSelected()
		dialog.ShowInformation("Folder Loaded",
			fmt.Sprintf("%d measurement files found.", n), w.window)
	}, w.window)
}

func (w *MainWindow) onFileSelected(name string) {
	if name == "" {
		return
	}
	if err := w.analyzer.LoadFile(name); err != nil {
		w.logger.Error("Failed to load measurement file", "file", name, "error", err)
		dialog.ShowError(err, w.window)
		return
	}
	w.updateControls()
}

func (w *MainWindow) handlePlot() {
	if !w.requireData() {
		return
	}
	w.refreshPlot()
}

func (w *MainWindow) handleRemoveBackground() {
	if !w.requireData() {
		return
	}
	if err := w.analyzer.BeginPick(application.PickBackground); err != nil {
		dialog.ShowError(err, w.window)
	}
}

func (w *MainWindow) handleIntensity() {
	if !w.requireData() {
		return
	}
	if err := w.analyzer.BeginPick(application.PickRange); err != nil {
		dialog.ShowError(err, w.window)
	}
}

func (w *MainWindow) handleTotalIntensity() {
	if !w.requireData() {
		return
	}
	if _, err := w.analyzer.TotalIntensity(); err != nil {
		dialog.ShowError(err, w.window)
	}
}

func (w *MainWindow) handleCancelPick() {
	w.analyzer.CancelPick()
}

func (w *MainWindow) handleSave() {
	if !w.requireData() {
		return
	}

	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.window)
			return
		}
		if uc == nil {
			return
		}
		defer uc.Close()

		name := uc.URI().Name()
		format := filepath.Ext(name)
		if err := w.renderer.Export(uc, w.analyzer.Spectrum(), format, w.exportDPI); err != nil {
			w.logger.Error("Failed to export figure", "file", name, "error", err)
			dialog.ShowError(err, w.window)
			return
		}

		w.logger.Info("Figure exported", "file", name, "dpi", w.exportDPI)
		dialog.ShowInformation("Figure Saved", name, w.window)
	}, w.window)

	fd.SetFileName("spectrum.png")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".tif", ".tiff"}))
	fd.Show()
}

func (w *MainWindow) onPicked(x, y float32) {
	if !w.analyzer.State().IsPicking() || w.frame == nil {
		return
	}

	pt, ok := w.frame.DataAt(x, y)
	if !ok {
		return
	}

	if err := w.analyzer.AddPoint(pt); err != nil {
		dialog.ShowError(err, w.window)
	}
}

// Helpers

// requireData guards the actions that need a loaded spectrum.
func (w *MainWindow) requireData() bool {
	if w.analyzer.State().HasData() {
		return true
	}
	dialog.ShowInformation("No Data",
		"No data loaded. Please load data first.", w.window)
	return false
}

func (w *MainWindow) refreshPlot() {
	s := w.analyzer.Spectrum()
	if len(s) == 0 {
		return
	}

	frame, err := w.renderer.Render(s, w.analyzer.Selection())
	if err != nil {
		w.logger.Error("Failed to render plot", "error", err)
		dialog.ShowError(err, w.window)
		return
	}

	w.frame = frame
	w.panel.SetFrame(frame.Image())
}

func (w *MainWindow) appendResult(m application.Measurement) {
	line := fmt.Sprintf("Intensity(%.2f to %.2f): %.4f\n", m.XLow, m.XHigh, m.Area)
	w.resultsLog.SetText(w.resultsLog.Text + line)
}

func (w *MainWindow) updateControls() {
	st := w.analyzer.State()

	setEnabled := func(b *widget.Button, enabled bool) {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}

	canAnalyze := st.CanAnalyze()
	setEnabled(w.plotBtn, canAnalyze)
	setEnabled(w.removeBtn, canAnalyze)
	setEnabled(w.intensityBtn, canAnalyze)
	setEnabled(w.totalBtn, canAnalyze)
	setEnabled(w.saveBtn, canAnalyze)

	switch st {
	case state.StateEmpty:
		w.statusLabel.SetText("Load a measurement folder to begin")
	case state.StateLoaded:
		w.statusLabel.SetText(fmt.Sprintf("%s: %d samples",
			w.analyzer.FileName(), len(w.analyzer.Spectrum())))
	case state.StatePickingBackground:
		w.statusLabel.SetText("Click two background points on the plot")
	case state.StatePickingRange:
		w.statusLabel.SetText("Click two integration bounds on the plot")
	}
}

// Show displays the main window.
func (w *MainWindow) Show() {
	w.window.Show()
}
