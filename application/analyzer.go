// Package application provides the orchestration layer between the UI and
// the spectrum domain. Every operation is synchronous and runs on the UI
// thread; the Analyzer reports its effects back through registered callbacks.
package application

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"spectralab/core/state"
	"spectralab/domain/spectrum"
)

// PickKind identifies what a completed two-point selection is used for.
type PickKind int

const (
	// PickBackground selects the two points defining the linear background.
	PickBackground PickKind = iota
	// PickRange selects the integration bounds.
	PickRange
)

// String returns the string representation of the pick kind.
func (k PickKind) String() string {
	switch k {
	case PickBackground:
		return "Background"
	case PickRange:
		return "Range"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Measurement records one intensity calculation for the results log.
type Measurement struct {
	XLow  float64
	XHigh float64
	Area  float64
	When  time.Time
}

// Callbacks contains the UI notifications emitted by the Analyzer.
// All callbacks are invoked synchronously from the calling (UI) goroutine.
type Callbacks struct {
	// OnSpectrumChanged fires after a load or a background removal.
	OnSpectrumChanged func(s spectrum.Spectrum)
	// OnStateChanged fires on every analysis-state transition.
	OnStateChanged func(oldState, newState state.AnalysisState)
	// OnSelectionChanged fires whenever the pending pick points change,
	// including when they are cleared.
	OnSelectionChanged func(points []spectrum.Point)
	// OnMeasurement fires when an intensity result is appended to the history.
	OnMeasurement func(m Measurement)
}

// Analyzer owns the current spectrum, the pending selection, and the
// measurement history. It is the application shell's single source of truth.
type Analyzer struct {
	registry *spectrum.Registry
	logger   *slog.Logger

	current  spectrum.Spectrum
	fileName string
	picks    []spectrum.Point
	pickKind PickKind
	state    state.AnalysisState
	history  []Measurement

	callbacks *Callbacks
}

// AnalyzerConfig holds configuration for the Analyzer.
type AnalyzerConfig struct {
	Registry *spectrum.Registry
	Logger   *slog.Logger
}

// NewAnalyzer creates a new analyzer in the Empty state.
func NewAnalyzer(cfg *AnalyzerConfig) *Analyzer {
	if cfg == nil {
		cfg = &AnalyzerConfig{}
	}
	if cfg.Registry == nil {
		cfg.Registry = spectrum.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Analyzer{
		registry:  cfg.Registry,
		logger:    cfg.Logger,
		state:     state.StateEmpty,
		callbacks: &Callbacks{},
	}
}

// SetCallbacks registers the UI notification callbacks.
func (a *Analyzer) SetCallbacks(cb *Callbacks) {
	if cb == nil {
		cb = &Callbacks{}
	}
	a.callbacks = cb
}

// Registry returns the measurement file registry.
func (a *Analyzer) Registry() *spectrum.Registry {
	return a.registry
}

// State returns the current analysis state.
func (a *Analyzer) State() state.AnalysisState {
	return a.state
}

// Spectrum returns the current spectrum. The caller must not mutate it.
func (a *Analyzer) Spectrum() spectrum.Spectrum {
	return a.current
}

// FileName returns the display name of the loaded measurement file.
func (a *Analyzer) FileName() string {
	return a.fileName
}

// Selection returns the pending pick points.
func (a *Analyzer) Selection() []spectrum.Point {
	return a.picks
}

// PendingPick returns what the pending selection is for. Only meaningful
// while State().IsPicking().
func (a *Analyzer) PendingPick() PickKind {
	return a.pickKind
}

// History returns the measurement history, oldest first.
func (a *Analyzer) History() []Measurement {
	return a.history
}

// OpenFolder scans dir for measurement files and replaces the registry
// contents. The loaded spectrum, if any, is left untouched.
func (a *Analyzer) OpenFolder(dir string) (int, error) {
	n, err := a.registry.LoadDir(dir)
	if err != nil {
		return 0, err
	}
	a.logger.Info("Measurement folder opened", "dir", dir, "files", n)
	return n, nil
}

// LoadFile loads the registered measurement file with the given display name
// and makes it the current spectrum.
func (a *Analyzer) LoadFile(name string) error {
	path := a.registry.Get(name)
	if path == "" {
		return fmt.Errorf("unknown measurement file %q", name)
	}
	return a.LoadPath(path)
}

// LoadPath loads a measurement file directly from path, replacing the
// current spectrum wholesale. Any pending selection is discarded.
func (a *Analyzer) LoadPath(path string) error {
	a.CancelPick()

	s, err := spectrum.Load(path)
	if err != nil {
		return err
	}
	if len(s) == 0 {
		return fmt.Errorf("%s contains no samples: %w", path, spectrum.ErrInsufficientData)
	}

	a.current = s
	a.fileName = filepath.Base(path)
	a.clearPicks()
	a.transition(state.StateLoaded)

	a.logger.Info("Spectrum loaded", "file", a.fileName, "samples", len(s))
	if a.callbacks.OnSpectrumChanged != nil {
		a.callbacks.OnSpectrumChanged(a.current)
	}
	return nil
}

// BeginPick starts a two-point selection of the given kind.
func (a *Analyzer) BeginPick(kind PickKind) error {
	var target state.AnalysisState
	switch kind {
	case PickBackground:
		target = state.StatePickingBackground
	case PickRange:
		target = state.StatePickingRange
	default:
		return fmt.Errorf("unknown pick kind %v", kind)
	}

	if !a.state.CanTransitionTo(target) {
		return state.NewTransitionError(a.state, target, "load a data file first")
	}

	a.pickKind = kind
	a.clearPicks()
	a.transition(target)
	return nil
}

// CancelPick abandons a selection in progress. It is a no-op outside of the
// picking states.
func (a *Analyzer) CancelPick() {
	if !a.state.IsPicking() {
		return
	}
	a.clearPicks()
	a.transition(state.StateLoaded)
}

// AddPoint records one picked plot point. When the second point arrives, the
// pending operation runs and the selection is cleared. The selection is
// cleared on failure too, so a bad pick never leaves the shell stuck.
func (a *Analyzer) AddPoint(p spectrum.Point) error {
	if !a.state.IsPicking() {
		return state.NewTransitionError(a.state, a.state, "no selection in progress")
	}

	a.picks = append(a.picks, p)
	if a.callbacks.OnSelectionChanged != nil {
		a.callbacks.OnSelectionChanged(a.picks)
	}
	if len(a.picks) < 2 {
		return nil
	}

	p1, p2 := a.picks[0], a.picks[1]
	kind := a.pickKind
	a.clearPicks()
	a.transition(state.StateLoaded)

	switch kind {
	case PickBackground:
		return a.removeBackground(p1, p2)
	default:
		return a.integrateRange(p1, p2)
	}
}

// TotalIntensity integrates the whole current spectrum and appends the
// result to the history.
func (a *Analyzer) TotalIntensity() (float64, error) {
	if !a.state.HasData() {
		return 0, state.NewTransitionError(a.state, a.state, "load a data file first")
	}

	area, err := spectrum.Intensity(a.current)
	if err != nil {
		return 0, err
	}

	lo, hi := a.current.XRange()
	a.record(Measurement{XLow: lo, XHigh: hi, Area: area, When: time.Now()})
	return area, nil
}

func (a *Analyzer) removeBackground(p1, p2 spectrum.Point) error {
	line, err := spectrum.FitLine(p1, p2)
	if err != nil {
		return err
	}

	a.current = a.current.RemoveBackground(line)
	a.logger.Info("Background removed", "slope", line.Slope, "intercept", line.Intercept)

	if a.callbacks.OnSpectrumChanged != nil {
		a.callbacks.OnSpectrumChanged(a.current)
	}
	return nil
}

func (a *Analyzer) integrateRange(p1, p2 spectrum.Point) error {
	area, lo, hi, err := spectrum.IntensityBetween(a.current, p1.X, p2.X)
	if err != nil {
		return err
	}

	a.record(Measurement{XLow: lo, XHigh: hi, Area: area, When: time.Now()})
	return nil
}

func (a *Analyzer) record(m Measurement) {
	a.history = append(a.history, m)
	a.logger.Info("Intensity calculated", "x_low", m.XLow, "x_high", m.XHigh, "area", m.Area)
	if a.callbacks.OnMeasurement != nil {
		a.callbacks.OnMeasurement(m)
	}
}

func (a *Analyzer) clearPicks() {
	if len(a.picks) == 0 {
		return
	}
	a.picks = nil
	if a.callbacks.OnSelectionChanged != nil {
		a.callbacks.OnSelectionChanged(nil)
	}
}

func (a *Analyzer) transition(target state.AnalysisState) {
	if a.state == target {
		return
	}
	old := a.state
	a.state = target
	a.logger.Debug("Analysis state changed", "from", old, "to", target)
	if a.callbacks.OnStateChanged != nil {
		a.callbacks.OnStateChanged(old, target)
	}
}
