package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/rook-computer/iconbanner/internal/overlay"
	"github.com/rook-computer/iconbanner/internal/render"
	"github.com/rook-computer/iconbanner/internal/state"
)

type App struct {
	Render *render.Renderer
	Logger Logger

	// KeepGoing renders the remaining pairs after a failure instead of stopping.
	KeepGoing bool
	// DryRun validates and logs the plan without reading or writing images.
	DryRun bool
}

func New(renderer *render.Renderer) *App {
	return &App{Render: renderer, Logger: NoopLogger{}}
}

// Run validates cfg and renders its pairs in order. The summary is returned
// even when Run fails, so callers can report partial progress.
func (app *App) Run(ctx context.Context, cfg *overlay.Config) (*state.Summary, error) {
	summary := state.NewSummary()
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if err := overlay.Validate(cfg); err != nil {
		summary.SetPhase(state.ERROR)
		return summary, err
	}
	if app.Render == nil {
		app.Render = render.NewRenderer(render.DefaultStyle())
	}
	if app.Render.Logger == nil {
		app.Render.Logger = app.Logger
	}
	if err := app.Render.Style.Validate(); err != nil {
		summary.SetPhase(state.ERROR)
		return summary, err
	}

	pairs := cfg.Pairs()
	app.Logger.Infof("app", "%d icon(s), text=%q font=%q height=%g padding=%g",
		len(pairs), cfg.BannerText(), cfg.FontName(), cfg.BannerHeight(), cfg.BannerHeightPadding())

	if app.DryRun {
		for _, p := range pairs {
			app.Logger.Infof("plan", "%s -> %s", p.Input, p.Output)
		}
		summary.SetPhase(state.DONE)
		return summary, nil
	}

	summary.SetPhase(state.RENDERING)
	var firstErr error
	started := time.Now()
	err := app.Render.Render(ctx, cfg, func(res render.Result) error {
		summary.Record(state.Outcome{
			Index:    res.Pair.Index,
			Input:    res.Pair.Input,
			Output:   res.Pair.Output,
			Font:     res.Font,
			FontSize: res.FontSize,
			Duration: time.Since(started),
			Err:      res.Err,
		})
		started = time.Now()
		if res.Err == nil {
			return nil
		}
		app.Logger.Errorf("app", "pair %d (%s): %v", res.Pair.Index, res.Pair.Input, res.Err)
		if firstErr == nil {
			firstErr = res.Err
		}
		if app.KeepGoing {
			return nil
		}
		return res.Err
	})

	codes := summary.FailureCodes()
	for _, code := range slices.Sorted(maps.Keys(codes)) {
		app.Logger.Errorf("app", "%d failure(s) with code %s", codes[code], code)
	}

	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		summary.SetPhase(state.CANCELLED)
		return summary, err
	case err != nil:
		summary.SetPhase(state.ERROR)
		return summary, err
	case firstErr != nil:
		summary.SetPhase(state.ERROR)
		return summary, fmt.Errorf("%d of %d icon(s) failed: %w", len(summary.Failed()), len(pairs), firstErr)
	}
	summary.SetPhase(state.DONE)
	app.Logger.Infof("app", "rendered %d icon(s)", summary.Rendered())
	return summary, nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// SlogLogger forwards component-tagged messages to a slog.Logger.
type SlogLogger struct{ l *slog.Logger }

func NewSlogLogger(l *slog.Logger) SlogLogger { return SlogLogger{l: l} }

func (s SlogLogger) Infof(component string, format string, args ...interface{}) {
	s.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (s SlogLogger) Errorf(component string, format string, args ...interface{}) {
	s.l.Error(fmt.Sprintf(format, args...), "component", component)
}
