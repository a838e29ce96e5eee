package watchface

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/watchface/surface"
)

// Presenter receives the surface after every redraw, for example to write
// the frame to a file or push it to a display.
type Presenter func(s surface.Surface) error

// Option configures an App during creation.
//
// Example:
//
//	app, err := watchface.NewApp(obsidian.New(obsidian.DefaultOptions()), s,
//	    watchface.WithBattery(watchface.BatteryState{ChargePercent: 80}),
//	    watchface.WithBluetooth(true),
//	)
type Option func(*appOptions)

type appOptions struct {
	clock     Clock
	actuators Actuators
	battery   BatteryState
	connected bool
	presenter Presenter
}

func defaultAppOptions() appOptions {
	return appOptions{
		clock:     time.Now,
		actuators: NopActuators{},
		battery:   BatteryState{ChargePercent: 100},
		connected: true,
	}
}

// WithClock sets the time source used on Start.
func WithClock(c Clock) Option {
	return func(o *appOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithActuators sets the vibration and backlight outputs.
func WithActuators(a Actuators) Option {
	return func(o *appOptions) {
		if a != nil {
			o.actuators = a
		}
	}
}

// WithBattery sets the initial battery state. The default is a full battery.
func WithBattery(b BatteryState) Option {
	return func(o *appOptions) {
		o.battery = b
	}
}

// WithBluetooth sets the initial connection state. The default is connected.
func WithBluetooth(connected bool) Option {
	return func(o *appOptions) {
		o.connected = connected
	}
}

// WithPresenter sets a callback run after every redraw.
func WithPresenter(p Presenter) Option {
	return func(o *appOptions) {
		o.presenter = p
	}
}

// State is a snapshot of what the App currently displays.
type State struct {
	Time      time.Time
	Battery   BatteryState
	Connected bool
	Redraws   int
	Started   bool
}

// App hosts one face on one surface. It owns the device state and runs every
// event to completion before the next one: the face handler runs first, then
// a redraw if any layer became dirty.
//
// App is not safe for concurrent use; feed it from a single goroutine or
// through Run.
type App struct {
	face    Face
	surface surface.Surface
	window  *Window
	opts    appOptions

	now       time.Time
	battery   BatteryState
	connected bool
	redraws   int
	started   bool
}

// NewApp creates an App for face drawing onto s.
func NewApp(face Face, s surface.Surface, opts ...Option) (*App, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	if s == nil {
		return nil, ErrNilSurface
	}
	o := defaultAppOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &App{
		face:      face,
		surface:   s,
		opts:      o,
		battery:   o.battery,
		connected: o.connected,
	}, nil
}

// Start loads the face and draws the first frame.
func (a *App) Start() error {
	if a.started {
		return ErrAlreadyStarted
	}
	a.window = NewWindow(a.opts.actuators)
	a.now = a.opts.clock()
	if err := a.face.Load(a.window); err != nil {
		return fmt.Errorf("watchface: load %s: %w", a.face.Name(), err)
	}
	a.started = true
	Logger().Info("face loaded", "face", a.face.Name(), "layers", len(a.window.Layers()))
	return a.Redraw()
}

// Stop unloads the face. Stopping a stopped App is a no-op.
func (a *App) Stop() {
	if !a.started {
		return
	}
	a.face.Unload(a.window)
	a.started = false
	Logger().Info("face unloaded", "face", a.face.Name())
}

// Dispatch delivers one event to the face and redraws if needed.
func (a *App) Dispatch(ev Event) error {
	if !a.started {
		return ErrNotStarted
	}
	switch ev.Kind {
	case EventTick:
		a.now = ev.Time
		a.face.OnTick(a.window, ev.Time)
	case EventBattery:
		a.battery = ev.Battery
		a.face.OnBattery(a.window, ev.Battery)
	case EventBluetooth:
		a.connected = ev.Connected
		a.face.OnBluetooth(a.window, ev.Connected)
	default:
		return &UnknownEventError{Kind: ev.Kind}
	}
	Logger().Debug("event", "kind", ev.Kind.String(), "face", a.face.Name())

	if !a.window.Dirty() {
		return nil
	}
	return a.Redraw()
}

// Run starts the App if needed and dispatches events until the channel is
// closed or ctx is done. The face is unloaded on return.
func (a *App) Run(ctx context.Context, events <-chan Event) error {
	if !a.started {
		if err := a.Start(); err != nil {
			return err
		}
	}
	defer a.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.Dispatch(ev); err != nil {
				return err
			}
		}
	}
}

// Frame returns the render context for the current state.
func (a *App) Frame() Frame {
	return NewFrame(a.surface.Width(), a.surface.Height(), a.now, a.battery, a.connected)
}

// Redraw renders all layers and hands the surface to the presenter.
func (a *App) Redraw() error {
	if !a.started {
		return ErrNotStarted
	}
	if err := a.window.Render(a.surface, a.Frame()); err != nil {
		return fmt.Errorf("watchface: render: %w", err)
	}
	a.redraws++
	Logger().Debug("redraw", "face", a.face.Name(), "time", a.now.Format("15:04"), "count", a.redraws)

	if a.opts.presenter != nil {
		if err := a.opts.presenter(a.surface); err != nil {
			return fmt.Errorf("watchface: present: %w", err)
		}
	}
	return nil
}

// State returns a snapshot of the displayed state.
func (a *App) State() State {
	return State{
		Time:      a.now,
		Battery:   a.battery,
		Connected: a.connected,
		Redraws:   a.redraws,
		Started:   a.started,
	}
}
