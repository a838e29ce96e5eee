// Command facedemo renders a watch face to PNG or dumps its draw commands.
//
// Usage:
//
//	facedemo -face obsidian -time 06:00 -battery 15 -bluetooth=false -output face.png
//	facedemo -face simplex -backend recording
//	facedemo -face obsidian -watch -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/faces/obsidian"
	"github.com/gogpu/watchface/faces/simplex"
	"github.com/gogpu/watchface/placement"
	"github.com/gogpu/watchface/recording"
	"github.com/gogpu/watchface/surface"
)

type config struct {
	face      string
	clock     string
	date      string
	battery   int
	bluetooth bool
	width     int
	height    int
	backend   string
	output    string
	watch     bool
	verbose   bool

	numbers       bool
	batteryText   bool
	relevantTicks bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.face, "face", obsidian.Name, "face to render: obsidian or simplex")
	flag.StringVar(&cfg.clock, "time", "", "time to show as 15:04 (default now)")
	flag.StringVar(&cfg.date, "date", "", "date to show as 2006-01-02 (default today)")
	flag.IntVar(&cfg.battery, "battery", 100, "battery charge, 0..100")
	flag.BoolVar(&cfg.bluetooth, "bluetooth", true, "Bluetooth connected")
	flag.IntVar(&cfg.width, "width", 144, "screen width")
	flag.IntVar(&cfg.height, "height", 168, "screen height")
	flag.StringVar(&cfg.backend, "backend", "image", "surface backend: image or recording")
	flag.StringVar(&cfg.output, "output", "face.png", "output PNG file (image backend)")
	flag.BoolVar(&cfg.watch, "watch", false, "keep running and redraw on every tick until interrupted")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.BoolVar(&cfg.numbers, "numbers", false, "obsidian: show hour numerals")
	flag.BoolVar(&cfg.batteryText, "battery-text", false, "obsidian: show battery as text")
	flag.BoolVar(&cfg.relevantTicks, "relevant-ticks", false, "only draw the current five minute ticks")
	flag.Parse()

	if cfg.verbose {
		watchface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("facedemo: %v", err)
	}
}

func run(cfg config) error {
	if cfg.battery < 0 || cfg.battery > 100 {
		return fmt.Errorf("battery %d out of range 0..100", cfg.battery)
	}
	now, err := displayTime(cfg.date, cfg.clock, time.Now())
	if err != nil {
		return err
	}
	face, err := newFace(cfg)
	if err != nil {
		return err
	}

	s, err := surface.NewSurfaceByName(cfg.backend, cfg.width, cfg.height)
	if err != nil {
		return err
	}
	defer s.Close()

	clock := func() time.Time { return now }
	if cfg.watch {
		clock = time.Now
	}

	app, err := watchface.NewApp(face, s,
		watchface.WithClock(clock),
		watchface.WithBattery(watchface.BatteryState{ChargePercent: uint8(cfg.battery)}),
		watchface.WithBluetooth(cfg.bluetooth),
		watchface.WithActuators(watchface.LogActuators{}),
		watchface.WithPresenter(presenter(cfg.output, os.Stdout)),
	)
	if err != nil {
		return err
	}

	if !cfg.watch {
		if err := app.Start(); err != nil {
			return err
		}
		app.Stop()
		if _, ok := s.(*surface.ImageSurface); ok {
			log.Printf("%s saved to %s (%dx%d)", face.Name(), cfg.output, cfg.width, cfg.height)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, watchface.Ticks(ctx, face.TickUnit(), time.Now))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// displayTime combines the -date and -time flags with now.
func displayTime(date, clock string, now time.Time) (time.Time, error) {
	t := now
	if date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("bad -date: %w", err)
		}
		t = time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	}
	if clock != "" {
		c, err := time.Parse("15:04", clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad -time: %w", err)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), c.Hour(), c.Minute(), 0, 0, now.Location())
	}
	return t, nil
}

func newFace(cfg config) (watchface.Face, error) {
	switch cfg.face {
	case obsidian.Name:
		opts := obsidian.DefaultOptions()
		opts.ShowNumbers = cfg.numbers
		opts.BatteryAsText = cfg.batteryText
		opts.OnlyRelevantMinuteTicks = cfg.relevantTicks
		opts.Layout = placement.LayoutFor(cfg.width, cfg.height)
		return obsidian.New(opts), nil
	case simplex.Name:
		return simplex.New(simplex.Options{OnlyRelevantMinuteTicks: cfg.relevantTicks}), nil
	default:
		return nil, fmt.Errorf("unknown face %q", cfg.face)
	}
}

// presenter writes raster frames to path and recorded frames to w.
func presenter(path string, w io.Writer) watchface.Presenter {
	return func(s surface.Surface) error {
		switch s := s.(type) {
		case *surface.ImageSurface:
			return s.SavePNG(path)
		case *recording.Recorder:
			if err := s.Dump(w); err != nil {
				return err
			}
			s.Reset()
			return nil
		default:
			return nil
		}
	}
}
