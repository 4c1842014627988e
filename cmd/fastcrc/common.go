package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/fastcrc"
	"github.com/hupe1980/fastcrc/peripheral"
)

type globalFlags struct {
	backend    string
	devicePath string
	base       uint64
	noAccel    bool
	logLevel   string
	logFormat  string
}

func (g *globalFlags) logger() (*fastcrc.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}
	switch g.logFormat {
	case "text":
		return fastcrc.NewTextLogger(level), nil
	case "json":
		return fastcrc.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", g.logFormat)
	}
}

// session holds what one command invocation needs to build engines.
type session struct {
	lg      *fastcrc.Logger
	dev     *peripheral.Device
	backend fastcrc.Backend
	opts    []fastcrc.Option
}

func (g *globalFlags) open() (*session, error) {
	lg, err := g.logger()
	if err != nil {
		return nil, err
	}

	s := &session{lg: lg, backend: fastcrc.BackendSoftware}
	switch g.backend {
	case "software", "sw":
	case "sim":
		s.dev = peripheral.NewDevice(peripheral.NewSimulator(), lg.Logger)
		s.backend = fastcrc.BackendHardware
	case "hardware", "hw":
		cfg := peripheral.DefaultConfig()
		cfg.DevicePath = g.devicePath
		if g.base != 0 {
			cfg.Base = g.base
		}
		cfg.Logger = lg.Logger
		if s.dev, err = fastcrc.OpenDevice(cfg); err != nil {
			return nil, err
		}
		s.backend = fastcrc.BackendHardware
	default:
		return nil, fmt.Errorf("invalid --backend %q", g.backend)
	}

	s.opts = []fastcrc.Option{
		fastcrc.WithLogger(lg),
		fastcrc.WithBackend(s.backend),
		fastcrc.WithAcceleration(!g.noAccel),
	}
	if s.dev != nil {
		s.opts = append(s.opts, fastcrc.WithDevice(s.dev))
	}
	return s, nil
}

func (s *session) Close() error {
	if s.dev == nil {
		return nil
	}
	return s.dev.Close()
}

func lookupAll(names []string) ([]fastcrc.Algorithm, error) {
	if len(names) == 0 {
		return fastcrc.Algorithms(), nil
	}
	algs := make([]fastcrc.Algorithm, 0, len(names))
	for _, n := range names {
		a, err := fastcrc.Lookup(n)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}

func hexWidth(a fastcrc.Algorithm) int {
	return (int(a.Width) + 3) / 4
}

var stdin = os.Stdin
