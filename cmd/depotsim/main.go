// depotsim runs a headless movement simulation on a depot world.
//
// Profiling:
// go build ./cmd/depotsim
// ./depotsim -entities 100000 -ticks 2000 -profile cpu
// go tool pprof -http=":8000" ./depotsim cpu.pprof
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	config   string
	manifest string
	entities int
	ticks    int
	dt       float64
	bounds   float64
	spawn    int
	profile  string
	seed     int64
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "TOML settings file")
	flag.StringVar(&opts.manifest, "manifest", "", "YAML component manifest (must declare Position{x,y} and Velocity{dx,dy})")
	flag.IntVar(&opts.entities, "entities", 10000, "movers to create")
	flag.IntVar(&opts.ticks, "ticks", 600, "ticks to run")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "seconds per tick")
	flag.Float64Var(&opts.bounds, "bounds", 500, "half-width of the arena; movers leaving it stop")
	flag.IntVar(&opts.spawn, "spawn-every", 60, "queue one new mover every N ticks (0 disables)")
	flag.StringVar(&opts.profile, "profile", "", "cpu or mem")
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	settings := depot.DefaultSettings()
	if opts.config != "" {
		s, err := depot.LoadSettings(opts.config)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		settings = s
	}

	log, err := newLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	depot.Config.SetLogger(log)

	switch opts.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}

	world, err := depot.Factory.NewWorld(settings)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	sim, err := newSimulation(world, opts)
	if err != nil {
		return err
	}
	log.Info("world ready",
		zap.Int("entities", world.Len()),
		zap.Int("signature_width", settings.SignatureWidth),
	)

	start := time.Now()
	for i := 0; i < opts.ticks; i++ {
		if opts.spawn > 0 && i%opts.spawn == 0 {
			sim.queueMover()
		}
		if err := world.Tick(opts.dt); err != nil {
			log.Warn("tick reported command errors", zap.Int("tick", i), zap.Error(err))
		}
	}
	elapsed := time.Since(start)

	stats := sim.movement.Stats()
	log.Info("run complete",
		zap.Int("ticks", opts.ticks),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_tick", elapsed/time.Duration(max(opts.ticks, 1))),
		zap.Int("entities", world.Len()),
		zap.Int("moving", sim.movement.Len()),
		zap.Int("escaped", sim.escaped),
		zap.Uint64("rebuilds", stats.Rebuilds),
		zap.Uint64("patches", stats.Patches),
		zap.Uint64("evictions", stats.Evictions),
	)
	return nil
}

func newLogger(cfg depot.LoggingSettings) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
