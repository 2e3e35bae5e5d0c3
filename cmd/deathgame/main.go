package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/deathgame/internal/autoplay"
	"github.com/appengine-ltd/deathgame/internal/game"
	"github.com/appengine-ltd/deathgame/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		tuningPath  string
		headless    bool
		runs        int
		maxTicks    int
		dt          float64
		timeScale   float64
		debug       bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&tuningPath, "tuning", "", "YAML tuning file overlaid on the defaults")
	flag.BoolVar(&headless, "headless", false, "let the autopilot play instead of opening the console")
	flag.IntVar(&runs, "runs", 1, "number of headless runs")
	flag.IntVar(&maxTicks, "max-ticks", autoplay.DefaultConfig().MaxTicks, "tick limit per headless run")
	flag.Float64Var(&dt, "dt", autoplay.DefaultConfig().DT, "game seconds per headless tick")
	flag.Float64Var(&timeScale, "timescale", 1, "game seconds per wall-clock second in the console")
	flag.BoolVar(&debug, "debug", false, "write a debug log to debug.log")
	flag.Parse()

	if showVersion {
		fmt.Printf("Death Game %s (%s) %s\n", version, commit, date)
		return
	}

	log.SetFlags(0)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tuning := game.DefaultTuning()
	if tuningPath != "" {
		loaded, err := game.LoadTuning(tuningPath)
		if err != nil {
			log.Fatalf("tuning: %v", err)
		}
		tuning = loaded
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runHeadless(ctx, seed, tuning, runs, autoplay.Config{DT: dt, MaxTicks: maxTicks}); err != nil {
			stop()
			log.Fatal(err)
		}
		return
	}

	if debug {
		f, err := tea.LogToFile("debug.log", "deathgame")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	engine, err := game.New(game.WithSeed(seed), game.WithTuning(tuning))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("seed=%d target=%.0f", seed, tuning.TargetDistance)

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Engine:    engine,
		TimeScale: timeScale,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless plays runs sessions with consecutive seeds and logs one line
// per run plus a tally.
func runHeadless(ctx context.Context, seed int64, tuning game.Tuning, runs int, cfg autoplay.Config) error {
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	wins := 0
	deaths := map[game.DeathCause]int{}
	for i := 0; i < runs; i++ {
		runSeed := seed + int64(i)
		engine, err := game.New(game.WithSeed(runSeed), game.WithTuning(tuning))
		if err != nil {
			return err
		}
		summary, err := autoplay.Run(ctx, engine, autoplay.DefaultPolicy(), cfg)
		if err != nil {
			return fmt.Errorf("run %d (seed %d): %w", i+1, runSeed, err)
		}
		log.Printf("run=%d seed=%d outcome=%q day=%d distance=%.1f progress=%.1f%% health=%.0f events=%d ticks=%d",
			i+1, runSeed, summary.Outcome(), summary.Day, summary.Distance, summary.Progress,
			summary.Health, summary.EventsFaced, summary.Ticks)
		switch {
		case summary.Victory:
			wins++
		case summary.GameOver:
			deaths[summary.DeathCause]++
		}
	}
	log.Printf("runs=%d victories=%d deaths=%v", runs, wins, deaths)
	return nil
}
