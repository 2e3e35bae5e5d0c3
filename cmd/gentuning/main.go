package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/appengine-ltd/deathgame/internal/game"
)

func main() {
	var outPath string
	var basePath string

	flag.StringVar(&outPath, "out", "", "output path for tuning YAML")
	flag.StringVar(&basePath, "from", "", "existing tuning file to normalise (defaults are used when empty)")
	flag.Parse()

	if strings.TrimSpace(outPath) == "" {
		die("--out is required")
	}

	tuning := game.DefaultTuning()
	if strings.TrimSpace(basePath) != "" {
		loaded, err := game.LoadTuning(basePath)
		if err != nil {
			die(err.Error())
		}
		tuning = loaded
	}

	data, err := game.MarshalTuning(tuning)
	if err != nil {
		die(fmt.Sprintf("marshal tuning: %v", err))
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		die(fmt.Sprintf("write tuning: %v", err))
	}
	fmt.Printf("wrote %s\n", outPath)
	fmt.Printf("target=%.0f day=%.0fs odds(encounter/mishap/daily)=%d/%d/%d\n",
		tuning.TargetDistance,
		tuning.DayLengthSeconds,
		tuning.EncounterOdds,
		tuning.MishapOdds,
		tuning.DailyEventOdds,
	)
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
