package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/circularchess/internal/board"
	"github.com/hailam/circularchess/internal/protocol"
)

var (
	modeFlag   = flag.String("mode", "standard", "initial ruleset: standard, modern or citadel")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	mode, err := board.ParseMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if err := protocol.New(mode, os.Stdin, os.Stdout).Run(); err != nil {
		log.Printf("input error: %v", err)
	}
}
