package main

import (
	"fmt"
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"lifegame/src/gui"
	"lifegame/src/universe"
	"lifegame/src/view"
)

const (
	defHeadlessMaxSteps = 1000
	defCellSize         = 10
)

type EnvOptions struct {
	interactive bool
	window      bool
	randomData  bool
	autoMode    bool
	cellSize    int
}

func main() {
	eo, uo := initOptions()

	u := universe.NewDriver(uo)
	defer u.Close()

	if eo.autoMode {
		u.ToggleAutoMode()
	}
	if eo.randomData {
		u.SeedRandom(universe.DefSeedCells)
	}
	u.Sync()

	switch {
	case eo.window:
		if err := gui.Run(u, eo.cellSize); err != nil {
			log.Fatal(err)
		}
	case eo.interactive:
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
	default:
		fmt.Println(aurora.Bold("\"The Life\" game simulation started..."))
		v := view.NewConsoleOut(os.Stdout, 10)
		u.RegisterViewer(v)
		v.Start()
		u.Run()
		<-v.Done()
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultOptions
	uo = &o
	eo = &EnvOptions{cellSize: defCellSize}
	maxSteps := -1

	flaggy.SetName("lifegame")
	flaggy.SetDescription("Conway's Game of Life on a square field with fixed edges")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Size, "x", "size", fmt.Sprintf("Side length of the square field [%d..%d]", universe.MinSize, universe.MaxSize))
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&maxSteps, "s", "maxSteps", "Stop the simulation at this generation, 0 means never (default 1000 without a front end)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the terminal front end")
	flaggy.Bool(&eo.window, "g", "gui", "Start the window front end (needs the ebiten build tag)")
	flaggy.Bool(&eo.randomData, "r", "random", "Seed 100 random cells before the start")
	flaggy.Bool(&eo.autoMode, "a", "auto", "Reseed 50 random cells every 100 generations")
	flaggy.Int(&eo.cellSize, "c", "cellSize", "Cell size in pixels for the window front end")
	flaggy.Int64(&uo.RandSeed, "", "seed", "Random generator seed, 0 means time based")

	flaggy.Parse()

	switch {
	case maxSteps >= 0:
		uo.MaxSteps = maxSteps
	case !eo.interactive && !eo.window:
		uo.MaxSteps = defHeadlessMaxSteps
	}

	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if eo.cellSize < 2 {
		flaggy.ShowHelpAndExit("cell size must be at least 2 pixels")
	}

	return
}
