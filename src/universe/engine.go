package universe

import (
	"math/rand/v2"
	"time"
)

//Engine is the Game of Life simulation on a square field with fixed (non wrapping) edges
//Engine is not safe for concurrent use, the Driver serializes all calls
type Engine struct {
	options       Options
	area          Area
	generation    int
	autoMode      bool
	running       bool
	iterationTime time.Duration
	scheduler     Scheduler
	rnd           *rand.Rand
}

//NewEngine creates the Engine with all cells dead
//s is notified on Start and Stop, nil means nobody drives the engine
func NewEngine(o *Options, s Scheduler) *Engine {
	if o == nil {
		o = &DefaultOptions
	}
	opts := o.withDefaults()
	if s == nil {
		s = nopScheduler{}
	}
	seed := opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		options:   opts,
		area:      createArea(opts.Size, opts.Size),
		scheduler: s,
		rnd:       rand.New(rand.NewPCG(uint64(seed), 0)),
	}
}

//Size returns the side length of the field
func (e *Engine) Size() int {
	return e.options.Size
}

//Options returns the effective engine configuration
func (e *Engine) Options() Options {
	return e.options
}

//Generation returns the number of steps done since the creation or the last Reset
func (e *Engine) Generation() int {
	return e.generation
}

func (e *Engine) AutoMode() bool {
	return e.autoMode
}

func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) Interval() time.Duration {
	return e.options.Interval
}

//Area returns the copy of the current field
func (e *Engine) Area() Area {
	return e.area.Clone()
}

//Status returns current engine status represented by Status struct
func (e *Engine) Status() Status {
	st := Status{
		Generation:    e.generation,
		RunningMode:   RunningStateManual,
		AutoMode:      e.autoMode,
		LiveCells:     e.area.LiveCells(),
		Interval:      e.options.Interval,
		IterationTime: e.iterationTime,
	}
	if e.running {
		st.RunningMode = RunningStateRun
	}
	return st
}

//ToggleCell inverses the cell state at point x, y
//coordinates outside the field are ignored
func (e *Engine) ToggleCell(x int, y int) {
	if !e.inside(x, y) {
		return
	}
	e.area.Entities[y][x] = !e.area.Entities[y][x]
}

//Settle makes the cells alive
//vc - array of x,y coordinates, pairs outside the field are skipped
func (e *Engine) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 || !e.inside(v[0], v[1]) {
			continue
		}
		e.area.Entities[v[1]][v[0]] = true
	}
}

//CountNeighbors counts the live cells around x, y
//the cell itself is not counted, neighbours outside the field are dead
func (e *Engine) CountNeighbors(x int, y int) int {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if e.area.Alive(x+i, y+j) {
				liveNeighbours++
			}
		}
	}
	return liveNeighbours
}

//Step calculates the next generation for the entire field
//the new state is written to a fresh area, so no cell sees an updated neighbour
//in auto mode every AutoReseedPeriod-th generation also reseeds AutoReseedCells cells
func (e *Engine) Step() {
	start := time.Now()
	next := createArea(e.area.Width, e.area.Height)
	e.area.walk(func(x int, y int, c Cell) {
		next.Entities[y][x] = Cell(nextState(bool(c), e.CountNeighbors(x, y)))
	})
	e.area = next
	e.generation++
	e.iterationTime = time.Since(start)

	if e.autoMode && e.generation%e.options.AutoReseedPeriod == 0 {
		e.SeedRandom(e.options.AutoReseedCells)
	}
}

//SeedRandom activates count random cells and steps, SeedAttempts times in a row
//count <= 0 means SeedCells
//the cells are not deduplicated, a reseed in auto mode may fire from the inner steps
func (e *Engine) SeedRandom(count int) {
	if count <= 0 {
		count = e.options.SeedCells
	}
	size := e.options.Size
	for attempt := 0; attempt < e.options.SeedAttempts; attempt++ {
		for i := 0; i < count; i++ {
			x, y := e.rnd.IntN(size), e.rnd.IntN(size)
			e.area.Entities[y][x] = true
		}
		e.Step()
	}
}

//ToggleAutoMode switches the auto mode and returns the new value
func (e *Engine) ToggleAutoMode() bool {
	e.autoMode = !e.autoMode
	return e.autoMode
}

//Start marks the engine running and asks the scheduler for the periodic steps
//returns false if it is running already
func (e *Engine) Start() bool {
	if e.running {
		return false
	}
	e.running = true
	e.scheduler.Schedule(e.options.Interval)
	return true
}

//Stop marks the engine stopped and cancels the periodic steps
//returns false if it was not running
func (e *Engine) Stop() bool {
	if !e.running {
		return false
	}
	e.running = false
	e.scheduler.Cancel()
	return true
}

//SetSpeed changes the interval between the steps, non-positive values are ignored
//a running engine is restarted so the new interval applies at once
func (e *Engine) SetSpeed(interval time.Duration) {
	if interval <= 0 {
		return
	}
	e.options.Interval = interval
	if e.running {
		e.Stop()
		e.Start()
	}
}

//Reset stops the engine, kills all cells and resets the generation counter
//the size and the auto mode are kept
func (e *Engine) Reset() {
	e.Stop()
	e.area = createArea(e.options.Size, e.options.Size)
	e.generation = 0
	e.iterationTime = 0
}

func (e *Engine) inside(x int, y int) bool {
	return x >= 0 && y >= 0 && x < e.area.Width && y < e.area.Height
}

//nextState applies the Life rule: survive on 2 or 3, born on 3
func nextState(alive bool, liveNeighbours int) bool {
	if liveNeighbours < 2 {
		return false
	} else if liveNeighbours > 3 {
		return false
	} else if liveNeighbours == 3 {
		return true
	}
	return alive
}
