package universe

import "time"

//Universe is what the viewers and the front ends drive
//all commands return immediately, the result is visible after the next Refresh
type Universe interface {
	Status() Status
	Options() Options
	Area() Area
	Settle(vc [][]int)
	SeedRandom(count int)
	InverseCell(x int, y int)
	ToggleAutoMode()
	SetSpeed(interval time.Duration)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Reset()
	Close()
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	AutoMode      bool
	LiveCells     int
	Interval      time.Duration
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
}

//Scheduler is the timer owned by the driver
//the engine asks it to start or cancel the periodic steps, it never waits on it
type Scheduler interface {
	Schedule(interval time.Duration)
	Cancel()
}

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateManual   RunningState = 0x0
	RunningStateRun      RunningState = 0x1
	RunningStateFinished RunningState = 0x2
)

func (rs RunningState) String() string {
	switch rs {
	case RunningStateManual:
		return "waiting"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration) {}
func (nopScheduler) Cancel()                {}
