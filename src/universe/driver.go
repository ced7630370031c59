package universe

import (
	"sync"
	"time"
)

//Driver runs the Engine on a timer and serializes all the commands
//implements Universe and Scheduler interfaces
//the engine is touched by the mainLoop goroutine only
type Driver struct {
	engine    *Engine
	maxSteps  int
	finished  bool
	views     []Viewer
	controlCh chan func()
	closeCh   chan struct{}
	closeOnce sync.Once
	ticker    struct {
		epoch int
		done  chan struct{}
	}
	published struct {
		sync.Mutex
		status  Status
		area    Area
		options Options
	}
}

var _ Universe = (*Driver)(nil)

//NewDriver creates the Driver with its own Engine and starts the main loop
func NewDriver(o *Options) *Driver {
	if o == nil {
		o = &DefaultOptions
	}
	d := &Driver{
		maxSteps:  o.MaxSteps,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan struct{}),
	}
	d.engine = NewEngine(o, d)
	d.publish()
	go d.mainLoop()
	return d
}

//Status returns the status published after the last command
func (d *Driver) Status() Status {
	d.published.Lock()
	defer d.published.Unlock()
	return d.published.status
}

//Options returns the engine configuration published after the last command
func (d *Driver) Options() Options {
	d.published.Lock()
	defer d.published.Unlock()
	return d.published.options
}

//Area returns the field published after the last command
//the returned area must not be modified
func (d *Driver) Area() Area {
	d.published.Lock()
	defer d.published.Unlock()
	return d.published.area
}

//RegisterViewer registers the viewer - the driver will call the viewer when the state is changed
func (d *Driver) RegisterViewer(v Viewer) {
	v.Register(d)
	d.send(func() {
		d.views = append(d.views, v)
		v.Refresh()
	})
}

//Run starts the simulation, returns immediately
func (d *Driver) Run() {
	d.send(func() {
		d.finished = false
		d.engine.Start()
		d.publish()
	})
}

//Stop stops the simulation, returns immediately
func (d *Driver) Stop() {
	d.send(func() {
		d.engine.Stop()
		d.publish()
	})
}

//Step does one simulation step, returns immediately
func (d *Driver) Step() {
	d.send(func() {
		d.engine.Step()
		d.publish()
	})
}

//Reset stops the simulation and kills all cells, returns immediately
func (d *Driver) Reset() {
	d.send(func() {
		d.finished = false
		d.engine.Reset()
		d.publish()
	})
}

//InverseCell inverses the cell state at point x, y, returns immediately
func (d *Driver) InverseCell(x int, y int) {
	d.send(func() {
		d.engine.ToggleCell(x, y)
		d.publish()
	})
}

//Settle makes the cells at vc alive, returns immediately
func (d *Driver) Settle(vc [][]int) {
	d.send(func() {
		d.engine.Settle(vc)
		d.publish()
	})
}

//SeedRandom seeds the random cells, returns immediately
func (d *Driver) SeedRandom(count int) {
	d.send(func() {
		d.engine.SeedRandom(count)
		d.publish()
	})
}

//ToggleAutoMode switches the auto reseeding, returns immediately
func (d *Driver) ToggleAutoMode() {
	d.send(func() {
		d.engine.ToggleAutoMode()
		d.publish()
	})
}

//SetSpeed changes the interval between the steps, returns immediately
func (d *Driver) SetSpeed(interval time.Duration) {
	d.send(func() {
		d.engine.SetSpeed(interval)
		d.publish()
	})
}

//Sync waits until all the commands sent before are executed
func (d *Driver) Sync() {
	done := make(chan struct{})
	d.send(func() { close(done) })
	select {
	case <-done:
	case <-d.closeCh:
	}
}

//Close stops the main loop and the timer, returns immediately
func (d *Driver) Close() {
	d.closeOnce.Do(func() { close(d.closeCh) })
}

//Schedule starts the timer goroutine, called by the engine from the main loop
func (d *Driver) Schedule(interval time.Duration) {
	d.Cancel()
	d.ticker.epoch++
	d.ticker.done = make(chan struct{})
	go d.tickLoop(interval, d.ticker.epoch, d.ticker.done)
}

//Cancel stops the timer goroutine, called by the engine from the main loop
func (d *Driver) Cancel() {
	if d.ticker.done != nil {
		close(d.ticker.done)
		d.ticker.done = nil
	}
}

//send queues the command unless the driver is closed
func (d *Driver) send(cmd func()) {
	select {
	case d.controlCh <- cmd:
	case <-d.closeCh:
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (d *Driver) mainLoop() {
	for {
		select {
		case cmd := <-d.controlCh:
			cmd()
		case <-d.closeCh:
			d.Cancel()
			return
		}
	}
}

//tickLoop posts the tick command every interval until done or the driver is closed
func (d *Driver) tickLoop(interval time.Duration, epoch int, done chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-d.closeCh:
			return
		case <-t.C:
			select {
			case d.controlCh <- func() { d.tick(epoch) }:
			case <-done:
				return
			case <-d.closeCh:
				return
			}
		}
	}
}

//tick does the timer step
//ticks of the cancelled timers are dropped, so a restart never doubles a step
func (d *Driver) tick(epoch int) {
	if epoch != d.ticker.epoch || !d.engine.Running() {
		return
	}
	d.engine.Step()
	if d.maxSteps > 0 && d.engine.Generation() >= d.maxSteps {
		d.engine.Stop()
		d.finished = true
	}
	d.publish()
}

//publish stores the snapshot for the readers and refreshes the views
func (d *Driver) publish() {
	st := d.engine.Status()
	if d.finished && st.RunningMode == RunningStateManual {
		st.RunningMode = RunningStateFinished
	}
	d.published.Lock()
	d.published.status = st
	d.published.area = d.engine.Area()
	d.published.options = d.engine.Options()
	d.published.Unlock()
	d.refreshView()
}

//refreshView calls Refresh event for all registered views
func (d *Driver) refreshView() {
	for _, v := range d.views {
		v.Refresh()
	}
}
