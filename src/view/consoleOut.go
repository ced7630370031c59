package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
	"lifegame/src/universe"
)

//ConsoleOut is the headless viewer, prints the progress and the summary
type ConsoleOut struct {
	u         universe.Universe
	w         io.Writer
	startTime time.Time
	every     int
	lastShown int
	done      chan struct{}
	doneOnce  sync.Once
}

//NewConsoleOut creates the viewer which prints the progress every `every` generations
func NewConsoleOut(w io.Writer, every int) *ConsoleOut {
	if every <= 0 {
		every = 10
	}
	return &ConsoleOut{w: w, every: every, done: make(chan struct{})}
}

//Done is closed when the universe finishes the run
func (c *ConsoleOut) Done() <-chan struct{} {
	return c.done
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	switch st.RunningMode {
	case universe.RunningStateFinished:
		c.doneOnce.Do(func() {
			totalTime := time.Since(c.startTime).Round(time.Millisecond)
			resultData := map[string]interface{}{
				"Last generation": st.Generation,
				"Total time":      totalTime,
				"Live cells":      st.LiveCells,
			}
			_, _ = fmt.Fprintln(c.w, aurora.Red("\nFinished:"))
			c.printHashData(resultData)
			_, _ = fmt.Fprint(c.w, c.renderField(c.u.Area()))
			close(c.done)
		})
	case universe.RunningStateRun:
		if st.Generation/c.every != c.lastShown/c.every {
			_, _ = fmt.Fprintf(c.w, "  Generations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
		}
		c.lastShown = st.Generation
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.w, aurora.Green("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Size, o.Size),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
		"Auto mode":      c.u.Status().AutoMode,
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//renderField draws the field as text, one char per cell
func (c *ConsoleOut) renderField(a universe.Area) string {
	var b strings.Builder
	for _, l := range a.Entities {
		for _, e := range l {
			if e {
				b.WriteString(aurora.Green("█").String())
			} else {
				b.WriteString("░")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
