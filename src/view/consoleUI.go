package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"lifegame/src/universe"
)

//speed control bounds of the interactive front ends
const (
	MinInterval  = 50 * time.Millisecond
	MaxInterval  = 2000 * time.Millisecond
	IntervalStep = 50 * time.Millisecond
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	u          universe.Universe
	g          *gocui.Gui
	k          []keyBindings
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'g', "G", "Go/Stop", t.cmdGo, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Seed 100 random", t.cmdSeedRandom, ""},
		{'a', "A", "Auto mode", t.cmdAutoMode, ""},
		{'+', "+", "Slower", t.cmdSlower, ""},
		{'-', "-", "Faster", t.cmdFaster, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField(t.u.Area())
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField(a universe.Area) {
	t.g.Update(func(g *gocui.Gui) error {
		t.drawField(g, a)
		return nil
	})
}

//drawField writes the field to the battlefield view, must run on the gui goroutine
func (t *ConsoleUI) drawField(g *gocui.Gui, a universe.Area) {
	v, e := g.View("battlefield")
	if e != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, renderText(a, maxW, maxH, t.liveFiller, t.deadFiller))
}

func (t *ConsoleUI) renderStatus() {
	s := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
			_, _ = fmt.Fprintln(v, t.renderProp("Auto", "%v", autoModeDescr(s.AutoMode)))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	c := t.u.Options()
	s := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Size, c.Size))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", s.Interval))
			if c.MaxSteps > 0 {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			} else {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "unlimited"))
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	//redrawn in place, the view size may have changed
	t.drawField(g, t.u.Area())

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

//cmdGo is the run/pause toggle
func (t *ConsoleUI) cmdGo(_ *gocui.View) error {
	if t.u.Status().RunningMode == universe.RunningStateRun {
		t.u.Stop()
	} else {
		t.u.Run()
	}
	return nil
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.u.Step()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Reset()
	return nil
}

func (t *ConsoleUI) cmdSeedRandom(_ *gocui.View) error {
	t.u.SeedRandom(universe.DefSeedCells)
	return nil
}

func (t *ConsoleUI) cmdAutoMode(_ *gocui.View) error {
	t.u.ToggleAutoMode()
	return nil
}

func (t *ConsoleUI) cmdSlower(_ *gocui.View) error {
	t.u.SetSpeed(adjustInterval(t.u.Status().Interval, IntervalStep))
	return nil
}

func (t *ConsoleUI) cmdFaster(_ *gocui.View) error {
	t.u.SetSpeed(adjustInterval(t.u.Status().Interval, -IntervalStep))
	return nil
}

//cmdMouseClick toggles the cell under the cursor, one char is one cell
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	t.u.InverseCell(CellAt(cx+ox, cy+oy, 0, 0, 1))
	return nil
}

//adjustInterval changes the interval by delta keeping it inside MinInterval..MaxInterval
func adjustInterval(interval time.Duration, delta time.Duration) time.Duration {
	return ClampInterval(interval + delta)
}

//ClampInterval keeps the interval inside MinInterval..MaxInterval
func ClampInterval(interval time.Duration) time.Duration {
	if interval < MinInterval {
		return MinInterval
	}
	if interval > MaxInterval {
		return MaxInterval
	}
	return interval
}

func autoModeDescr(on bool) string {
	if on {
		return aurora.Green("ON").String()
	}
	return "off"
}

//renderText draws the field as text cropped to maxW x maxH
//the last visible line is replaced with the warning when the field does not fit
func renderText(a universe.Area, maxW int, maxH int, liveFiller string, deadFiller string) string {
	crop := a.Width > maxW || a.Height > maxH
	var b bytes.Buffer
	for i, l := range a.Entities {
		//discard the data outside the view area
		if i >= maxH {
			break
		}
		//line feed char
		if i != 0 {
			b.WriteByte(10)
		}
		if crop && i == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for j, e := range l {
			if j >= maxW {
				break
			}
			if e {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	return b.String()
}
