package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"lifegame/src/universe"
)

func TestConsoleOut_PrintsSummaryOnFinish(t *testing.T) {
	o := universe.DefaultOptions
	o.Size = 10
	o.Interval = time.Millisecond
	o.MaxSteps = 25
	d := universe.NewDriver(&o)
	defer d.Close()

	//block of four stays alive until the end
	d.Settle([][]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}})

	var b bytes.Buffer
	c := NewConsoleOut(&b, 10)
	d.RegisterViewer(c)
	c.Start()
	d.Run()

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("the run did not finish")
	}

	out := b.String()
	for _, want := range []string{
		"Dimension: 10 x 10",
		"Max iterations: 25 steps",
		"Generations done: 10",
		"Generations done: 20",
		"Last generation: 25",
		"Live cells: 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "░"); n != 96 {
		t.Errorf("printed %d dead cells, expected 96", n)
	}
}
