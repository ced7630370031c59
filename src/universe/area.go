package universe

type Cell bool

//Area is the square field where the cells are living
//Entities is indexed as Entities[y][x]
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//Alive reports whether the cell at x, y is alive, coordinates outside the area are dead
func (a Area) Alive(x int, y int) bool {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return false
	}
	return bool(a.Entities[y][x])
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	liveCells := 0
	a.walk(func(x int, y int, e Cell) {
		if e {
			liveCells++
		}
	})
	return liveCells
}

//Clone returns the deep copy of the area, the copy shares nothing with the original
func (a Area) Clone() Area {
	c := createArea(a.Width, a.Height)
	for y := range a.Entities {
		copy(c.Entities[y], a.Entities[y])
	}
	return c
}

//walk walks the entire area and calls the cb function for each cell
func (a Area) walk(cb func(x int, y int, entity Cell)) {
	for y := range a.Entities {
		for x := range a.Entities[y] {
			cb(x, y, a.Entities[y][x])
		}
	}
}

//createArea allocates the new area with all cells dead
//rows share one backing slice
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}
