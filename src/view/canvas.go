package view

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"lifegame/src/universe"
)

//Canvas is the drawing surface the field is painted on
type Canvas interface {
	Clear(width int, height int)
	FillRect(x int, y int, width int, height int)
}

//Paint clears the canvas and draws every live cell as a square of cellSize-1 pixels
//the missing pixel leaves the grid line between the cells
func Paint(c Canvas, a universe.Area, cellSize int) {
	if cellSize < 1 {
		cellSize = 1
	}
	side := cellSize - 1
	if side < 1 {
		side = 1
	}
	c.Clear(a.Width*cellSize, a.Height*cellSize)
	for y, l := range a.Entities {
		for x, e := range l {
			if e {
				c.FillRect(x*cellSize, y*cellSize, side, side)
			}
		}
	}
}

//CellAt maps the pointer position to the field coordinates
//the result may be outside the field, InverseCell ignores such cells
func CellAt(px int, py int, originX int, originY int, cellSize int) (x int, y int) {
	if cellSize < 1 {
		cellSize = 1
	}
	x = int(math.Floor(float64(px-originX) / float64(cellSize)))
	y = int(math.Floor(float64(py-originY) / float64(cellSize)))
	return
}

//ImageCanvas paints into an RGBA image
type ImageCanvas struct {
	img        *image.RGBA
	liveColor  color.Color
	background color.Color
}

func NewImageCanvas(liveColor color.Color, background color.Color) *ImageCanvas {
	return &ImageCanvas{
		img:        image.NewRGBA(image.Rect(0, 0, 0, 0)),
		liveColor:  liveColor,
		background: background,
	}
}

//Clear resizes the image if needed and fills it with the background
func (c *ImageCanvas) Clear(width int, height int) {
	if c.img.Rect.Dx() != width || c.img.Rect.Dy() != height {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.background), image.Point{}, draw.Src)
}

func (c *ImageCanvas) FillRect(x int, y int, width int, height int) {
	r := image.Rect(x, y, x+width, y+height).Intersect(c.img.Rect)
	draw.Draw(c.img, r, image.NewUniform(c.liveColor), image.Point{}, draw.Src)
}

func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}
