// Package brew draws the coffee jug whose fill level follows countdown progress.
package brew

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// MaxFill keeps a sliver of the jug empty until the brew is reset.
const MaxFill = float32(0.99)

var (
	glassColor  = color.NRGBA{R: 245, G: 240, B: 230, A: 255}
	coffeeColor = color.NRGBA{R: 139, G: 90, B: 43, A: 255}
	collarColor = color.NRGBA{R: 200, G: 161, B: 101, A: 255}
)

// outline is the jug silhouette in unit coordinates, clockwise from top left.
var outline = []fyne.Position{
	{X: 0.22, Y: 0},
	{X: 0.78, Y: 0},
	{X: 0.57, Y: 0.45},
	{X: 0.92, Y: 1},
	{X: 0.08, Y: 1},
	{X: 0.43, Y: 0.45},
}

const waistY = float32(0.45)

// Jug is a canvas object showing brew progress.
type Jug struct {
	container *fyne.Container
	layout    *jugLayout
	animation *fyne.Animation
	ease      time.Duration
}

// New creates a jug. ease is how long the fill takes to reach a new level.
func New(ease time.Duration) *Jug {
	objects := make([]fyne.CanvasObject, 0, len(outline)+2)
	coffee := canvas.NewRectangle(coffeeColor)
	objects = append(objects, coffee)
	for range outline {
		line := canvas.NewLine(glassColor)
		line.StrokeWidth = 4
		objects = append(objects, line)
	}
	collar := canvas.NewRectangle(collarColor)
	collar.CornerRadius = 4
	objects = append(objects, collar)

	layout := &jugLayout{}
	return &Jug{
		container: container.New(layout, objects...),
		layout:    layout,
		ease:      ease,
	}
}

// Object returns the canvas object to place in a window.
func (jug *Jug) Object() fyne.CanvasObject {
	return jug.container
}

// SetProgress moves the coffee level toward progress. Must run on the fyne
// thread.
func (jug *Jug) SetProgress(progress float64) {
	target := FillLevel(progress)
	if jug.animation != nil {
		jug.animation.Stop()
		jug.animation = nil
	}
	from := jug.layout.level
	if jug.ease <= 0 || target <= from {
		jug.setLevel(target)
		return
	}
	jug.animation = fyne.NewAnimation(jug.ease, func(done float32) {
		jug.setLevel(from + (target-from)*done)
	})
	jug.animation.Curve = fyne.AnimationLinear
	jug.animation.Start()
}

// Level reports the fill level currently drawn.
func (jug *Jug) Level() float32 {
	return jug.layout.level
}

func (jug *Jug) setLevel(level float32) {
	jug.layout.level = level
	jug.container.Refresh()
}

// FillLevel converts progress to a drawable level in [0, MaxFill].
func FillLevel(progress float64) float32 {
	if progress <= 0 {
		return 0
	}
	level := float32(progress)
	if level > MaxFill {
		return MaxFill
	}
	return level
}

// CoffeeBounds returns the coffee rectangle for a jug of the given size. The
// coffee fills the lower chamber from the bottom up.
func CoffeeBounds(size fyne.Size, level float32) (fyne.Position, fyne.Size) {
	chamber := size.Height * (1 - waistY)
	height := chamber * level
	top := size.Height - height

	// Width follows the slanted wall at the coffee surface.
	depth := float32(0)
	if chamber > 0 {
		depth = (top - size.Height*waistY) / chamber
	}
	inset := outline[5].X - (outline[5].X-outline[4].X)*depth
	width := size.Width * (1 - 2*inset)
	return fyne.NewPos(size.Width*inset, top), fyne.NewSize(width, height)
}

type jugLayout struct {
	level float32
}

func (layout *jugLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < len(outline)+2 {
		return
	}
	coffee := objects[0]
	pos, coffeeSize := CoffeeBounds(size, layout.level)
	coffee.Move(pos)
	coffee.Resize(coffeeSize)

	for i := range outline {
		line := objects[i+1].(*canvas.Line)
		from := outline[i]
		to := outline[(i+1)%len(outline)]
		line.Position1 = fyne.NewPos(from.X*size.Width, from.Y*size.Height)
		line.Position2 = fyne.NewPos(to.X*size.Width, to.Y*size.Height)
	}

	collar := objects[len(outline)+1]
	collarHeight := size.Height * 0.08
	collar.Move(fyne.NewPos(size.Width*0.38, size.Height*waistY-collarHeight/2))
	collar.Resize(fyne.NewSize(size.Width*0.24, collarHeight))
}

func (layout *jugLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(160, 240)
}
