package grid

// MinPanelSize is the floor for each resize dimension.
const MinPanelSize = 100

type gestureMode int

const (
	modeIdle gestureMode = iota
	modeDragging
	modeResizing
)

// Gesture tracks one pointer interaction with a panel. Only one mode
// is active at a time: a resize start swallows the pointer-down, so it
// can never also begin a drag. Move events are applied in arrival
// order; the gesture ends on the next pointer-up wherever it lands.
type Gesture struct {
	mode       gestureMode
	grabOffset Point
	startSize  Size
	startPoint Point
}

// StartDrag enters dragging mode, capturing the pointer-to-origin
// offset. Ignored while another mode is active.
func (g *Gesture) StartDrag(panel Panel, pointer Point) {
	if g.mode != modeIdle {
		return
	}
	g.mode = modeDragging
	g.grabOffset = Point{
		X: pointer.X - panel.Position.X,
		Y: pointer.Y - panel.Position.Y,
	}
}

// StartResize enters resizing mode, capturing the initial size and
// pointer location. Ignored while another mode is active.
func (g *Gesture) StartResize(panel Panel, pointer Point) {
	if g.mode != modeIdle {
		return
	}
	g.mode = modeResizing
	g.startSize = panel.Size
	g.startPoint = pointer
}

// Move applies a pointer-move to the panel according to the active
// mode. Dragging keeps the original grab offset with no boundary
// clamping; resizing adds the pointer delta to the initial size,
// floored at MinPanelSize per dimension. Idle moves are ignored.
func (g *Gesture) Move(panel *Panel, pointer Point) {
	switch g.mode {
	case modeDragging:
		panel.Position = Point{
			X: pointer.X - g.grabOffset.X,
			Y: pointer.Y - g.grabOffset.Y,
		}
	case modeResizing:
		width := g.startSize.Width + (pointer.X - g.startPoint.X)
		height := g.startSize.Height + (pointer.Y - g.startPoint.Y)
		if width < MinPanelSize {
			width = MinPanelSize
		}
		if height < MinPanelSize {
			height = MinPanelSize
		}
		panel.Size = Size{Width: width, Height: height}
	}
}

// End finishes the active gesture.
func (g *Gesture) End() {
	g.mode = modeIdle
}

// Active reports whether a drag or resize is in progress.
func (g *Gesture) Active() bool {
	return g.mode != modeIdle
}
