package grid

import "testing"

func TestDragPreservesGrabOffset(t *testing.T) {
	panel := Panel{ID: "p1", Position: Point{X: 10, Y: 10}, Size: Size{Width: 200, Height: 200}}
	var g Gesture

	g.StartDrag(panel, Point{X: 50, Y: 50})
	g.Move(&panel, Point{X: 80, Y: 90})

	if panel.Position.X != 40 || panel.Position.Y != 50 {
		t.Fatalf("drag position: got %+v want {40 50}", panel.Position)
	}
}

func TestDragNoClamping(t *testing.T) {
	panel := Panel{Position: Point{X: 0, Y: 0}, Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartDrag(panel, Point{X: 10, Y: 10})
	g.Move(&panel, Point{X: -500, Y: -500})

	if panel.Position.X != -510 || panel.Position.Y != -510 {
		t.Fatalf("drag should not clamp: got %+v", panel.Position)
	}
}

func TestResizeAppliesDelta(t *testing.T) {
	panel := Panel{Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartResize(panel, Point{X: 200, Y: 200})
	g.Move(&panel, Point{X: 250, Y: 220})

	if panel.Size.Width != 150 || panel.Size.Height != 120 {
		t.Fatalf("resize: got %+v want {150 120}", panel.Size)
	}
}

func TestResizeFloorsAtMinimum(t *testing.T) {
	panel := Panel{Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartResize(panel, Point{X: 200, Y: 200})
	g.Move(&panel, Point{X: -300, Y: -300})

	if panel.Size.Width != MinPanelSize || panel.Size.Height != MinPanelSize {
		t.Fatalf("resize floor: got %+v want {%d %d}", panel.Size, MinPanelSize, MinPanelSize)
	}
}

func TestResizeFloorsPerDimension(t *testing.T) {
	panel := Panel{Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartResize(panel, Point{X: 0, Y: 0})
	g.Move(&panel, Point{X: 80, Y: -80})

	if panel.Size.Width != 180 || panel.Size.Height != MinPanelSize {
		t.Fatalf("per-dimension floor: got %+v", panel.Size)
	}
}

func TestResizeBlocksDragStart(t *testing.T) {
	panel := Panel{Position: Point{X: 10, Y: 10}, Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartResize(panel, Point{X: 110, Y: 110})
	g.StartDrag(panel, Point{X: 50, Y: 50})
	g.Move(&panel, Point{X: 160, Y: 160})

	if panel.Position.X != 10 || panel.Position.Y != 10 {
		t.Fatalf("drag must not run during resize: %+v", panel.Position)
	}
	if panel.Size.Width != 150 || panel.Size.Height != 150 {
		t.Fatalf("resize should continue: %+v", panel.Size)
	}
}

func TestMovesTrackLatestPointerInOrder(t *testing.T) {
	panel := Panel{Position: Point{X: 0, Y: 0}, Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartDrag(panel, Point{X: 0, Y: 0})
	g.Move(&panel, Point{X: 10, Y: 0})
	g.Move(&panel, Point{X: 20, Y: 5})
	g.Move(&panel, Point{X: 15, Y: 30})

	if panel.Position.X != 15 || panel.Position.Y != 30 {
		t.Fatalf("latest move wins: got %+v", panel.Position)
	}
}

func TestEndStopsGesture(t *testing.T) {
	panel := Panel{Position: Point{X: 0, Y: 0}, Size: Size{Width: 100, Height: 100}}
	var g Gesture

	g.StartDrag(panel, Point{X: 0, Y: 0})
	if !g.Active() {
		t.Fatalf("gesture should be active after start")
	}
	g.End()
	if g.Active() {
		t.Fatalf("gesture should be idle after end")
	}

	g.Move(&panel, Point{X: 100, Y: 100})
	if panel.Position.X != 0 || panel.Position.Y != 0 {
		t.Fatalf("idle move must be ignored: %+v", panel.Position)
	}

	// A new gesture can start after pointer-up.
	g.StartResize(panel, Point{X: 0, Y: 0})
	g.Move(&panel, Point{X: 10, Y: 10})
	if panel.Size.Width != 110 || panel.Size.Height != 110 {
		t.Fatalf("new gesture after end: %+v", panel.Size)
	}
}
