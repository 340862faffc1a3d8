package grid

// Point is a position in dashboard coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a panel extent in dashboard coordinates.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Panel is one freely movable dashboard tile. Panels may overlap; no
// collision detection is applied.
type Panel struct {
	ID       string `json:"id"`
	Position Point  `json:"position"`
	Size     Size   `json:"size"`
}
