package domain

// Geometry records supplied by the rendering engine, in page-space units.
//
// Rectangles follow the engine's inverted page-space convention: Top holds the
// smaller Y coordinate and Bottom = Top + Height. With the page's bottom-left
// origin this puts a rectangle's Top edge on the baseline side of a glyph.
// Callers converting from engine character boxes must preserve this inversion.

// Rect is an axis-aligned rectangle in page-space units.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the Y coordinate of the edge opposite Top.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// MidY returns the Y coordinate of the rectangle's vertical midpoint.
func (r Rect) MidY() float64 {
	return r.Top + r.Height/2
}

// IsEmpty reports whether the rectangle has no area. Empty rectangles never
// contribute to classification.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Left < other.Right() && other.Left < r.Right() &&
		r.Top < other.Bottom() && other.Top < r.Bottom()
}

// Point is a position in page-space units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CharacterBounds carries the two bounding boxes the engine reports for a
// single character plus the Y coordinate of the glyph's baseline origin.
// Tight is the glyph ink box; Loose additionally includes the inter-line gap
// and is used for decoration proximity tests.
type CharacterBounds struct {
	Tight   Rect    `json:"tight"`
	Loose   Rect    `json:"loose"`
	OriginY float64 `json:"origin_y"`
}

// MarkupSubtype identifies a text markup annotation subtype.
type MarkupSubtype string

const (
	MarkupUnderline MarkupSubtype = "Underline"
	MarkupSquiggly  MarkupSubtype = "Squiggly"
	MarkupStrikeOut MarkupSubtype = "StrikeOut"
	MarkupHighlight MarkupSubtype = "Highlight"
	MarkupOther     MarkupSubtype = "Other"
)

// AnnotationQuad is one attachment-point quadrilateral of a text markup
// annotation on the page. Color is set for Highlight annotations.
type AnnotationQuad struct {
	Points  [4]Point      `json:"points"`
	Subtype MarkupSubtype `json:"subtype"`
	Color   *Color        `json:"color,omitempty"`
}

// Bounds returns the bounding box of the quad's four corners.
func (q AnnotationQuad) Bounds() Rect {
	minX, maxX := q.Points[0].X, q.Points[0].X
	minY, maxY := q.Points[0].Y, q.Points[0].Y
	for _, p := range q.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

// PathObject is a vector path object on the page as reported by the engine.
// IsStraightLine is true for a single straight two-segment path with no
// curves.
type PathObject struct {
	Bounds         Rect    `json:"bounds"`
	StrokeWidth    float64 `json:"stroke_width"`
	IsStraightLine bool    `json:"is_straight_line"`
	FillColor      *Color  `json:"fill_color,omitempty"`
	StrokeColor    *Color  `json:"stroke_color,omitempty"`
}

// PaintColor returns the path's fill color when present, otherwise its stroke
// color, otherwise nil.
func (p PathObject) PaintColor() *Color {
	if p.FillColor != nil {
		return p.FillColor
	}
	return p.StrokeColor
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}
