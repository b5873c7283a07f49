package domain

// TextDecoration is the classifier's result for one character. The four flags
// are independent: annotations and separate path objects may each set their
// own flag, so any combination can be true at once.
type TextDecoration struct {
	Underlined     bool   `json:"underlined"`
	Strikethrough  bool   `json:"strikethrough"`
	Highlighted    bool   `json:"highlighted"`
	Squiggly       bool   `json:"squiggly"`
	HighlightColor *Color `json:"highlight_color,omitempty"`
}

// TextStyle is the full per-character style record: the engine-supplied paint
// colors and font size merged with the inferred decoration.
type TextStyle struct {
	FontSize    float64        `json:"font_size,omitempty"`
	FillColor   *Color         `json:"fill_color,omitempty"`
	StrokeColor *Color         `json:"stroke_color,omitempty"`
	Decoration  TextDecoration `json:"decoration"`
}

// CharGeometry is one character's geometry and paint attributes as extracted
// by the engine.
type CharGeometry struct {
	Index       int             `json:"index"`
	Rune        string          `json:"rune,omitempty"`
	Bounds      CharacterBounds `json:"bounds"`
	FontSize    float64         `json:"font_size,omitempty"`
	FillColor   *Color          `json:"fill_color,omitempty"`
	StrokeColor *Color          `json:"stroke_color,omitempty"`
}

// PageGeometry is everything the engine reports for one page that style
// classification needs: the characters plus the page's annotation quads and
// vector path objects.
type PageGeometry struct {
	Chars []CharGeometry   `json:"chars"`
	Quads []AnnotationQuad `json:"quads,omitempty"`
	Paths []PathObject     `json:"paths,omitempty"`
}

// StyledCharacter pairs a character with its resolved style.
type StyledCharacter struct {
	Index int       `json:"index"`
	Rune  string    `json:"rune,omitempty"`
	Style TextStyle `json:"style"`
}

// ClassifierThresholds are the tuning constants of the geometric decoration
// rules. They are empirical, not derived from the PDF spec, and are exposed so
// deployments can adjust them.
type ClassifierThresholds struct {
	// MinAspect is the minimum width/height ratio a path must have before any
	// geometric rule applies. Decorations are wide, flat shapes.
	MinAspect float64
	// StrokeRatio is the minimum strokeWidth/pathHeight ratio for a path to
	// count as a thick line.
	StrokeRatio float64
	// ThinLineMin and ThinLineScale bound the vertical tolerance around the
	// underline and strikethrough bands: max(ThinLineMin, ThinLineScale*charHeight).
	ThinLineMin   float64
	ThinLineScale float64
	// SquigglyMin and SquigglyScale bound the wider tolerance used for
	// squiggly strokes.
	SquigglyMin   float64
	SquigglyScale float64
	// HighlightMin and HighlightScale bound the minimum stroke width for a
	// path to count as a highlight fill.
	HighlightMin   float64
	HighlightScale float64
	// HighlightCoverage is the fraction of the character's width a highlight
	// may leave uncovered at each edge.
	HighlightCoverage float64
}

// DefaultClassifierThresholds returns the tuning constants the heuristic was
// calibrated with.
func DefaultClassifierThresholds() ClassifierThresholds {
	return ClassifierThresholds{
		MinAspect:         2.0,
		StrokeRatio:       0.45,
		ThinLineMin:       0.6,
		ThinLineScale:     0.1,
		SquigglyMin:       1.0,
		SquigglyScale:     0.175,
		HighlightMin:      1.2,
		HighlightScale:    0.5,
		HighlightCoverage: 0.2,
	}
}
