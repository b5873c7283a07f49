package service

import (
	"math"

	"pdf-style-reader/internal/domain"
)

// geomEpsilon guards divisions by near-zero path heights and stroke widths.
const geomEpsilon = 1e-6

// StyleClassifier infers underline, strikethrough, squiggly and highlight
// decorations for a single character. Explicit text markup annotations are
// authoritative when present; vector path objects are classified with
// geometric heuristics to catch decorations drawn as raw page content.
//
// Classification is a pure function of the supplied geometry: no state is kept
// between calls and characters are independent of each other, so concurrent
// calls need no coordination.
type StyleClassifier struct {
	thresholds domain.ClassifierThresholds
}

// NewStyleClassifier creates a classifier with the given tuning thresholds.
func NewStyleClassifier(thresholds domain.ClassifierThresholds) *StyleClassifier {
	return &StyleClassifier{thresholds: thresholds}
}

// Thresholds returns the tuning constants the classifier runs with.
func (c *StyleClassifier) Thresholds() domain.ClassifierThresholds {
	return c.thresholds
}

// Classify determines the character's decorations from the page's annotation
// quads and path objects. Degenerate geometry (zero-area boxes, candidates
// that do not intersect the character) is skipped rather than rejected, so
// the result degrades to all-false instead of an error.
func (c *StyleClassifier) Classify(char domain.CharacterBounds, quads []domain.AnnotationQuad, paths []domain.PathObject) domain.TextDecoration {
	var dec domain.TextDecoration
	c.applyAnnotations(&dec, char, quads)
	c.applyPaths(&dec, char, paths)
	return dec
}

// applyAnnotations sets flags from explicit text markup annotations whose
// attachment quads touch the character's tight bounds. Each matching quad sets
// its own flag; when several highlight quads match, the last color wins. That
// last-wins behavior is an intentional simplification.
func (c *StyleClassifier) applyAnnotations(dec *domain.TextDecoration, char domain.CharacterBounds, quads []domain.AnnotationQuad) {
	tight := char.Tight
	if tight.IsEmpty() {
		return
	}
	for i := range quads {
		if !quads[i].Bounds().Intersects(tight) {
			continue
		}
		switch quads[i].Subtype {
		case domain.MarkupUnderline:
			dec.Underlined = true
		case domain.MarkupSquiggly:
			dec.Squiggly = true
		case domain.MarkupStrikeOut:
			dec.Strikethrough = true
		case domain.MarkupHighlight:
			dec.Highlighted = true
			if quads[i].Color != nil {
				color := *quads[i].Color
				dec.HighlightColor = &color
			}
		}
	}
}

// applyPaths classifies vector path objects that overlap the character's
// loose bounds. The four rules run in strict order and are mutually exclusive
// per path object (first match wins), but separate path objects accumulate
// their flags independently, so one path may underline a character that
// another path highlights.
func (c *StyleClassifier) applyPaths(dec *domain.TextDecoration, char domain.CharacterBounds, paths []domain.PathObject) {
	tight := char.Tight
	if tight.IsEmpty() || char.Loose.IsEmpty() {
		return
	}
	t := c.thresholds

	charHeight := tight.Height
	thinLineMax := math.Max(t.ThinLineMin, t.ThinLineScale*charHeight)
	squigglyMax := math.Max(t.SquigglyMin, t.SquigglyScale*charHeight)
	highlightMin := math.Max(t.HighlightMin, t.HighlightScale*charHeight)

	// Underlines sit between the baseline and the glyph's descender edge, so
	// the band's far end is halfway between the vertical midline and the
	// baseline origin.
	underlineMaxY := (tight.MidY() + char.OriginY) / 2

	for i := range paths {
		path := &paths[i]
		if path.Bounds.IsEmpty() || !path.Bounds.Intersects(char.Loose) {
			continue
		}

		pathHeight := path.Bounds.Height
		aspect := math.Inf(1)
		if pathHeight > geomEpsilon {
			aspect = path.Bounds.Width / pathHeight
		}
		if aspect < t.MinAspect {
			continue
		}

		ratio := 1 / pathHeight
		if path.StrokeWidth > geomEpsilon {
			ratio = path.StrokeWidth / pathHeight
		}
		thickLine := ratio > t.StrokeRatio
		midY := path.Bounds.MidY()

		switch {
		case thickLine && midY >= tight.Top-thinLineMax && midY <= underlineMaxY:
			dec.Underlined = true
		case (thickLine || path.IsStraightLine) && path.Bounds.Bottom() <= tight.Bottom()+thinLineMax:
			dec.Strikethrough = true
		case !thickLine && !path.IsStraightLine && midY >= tight.Top-squigglyMax && midY <= underlineMaxY:
			dec.Squiggly = true
		case path.StrokeWidth > highlightMin &&
			path.Bounds.Left <= tight.Left+t.HighlightCoverage*tight.Width &&
			path.Bounds.Right() >= tight.Right()-t.HighlightCoverage*tight.Width:
			dec.Highlighted = true
			if color := path.PaintColor(); color != nil {
				highlightColor := *color
				dec.HighlightColor = &highlightColor
			}
		}
	}
}
