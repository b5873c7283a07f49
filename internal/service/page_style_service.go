package service

import (
	"pdf-style-reader/internal/domain"
)

// PageStyleService resolves the full text style for every character of a
// page: the classifier's decoration result merged with the paint colors and
// font size the engine reported per character.
type PageStyleService struct {
	classifier domain.StyleClassifier
	logger     domain.Logger
}

func NewPageStyleService(classifier domain.StyleClassifier, logger domain.Logger) *PageStyleService {
	return &PageStyleService{
		classifier: classifier,
		logger:     logger,
	}
}

// StylePage classifies each character independently against the page's full
// annotation and path lists. Cost is linear in characters times candidates.
func (s *PageStyleService) StylePage(page domain.PageGeometry) []domain.StyledCharacter {
	styled := make([]domain.StyledCharacter, 0, len(page.Chars))
	decorated := 0

	for _, char := range page.Chars {
		dec := s.classifier.Classify(char.Bounds, page.Quads, page.Paths)
		if dec.Underlined || dec.Strikethrough || dec.Highlighted || dec.Squiggly {
			decorated++
		}
		styled = append(styled, domain.StyledCharacter{
			Index: char.Index,
			Rune:  char.Rune,
			Style: domain.TextStyle{
				FontSize:    char.FontSize,
				FillColor:   char.FillColor,
				StrokeColor: char.StrokeColor,
				Decoration:  dec,
			},
		})
	}

	s.logger.Debug("Page styled", "chars", len(page.Chars), "decorated", decorated,
		"quads", len(page.Quads), "paths", len(page.Paths))
	return styled
}
