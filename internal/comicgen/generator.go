package comicgen

import (
	"context"
	"fmt"
	"net/url"

	"inkwell/internal/domain/models"
)

// Generator turns a journal entry and a featured character into a comic
// image. Implementations may call an external image service; the result is
// a URL plus the prompt that produced it.
type Generator interface {
	Generate(ctx context.Context, entry *models.JournalEntry, character *models.Character) (*Result, error)
}

// Result is the outcome of one generation.
type Result struct {
	ImageURL string
	Prompt   string
}

// PlaceholderGenerator produces deterministic placeholder images instead of
// calling a real image model. The prompt is built as a real generator would
// build it, so swapping in a live backend changes only the image source.
type PlaceholderGenerator struct {
	BaseURL string
}

// NewPlaceholderGenerator creates a placeholder generator. baseURL defaults
// to placehold.co when empty.
func NewPlaceholderGenerator(baseURL string) *PlaceholderGenerator {
	if baseURL == "" {
		baseURL = "https://placehold.co"
	}
	return &PlaceholderGenerator{BaseURL: baseURL}
}

// Generate builds the prompt and a placeholder image URL carrying the entry
// title as caption text.
func (g *PlaceholderGenerator) Generate(_ context.Context, entry *models.JournalEntry, character *models.Character) (*Result, error) {
	prompt := fmt.Sprintf("Comic featuring %s as main character, based on the journal entry %q", character.Name, entry.Title)
	imageURL := fmt.Sprintf("%s/600x800/png?text=%s", g.BaseURL, url.QueryEscape(entry.Title))
	return &Result{ImageURL: imageURL, Prompt: prompt}, nil
}
