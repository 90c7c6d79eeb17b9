package comicgen

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/domain/models"
)

func TestPlaceholderGenerator(t *testing.T) {
	gen := NewPlaceholderGenerator("")
	entry := &models.JournalEntry{Title: "Beach day"}
	character := &models.Character{Name: "Maya"}

	result, err := gen.Generate(context.Background(), entry, character)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Prompt, "Maya") {
		t.Errorf("prompt should feature the character, got %q", result.Prompt)
	}
	if !strings.Contains(result.Prompt, "main character") {
		t.Errorf("prompt should cast the character as main character, got %q", result.Prompt)
	}
	if !strings.HasPrefix(result.ImageURL, "https://placehold.co/") {
		t.Errorf("expected placeholder URL, got %q", result.ImageURL)
	}
	if strings.Contains(result.ImageURL, " ") {
		t.Errorf("image URL must be escaped, got %q", result.ImageURL)
	}
}

func TestPlaceholderGeneratorCustomBase(t *testing.T) {
	gen := NewPlaceholderGenerator("https://img.example.com")
	result, err := gen.Generate(context.Background(), &models.JournalEntry{Title: "x"}, &models.Character{Name: "y"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(result.ImageURL, "https://img.example.com/") {
		t.Errorf("expected custom base, got %q", result.ImageURL)
	}
}
