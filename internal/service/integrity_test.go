package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
)

func TestValidateName(t *testing.T) {
	integrity := newTreeIntegrity(&fakeFolderRepo{store: newMemStore()})

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain name", input: "Travel", want: "Travel"},
		{name: "trims whitespace", input: "  Travel  ", want: "Travel"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "slash rejected", input: "a/b", wantErr: true},
		{name: "too long", input: strings.Repeat("x", 101), wantErr: true},
		{name: "at limit", input: strings.Repeat("x", 100), want: strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := integrity.ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("ValidateName(%q) error should match ErrValidation, got %v", tt.input, err)
			}
		})
	}
}

func TestValidateRename(t *testing.T) {
	store := newMemStore()
	repo := &fakeFolderRepo{store: store}
	integrity := newTreeIntegrity(repo)
	ctx := context.Background()

	parent := &models.Folder{UserID: "u1", Name: "Parent"}
	if err := repo.Create(ctx, parent); err != nil {
		t.Fatal(err)
	}
	a := &models.Folder{UserID: "u1", ParentID: &parent.ID, Name: "A"}
	b := &models.Folder{UserID: "u1", ParentID: &parent.ID, Name: "B"}
	for _, f := range []*models.Folder{a, b} {
		if err := repo.Create(ctx, f); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("collides with sibling", func(t *testing.T) {
		err := integrity.ValidateRename(ctx, a, "B")
		if !errors.Is(err, domain.ErrDuplicateName) {
			t.Fatalf("expected duplicate name error, got %v", err)
		}
	})

	t.Run("own name is not a collision", func(t *testing.T) {
		if err := integrity.ValidateRename(ctx, a, "A"); err != nil {
			t.Fatalf("renaming to own name should pass, got %v", err)
		}
	})

	t.Run("fresh name passes", func(t *testing.T) {
		if err := integrity.ValidateRename(ctx, a, "C"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("same name under a different parent passes", func(t *testing.T) {
		other := &models.Folder{ID: a.ID, UserID: "u1", ParentID: nil, Name: "A"}
		if err := integrity.ValidateRename(ctx, other, "B"); err != nil {
			t.Fatalf("name is unique per parent, got %v", err)
		}
	})
}

func TestValidateMove(t *testing.T) {
	store := newMemStore()
	repo := &fakeFolderRepo{store: store}
	integrity := newTreeIntegrity(repo)
	ctx := context.Background()

	// root -> a -> b
	root := &models.Folder{UserID: "u1", Name: "root"}
	if err := repo.Create(ctx, root); err != nil {
		t.Fatal(err)
	}
	a := &models.Folder{UserID: "u1", ParentID: &root.ID, Name: "a"}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	b := &models.Folder{UserID: "u1", ParentID: &a.ID, Name: "b"}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	t.Run("into itself", func(t *testing.T) {
		err := integrity.ValidateMove(ctx, root, root)
		if !errors.Is(err, domain.ErrCycle) {
			t.Fatalf("expected cycle error, got %v", err)
		}
	})

	t.Run("into a direct child", func(t *testing.T) {
		err := integrity.ValidateMove(ctx, root, a)
		if !errors.Is(err, domain.ErrCycle) {
			t.Fatalf("expected cycle error, got %v", err)
		}
	})

	t.Run("into a deep descendant", func(t *testing.T) {
		err := integrity.ValidateMove(ctx, root, b)
		if !errors.Is(err, domain.ErrCycle) {
			t.Fatalf("expected cycle error, got %v", err)
		}
	})

	t.Run("to root is always fine", func(t *testing.T) {
		if err := integrity.ValidateMove(ctx, b, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sideways move is fine", func(t *testing.T) {
		c := &models.Folder{UserID: "u1", ParentID: &root.ID, Name: "c"}
		if err := repo.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
		if err := integrity.ValidateMove(ctx, b, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestResolveAncestorsCorruptChain(t *testing.T) {
	store := newMemStore()
	repo := &fakeFolderRepo{store: store}
	integrity := newTreeIntegrity(repo)
	ctx := context.Background()

	// Fabricate a two-node loop directly in the store
	x := &models.Folder{ID: "x", UserID: "u1", Name: "x"}
	y := &models.Folder{ID: "y", UserID: "u1", ParentID: &x.ID, Name: "y"}
	x.ParentID = &y.ID
	store.folders["x"] = x
	store.folders["y"] = y

	_, err := integrity.ResolveAncestors(ctx, x)
	if !errors.Is(err, domain.ErrCycle) {
		t.Fatalf("expected cycle error on corrupt chain, got %v", err)
	}
}
