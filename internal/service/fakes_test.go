package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// memStore is an in-memory stand-in for the postgres layer. It reproduces
// the store-level behaviors the services rely on: owner scoping, sibling
// uniqueness, delete cascade for folders and SET NULL for journals.
type memStore struct {
	folders  map[string]*models.Folder
	journals map[string]*models.JournalEntry
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStore() *memStore {
	return &memStore{
		folders:  make(map[string]*models.Folder),
		journals: make(map[string]*models.JournalEntry),
	}
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type fakeFolderRepo struct {
	store *memStore
}

func (r *fakeFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	for _, existing := range r.store.folders {
		if existing.UserID == folder.UserID && sameParent(existing.ParentID, folder.ParentID) && existing.Name == folder.Name {
			return &domain.DuplicateNameError{
				Message:      fmt.Sprintf("folder %q already exists", folder.Name),
				ResourceType: "folder",
				ResourceID:   existing.ID,
			}
		}
	}
	if folder.ID == "" {
		folder.ID = uuid.New().String()
	}
	copied := *folder
	r.store.folders[folder.ID] = &copied
	return nil
}

func (r *fakeFolderRepo) GetByID(_ context.Context, id, userID string) (*models.Folder, error) {
	folder, ok := r.store.folders[id]
	if !ok || folder.UserID != userID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	copied := *folder
	return &copied, nil
}

func (r *fakeFolderRepo) Update(_ context.Context, folder *models.Folder) error {
	existing, ok := r.store.folders[folder.ID]
	if !ok || existing.UserID != folder.UserID {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	for _, other := range r.store.folders {
		if other.ID != folder.ID && other.UserID == folder.UserID &&
			sameParent(other.ParentID, folder.ParentID) && other.Name == folder.Name {
			return &domain.DuplicateNameError{
				Message:      fmt.Sprintf("folder %q already exists", folder.Name),
				ResourceType: "folder",
				ResourceID:   other.ID,
			}
		}
	}
	copied := *folder
	r.store.folders[folder.ID] = &copied
	return nil
}

func (r *fakeFolderRepo) Delete(_ context.Context, id, userID string) error {
	folder, ok := r.store.folders[id]
	if !ok || folder.UserID != userID {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	// Cascade to descendant folders, unfile journals anywhere in the subtree
	doomed := []string{id}
	for i := 0; i < len(doomed); i++ {
		for _, f := range r.store.folders {
			if f.ParentID != nil && *f.ParentID == doomed[i] {
				doomed = append(doomed, f.ID)
			}
		}
	}
	for _, folderID := range doomed {
		for _, j := range r.store.journals {
			if j.FolderID != nil && *j.FolderID == folderID {
				j.FolderID = nil
			}
		}
		delete(r.store.folders, folderID)
	}
	return nil
}

func (r *fakeFolderRepo) ListChildren(_ context.Context, parentID *string, userID string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.store.folders {
		if f.UserID == userID && sameParent(f.ParentID, parentID) {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFolderRepo) GetAllByUser(_ context.Context, userID string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.store.folders {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeJournalRepo struct {
	store *memStore
}

func (r *fakeJournalRepo) Create(_ context.Context, entry *models.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	copied := *entry
	r.store.journals[entry.ID] = &copied
	return nil
}

func (r *fakeJournalRepo) GetByID(_ context.Context, id, userID string) (*models.JournalEntry, error) {
	entry, ok := r.store.journals[id]
	if !ok || entry.UserID != userID {
		return nil, fmt.Errorf("journal entry %s: %w", id, domain.ErrNotFound)
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeJournalRepo) Update(_ context.Context, entry *models.JournalEntry) error {
	existing, ok := r.store.journals[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return fmt.Errorf("journal entry %s: %w", entry.ID, domain.ErrNotFound)
	}
	copied := *entry
	r.store.journals[entry.ID] = &copied
	return nil
}

func (r *fakeJournalRepo) Delete(_ context.Context, id, userID string) error {
	entry, ok := r.store.journals[id]
	if !ok || entry.UserID != userID {
		return fmt.Errorf("journal entry %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.journals, id)
	return nil
}

func (r *fakeJournalRepo) ListByUser(_ context.Context, userID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, j := range r.store.journals {
		if j.UserID == userID {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeJournalRepo) ListByFolder(_ context.Context, folderID *string, userID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, j := range r.store.journals {
		if j.UserID == userID && sameParent(j.FolderID, folderID) {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeJournalRepo) ListLocked(_ context.Context, userID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, j := range r.store.journals {
		if j.UserID == userID && j.IsLocked {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJournalRepo) CountByUser(_ context.Context, userID string) (int, error) {
	count := 0
	for _, j := range r.store.journals {
		if j.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeTxManager runs the function directly; the fakes have no transactions
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeGamification records activity calls
type fakeGamification struct {
	activityCalls int
}

func (g *fakeGamification) RecordActivity(context.Context, string) error {
	g.activityCalls++
	return nil
}

func (g *fakeGamification) GetStreak(context.Context, string) (*models.Streak, error) {
	return &models.Streak{}, nil
}

func (g *fakeGamification) ListBadges(context.Context) ([]models.Badge, error) { return nil, nil }

func (g *fakeGamification) ListAchievements(context.Context, string) ([]models.Achievement, error) {
	return nil, nil
}
