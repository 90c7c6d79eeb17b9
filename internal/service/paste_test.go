package service

import (
	"context"
	"testing"

	"inkwell/internal/domain/models"
	"inkwell/internal/domain/services"
)

// buildClipboardFixture creates:
//
//	Root/
//	  Sub/
//	    J2
//	  J1
//	Dest/
func buildClipboardFixture(t *testing.T, store *memStore) (root, sub, dest *models.Folder, j1, j2 *models.JournalEntry) {
	t.Helper()
	ctx := context.Background()
	folders := &fakeFolderRepo{store: store}
	journals := &fakeJournalRepo{store: store}

	root = &models.Folder{UserID: "u1", Name: "Root", Color: "#abcdef"}
	if err := folders.Create(ctx, root); err != nil {
		t.Fatal(err)
	}
	sub = &models.Folder{UserID: "u1", ParentID: &root.ID, Name: "Sub", IsHidden: true}
	if err := folders.Create(ctx, sub); err != nil {
		t.Fatal(err)
	}
	dest = &models.Folder{UserID: "u1", Name: "Dest"}
	if err := folders.Create(ctx, dest); err != nil {
		t.Fatal(err)
	}

	j1 = &models.JournalEntry{UserID: "u1", Title: "J1", FolderID: &root.ID, MoodTag: models.MoodHappy}
	j2 = &models.JournalEntry{UserID: "u1", Title: "J2", FolderID: &sub.ID, IsLocked: true}
	for _, j := range []*models.JournalEntry{j1, j2} {
		if err := journals.Create(ctx, j); err != nil {
			t.Fatal(err)
		}
	}
	return root, sub, dest, j1, j2
}

func TestPasteCopyRecursive(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestFolderService(store)
	root, _, dest, _, _ := buildClipboardFixture(t, store)

	results, err := svc.Paste(ctx, "u1", dest.ID, &services.PasteRequest{
		FolderIDs: []string{root.ID},
		Operation: models.PasteCopy,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	res := results[0]
	if res.Status != models.PasteStatusCopied || res.NewID == "" {
		t.Fatalf("expected copied with new id, got %+v", res)
	}

	// The original is untouched
	if store.folders[root.ID].ParentID != nil {
		t.Error("source folder must stay in place on copy")
	}

	// New root sits in dest with the copy suffix
	newRoot := store.folders[res.NewID]
	if newRoot == nil {
		t.Fatal("copied folder missing from store")
	}
	if newRoot.Name != "Root (Copy)" {
		t.Errorf("expected 'Root (Copy)', got %q", newRoot.Name)
	}
	if newRoot.ParentID == nil || *newRoot.ParentID != dest.ID {
		t.Error("copied folder should live in the destination")
	}
	if newRoot.Color != "#abcdef" {
		t.Error("copy should preserve color")
	}

	// Whole subtree came along: Sub under the new root gets the copy suffix
	// too, with flags intact
	folders := &fakeFolderRepo{store: store}
	children, _ := folders.ListChildren(ctx, &newRoot.ID, "u1")
	if len(children) != 1 || children[0].Name != "Sub (Copy)" {
		t.Fatalf("expected nested 'Sub (Copy)', got %+v", children)
	}
	if !children[0].IsHidden {
		t.Error("copied subfolder should keep its hidden flag")
	}

	// Journals copied at both levels carry the suffix at every depth
	journals := &fakeJournalRepo{store: store}
	inRoot, _ := journals.ListByFolder(ctx, &newRoot.ID, "u1")
	if len(inRoot) != 1 || inRoot[0].Title != "J1 (Copy)" {
		t.Fatalf("expected 'J1 (Copy)' in new root, got %+v", inRoot)
	}
	inSub, _ := journals.ListByFolder(ctx, &children[0].ID, "u1")
	if len(inSub) != 1 || inSub[0].Title != "J2 (Copy)" {
		t.Fatalf("expected 'J2 (Copy)' in new sub, got %+v", inSub)
	}
	if !inSub[0].IsLocked {
		t.Error("copied journal should keep its lock flag")
	}

	// 3 original folders + 2 copies, 2 original journals + 2 copies
	if len(store.folders) != 5 {
		t.Errorf("expected 5 folders, got %d", len(store.folders))
	}
	if len(store.journals) != 4 {
		t.Errorf("expected 4 journals, got %d", len(store.journals))
	}
}

func TestPasteMove(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestFolderService(store)
	root, _, dest, j1, _ := buildClipboardFixture(t, store)

	results, err := svc.Paste(ctx, "u1", dest.ID, &services.PasteRequest{
		FolderIDs:  []string{root.ID},
		JournalIDs: []string{j1.ID},
		Operation:  models.PasteMove,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, res := range results {
		if res.Status != models.PasteStatusMoved {
			t.Fatalf("expected moved, got %+v", res)
		}
	}

	if got := store.folders[root.ID].ParentID; got == nil || *got != dest.ID {
		t.Error("folder should be reparented to the destination")
	}
	if got := store.journals[j1.ID].FolderID; got == nil || *got != dest.ID {
		t.Error("journal should be refiled into the destination")
	}
	// Move never duplicates
	if len(store.folders) != 3 || len(store.journals) != 2 {
		t.Error("move must not create copies")
	}
}

func TestPasteSkipsBadItems(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestFolderService(store)
	root, sub, dest, _, _ := buildClipboardFixture(t, store)

	results, err := svc.Paste(ctx, "u1", sub.ID, &services.PasteRequest{
		FolderIDs:  []string{root.ID, "missing", dest.ID},
		JournalIDs: []string{"also-missing"},
		Operation:  models.PasteMove,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	byID := map[string]models.PasteItemResult{}
	for _, res := range results {
		byID[res.ID] = res
	}

	// Moving Root into its own descendant Sub is skipped, not an error
	if res := byID[root.ID]; res.Status != models.PasteStatusSkipped || res.Reason == "" {
		t.Errorf("expected skip with reason for subtree move, got %+v", res)
	}
	if res := byID["missing"]; res.Status != models.PasteStatusSkipped {
		t.Errorf("expected skip for missing folder, got %+v", res)
	}
	if res := byID["also-missing"]; res.Status != models.PasteStatusSkipped {
		t.Errorf("expected skip for missing journal, got %+v", res)
	}

	// The valid item in the batch still lands
	if res := byID[dest.ID]; res.Status != models.PasteStatusMoved {
		t.Errorf("expected Dest to move despite skips, got %+v", res)
	}
}

func TestPasteValidation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestFolderService(store)
	_, _, dest, _, _ := buildClipboardFixture(t, store)

	if _, err := svc.Paste(ctx, "u1", dest.ID, &services.PasteRequest{
		FolderIDs: []string{"x"},
		Operation: "duplicate",
	}); err == nil {
		t.Error("unknown operation should be rejected")
	}

	if _, err := svc.Paste(ctx, "u1", dest.ID, &services.PasteRequest{
		Operation: models.PasteCopy,
	}); err == nil {
		t.Error("empty clipboard should be rejected")
	}

	if _, err := svc.Paste(ctx, "u1", "missing", &services.PasteRequest{
		FolderIDs: []string{"x"},
		Operation: models.PasteCopy,
	}); err == nil {
		t.Error("bad destination should fail the whole call")
	}
}

func TestPasteJournalCopySuffix(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestFolderService(store)
	_, _, dest, j1, _ := buildClipboardFixture(t, store)

	results, err := svc.Paste(ctx, "u1", dest.ID, &services.PasteRequest{
		JournalIDs: []string{j1.ID},
		Operation:  models.PasteCopy,
	})
	if err != nil {
		t.Fatal(err)
	}
	res := results[0]
	if res.Status != models.PasteStatusCopied {
		t.Fatalf("expected copied, got %+v", res)
	}

	clone := store.journals[res.NewID]
	if clone == nil {
		t.Fatal("journal copy missing")
	}
	if clone.Title != "J1 (Copy)" {
		t.Errorf("expected 'J1 (Copy)', got %q", clone.Title)
	}
	if clone.MoodTag != models.MoodHappy {
		t.Error("copy should keep the mood tag")
	}
	if store.journals[j1.ID].FolderID == nil {
		t.Error("source journal must stay in place on copy")
	}
}
