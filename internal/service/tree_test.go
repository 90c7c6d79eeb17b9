package service

import (
	"context"
	"testing"

	"inkwell/internal/domain/models"
)

// buildTreeFixture creates:
//
//	Work/
//	  Projects/
//	    ProjectEntry
//	Hidden/         (is_hidden)
//	  Nested/
//	RootEntry       (unfiled)
func buildTreeFixture(t *testing.T, store *memStore) {
	t.Helper()
	ctx := context.Background()
	folders := &fakeFolderRepo{store: store}
	journals := &fakeJournalRepo{store: store}

	work := &models.Folder{UserID: "u1", Name: "Work"}
	if err := folders.Create(ctx, work); err != nil {
		t.Fatal(err)
	}
	projects := &models.Folder{UserID: "u1", ParentID: &work.ID, Name: "Projects"}
	if err := folders.Create(ctx, projects); err != nil {
		t.Fatal(err)
	}
	hidden := &models.Folder{UserID: "u1", Name: "Hidden", IsHidden: true}
	if err := folders.Create(ctx, hidden); err != nil {
		t.Fatal(err)
	}
	nested := &models.Folder{UserID: "u1", ParentID: &hidden.ID, Name: "Nested"}
	if err := folders.Create(ctx, nested); err != nil {
		t.Fatal(err)
	}

	if err := journals.Create(ctx, &models.JournalEntry{UserID: "u1", Title: "ProjectEntry", FolderID: &projects.ID}); err != nil {
		t.Fatal(err)
	}
	if err := journals.Create(ctx, &models.JournalEntry{UserID: "u1", Title: "RootEntry"}); err != nil {
		t.Fatal(err)
	}

	// Another user's data never leaks into the projection
	other := &models.Folder{UserID: "u2", Name: "Foreign"}
	if err := folders.Create(ctx, other); err != nil {
		t.Fatal(err)
	}
}

func findNode(nodes []*models.FolderTreeNode, name string) *models.FolderTreeNode {
	for _, node := range nodes {
		if node.Name == name {
			return node
		}
	}
	return nil
}

func TestBuildTree(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	buildTreeFixture(t, store)
	svc := NewTreeService(&fakeFolderRepo{store: store}, &fakeJournalRepo{store: store}, newTestLogger())

	tree, err := svc.BuildTree(ctx, "u1", false)
	if err != nil {
		t.Fatal(err)
	}

	// Hidden subtree pruned: only Work at the root
	if len(tree.Folders) != 1 {
		t.Fatalf("expected 1 root folder, got %d", len(tree.Folders))
	}
	work := findNode(tree.Folders, "Work")
	if work == nil {
		t.Fatal("Work missing from tree")
	}
	if findNode(tree.Folders, "Foreign") != nil {
		t.Fatal("foreign folder leaked into the tree")
	}

	projects := findNode(work.Folders, "Projects")
	if projects == nil {
		t.Fatal("Projects missing under Work")
	}
	if len(projects.Journals) != 1 || projects.Journals[0].Title != "ProjectEntry" {
		t.Errorf("expected ProjectEntry under Projects, got %+v", projects.Journals)
	}

	// Unfiled entries collect at the root
	if len(tree.Journals) != 1 || tree.Journals[0].Title != "RootEntry" {
		t.Errorf("expected RootEntry unfiled at root, got %+v", tree.Journals)
	}
}

func TestBuildTreeShowHidden(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	buildTreeFixture(t, store)
	svc := NewTreeService(&fakeFolderRepo{store: store}, &fakeJournalRepo{store: store}, newTestLogger())

	tree, err := svc.BuildTree(ctx, "u1", true)
	if err != nil {
		t.Fatal(err)
	}

	if len(tree.Folders) != 2 {
		t.Fatalf("expected 2 root folders with hidden included, got %d", len(tree.Folders))
	}
	hidden := findNode(tree.Folders, "Hidden")
	if hidden == nil {
		t.Fatal("Hidden missing when includeHidden is set")
	}
	if findNode(hidden.Folders, "Nested") == nil {
		t.Error("Nested missing under Hidden")
	}
}

func TestBuildTreeDeepNestingIsIterative(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	folders := &fakeFolderRepo{store: store}

	// A chain far deeper than any stack-based build would survive
	var parent *string
	for i := 0; i < 10000; i++ {
		f := &models.Folder{UserID: "u1", ParentID: parent, Name: "deep"}
		if err := folders.Create(ctx, f); err != nil {
			t.Fatal(err)
		}
		parent = &f.ID
	}

	svc := NewTreeService(folders, &fakeJournalRepo{store: store}, newTestLogger())
	tree, err := svc.BuildTree(ctx, "u1", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Folders) != 1 {
		t.Fatalf("expected a single root, got %d", len(tree.Folders))
	}

	depth := 0
	for node := tree.Folders[0]; node != nil; {
		depth++
		if len(node.Folders) == 0 {
			break
		}
		node = node.Folders[0]
	}
	if depth != 10000 {
		t.Errorf("expected depth 10000, got %d", depth)
	}
}

func TestBuildTreeSiblingOrderIsSorted(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	folders := &fakeFolderRepo{store: store}

	parent := &models.Folder{UserID: "u1", Name: "parent"}
	if err := folders.Create(ctx, parent); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"delta", "alpha", "echo", "bravo", "charlie"} {
		f := &models.Folder{UserID: "u1", ParentID: &parent.ID, Name: name}
		if err := folders.Create(ctx, f); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"alpha", "bravo", "charlie", "delta", "echo"}

	svc := NewTreeService(folders, &fakeJournalRepo{store: store}, newTestLogger())

	// Sibling order must match the store's name sort on every build, not
	// vary per request.
	for run := 0; run < 20; run++ {
		tree, err := svc.BuildTree(ctx, "u1", false)
		if err != nil {
			t.Fatal(err)
		}
		node := findNode(tree.Folders, "parent")
		if node == nil {
			t.Fatal("parent missing from tree")
		}
		if len(node.Folders) != len(want) {
			t.Fatalf("expected %d siblings, got %d", len(want), len(node.Folders))
		}
		for i, child := range node.Folders {
			if child.Name != want[i] {
				t.Fatalf("run %d: expected %q at position %d, got %q", run, want[i], i, child.Name)
			}
		}
	}
}

func TestBuildTreeOrphanSurfacesAtRoot(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	missing := "gone"
	store.folders["orphan"] = &models.Folder{ID: "orphan", UserID: "u1", ParentID: &missing, Name: "Orphan"}

	svc := NewTreeService(&fakeFolderRepo{store: store}, &fakeJournalRepo{store: store}, newTestLogger())
	tree, err := svc.BuildTree(ctx, "u1", false)
	if err != nil {
		t.Fatal(err)
	}
	if findNode(tree.Folders, "Orphan") == nil {
		t.Error("folder with missing parent should surface at root, not vanish")
	}
}
