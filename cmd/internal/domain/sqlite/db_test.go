package sqlite

import (
	"context"
	"path/filepath"
	"simpleblog/cmd/internal/domain/entity"
	"testing"
)

func TestResetSeedsFixtures(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ctx := context.Background()

	empty, err := IsEmpty(ctx, db)
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if !empty {
		t.Fatal("expected fresh database to be empty")
	}

	// Stray rows must not survive a reset
	if err := db.Create(&entity.User{Username: "stray", Password: "x"}).Error; err != nil {
		t.Fatalf("failed to insert stray user: %v", err)
	}

	if err := Reset(ctx, db); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	var notes []entity.Note
	if err := db.Order("id").Find(&notes).Error; err != nil {
		t.Fatalf("failed to read notes: %v", err)
	}
	if len(notes) != 4 {
		t.Fatalf("expected 4 notes, got %d", len(notes))
	}
	for i, n := range notes {
		if n.ID != i+1 {
			t.Errorf("expected note %d to have id %d, got %d", i, i+1, n.ID)
		}
	}
	if notes[1].Permission != entity.PermissionUser {
		t.Errorf("expected note 2 to require user level, got %s", notes[1].Permission)
	}
	if notes[2].Permission != entity.PermissionAdmin || notes[2].ViewNum != 1 || notes[2].CommentNum != 1 {
		t.Errorf("unexpected admin note fixture: %+v", notes[2])
	}

	var users []entity.User
	if err := db.Order("username").Find(&users).Error; err != nil {
		t.Fatalf("failed to read users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}

	var admin entity.User
	if err := db.First(&admin, "username = ?", "admin").Error; err != nil {
		t.Fatalf("admin fixture missing: %v", err)
	}
	if admin.Permission != entity.PermissionAdmin {
		t.Errorf("expected admin level, got %s", admin.Permission)
	}

	var comments []entity.Comment
	if err := db.Find(&comments).Error; err != nil {
		t.Fatalf("failed to read comments: %v", err)
	}
	if len(comments) != 1 || comments[0].BelongTo != 3 {
		t.Errorf("unexpected comment fixtures: %+v", comments)
	}
}

func TestSeedIfEmptyKeepsExistingData(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ctx := context.Background()

	seeded, err := SeedIfEmpty(ctx, db)
	if err != nil || !seeded {
		t.Fatalf("expected first call to seed, got %v, %v", seeded, err)
	}

	if err := db.Model(&entity.Note{}).Where("id = ?", 1).Update("title", "kept").Error; err != nil {
		t.Fatalf("failed to edit note: %v", err)
	}

	seeded, err = SeedIfEmpty(ctx, db)
	if err != nil || seeded {
		t.Fatalf("expected second call to be a no-op, got %v, %v", seeded, err)
	}

	var note entity.Note
	if err := db.First(&note, 1).Error; err != nil {
		t.Fatalf("failed to load note: %v", err)
	}
	if note.Title != "kept" {
		t.Errorf("expected existing data to survive, got title %q", note.Title)
	}
}

func TestSeedIfEmptyKeepsRegisteredUsers(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ctx := context.Background()

	if err := db.Create(&entity.User{Username: "bob", Password: "secret1", Permission: entity.PermissionUser}).Error; err != nil {
		t.Fatalf("failed to register user: %v", err)
	}

	seeded, err := SeedIfEmpty(ctx, db)
	if err != nil || seeded {
		t.Fatalf("expected database with a user to be left alone, got %v, %v", seeded, err)
	}

	var users []entity.User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("failed to read users: %v", err)
	}
	if len(users) != 1 || users[0].Username != "bob" {
		t.Errorf("expected bob to survive, got %+v", users)
	}
}

func TestIsEmptyCountsComments(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := db.Create(&entity.Comment{BelongTo: 9, Nickname: "n", Body: "b"}).Error; err != nil {
		t.Fatalf("failed to insert comment: %v", err)
	}

	empty, err := IsEmpty(context.Background(), db)
	if err != nil || empty {
		t.Errorf("expected stray comment to count as data, got %v, %v", empty, err)
	}
}
