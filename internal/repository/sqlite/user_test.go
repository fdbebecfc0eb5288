package sqlite

import (
	"context"
	"errors"
	"testing"

	"micronotes/internal/apperror"
	"micronotes/internal/model"
)

// newTestDB returns a fresh in-memory database.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(:memory:): %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, users *UserStore, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		PasswordHash: "$2a$04$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestUserCreate_AssignsID(t *testing.T) {
	users := newTestDB(t).Users()

	first := createTestUser(t, users, "a@x.com")
	second := createTestUser(t, users, "b@x.com")

	if first.ID == 0 {
		t.Error("Create() did not assign an id")
	}
	if second.ID <= first.ID {
		t.Errorf("ids should increase: first=%d second=%d", first.ID, second.ID)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	users := newTestDB(t).Users()
	createTestUser(t, users, "a@x.com")

	dup := &model.User{Email: "a@x.com", PasswordHash: "other"}
	err := users.Create(context.Background(), dup)
	if err == nil {
		t.Fatal("Create() should fail for a duplicate email")
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	users := newTestDB(t).Users()
	created := createTestUser(t, users, "a@x.com")

	found, err := users.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}
	if found.PasswordHash != created.PasswordHash {
		t.Error("GetByEmail() should return the stored password hash")
	}
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	users := newTestDB(t).Users()

	_, err := users.GetByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUserGetByID(t *testing.T) {
	users := newTestDB(t).Users()
	created := createTestUser(t, users, "a@x.com")

	found, err := users.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", found.Email, "a@x.com")
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	users := newTestDB(t).Users()

	_, err := users.GetByID(context.Background(), 9999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
