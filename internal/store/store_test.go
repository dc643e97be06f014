package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/skillpath/internal/identity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestIdentity_MissingIsNotFound(t *testing.T) {
	repo := openTestStore(t).IdentityRepo()

	_, err := repo.UserID(context.Background())
	if !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("err = %v, want identity.ErrNotFound", err)
	}
}

func TestIdentity_SetReadClear(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).IdentityRepo()

	if err := repo.SetUserID(ctx, "user-1"); err != nil {
		t.Fatalf("SetUserID: %v", err)
	}
	got, err := repo.UserID(ctx)
	if err != nil || got != "user-1" {
		t.Fatalf("UserID = (%q, %v), want user-1", got, err)
	}

	// Logging in again replaces, never duplicates.
	if err := repo.SetUserID(ctx, "user-2"); err != nil {
		t.Fatalf("SetUserID replace: %v", err)
	}
	got, _ = repo.UserID(ctx)
	if got != "user-2" {
		t.Errorf("UserID = %q, want user-2", got)
	}

	if err := repo.ClearUserID(ctx); err != nil {
		t.Fatalf("ClearUserID: %v", err)
	}
	if _, err := repo.UserID(ctx); !errors.Is(err, identity.ErrNotFound) {
		t.Errorf("err after clear = %v, want ErrNotFound", err)
	}
}

func TestIdentity_EmptyIDRejected(t *testing.T) {
	repo := openTestStore(t).IdentityRepo()
	if err := repo.SetUserID(context.Background(), ""); err == nil {
		t.Fatal("expected error storing empty user id")
	}
}
