package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/repos"
	"github.com/dorotad/contacts-backend/internal/requestdata"
)

func newContactService(t *testing.T) (ContactService, context.Context, uuid.UUID) {
	t.Helper()
	db := newTestDB(t)
	log := logger.NewNop()
	cs := NewContactService(db, log, repos.NewContactRepo(db, log))

	callerID := uuid.New()
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: callerID,
		Email:  "a@b.co",
	})
	return cs, ctx, callerID
}

func TestCreateContactOwnerComesFromIdentity(t *testing.T) {
	cs, ctx, callerID := newContactService(t)

	contact, err := cs.CreateContact(ctx, "Jan Kowalski", "jan@example.com", "+48 123 456 7890")
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if contact.Owner != callerID {
		t.Fatalf("owner %v, want caller %v", contact.Owner, callerID)
	}

	if _, err := cs.CreateContact(context.Background(), "Jan", "jan@example.com", "+48 123 456 7890"); !errors.Is(err, ErrNoIdentity) {
		t.Fatalf("create without identity: expected ErrNoIdentity, got %v", err)
	}
}

func TestContactLifecycle(t *testing.T) {
	cs, ctx, _ := newContactService(t)

	created, err := cs.CreateContact(ctx, "Jan Kowalski", "jan@example.com", "+48 123 456 7890")
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	all, err := cs.ListContacts(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListContacts: err=%v len=%d", err, len(all))
	}

	got, err := cs.GetContact(ctx, created.ID)
	if err != nil || got.Name != "Jan Kowalski" {
		t.Fatalf("GetContact: err=%v got=%+v", err, got)
	}

	updated, err := cs.UpdateContact(ctx, created.ID, "Jan Nowak", "nowak@example.com", "+48 999 888 7766")
	if err != nil || updated.Name != "Jan Nowak" {
		t.Fatalf("UpdateContact: err=%v updated=%+v", err, updated)
	}

	fav, err := cs.UpdateFavorite(ctx, created.ID, true)
	if err != nil || !fav.Favorite {
		t.Fatalf("UpdateFavorite: err=%v fav=%+v", err, fav)
	}
	// The partial patch leaves the full-update fields alone.
	if fav.Name != "Jan Nowak" {
		t.Fatalf("favorite patch touched name: %q", fav.Name)
	}

	removed, err := cs.RemoveContact(ctx, created.ID)
	if err != nil || removed.ID != created.ID {
		t.Fatalf("RemoveContact: err=%v removed=%+v", err, removed)
	}
	if _, err := cs.GetContact(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("removed contact still found: %v", err)
	}
}

func TestContactNotFoundNeverMutates(t *testing.T) {
	cs, ctx, _ := newContactService(t)
	ghost := uuid.New()

	if _, err := cs.GetContact(ctx, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetContact: expected ErrNotFound, got %v", err)
	}
	if _, err := cs.UpdateContact(ctx, ghost, "A B C", "a@b.co", "+48 123 456 7890"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateContact: expected ErrNotFound, got %v", err)
	}
	if _, err := cs.UpdateFavorite(ctx, ghost, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateFavorite: expected ErrNotFound, got %v", err)
	}
	if _, err := cs.RemoveContact(ctx, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveContact: expected ErrNotFound, got %v", err)
	}

	all, err := cs.ListContacts(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("store mutated by not-found operations: err=%v len=%d", err, len(all))
	}
}
