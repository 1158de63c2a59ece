package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/types"
)

func makeUser(email string) *types.User {
	token := uuid.New().String()
	return &types.User{
		ID:                uuid.New(),
		Email:             email,
		Password:          "hash",
		Subscription:      types.DefaultSubscription,
		VerificationToken: &token,
	}
}

func TestUserRepo(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db, logger.NewNop())

	u := makeUser("a@b.co")
	if _, err := repo.Create(ctx, nil, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, nil, []uuid.UUID{u.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByEmails(ctx, nil, []string{"a@b.co"}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByEmails: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByVerificationTokens(ctx, nil, []string{*u.VerificationToken}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByVerificationTokens: err=%v len=%d", err, len(rows))
	}

	exists, err := repo.EmailExists(ctx, nil, "a@b.co")
	if err != nil || !exists {
		t.Fatalf("EmailExists existing: err=%v exists=%v", err, exists)
	}
	exists, err = repo.EmailExists(ctx, nil, "nobody@b.co")
	if err != nil || exists {
		t.Fatalf("EmailExists absent: err=%v exists=%v", err, exists)
	}
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db, logger.NewNop())

	if _, err := repo.Create(ctx, nil, []*types.User{makeUser("dup@b.co")}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// The unique index, not the pre-check, is the source of truth for signup
	// uniqueness. A second insert must surface as a translated conflict.
	_, err := repo.Create(ctx, nil, []*types.User{makeUser("dup@b.co")})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestUserRepoUpdateFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db, logger.NewNop())

	u := makeUser("v@b.co")
	if _, err := repo.Create(ctx, nil, []*types.User{u}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	err := repo.UpdateFields(ctx, nil, u.ID, map[string]interface{}{
		"verification_token": nil,
		"verify":             true,
		"token":              "session-token",
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	rows, err := repo.GetByIDs(ctx, nil, []uuid.UUID{u.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("reload: err=%v len=%d", err, len(rows))
	}
	got := rows[0]
	if got.VerificationToken != nil {
		t.Fatalf("verification token not nulled: %v", *got.VerificationToken)
	}
	if !got.Verify {
		t.Fatalf("verify flag not set")
	}
	if got.Token != "session-token" {
		t.Fatalf("token not stored: %q", got.Token)
	}
}
