package services

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dorotad/contacts-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.Contact{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// fakeEmailService records dispatches and can simulate mailer failure.
type fakeEmailService struct {
	sent []string
	err  error
}

func (f *fakeEmailService) SendVerificationEmail(ctx context.Context, toEmail, verificationToken string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, toEmail+":"+verificationToken)
	return nil
}
