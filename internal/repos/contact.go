package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/types"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Contact, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(contacts) == 0 {
		return []*types.Contact{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
		return nil, err
	}

	return contacts, nil
}

func (cr *contactRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact

	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact

	if len(contactIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateFields applies a partial update and reports how many rows matched,
// so callers can distinguish an absent target from a no-op.
func (cr *contactRepo) UpdateFields(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, fields map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Contact{}).
		Where("id = ?", contactID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (cr *contactRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(contactIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Delete(&types.Contact{}).Error
}
