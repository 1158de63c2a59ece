package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/repos"
	"github.com/dorotad/contacts-backend/internal/requestdata"
	"github.com/dorotad/contacts-backend/internal/types"
)

type ContactService interface {
	ListContacts(ctx context.Context) ([]*types.Contact, error)
	GetContact(ctx context.Context, contactID uuid.UUID) (*types.Contact, error)
	CreateContact(ctx context.Context, name, email, phone string) (*types.Contact, error)
	UpdateContact(ctx context.Context, contactID uuid.UUID, name, email, phone string) (*types.Contact, error)
	UpdateFavorite(ctx context.Context, contactID uuid.UUID, favorite bool) (*types.Contact, error)
	RemoveContact(ctx context.Context, contactID uuid.UUID) (*types.Contact, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{db: db, log: serviceLog, contactRepo: contactRepo}
}

func (cs *contactService) ListContacts(ctx context.Context) ([]*types.Contact, error) {
	contacts, err := cs.contactRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []*types.Contact{}
	}
	return contacts, nil
}

func (cs *contactService) GetContact(ctx context.Context, contactID uuid.UUID) (*types.Contact, error) {
	found, err := cs.contactRepo.GetByIDs(ctx, nil, []uuid.UUID{contactID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found[0], nil
}

// CreateContact persists a contact owned by the authenticated caller. The
// owner always comes from the request identity, never from the payload.
func (cs *contactService) CreateContact(ctx context.Context, name, email, phone string) (*types.Contact, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, ErrNoIdentity
	}

	contact := &types.Contact{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Phone: phone,
		Owner: rd.UserID,
	}
	if _, err := cs.contactRepo.Create(ctx, nil, []*types.Contact{contact}); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (cs *contactService) UpdateContact(ctx context.Context, contactID uuid.UUID, name, email, phone string) (*types.Contact, error) {
	return cs.applyUpdate(ctx, contactID, map[string]interface{}{
		"name":  name,
		"email": email,
		"phone": phone,
	})
}

func (cs *contactService) UpdateFavorite(ctx context.Context, contactID uuid.UUID, favorite bool) (*types.Contact, error) {
	return cs.applyUpdate(ctx, contactID, map[string]interface{}{
		"favorite": favorite,
	})
}

func (cs *contactService) applyUpdate(ctx context.Context, contactID uuid.UUID, fields map[string]interface{}) (*types.Contact, error) {
	affected, err := cs.contactRepo.UpdateFields(ctx, nil, contactID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	found, err := cs.contactRepo.GetByIDs(ctx, nil, []uuid.UUID{contactID})
	if err != nil {
		return nil, fmt.Errorf("failed to reload contact: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found[0], nil
}

func (cs *contactService) RemoveContact(ctx context.Context, contactID uuid.UUID) (*types.Contact, error) {
	found, err := cs.contactRepo.GetByIDs(ctx, nil, []uuid.UUID{contactID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	if err := cs.contactRepo.DeleteByIDs(ctx, nil, []uuid.UUID{contactID}); err != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}
	return found[0], nil
}
