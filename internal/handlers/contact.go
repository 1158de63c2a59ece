package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dorotad/contacts-backend/internal/services"
	"github.com/dorotad/contacts-backend/internal/validation"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (ch *ContactHandler) List(c *gin.Context) {
	contacts, err := ch.contactService.ListContacts(c.Request.Context())
	if err != nil {
		RespondUpstreamError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, http.StatusOK, gin.H{"contacts": contacts})
}

func (ch *ContactHandler) GetByID(c *gin.Context) {
	idParam := c.Param("contactId")
	contactID, err := uuid.Parse(idParam)
	if err != nil {
		respondContactNotFound(c, idParam)
		return
	}

	contact, err := ch.contactService.GetContact(c.Request.Context(), contactID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondContactNotFound(c, idParam)
			return
		}
		RespondUpstreamError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, http.StatusOK, gin.H{"contact": contact})
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (req contactRequest) fields() validation.Fields {
	return validation.Fields{
		"name":  req.Name,
		"email": req.Email,
		"phone": req.Phone,
	}
}

func (ch *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	// A malformed body falls through to validation as empty fields.
	_ = c.ShouldBindJSON(&req)

	if err := validation.Contact.Validate(req.fields()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	contact, err := ch.contactService.CreateContact(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		RespondUpstreamError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, http.StatusCreated, gin.H{"contact": contact})
}

func (ch *ContactHandler) Update(c *gin.Context) {
	idParam := c.Param("contactId")

	var req contactRequest
	_ = c.ShouldBindJSON(&req)

	// Full replace semantics: every field is required again.
	if err := validation.Contact.Validate(req.fields()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required field"})
		return
	}

	contactID, err := uuid.Parse(idParam)
	if err != nil {
		respondContactNotFound(c, idParam)
		return
	}

	contact, err := ch.contactService.UpdateContact(c.Request.Context(), contactID, req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondContactNotFound(c, idParam)
			return
		}
		RespondUpstreamError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, http.StatusOK, gin.H{"contact": contact})
}

func (ch *ContactHandler) UpdateFavorite(c *gin.Context) {
	idParam := c.Param("contactId")

	var req struct {
		Favorite *bool `json:"favorite"`
	}
	// An empty body is an absent field, not a bind error.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing field favorite"})
		return
	}
	// Absent favorite defaults to false before validation.
	favorite := false
	if req.Favorite != nil {
		favorite = *req.Favorite
	}
	if err := validation.Favorite.Validate(validation.Fields{"favorite": favorite}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing field favorite"})
		return
	}

	contactID, err := uuid.Parse(idParam)
	if err != nil {
		RespondError(c, http.StatusNotFound, http.StatusNotFound, "Not found", "Not Found")
		return
	}

	contact, err := ch.contactService.UpdateFavorite(c.Request.Context(), contactID, favorite)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RespondError(c, http.StatusNotFound, http.StatusNotFound, "Not found", "Not Found")
			return
		}
		RespondUpstreamError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, http.StatusOK, gin.H{"contact": contact})
}

func (ch *ContactHandler) Remove(c *gin.Context) {
	idParam := c.Param("contactId")
	contactID, err := uuid.Parse(idParam)
	if err != nil {
		respondContactNotFound(c, idParam)
		return
	}

	contact, err := ch.contactService.RemoveContact(c.Request.Context(), contactID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondContactNotFound(c, idParam)
			return
		}
		RespondUpstreamError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, http.StatusOK, gin.H{"contact": contact})
}

func respondContactNotFound(c *gin.Context, idParam string) {
	RespondError(c, http.StatusNotFound, http.StatusNotFound,
		fmt.Sprintf("Not found contact id: %s", idParam), "Not Found")
}
