// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/usecase/entry"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
	"github.com/smartspend/backend/internal/integration/entrypoint/middleware"
)

// EntryController handles ledger entry endpoints.
type EntryController struct {
	recordUseCase *entry.RecordEntryUseCase
	listUseCase   *entry.ListEntriesUseCase
	getUseCase    *entry.GetEntryUseCase
	updateUseCase *entry.UpdateEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	recordUseCase *entry.RecordEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Record handles POST /entries requests.
func (c *EntryController) Record(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEntryMissingFields),
		})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), entry.RecordEntryInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Direction:   entity.EntryDirection(req.Direction),
		OccurredAt:  req.OccurredAt,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordEntryResponse{
		Entry:                 dto.ToEntryResponse(output.Entry),
		CategorizationPending: output.CategorizationPending,
	})
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var query dto.ListEntriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeEntryMissingFields),
		})
		return
	}

	input := entry.ListEntriesInput{
		UserID:    userID,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	}
	if query.Status != nil {
		status := entity.EntryStatus(*query.Status)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), entry.GetEntryInput{
		UserID:  userID,
		EntryID: entryID,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEntryMissingFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), entry.UpdateEntryInput{
		UserID:      userID,
		EntryID:     entryID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		OccurredAt:  req.OccurredAt,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		UserID:  userID,
		EntryID: entryID,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleEntryError maps entry errors to HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(c.getStatusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var securityErr *domainerror.SecurityError
	if errors.As(err, &securityErr) {
		// Never leak cipher details to the client
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDirection,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeNotesTooLong,
		domainerror.ErrCodeEntryMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEntryAccessDenied:
		return http.StatusForbidden
	case domainerror.ErrCodeBudgetApplyFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID extracts the authenticated user's ID from the context set
// by the auth middleware.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id",
		})
		return uuid.Nil, false
	}
	return id, true
}
