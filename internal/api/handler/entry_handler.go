package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/financetrack/finance-api/internal/api/metrics"
	"github.com/financetrack/finance-api/internal/core/ports"
)

type EntryHandler struct {
	entryService ports.EntryService
}

func NewEntryHandler(entryService ports.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

type createEntryRequest struct {
	Title    string  `json:"title"    validate:"required"`
	Value    float64 `json:"value"    validate:"required"`
	// The original API binds this field as idUser, not id_user.
	UserID   string  `json:"idUser"   validate:"required"`
	Category string  `json:"category"`
}

type removeEntryResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// Create records a new monetary entry for a user.
//
// @Summary      Create a monetary entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body      createEntryRequest  true  "Entry details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /create/entry [post]
func (h *EntryHandler) Create(c echo.Context) error {
	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.entryService.Create(c.Request().Context(), ports.CreateEntryInput{
		Title:    req.Title,
		Value:    req.Value,
		UserID:   req.UserID,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Msg: "entry created successfully"})
}

// Remove deletes an entry by id and reports how many records went away.
//
// @Summary      Remove an entry
// @Tags         entries
// @Produce      json
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  removeEntryResponse
// @Failure      500  {object}  errorResponse
// @Router       /remove/expends/{id} [post]
func (h *EntryHandler) Remove(c echo.Context) error {
	deleted, err := h.entryService.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if deleted > 0 {
		metrics.EntriesRemovedTotal.Add(float64(deleted))
	}
	return c.JSON(http.StatusOK, removeEntryResponse{DeletedCount: deleted})
}
