package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
	"github.com/SscSPs/products_accounts/internal/dto"
	"github.com/SscSPs/products_accounts/internal/middleware"
	"github.com/SscSPs/products_accounts/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// interestRateHandler handles HTTP requests related to interest rates.
type interestRateHandler struct {
	interestRateService portssvc.InterestRateSvcFacade
}

// RegisterInterestRateRoutes registers routes related to interest rates.
func RegisterInterestRateRoutes(rg *gin.RouterGroup, interestRateService portssvc.InterestRateSvcFacade) {
	registerBindingValidations()
	h := &interestRateHandler{interestRateService: interestRateService}

	rates := rg.Group("/interest-rates")
	{
		rates.GET("", h.listActiveInterestRates)
		rates.GET("/:id", h.getInterestRate)
		rates.POST("", h.createInterestRate)
		rates.PUT("/:id", h.updateInterestRate)
		rates.PATCH("/:id/inactivate", h.inactivateInterestRate)
	}
}

// pathInterestRateID reads the :id path parameter, answering 400 when it is not an integer.
func pathInterestRateID(c *gin.Context, logger *slog.Logger) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		logger.Warn("Invalid interest rate id in path", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Interest rate id must be an integer"})
		return 0, false
	}
	return id, true
}

// bindInterestRate binds and validates the request body, answering 400 on failure.
func bindInterestRate(c *gin.Context, logger *slog.Logger) (dto.InterestRateRQRS, bool) {
	var req dto.InterestRateRQRS
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind interest rate request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, false
	}
	if err := req.Validate(); err != nil {
		logger.Warn("Interest rate request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	return req, true
}

// listActiveInterestRates godoc
// @Summary List active interest rates
// @Tags interest-rates
// @Produce  json
// @Success 200 {array} dto.InterestRateRQRS
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list interest rates"
// @Security BearerAuth
// @Router /interest-rates [get]
func (h *interestRateHandler) listActiveInterestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.interestRateService.ListAllActives(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Interest rate not found", "Failed to list interest rates")
		return
	}

	c.JSON(http.StatusOK, mapping.MapToInterestRateRQRSSlice(rates))
}

// getInterestRate godoc
// @Summary Get an interest rate by id
// @Tags interest-rates
// @Produce  json
// @Param   id path int true "Interest rate id"
// @Success 200 {object} dto.InterestRateRQRS
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Interest rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve interest rate"
// @Security BearerAuth
// @Router /interest-rates/{id} [get]
func (h *interestRateHandler) getInterestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := pathInterestRateID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int("interest_rate_id", id))

	rate, err := h.interestRateService.ObtainByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "Interest rate not found", "Failed to retrieve interest rate")
		return
	}

	c.JSON(http.StatusOK, mapping.MapToInterestRateRQRS(*rate))
}

// createInterestRate godoc
// @Summary Create an interest rate
// @Description The id is assigned by the server; a missing state defaults to ACT.
// @Tags interest-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.InterestRateRQRS true "Interest rate"
// @Success 201 {object} dto.InterestRateRQRS
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create interest rate"
// @Security BearerAuth
// @Router /interest-rates [post]
func (h *interestRateHandler) createInterestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	req, ok := bindInterestRate(c, logger)
	if !ok {
		return
	}
	rate := mapping.MapToInterestRate(req)
	rate.ID = 0

	created, err := h.interestRateService.Create(c.Request.Context(), rate)
	if err != nil {
		respondServiceError(c, logger, err, "Interest rate not found", "Failed to create interest rate")
		return
	}

	createdBy, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Interest rate created", slog.Int("interest_rate_id", created.ID), slog.String("created_by", createdBy))
	c.JSON(http.StatusCreated, mapping.MapToInterestRateRQRS(*created))
}

// updateInterestRate godoc
// @Summary Replace an interest rate
// @Description Overwrites the stored rate with the payload; the path id wins over any id in the body.
// @Tags interest-rates
// @Accept  json
// @Produce  json
// @Param   id path int true "Interest rate id"
// @Param   rate body dto.InterestRateRQRS true "Interest rate"
// @Success 200 {object} dto.InterestRateRQRS
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Interest rate not found"
// @Failure 500 {object} map[string]string "Failed to update interest rate"
// @Security BearerAuth
// @Router /interest-rates/{id} [put]
func (h *interestRateHandler) updateInterestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := pathInterestRateID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int("interest_rate_id", id))
	req, ok := bindInterestRate(c, logger)
	if !ok {
		return
	}

	updated, err := h.interestRateService.Update(c.Request.Context(), id, mapping.MapToInterestRate(req))
	if err != nil {
		respondServiceError(c, logger, err, "Interest rate not found", "Failed to update interest rate")
		return
	}

	logger.Info("Interest rate updated")
	c.JSON(http.StatusOK, mapping.MapToInterestRateRQRS(*updated))
}

// inactivateInterestRate godoc
// @Summary Inactivate an interest rate
// @Tags interest-rates
// @Produce  json
// @Param   id path int true "Interest rate id"
// @Success 200 {object} dto.InterestRateRQRS
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Interest rate not found"
// @Failure 500 {object} map[string]string "Failed to inactivate interest rate"
// @Security BearerAuth
// @Router /interest-rates/{id}/inactivate [patch]
func (h *interestRateHandler) inactivateInterestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := pathInterestRateID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int("interest_rate_id", id))

	rate, err := h.interestRateService.Inactivate(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "Interest rate not found", "Failed to inactivate interest rate")
		return
	}

	logger.Info("Interest rate inactivated")
	c.JSON(http.StatusOK, mapping.MapToInterestRateRQRS(*rate))
}
