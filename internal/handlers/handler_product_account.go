package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
	"github.com/SscSPs/products_accounts/internal/dto"
	"github.com/SscSPs/products_accounts/internal/middleware"
	"github.com/SscSPs/products_accounts/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

type productAccountHandler struct {
	productAccountService portssvc.ProductAccountSvcFacade
}

// RegisterProductAccountRoutes registers routes related to product accounts.
func RegisterProductAccountRoutes(rg *gin.RouterGroup, productAccountService portssvc.ProductAccountSvcFacade) {
	registerBindingValidations()
	h := &productAccountHandler{productAccountService: productAccountService}

	accounts := rg.Group("/product-accounts")
	{
		accounts.GET("", h.listActiveProductAccounts)
		accounts.GET("/:id", h.getProductAccount)
		accounts.POST("", h.createProductAccount)
		accounts.PUT("/:id", h.updateProductAccount)
		accounts.PATCH("/:id/inactivate", h.inactivateProductAccount)
	}
}

func bindProductAccount(c *gin.Context, logger *slog.Logger) (dto.ProductAccountRQRS, bool) {
	var req dto.ProductAccountRQRS
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind product account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, false
	}
	if err := req.Validate(); err != nil {
		logger.Warn("Product account request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	return req, true
}

// listActiveProductAccounts godoc
// @Summary List active product accounts
// @Tags product-accounts
// @Produce  json
// @Success 200 {array} dto.ProductAccountRQRS
// @Failure 500 {object} map[string]string "Failed to list product accounts"
// @Security BearerAuth
// @Router /product-accounts [get]
func (h *productAccountHandler) listActiveProductAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.productAccountService.ListAllActives(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Product account not found", "Failed to list product accounts")
		return
	}

	c.JSON(http.StatusOK, mapping.MapToProductAccountRQRSSlice(accounts))
}

// getProductAccount godoc
// @Summary Get a product account by id
// @Tags product-accounts
// @Produce  json
// @Param   id path string true "Product account id"
// @Success 200 {object} dto.ProductAccountRQRS
// @Failure 404 {object} map[string]string "Product account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product account"
// @Security BearerAuth
// @Router /product-accounts/{id} [get]
func (h *productAccountHandler) getProductAccount(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_account_id", id))

	account, err := h.productAccountService.ObtainByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "Product account not found", "Failed to retrieve product account")
		return
	}

	c.JSON(http.StatusOK, mapping.MapToProductAccountRQRS(*account))
}

// createProductAccount godoc
// @Summary Create a product account
// @Description A missing id is replaced by a generated UUID. payInterest and acceptsChecks take "Yes" or "No".
// @Tags product-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.ProductAccountRQRS true "Product account"
// @Success 201 {object} dto.ProductAccountRQRS
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create product account"
// @Security BearerAuth
// @Router /product-accounts [post]
func (h *productAccountHandler) createProductAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	req, ok := bindProductAccount(c, logger)
	if !ok {
		return
	}

	created, err := h.productAccountService.Create(c.Request.Context(), mapping.MapToProductAccount(req))
	if err != nil {
		respondServiceError(c, logger, err, "Product account not found", "Failed to create product account")
		return
	}

	createdBy, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Product account created", slog.String("product_account_id", created.ID), slog.String("created_by", createdBy))
	c.JSON(http.StatusCreated, mapping.MapToProductAccountRQRS(*created))
}

// updateProductAccount godoc
// @Summary Replace a product account
// @Description Overwrites the stored account with the payload; the path id wins over any id in the body.
// @Tags product-accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Product account id"
// @Param   account body dto.ProductAccountRQRS true "Product account"
// @Success 200 {object} dto.ProductAccountRQRS
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product account not found"
// @Failure 500 {object} map[string]string "Failed to update product account"
// @Security BearerAuth
// @Router /product-accounts/{id} [put]
func (h *productAccountHandler) updateProductAccount(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_account_id", id))
	req, ok := bindProductAccount(c, logger)
	if !ok {
		return
	}

	updated, err := h.productAccountService.Update(c.Request.Context(), id, mapping.MapToProductAccount(req))
	if err != nil {
		respondServiceError(c, logger, err, "Product account not found", "Failed to update product account")
		return
	}

	logger.Info("Product account updated")
	c.JSON(http.StatusOK, mapping.MapToProductAccountRQRS(*updated))
}

// inactivateProductAccount godoc
// @Summary Inactivate a product account
// @Tags product-accounts
// @Produce  json
// @Param   id path string true "Product account id"
// @Success 200 {object} dto.ProductAccountRQRS
// @Failure 404 {object} map[string]string "Product account not found"
// @Failure 500 {object} map[string]string "Failed to inactivate product account"
// @Security BearerAuth
// @Router /product-accounts/{id}/inactivate [patch]
func (h *productAccountHandler) inactivateProductAccount(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_account_id", id))

	account, err := h.productAccountService.Inactivate(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "Product account not found", "Failed to inactivate product account")
		return
	}

	logger.Info("Product account inactivated")
	c.JSON(http.StatusOK, mapping.MapToProductAccountRQRS(*account))
}
