package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/imoveis-app/imoveis_backend/internal/apperrors"
	portssvc "github.com/imoveis-app/imoveis_backend/internal/core/ports/services"
	"github.com/imoveis-app/imoveis_backend/internal/dto"
	"github.com/imoveis-app/imoveis_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// propertyHandler handles HTTP requests related to properties.
type propertyHandler struct {
	propertyService    portssvc.PropertySvcFacade
	transactionService portssvc.TransactionSvcFacade
	importService      portssvc.ImportSvcFacade
}

// newPropertyHandler creates a new propertyHandler.
func newPropertyHandler(ps portssvc.PropertySvcFacade, ts portssvc.TransactionSvcFacade, is portssvc.ImportSvcFacade) *propertyHandler {
	return &propertyHandler{
		propertyService:    ps,
		transactionService: ts,
		importService:      is,
	}
}

// RegisterPropertyRoutes registers routes related to properties.
func RegisterPropertyRoutes(rg *gin.RouterGroup, ps portssvc.PropertySvcFacade, ts portssvc.TransactionSvcFacade, is portssvc.ImportSvcFacade) {
	h := newPropertyHandler(ps, ts, is)

	properties := rg.Group("/properties")
	{
		properties.POST("", h.createProperty)
		properties.GET("", h.listProperties)
		properties.POST("/import", h.importProperties)
		properties.GET("/:propertyID", h.getProperty)
		properties.PATCH("/:propertyID", h.updateProperty)
		properties.DELETE("/:propertyID", h.deleteProperty)
		properties.GET("/:propertyID/transactions", h.listPropertyTransactions)
	}
}

// createProperty godoc
// @Summary Create a new property
// @Description Adds a leasable unit to the portfolio
// @Tags properties
// @Accept  json
// @Produce  json
// @Param   property body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create property"
// @Security BearerAuth
// @Router /properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.propertyService.CreateProperty(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create property in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	logger.Info("Property created successfully", slog.String("property_id", created.PropertyID))
	c.JSON(http.StatusCreated, dto.ToPropertyResponse(created))
}

// listProperties godoc
// @Summary List all properties
// @Description Retrieves the full portfolio
// @Tags properties
// @Produce  json
// @Success 200 {array} dto.PropertyResponse
// @Failure 500 {object} map[string]string "Failed to list properties"
// @Security BearerAuth
// @Router /properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list properties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPropertyResponse(properties))
}

// getProperty godoc
// @Summary Get a property by ID
// @Tags properties
// @Produce  json
// @Param   propertyID path string true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to retrieve property"
// @Security BearerAuth
// @Router /properties/{propertyID} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		logger.Error("Failed to get property from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// updateProperty godoc
// @Summary Partially update a property
// @Description Applies merge semantics: only the supplied fields change
// @Tags properties
// @Accept  json
// @Produce  json
// @Param   propertyID path string true "Property ID"
// @Param   property body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to update property"
// @Security BearerAuth
// @Router /properties/{propertyID} [patch]
func (h *propertyHandler) updateProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.propertyService.UpdateProperty(c.Request.Context(), propertyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		logger.Error("Failed to update property in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	logger.Info("Property updated successfully", slog.String("property_id", propertyID))
	c.JSON(http.StatusOK, dto.ToPropertyResponse(updated))
}

// deleteProperty godoc
// @Summary Delete a property
// @Description Removes a property and cascades to all its transactions
// @Tags properties
// @Produce  json
// @Param   propertyID path string true "Property ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to delete property"
// @Security BearerAuth
// @Router /properties/{propertyID} [delete]
func (h *propertyHandler) deleteProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	if err := h.propertyService.DeleteProperty(c.Request.Context(), propertyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		logger.Error("Failed to delete property in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	logger.Info("Property deleted successfully", slog.String("property_id", propertyID))
	c.Status(http.StatusNoContent)
}

// listPropertyTransactions godoc
// @Summary List a property's transactions
// @Tags properties
// @Produce  json
// @Param   propertyID path string true "Property ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /properties/{propertyID}/transactions [get]
func (h *propertyHandler) listPropertyTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	transactions, err := h.transactionService.ListTransactionsByProperty(c.Request.Context(), propertyID)
	if err != nil {
		logger.Error("Failed to list property transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(transactions))
}

// importProperties godoc
// @Summary Import properties from a spreadsheet
// @Description Reads an .xlsx upload (field "file"), one property per row
// @Tags properties
// @Accept  mpfd
// @Produce  json
// @Param   file formData file true "Portfolio workbook (.xlsx)"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} map[string]string "Invalid upload"
// @Failure 500 {object} map[string]string "Failed to import properties"
// @Security BearerAuth
// @Router /properties/import [post]
func (h *propertyHandler) importProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload a workbook in the 'file' form field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	summary, err := h.importService.ImportProperties(c.Request.Context(), file)
	if err != nil {
		logger.Error("Failed to import properties", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to import workbook: " + err.Error()})
		return
	}

	logger.Info("Properties imported", slog.Int("imported", summary.Imported), slog.Int("skipped", summary.Skipped))
	c.JSON(http.StatusOK, summary)
}
