package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finbook/voucher_backend/internal/apperrors"
	"github.com/finbook/voucher_backend/internal/core/domain"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/core/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/finbook/voucher_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
	}
}

// registerVoucherRoutes sets up the routes for voucher generation and management.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.GET("/generate", h.generatePreview)
		vouchers.GET("/pending-dates", h.listPendingDates)
		vouchers.POST("", h.saveVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.PUT("/resync", h.resyncVoucher)
		vouchers.PUT("/:voucherID/clear", h.clearVoucher)
		vouchers.PUT("/prepared-by", h.backfillPreparedBy)
	}
}

// parseVoucherQuery extracts and validates the date and type query params
// shared by the generation endpoints.
func parseVoucherQuery(c *gin.Context) (time.Time, domain.ExpenseType, bool) {
	expenseType := domain.ExpenseType(c.Query("type"))
	if !expenseType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be PETTY_CASH or CASH_VOUCHER"})
		return time.Time{}, "", false
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, "", false
	}

	return date, expenseType, true
}

// generatePreview godoc
// @Summary Generate a voucher preview
// @Description Aggregates the day's unvouchered expenses of the given type into a voucher preview. Nothing is persisted; repeating the call yields the same preview.
// @Tags vouchers
// @Produce json
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Param type query string true "PETTY_CASH or CASH_VOUCHER"
// @Success 200 {object} dto.VoucherPreview
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No unvouchered expenses for that date"
// @Failure 500 {object} ErrorResponse
// @Router /vouchers/generate [get]
func (h *voucherHandler) generatePreview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, expenseType, ok := parseVoucherQuery(c)
	if !ok {
		return
	}

	preview, err := h.voucherService.GeneratePreview(c.Request.Context(), date, expenseType)
	if err != nil {
		if errors.Is(err, services.ErrNoPendingRecords) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrInvalidVoucherDay) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to generate voucher preview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate voucher"})
		return
	}

	c.JSON(http.StatusOK, preview)
}

// listPendingDates godoc
// @Summary List dates with unvouchered expenses
// @Description Returns the distinct dates, newest first, that still have unvouchered expenses of the given type.
// @Tags vouchers
// @Produce json
// @Param type query string true "PETTY_CASH or CASH_VOUCHER"
// @Success 200 {object} dto.PendingDatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /vouchers/pending-dates [get]
func (h *voucherHandler) listPendingDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenseType := domain.ExpenseType(c.Query("type"))
	if !expenseType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be PETTY_CASH or CASH_VOUCHER"})
		return
	}

	dates, err := h.voucherService.ListPendingDates(c.Request.Context(), expenseType)
	if err != nil {
		logger.Error("Failed to list pending dates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending dates"})
		return
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	c.JSON(http.StatusOK, dto.PendingDatesResponse{Dates: formatted})
}

// saveVoucher godoc
// @Summary Save a previewed voucher
// @Description Persists the voucher and links its source expenses atomically. A serial collision from a concurrent save returns 409; retry generation for a fresh serial.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.SaveVoucherRequest true "Voucher to save"
// @Success 201 {object} dto.SaveVoucherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Serial number already exists"
// @Failure 500 {object} ErrorResponse
// @Router /vouchers [post]
func (h *voucherHandler) saveVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for saveVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.SaveVoucher(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A voucher with this serial number already exists"})
			return
		}
		logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("serial", req.Serial))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save voucher"})
		return
	}

	c.JSON(http.StatusCreated, dto.SaveVoucherResponse{
		VoucherID:    voucher.VoucherID,
		SerialNumber: voucher.SerialNumber,
	})
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves all vouchers. Recently created vouchers are displayed with freshly recomputed items and totals.
// @Tags vouchers
// @Produce json
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 500 {object} ErrorResponse
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		return
	}

	c.JSON(http.StatusOK, dto.ListVouchersResponse{Vouchers: vouchers})
}

// resyncVoucher godoc
// @Summary Resync a voucher
// @Description Re-aggregates the voucher from its currently linked expenses, persists the fresh items and total, and clears its needs-sync flag.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param resync body dto.ResyncVoucherRequest true "Voucher serial to resync"
// @Success 200 {object} dto.ResyncVoucherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Voucher not found or has no linked expenses"
// @Failure 500 {object} ErrorResponse
// @Router /vouchers/resync [put]
func (h *voucherHandler) resyncVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResyncVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	newTotal, err := h.voucherService.ResyncVoucher(c.Request.Context(), req.SerialNumber, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		if errors.Is(err, services.ErrNoLinkedExpenses) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to resync voucher", slog.String("error", err.Error()), slog.String("serial", req.SerialNumber))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resync voucher"})
		return
	}

	c.JSON(http.StatusOK, dto.ResyncVoucherResponse{NewTotal: newTotal})
}

// clearVoucher godoc
// @Summary Clear a voucher
// @Description Marks a voucher as cleared. Restricted to finance users.
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} domain.Voucher
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not a finance user"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /vouchers/{voucherID}/clear [put]
func (h *voucherHandler) clearVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, ok := middleware.GetUserRoleFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.ClearVoucher(c.Request.Context(), voucherID, role, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only finance users may clear vouchers"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to clear voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear voucher"})
		return
	}

	c.JSON(http.StatusOK, voucher)
}

// backfillPreparedBy godoc
// @Summary Backfill voucher preparer names
// @Description Replaces the placeholder preparer name with the caller's display name on all vouchers still carrying it.
// @Tags vouchers
// @Produce json
// @Success 200 {object} dto.BackfillPreparedByResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /vouchers/prepared-by [put]
func (h *voucherHandler) backfillPreparedBy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	count, err := h.voucherService.BackfillPreparedBy(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to backfill prepared_by", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to backfill preparer names"})
		return
	}

	c.JSON(http.StatusOK, dto.BackfillPreparedByResponse{Count: count})
}
