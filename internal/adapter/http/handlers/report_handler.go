package handlers

import (
	"errors"
	"net/http"

	response "cobranca_campo/internal/adapter/http/dto/response"
	"cobranca_campo/internal/usecase"
	"cobranca_campo/pkg"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports usecase.IReportUseCase
}

func NewReportHandler(reports usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// DailySummary godoc
// @Summary      Get a collector's daily collection summary
// @Tags         reports
// @Produce      json
// @Param        collector_id  query     string  true  "Collector ID"
// @Param        date          query     string  true  "Date (YYYY-MM-DD)"
// @Success      200           {object}  response.DailySummaryResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /reports/daily [get]
func (h *ReportHandler) DailySummary(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	collectorID := c.Query("collector_id")
	if collectorID == "" {
		collectorID = principal.UserID
	}

	summary, err := h.reports.DailySummary(c.Request.Context(), principal.TenantID, collectorID, c.Query("date"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Date must be YYYY-MM-DD", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDailySummary(summary))
}
