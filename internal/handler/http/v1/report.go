package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/resilink/internal/service"
)

// @Summary Get status report
// @Description Aggregate open incidents, alerts, active users of the last 24h and incidents per type. Computed on every call. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatusReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/status [get]
func (h *Handler) getStatusReport(c *gin.Context) {
	log := h.logger.WithField("method", "getStatusReport")

	report, err := h.reportService.GenerateStatusReport(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToStatusReportResponse(report))
}

// @Summary Get audit log
// @Description Get a page of the audit log, newest first. page is clamped to >= 1, pageSize to [1, 100]. Requires API key.
// @Tags Logs
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} AuditLogPageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logs [get]
func (h *Handler) listLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listLogs")
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", service.DefaultLogPageSize)

	logs, err := h.auditService.ListLogs(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToAuditLogPageResponse(logs))
}

// queryInt возвращает def, если параметр отсутствует или не является числом
func queryInt(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
