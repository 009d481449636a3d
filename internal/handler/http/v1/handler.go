package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/access"
	"github.com/shenikar/resilink/internal/config"
	"github.com/shenikar/resilink/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает API v1
type Services struct {
	Incidents service.IncidentService
	Alerts    service.AlertService
	Resources service.ResourceService
	Reports   service.ReportService
	Audit     service.AuditService
}

type Handler struct {
	incidentService service.IncidentService
	alertService    service.AlertService
	resourceService service.ResourceService
	reportService   service.ReportService
	auditService    service.AuditService
	tracker         access.Tracker
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(services Services, tracker access.Tracker, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: services.Incidents,
		alertService:    services.Alerts,
		resourceService: services.Resources,
		reportService:   services.Reports,
		auditService:    services.Audit,
		tracker:         tracker,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bindAndValidate разбирает JSON и проверяет validate-теги. При ошибке ответ уже записан.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибки сервиса в HTTP-ответ.
// Детали инфраструктурных ошибок клиенту не отдаются.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		log.WithError(err).Warn("Rejected invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Info("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// recordLookupMiss отмечает в журнале запрос несуществующей записи
func (h *Handler) recordLookupMiss(c *gin.Context, err error, eventType, kind string, id uuid.UUID) {
	if !errors.Is(err, service.ErrNotFound) {
		return
	}
	h.auditService.Record(c.Request.Context(), eventType,
		fmt.Sprintf("%s with ID %s was not found.", kind, id), actorID(c))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
