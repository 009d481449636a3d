package v1

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/resilink/internal/access"
	"github.com/shenikar/resilink/internal/config"
	"github.com/shenikar/resilink/internal/models"
	"github.com/shenikar/resilink/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	actorContextKey = "actor_id"
	actorPrefix     = "APIKey_"
	actorKeyChars   = 5
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Кладет в контекст идентификатор актора и отмечает доступ в журнале аудита.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger, audit service.AuditService, tracker access.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !isKnownKey(cfg.APIKeys, apiKey) {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		actor := ActorFromKey(apiKey)
		c.Set(actorContextKey, actor)

		ctx := c.Request.Context()
		record, err := tracker.ShouldRecord(ctx, actor)
		if err != nil {
			// Трекер недоступен: отмечаем доступ без ограничения частоты
			log.WithError(err).WithField("actor_id", actor).Warn("Access tracker unavailable")
			record = true
		}
		if record {
			audit.Record(ctx, models.EventAPIKeyAccess,
				fmt.Sprintf("API key access by %s: %s %s", actor, c.Request.Method, c.FullPath()), actor)
		}

		c.Next()
	}
}

// ActorFromKey строит идентификатор актора из префикса ключа, не раскрывая ключ целиком
func ActorFromKey(apiKey string) string {
	runes := []rune(apiKey)
	if len(runes) > actorKeyChars {
		runes = runes[:actorKeyChars]
	}
	return actorPrefix + string(runes)
}

func isKnownKey(keys []string, apiKey string) bool {
	valid := false
	for _, key := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			valid = true
		}
	}
	return valid
}

// actorID возвращает идентификатор, установленный APIKeyAuthMiddleware
func actorID(c *gin.Context) string {
	return c.GetString(actorContextKey)
}

// @Summary Verify API key
// @Description Check that the supplied API key is valid and return the caller identity.
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} VerifyAPIKeyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/verify-apikey [post]
func (h *Handler) verifyAPIKey(c *gin.Context) {
	actor := actorID(c)
	h.auditService.Record(c.Request.Context(), models.EventAPIKeyVerification,
		fmt.Sprintf("API key verified for %s.", actor), actor)

	c.JSON(http.StatusOK, VerifyAPIKeyResponse{
		Message:           "API key is valid.",
		AuthenticatedUser: actor,
	})
}
