package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/resilink/internal/models"
)

// @Summary Offer a community resource
// @Description Offer a resource. It is hidden from the public list until a moderator approves it. Requires API key.
// @Tags Resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resource body CreateResourceRequest true "Resource"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [post]
func (h *Handler) createResource(c *gin.Context) {
	var input CreateResourceRequest
	log := h.logger.WithField("method", "createResource")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := CreateResourceRequestToModel(input)
	if err := h.resourceService.OfferResource(c.Request.Context(), model, actorID(c)); err != nil {
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToResourceResponse(model))
}

// @Summary Get available resources
// @Description List approved and available resources, newest first. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ResourceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")

	resources, err := h.resourceService.ListAvailableResources(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToResourceResponses(resources))
}

// @Summary Get resource by ID
// @Description Get a resource by ID regardless of its moderation status. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [get]
func (h *Handler) getResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}
	log := h.logger.WithField("method", "getResource").WithField("id", id)

	resource, err := h.resourceService.GetResource(c.Request.Context(), id)
	if err != nil {
		h.recordLookupMiss(c, err, models.EventResourceLookupFailed, "Resource", id)
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.JSON(http.StatusOK, ModelToResourceResponse(resource))
}

// @Summary Moderate a resource
// @Description Set moderation status to "Aprovado" or "Rejeitado". Rejected resources become unavailable. Requires API key.
// @Tags Resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Resource ID"
// @Param moderation body ModerateResourceRequest true "Moderation decision"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid resource ID or moderation status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id}/moderation [put]
func (h *Handler) moderateResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}
	log := h.logger.WithField("method", "moderateResource").WithField("id", id)

	var input ModerateResourceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.resourceService.ModerateResource(c.Request.Context(), id, input.Status, actorID(c)); err != nil {
		h.respondError(c, log, err, "resource not found")
		return
	}
	c.Status(http.StatusNoContent)
}
