package compliance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/shared/logger"
	"github.com/egest-app/egest/internal/shared/utils"
)

type EntityHandler struct {
	createUC createEntityUseCase
	getUC    getEntityUseCase
	listUC   listEntitiesUseCase
	updateUC updateEntityUseCase
	deleteUC deleteEntityUseCase
	logger   logger.Interface
}

func NewEntityHandler(
	createUC createEntityUseCase,
	getUC getEntityUseCase,
	listUC listEntitiesUseCase,
	updateUC updateEntityUseCase,
	deleteUC deleteEntityUseCase,
	logger logger.Interface,
) *EntityHandler {
	return &EntityHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// CreateEntity registers a supplier, company, worker or organization
// @Summary Create entity
// @Tags Entities
// @Accept json
// @Produce json
// @Param request body CreateEntityRequest true "Entity"
// @Success 201 {object} utils.APIResponse{data=dto.EntityDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /entities [post]
func (h *EntityHandler) CreateEntity(c *gin.Context) {
	var req CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create entity", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Entity created successfully")
}

// GetEntity
// @Summary Get entity
// @Tags Entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} utils.APIResponse{data=dto.EntityDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /entities/{id} [get]
func (h *EntityHandler) GetEntity(c *gin.Context) {
	entityID, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetEntityQuery{EntityID: entityID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEntities
// @Summary List entities
// @Tags Entities
// @Produce json
// @Param entity_type query string false "Entity type"
// @Param search query string false "Name, VAT number or fiscal code"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Param sort_by query string false "name, entity_type, created_at or updated_at"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /entities [get]
func (h *EntityHandler) ListEntities(c *gin.Context) {
	var req ListEntitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEntitiesQuery{
		EntityType: req.EntityType,
		Search:     req.Search,
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entities, result.Total, result.Page, result.PageSize)
}

// UpdateEntity
// @Summary Update entity
// @Tags Entities
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param request body UpdateEntityRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.EntityDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /entities/{id} [patch]
func (h *EntityHandler) UpdateEntity(c *gin.Context) {
	entityID, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(entityID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entity updated successfully", result)
}

// DeleteEntity removes the entity and all of its documents
// @Summary Delete entity
// @Tags Entities
// @Param id path string true "Entity ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /entities/{id} [delete]
func (h *EntityHandler) DeleteEntity(c *gin.Context) {
	entityID, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteEntityCommand{EntityID: entityID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
