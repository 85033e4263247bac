package compliance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/shared/logger"
	"github.com/egest-app/egest/internal/shared/utils"
)

type ComplianceHandler struct {
	evaluateUC evaluateEntityUseCase
	overviewUC getOverviewUseCase
	catalogUC  getCatalogUseCase
	logger     logger.Interface
}

func NewComplianceHandler(
	evaluateUC evaluateEntityUseCase,
	overviewUC getOverviewUseCase,
	catalogUC getCatalogUseCase,
	logger logger.Interface,
) *ComplianceHandler {
	return &ComplianceHandler{
		evaluateUC: evaluateUC,
		overviewUC: overviewUC,
		catalogUC:  catalogUC,
		logger:     logger,
	}
}

// GetEntityCompliance returns the payability status of one entity
// @Summary Evaluate entity
// @Tags Compliance
// @Produce json
// @Param id path string true "Entity ID"
// @Param fresh query bool false "Bypass the status cache"
// @Success 200 {object} utils.APIResponse{data=dto.ComplianceStatusDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /entities/{id}/compliance [get]
func (h *ComplianceHandler) GetEntityCompliance(c *gin.Context) {
	entityID, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	fresh, _ := strconv.ParseBool(c.Query("fresh"))

	result, err := h.evaluateUC.Execute(c.Request.Context(), usecases.EvaluateEntityQuery{
		EntityID:  entityID,
		SkipCache: fresh,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOverview evaluates every entity of the catalog types
// @Summary Compliance overview
// @Tags Compliance
// @Produce json
// @Param entity_type query string false "Restrict to one entity type"
// @Success 200 {object} utils.APIResponse{data=dto.ComplianceOverviewDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /compliance/overview [get]
func (h *ComplianceHandler) GetOverview(c *gin.Context) {
	var req OverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.overviewUC.Execute(c.Request.Context(), usecases.GetComplianceOverviewQuery{EntityType: req.EntityType})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCatalog
// @Summary Requirement catalog
// @Tags Compliance
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.CatalogDTO}
// @Router /compliance/catalog [get]
func (h *ComplianceHandler) GetCatalog(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.catalogUC.Execute(c.Request.Context()))
}
