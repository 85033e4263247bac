package compliance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egest-app/egest/internal/application/compliance/usecases"
	"github.com/egest-app/egest/internal/shared/logger"
	"github.com/egest-app/egest/internal/shared/utils"
)

type DocumentHandler struct {
	uploadUC uploadDocumentUseCase
	listUC   listDocumentsUseCase
	deleteUC deleteDocumentUseCase
	logger   logger.Interface
}

func NewDocumentHandler(
	uploadUC uploadDocumentUseCase,
	listUC listDocumentsUseCase,
	deleteUC deleteDocumentUseCase,
	logger logger.Interface,
) *DocumentHandler {
	return &DocumentHandler{
		uploadUC: uploadUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// UploadDocument fills a requirement slot of an entity
// @Summary Add document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param request body UploadDocumentRequest true "Document"
// @Success 201 {object} utils.APIResponse{data=dto.DocumentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /entities/{id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	entityID, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upload document", "entity_id", entityID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), req.ToCommand(entityID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Document added successfully")
}

// ListDocuments
// @Summary List entity documents
// @Tags Documents
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.DocumentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /entities/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	entityID, err := utils.ParseIDParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDocumentsQuery{EntityID: entityID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteDocument
// @Summary Delete document
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	documentID, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDocumentCommand{DocumentID: documentID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
