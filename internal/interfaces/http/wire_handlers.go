package http

import (
	"github.com/egest-app/egest/internal/interfaces/http/handlers"
	complianceHandlers "github.com/egest-app/egest/internal/interfaces/http/handlers/compliance"
)

// allHandlers holds the HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler     *handlers.HealthHandler
	entityHandler     *complianceHandlers.EntityHandler
	documentHandler   *complianceHandlers.DocumentHandler
	complianceHandler *complianceHandlers.ComplianceHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() {
	ucs := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.db),
		entityHandler: complianceHandlers.NewEntityHandler(
			ucs.createEntityUC, ucs.getEntityUC, ucs.listEntitiesUC, ucs.updateEntityUC, ucs.deleteEntityUC, log,
		),
		documentHandler: complianceHandlers.NewDocumentHandler(
			ucs.uploadDocumentUC, ucs.listDocumentsUC, ucs.deleteDocumentUC, log,
		),
		complianceHandler: complianceHandlers.NewComplianceHandler(
			ucs.evaluateEntityUC, ucs.overviewUC, ucs.getCatalogUC, log,
		),
	}
}
