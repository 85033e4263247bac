package http

import (
	"github.com/egest-app/egest/internal/application/compliance/usecases"
)

// allUseCases holds the use case instances used by the application.
type allUseCases struct {
	// Entities
	createEntityUC *usecases.CreateEntityUseCase
	getEntityUC    *usecases.GetEntityUseCase
	listEntitiesUC *usecases.ListEntitiesUseCase
	updateEntityUC *usecases.UpdateEntityUseCase
	deleteEntityUC *usecases.DeleteEntityUseCase

	// Documents
	uploadDocumentUC *usecases.UploadDocumentUseCase
	listDocumentsUC  *usecases.ListDocumentsUseCase
	deleteDocumentUC *usecases.DeleteDocumentUseCase

	// Compliance
	evaluateEntityUC *usecases.EvaluateEntityUseCase
	overviewUC       *usecases.GetComplianceOverviewUseCase
	getCatalogUC     *usecases.GetCatalogUseCase

	// Digest, nil when the digest is disabled
	sendDigestUC *usecases.SendExpiryDigestUseCase
}

func (c *Container) newUseCases() *allUseCases {
	repos := c.repos
	log := c.log

	return &allUseCases{
		createEntityUC: usecases.NewCreateEntityUseCase(repos.entityRepo, log),
		getEntityUC:    usecases.NewGetEntityUseCase(repos.entityRepo, log),
		listEntitiesUC: usecases.NewListEntitiesUseCase(repos.entityRepo, log),
		updateEntityUC: usecases.NewUpdateEntityUseCase(repos.entityRepo, log),
		deleteEntityUC: usecases.NewDeleteEntityUseCase(
			repos.entityRepo, repos.documentRepo, repos.txManager, c.dispatcher, log,
		),

		uploadDocumentUC: usecases.NewUploadDocumentUseCase(
			repos.entityRepo, repos.documentRepo, c.catalog, c.dispatcher, log,
		),
		listDocumentsUC:  usecases.NewListDocumentsUseCase(repos.entityRepo, repos.documentRepo, log),
		deleteDocumentUC: usecases.NewDeleteDocumentUseCase(repos.documentRepo, c.dispatcher, log),

		evaluateEntityUC: usecases.NewEvaluateEntityUseCase(
			repos.entityRepo, repos.documentRepo, c.evaluator, c.statusCache, c.metrics, log,
		),
		overviewUC: usecases.NewGetComplianceOverviewUseCase(
			repos.entityRepo, repos.documentRepo, c.evaluator,
			usecases.OverviewOptions{
				FetchConcurrency: c.cfg.Compliance.FetchConcurrency,
				Timeout:          c.cfg.Compliance.EvaluationTimeout(),
			},
			c.metrics, log,
		),
		getCatalogUC: usecases.NewGetCatalogUseCase(c.evaluator),
	}
}
