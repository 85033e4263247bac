package usecases

import (
	"context"
	"errors"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	apperrors "github.com/egest-app/egest/internal/shared/errors"
)

// StatusCache is satisfied by cache.RedisStatusCache and cache.NoopStatusCache.
type StatusCache interface {
	Get(ctx context.Context, entityType vo.EntityType, entityID string) (*compliance.ComplianceStatus, error)
	Set(ctx context.Context, status *compliance.ComplianceStatus) error
	Delete(ctx context.Context, entityType vo.EntityType, entityID string) error
}

type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody, textBody string) error
}

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OverviewEvaluator evaluates every entity of entityType, or of every
// catalog type when entityType is nil.
type OverviewEvaluator interface {
	Evaluate(ctx context.Context, entityType *vo.EntityType) (*compliance.BatchResult, error)
}

// evaluationError maps evaluator failures to HTTP-facing errors.
func evaluationError(err error) error {
	var unknown *compliance.UnknownEntityTypeError
	if errors.As(err, &unknown) {
		return apperrors.NewValidationError("entity type is not in the requirement catalog", unknown.EntityType.String())
	}

	var malformed *compliance.MalformedDocumentError
	if errors.As(err, &malformed) {
		return apperrors.NewUnprocessableError(
			"stored document has a malformed date",
			"document_id="+malformed.DocumentID,
			"field="+malformed.Field,
			"value="+malformed.Value,
		)
	}

	return apperrors.NewInternalError("failed to evaluate compliance", err.Error())
}
