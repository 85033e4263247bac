package compliance

import (
	"errors"
	"fmt"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

var (
	// ErrUnknownEntityType: the catalog has no entry for the entity type.
	ErrUnknownEntityType = errors.New("unknown entity type")
	// ErrMalformedDocument: a stored document carries a date that cannot be parsed.
	ErrMalformedDocument = errors.New("malformed compliance document")
	// ErrDuplicateRequirement: a catalog entry lists the same code twice.
	ErrDuplicateRequirement = errors.New("duplicate requirement in catalog")
)

type UnknownEntityTypeError struct {
	EntityType vo.EntityType
}

func (e *UnknownEntityTypeError) Error() string {
	return fmt.Sprintf("no requirements configured for entity type %q", string(e.EntityType))
}

func (e *UnknownEntityTypeError) Unwrap() error {
	return ErrUnknownEntityType
}

// MalformedDocumentError names the offending document and field so the caller
// can show it next to the entity instead of dropping the entity.
type MalformedDocumentError struct {
	DocumentID string
	TypeCode   vo.DocumentTypeCode
	Field      string
	Value      string
	Err        error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("document %s (%s): invalid %s %q: %v", e.DocumentID, e.TypeCode, e.Field, e.Value, e.Err)
}

func (e *MalformedDocumentError) Unwrap() []error {
	return []error{ErrMalformedDocument, e.Err}
}
