package compliance

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
)

const maxEntityNameLength = 200

var (
	vatNumberPattern  = regexp.MustCompile(`^[0-9]{11}$`)
	fiscalCodePattern = regexp.MustCompile(`^([A-Z0-9]{16}|[0-9]{11})$`)
)

// Entity is a registry entry whose documents are checked for compliance:
// a supplier, a subcontracting company, a worker or the organization itself.
type Entity struct {
	id         string
	entityType vo.EntityType
	name       string
	vatNumber  string
	fiscalCode string
	email      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewEntity(id string, entityType vo.EntityType, name, vatNumber, fiscalCode, email string, now time.Time) (*Entity, error) {
	if id == "" {
		return nil, fmt.Errorf("entity ID is required")
	}
	if !entityType.IsValid() {
		return nil, fmt.Errorf("invalid entity type: %q", entityType)
	}
	e := &Entity{
		id:         id,
		entityType: entityType,
		createdAt:  now.UTC(),
		updatedAt:  now.UTC(),
	}
	if err := e.setName(name); err != nil {
		return nil, err
	}
	if err := e.setIdentifiers(vatNumber, fiscalCode); err != nil {
		return nil, err
	}
	e.email = strings.TrimSpace(email)
	return e, nil
}

func ReconstructEntity(
	id string,
	entityType vo.EntityType,
	name, vatNumber, fiscalCode, email string,
	createdAt, updatedAt time.Time,
) (*Entity, error) {
	if id == "" {
		return nil, fmt.Errorf("entity ID is required")
	}
	if !entityType.IsValid() {
		return nil, fmt.Errorf("invalid entity type: %q", entityType)
	}
	return &Entity{
		id:         id,
		entityType: entityType,
		name:       name,
		vatNumber:  vatNumber,
		fiscalCode: fiscalCode,
		email:      email,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (e *Entity) ID() string                { return e.id }
func (e *Entity) EntityType() vo.EntityType { return e.entityType }
func (e *Entity) Name() string              { return e.name }
func (e *Entity) VATNumber() string         { return e.vatNumber }
func (e *Entity) FiscalCode() string        { return e.fiscalCode }
func (e *Entity) Email() string             { return e.email }
func (e *Entity) CreatedAt() time.Time      { return e.createdAt }
func (e *Entity) UpdatedAt() time.Time      { return e.updatedAt }

func (e *Entity) Rename(name string, now time.Time) error {
	if err := e.setName(name); err != nil {
		return err
	}
	e.updatedAt = now.UTC()
	return nil
}

func (e *Entity) UpdateIdentifiers(vatNumber, fiscalCode string, now time.Time) error {
	if err := e.setIdentifiers(vatNumber, fiscalCode); err != nil {
		return err
	}
	e.updatedAt = now.UTC()
	return nil
}

func (e *Entity) UpdateEmail(email string, now time.Time) {
	e.email = strings.TrimSpace(email)
	e.updatedAt = now.UTC()
}

func (e *Entity) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len([]rune(name)) > maxEntityNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxEntityNameLength)
	}
	e.name = name
	return nil
}

func (e *Entity) setIdentifiers(vatNumber, fiscalCode string) error {
	vatNumber = strings.TrimSpace(vatNumber)
	fiscalCode = strings.ToUpper(strings.TrimSpace(fiscalCode))
	if vatNumber != "" && !vatNumberPattern.MatchString(vatNumber) {
		return fmt.Errorf("VAT number must be 11 digits")
	}
	if fiscalCode != "" && !fiscalCodePattern.MatchString(fiscalCode) {
		return fmt.Errorf("fiscal code must be 16 alphanumeric characters or 11 digits")
	}
	e.vatNumber = vatNumber
	e.fiscalCode = fiscalCode
	return nil
}
