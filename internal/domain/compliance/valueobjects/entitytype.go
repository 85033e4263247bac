package valueobjects

import "fmt"

// EntityType identifies who owns a compliance document.
type EntityType string

const (
	EntityTypeSupplier     EntityType = "supplier"
	EntityTypeCompany      EntityType = "company"
	EntityTypeWorker       EntityType = "worker"
	EntityTypeOrganization EntityType = "organization"
)

var validEntityTypes = map[EntityType]bool{
	EntityTypeSupplier:     true,
	EntityTypeCompany:      true,
	EntityTypeWorker:       true,
	EntityTypeOrganization: true,
}

// AllEntityTypes lists entity types in display order.
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityTypeSupplier,
		EntityTypeCompany,
		EntityTypeWorker,
		EntityTypeOrganization,
	}
}

func (t EntityType) String() string {
	return string(t)
}

func (t EntityType) IsValid() bool {
	return validEntityTypes[t]
}

func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid entity type: %q", s)
	}
	return t, nil
}
