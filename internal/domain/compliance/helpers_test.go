package compliance

import (
	"time"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/biztime"
)

// fixedNow is 12:00 in Rome on 2025-06-10.
var fixedNow = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func init() {
	biztime.MustInit("Europe/Rome")
}

func fixedClock() time.Time { return fixedNow }

func dateIn(days int) string {
	return time.Date(2025, 6, 10+days, 0, 0, 0, 0, time.UTC).Format(biztime.DateLayout)
}

func intPtr(i int) *int { return &i }

// doc builds a stored document expiring `days` days after fixedNow, or never when days is nil.
func doc(id string, code vo.DocumentTypeCode, days *int) *ComplianceDocument {
	expiry := ""
	if days != nil {
		expiry = dateIn(*days)
	}
	return ReconstructComplianceDocument(id, "ent-1", vo.EntityTypeSupplier, code,
		"", expiry, vo.ValidityUnknown, id+".pdf", "", nil, fixedNow.Add(-24*time.Hour))
}

func rawDoc(id string, code vo.DocumentTypeCode, issue, expiry string, createdAt time.Time) *ComplianceDocument {
	return ReconstructComplianceDocument(id, "ent-1", vo.EntityTypeSupplier, code,
		issue, expiry, vo.ValidityValid, "", "", nil, createdAt)
}

func twoSlotCatalog() *RequirementCatalog {
	c, err := NewRequirementCatalog(map[vo.EntityType][]vo.DocumentTypeCode{
		vo.EntityTypeSupplier: {vo.DocumentTypeDURC, vo.DocumentTypeInsurance},
	})
	if err != nil {
		panic(err)
	}
	return c
}
