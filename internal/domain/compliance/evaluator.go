package compliance

import (
	"math"
	"time"

	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/biztime"
)

// DefaultExpiringWindowDays: a document expiring within this many days (inclusive)
// is "expiring" rather than "valid".
const DefaultExpiringWindowDays = 30

// Evaluator classifies one entity's documents against a RequirementCatalog.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	catalog    *RequirementCatalog
	now        func() time.Time
	windowDays int
}

type EvaluatorOption func(*Evaluator)

// WithClock overrides the evaluation instant source.
func WithClock(now func() time.Time) EvaluatorOption {
	return func(e *Evaluator) { e.now = now }
}

// WithExpiringWindowDays overrides DefaultExpiringWindowDays. Negative values are ignored.
func WithExpiringWindowDays(days int) EvaluatorOption {
	return func(e *Evaluator) {
		if days >= 0 {
			e.windowDays = days
		}
	}
}

func NewEvaluator(catalog *RequirementCatalog, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		catalog:    catalog,
		now:        biztime.NowUTC,
		windowDays: DefaultExpiringWindowDays,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Catalog() *RequirementCatalog {
	return e.catalog
}

func (e *Evaluator) ExpiringWindowDays() int {
	return e.windowDays
}

// Evaluate classifies every required slot of entityType using documents, which
// must already belong to the entity. Documents of codes outside the catalog
// entry are ignored. It fails on an unknown entity type or on a malformed date
// in any document filling a required slot. documents is not modified.
func (e *Evaluator) Evaluate(entityID, entityName string, entityType vo.EntityType, documents []*ComplianceDocument) (*ComplianceStatus, error) {
	required, err := e.catalog.Requirements(entityType)
	if err != nil {
		return nil, err
	}

	now := e.now()
	today := biztime.DateOf(now)

	byCode := make(map[vo.DocumentTypeCode][]candidate, len(required))
	for _, code := range required {
		byCode[code] = nil
	}
	for _, doc := range documents {
		if doc == nil {
			continue
		}
		if _, ok := byCode[doc.TypeCode()]; !ok {
			continue
		}
		c, err := newCandidate(doc)
		if err != nil {
			return nil, err
		}
		byCode[doc.TypeCode()] = append(byCode[doc.TypeCode()], c)
	}

	status := &ComplianceStatus{
		EntityID:         entityID,
		EntityName:       entityName,
		EntityType:       entityType,
		MissingTypeCodes: []vo.DocumentTypeCode{},
		Slots:            make([]SlotResult, 0, len(required)),
		EvaluatedAt:      now,
	}

	for _, code := range required {
		slot := e.classify(code, pickRepresentative(byCode[code]), today)
		switch slot.Classification {
		case vo.SlotValid:
			status.ValidCount++
		case vo.SlotExpiring:
			status.ExpiringCount++
		case vo.SlotExpired:
			status.ExpiredCount++
			status.MissingTypeCodes = append(status.MissingTypeCodes, code)
		case vo.SlotMissing:
			status.MissingTypeCodes = append(status.MissingTypeCodes, code)
		}
		status.Slots = append(status.Slots, slot)
	}

	status.Payable = len(status.MissingTypeCodes) == 0
	status.CompliancePercentage = compliancePercentage(len(required), len(status.MissingTypeCodes))
	return status, nil
}

func (e *Evaluator) classify(code vo.DocumentTypeCode, rep *candidate, today time.Time) SlotResult {
	slot := SlotResult{TypeCode: code}
	if rep == nil {
		slot.Classification = vo.SlotMissing
		return slot
	}

	slot.DocumentID = rep.doc.ID()
	if rep.expiry == nil {
		slot.Classification = vo.SlotValid
		return slot
	}

	expiry := *rep.expiry
	slot.ExpiryDate = &expiry
	slot.DaysRemaining = int(expiry.Sub(today).Hours() / 24)

	switch {
	case slot.DaysRemaining < 0:
		slot.Classification = vo.SlotExpired
	case slot.DaysRemaining <= e.windowDays:
		slot.Classification = vo.SlotExpiring
	default:
		slot.Classification = vo.SlotValid
	}
	return slot
}

// compliancePercentage rounds to the nearest integer but never reports 100
// while a slot is missing, nor anything but 100 for an empty catalog.
func compliancePercentage(catalogSize, missing int) int {
	if catalogSize == 0 {
		return 100
	}
	pct := int(math.Round(float64(catalogSize-missing) * 100 / float64(catalogSize)))
	if missing > 0 && pct == 100 {
		pct = 99
	}
	return pct
}

type candidate struct {
	doc    *ComplianceDocument
	expiry *time.Time
	issue  *time.Time
}

func newCandidate(doc *ComplianceDocument) (candidate, error) {
	expiry, err := doc.ExpiryDate()
	if err != nil {
		return candidate{}, err
	}
	issue, err := doc.IssueDate()
	if err != nil {
		return candidate{}, err
	}
	return candidate{doc: doc, expiry: expiry, issue: issue}, nil
}

// pickRepresentative returns the candidate with the latest expiry, where no
// expiry beats any date. Ties fall back to later issue date, later creation
// time and finally the greater ID, so the result never depends on input order.
func pickRepresentative(cs []candidate) *candidate {
	var best *candidate
	for i := range cs {
		if best == nil || supersedes(&cs[i], best) {
			best = &cs[i]
		}
	}
	return best
}

func supersedes(a, b *candidate) bool {
	if c := compareOptionalDate(a.expiry, b.expiry, true); c != 0 {
		return c > 0
	}
	if c := compareOptionalDate(a.issue, b.issue, false); c != 0 {
		return c > 0
	}
	if !a.doc.CreatedAt().Equal(b.doc.CreatedAt()) {
		return a.doc.CreatedAt().After(b.doc.CreatedAt())
	}
	return a.doc.ID() > b.doc.ID()
}

// compareOptionalDate orders nil as the greatest value when nilIsLatest,
// otherwise as the smallest.
func compareOptionalDate(a, b *time.Time, nilIsLatest bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if nilIsLatest {
			return 1
		}
		return -1
	case b == nil:
		if nilIsLatest {
			return -1
		}
		return 1
	default:
		return a.Compare(*b)
	}
}
