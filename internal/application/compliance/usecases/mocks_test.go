package usecases

import (
	"context"
	"time"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/domain/shared/events"
	"github.com/egest-app/egest/internal/shared/biztime"
)

func init() {
	biztime.MustInit("Europe/Rome")
}

// testNow is 12:00 in Rome on 2025-06-10.
var testNow = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func dateIn(days int) string {
	return time.Date(2025, 6, 10+days, 0, 0, 0, 0, time.UTC).Format(biztime.DateLayout)
}

func testEvaluator() *compliance.Evaluator {
	return compliance.NewEvaluator(compliance.DefaultCatalog(), compliance.WithClock(testClock))
}

func newTestEntity(id string, et vo.EntityType, name string) *compliance.Entity {
	e, err := compliance.NewEntity(id, et, name, "", "", "", testNow.Add(-48*time.Hour))
	if err != nil {
		panic(err)
	}
	return e
}

func storedDoc(id, entityID string, et vo.EntityType, code vo.DocumentTypeCode, expiry string) *compliance.ComplianceDocument {
	return compliance.ReconstructComplianceDocument(id, entityID, et, code,
		"", expiry, vo.ValidityUnknown, id+".pdf", "", nil, testNow.Add(-24*time.Hour))
}

// payableSupplierDocs covers every supplier requirement with a far expiry.
func payableSupplierDocs(entityID string) []*compliance.ComplianceDocument {
	return []*compliance.ComplianceDocument{
		storedDoc(entityID+"-durc", entityID, vo.EntityTypeSupplier, vo.DocumentTypeDURC, dateIn(120)),
		storedDoc(entityID+"-visura", entityID, vo.EntityTypeSupplier, vo.DocumentTypeVisuraCamerale, dateIn(200)),
		storedDoc(entityID+"-ins", entityID, vo.EntityTypeSupplier, vo.DocumentTypeInsurance, dateIn(300)),
	}
}

type mockEntityRepository struct {
	CreateFunc  func(ctx context.Context, entity *compliance.Entity) error
	UpdateFunc  func(ctx context.Context, entity *compliance.Entity) error
	DeleteFunc  func(ctx context.Context, id string) error
	GetByIDFunc func(ctx context.Context, id string) (*compliance.Entity, error)
	ListFunc    func(ctx context.Context, filter compliance.EntityFilter) ([]*compliance.Entity, int64, error)
}

func (m *mockEntityRepository) Create(ctx context.Context, entity *compliance.Entity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity)
	}
	return nil
}

func (m *mockEntityRepository) Update(ctx context.Context, entity *compliance.Entity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockEntityRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEntityRepository) GetByID(ctx context.Context, id string) (*compliance.Entity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEntityRepository) List(ctx context.Context, filter compliance.EntityFilter) ([]*compliance.Entity, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockDocumentRepository struct {
	CreateFunc           func(ctx context.Context, doc *compliance.ComplianceDocument) error
	DeleteFunc           func(ctx context.Context, id string) error
	DeleteByEntityFunc   func(ctx context.Context, entityType vo.EntityType, entityID string) (int64, error)
	GetByIDFunc          func(ctx context.Context, id string) (*compliance.ComplianceDocument, error)
	ListByEntityFunc     func(ctx context.Context, entityType vo.EntityType, entityID string) ([]*compliance.ComplianceDocument, error)
	ListByEntityTypeFunc func(ctx context.Context, entityType vo.EntityType) (map[string][]*compliance.ComplianceDocument, error)
}

func (m *mockDocumentRepository) Create(ctx context.Context, doc *compliance.ComplianceDocument) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return nil
}

func (m *mockDocumentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDocumentRepository) DeleteByEntity(ctx context.Context, entityType vo.EntityType, entityID string) (int64, error) {
	if m.DeleteByEntityFunc != nil {
		return m.DeleteByEntityFunc(ctx, entityType, entityID)
	}
	return 0, nil
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, id string) (*compliance.ComplianceDocument, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListByEntity(ctx context.Context, entityType vo.EntityType, entityID string) ([]*compliance.ComplianceDocument, error) {
	if m.ListByEntityFunc != nil {
		return m.ListByEntityFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListByEntityType(ctx context.Context, entityType vo.EntityType) (map[string][]*compliance.ComplianceDocument, error) {
	if m.ListByEntityTypeFunc != nil {
		return m.ListByEntityTypeFunc(ctx, entityType)
	}
	return nil, nil
}

type mockStatusCache struct {
	GetFunc    func(ctx context.Context, entityType vo.EntityType, entityID string) (*compliance.ComplianceStatus, error)
	SetFunc    func(ctx context.Context, status *compliance.ComplianceStatus) error
	DeleteFunc func(ctx context.Context, entityType vo.EntityType, entityID string) error
}

func (m *mockStatusCache) Get(ctx context.Context, entityType vo.EntityType, entityID string) (*compliance.ComplianceStatus, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *mockStatusCache) Set(ctx context.Context, status *compliance.ComplianceStatus) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, status)
	}
	return nil
}

func (m *mockStatusCache) Delete(ctx context.Context, entityType vo.EntityType, entityID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, entityType, entityID)
	}
	return nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(events []events.DomainEvent) error
	published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockMailer struct {
	SendFunc func(ctx context.Context, to []string, subject, htmlBody, textBody string) error
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, htmlBody, textBody string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, htmlBody, textBody)
	}
	return nil
}

// mockTransactor runs fn directly and reports whether it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockOverviewEvaluator struct {
	EvaluateFunc func(ctx context.Context, entityType *vo.EntityType) (*compliance.BatchResult, error)
}

func (m *mockOverviewEvaluator) Evaluate(ctx context.Context, entityType *vo.EntityType) (*compliance.BatchResult, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, entityType)
	}
	return &compliance.BatchResult{}, nil
}

type mockRenderer struct {
	RenderFunc func(markdown string) (string, error)
}

func (m *mockRenderer) Render(md string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(md)
	}
	return "<p>" + md + "</p>", nil
}
