package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/infrastructure/metrics"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/errors"
	"github.com/egest-app/egest/internal/shared/logger"
	"github.com/egest-app/egest/internal/shared/services/markdown"
)

type DigestOptions struct {
	Recipients []string
	Subject    string
}

// SendExpiryDigestUseCase mails a summary of blocked entities, expiring
// documents and entities that could not be evaluated.
type SendExpiryDigestUseCase struct {
	overview OverviewEvaluator
	renderer markdown.Renderer
	mailer   Mailer
	opts     DigestOptions
	metrics  *metrics.Metrics
	now      func() time.Time
	logger   logger.Interface
}

func NewSendExpiryDigestUseCase(
	overview OverviewEvaluator,
	renderer markdown.Renderer,
	mailer Mailer,
	opts DigestOptions,
	m *metrics.Metrics,
	logger logger.Interface,
) *SendExpiryDigestUseCase {
	if opts.Subject == "" {
		opts.Subject = "E-Gest: scadenze documentali"
	}
	return &SendExpiryDigestUseCase{
		overview: overview,
		renderer: renderer,
		mailer:   mailer,
		opts:     opts,
		metrics:  m,
		now:      biztime.NowUTC,
		logger:   logger,
	}
}

// Execute returns the number of entities in the digest. Nothing is sent
// when there is nothing to report.
func (uc *SendExpiryDigestUseCase) Execute(ctx context.Context) (int, error) {
	if len(uc.opts.Recipients) == 0 {
		return 0, errors.NewValidationError("digest has no recipients")
	}

	result, err := uc.overview.Evaluate(ctx, nil)
	if err != nil {
		return 0, err
	}

	reported := digestEntries(result)
	if reported == 0 {
		uc.logger.Infow("expiry digest skipped, nothing to report", "evaluated", result.Stats.Total)
		return 0, nil
	}

	body := BuildDigestMarkdown(result, uc.now())
	html, err := uc.renderer.Render(body)
	if err != nil {
		uc.logger.Errorw("failed to render expiry digest", "error", err)
		return 0, errors.NewInternalError("failed to render expiry digest")
	}

	if err := uc.mailer.Send(ctx, uc.opts.Recipients, uc.opts.Subject, html, body); err != nil {
		uc.logger.Errorw("failed to send expiry digest", "recipients", len(uc.opts.Recipients), "error", err)
		return 0, errors.NewUnavailableError("failed to send expiry digest", err.Error())
	}

	uc.metrics.IncrementDigestsSent()
	uc.logger.Infow("expiry digest sent", "entities", reported, "recipients", len(uc.opts.Recipients))
	return reported, nil
}

func digestEntries(r *compliance.BatchResult) int {
	n := len(r.Failures)
	for _, s := range r.Statuses {
		if !s.Payable || s.ExpiringCount > 0 {
			n++
		}
	}
	return n
}

// BuildDigestMarkdown renders the digest body. Statuses are listed in the
// order given.
func BuildDigestMarkdown(r *compliance.BatchResult, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Scadenze documentali al %s\n\n", biztime.FormatDate(now))
	fmt.Fprintf(&b, "Soggetti valutati: **%d**, pagabili: **%d**, bloccati: **%d**, in scadenza: **%d**.\n\n",
		r.Stats.Total, r.Stats.PayableCount, r.Stats.BlockedCount, r.Stats.ExpiringCount)

	var blocked, expiring []*compliance.ComplianceStatus
	for _, s := range r.Statuses {
		if !s.Payable {
			blocked = append(blocked, s)
		} else if s.ExpiringCount > 0 {
			expiring = append(expiring, s)
		}
	}

	if len(blocked) > 0 {
		b.WriteString("## Soggetti bloccati\n\n")
		b.WriteString("| Soggetto | Tipo | Conformità | Documenti mancanti o scaduti |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, s := range blocked {
			fmt.Fprintf(&b, "| %s | %s | %d%% | %s |\n",
				escapeCell(s.EntityName), s.EntityType, s.CompliancePercentage, codeList(s.MissingTypeCodes))
		}
		b.WriteString("\n")
	}

	var expiringRows []string
	for _, s := range append(blocked, expiring...) {
		for _, slot := range s.Slots {
			if slot.Classification != vo.SlotExpiring || slot.ExpiryDate == nil {
				continue
			}
			expiringRows = append(expiringRows, fmt.Sprintf("| %s | %s | %s | %d |",
				escapeCell(s.EntityName), slot.TypeCode.Label(),
				slot.ExpiryDate.UTC().Format(biztime.DateLayout), slot.DaysRemaining))
		}
	}
	if len(expiringRows) > 0 {
		b.WriteString("## Documenti in scadenza\n\n")
		b.WriteString("| Soggetto | Documento | Scadenza | Giorni |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, row := range expiringRows {
			b.WriteString(row)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(r.Failures) > 0 {
		b.WriteString("## Soggetti non valutabili\n\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "- %s (%s): %s\n", escapeCell(f.EntityName), f.EntityType, f.Err)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func codeList(codes []vo.DocumentTypeCode) string {
	if len(codes) == 0 {
		return "-"
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.Label()
	}
	return strings.Join(parts, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
