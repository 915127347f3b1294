package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// exportColumns is the column order of the canonical-dataset export.
var exportColumns = []string{
	"Product Name", "Brand", "Product (Clean)", "Package Label",
	"Quantity", "Units Per Case", "Case Labels Needed", "Batch No",
	"Category", "Created Date", "Status", "Location", "Vendor",
	"Label Override",
}

// RecordService manages label overrides and dataset export. The
// canonical record set itself is caller-owned; this service only
// attaches and edits the externally persisted override field.
type RecordService struct {
	overrides driven.OverrideStore
}

// NewRecordService creates a new record service.
func NewRecordService(overrides driven.OverrideStore) *RecordService {
	return &RecordService{overrides: overrides}
}

// ApplyOverrides returns a copy of records with stored overrides set.
func (s *RecordService) ApplyOverrides(ctx context.Context, records []domain.CanonicalLabelRecord) ([]domain.CanonicalLabelRecord, error) {
	if s.overrides == nil {
		return records, nil
	}

	stored, err := s.overrides.ListOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}

	out := make([]domain.CanonicalLabelRecord, len(records))
	copy(out, records)
	for i := range out {
		if count, ok := stored[out[i].PackageLabel]; ok {
			c := count
			out[i].LabelOverride = &c
		}
	}
	return out, nil
}

// SetOverride stores a label override. The engine accepts any
// non-negative count; zero suppresses the record.
func (s *RecordService) SetOverride(ctx context.Context, packageLabel string, count int) error {
	if s.overrides == nil {
		return errors.New("override store not configured")
	}
	if packageLabel == "" {
		return fmt.Errorf("package label required: %w", domain.ErrInvalidInput)
	}
	if count < 0 {
		return fmt.Errorf("override count must be >= 0: %w", domain.ErrInvalidInput)
	}
	return s.overrides.SetOverride(ctx, packageLabel, count)
}

// ClearOverride removes a stored override.
func (s *RecordService) ClearOverride(ctx context.Context, packageLabel string) error {
	if s.overrides == nil {
		return errors.New("override store not configured")
	}
	return s.overrides.ClearOverride(ctx, packageLabel)
}

// ListOverrides returns all stored overrides.
func (s *RecordService) ListOverrides(ctx context.Context) (map[string]int, error) {
	if s.overrides == nil {
		return map[string]int{}, nil
	}
	return s.overrides.ListOverrides(ctx)
}

// ExportCSV renders the record set for the export collaborator.
func (s *RecordService) ExportCSV(records []domain.CanonicalLabelRecord) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	// Writes to a strings.Builder cannot fail; errors are ignored.
	_ = w.Write(exportColumns)
	for _, r := range records {
		created := ""
		if r.CreatedDate != nil {
			created = r.CreatedDate.Format("2006-01-02")
		}
		override := ""
		if r.LabelOverride != nil {
			override = strconv.Itoa(*r.LabelOverride)
		}
		_ = w.Write([]string{
			r.ProductNameRaw, r.Brand, r.ProductNameClean, r.PackageLabel,
			domain.FormatNumeric(r.Quantity), domain.FormatNumeric(r.UnitsPerCase),
			strconv.Itoa(r.CaseLabelsNeeded), r.BatchNo,
			r.Category, created, r.Status, r.Location, r.Vendor,
			override,
		})
	}
	w.Flush()
	return sb.String()
}
