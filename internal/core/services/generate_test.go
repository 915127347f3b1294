package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/storage/memory"
	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

// --- Mock implementations ---

// mockCatalog implements driven.SymbolCatalog for testing.
type mockCatalog struct {
	err error
}

func (m *mockCatalog) Symbol(slot int) (domain.Symbol, error) {
	if m.err != nil {
		return domain.Symbol{}, m.err
	}
	if slot < 1 || slot > domain.SymbolSlots {
		return domain.Symbol{}, domain.ErrUnknownSlot
	}
	return domain.Symbol{
		Slot:    slot,
		Name:    domain.SlotName(slot),
		Payload: "^GFA,8,8,1,FF00FF00",
		Width:   64,
		Height:  64,
	}, nil
}

func (m *mockCatalog) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, domain.SymbolSlots)
	for i := range out {
		out[i], _ = m.Symbol(i + 1)
	}
	return out
}

var generateTime = time.Date(2024, 9, 10, 8, 0, 0, 0, time.UTC)

func caseRecord(label string, quantity, unitsPerCase float64) domain.CanonicalLabelRecord {
	return domain.CanonicalLabelRecord{
		ProductNameRaw:   "Camino - Strawberry Sunset",
		Brand:            "Camino",
		ProductNameClean: "Strawberry Sunset",
		PackageLabel:     label,
		Quantity:         quantity,
		UnitsPerCase:     unitsPerCase,
		CaseLabelsNeeded: domain.CaseLabelsNeeded(quantity, unitsPerCase),
		BatchNo:          "LOT-1",
		Category:         "Edibles",
		CreatedAtFull:    "2024-09-09 17:32:45 UTC",
	}
}

func countDocuments(content string) int {
	return strings.Count(content, "^XA")
}

func TestGenerate_PackageMode(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	records := []domain.CanonicalLabelRecord{
		caseRecord("A001", 50, 24),
		caseRecord("B002", 10, 24),
	}

	result, err := svc.Generate(context.Background(), records, driving.GenerateOptions{
		Mode: domain.ModePackage,
		Now:  generateTime,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Labels)
	assert.Equal(t, 2, countDocuments(result.Content))
	assert.Empty(t, result.Skipped)
	// Package mode shows the case size when known.
	assert.Contains(t, result.Content, "Case Qty: 24")
}

func TestGenerate_CaseModeEmitsCaseLabels(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	result, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{caseRecord("A001", 50, 24)},
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Labels)
	// Every label shows the full case size, not the partial remainder.
	assert.Equal(t, 3, strings.Count(result.Content, "Case Qty: 24"))
	assert.NotContains(t, result.Content, "Case Qty: 2\n")
}

func TestGenerate_OverrideZeroSuppresses(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)
	zero := 0

	for _, mode := range []domain.Mode{domain.ModePackage, domain.ModeCase} {
		rec := caseRecord("A001", 50, 24)
		rec.LabelOverride = &zero
		keep := caseRecord("B002", 10, 24)

		result, err := svc.Generate(context.Background(),
			[]domain.CanonicalLabelRecord{rec, keep},
			driving.GenerateOptions{Mode: mode, Now: generateTime},
		)
		require.NoError(t, err)
		assert.NotContains(t, result.Content, "A001")
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "A001", result.Skipped[0].PackageLabel)
	}
}

func TestGenerate_OverridePositiveWinsOverMode(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)
	five := 5

	for _, mode := range []domain.Mode{domain.ModePackage, domain.ModeCase} {
		rec := caseRecord("A001", 50, 24)
		rec.LabelOverride = &five

		result, err := svc.Generate(context.Background(),
			[]domain.CanonicalLabelRecord{rec},
			driving.GenerateOptions{Mode: mode, Now: generateTime},
		)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Labels, "mode %s", mode)
	}
}

func TestGenerate_ZeroQuantityBeatsOverride(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)
	five := 5

	rec := caseRecord("A001", 0, 24)
	rec.LabelOverride = &five

	_, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{rec},
		driving.GenerateOptions{Mode: domain.ModePackage, Now: generateTime},
	)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestGenerate_AscendingIdentifierOrder(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	records := []domain.CanonicalLabelRecord{
		caseRecord("C003", 1, 24),
		caseRecord("A001", 1, 24),
		caseRecord("B002", 1, 24),
	}

	result, err := svc.Generate(context.Background(), records,
		driving.GenerateOptions{Mode: domain.ModePackage, Now: generateTime})
	require.NoError(t, err)

	a := strings.Index(result.Content, "A001")
	b := strings.Index(result.Content, "B002")
	c := strings.Index(result.Content, "C003")
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

// TestGenerate_ShuffledInputIsByteIdentical verifies batch output is a
// pure function of the record set, not its order.
func TestGenerate_ShuffledInputIsByteIdentical(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)
	opts := driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime}

	records := []domain.CanonicalLabelRecord{
		caseRecord("A001", 55, 25),
		caseRecord("B002", 10, 5),
		caseRecord("C003", 7, 7),
	}
	shuffled := []domain.CanonicalLabelRecord{records[2], records[0], records[1]}

	first, err := svc.Generate(context.Background(), records, opts)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), shuffled, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Filename, second.Filename)
}

// TestGenerate_EndToEndScenario covers the documented two-record case:
// A001 (qty 55, case 25) yields three case labels, B002 (qty 10, no
// case size) contributes a warning, and the batch orders A001 first.
func TestGenerate_EndToEndScenario(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	b002 := caseRecord("B002", 10, 0)
	a001 := caseRecord("A001", 55, 25)

	result, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{b002, a001},
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Labels)
	assert.Equal(t, 3, strings.Count(result.Content, "Case Qty: 25"))
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "B002", result.Skipped[0].PackageLabel)
	assert.Equal(t, "missing units per case", result.Skipped[0].Reason)
}

func TestGenerate_EmptyBatchIsError(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	_, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{caseRecord("A001", 0, 24)},
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime},
	)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestGenerate_InvalidMode(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	_, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{caseRecord("A001", 1, 1)},
		driving.GenerateOptions{Mode: "bulk", Now: generateTime},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_DerivesFilename(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	result, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{caseRecord("A001", 50, 24)},
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime},
	)
	require.NoError(t, err)
	assert.Equal(t, "dc_labels_Camino_per_case_20240910_080000.zpl", result.Filename)
}

func TestGenerate_RecordsRun(t *testing.T) {
	runs := memory.NewRunStore()
	svc := NewGenerateService(&mockCatalog{}, runs)

	result, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{
			caseRecord("A001", 50, 24),
			caseRecord("B002", 0, 24),
		},
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime},
	)
	require.NoError(t, err)

	stored, err := runs.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, result.Filename, stored[0].Filename)
	assert.Equal(t, 3, stored[0].Labels)
	assert.Equal(t, 1, stored[0].Skipped)
	assert.Equal(t, domain.ModeCase, stored[0].Mode)
}

func TestGenerate_BatchIsNewlineJoinedDocuments(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	result, err := svc.Generate(context.Background(),
		[]domain.CanonicalLabelRecord{caseRecord("A001", 2, 1)},
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime},
	)
	require.NoError(t, err)

	// No batch-level header: documents back to back.
	assert.True(t, strings.HasPrefix(result.Content, "^XA\n"))
	assert.True(t, strings.HasSuffix(result.Content, "^XZ"))
	assert.Contains(t, result.Content, "^XZ\n^XA")
}

func TestPreview_ComposesWithoutBatch(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	docs, err := svc.Preview(context.Background(), caseRecord("A001", 50, 24),
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime})
	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.True(t, strings.HasPrefix(docs[0], "^XA"))
}

func TestPreview_SkippedRecordYieldsNothing(t *testing.T) {
	svc := NewGenerateService(&mockCatalog{}, nil)

	docs, err := svc.Preview(context.Background(), caseRecord("A001", 0, 24),
		driving.GenerateOptions{Mode: domain.ModeCase, Now: generateTime})
	require.NoError(t, err)
	assert.Empty(t, docs)
}
