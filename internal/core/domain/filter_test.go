package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dateOf(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRecordFilter_EmptyMatchesAll(t *testing.T) {
	f := RecordFilter{}
	assert.True(t, f.Match(CanonicalLabelRecord{Brand: "Camino"}))
	assert.True(t, f.Match(CanonicalLabelRecord{}))
}

func TestRecordFilter_ByDate(t *testing.T) {
	f := RecordFilter{Dates: []time.Time{time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC)}}

	assert.True(t, f.Match(CanonicalLabelRecord{CreatedDate: dateOf(2024, 9, 9)}))
	assert.False(t, f.Match(CanonicalLabelRecord{CreatedDate: dateOf(2024, 9, 10)}))
	// Records without a parsed date never match a date filter.
	assert.False(t, f.Match(CanonicalLabelRecord{}))
}

func TestRecordFilter_ByBrandAndVendor(t *testing.T) {
	f := RecordFilter{Brands: []string{"Camino"}, Vendors: []string{"Kiva Sales"}}

	assert.True(t, f.Match(CanonicalLabelRecord{Brand: "Camino", Vendor: "Kiva Sales"}))
	assert.False(t, f.Match(CanonicalLabelRecord{Brand: "Camino", Vendor: "Other"}))
	assert.False(t, f.Match(CanonicalLabelRecord{Brand: "Petra", Vendor: "Kiva Sales"}))
}

func TestRecordFilter_ApplyPreservesOrder(t *testing.T) {
	records := []CanonicalLabelRecord{
		{PackageLabel: "C", Brand: "Camino"},
		{PackageLabel: "A", Brand: "Petra"},
		{PackageLabel: "B", Brand: "Camino"},
	}

	got := RecordFilter{Brands: []string{"Camino"}}.Apply(records)
	assert.Len(t, got, 2)
	assert.Equal(t, "C", got[0].PackageLabel)
	assert.Equal(t, "B", got[1].PackageLabel)
}

func TestSummarize(t *testing.T) {
	records := []CanonicalLabelRecord{
		{Brand: "Camino", Vendor: "Kiva Sales", Quantity: 50, UnitsPerCase: 24},
		{Brand: "Camino", Vendor: "Kiva Sales", Quantity: 10},
		{Brand: "", Vendor: "", Quantity: 2.5, UnitsPerCase: 12},
	}

	s := Summarize(records)
	assert.Equal(t, 3, s.TotalPackages)
	assert.Equal(t, 1, s.UniqueBrands)
	assert.Equal(t, 1, s.UniqueVendors)
	assert.Equal(t, 62.5, s.TotalQuantity)
	assert.Equal(t, 2, s.WithCaseData)
}
