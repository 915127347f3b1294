package domain

import "time"

// RecordFilter narrows a canonical record set. Empty criteria match
// everything; criteria combine with AND.
type RecordFilter struct {
	// Dates restricts to records whose CreatedDate falls on one of the
	// listed days. Records without a parsed date never match a
	// non-empty date filter.
	Dates []time.Time

	// Brands restricts to the listed brands.
	Brands []string

	// Vendors restricts to the listed vendors.
	Vendors []string
}

// Match reports whether the record passes the filter.
func (f RecordFilter) Match(r CanonicalLabelRecord) bool {
	if len(f.Dates) > 0 {
		if r.CreatedDate == nil {
			return false
		}
		if !containsDate(f.Dates, *r.CreatedDate) {
			return false
		}
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, r.Brand) {
		return false
	}
	if len(f.Vendors) > 0 && !containsString(f.Vendors, r.Vendor) {
		return false
	}
	return true
}

// Apply returns the records passing the filter, preserving order.
func (f RecordFilter) Apply(records []CanonicalLabelRecord) []CanonicalLabelRecord {
	out := make([]CanonicalLabelRecord, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsDate(dates []time.Time, d time.Time) bool {
	for _, c := range dates {
		if c.Year() == d.Year() && c.Month() == d.Month() && c.Day() == d.Day() {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, c := range list {
		if c == s {
			return true
		}
	}
	return false
}

// Summary aggregates a canonical record set for display.
type Summary struct {
	TotalPackages int
	UniqueBrands  int
	UniqueVendors int
	TotalQuantity float64
	WithCaseData  int
}

// Summarize computes the overview metrics for a record set.
func Summarize(records []CanonicalLabelRecord) Summary {
	brands := make(map[string]bool)
	vendors := make(map[string]bool)
	s := Summary{TotalPackages: len(records)}
	for _, r := range records {
		if r.Brand != "" {
			brands[r.Brand] = true
		}
		if r.Vendor != "" {
			vendors[r.Vendor] = true
		}
		s.TotalQuantity += r.Quantity
		if r.HasCaseData() {
			s.WithCaseData++
		}
	}
	s.UniqueBrands = len(brands)
	s.UniqueVendors = len(vendors)
	return s
}
