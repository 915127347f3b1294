package domain

import "time"

// Column names in the packages export.
const (
	ColPkgProduct      = "Distru Product"
	ColPkgQuantity     = "Quantity"
	ColPkgPackageLabel = "Package Label"
	ColPkgBatchNumber  = "Distru Batch Number"
	ColPkgCategory     = "Category"
	ColPkgCreatedAt    = "Created in Distru At (UTC)"
	ColPkgStatus       = "Status"
	ColPkgLocation     = "Location"
)

// Column names in the products export.
const (
	ColProdName         = "Name"
	ColProdUnitsPerCase = "Units Per Case"
	ColProdCategory     = "Category"
	ColProdVendor       = "Vendor"
)

// PackageColumns lists the columns the packages table must supply.
var PackageColumns = []string{
	ColPkgProduct, ColPkgQuantity, ColPkgPackageLabel, ColPkgBatchNumber,
	ColPkgCategory, ColPkgCreatedAt, ColPkgStatus, ColPkgLocation,
}

// ProductColumns lists the columns the products table must supply.
var ProductColumns = []string{
	ColProdName, ColProdUnitsPerCase, ColProdCategory, ColProdVendor,
}

// RawTable is an untyped string table produced by an ingestion adapter.
// All values are strings; a missing cell reads as the empty string.
type RawTable struct {
	// Columns are the header names, in source order.
	Columns []string

	// Rows holds one string map per source line, keyed by column name.
	Rows []map[string]string
}

// Empty reports whether the table has no data rows.
func (t RawTable) Empty() bool {
	return len(t.Rows) == 0
}

// MissingColumns returns the subset of names the table does not carry.
func (t RawTable) MissingColumns(names []string) []string {
	have := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = true
	}
	var missing []string
	for _, n := range names {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

// CanonicalLabelRecord is the merged, typed representation of one
// package after the packages/products join. It is created once per
// merge pass and held read-only thereafter; only LabelOverride is
// mutated, by the override-editing collaborator between runs.
type CanonicalLabelRecord struct {
	// ProductNameRaw is the full product name as exported.
	ProductNameRaw string

	// Brand is the part of ProductNameRaw before the first hyphen
	// delimiter. Empty when no delimiter was found.
	Brand string

	// ProductNameClean is the remainder of ProductNameRaw after the
	// delimiter, or the whole name when no delimiter was found.
	ProductNameClean string

	// PackageLabel is the unique printable identifier. It is also the
	// QR payload and the batch ordering key.
	PackageLabel string

	// Quantity is the coerced package quantity. Invalid input is 0.
	Quantity float64

	// UnitsPerCase is the coerced case size from the products table.
	// 0 when the product had no match or no case size.
	UnitsPerCase float64

	// CaseLabelsNeeded is ceil(Quantity / UnitsPerCase), or 0 when
	// either is not positive.
	CaseLabelsNeeded int

	// BatchNo is the batch/lot number.
	BatchNo string

	// Category is the package category, falling back to the product
	// category when the package side is absent.
	Category string

	Status   string
	Vendor   string
	Location string

	// CreatedDate is the date-only projection of the creation
	// timestamp. Nil when the timestamp did not parse; the record
	// stays valid, it is simply unfiltered by date.
	CreatedDate *time.Time

	// CreatedAtFull is the original timestamp value, reused for
	// week-slot selection and "Created:" display.
	CreatedAtFull string

	// LabelOverride is the user-supplied document count for this
	// record. Nil means "follow the global label mode". Zero
	// suppresses the record entirely. Any positive integer is passed
	// through unclamped; bounding is a UI concern.
	LabelOverride *int
}

// HasCaseData reports whether the record carries a usable case size.
func (r CanonicalLabelRecord) HasCaseData() bool {
	return r.UnitsPerCase > 0
}

// CaseQuantity returns the case size for quantity display, or nil when
// the record has no case data.
func (r CanonicalLabelRecord) CaseQuantity() *float64 {
	if !r.HasCaseData() {
		return nil
	}
	q := r.UnitsPerCase
	return &q
}
