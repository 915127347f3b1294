package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
	"github.com/cboldwyn/dc-label/internal/core/ports/driving"
)

// Ensure MergeService implements the interface.
var _ driving.MergeService = (*MergeService)(nil)

// MergeService left-joins the packages export against the products
// export and coerces the result into canonical label records.
type MergeService struct {
	source driven.TableSource
}

// NewMergeService creates a new merge service.
func NewMergeService(source driven.TableSource) *MergeService {
	return &MergeService{source: source}
}

// Process loads both tables through the ingestion port and merges them.
func (s *MergeService) Process(ctx context.Context, packagesPath, productsPath string) ([]domain.CanonicalLabelRecord, error) {
	if s.source == nil {
		return nil, errors.New("table source not configured")
	}

	packages, err := s.source.LoadTable(ctx, packagesPath)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	products, err := s.source.LoadTable(ctx, productsPath)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	return s.Merge(packages, products)
}

// Merge joins package rows against product rows on the product name.
// Every package row survives; unmatched product fields stay absent.
// The product side contributes the case size, the vendor, and the
// category fallback. Output order matches the packages input.
func (s *MergeService) Merge(packages, products domain.RawTable) ([]domain.CanonicalLabelRecord, error) {
	if err := validateTable("packages", packages, domain.PackageColumns); err != nil {
		return nil, err
	}
	if err := validateTable("products", products, domain.ProductColumns); err != nil {
		return nil, err
	}

	// Index products by name. On duplicate names the first row wins,
	// keeping the join deterministic.
	index := make(map[string]map[string]string, len(products.Rows))
	for _, row := range products.Rows {
		name := row[domain.ColProdName]
		if _, ok := index[name]; !ok {
			index[name] = row
		}
	}

	records := make([]domain.CanonicalLabelRecord, 0, len(packages.Rows))
	for _, row := range packages.Rows {
		raw := row[domain.ColPkgProduct]
		brand, clean := domain.SplitBrand(raw)

		product := index[raw]
		quantity := domain.CoerceNumeric(row[domain.ColPkgQuantity], 0)
		unitsPerCase := domain.CoerceNumeric(product[domain.ColProdUnitsPerCase], 0)

		// Package category wins; product category is the fallback.
		category := strings.TrimSpace(row[domain.ColPkgCategory])
		if category == "" {
			category = strings.TrimSpace(product[domain.ColProdCategory])
		}

		createdAt := row[domain.ColPkgCreatedAt]

		records = append(records, domain.CanonicalLabelRecord{
			ProductNameRaw:   raw,
			Brand:            brand,
			ProductNameClean: clean,
			PackageLabel:     strings.TrimSpace(row[domain.ColPkgPackageLabel]),
			Quantity:         quantity,
			UnitsPerCase:     unitsPerCase,
			CaseLabelsNeeded: domain.CaseLabelsNeeded(quantity, unitsPerCase),
			BatchNo:          strings.TrimSpace(row[domain.ColPkgBatchNumber]),
			Category:         category,
			Status:           row[domain.ColPkgStatus],
			Vendor:           strings.TrimSpace(product[domain.ColProdVendor]),
			Location:         row[domain.ColPkgLocation],
			CreatedDate:      domain.ToDateOnly(createdAt),
			CreatedAtFull:    createdAt,
		})
	}

	return records, nil
}

func validateTable(name string, table domain.RawTable, required []string) error {
	if missing := table.MissingColumns(required); len(missing) > 0 {
		return fmt.Errorf("%s table: %w: %s", name, domain.ErrMissingColumns, strings.Join(missing, ", "))
	}
	if table.Empty() {
		return fmt.Errorf("%s table: %w", name, domain.ErrEmptyTable)
	}
	return nil
}
