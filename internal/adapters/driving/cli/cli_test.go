package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cboldwyn/dc-label/internal/adapters/driven/ingest/csvfile"
	"github.com/cboldwyn/dc-label/internal/adapters/driven/storage/memory"
	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/services"
)

// --- Mock implementations ---

// mockCatalog implements driven.SymbolCatalog for command tests.
type mockCatalog struct{}

func (m *mockCatalog) Symbol(slot int) (domain.Symbol, error) {
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

// setupTestServices wires real services over in-memory adapters and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldMerge, oldRecords, oldGenerate := mergeService, recordService, generateService
	oldCatalog, oldConfig, oldRuns := symbolCatalog, configStore, runStore

	SetServices(Services{
		Merge:    services.NewMergeService(csvfile.NewSource()),
		Records:  services.NewRecordService(memory.NewOverrideStore()),
		Generate: services.NewGenerateService(&mockCatalog{}, memory.NewRunStore()),
		Catalog:  &mockCatalog{},
	})

	return func() {
		mergeService, recordService, generateService = oldMerge, oldRecords, oldGenerate
		symbolCatalog, configStore, runStore = oldCatalog, oldConfig, oldRuns
	}
}

// writeExports writes a minimal pair of export files and returns their
// paths.
func writeExports(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	packages := "Distru Product,Quantity,Package Label,Distru Batch Number,Category,Created in Distru At (UTC)\n" +
		"Camino - Strawberry Sunset,50,A001,LOT-1,Edibles,2024-09-09 17:32:45 UTC\n" +
		"Wyld - Pear Gummies,10,B002,LOT-2,Edibles,2024-09-09 17:32:45 UTC\n"
	products := "Name,Units Per Case,Category,Vendor\n" +
		"Camino - Strawberry Sunset,24,Edibles,Kiva\n"

	pkgPath := filepath.Join(dir, "packages.csv")
	prodPath := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(pkgPath, []byte(packages), 0600))
	require.NoError(t, os.WriteFile(prodPath, []byte(products), 0600))
	return pkgPath, prodPath
}

// execute runs the root command with args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
