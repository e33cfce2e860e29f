package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkarlsen/webstore/internal/dataset"
	"github.com/dkarlsen/webstore/internal/sqlstore"
)

func TestStockText(t *testing.T) {
	out, err := runCLI(withData("stock")...)
	require.NoError(t, err)
	assertGolden(t, "stock", out)
}

func TestStockJSON(t *testing.T) {
	orig := newRunID
	newRunID = func() string { return "0d7a4d5e-0000-7000-8000-000000000000" }
	defer func() { newRunID = orig }()

	out, err := runCLI(withData("stock", "--format", "json")...)
	require.NoError(t, err)
	assertGolden(t, "stock_json", out)
}

// The database path must produce the same report as the in-memory path.
func TestStockFromDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "webstore.db")

	data, err := dataset.Load(filepath.Join("testdata", "webstore.yaml"))
	require.NoError(t, err)

	st, err := sqlstore.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Seed(context.Background(), data))
	require.NoError(t, st.Close())

	out, err := runCLI("stock", "--db", dbPath)
	require.NoError(t, err)
	assertGolden(t, "stock", out)
}

func TestTotalsText(t *testing.T) {
	out, err := runCLI(withData("totals")...)
	require.NoError(t, err)
	assertGolden(t, "totals", out)
}

func TestTotalsFromDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "webstore.db")

	data, err := dataset.Load(filepath.Join("testdata", "webstore.yaml"))
	require.NoError(t, err)

	st, err := sqlstore.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Seed(context.Background(), data))
	require.NoError(t, st.Close())

	out, err := runCLI("totals", "--db", dbPath)
	require.NoError(t, err)
	assertGolden(t, "totals", out)
}
