package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kitchenpos/internal/catalog"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = `
menus:
  - id: f59b1e1c-b145-440a-aa6f-6095a0e2d63b
    name: Fried chicken
    price: "19000"
    displayed: true
  - id: 191fa247-b5f3-4b51-b175-e65db523f754
    name: Seasonal special
    price: "21000.50"
    displayed: false
tables:
  - id: 8d714577-319c-4573-89b0-a8b9c0d2b4f6
    name: Table 1
    occupied: true
    numberOfGuests: 4
`

func TestLoad_BuildsSeedCommand(t *testing.T) {
	cmd, err := catalog.Load(strings.NewReader(seed))

	require.NoError(t, err)
	require.Len(t, cmd.Menus(), 2)
	require.Len(t, cmd.Tables(), 1)

	fried := cmd.Menus()[0]
	assert.Equal(t, "f59b1e1c-b145-440a-aa6f-6095a0e2d63b", fried.ID().String())
	assert.Equal(t, "Fried chicken", fried.Name())
	assert.True(t, fried.Price().IsEqual(kernel.MustNewPriceFromInt(19000)))
	assert.True(t, fried.IsDisplayed())

	special := cmd.Menus()[1]
	assert.False(t, special.IsDisplayed())
	assert.Equal(t, "21000.5", special.Price().Amount().String())

	tbl := cmd.Tables()[0]
	assert.True(t, tbl.IsOccupied())
	assert.Equal(t, 4, tbl.NumberOfGuests())
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`
menus:
  - id: f59b1e1c-b145-440a-aa6f-6095a0e2d63b
    name: Fried chicken
    prise: "19000"
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prise")
}

func TestLoad_ReportsEveryInvalidEntry(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`
menus:
  - id: not-a-uuid
    name: Fried chicken
    price: "19000"
  - id: f59b1e1c-b145-440a-aa6f-6095a0e2d63b
    name: Fried chicken
    price: "-1"
tables:
  - id: 8d714577-319c-4573-89b0-a8b9c0d2b4f6
    name: Table 1
    occupied: false
    numberOfGuests: 3
`))

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "menus[0]")
	assert.Contains(t, err.Error(), "menus[1]")
	assert.Contains(t, err.Error(), "tables[0]")
}

func TestLoad_EmptyDocument(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(""))

	require.Error(t, err)
}

func TestLoadFile_ShippedCatalog(t *testing.T) {
	cmd, err := catalog.LoadFile(filepath.Join("..", "..", "configs", "catalog.yaml"))

	require.NoError(t, err)
	assert.Len(t, cmd.Menus(), 3)
	assert.Len(t, cmd.Tables(), 2)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
