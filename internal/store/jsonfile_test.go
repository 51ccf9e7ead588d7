package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwgo/networth-projector/internal/config"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	input := config.CreateExampleInput(2025)
	require.NoError(t, s.Save(input))

	loaded, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, input.Profile.BirthYear, loaded.Profile.BirthYear)
	require.Len(t, loaded.Assets, len(input.Assets))
	assert.Equal(t, input.Assets[0].ID, loaded.Assets[0].ID)
	assert.True(t, input.Assets[0].CurrentValue.Equal(loaded.Assets[0].CurrentValue),
		"expected %s, got %s", input.Assets[0].CurrentValue, loaded.Assets[0].CurrentValue)
	assert.True(t, input.ExchangeRateUSDJPY.Equal(loaded.ExchangeRateUSDJPY))
}

func TestSaveOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	first := config.CreateExampleInput(2025)
	require.NoError(t, s.Save(first))

	second := config.CreateExampleInput(2025)
	second.Profile.BirthYear = 1970
	second.ExchangeRateUSDJPY = decimal.NewFromInt(151)
	require.NoError(t, s.Save(second))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1970, loaded.Profile.BirthYear)
	assert.True(t, loaded.ExchangeRateUSDJPY.Equal(decimal.NewFromInt(151)))
}

func TestLoadWithoutSave(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(config.CreateExampleInput(2025)))

	_, err = os.Stat(filepath.Join(dir, inputFileName+".tmp"))
	assert.True(t, os.IsNotExist(err))
}
