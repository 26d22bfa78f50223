package profile_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/company"
	"github.com/pigeonworks-llc/company-manager/pkg/pathutil"
	"github.com/pigeonworks-llc/company-manager/pkg/profile"
)

func newTestRepository(t *testing.T) (*profile.FileSystemRepository, string) {
	t.Helper()
	dir := t.TempDir()
	paths := pathutil.New(pathutil.Config{ProfileDir: dir})
	return profile.NewFileSystemRepository(paths), dir
}

func TestRepository_WriteRead(t *testing.T) {
	repo, dir := newTestRepository(t)

	rec := company.NewRecord()
	require.NoError(t, rec.Set("vat_number", "4123456789"))
	require.NoError(t, rec.Set("default_tax_rate", "14"))

	result, err := repo.Write(codec.FormatJSON, rec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "company_details.json"), result.Path)
	assert.Greater(t, result.Bytes, 0)

	got, err := repo.Read(codec.FormatJSON)
	require.NoError(t, err)
	assert.True(t, rec.Equal(got))
}

func TestRepository_WriteOverwrites(t *testing.T) {
	repo, _ := newTestRepository(t)

	rec := company.NewRecord()
	_, err := repo.Write(codec.FormatJSON, rec)
	require.NoError(t, err)

	require.NoError(t, rec.Set("bank", "Capitec"))
	_, err = repo.Write(codec.FormatJSON, rec)
	require.NoError(t, err)

	got, err := repo.Read(codec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Capitec", got.Bank)
}

func TestRepository_WriteAll(t *testing.T) {
	repo, dir := newTestRepository(t)

	results, err := repo.WriteAll(company.NewRecord())
	require.NoError(t, err)
	require.Len(t, results, 5)

	wantFiles := []string{
		"company_details.json",
		"company_details.ini",
		"company_details.csv",
		"company_details.yaml",
		"COMPANY DETAILS",
	}
	for _, name := range wantFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to be written", name)
		assert.Greater(t, info.Size(), int64(0))
	}

	for _, status := range repo.Check() {
		assert.True(t, status.Exists, "expected %s to exist", status.Name)
	}
}

func TestRepository_ReadMissingFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Read(codec.FormatJSON)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRepository_ReadExportOnlyFormat(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.WriteAll(company.NewRecord())
	require.NoError(t, err)

	_, err = repo.Read(codec.FormatCSV)
	assert.ErrorIs(t, err, codec.ErrUnsupported)

	_, err = repo.Read(codec.FormatText)
	assert.ErrorIs(t, err, codec.ErrUnsupported)
}

func TestRepository_CheckReportsMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	rec := company.NewRecord()
	_, err := repo.Write(codec.FormatJSON, rec)
	require.NoError(t, err)
	_, err = repo.Write(codec.FormatINI, rec)
	require.NoError(t, err)

	statuses := repo.Check()
	require.Len(t, statuses, 5)

	byFormat := make(map[codec.Format]bool)
	for _, status := range statuses {
		byFormat[status.Format] = status.Exists
	}
	assert.True(t, byFormat[codec.FormatJSON])
	assert.True(t, byFormat[codec.FormatINI])
	assert.False(t, byFormat[codec.FormatCSV])
	assert.False(t, byFormat[codec.FormatYAML])
	assert.False(t, byFormat[codec.FormatText])
}
