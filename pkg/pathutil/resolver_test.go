package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/pathutil"
)

func TestNew_Defaults(t *testing.T) {
	p := pathutil.New(pathutil.Config{ProfileDir: "/srv/company-details"})

	assert.Equal(t, "/srv/company-details", p.GetProfileDir())
	assert.Equal(t, filepath.Join("/srv/company-details", ".history", "exports.db"), p.GetDatabasePath())
	assert.Equal(t, filepath.Join("/srv/company-details", "exports"), p.GetExportsDir())
}

func TestNew_Overrides(t *testing.T) {
	p := pathutil.New(pathutil.Config{
		ProfileDir:   "/srv/company-details",
		DatabasePath: "/var/lib/company/history.db",
		ExportsDir:   "/srv/www/exports",
	})

	assert.Equal(t, "/var/lib/company/history.db", p.GetDatabasePath())
	assert.Equal(t, "/srv/www/exports", p.GetExportsDir())
	assert.Equal(t, filepath.Join("/srv/www/exports", "logos.json"), p.GetExportPath("logos.json"))
}

func TestGetProfilePath(t *testing.T) {
	p := pathutil.New(pathutil.Config{ProfileDir: "/srv/company-details"})

	tests := []struct {
		format codec.Format
		name   string
	}{
		{codec.FormatJSON, "company_details.json"},
		{codec.FormatINI, "company_details.ini"},
		{codec.FormatCSV, "company_details.csv"},
		{codec.FormatYAML, "company_details.yaml"},
		{codec.FormatText, "COMPANY DETAILS"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := p.GetProfilePath(tt.format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("/srv/company-details", tt.name), got)
		})
	}

	_, err := p.GetProfilePath(codec.Format("xml"))
	assert.Error(t, err)
}

func TestEnsureDir(t *testing.T) {
	p := pathutil.New(pathutil.Config{ProfileDir: t.TempDir()})

	nested := filepath.Join(p.GetProfileDir(), "a", "b", "c")
	require.NoError(t, p.EnsureDir(nested))
	assert.True(t, p.IsDir(nested))

	file := filepath.Join(nested, "data.json")
	require.NoError(t, p.EnsureParentDir(file))
	assert.False(t, p.FileExists(file))
}
