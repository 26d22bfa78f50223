package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

func TestYAMLCodec_RoundTrip(t *testing.T) {
	rec := company.NewRecord()
	require.NoError(t, rec.Set("default_tax_rate", "12.5"))
	require.NoError(t, rec.Set("tax_reference", "9070747175"))
	require.NoError(t, rec.Set("website", "https://jkwinnersinvestment.co.za"))

	c := &codec.YAMLCodec{}
	out, err := c.Encode(rec)
	require.NoError(t, err)

	got, err := c.Decode(out)
	require.NoError(t, err)
	assert.True(t, rec.Equal(got), "decoded record differs from encoded one")
}

func TestYAMLCodec_EncodeShape(t *testing.T) {
	out, err := (&codec.YAMLCodec{}).Encode(company.NewRecord())
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, "company:")
	assert.Contains(t, s, "registration_number: 2013/047375/07")
	assert.Contains(t, s, "full_address: 22 Sloane Street, Bryanston, GAUTENG 1619")
	// Numeric, not quoted.
	assert.Contains(t, s, "default_tax_rate: 15")
	assert.NotContains(t, s, `default_tax_rate: "15"`)
}

func TestYAMLCodec_Decode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "invalid yaml", input: "company: [unclosed", wantErr: codec.ErrFormat},
		{name: "missing company mapping", input: "details:\n  name: Acme\n", wantErr: codec.ErrFormat},
		{name: "empty document", input: "", wantErr: codec.ErrFormat},
		{name: "minimal document", input: "company:\n  name: Acme\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := (&codec.YAMLCodec{}).Decode([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Acme", rec.Name)
			// Absent groups keep the stock profile values.
			assert.Equal(t, "15", rec.DefaultTaxRate.String())
			assert.Equal(t, "FNB", rec.Bank)
		})
	}
}
