package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	rec := company.NewRecord()
	require.NoError(t, rec.Set("vat_number", "4123456789"))
	require.NoError(t, rec.Set("tax_reference", "9070747175"))
	require.NoError(t, rec.Set("default_tax_rate", "12.5"))
	require.NoError(t, rec.Set("website", "https://jkwinnersinvestment.co.za"))

	c := &codec.JSONCodec{}
	out, err := c.Encode(rec)
	require.NoError(t, err)

	got, err := c.Decode(out)
	require.NoError(t, err)
	assert.True(t, rec.Equal(got), "decoded record differs from encoded one")
}

func TestJSONCodec_EncodeShape(t *testing.T) {
	c := &codec.JSONCodec{}
	out, err := c.Encode(company.NewRecord())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"company"`)
	assert.Contains(t, s, `"full_address": "22 Sloane Street, Bryanston, GAUTENG 1619"`)
	assert.Contains(t, s, `"swift_code"`)

	// The tax rate is a bare JSON number, not a string.
	assert.Contains(t, s, `"default_tax_rate": 15`)
	assert.NotContains(t, s, `"default_tax_rate": "15"`)
}

func TestJSONCodec_Compact(t *testing.T) {
	rec := company.NewRecord()

	pretty, err := (&codec.JSONCodec{}).Encode(rec)
	require.NoError(t, err)
	compact, err := (&codec.JSONCodec{Compact: true}).Encode(rec)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(pretty), "\n"))
	assert.False(t, strings.Contains(string(compact), "\n"))
	assert.Less(t, len(compact), len(pretty))

	// Both layouts carry the same data.
	a, err := (&codec.JSONCodec{}).Decode(pretty)
	require.NoError(t, err)
	b, err := (&codec.JSONCodec{}).Decode(compact)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestJSONCodec_Decode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "not json at all",
			input:   "{not json",
			wantErr: codec.ErrFormat,
		},
		{
			name:    "missing company object",
			input:   `{"details": {"name": "X"}}`,
			wantErr: codec.ErrFormat,
		},
		{
			name:    "empty document",
			input:   `{}`,
			wantErr: codec.ErrFormat,
		},
		{
			name:    "tax rate not a number",
			input:   `{"company": {"tax": {"default_tax_rate": "fifteen"}}}`,
			wantErr: codec.ErrFormat,
		},
		{
			name:    "tax rate wrong type",
			input:   `{"company": {"tax": {"default_tax_rate": true}}}`,
			wantErr: codec.ErrFormat,
		},
		{
			name:  "minimal valid document",
			input: `{"company": {"name": "Acme"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := (&codec.JSONCodec{}).Decode([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rec)
		})
	}
}

func TestJSONCodec_MissingGroupsKeepDefaults(t *testing.T) {
	in := `{"company": {"name": "Acme Holdings", "registration_number": "2020/1/1", "type": "Private Company"}}`

	rec, err := (&codec.JSONCodec{}).Decode([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings", rec.Name)
	// Groups absent from the document keep the stock profile values.
	assert.Equal(t, "FNB", rec.Bank)
	assert.Equal(t, "22 Sloane Street", rec.Street)
	assert.Equal(t, "15", rec.DefaultTaxRate.String())
}

func TestJSONCodec_UnknownKeysIgnored(t *testing.T) {
	in := `{"company": {"name": "Acme", "founder": "J K", "tax": {"default_tax_rate": 14, "regime": "small business"}}}`

	rec, err := (&codec.JSONCodec{}).Decode([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Name)
	assert.Equal(t, "14", rec.DefaultTaxRate.String())
}
