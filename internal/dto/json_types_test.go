package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_MarshalsAsTwoDecimalNumber(t *testing.T) {
	cases := map[string]string{
		"1000":    "1000.00",
		"1500.5":  "1500.50",
		"0":       "0.00",
		"10.005":  "10.01", // presentation rounds, the stored value does not
		"-250.75": "-250.75",
	}
	for in, want := range cases {
		b, err := json.Marshal(dto.NewMoney(decimal.RequireFromString(in)))
		require.NoError(t, err)
		assert.Equal(t, want, string(b), "input %s", in)
	}
}

func TestMoney_UnmarshalsNumberAndString(t *testing.T) {
	var m dto.Money
	require.NoError(t, json.Unmarshal([]byte(`1234.56`), &m))
	assert.True(t, m.Decimal.Equal(decimal.RequireFromString("1234.56")))

	require.NoError(t, json.Unmarshal([]byte(`"99.90"`), &m))
	assert.True(t, m.Decimal.Equal(decimal.RequireFromString("99.90")))
}

func TestMoney_FullPrecisionSurvivesUnmarshal(t *testing.T) {
	var m dto.Money
	require.NoError(t, json.Unmarshal([]byte(`10.005`), &m))
	assert.True(t, m.Decimal.Equal(decimal.RequireFromString("10.005")))
}

func TestDateTime_MarshalsWithoutOffset(t *testing.T) {
	ts := time.Date(2024, 3, 19, 15, 4, 5, 0, time.UTC)
	b, err := json.Marshal(dto.NewDateTime(ts))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-19T15:04:05"`, string(b))
}

func TestDateTime_MarshalConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	ts := time.Date(2024, 3, 19, 12, 0, 0, 0, loc)
	b, err := json.Marshal(dto.NewDateTime(ts))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-19T15:00:00"`, string(b))
}

func TestDateTime_RoundTrip(t *testing.T) {
	var parsed dto.DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-19T15:04:05"`), &parsed))
	assert.Equal(t, time.Date(2024, 3, 19, 15, 4, 5, 0, time.UTC), parsed.Time)
}

func TestDateTime_AcceptsOffsetInput(t *testing.T) {
	var parsed dto.DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-19T12:04:05-03:00"`), &parsed))
	assert.Equal(t, time.Date(2024, 3, 19, 15, 4, 5, 0, time.UTC), parsed.Time)
}
