package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_TableTests(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "canonical date",
			input: "2025-12-01",
			want:  NewDate(2025, time.December, 1),
		},
		{
			name:  "RFC3339 coerced to date",
			input: "2025-12-01T15:04:05Z",
			want:  NewDate(2025, time.December, 1),
		},
		{
			name:    "garbage",
			input:   "01/12/2025",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want.Time), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDate_MarshalJSON_DateOnly(t *testing.T) {
	d := NewDate(2025, time.December, 1)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-01"`, string(data))
}

func TestDate_UnmarshalJSON_CoercesTimestamp(t *testing.T) {
	var sub Subscription
	body := `{"id":1,"name":"Spotify","price":9.99,"currency":"USD","frequency":"monthly",` +
		`"payment_date":"2025-12-01T00:00:00Z","created_at":"2025-11-20T10:30:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &sub))

	assert.Equal(t, "2025-12-01", sub.PaymentDate.String())

	out, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"payment_date":"2025-12-01"`)
}
