package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 4, 1, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, createdAt, "0190a4b2-7c1e-7000-8000-00000000abcd")
	assert.NotEmpty(t, token)

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, date, cursor.Date)
	assert.Equal(t, createdAt, cursor.CreatedAt)
	assert.Equal(t, "0190a4b2-7c1e-7000-8000-00000000abcd", cursor.ID)

	zero, err := DecodeToken(EncodeToken(time.Time{}, time.Time{}, "x"))
	require.NoError(t, err)
	assert.True(t, zero.Date.IsZero())
	assert.True(t, zero.CreatedAt.IsZero())
}

func TestDecodeTokenError(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		message string
	}{
		{"not base64", "this is not base64!", "base64 decode"},
		{"missing id", base64.URLEncoding.EncodeToString([]byte("2024-04-01T00:00:00Z|2024-04-01T00:00:00Z")), "split"},
		{"empty id", base64.URLEncoding.EncodeToString([]byte("2024-04-01T00:00:00Z|2024-04-01T00:00:00Z|")), "split"},
		{"bad date", base64.URLEncoding.EncodeToString([]byte("notadate|2024-04-01T00:00:00Z|x")), "date parse"},
		{"bad created_at", base64.URLEncoding.EncodeToString([]byte("2024-04-01T00:00:00Z|later|x")), "created_at parse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeToken(tc.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestCursorAfter(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC) }
	at := func(h int) time.Time { return time.Date(2024, 4, 10, h, 0, 0, 0, time.UTC) }
	c := Cursor{Date: day(5), CreatedAt: at(12), ID: "m"}

	assert.True(t, c.After(day(4), at(23), "z"), "older date")
	assert.False(t, c.After(day(6), at(0), "a"), "newer date")
	assert.True(t, c.After(day(5), at(11), "z"), "same date, created earlier")
	assert.False(t, c.After(day(5), at(13), "a"), "same date, created later")
	assert.True(t, c.After(day(5), at(12), "a"), "tie broken by id")
	assert.False(t, c.After(day(5), at(12), "m"), "the cursor itself")
}
