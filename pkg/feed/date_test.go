package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{name: "rfc1123", token: "Mon, 01 Jan 2024 00:00:00 GMT", want: want, ok: true},
		{name: "rfc1123 with numeric zone", token: "Mon, 01 Jan 2024 02:00:00 +0200", want: want, ok: true},
		{name: "rfc3339", token: "2024-01-01T00:00:00Z", want: want, ok: true},
		{name: "rfc3339 with offset", token: "2024-01-01T03:00:00+03:00", want: want, ok: true},
		{name: "date only", token: "2024-01-01", want: want, ok: true},
		{name: "surrounding spaces", token: "  2024-01-01T00:00:00Z \n", want: want, ok: true},
		{name: "empty", token: "", ok: false},
		{name: "garbage", token: "not a date", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.token)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v", got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestSortKey(t *testing.T) {
	assert.Equal(t, "2024-01-01T00:00:00.000Z", SortKey("Mon, 01 Jan 2024 00:00:00 GMT"))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", SortKey("2024-01-01T00:00:00Z"))
	assert.Empty(t, SortKey(""))
	assert.Empty(t, SortKey("soon"))

	// keys with and without fractions still compare in time order
	early := SortKey("2024-01-01T00:00:00.500Z")
	late := SortKey("2024-01-01T00:00:01Z")
	assert.Less(t, early, late)
}
