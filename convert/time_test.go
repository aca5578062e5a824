package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeOf(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want time.Time
	}{
		{"2024-09-09", time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC)},
		{"2024-09-09T08:15:00Z", time.Date(2024, 9, 9, 8, 15, 0, 0, time.UTC)},
		{"2024-09-09T08:15:00.5Z", time.Date(2024, 9, 9, 8, 15, 0, 500000000, time.UTC)},
		{"2024-09-09T08:15:00", time.Date(2024, 9, 9, 8, 15, 0, 0, time.UTC)},
		{"2024-09-09 08:15:00", time.Date(2024, 9, 9, 8, 15, 0, 0, time.UTC)},
		{"09/10/2024", time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)},
		{" 2024-09-09 ", time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := TimeOf(tc.in)
			require.True(t, ok)
			require.True(t, tc.want.Equal(got), "got %s", got)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, in := range []string{"", "abcde", "2024-13-01", "12"} {
			_, ok := TimeOf(in)
			require.False(t, ok, "input %q", in)
		}
	})

	t.Run("keeps offset", func(t *testing.T) {
		got, ok := TimeOf("2024-09-09T08:15:00+02:00")
		require.True(t, ok)
		require.True(t, time.Date(2024, 9, 9, 6, 15, 0, 0, time.UTC).Equal(got))
	})
}
