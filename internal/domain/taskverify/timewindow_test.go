package taskverify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/testutil"
)

func Test_timeBasedVerifier_Verify(t *testing.T) {
	ctx := testutil.MockContext()
	now := time.Now().UTC()

	// A window wrapped around the current time always passes, and a window
	// starting in two hours never contains the current time. Both windows
	// wrap past midnight when needed, which exercises the wrap handling.
	inside := map[string]any{
		"start_time": now.Add(-time.Hour).Format("15:04"),
		"end_time":   now.Add(time.Hour).Format("15:04"),
	}
	outside := map[string]any{
		"start_time": now.Add(2 * time.Hour).Format("15:04"),
		"end_time":   now.Add(3 * time.Hour).Format("15:04"),
	}

	verifier, err := newTimeBasedVerifier(ctx, inside)
	require.NoError(t, err)

	got, err := verifier.Verify(ctx, entity.Map{})
	require.NoError(t, err)
	require.True(t, got.Correct)
	require.Equal(t, 100, got.Score)
	require.NotEmpty(t, got.Answer["submitted_at"])

	verifier, err = newTimeBasedVerifier(ctx, outside)
	require.NoError(t, err)

	got, err = verifier.Verify(ctx, entity.Map{})
	require.NoError(t, err)
	require.False(t, got.Correct)
}

func Test_newTimeBasedVerifier_invalidConfig(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newTimeBasedVerifier(ctx, map[string]any{"start_time": "25:00", "end_time": "10:00"})
	require.Error(t, err)

	_, err = newTimeBasedVerifier(ctx, map[string]any{"start_time": "09:00"})
	require.Error(t, err)
}

func Test_parseDayTime(t *testing.T) {
	got, err := parseDayTime("13:30")
	require.NoError(t, err)
	require.Equal(t, 13*time.Hour+30*time.Minute, got)
}
