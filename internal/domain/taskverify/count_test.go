package taskverify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/testutil"
)

func Test_countConfirmVerifier_Verify(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		wantCorrect bool
		wantScore   int
	}{
		{name: "exact count", count: 10, wantCorrect: true, wantScore: 100},
		{name: "within tolerance", count: 12, wantCorrect: true, wantScore: 100},
		{name: "partial credit", count: 14, wantCorrect: false, wantScore: 50},
		{name: "partial credit below", count: 6, wantCorrect: false, wantScore: 50},
		{name: "far off", count: 20, wantCorrect: false, wantScore: 0},
	}

	ctx := testutil.MockContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := newCountConfirmVerifier(ctx, map[string]any{
				"correct_count": 10,
				"tolerance":     2,
			})
			require.NoError(t, err)

			got, err := verifier.Verify(ctx, entity.Map{"count": tt.count})
			require.NoError(t, err)
			require.Equal(t, tt.wantCorrect, got.Correct)
			require.Equal(t, tt.wantScore, got.Score)
		})
	}
}

func Test_newCountConfirmVerifier_invalidConfig(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newCountConfirmVerifier(ctx, map[string]any{"tolerance": 2})
	require.Error(t, err)

	_, err = newCountConfirmVerifier(ctx, map[string]any{"correct_count": 10, "tolerance": -1})
	require.Error(t, err)
}

func Test_countConfirmVerifier_Verify_missingCount(t *testing.T) {
	ctx := testutil.MockContext()
	verifier, err := newCountConfirmVerifier(ctx, map[string]any{"correct_count": 10, "tolerance": 2})
	require.NoError(t, err)

	_, err = verifier.Verify(ctx, entity.Map{})
	require.Error(t, err)
}
