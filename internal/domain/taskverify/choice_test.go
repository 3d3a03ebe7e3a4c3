package taskverify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/testutil"
)

func Test_directionVerifier_Verify(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
	}{
		{name: "exact match", answer: "North-West", wantCorrect: true},
		{name: "case insensitive match", answer: "north-west", wantCorrect: true},
		{name: "surrounding spaces", answer: " North-West ", wantCorrect: true},
		{name: "wrong direction", answer: "South", wantCorrect: false},
	}

	ctx := testutil.MockContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := newDirectionVerifier(ctx, map[string]any{
				"answer":  "North-West",
				"options": []any{"North-West", "South", "East"},
			})
			require.NoError(t, err)

			got, err := verifier.Verify(ctx, entity.Map{"answer": tt.answer})
			require.NoError(t, err)
			require.Equal(t, tt.wantCorrect, got.Correct)
		})
	}
}

func Test_riddleVerifier_Verify(t *testing.T) {
	ctx := testutil.MockContext()
	verifier, err := newRiddleVerifier(ctx, map[string]any{
		"answer":  "A shadow",
		"options": []any{"A shadow", "A mirror", "An echo"},
	})
	require.NoError(t, err)

	got, err := verifier.Verify(ctx, entity.Map{"answer": "A shadow"})
	require.NoError(t, err)
	require.True(t, got.Correct)
	require.Equal(t, 100, got.Score)

	got, err = verifier.Verify(ctx, entity.Map{"answer": "An echo"})
	require.NoError(t, err)
	require.False(t, got.Correct)
	require.Equal(t, 0, got.Score)
}

func Test_newChoiceVerifiers_missingAnswer(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := newDirectionVerifier(ctx, map[string]any{"options": []any{"North"}})
	require.Error(t, err)

	_, err = newRiddleVerifier(ctx, map[string]any{"options": []any{"A mirror"}})
	require.Error(t, err)
}
