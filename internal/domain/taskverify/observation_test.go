package taskverify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/testutil"
)

func Test_observationMatchVerifier_Verify(t *testing.T) {
	tests := []struct {
		name        string
		selected    []string
		wantCorrect bool
		wantScore   int
	}{
		{
			name:        "all correct options selected",
			selected:    []string{"gargoyle", "sundial"},
			wantCorrect: true,
			wantScore:   100,
		},
		{
			name:        "one correct only",
			selected:    []string{"gargoyle"},
			wantCorrect: false,
			wantScore:   50,
		},
		{
			name:        "wrong pick cancels a right one",
			selected:    []string{"gargoyle", "fountain"},
			wantCorrect: false,
			wantScore:   0,
		},
		{
			name:        "over-selection is penalized",
			selected:    []string{"gargoyle", "sundial", "fountain"},
			wantCorrect: false,
			wantScore:   50,
		},
		{
			name:        "only wrong picks",
			selected:    []string{"fountain", "bench"},
			wantCorrect: false,
			wantScore:   0,
		},
	}

	ctx := testutil.MockContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := newObservationMatchVerifier(ctx, map[string]any{
				"options":         []any{"gargoyle", "sundial", "fountain", "bench"},
				"correct_options": []any{"gargoyle", "sundial"},
			})
			require.NoError(t, err)

			got, err := verifier.Verify(ctx, entity.Map{"selected": tt.selected})
			require.NoError(t, err)
			require.Equal(t, tt.wantCorrect, got.Correct)
			require.Equal(t, tt.wantScore, got.Score)
		})
	}
}

func Test_observationMatchVerifier_emptySelection(t *testing.T) {
	ctx := testutil.MockContext()
	verifier, err := newObservationMatchVerifier(ctx, map[string]any{
		"correct_options": []any{"gargoyle"},
	})
	require.NoError(t, err)

	_, err = verifier.Verify(ctx, entity.Map{"selected": []string{}})
	require.Error(t, err)
}
