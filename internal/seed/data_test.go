package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatasetIntegrity(t *testing.T) {
	require.Len(t, categories, 4)

	names := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		require.NotEmpty(t, cat.Name)
		_, dup := names[cat.Name]
		require.False(t, dup, "duplicate category %q", cat.Name)
		names[cat.Name] = struct{}{}

		require.NotEmpty(t, cat.Paragraphs, "category %q has no paragraphs", cat.Name)
		for pi, par := range cat.Paragraphs {
			require.NotEmpty(t, par.Text, "%s paragraph %d empty", cat.Name, pi)
			require.NotEmpty(t, par.Questions, "%s paragraph %d has no questions", cat.Name, pi)

			for qi, q := range par.Questions {
				require.NotEmpty(t, q.Text, "%s p%d q%d empty", cat.Name, pi, qi)
				require.Len(t, q.Options, 4, "%s p%d q%d options", cat.Name, pi, qi)
				require.Len(t, q.Answer, 1, "%s p%d q%d answer", cat.Name, pi, qi)

				// Answer letter must address one of the options.
				idx := strings.Index("ABCD", q.Answer)
				require.GreaterOrEqual(t, idx, 0, "%s p%d q%d answer %q", cat.Name, pi, qi, q.Answer)
				require.Less(t, idx, len(q.Options))

				// Option texts carry no pre-rendered letter labels.
				for _, opt := range q.Options {
					require.NotEmpty(t, opt)
					require.False(t, strings.HasPrefix(opt, "("), "option %q looks pre-labelled", opt)
				}
			}
		}
	}
}

func TestDatasetHasMultiParagraphCategory(t *testing.T) {
	// Random paragraph selection only matters if some category offers a choice.
	multi := false
	for _, cat := range categories {
		if len(cat.Paragraphs) > 1 {
			multi = true
		}
	}
	require.True(t, multi)
}
