package queries

import (
	"testing"

	apperrors "wordgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRelatedWordsQuery_Validate(t *testing.T) {
	assert.NoError(t, GetRelatedWordsQuery{Query: "Go"}.Validate())

	assert.NoError(t, GetRelatedWordsQuery{Query: "  Go  "}.Validate())

	for _, q := range []string{"", "   ", "\t\n"} {
		err := GetRelatedWordsQuery{Query: q}.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, apperrors.MissingQueryMessage, apperrors.GetAppError(err).Message)
	}
}

func TestGetRelatedWordsDeepQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   GetRelatedWordsDeepQuery
		wantMsg string
	}{
		{name: "valid", query: GetRelatedWordsDeepQuery{Query: "Go", Depth: 2, MaxDepth: 3}},
		{name: "depth zero", query: GetRelatedWordsDeepQuery{Query: "Go", Depth: 0, MaxDepth: 3}},
		{name: "at cap", query: GetRelatedWordsDeepQuery{Query: "Go", Depth: 3, MaxDepth: 3}},
		{name: "missing query", query: GetRelatedWordsDeepQuery{Depth: 1, MaxDepth: 3}, wantMsg: apperrors.MissingQueryMessage},
		{name: "negative", query: GetRelatedWordsDeepQuery{Query: "Go", Depth: -1, MaxDepth: 3}, wantMsg: "depth must be at least 0"},
		{name: "over cap", query: GetRelatedWordsDeepQuery{Query: "Go", Depth: 4, MaxDepth: 3}, wantMsg: "depth must be at most 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, apperrors.GetAppError(err).Message)
		})
	}
}
