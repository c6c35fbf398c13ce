package queries

import (
	"fmt"
	"strings"

	apperrors "wordgraph/pkg/errors"
	"wordgraph/pkg/utils"
)

// GetRelatedWordsQuery asks for the one-level related-words graph of a term
type GetRelatedWordsQuery struct {
	Query string `json:"query" validate:"required"`
}

// Validate validates the query; a whitespace-only term counts as missing
func (q GetRelatedWordsQuery) Validate() error {
	q.Query = strings.TrimSpace(q.Query)
	if err := utils.ValidateStruct(q); err != nil {
		return apperrors.NewMissingQueryError()
	}
	return nil
}

// GetRelatedWordsDeepQuery asks for a recursively expanded graph.
// MaxDepth is the boundary cap and is not part of the request itself.
type GetRelatedWordsDeepQuery struct {
	Query    string `json:"query" validate:"required"`
	Depth    int    `json:"depth" validate:"gte=0"`
	MaxDepth int    `json:"-" validate:"gte=0"`
}

// Validate validates the query
func (q GetRelatedWordsDeepQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return apperrors.NewMissingQueryError()
	}
	if err := utils.ValidateStruct(q); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if q.Depth > q.MaxDepth {
		return apperrors.NewValidationError(fmt.Sprintf("depth must be at most %d", q.MaxDepth))
	}
	return nil
}
