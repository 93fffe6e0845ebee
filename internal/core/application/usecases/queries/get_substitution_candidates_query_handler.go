package queries

import (
	"context"
	"encoding/json"
	"sort"

	"gorm.io/gorm"
)

// GetSubstitutionCandidatesQueryHandler reads the matching rules' candidate
// documents and merges them into one priority-ordered list. Variant-scoped
// rules and variant-agnostic rules can both match; the merge keeps the
// priority ordering stable across rules.
type GetSubstitutionCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewGetSubstitutionCandidatesQueryHandler creates a handler for candidate lookups.
func NewGetSubstitutionCandidatesQueryHandler(db *gorm.DB) GetSubstitutionCandidatesQueryHandler {
	return GetSubstitutionCandidatesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSubstitutionCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetSubstitutionCandidatesQuery,
) ([]GetSubstitutionCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT candidates
		FROM substitution_rules
		WHERE product_id = ? AND (variant_id = ? OR variant_id = '')
	`, query.ProductID(), query.VariantID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]GetSubstitutionCandidatesQueryResponse, 0)
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		var batch []GetSubstitutionCandidatesQueryResponse
		if err = json.Unmarshal(raw, &batch); err != nil {
			return nil, err
		}
		candidates = append(candidates, batch...)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})

	return candidates, nil
}
