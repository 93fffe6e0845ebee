// Package subrulerepo provides data transfer objects and mapping functions for
// substitution rule persistence. Candidates are stored as a JSONB document so
// the rule travels as one row.
package subrulerepo

import (
	"encoding/json"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subrule"

	"github.com/google/uuid"
)

// RuleDTO represents the database structure for persisting substitution rules.
// The product/variant pair carries a composite index because the pick
// exception flow looks rules up by the original product.
type RuleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  string    `gorm:"index:idx_rules_product"`
	VariantID  string    `gorm:"index:idx_rules_product"`
	Candidates []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for substitution rules.
func (RuleDTO) TableName() string {
	return "substitution_rules"
}

type candidateDTO struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Priority  int    `json:"priority"`
}

// fromDomain converts a rule domain entity to its database representation.
func fromDomain(rule *subrule.Rule) (RuleDTO, error) {
	candidates := make([]candidateDTO, 0, len(rule.Candidates()))
	for _, c := range rule.Candidates() {
		candidates = append(candidates, candidateDTO{
			ProductID: c.ProductID,
			VariantID: c.VariantID,
			Reason:    c.Reason,
			Priority:  c.Priority,
		})
	}

	raw, err := json.Marshal(candidates)
	if err != nil {
		return RuleDTO{}, err
	}

	return RuleDTO{
		ID:         rule.ID().Bytes(),
		ProductID:  rule.ProductID(),
		VariantID:  rule.VariantID(),
		Candidates: raw,
	}, nil
}

// toDomain converts a database DTO to a rule domain entity.
func toDomain(dto RuleDTO) (*subrule.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var candidateDTOs []candidateDTO
	if err = json.Unmarshal(dto.Candidates, &candidateDTOs); err != nil {
		return nil, err
	}

	candidates := make([]subrule.Candidate, 0, len(candidateDTOs))
	for _, c := range candidateDTOs {
		candidates = append(candidates, subrule.Candidate{
			ProductID: c.ProductID,
			VariantID: c.VariantID,
			Reason:    c.Reason,
			Priority:  c.Priority,
		})
	}

	return subrule.RestoreRule(id, dto.ProductID, dto.VariantID, candidates)
}
