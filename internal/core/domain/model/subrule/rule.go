// Package subrule provides the substitution rule reference data: per product,
// an ordered list of approved stand-in products consulted when a picker hits
// an out-of-stock or damaged shelf. Rules are written only by admins and read
// by the pick exception flow.
package subrule

import (
	"errors"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not created
// through NewRule or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

// Candidate is one approved substitute, ordered by Priority (lower first).
type Candidate struct {
	ProductID string
	VariantID string
	// Reason is a short admin note on why the substitute is acceptable
	Reason string
	// Priority orders candidates; lower values are offered first
	Priority int
}

// Rule maps one original product/variant to its ordered substitutes.
// The (productID, variantID) pair is unique across rules.
type Rule struct {
	// id is the unique identifier for the rule
	id kernel.UUID

	// productID is the original product the rule applies to
	productID string

	// variantID narrows the rule to one variant; empty matches any
	variantID string

	candidates []Candidate

	guard guard.ConstructorGuard
}

// NewRule creates a rule for the given original product. At least one
// candidate is required; candidates are kept sorted by priority.
func NewRule(id kernel.UUID, productID, variantID string, candidates []Candidate) (*Rule, error) {
	r := &Rule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProductID(productID),
		r.setCandidates(candidates),
	); err != nil {
		return nil, err
	}

	r.variantID = variantID
	return r, nil
}

// RestoreRule reconstructs a rule from persistence.
func RestoreRule(id kernel.UUID, productID, variantID string, candidates []Candidate) (*Rule, error) {
	return NewRule(id, productID, variantID, candidates)
}

// Validate ensures the Rule instance was created through a constructor.
func (r *Rule) Validate() error {
	if r == nil {
		return ErrRuleIsNotConstructed
	}
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID { return r.id }

// ProductID returns the original product reference.
func (r *Rule) ProductID() string { return r.productID }

// VariantID returns the original variant reference, empty for any variant.
func (r *Rule) VariantID() string { return r.variantID }

// Candidates returns the substitutes in priority order.
func (r *Rule) Candidates() []Candidate {
	return append([]Candidate(nil), r.candidates...)
}

// Matches reports whether the rule applies to the given product/variant.
// A rule with an empty variant matches any variant of its product.
func (r *Rule) Matches(productID, variantID string) bool {
	if r.productID != productID {
		return false
	}
	return r.variantID == "" || r.variantID == variantID
}

// ReplaceCandidates swaps the candidate list; used by admin edits.
func (r *Rule) ReplaceCandidates(candidates []Candidate) error {
	return r.setCandidates(candidates)
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	r.productID = productID
	return nil
}

func (r *Rule) setCandidates(candidates []Candidate) error {
	if len(candidates) == 0 {
		return errs.NewValueIsRequiredError("candidates")
	}
	for _, c := range candidates {
		if c.ProductID == "" {
			return errs.NewValueIsRequiredError("candidateProductId")
		}
	}

	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	r.candidates = sorted
	return nil
}
