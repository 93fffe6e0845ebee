package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetSubstitutionCandidatesQueryIsNotConstructed = errors.New(
		"GetSubstitutionCandidatesQuery must be created via NewGetSubstitutionCandidatesQuery constructor",
	)
)

// GetSubstitutionCandidatesQuery retrieves the approved substitutes for one
// product, best candidate first. Pickers call this when a shelf turns up
// empty or damaged.
//
// Example:
//
//	query, err := NewGetSubstitutionCandidatesQuery("prod-1", "var-1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetSubstitutionCandidatesQueryHandler(db)
//	candidates, err := handler.Handle(ctx, query)
type GetSubstitutionCandidatesQuery struct { //nolint:recvcheck //using for validation
	productID string
	variantID string

	guard guard.ConstructorGuard
}

// NewGetSubstitutionCandidatesQuery creates a candidate lookup. The product
// is required; an empty variant matches only variant-agnostic rules.
func NewGetSubstitutionCandidatesQuery(productID, variantID string) (GetSubstitutionCandidatesQuery, error) {
	q := GetSubstitutionCandidatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setProductID(productID); err != nil {
		return GetSubstitutionCandidatesQuery{}, err
	}
	q.variantID = variantID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSubstitutionCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetSubstitutionCandidatesQueryIsNotConstructed)
}

// ProductID returns the original product identifier.
func (q GetSubstitutionCandidatesQuery) ProductID() string { return q.productID }

// VariantID returns the original variant identifier.
func (q GetSubstitutionCandidatesQuery) VariantID() string { return q.variantID }

func (q *GetSubstitutionCandidatesQuery) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	q.productID = productID
	return nil
}

// GetSubstitutionCandidatesQueryResponse is one approved substitute.
type GetSubstitutionCandidatesQueryResponse struct {
	ProductID string
	VariantID string
	Reason    string
	Priority  int
}
