package domain

import (
	"fmt"
)

// RelationKind names one of the unique-pair relations a user can hold.
// Favorite and ShoppingCart pair a user with a recipe, Subscription pairs a
// user with an author. All three forbid self-reference.
type RelationKind int

const (
	RelationFavorite RelationKind = iota
	RelationShoppingCart
	RelationSubscription
)

func (k RelationKind) String() string {
	switch k {
	case RelationFavorite:
		return "favorite"
	case RelationShoppingCart:
		return "shopping cart"
	case RelationSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

var (
	ErrSelfRelation     = fmt.Errorf("%w: cannot add your own recipe", ErrValidation)
	ErrRelationExists   = fmt.Errorf("relation %w", ErrConflict)
	ErrRelationNotFound = fmt.Errorf("relation %w", ErrNotFound)

	ErrShoppingListEmpty = fmt.Errorf("%w: shopping list is empty", ErrValidation)
)
