package shoppinglist

import (
	"context"
	"fmt"
	"strings"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/google/uuid"
)

const reportFilename = "shopping_list.txt"

type (
	ShoppingListService interface {
		Aggregate(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
		Download(ctx context.Context, userID string) (string, []byte, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{shoppingListRepository: shoppingListRepository}
}

func (s *shoppingListService) Aggregate(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.shoppingListRepository.GetShoppingList(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrShoppingListEmpty
	}
	return items, nil
}

// Download renders the aggregated list as a plain-text report and returns
// it together with the attachment filename.
func (s *shoppingListService) Download(ctx context.Context, userID string) (string, []byte, error) {
	items, err := s.Aggregate(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	return reportFilename, []byte(renderReport(items)), nil
}

func renderReport(items []domain.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString("Shopping list:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s (%s) - %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	return b.String()
}
