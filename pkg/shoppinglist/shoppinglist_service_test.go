package shoppinglist

import (
	"context"
	"sort"
	"testing"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type cartLine struct {
	name   string
	unit   string
	amount int
}

// fakeShoppingListRepository stores raw ingredient lines per cart recipe and
// aggregates them the way the SQL does: group by (name, unit), sum the
// amounts, order by name.
type fakeShoppingListRepository struct {
	carts map[uuid.UUID]map[uuid.UUID][]cartLine // user -> recipe -> lines
}

func newFakeShoppingListRepository() *fakeShoppingListRepository {
	return &fakeShoppingListRepository{carts: make(map[uuid.UUID]map[uuid.UUID][]cartLine)}
}

func (f *fakeShoppingListRepository) addRecipe(userID uuid.UUID, lines ...cartLine) {
	if f.carts[userID] == nil {
		f.carts[userID] = make(map[uuid.UUID][]cartLine)
	}
	f.carts[userID][uuid.New()] = lines
}

func (f *fakeShoppingListRepository) GetShoppingList(_ context.Context, userID uuid.UUID) ([]domain.ShoppingListItem, error) {
	type key struct{ name, unit string }
	totals := make(map[key]int)
	for _, lines := range f.carts[userID] {
		for _, line := range lines {
			totals[key{line.name, line.unit}] += line.amount
		}
	}

	items := make([]domain.ShoppingListItem, 0, len(totals))
	for k, total := range totals {
		items = append(items, domain.ShoppingListItem{Name: k.name, MeasurementUnit: k.unit, Total: total})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func TestShoppingListService_AggregateSumsAcrossRecipes(t *testing.T) {
	user := uuid.New()
	repo := newFakeShoppingListRepository()
	repo.addRecipe(user,
		cartLine{name: "salt", unit: "g", amount: 5},
		cartLine{name: "sugar", unit: "g", amount: 20},
	)
	repo.addRecipe(user,
		cartLine{name: "salt", unit: "g", amount: 10},
	)
	service := NewShoppingListService(repo)

	items, err := service.Aggregate(context.Background(), user.String())
	require.NoError(t, err)
	require.Equal(t, []domain.ShoppingListItem{
		{Name: "salt", MeasurementUnit: "g", Total: 15},
		{Name: "sugar", MeasurementUnit: "g", Total: 20},
	}, items)
}

func TestShoppingListService_AggregateKeepsUnitsApart(t *testing.T) {
	user := uuid.New()
	repo := newFakeShoppingListRepository()
	repo.addRecipe(user,
		cartLine{name: "milk", unit: "ml", amount: 200},
		cartLine{name: "milk", unit: "g", amount: 50},
	)
	service := NewShoppingListService(repo)

	items, err := service.Aggregate(context.Background(), user.String())
	require.NoError(t, err)
	require.Len(t, items, 2, "same name with different units must not merge")
}

func TestShoppingListService_AggregateOrdersByName(t *testing.T) {
	user := uuid.New()
	repo := newFakeShoppingListRepository()
	repo.addRecipe(user,
		cartLine{name: "sugar", unit: "g", amount: 20},
		cartLine{name: "flour", unit: "g", amount: 300},
		cartLine{name: "salt", unit: "g", amount: 5},
	)
	service := NewShoppingListService(repo)

	items, err := service.Aggregate(context.Background(), user.String())
	require.NoError(t, err)
	require.Equal(t, "flour", items[0].Name)
	require.Equal(t, "salt", items[1].Name)
	require.Equal(t, "sugar", items[2].Name)
}

func TestShoppingListService_AggregateEmptyCart(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())

	_, err := service.Aggregate(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrShoppingListEmpty)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestShoppingListService_Download(t *testing.T) {
	user := uuid.New()
	repo := newFakeShoppingListRepository()
	repo.addRecipe(user,
		cartLine{name: "salt", unit: "g", amount: 5},
		cartLine{name: "sugar", unit: "g", amount: 20},
	)
	repo.addRecipe(user,
		cartLine{name: "salt", unit: "g", amount: 10},
	)
	service := NewShoppingListService(repo)

	filename, report, err := service.Download(context.Background(), user.String())
	require.NoError(t, err)
	require.Equal(t, "shopping_list.txt", filename)
	require.Equal(t, "Shopping list:\n\nsalt (g) - 15\nsugar (g) - 20\n", string(report))
}

func TestShoppingListService_DownloadEmptyCart(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())

	_, _, err := service.Download(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrShoppingListEmpty)
}

func TestShoppingListService_BadUserID(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())

	_, err := service.Aggregate(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}
