package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// capturingRecipeService records the filter the listing handler builds.
type capturingRecipeService struct {
	filter domain.RecipeFilter
}

func (s *capturingRecipeService) CreateRecipe(context.Context, domain.CreateRecipeRequest, string) (domain.RecipeResponse, error) {
	return domain.RecipeResponse{}, nil
}

func (s *capturingRecipeService) UpdateRecipe(context.Context, string, domain.UpdateRecipeRequest, string) (domain.RecipeResponse, error) {
	return domain.RecipeResponse{}, nil
}

func (s *capturingRecipeService) DeleteRecipe(context.Context, string, string) error {
	return nil
}

func (s *capturingRecipeService) GetRecipe(context.Context, string, string) (domain.RecipeResponse, error) {
	return domain.RecipeResponse{}, nil
}

func (s *capturingRecipeService) GetRecipeShort(context.Context, string) (domain.RecipeShortResponse, error) {
	return domain.RecipeShortResponse{}, nil
}

func (s *capturingRecipeService) GetRecipes(_ context.Context, filter domain.RecipeFilter, _, _ int) ([]domain.RecipeResponse, int64, error) {
	s.filter = filter
	return nil, 0, nil
}

func (s *capturingRecipeService) GetShortLink(context.Context, string) (domain.ShortLinkResponse, error) {
	return domain.ShortLinkResponse{}, nil
}

func (s *capturingRecipeService) ResolveShortCode(context.Context, string) (string, error) {
	return "", nil
}

type noopRelationService struct{}

func (noopRelationService) Add(context.Context, domain.RelationKind, string, string) error {
	return nil
}

func (noopRelationService) Remove(context.Context, domain.RelationKind, string, string) error {
	return nil
}

func (noopRelationService) Exists(context.Context, domain.RelationKind, string, string) (bool, error) {
	return false, nil
}

type noopShoppingListService struct{}

func (noopShoppingListService) Aggregate(context.Context, string) ([]domain.ShoppingListItem, error) {
	return nil, domain.ErrShoppingListEmpty
}

func (noopShoppingListService) Download(context.Context, string) (string, []byte, error) {
	return "", nil, domain.ErrShoppingListEmpty
}

func setupListingApp(t *testing.T, callerID string) (*fiber.App, *capturingRecipeService) {
	t.Helper()
	service := &capturingRecipeService{}
	handler := NewRecipeHandler(service, noopRelationService{}, noopShoppingListService{}, validator.New())

	app := fiber.New()
	app.Get("/api/recipes", func(c *fiber.Ctx) error {
		c.Locals("user_id", callerID)
		return c.Next()
	}, handler.GetRecipes)
	return app, service
}

func TestRecipeHandler_ListFilterSpellings(t *testing.T) {
	app, service := setupListingApp(t, "caller-id")

	for _, value := range []string{"1", "true"} {
		res, err := app.Test(httptest.NewRequest("GET", "/api/recipes?is_favorited="+value+"&is_in_shopping_cart="+value, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.True(t, service.filter.Favorited, "is_favorited=%s should filter", value)
		require.True(t, service.filter.InCart, "is_in_shopping_cart=%s should filter", value)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/api/recipes?is_favorited=0", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	require.False(t, service.filter.Favorited)
}

func TestRecipeHandler_ListFiltersIgnoredForAnonymous(t *testing.T) {
	app, service := setupListingApp(t, "")

	res, err := app.Test(httptest.NewRequest("GET", "/api/recipes?is_favorited=true&is_in_shopping_cart=true", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	require.False(t, service.filter.Favorited)
	require.False(t, service.filter.InCart)
	require.Empty(t, service.filter.UserID)
}

func TestRecipeHandler_ListTagFilters(t *testing.T) {
	app, service := setupListingApp(t, "caller-id")

	res, err := app.Test(httptest.NewRequest("GET", "/api/recipes?tags=breakfast&tags=dinner", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	require.Equal(t, []string{"breakfast", "dinner"}, service.filter.TagSlugs)
}
