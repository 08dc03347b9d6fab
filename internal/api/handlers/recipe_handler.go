package handlers

import (
	"fmt"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/VyacheslavShestakov09/foodgram/internal/api/presenters"
	"github.com/VyacheslavShestakov09/foodgram/pkg/recipe"
	"github.com/VyacheslavShestakov09/foodgram/pkg/relation"
	"github.com/VyacheslavShestakov09/foodgram/pkg/shoppinglist"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetShortLink(c *fiber.Ctx) error
		ResolveShortLink(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
		DownloadShoppingCart(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService       recipe.RecipeService
		relationService     relation.RelationService
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	relationService relation.RelationService,
	shoppingListService shoppinglist.ShoppingListService,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:       recipeService,
		relationService:     relationService,
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	page, limit := paginationParams(c)

	filter := domain.RecipeFilter{
		AuthorID: c.Query("author"),
		UserID:   callerID,
	}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		filter.TagSlugs = append(filter.TagSlugs, string(slug))
	}
	// Relation filters only apply to authenticated callers.
	if callerID != "" {
		filter.Favorited = boolQuery(c, "is_favorited")
		filter.InCart = boolQuery(c, "is_in_shopping_cart")
	}

	recipes, count, err := h.recipeService.GetRecipes(c.Context(), filter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, paginatedPayload(recipes, count, page, limit), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipe(c.Context(), recipeID, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetShortLink(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetShortLink(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedGetShortLink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShortLink)
}

// ResolveShortLink redirects a short code to the canonical recipe URL.
func (h *recipeHandler) ResolveShortLink(c *fiber.Ctx) error {
	code := c.Params("code")

	path, err := h.recipeService.ResolveShortCode(c.Context(), code)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedGetShortLink, err)
	}

	return c.Redirect(path, fiber.StatusFound)
}

func (h *recipeHandler) AddFavorite(c *fiber.Ctx) error {
	return h.addRelation(c, domain.RelationFavorite)
}

func (h *recipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.removeRelation(c, domain.RelationFavorite)
}

func (h *recipeHandler) AddToShoppingCart(c *fiber.Ctx) error {
	return h.addRelation(c, domain.RelationShoppingCart)
}

func (h *recipeHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return h.removeRelation(c, domain.RelationShoppingCart)
}

func (h *recipeHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	filename, report, err := h.shoppingListService.Download(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedGetShoppingList, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(report)
}

// boolQuery reads a boolean filter parameter, accepting both the numeric and
// the literal spelling.
func boolQuery(c *fiber.Ctx, key string) bool {
	value := c.Query(key)
	return value == "1" || value == "true"
}

// addRelation marks a recipe (favorite or cart) and answers with the short
// recipe view, same shape for both relation kinds.
func (h *recipeHandler) addRelation(c *fiber.Ctx, kind domain.RelationKind) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.relationService.Add(c.Context(), kind, userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedAddRelation, err)
	}

	res, err := h.recipeService.GetRecipeShort(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedAddRelation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRelation)
}

func (h *recipeHandler) removeRelation(c *fiber.Ctx, kind domain.RelationKind) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.relationService.Remove(c.Context(), kind, userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedRemoveRelation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessRemoveRelation)
}
