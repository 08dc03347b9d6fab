package domain

import (
	"fmt"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessGetShortLink     = "success get short link"
	MessageSuccessAddRelation      = "recipe added successfully"
	MessageSuccessRemoveRelation   = "recipe removed successfully"
	MessageSuccessGetShoppingList  = "success get shopping list"
	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedCreateRecipe      = "failed to create recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedGetShortLink      = "failed to get short link"
	MessageFailedAddRelation       = "failed to add recipe"
	MessageFailedRemoveRelation    = "failed to remove recipe"
	MessageFailedGetShoppingList   = "failed to get shopping list"

	ErrRecipeNotFound      = fmt.Errorf("recipe %w", ErrNotFound)
	ErrNotRecipeAuthor     = fmt.Errorf("%w: only the author can modify a recipe", ErrNotAllowed)
	ErrShortCodeGeneration = fmt.Errorf("short code generation exhausted retries")
	ErrShortCodeNotFound   = fmt.Errorf("short link %w", ErrNotFound)
)

type (
	IngredientLineRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                  `json:"name" validate:"required,max=50"`
		Text        string                  `json:"text" validate:"required"`
		CookingTime int                     `json:"cooking_time" validate:"required"`
		Image       string                  `json:"image"`
		Tags        []string                `json:"tags"`
		Ingredients []IngredientLineRequest `json:"ingredients"`
	}

	// UpdateRecipeRequest carries the complete desired state: tags and
	// ingredient lines fully replace the stored sets. Image is optional and
	// keeps the stored one when empty.
	UpdateRecipeRequest struct {
		Name        string                  `json:"name" validate:"required,max=50"`
		Text        string                  `json:"text" validate:"required"`
		CookingTime int                     `json:"cooking_time" validate:"required"`
		Image       string                  `json:"image"`
		Tags        []string                `json:"tags"`
		Ingredients []IngredientLineRequest `json:"ingredients"`
	}

	IngredientLineResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	// RecipeResponse is the read view. Every write path re-renders the
	// persisted recipe through this view.
	RecipeResponse struct {
		ID                string                   `json:"id"`
		Author            UserResponse             `json:"author"`
		Tags              []TagResponse            `json:"tags"`
		Ingredients       []IngredientLineResponse `json:"ingredients"`
		Name              string                   `json:"name"`
		Text              string                   `json:"text"`
		CookingTime       int                      `json:"cooking_time"`
		IsFavorited       bool                     `json:"is_favorited"`
		IsInShoppingCart  bool                     `json:"is_in_shopping_cart"`
		Image             string                   `json:"image"`
	}

	RecipeShortResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	ShortLinkResponse struct {
		ShortLink string `json:"short-link"`
	}

	// RecipeFilter narrows recipe listings. Tag slugs are OR-ed together;
	// distinct fields are AND-ed. Favorited/InCart are ignored when UserID
	// is empty (anonymous caller).
	RecipeFilter struct {
		TagSlugs  []string
		AuthorID  string
		Favorited bool
		InCart    bool
		UserID    string
	}

	// ShoppingListItem is one aggregated purchase line: amounts summed over
	// every cart recipe, grouped by ingredient name and unit.
	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Total           int    `json:"total"`
	}
)
