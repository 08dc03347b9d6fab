package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/VyacheslavShestakov09/foodgram/entities"
	"github.com/VyacheslavShestakov09/foodgram/internal/utils"
	"github.com/VyacheslavShestakov09/foodgram/internal/utils/storage"
	"github.com/VyacheslavShestakov09/foodgram/pkg/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipe(ctx context.Context, recipeID string, callerID string) (domain.RecipeResponse, error)
		GetRecipeShort(ctx context.Context, recipeID string) (domain.RecipeShortResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetShortLink(ctx context.Context, recipeID string) (domain.ShortLinkResponse, error)
		ResolveShortCode(ctx context.Context, code string) (string, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		catalogRepository catalog.CatalogRepository
		s3                storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, catalogRepository catalog.CatalogRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		catalogRepository: catalogRepository,
		s3:                s3,
	}
}

// validateComposition checks every composition invariant and reports all
// violations at once. On success it returns the referenced tag rows and the
// ingredient lines in request order.
func (s *recipeService) validateComposition(
	ctx context.Context,
	tagIDs []string,
	lines []domain.IngredientLineRequest,
	cookingTime int,
	image string,
	imageRequired bool,
) ([]*entities.Tag, []*entities.RecipeIngredient, error) {
	vErr := &domain.ValidationError{}

	if len(tagIDs) == 0 {
		vErr.Add("tags: at least one tag is required")
	}
	seenTags := make(map[string]bool, len(tagIDs))
	for _, id := range tagIDs {
		if seenTags[id] {
			vErr.Add(fmt.Sprintf("tags: duplicate tag %s", id))
		}
		seenTags[id] = true
		if _, err := uuid.Parse(id); err != nil {
			vErr.Add(fmt.Sprintf("tags: invalid tag id %s", id))
		}
	}

	if len(lines) == 0 {
		vErr.Add("ingredients: at least one ingredient is required")
	}
	seenIngredients := make(map[string]bool, len(lines))
	for _, line := range lines {
		if seenIngredients[line.ID] {
			vErr.Add(fmt.Sprintf("ingredients: duplicate ingredient %s", line.ID))
		}
		seenIngredients[line.ID] = true
		if _, err := uuid.Parse(line.ID); err != nil {
			vErr.Add(fmt.Sprintf("ingredients: invalid ingredient id %s", line.ID))
		}
		if line.Amount < domain.MinPositiveSmallInt || line.Amount > domain.MaxPositiveSmallInt {
			vErr.Add(fmt.Sprintf("ingredients: amount for %s must be between %d and %d",
				line.ID, domain.MinPositiveSmallInt, domain.MaxPositiveSmallInt))
		}
	}

	if cookingTime < domain.MinPositiveSmallInt || cookingTime > domain.MaxPositiveSmallInt {
		vErr.Add(fmt.Sprintf("cooking_time: must be between %d and %d",
			domain.MinPositiveSmallInt, domain.MaxPositiveSmallInt))
	}

	if imageRequired && image == "" {
		vErr.Add("image: image is required")
	}

	if vErr.HasViolations() {
		return nil, nil, vErr
	}

	// Referenced catalog entries must exist. The catalog is read-only here.
	tags, err := s.catalogRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	foundTags := make(map[string]bool, len(tags))
	for _, tag := range tags {
		foundTags[tag.ID.String()] = true
	}
	for _, id := range tagIDs {
		if !foundTags[id] {
			vErr.Add(fmt.Sprintf("tags: unknown tag %s", id))
		}
	}

	ingredientIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		ingredientIDs = append(ingredientIDs, line.ID)
	}
	ingredients, err := s.catalogRepository.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	foundIngredients := make(map[string]bool, len(ingredients))
	for _, ingredient := range ingredients {
		foundIngredients[ingredient.ID.String()] = true
	}
	for _, line := range lines {
		if !foundIngredients[line.ID] {
			vErr.Add(fmt.Sprintf("ingredients: unknown ingredient %s", line.ID))
		}
	}

	if vErr.HasViolations() {
		return nil, nil, vErr
	}

	rows := make([]*entities.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, &entities.RecipeIngredient{
			ID:           uuid.New(),
			IngredientID: uuid.MustParse(line.ID),
			Amount:       line.Amount,
		})
	}
	return tags, rows, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	tags, lines, err := s.validateComposition(ctx, req.Tags, req.Ingredients, req.CookingTime, req.Image, true)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	shortCode, err := generateShortCode(ctx, s.recipeRepository.ShortCodeExists)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		ImageURL:    imageURL,
		ShortCode:   shortCode,
		PubDate:     time.Now(),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, lines, tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	saved, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toReadView(ctx, saved, authorID), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.AuthorID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeAuthor
	}

	tags, lines, err := s.validateComposition(ctx, req.Tags, req.Ingredients, req.CookingTime, req.Image, false)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ImageURL = imageURL
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	// ShortCode and PubDate are immutable once assigned.

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, lines, tags); err != nil {
		return domain.RecipeResponse{}, err
	}

	saved, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toReadView(ctx, saved, userID), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != userID {
		return domain.ErrNotRecipeAuthor
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe.ID)
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string, callerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toReadView(ctx, recipe, callerID), nil
}

func (s *recipeService) GetRecipeShort(ctx context.Context, recipeID string) (domain.RecipeShortResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeShortResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeShortResponse{}, err
	}
	return domain.RecipeShortResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, s.toReadView(ctx, recipe, filter.UserID))
	}
	return result, count, nil
}

func (s *recipeService) GetShortLink(ctx context.Context, recipeID string) (domain.ShortLinkResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShortLinkResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ShortLinkResponse{}, err
	}

	return domain.ShortLinkResponse{
		ShortLink: fmt.Sprintf("%s/s/%s", utils.GetConfig("APP_URL"), recipe.ShortCode),
	}, nil
}

// ResolveShortCode maps a short code to the canonical recipe resource path.
func (s *recipeService) ResolveShortCode(ctx context.Context, code string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrShortCodeNotFound
		}
		return "", err
	}
	return fmt.Sprintf("/api/recipes/%s", recipe.ID.String()), nil
}

func (s *recipeService) uploadImage(ctx context.Context, payload string) (string, error) {
	data, contentType, ext, err := utils.DecodeBase64Image(payload)
	if err != nil {
		return "", domain.NewValidationError("image: " + err.Error())
	}
	key := fmt.Sprintf("recipe_images/%s%s", uuid.New().String(), ext)
	return s.s3.UploadFile(ctx, key, data, contentType)
}

// toReadView renders the stored recipe through the read model. Relation
// flags stay false for anonymous callers.
func (s *recipeService) toReadView(ctx context.Context, recipe *entities.Recipe, callerID string) domain.RecipeResponse {
	isFavorited := false
	isInCart := false
	isSubscribed := false
	if callerID != "" {
		if callerUUID, err := uuid.Parse(callerID); err == nil {
			isFavorited, _ = s.recipeRepository.IsFavorited(ctx, callerUUID, recipe.ID)
			isInCart, _ = s.recipeRepository.IsInShoppingCart(ctx, callerUUID, recipe.ID)
			isSubscribed, _ = s.recipeRepository.IsSubscribed(ctx, callerUUID, recipe.AuthorID)
		}
	}

	author := domain.UserResponse{ID: recipe.AuthorID.String(), IsSubscribed: isSubscribed}
	if recipe.Author != nil {
		author.Email = recipe.Author.Email
		author.Username = recipe.Author.Username
		author.FirstName = recipe.Author.FirstName
		author.LastName = recipe.Author.LastName
		author.Avatar = recipe.Author.AvatarURL
	}

	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, domain.TagResponse{
			ID:   tag.ID.String(),
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}

	ingredients := make([]domain.IngredientLineResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		res := domain.IngredientLineResponse{
			ID:     line.IngredientID.String(),
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			res.Name = line.Ingredient.Name
			res.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, res)
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Author:           author,
		Tags:             tags,
		Ingredients:      ingredients,
		Name:             recipe.Name,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Image:            recipe.ImageURL,
	}
}
