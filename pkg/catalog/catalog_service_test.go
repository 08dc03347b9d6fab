package catalog

import (
	"context"
	"testing"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/VyacheslavShestakov09/foodgram/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCatalogRepository struct {
	tags        []*entities.Tag
	ingredients []*entities.Ingredient
}

func (f *fakeCatalogRepository) GetTags(context.Context) ([]*entities.Tag, error) {
	return f.tags, nil
}

func (f *fakeCatalogRepository) GetTagByID(_ context.Context, id string) (*entities.Tag, error) {
	for _, tag := range f.tags {
		if tag.ID.String() == id {
			return tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepository) GetTagsByIDs(_ context.Context, ids []string) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	for _, tag := range f.tags {
		for _, id := range ids {
			if tag.ID.String() == id {
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

func (f *fakeCatalogRepository) GetIngredients(context.Context, string) ([]*entities.Ingredient, error) {
	return f.ingredients, nil
}

func (f *fakeCatalogRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	for _, ingredient := range f.ingredients {
		if ingredient.ID.String() == id {
			return ingredient, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepository) GetIngredientsByIDs(_ context.Context, ids []string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	for _, ingredient := range f.ingredients {
		for _, id := range ids {
			if ingredient.ID.String() == id {
				ingredients = append(ingredients, ingredient)
			}
		}
	}
	return ingredients, nil
}

func TestCatalogService_GetTags(t *testing.T) {
	tag := &entities.Tag{ID: uuid.New(), Name: "Breakfast", Slug: "breakfast"}
	service := NewCatalogService(&fakeCatalogRepository{tags: []*entities.Tag{tag}})

	tags, err := service.GetTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, tag.ID.String(), tags[0].ID)
	require.Equal(t, "breakfast", tags[0].Slug)
}

func TestCatalogService_GetTagByIDNotFound(t *testing.T) {
	service := NewCatalogService(&fakeCatalogRepository{})

	_, err := service.GetTagByID(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrTagNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_GetIngredients(t *testing.T) {
	ingredient := &entities.Ingredient{ID: uuid.New(), Name: "salt", MeasurementUnit: "g"}
	service := NewCatalogService(&fakeCatalogRepository{ingredients: []*entities.Ingredient{ingredient}})

	ingredients, err := service.GetIngredients(context.Background(), "sal")
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	require.Equal(t, "g", ingredients[0].MeasurementUnit)
}

func TestCatalogService_GetIngredientByIDNotFound(t *testing.T) {
	service := NewCatalogService(&fakeCatalogRepository{})

	_, err := service.GetIngredientByID(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
