package relation

import (
	"context"
	"errors"
	"time"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/VyacheslavShestakov09/foodgram/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RelationRepository interface {
		Exists(ctx context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) (bool, error)
		Create(ctx context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) error
		Delete(ctx context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) (int64, error)
		GetRecipeAuthor(ctx context.Context, recipeID uuid.UUID) (uuid.UUID, error)
		UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
	}

	relationRepository struct {
		db *gorm.DB
	}
)

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

// model returns an empty row of the join entity backing the relation kind.
func model(kind domain.RelationKind) interface{} {
	switch kind {
	case domain.RelationFavorite:
		return &entities.Favorite{}
	case domain.RelationShoppingCart:
		return &entities.ShoppingCart{}
	default:
		return &entities.Subscription{}
	}
}

// pairColumn names the target column: recipes for favorite/cart, the author
// for subscriptions.
func pairColumn(kind domain.RelationKind) string {
	if kind == domain.RelationSubscription {
		return "author_id"
	}
	return "recipe_id"
}

func (r *relationRepository) Exists(ctx context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(model(kind)).
		Where("user_id = ? AND "+pairColumn(kind)+" = ?", userID, targetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *relationRepository) Create(ctx context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) error {
	var row interface{}
	now := time.Now()

	switch kind {
	case domain.RelationFavorite:
		row = &entities.Favorite{ID: uuid.New(), UserID: userID, RecipeID: targetID, CreatedAt: now}
	case domain.RelationShoppingCart:
		row = &entities.ShoppingCart{ID: uuid.New(), UserID: userID, RecipeID: targetID, CreatedAt: now}
	default:
		row = &entities.Subscription{ID: uuid.New(), UserID: userID, AuthorID: targetID, CreatedAt: now}
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		// A concurrent insert of the same pair loses against the unique
		// index; surface it as a conflict, not a crash.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRelationExists
		}
		return err
	}
	return nil
}

func (r *relationRepository) Delete(ctx context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND "+pairColumn(kind)+" = ?", userID, targetID).
		Delete(model(kind))
	return res.RowsAffected, res.Error
}

func (r *relationRepository) GetRecipeAuthor(ctx context.Context, recipeID uuid.UUID) (uuid.UUID, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Select("id", "author_id").Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		return uuid.Nil, err
	}
	return recipe.AuthorID, nil
}

func (r *relationRepository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
