package relation

import (
	"context"
	"errors"
	"testing"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pair struct {
	kind   domain.RelationKind
	user   uuid.UUID
	target uuid.UUID
}

// fakeRelationRepository keeps relations in memory and mimics the unique
// index on (user, target) per kind.
type fakeRelationRepository struct {
	pairs   map[pair]bool
	authors map[uuid.UUID]uuid.UUID // recipe -> author
	users   map[uuid.UUID]bool
}

func newFakeRelationRepository() *fakeRelationRepository {
	return &fakeRelationRepository{
		pairs:   make(map[pair]bool),
		authors: make(map[uuid.UUID]uuid.UUID),
		users:   make(map[uuid.UUID]bool),
	}
}

func (f *fakeRelationRepository) Exists(_ context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) (bool, error) {
	return f.pairs[pair{kind, userID, targetID}], nil
}

func (f *fakeRelationRepository) Create(_ context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) error {
	p := pair{kind, userID, targetID}
	if f.pairs[p] {
		return domain.ErrRelationExists
	}
	f.pairs[p] = true
	return nil
}

func (f *fakeRelationRepository) Delete(_ context.Context, kind domain.RelationKind, userID, targetID uuid.UUID) (int64, error) {
	p := pair{kind, userID, targetID}
	if !f.pairs[p] {
		return 0, nil
	}
	delete(f.pairs, p)
	return 1, nil
}

func (f *fakeRelationRepository) GetRecipeAuthor(_ context.Context, recipeID uuid.UUID) (uuid.UUID, error) {
	author, ok := f.authors[recipeID]
	if !ok {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return author, nil
}

func (f *fakeRelationRepository) UserExists(_ context.Context, userID uuid.UUID) (bool, error) {
	return f.users[userID], nil
}

func TestRelationService_AddFavorite(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	user := uuid.New()
	author := uuid.New()
	recipe := uuid.New()
	repo.authors[recipe] = author

	err := service.Add(context.Background(), domain.RelationFavorite, user.String(), recipe.String())
	require.NoError(t, err)

	found, err := service.Exists(context.Background(), domain.RelationFavorite, user.String(), recipe.String())
	require.NoError(t, err)
	require.True(t, found)
}

func TestRelationService_AddOwnRecipeRejected(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	author := uuid.New()
	recipe := uuid.New()
	repo.authors[recipe] = author

	err := service.Add(context.Background(), domain.RelationShoppingCart, author.String(), recipe.String())
	require.ErrorIs(t, err, domain.ErrSelfRelation)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRelationService_AddUnknownRecipe(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	err := service.Add(context.Background(), domain.RelationFavorite, uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRelationService_AddDuplicate(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	user := uuid.New()
	recipe := uuid.New()
	repo.authors[recipe] = uuid.New()

	require.NoError(t, service.Add(context.Background(), domain.RelationFavorite, user.String(), recipe.String()))

	err := service.Add(context.Background(), domain.RelationFavorite, user.String(), recipe.String())
	require.ErrorIs(t, err, domain.ErrRelationExists)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestRelationService_SameRecipeDistinctKinds(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	user := uuid.New()
	recipe := uuid.New()
	repo.authors[recipe] = uuid.New()

	require.NoError(t, service.Add(context.Background(), domain.RelationFavorite, user.String(), recipe.String()))
	// The cart is a separate ledger, no conflict with the favorite.
	require.NoError(t, service.Add(context.Background(), domain.RelationShoppingCart, user.String(), recipe.String()))
}

func TestRelationService_SubscribeSelfRejected(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	user := uuid.New()
	repo.users[user] = true

	err := service.Add(context.Background(), domain.RelationSubscription, user.String(), user.String())
	require.ErrorIs(t, err, domain.ErrSelfSubscription)
}

func TestRelationService_SubscribeUnknownAuthor(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	err := service.Add(context.Background(), domain.RelationSubscription, uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRelationService_SubscribeDuplicate(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	user := uuid.New()
	author := uuid.New()
	repo.users[author] = true

	require.NoError(t, service.Add(context.Background(), domain.RelationSubscription, user.String(), author.String()))

	err := service.Add(context.Background(), domain.RelationSubscription, user.String(), author.String())
	require.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestRelationService_RemoveMissing(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	err := service.Remove(context.Background(), domain.RelationFavorite, uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrRelationNotFound)

	err = service.Remove(context.Background(), domain.RelationSubscription, uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, domain.ErrSubscriptionMissing)
}

func TestRelationService_RemoveThenReAdd(t *testing.T) {
	repo := newFakeRelationRepository()
	service := NewRelationService(repo)

	user := uuid.New()
	recipe := uuid.New()
	repo.authors[recipe] = uuid.New()

	require.NoError(t, service.Add(context.Background(), domain.RelationShoppingCart, user.String(), recipe.String()))
	require.NoError(t, service.Remove(context.Background(), domain.RelationShoppingCart, user.String(), recipe.String()))
	require.NoError(t, service.Add(context.Background(), domain.RelationShoppingCart, user.String(), recipe.String()))
}

func TestRelationService_BadIDs(t *testing.T) {
	service := NewRelationService(newFakeRelationRepository())

	err := service.Add(context.Background(), domain.RelationFavorite, "not-a-uuid", uuid.New().String())
	require.True(t, errors.Is(err, domain.ErrParseUUID))

	err = service.Remove(context.Background(), domain.RelationFavorite, uuid.New().String(), "not-a-uuid")
	require.True(t, errors.Is(err, domain.ErrParseUUID))
}
