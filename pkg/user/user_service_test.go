package user

import (
	"context"
	"testing"
	"time"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/VyacheslavShestakov09/foodgram/entities"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users   map[uuid.UUID]*entities.User
	subs    map[[2]uuid.UUID]bool // user -> author
	recipes []*entities.Recipe
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: make(map[uuid.UUID]*entities.User),
		subs:  make(map[[2]uuid.UUID]bool),
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context, _, _ int) ([]*entities.User, int64, error) {
	var users []*entities.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) IsSubscribed(_ context.Context, userID, authorID uuid.UUID) (bool, error) {
	return f.subs[[2]uuid.UUID{userID, authorID}], nil
}

func (f *fakeUserRepository) GetSubscriptions(_ context.Context, userID uuid.UUID, _, _ int) ([]*entities.Subscription, int64, error) {
	var subscriptions []*entities.Subscription
	for key := range f.subs {
		if key[0] != userID {
			continue
		}
		subscriptions = append(subscriptions, &entities.Subscription{
			UserID:   key[0],
			AuthorID: key[1],
			Author:   f.users[key[1]],
		})
	}
	return subscriptions, int64(len(subscriptions)), nil
}

func (f *fakeUserRepository) GetRecipesByAuthor(_ context.Context, authorID uuid.UUID, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.AuthorID != authorID {
			continue
		}
		recipes = append(recipes, recipe)
		if limit > 0 && len(recipes) == limit {
			break
		}
	}
	return recipes, nil
}

func (f *fakeUserRepository) CountRecipesByAuthor(_ context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	for _, recipe := range f.recipes {
		if recipe.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakeJWTService struct {
	resetClaims gojwt.MapClaims
}

func (f *fakeJWTService) GenerateTokenUser(userId string, _ string) string {
	return "token-" + userId
}

func (f *fakeJWTService) ValidateTokenUser(string) (*gojwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func (f *fakeJWTService) GenerateTokenResetPassword(data map[string]any, _ time.Duration) (string, error) {
	claims := gojwt.MapClaims{}
	for key, value := range data {
		claims[key] = value
	}
	f.resetClaims = claims
	return "reset-token", nil
}

func (f *fakeJWTService) ValidateTokenResetPassword(token string) (gojwt.MapClaims, error) {
	if token != "reset-token" || f.resetClaims == nil {
		return gojwt.MapClaims{}, domain.ErrTokenInvalid
	}
	return f.resetClaims, nil
}

type fakeStorage struct{}

func (fakeStorage) UploadFile(_ context.Context, key string, _ []byte, _ string) (string, error) {
	return "https://bucket.s3.test/" + key, nil
}

func (fakeStorage) DeleteFile(context.Context, string) error {
	return nil
}

func setupUserService(t *testing.T) (UserService, *fakeUserRepository) {
	t.Helper()
	repo := newFakeUserRepository()
	return NewUserService(repo, &fakeJWTService{}, fakeStorage{}), repo
}

func registerTestUser(t *testing.T, service UserService, email, username string) domain.RegisterResponse {
	t.Helper()
	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:     email,
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "secret-password",
	})
	require.NoError(t, err)
	return res
}

func TestUserService_Register(t *testing.T) {
	service, repo := setupUserService(t)

	res := registerTestUser(t, service, "cook@example.com", "cook")
	require.Equal(t, "cook@example.com", res.Email)
	require.Equal(t, "cook", res.Username)

	stored, err := repo.GetUserByEmail(context.Background(), "cook@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", stored.Password, "password must be stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-password")))
}

func TestUserService_RegisterDuplicates(t *testing.T) {
	service, _ := setupUserService(t)
	registerTestUser(t, service, "cook@example.com", "cook")

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:     "cook@example.com",
		Username:  "another",
		FirstName: "Test",
		LastName:  "User",
		Password:  "secret-password",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:     "other@example.com",
		Username:  "cook",
		FirstName: "Test",
		LastName:  "User",
		Password:  "secret-password",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Login(t *testing.T) {
	service, _ := setupUserService(t)
	res := registerTestUser(t, service, "cook@example.com", "cook")

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.Equal(t, "token-"+res.ID, login.Token)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUserService_SetPassword(t *testing.T) {
	service, _ := setupUserService(t)
	res := registerTestUser(t, service, "cook@example.com", "cook")

	err := service.SetPassword(context.Background(), domain.SetPasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password-123",
	}, res.ID)
	require.ErrorIs(t, err, domain.ErrPasswordMismatch)

	err = service.SetPassword(context.Background(), domain.SetPasswordRequest{
		CurrentPassword: "secret-password",
		NewPassword:     "new-password-123",
	}, res.ID)
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "new-password-123",
	})
	require.NoError(t, err)
}

func TestUserService_ResetPassword(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := &fakeJWTService{}
	service := NewUserService(repo, jwtService, fakeStorage{})
	res := registerTestUser(t, service, "cook@example.com", "cook")

	token, err := jwtService.GenerateTokenResetPassword(map[string]any{"user_id": res.ID}, time.Minute)
	require.NoError(t, err)

	err = service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "brand-new-password",
	})
	require.NoError(t, err)
}

func TestUserService_ProfileSubscriptionFlag(t *testing.T) {
	service, repo := setupUserService(t)
	author := registerTestUser(t, service, "author@example.com", "author")
	reader := registerTestUser(t, service, "reader@example.com", "reader")

	repo.subs[[2]uuid.UUID{uuid.MustParse(reader.ID), uuid.MustParse(author.ID)}] = true

	asReader, err := service.GetProfile(context.Background(), author.ID, reader.ID)
	require.NoError(t, err)
	require.True(t, asReader.IsSubscribed)

	asGuest, err := service.GetProfile(context.Background(), author.ID, "")
	require.NoError(t, err)
	require.False(t, asGuest.IsSubscribed, "anonymous callers never see a subscription")
}

func TestUserService_Avatar(t *testing.T) {
	service, repo := setupUserService(t)
	res := registerTestUser(t, service, "cook@example.com", "cook")

	_, err := service.UpdateAvatar(context.Background(), domain.UpdateAvatarRequest{}, res.ID)
	require.ErrorIs(t, err, domain.ErrAvatarMissing)

	updated, err := service.UpdateAvatar(context.Background(), domain.UpdateAvatarRequest{
		Avatar: "data:image/png;base64,aGVsbG8=",
	}, res.ID)
	require.NoError(t, err)
	require.Contains(t, updated.Avatar, "avatars/user_"+res.ID)

	require.NoError(t, service.DeleteAvatar(context.Background(), res.ID))
	stored, err := repo.GetUserByID(context.Background(), res.ID)
	require.NoError(t, err)
	require.Empty(t, stored.AvatarURL)
}

func TestUserService_GetAuthorPreview(t *testing.T) {
	service, repo := setupUserService(t)
	author := registerTestUser(t, service, "author@example.com", "author")
	authorID := uuid.MustParse(author.ID)

	for i := 0; i < 4; i++ {
		repo.recipes = append(repo.recipes, &entities.Recipe{
			ID:          uuid.New(),
			AuthorID:    authorID,
			Name:        "recipe",
			CookingTime: 10,
		})
	}

	preview, err := service.GetAuthorPreview(context.Background(), author.ID, "", 2)
	require.NoError(t, err)
	require.Len(t, preview.Recipes, 2, "recipes_limit caps the preview")
	require.Equal(t, int64(4), preview.RecipesCount)

	_, err = service.GetAuthorPreview(context.Background(), uuid.New().String(), "", 0)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
