package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type CreateUnverifiedUserParams struct {
	Email            string
	VerificationCode string
}

type VerifyUserParams struct {
	ID               int64
	VerificationCode string
}

type CompleteProfileParams struct {
	ID           int64
	FirstName    string
	LastName     string
	Bio          pgtype.Text
	PasswordHash string
}

type UpdateProfileParams struct {
	ID        int64
	FirstName pgtype.Text
	LastName  pgtype.Text
	Bio       pgtype.Text
	AvatarUrl pgtype.Text
}

type ListUsersParams struct {
	Limit  int32
	Offset int32
}

type ListUsersRow struct {
	ID        int64
	Email     string
	FirstName pgtype.Text
	LastName  pgtype.Text
	AvatarUrl pgtype.Text
}

type CreateRecipeParams struct {
	UserID      int64
	Title       string
	Description string
	Ingredients string
	Difficulty  Difficulty
	Category    Category
	CookingTime string
	ImageUrl    pgtype.Text
}

type CreateLikeParams struct {
	UserID   int64
	RecipeID int64
}

type DeleteLikeParams struct {
	UserID   int64
	RecipeID int64
}

type CreateFollowParams struct {
	FollowerID int64
	FolloweeID int64
}

type DeleteFollowParams struct {
	FollowerID int64
	FolloweeID int64
}

// Querier is the storage contract the handlers program against. The concrete
// implementation is Queries; tests use the generated mock in dbmock.
type Querier interface {
	CheckUsersTableExists(ctx context.Context) (bool, error)

	CreateUnverifiedUser(ctx context.Context, arg CreateUnverifiedUserParams) (int64, error)
	VerifyUser(ctx context.Context, arg VerifyUserParams) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	CompleteProfile(ctx context.Context, arg CompleteProfileParams) error
	UpdateProfile(ctx context.Context, arg UpdateProfileParams) (User, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]ListUsersRow, error)
	CheckUserExists(ctx context.Context, id int64) (bool, error)
	CountFollowers(ctx context.Context, id int64) (int64, error)
	CountFollowing(ctx context.Context, id int64) (int64, error)

	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
	ListRecipesByCategory(ctx context.Context, category string) ([]Recipe, error)
	SearchRecipesByTitle(ctx context.Context, query string) ([]Recipe, error)
	ListRecipesByAuthor(ctx context.Context, userID int64) ([]Recipe, error)
	CheckRecipeExists(ctx context.Context, id int64) (bool, error)

	CreateLike(ctx context.Context, arg CreateLikeParams) error
	DeleteLike(ctx context.Context, arg DeleteLikeParams) (int64, error)

	CreateFollow(ctx context.Context, arg CreateFollowParams) error
	DeleteFollow(ctx context.Context, arg DeleteFollowParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
