package database

import "github.com/jackc/pgx/v5/pgtype"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
)

type User struct {
	ID               int64
	Email            string
	PasswordHash     pgtype.Text
	Verified         bool
	VerificationCode pgtype.Text
	FirstName        pgtype.Text
	LastName         pgtype.Text
	Bio              pgtype.Text
	AvatarUrl        pgtype.Text
	CreatedAt        pgtype.Timestamptz
}

type Recipe struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Ingredients string
	Difficulty  Difficulty
	Category    Category
	CookingTime string
	ImageUrl    pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

type Like struct {
	ID        int64
	UserID    int64
	RecipeID  int64
	CreatedAt pgtype.Timestamptz
}

// SavedRecipe is the bookmark join entity. It is modeled for the schema and
// cascade behavior; its endpoints live outside this service.
type SavedRecipe struct {
	ID       int64
	UserID   int64
	RecipeID int64
	SavedAt  pgtype.Timestamptz
}

type Follow struct {
	ID         int64
	FollowerID int64
	FolloweeID int64
	CreatedAt  pgtype.Timestamptz
}
