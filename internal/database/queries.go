package database

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by Queries, satisfied by both a pool and a
// transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const checkUsersTableExists = `
SELECT EXISTS (
    SELECT FROM information_schema.tables
    WHERE table_schema = 'public' AND table_name = 'users'
)
`

func (q *Queries) CheckUsersTableExists(ctx context.Context) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, checkUsersTableExists).Scan(&exists)
	return exists, err
}

const createUnverifiedUser = `
INSERT INTO users (email, verification_code)
VALUES ($1, $2)
RETURNING id
`

func (q *Queries) CreateUnverifiedUser(ctx context.Context, arg CreateUnverifiedUserParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createUnverifiedUser, arg.Email, arg.VerificationCode).Scan(&id)
	return id, err
}

const verifyUser = `
UPDATE users
SET verified = TRUE, verification_code = NULL
WHERE id = $1 AND verification_code = $2 AND NOT verified
RETURNING id
`

// VerifyUser consumes a verification code. The single UPDATE makes the
// unverified -> verified transition one-way: a replayed code matches no row
// and surfaces pgx.ErrNoRows.
func (q *Queries) VerifyUser(ctx context.Context, arg VerifyUserParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, verifyUser, arg.ID, arg.VerificationCode).Scan(&id)
	return id, err
}

const userColumns = `id, email, password_hash, verified, verification_code,
first_name, last_name, bio, avatar_url, created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Verified, &u.VerificationCode,
		&u.FirstName, &u.LastName, &u.Bio, &u.AvatarUrl, &u.CreatedAt)
	return u, err
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email))
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	return scanUser(q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

const completeProfile = `
UPDATE users
SET first_name = $2, last_name = $3, bio = $4, password_hash = $5
WHERE id = $1
`

func (q *Queries) CompleteProfile(ctx context.Context, arg CompleteProfileParams) error {
	_, err := q.db.Exec(ctx, completeProfile,
		arg.ID, arg.FirstName, arg.LastName, arg.Bio, arg.PasswordHash)
	return err
}

const updateProfile = `
UPDATE users
SET first_name = COALESCE($2, first_name),
    last_name = COALESCE($3, last_name),
    bio = COALESCE($4, bio),
    avatar_url = COALESCE($5, avatar_url)
WHERE id = $1
RETURNING ` + userColumns

func (q *Queries) UpdateProfile(ctx context.Context, arg UpdateProfileParams) (User, error) {
	return scanUser(q.db.QueryRow(ctx, updateProfile,
		arg.ID, arg.FirstName, arg.LastName, arg.Bio, arg.AvatarUrl))
}

const listUsers = `
SELECT id, email, first_name, last_name, avatar_url
FROM users
ORDER BY id
LIMIT $1 OFFSET $2
`

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]ListUsersRow, error) {
	rows, err := q.db.Query(ctx, listUsers, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []ListUsersRow{}
	for rows.Next() {
		var u ListUsersRow
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.AvatarUrl); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (q *Queries) CheckUserExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (q *Queries) CountFollowers(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM follows WHERE followee_id = $1`, id).Scan(&count)
	return count, err
}

func (q *Queries) CountFollowing(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1`, id).Scan(&count)
	return count, err
}

const recipeColumns = `id, user_id, title, description, ingredients,
difficulty, category, cooking_time, image_url, created_at`

func scanRecipe(row pgx.Row) (Recipe, error) {
	var r Recipe
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Ingredients,
		&r.Difficulty, &r.Category, &r.CookingTime, &r.ImageUrl, &r.CreatedAt)
	return r, err
}

func (q *Queries) scanRecipes(ctx context.Context, sql string, args ...any) ([]Recipe, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []Recipe{}
	for rows.Next() {
		var r Recipe
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Ingredients,
			&r.Difficulty, &r.Category, &r.CookingTime, &r.ImageUrl, &r.CreatedAt); err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

const createRecipe = `
INSERT INTO recipes (user_id, title, description, ingredients, difficulty, category, cooking_time, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + recipeColumns

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	return scanRecipe(q.db.QueryRow(ctx, createRecipe,
		arg.UserID, arg.Title, arg.Description, arg.Ingredients,
		arg.Difficulty, arg.Category, arg.CookingTime, arg.ImageUrl))
}

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	return scanRecipe(q.db.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
}

func (q *Queries) ListRecipes(ctx context.Context) ([]Recipe, error) {
	return q.scanRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY created_at DESC`)
}

// ListRecipesByCategory matches the category column as text so that values
// outside the enum yield an empty result instead of a cast error.
func (q *Queries) ListRecipesByCategory(ctx context.Context, category string) ([]Recipe, error) {
	return q.scanRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE category::text = $1 ORDER BY created_at DESC`,
		category)
}

const searchRecipesByTitle = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE title ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
`

func (q *Queries) SearchRecipesByTitle(ctx context.Context, query string) ([]Recipe, error) {
	return q.scanRecipes(ctx, searchRecipesByTitle, EscapeLike(query))
}

func (q *Queries) ListRecipesByAuthor(ctx context.Context, userID int64) ([]Recipe, error) {
	return q.scanRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
}

func (q *Queries) CheckRecipeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT FROM recipes WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

const createLike = `
INSERT INTO likes (user_id, recipe_id)
VALUES ($1, $2)
`

// CreateLike is a single insert against the (user_id, recipe_id) unique
// constraint. A duplicate surfaces as a unique violation for the caller to
// classify.
func (q *Queries) CreateLike(ctx context.Context, arg CreateLikeParams) error {
	_, err := q.db.Exec(ctx, createLike, arg.UserID, arg.RecipeID)
	return err
}

func (q *Queries) DeleteLike(ctx context.Context, arg DeleteLikeParams) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND recipe_id = $2`,
		arg.UserID, arg.RecipeID)
	return tag.RowsAffected(), err
}

const createFollow = `
INSERT INTO follows (follower_id, followee_id)
VALUES ($1, $2)
`

func (q *Queries) CreateFollow(ctx context.Context, arg CreateFollowParams) error {
	_, err := q.db.Exec(ctx, createFollow, arg.FollowerID, arg.FolloweeID)
	return err
}

func (q *Queries) DeleteFollow(ctx context.Context, arg DeleteFollowParams) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		arg.FollowerID, arg.FolloweeID)
	return tag.RowsAffected(), err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE metacharacters so user input matches
// literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
