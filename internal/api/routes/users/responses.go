package users

import (
	"github.com/cooksapp/cooks/internal/api/routes/recipes"
	"github.com/cooksapp/cooks/internal/database"
)

type RegisterEmailResponse struct {
	UserID int64 `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserSummary is the wire shape of a user in listings.
type UserSummary struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Avatar    *string `json:"avatar,omitempty"`
}

type ListUsersResponse struct {
	Users []UserSummary `json:"users"`
	Page  int32         `json:"page"`
}

func NewUserSummary(row database.ListUsersRow) UserSummary {
	summary := UserSummary{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName.String,
		LastName:  row.LastName.String,
	}
	if row.AvatarUrl.Valid {
		avatar := row.AvatarUrl.String
		summary.Avatar = &avatar
	}
	return summary
}

// ProfileResponse is the authenticated caller's own page.
type ProfileResponse struct {
	ID        int64                `json:"id"`
	Email     string               `json:"email"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	Bio       string               `json:"bio"`
	Avatar    *string              `json:"avatar,omitempty"`
	Followers int64                `json:"followers"`
	Following int64                `json:"following"`
	Recipes   []recipes.RecipeJSON `json:"recipes"`
}

func NewProfileResponse(user database.User, followers, following int64, authored []database.Recipe) ProfileResponse {
	resp := ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName.String,
		LastName:  user.LastName.String,
		Bio:       user.Bio.String,
		Followers: followers,
		Following: following,
		Recipes:   recipes.NewRecipeListJSON(authored),
	}
	if user.AvatarUrl.Valid {
		avatar := user.AvatarUrl.String
		resp.Avatar = &avatar
	}
	return resp
}
