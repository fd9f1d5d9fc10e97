package recipes

import (
	"time"

	"github.com/cooksapp/cooks/internal/database"
)

// RecipeJSON is the wire shape of a recipe. Author is always the id of the
// user that created the recipe.
type RecipeJSON struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Difficulty  string    `json:"difficulty"`
	Category    string    `json:"category"`
	CookingTime string    `json:"cooking_time"`
	Image       *string   `json:"image,omitempty"`
	Author      int64     `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRecipeJSON(r database.Recipe) RecipeJSON {
	resp := RecipeJSON{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Difficulty:  string(r.Difficulty),
		Category:    string(r.Category),
		CookingTime: r.CookingTime,
		Author:      r.UserID,
		CreatedAt:   r.CreatedAt.Time,
	}
	if r.ImageUrl.Valid {
		image := r.ImageUrl.String
		resp.Image = &image
	}
	return resp
}

func NewRecipeListJSON(rs []database.Recipe) []RecipeJSON {
	out := make([]RecipeJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRecipeJSON(r))
	}
	return out
}

type RecipeListResponse struct {
	Recipes []RecipeJSON `json:"recipes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
