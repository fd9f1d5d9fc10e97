package recipes

type CreateRecipeRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=400"`
	Ingredients string `json:"ingredients" validate:"required,max=400"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Category    string `json:"category" validate:"required,oneof=breakfast lunch dinner"`
	CookingTime string `json:"cooking_time" validate:"required,max=255"`
	Image       string `json:"image" validate:"omitempty"`
}
