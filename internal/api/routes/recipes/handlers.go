// Package recipes contains handlers for recipe browsing, creation and likes.
package recipes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	apiError "github.com/cooksapp/cooks/internal/api/error"
	"github.com/cooksapp/cooks/internal/api/requestid"
	"github.com/cooksapp/cooks/internal/api/token"
	"github.com/cooksapp/cooks/internal/blobstore"
	"github.com/cooksapp/cooks/internal/database"
	"github.com/cooksapp/cooks/internal/env"
	mJson "github.com/cooksapp/cooks/internal/json"
)

// HandleCreateRecipe creates a recipe owned by the authenticated caller. The
// author is always taken from the access token, never from the payload.
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var req CreateRecipeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := mJson.DecodeJSON(&req, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(req); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe", requestID)
		return
	}

	difficulty := database.Difficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = database.DifficultyEasy
	}

	var imageUrl pgtype.Text
	if req.Image != "" {
		img, err := blobstore.DecodeImage(req.Image)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to decode image", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid image", requestID)
			return
		}
		imageUrl = uploadImage(r, env, img)
	}

	recipe, err := env.Database.CreateRecipe(ctx, database.CreateRecipeParams{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Difficulty:  difficulty,
		Category:    database.Category(req.Category),
		CookingTime: req.CookingTime,
		ImageUrl:    imageUrl,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	body, err := json.Marshal(NewRecipeJSON(recipe))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "created recipe", slog.Int64("recipe-id", recipe.ID))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(body)
}

// uploadImage stores a decoded image and returns its URL. Upload failures are
// logged and the recipe is created without an image.
func uploadImage(r *http.Request, env *env.Env, img *blobstore.Image) pgtype.Text {
	ctx := r.Context()
	if env.Blobs == nil {
		env.Logger.WarnContext(ctx, "blob store not configured, skipping image upload")
		return pgtype.Text{}
	}
	url, err := env.Blobs.UploadRecipeImage(ctx, img)
	if err != nil {
		env.Logger.WarnContext(ctx, "failed to upload image", slog.Any("error", err))
		return pgtype.Text{}
	}
	return pgtype.Text{String: url, Valid: true}
}

func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	recipe, err := env.Database.GetRecipe(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.DebugContext(ctx, "recipe not found", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	body, err := json.Marshal(NewRecipeJSON(recipe))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// HandleListRecipes serves the main feed, newest first.
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipes, err := env.Database.ListRecipes(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeRecipeList(w, env, r, requestID, recipes)
}

// HandleListByCategory filters the feed by category. The value is matched
// verbatim, an unknown category yields an empty list.
func HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	category := chi.URLParam(r, "category")
	recipes, err := env.Database.ListRecipesByCategory(ctx, category)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes by category", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeRecipeList(w, env, r, requestID, recipes)
}

// HandleSearchRecipes matches the query case-insensitively against titles.
func HandleSearchRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	query := r.URL.Query().Get("q")
	if query == "" {
		env.Logger.DebugContext(ctx, "missing search query")
		_ = apiError.EncodeError(w, apiError.BadRequest, "search query 'q' is required", requestID)
		return
	}

	recipes, err := env.Database.SearchRecipesByTitle(ctx, query)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to search recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeRecipeList(w, env, r, requestID, recipes)
}

func HandleLikeRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	err = env.Database.CreateLike(ctx, database.CreateLikeParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "recipe already liked", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.AlreadyLiked, "you have already liked this recipe", requestID)
		return
	} else if database.IsForeignKeyViolation(err) {
		env.Logger.DebugContext(ctx, "recipe not found", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to like recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "liked recipe", slog.Int64("recipe-id", recipeID))
	encodeMessage(w, env, r, requestID, http.StatusCreated, "recipe liked")
}

func HandleUnlikeRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	deleted, err := env.Database.DeleteLike(ctx, database.DeleteLikeParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to unlike recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if deleted == 0 {
		exists, err := env.Database.CheckRecipeExists(ctx, recipeID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to check recipe", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if !exists {
			_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
			return
		}
		_ = apiError.EncodeError(w, apiError.NotLiked, "you have not liked this recipe", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "unliked recipe", slog.Int64("recipe-id", recipeID))
	encodeMessage(w, env, r, requestID, http.StatusOK, "recipe unliked")
}

func encodeRecipeList(w http.ResponseWriter, env *env.Env, r *http.Request, requestID string, recipes []database.Recipe) {
	body, err := json.Marshal(RecipeListResponse{Recipes: NewRecipeListJSON(recipes)})
	if err != nil {
		env.Logger.ErrorContext(r.Context(), "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func encodeMessage(w http.ResponseWriter, env *env.Env, r *http.Request, requestID string, status int, message string) {
	body, err := json.Marshal(MessageResponse{Message: message})
	if err != nil {
		env.Logger.ErrorContext(r.Context(), "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
