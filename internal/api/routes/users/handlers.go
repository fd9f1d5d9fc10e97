// Package users contains handlers for registration, login, profiles and
// follows.
package users

import (
	"context"
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
	"github.com/cooksapp/cooks/internal/argon2id"
	"github.com/cooksapp/cooks/internal/blobstore"
	"github.com/cooksapp/cooks/internal/config"
	"github.com/cooksapp/cooks/internal/database"
	"github.com/cooksapp/cooks/internal/email"
	"github.com/cooksapp/cooks/internal/env"
	mJson "github.com/cooksapp/cooks/internal/json"
	"github.com/cooksapp/cooks/internal/password"
	"github.com/cooksapp/cooks/internal/verify"
)

// HandleRegisterEmail registers an email address and dispatches the
// verification message. The email send never blocks the response.
func HandleRegisterEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var req RegisterEmailRequest
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
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid email", requestID)
		return
	}

	code, err := verify.CreateCode()
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create verification code", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	userID, err := env.Database.CreateUnverifiedUser(ctx, database.CreateUnverifiedUserParams{
		Email:            req.Email,
		VerificationCode: code,
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "email already registered")
		_ = apiError.EncodeError(w, apiError.EmailConflict, "email already registered", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	verificationToken := verify.EncodeToken(code, userID)
	go sendVerification(context.WithoutCancel(ctx), env, req.Email, verificationToken)

	body, err := json.Marshal(RegisterEmailResponse{UserID: userID})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "registered email", slog.Int64("user-id", userID))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(body)
}

// sendVerification dispatches the verification email. Failures are logged,
// the user can request a new registration.
func sendVerification(ctx context.Context, env *env.Env, to, verificationToken string) {
	if env.Notifier == nil {
		env.Logger.WarnContext(ctx, "notifier not configured, skipping verification email")
		return
	}
	subject, body := email.VerificationMessage(env.Config.App.BaseURL, verificationToken)
	if err := env.Notifier.Send([]string{to}, subject, body); err != nil {
		env.Logger.ErrorContext(ctx, "failed to send verification email", slog.Any("error", err))
		return
	}
	env.Logger.DebugContext(ctx, "sent verification email")
}

// HandleVerifyEmail marks a user as verified. Tokens are single use, a replay
// is rejected the same way as a bad token.
func HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var req VerifyEmailRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := mJson.DecodeJSON(&req, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	code, userID, err := verify.DecodeToken(req.Token)
	if err != nil {
		env.Logger.DebugContext(ctx, "malformed verification token", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidToken, "invalid verification token", requestID)
		return
	}

	_, err = env.Database.VerifyUser(ctx, database.VerifyUserParams{
		ID:               userID,
		VerificationCode: code,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.DebugContext(ctx, "verification token rejected", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.InvalidToken, "invalid verification token", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to verify user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "verified email", slog.Int64("user-id", userID))
	encodeMessage(w, env, r, requestID, http.StatusOK, "email verified")
}

// HandleRegisterPersonalInfo completes registration for a verified email.
func HandleRegisterPersonalInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var req RegisterPersonalInfoRequest
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
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request", requestID)
		return
	}

	user, err := env.Database.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.DebugContext(ctx, "user not found")
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if !user.Verified {
		env.Logger.DebugContext(ctx, "email not verified", slog.Int64("user-id", user.ID))
		_ = apiError.EncodeError(w, apiError.NotVerified, "email not verified", requestID)
		return
	}

	if err := password.ValidatePassword(req.Password); err != nil {
		env.Logger.DebugContext(ctx, "weak password rejected")
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID)
		return
	}

	hash, err := argon2id.EncodeHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var bio pgtype.Text
	if req.Bio != "" {
		bio = pgtype.Text{String: req.Bio, Valid: true}
	}
	err = env.Database.CompleteProfile(ctx, database.CompleteProfileParams{
		ID:           user.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          bio,
		PasswordHash: hash,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to complete profile", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	body, err := json.Marshal(RegisterEmailResponse{UserID: user.ID})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "completed registration", slog.Int64("user-id", user.ID))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// HandleLogin exchanges credentials for an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var req LoginRequest
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
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request", requestID)
		return
	}

	user, err := env.Database.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.DebugContext(ctx, "login for unknown email")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "invalid email or password", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if !user.PasswordHash.Valid {
		env.Logger.DebugContext(ctx, "login before registration completed", slog.Int64("user-id", user.ID))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "invalid email or password", requestID)
		return
	}

	match, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash.String)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to compare password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.DebugContext(ctx, "password mismatch", slog.Int64("user-id", user.ID))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "invalid email or password", requestID)
		return
	}

	if !user.Verified {
		env.Logger.DebugContext(ctx, "login before verification", slog.Int64("user-id", user.ID))
		_ = apiError.EncodeError(w, apiError.NotVerified, "email not verified", requestID)
		return
	}

	accessToken, err := token.CreateAccessToken(user.ID, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	body, err := json.Marshal(LoginResponse{AccessToken: accessToken})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "logged in", slog.Int64("user-id", user.ID))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// HandleListUsers lists registered users, paginated by the "page" query
// parameter starting at 1.
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	page := int32(1)
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 {
			env.Logger.DebugContext(ctx, "invalid page parameter", slog.String("page", raw))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid page parameter", requestID)
			return
		}
		page = int32(parsed)
	}

	rows, err := env.Database.ListUsers(ctx, database.ListUsersParams{
		Limit:  config.DefaultPageSize,
		Offset: (page - 1) * config.DefaultPageSize,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	summaries := make([]UserSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, NewUserSummary(row))
	}

	body, err := json.Marshal(ListUsersResponse{Users: summaries, Page: page})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func HandleFollowUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	callerID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	if followeeID == callerID {
		env.Logger.DebugContext(ctx, "self follow rejected")
		_ = apiError.EncodeError(w, apiError.SelfFollow, "you cannot follow yourself", requestID)
		return
	}

	err = env.Database.CreateFollow(ctx, database.CreateFollowParams{
		FollowerID: callerID,
		FolloweeID: followeeID,
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "already following", slog.Int64("followee-id", followeeID))
		_ = apiError.EncodeError(w, apiError.AlreadyFollowing, "you are already following this user", requestID)
		return
	} else if database.IsForeignKeyViolation(err) {
		env.Logger.DebugContext(ctx, "followee not found", slog.Int64("followee-id", followeeID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create follow", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "followed user", slog.Int64("followee-id", followeeID))
	encodeMessage(w, env, r, requestID, http.StatusCreated, "now following")
}

func HandleUnfollowUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	callerID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	deleted, err := env.Database.DeleteFollow(ctx, database.DeleteFollowParams{
		FollowerID: callerID,
		FolloweeID: followeeID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete follow", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if deleted == 0 {
		exists, err := env.Database.CheckUserExists(ctx, followeeID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to check user", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if !exists {
			_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
			return
		}
		_ = apiError.EncodeError(w, apiError.NotFollowing, "you are not following this user", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "unfollowed user", slog.Int64("followee-id", followeeID))
	encodeMessage(w, env, r, requestID, http.StatusOK, "no longer following")
}

// HandleMyPage serves the caller's own profile with follower counts and
// authored recipes.
func HandleMyPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	user, err := env.Database.GetUserByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "authenticated user not found", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	followers, err := env.Database.CountFollowers(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count followers", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	following, err := env.Database.CountFollowing(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count following", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	authored, err := env.Database.ListRecipesByAuthor(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list authored recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	body, err := json.Marshal(NewProfileResponse(user, followers, following, authored))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// HandleUpdateMyPage applies a partial update to the caller's profile. Only
// fields present in the payload change.
func HandleUpdateMyPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "missing user id in context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var req UpdateProfileRequest
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
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request", requestID)
		return
	}

	params := database.UpdateProfileParams{ID: userID}
	if req.FirstName != nil {
		params.FirstName = pgtype.Text{String: *req.FirstName, Valid: true}
	}
	if req.LastName != nil {
		params.LastName = pgtype.Text{String: *req.LastName, Valid: true}
	}
	if req.Bio != nil {
		params.Bio = pgtype.Text{String: *req.Bio, Valid: true}
	}
	if req.Avatar != nil && *req.Avatar != "" {
		img, err := blobstore.DecodeImage(*req.Avatar)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to decode avatar", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid avatar image", requestID)
			return
		}
		if env.Blobs == nil {
			env.Logger.WarnContext(ctx, "blob store not configured, skipping avatar upload")
		} else if url, err := env.Blobs.UploadRecipeImage(ctx, img); err != nil {
			env.Logger.WarnContext(ctx, "failed to upload avatar", slog.Any("error", err))
		} else {
			params.AvatarUrl = pgtype.Text{String: url, Valid: true}
		}
	}

	user, err := env.Database.UpdateProfile(ctx, params)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "authenticated user not found", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	followers, err := env.Database.CountFollowers(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count followers", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	following, err := env.Database.CountFollowing(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count following", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	authored, err := env.Database.ListRecipesByAuthor(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list authored recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	body, err := json.Marshal(NewProfileResponse(user, followers, following, authored))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "updated profile", slog.Int64("user-id", userID))
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
