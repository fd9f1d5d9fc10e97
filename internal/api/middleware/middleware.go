// Package middleware contains middleware functions for the API.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	apiError "github.com/cooksapp/cooks/internal/api/error"
	"github.com/cooksapp/cooks/internal/api/requestid"
	"github.com/cooksapp/cooks/internal/api/token"
	"github.com/cooksapp/cooks/internal/env"
	cJwt "github.com/cooksapp/cooks/internal/jwt"
	"github.com/cooksapp/cooks/internal/log"
)

const bearerPrefix = "Bearer "

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// RequireAuth validates the bearer access token and stores the caller's id
// in the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)

		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, bearerPrefix) {
			e.Logger.ErrorContext(r.Context(), "missing bearer token")
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}
		rawToken := strings.TrimPrefix(authorization, bearerPrefix)

		secret := string(e.Config.App.Secret)
		if secret == "" {
			e.Logger.ErrorContext(r.Context(), "app secret not configured")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		accessJwt, err := cJwt.ValidateJWT(rawToken, cJwt.DefaultKID, []byte(secret))
		if errors.Is(err, jwt.ErrTokenExpired) {
			e.Logger.ErrorContext(r.Context(), "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if err != nil {
			e.Logger.ErrorContext(r.Context(), "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		sub, err := accessJwt.Claims.GetSubject()
		if err != nil {
			e.Logger.ErrorContext(r.Context(), "failed to extract subject from jwt", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			e.Logger.ErrorContext(r.Context(), "failed to parse user id", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		r = r.WithContext(log.AppendCtx(r.Context(), slog.Int64("user-id", userID)))
		r = r.WithContext(token.UserIDWithCtx(r.Context(), userID))

		next.ServeHTTP(w, r)
	})
}
