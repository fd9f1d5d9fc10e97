// Package token contains utilities for access tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cooksapp/cooks/internal/env"
	"github.com/cooksapp/cooks/internal/jwt"
)

type userIDKeyType struct{}

var userIDKey userIDKeyType

var ErrNoUserID = errors.New("no user id in context")

// UserIDWithCtx stores the authenticated caller's id in the context.
func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromCtx extracts the authenticated caller's id from the context.
func UserIDFromCtx(ctx context.Context) (int64, error) {
	if v, ok := ctx.Value(userIDKey).(int64); ok {
		return v, nil
	}
	return 0, ErrNoUserID
}

// CreateAccessToken mints a signed access token for a user.
func CreateAccessToken(userID int64, e *env.Env) (string, error) {
	secret := string(e.Config.App.Secret)
	if secret == "" {
		return "", errors.New("app secret not configured")
	}
	token, err := jwt.GenerateJWT(jwt.JWTParams{
		UserID: strconv.FormatInt(userID, 10),
	}, []byte(secret), jwt.DefaultKID)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}
