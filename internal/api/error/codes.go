package error

import "net/http"

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	InvalidCredentials  ErrorCode = "invalid_credentials"
	InvalidAccessToken  ErrorCode = "invalid_access_token"
	ExpiredAccessToken  ErrorCode = "expired_access_token"
	WeakPassword        ErrorCode = "weak_password"
	EmailConflict       ErrorCode = "email_conflict"
	InvalidToken        ErrorCode = "invalid_verification_token"
	NotVerified         ErrorCode = "not_verified"
	RecipeNotFound      ErrorCode = "recipe_not_found"
	UserNotFound        ErrorCode = "user_not_found"
	AlreadyLiked        ErrorCode = "already_liked"
	NotLiked            ErrorCode = "not_liked"
	AlreadyFollowing    ErrorCode = "already_following"
	NotFollowing        ErrorCode = "not_following"
	SelfFollow          ErrorCode = "self_follow"
)

// Conflicts (duplicate like/follow/email) map to 400: they are ordinary
// business outcomes the caller is expected to handle.
var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	InvalidCredentials:  http.StatusUnauthorized,
	InvalidAccessToken:  http.StatusUnauthorized,
	ExpiredAccessToken:  http.StatusUnauthorized,
	WeakPassword:        http.StatusBadRequest,
	EmailConflict:       http.StatusBadRequest,
	InvalidToken:        http.StatusBadRequest,
	NotVerified:         http.StatusBadRequest,
	RecipeNotFound:      http.StatusNotFound,
	UserNotFound:        http.StatusNotFound,
	AlreadyLiked:        http.StatusBadRequest,
	NotLiked:            http.StatusBadRequest,
	AlreadyFollowing:    http.StatusBadRequest,
	NotFollowing:        http.StatusBadRequest,
	SelfFollow:          http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
