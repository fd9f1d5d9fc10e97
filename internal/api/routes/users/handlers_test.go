package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	apiError "github.com/cooksapp/cooks/internal/api/error"
	"github.com/cooksapp/cooks/internal/api/requestid"
	"github.com/cooksapp/cooks/internal/api/token"
	"github.com/cooksapp/cooks/internal/argon2id"
	"github.com/cooksapp/cooks/internal/config"
	"github.com/cooksapp/cooks/internal/database"
	"github.com/cooksapp/cooks/internal/database/dbmock"
	"github.com/cooksapp/cooks/internal/env"
	"github.com/cooksapp/cooks/internal/log"
	"github.com/cooksapp/cooks/internal/verify"
)

func testEnv(mockDB *dbmock.MockQuerier) *env.Env {
	return &env.Env{
		Logger:   log.NullLogger(),
		Database: &database.Database{Querier: mockDB},
		Config: &config.Config{
			App: config.App{Secret: "test-secret-32-bytes-long-123456"},
		},
	}
}

func newRequest(t *testing.T, e *env.Env, method, target, body string, userID int64, params map[string]string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))

	ctx := env.WithCtx(req.Context(), e)
	ctx = requestid.InjectRequestID(ctx, 12345)
	if userID != 0 {
		ctx = token.UserIDWithCtx(ctx, userID)
	}

	if len(params) > 0 {
		routeCtx := chi.NewRouteContext()
		for k, v := range params {
			routeCtx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}

	return req.WithContext(ctx)
}

func decodeErrorCode(t *testing.T, body []byte) apiError.ErrorCode {
	t.Helper()
	var envelope apiError.Error
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	return envelope.Code
}

func TestHandleRegisterEmail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "successful registration",
			body: `{"email":"cook@example.com"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					CreateUnverifiedUser(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"email":"cook@example.com"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					CreateUnverifiedUser(gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.EmailConflict,
		},
		{
			name:       "malformed email",
			body:       `{"email":"not-an-email"}`,
			setup:      func(mockDB *dbmock.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "missing email",
			body:       `{}`,
			setup:      func(mockDB *dbmock.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodPost, "/api/register/email", tt.body, 0, nil)
			rec := httptest.NewRecorder()

			HandleRegisterEmail(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, rec.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleVerifyEmail(t *testing.T) {
	code, err := verify.CreateCode()
	if err != nil {
		t.Fatalf("failed to create code: %v", err)
	}
	validToken := verify.EncodeToken(code, 1)

	tests := []struct {
		name       string
		body       string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "successful verification",
			body: `{"token":"` + validToken + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					VerifyUser(gomock.Any(), database.VerifyUserParams{ID: 1, VerificationCode: code}).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "replayed token rejected",
			body: `{"token":"` + validToken + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					VerifyUser(gomock.Any(), gomock.Any()).
					Return(int64(0), pgx.ErrNoRows)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.InvalidToken,
		},
		{
			name:       "malformed token",
			body:       `{"token":"no-delimiter"}`,
			setup:      func(mockDB *dbmock.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.InvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodPost, "/api/email-verify", tt.body, 0, nil)
			rec := httptest.NewRecorder()

			HandleVerifyEmail(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, rec.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleRegisterPersonalInfo(t *testing.T) {
	strongPassword := "Sup3r$ecretPass!"

	tests := []struct {
		name       string
		body       string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "successful completion",
			body: `{"email":"cook@example.com","first_name":"Ada","last_name":"Lovelace","bio":"I cook.","password":"` + strongPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(database.User{ID: 1, Email: "cook@example.com", Verified: true}, nil)
				mockDB.EXPECT().
					CompleteProfile(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unverified email",
			body: `{"email":"cook@example.com","first_name":"Ada","last_name":"Lovelace","password":"` + strongPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(database.User{ID: 1, Email: "cook@example.com", Verified: false}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.NotVerified,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","first_name":"Ada","last_name":"Lovelace","password":"` + strongPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "ghost@example.com").
					Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
		{
			name: "weak password",
			body: `{"email":"cook@example.com","first_name":"Ada","last_name":"Lovelace","password":"password"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(database.User{ID: 1, Email: "cook@example.com", Verified: true}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.WeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodPost, "/api/register/personal-info", tt.body, 0, nil)
			rec := httptest.NewRecorder()

			HandleRegisterPersonalInfo(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, rec.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	testPassword := "TestP@ssw0rd123!"
	passwordHash, err := argon2id.EncodeHash(testPassword, argon2id.DefaultParams)
	if err != nil {
		t.Fatalf("failed to encode password: %v", err)
	}
	verifiedUser := database.User{
		ID:           1,
		Email:        "cook@example.com",
		PasswordHash: pgtype.Text{String: passwordHash, Valid: true},
		Verified:     true,
	}

	tests := []struct {
		name       string
		body       string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "successful login",
			body: `{"email":"cook@example.com","password":"` + testPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(verifiedUser, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"` + testPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "ghost@example.com").
					Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidCredentials,
		},
		{
			name: "wrong password",
			body: `{"email":"cook@example.com","password":"WrongP@ssw0rd123!"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(verifiedUser, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidCredentials,
		},
		{
			name: "unverified user",
			body: `{"email":"cook@example.com","password":"` + testPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				unverified := verifiedUser
				unverified.Verified = false
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(unverified, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.NotVerified,
		},
		{
			name: "registration never completed",
			body: `{"email":"cook@example.com","password":"` + testPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(database.User{ID: 1, Email: "cook@example.com", Verified: true}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidCredentials,
		},
		{
			name: "database error",
			body: `{"email":"cook@example.com","password":"` + testPassword + `"}`,
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					GetUserByEmail(gomock.Any(), "cook@example.com").
					Return(database.User{}, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiError.InternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodPost, "/api/login", tt.body, 0, nil)
			rec := httptest.NewRecorder()

			HandleLogin(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.AccessToken == "" {
					t.Error("expected access token in response")
				}
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, rec.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleFollowUser(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:   "successful follow",
			userID: "2",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					CreateFollow(gomock.Any(), database.CreateFollowParams{FollowerID: 1, FolloweeID: 2}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "self follow rejected",
			userID:     "1",
			setup:      func(mockDB *dbmock.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.SelfFollow,
		},
		{
			name:   "duplicate follow",
			userID: "2",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					CreateFollow(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.AlreadyFollowing,
		},
		{
			name:   "followee does not exist",
			userID: "404",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					CreateFollow(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23503"})
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodPost,
				"/api/users/"+tt.userID+"/follow", "", 1,
				map[string]string{"userID": tt.userID})
			rec := httptest.NewRecorder()

			HandleFollowUser(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, rec.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleUnfollowUser(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "successful unfollow",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					DeleteFollow(gomock.Any(), database.DeleteFollowParams{FollowerID: 1, FolloweeID: 2}).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not following",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					DeleteFollow(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				mockDB.EXPECT().
					CheckUserExists(gomock.Any(), int64(2)).
					Return(true, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.NotFollowing,
		},
		{
			name: "followee does not exist",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					DeleteFollow(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				mockDB.EXPECT().
					CheckUserExists(gomock.Any(), int64(2)).
					Return(false, nil)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodPost,
				"/api/users/2/unfollow", "", 1,
				map[string]string{"userID": "2"})
			rec := httptest.NewRecorder()

			HandleUnfollowUser(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, rec.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleListUsers(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(mockDB *dbmock.MockQuerier)
		wantStatus int
		wantPage   int32
	}{
		{
			name:   "default page",
			target: "/api/users",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					ListUsers(gomock.Any(), database.ListUsersParams{Limit: 20, Offset: 0}).
					Return([]database.ListUsersRow{{ID: 1, Email: "cook@example.com"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantPage:   1,
		},
		{
			name:   "explicit page",
			target: "/api/users?page=3",
			setup: func(mockDB *dbmock.MockQuerier) {
				mockDB.EXPECT().
					ListUsers(gomock.Any(), database.ListUsersParams{Limit: 20, Offset: 40}).
					Return([]database.ListUsersRow{}, nil)
			},
			wantStatus: http.StatusOK,
			wantPage:   3,
		},
		{
			name:       "invalid page",
			target:     "/api/users?page=zero",
			setup:      func(mockDB *dbmock.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page below one",
			target:     "/api/users?page=0",
			setup:      func(mockDB *dbmock.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := dbmock.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			req := newRequest(t, testEnv(mockDB), http.MethodGet, tt.target, "", 1, nil)
			rec := httptest.NewRecorder()

			HandleListUsers(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var resp ListUsersResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Page != tt.wantPage {
					t.Errorf("page = %d, want %d", resp.Page, tt.wantPage)
				}
			}
		})
	}
}

func TestHandleMyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := dbmock.NewMockQuerier(ctrl)
	mockDB.EXPECT().
		GetUserByID(gomock.Any(), int64(1)).
		Return(database.User{
			ID:        1,
			Email:     "cook@example.com",
			FirstName: pgtype.Text{String: "Ada", Valid: true},
			LastName:  pgtype.Text{String: "Lovelace", Valid: true},
			Verified:  true,
		}, nil)
	mockDB.EXPECT().CountFollowers(gomock.Any(), int64(1)).Return(int64(5), nil)
	mockDB.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(int64(3), nil)
	mockDB.EXPECT().
		ListRecipesByAuthor(gomock.Any(), int64(1)).
		Return([]database.Recipe{{ID: 9, UserID: 1, Title: "Toast"}}, nil)

	req := newRequest(t, testEnv(mockDB), http.MethodGet, "/api/mypage", "", 1, nil)
	rec := httptest.NewRecorder()

	HandleMyPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Followers != 5 || resp.Following != 3 {
		t.Errorf("counts = %d/%d, want 5/3", resp.Followers, resp.Following)
	}
	if len(resp.Recipes) != 1 || resp.Recipes[0].Title != "Toast" {
		t.Errorf("recipes = %+v, want one titled Toast", resp.Recipes)
	}
}

func TestHandleUpdateMyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newBio := "Now with more salt."
	mockDB := dbmock.NewMockQuerier(ctrl)
	mockDB.EXPECT().
		UpdateProfile(gomock.Any(), database.UpdateProfileParams{
			ID:  1,
			Bio: pgtype.Text{String: newBio, Valid: true},
		}).
		Return(database.User{
			ID:    1,
			Email: "cook@example.com",
			Bio:   pgtype.Text{String: newBio, Valid: true},
		}, nil)
	mockDB.EXPECT().CountFollowers(gomock.Any(), int64(1)).Return(int64(0), nil)
	mockDB.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(int64(0), nil)
	mockDB.EXPECT().ListRecipesByAuthor(gomock.Any(), int64(1)).Return([]database.Recipe{}, nil)

	req := newRequest(t, testEnv(mockDB), http.MethodPatch, "/api/my-page/update",
		`{"bio":"`+newBio+`"}`, 1, nil)
	rec := httptest.NewRecorder()

	HandleUpdateMyPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Bio != newBio {
		t.Errorf("bio = %q, want %q", resp.Bio, newBio)
	}
}
