package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
	"github.com/flowpro-systems/field_service_app/internal/handlers"
	"github.com/flowpro-systems/field_service_app/internal/platform/config"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	cfg              *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:              "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:      time.Hour,
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/api/v1/auth",
	}

	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	h := handlers.NewAuthHandler(suite.mockUserService, suite.mockTokenService, suite.cfg)
	auth := suite.router.Group("/api/v1/auth")
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_SetsRefreshCookie() {
	user := &domain.User{UserID: "user-1", Username: "alex"}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, "alex", "hunter22").
		Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).
		Return("access-token", time.Now().Add(time.Hour), nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).
		Return("raw-refresh-token", time.Now().Add(7*24*time.Hour), nil).Once()
	suite.mockUserService.On("UpdateRefreshToken", mock.Anything, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	body, _ := json.Marshal(dto.LoginRequest{Username: "alex", Password: "hunter22"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access-token", resp.Token)
	suite.False(resp.ExpiresAt.IsZero(), "clients need the access token expiry to schedule refreshes")

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("rtid", cookies[0].Name)
	suite.True(strings.HasPrefix(cookies[0].Value, "user-1:"), "cookie carries the user ID for the refresh lookup")
	suite.True(cookies[0].HttpOnly)
	suite.Equal("/api/v1/auth", cookies[0].Path)

	// The stored value must be a hash, never the raw token
	storedHash := suite.mockUserService.Calls[1].Arguments.String(2)
	suite.NotEqual("raw-refresh-token", storedHash)
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "alex", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	body, _ := json.Marshal(dto.LoginRequest{Username: "alex", Password: "wrong"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Empty(w.Result().Cookies())
}

func (suite *AuthHandlerTestSuite) TestRefresh_RotatesToken() {
	user := &domain.User{UserID: "user-1", Username: "alex"}

	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, "user-1", "old-refresh-token").
		Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).
		Return("new-access-token", time.Now().Add(time.Hour), nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).
		Return("new-refresh-token", time.Now().Add(7*24*time.Hour), nil).Once()
	suite.mockUserService.On("UpdateRefreshToken", mock.Anything, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "user-1:old-refresh-token"})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RefreshTokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new-access-token", resp.Token)

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.True(strings.HasPrefix(cookies[0].Value, "user-1:"))
	suite.NotContains(cookies[0].Value, "old-refresh-token")
}

func (suite *AuthHandlerTestSuite) TestRefresh_ExpiredTokenClearsCookie() {
	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, "user-1", "stale-token").
		Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "user-1:stale-token"})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Empty(cookies[0].Value)
	suite.True(cookies[0].MaxAge < 0, "expired cookie removes the stale token")
}

func (suite *AuthHandlerTestSuite) TestRefresh_MissingCookie() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsStoredToken() {
	suite.mockUserService.On("ClearRefreshToken", mock.Anything, "user-1").
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "user-1:whatever"})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}
