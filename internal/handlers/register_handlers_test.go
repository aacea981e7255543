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
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/handlers"
	"github.com/imani-cms/imani_backend/internal/platform/config"
	"github.com/imani-cms/imani_backend/internal/repositories/memory"
	"github.com/imani-cms/imani_backend/internal/utils"
)

// stubAIText satisfies the AI port without any outbound calls.
type stubAIText struct{}

func (stubAIText) SermonOutline(context.Context, dto.SermonOutlineRequest) (string, error) {
	return "outline", nil
}
func (stubAIText) DailyVerse(context.Context) (string, error) { return "verse", nil }
func (stubAIText) LocationScout(context.Context, dto.LocationScoutRequest) (string, error) {
	return "locations", nil
}
func (stubAIText) FinancialInsight(context.Context, string) (*dto.FinancialInsightResponse, error) {
	return &dto.FinancialInsightResponse{Summary: "steady"}, nil
}

var _ portssvc.AITextSvc = stubAIText{}

type stubScripture struct{}

func (stubScripture) GetChapter(_ context.Context, book string, chapter int) (*dto.ScriptureResponse, error) {
	return &dto.ScriptureResponse{Reference: book}, nil
}

var _ portssvc.ScriptureSvc = stubScripture{}

// RouterTestSuite drives the registered routes end to end over the in-memory
// repositories, with real auth and tenant-scope middleware in the path.
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config

	tenantA domain.Tenant
	tenantB domain.Tenant
	admin   domain.User
	owner   domain.User

	passwordHash string
}

func (s *RouterTestSuite) SetupSuite() {
	hash, err := utils.HashPassword("correct horse battery staple")
	s.Require().NoError(err)
	s.passwordHash = hash
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.cfg = &config.Config{
		IsProduction:               true,
		JWTSecret:                  "router-test-secret-key-long-enough",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "imani-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}

	repos := memory.NewRepositoryProvider(memory.NewStores())
	now := time.Now()

	s.tenantA = domain.Tenant{
		TenantID:    uuid.NewString(),
		Name:        "Grace Chapel",
		Subdomain:   "grace",
		PlanTier:    domain.PlanGrowth,
		Status:      domain.TenantActive,
		AuditFields: domain.NewAuditFields("test", now),
	}
	s.tenantB = domain.Tenant{
		TenantID:    uuid.NewString(),
		Name:        "Hope Community",
		Subdomain:   "hope",
		PlanTier:    domain.PlanStarter,
		Status:      domain.TenantActive,
		AuditFields: domain.NewAuditFields("test", now),
	}
	s.Require().NoError(repos.TenantRepo.SaveTenant(context.Background(), s.tenantA))
	s.Require().NoError(repos.TenantRepo.SaveTenant(context.Background(), s.tenantB))

	s.admin = domain.User{
		UserID:       uuid.NewString(),
		TenantID:     s.tenantA.TenantID,
		Username:     "admin",
		Name:         "Admin",
		Email:        "admin@grace.example",
		PasswordHash: s.passwordHash,
		Role:         domain.RoleAdmin,
		AuditFields:  domain.NewAuditFields("test", now),
	}
	s.owner = domain.User{
		UserID:       uuid.NewString(),
		Username:     "owner",
		Name:         "Owner",
		Email:        "owner@imani.example",
		PasswordHash: s.passwordHash,
		Role:         domain.RoleSystemOwner,
		AuditFields:  domain.NewAuditFields("test", now),
	}
	s.Require().NoError(repos.UserRepo.SaveUser(context.Background(), s.admin))
	s.Require().NoError(repos.UserRepo.SaveUser(context.Background(), s.owner))

	container := services.NewServiceContainer(s.cfg, repos, stubAIText{}, stubScripture{})

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, container)
}

func (s *RouterTestSuite) tokenFor(user domain.User) string {
	token, err := utils.GenerateJWT(&user, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	return s.doWithHeaders(method, path, token, body, nil)
}

func (s *RouterTestSuite) doWithHeaders(method, path, token string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestLoginReturnsTokenPairAndViews() {
	w := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{
		Username: "admin",
		Password: "correct horse battery staple",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp.Token)
	s.NotEmpty(resp.RefreshToken)
	s.Equal(domain.RoleAdmin, resp.User.Role)
	s.Contains(resp.VisibleViews, domain.ViewMembers)
}

func (s *RouterTestSuite) TestLoginWrongPassword() {
	w := s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestProtectedRouteRequiresToken() {
	w := s.do(http.MethodGet, "/api/v1/members", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestMemberCreateListAndTenantIsolation() {
	adminToken := s.tokenFor(s.admin)

	w := s.do(http.MethodPost, "/api/v1/members", adminToken, dto.CreateMemberRequest{
		FirstName: "Ama",
		LastName:  "Serwaa",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/members", adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListMembersResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Len(page.Members, 1)

	// A user from another tenant sees nothing.
	other := domain.User{
		UserID:   uuid.NewString(),
		TenantID: s.tenantB.TenantID,
		Role:     domain.RoleAdmin,
	}
	w = s.do(http.MethodGet, "/api/v1/members", s.tokenFor(other), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var otherPage dto.ListMembersResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &otherPage))
	s.Empty(otherPage.Members)
}

func (s *RouterTestSuite) TestUnknownMemberIs404() {
	w := s.do(http.MethodGet, "/api/v1/members/"+uuid.NewString(), s.tokenFor(s.admin), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestNavigationMatchesRole() {
	w := s.do(http.MethodGet, "/api/v1/navigation", s.tokenFor(s.admin), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.NavigationResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(domain.RoleAdmin, resp.Role)
	s.Equal(domain.VisibleViews(domain.RoleAdmin), resp.Views)
}

func (s *RouterTestSuite) TestOwnerConsoleRejectsTenantRoles() {
	w := s.do(http.MethodGet, "/api/v1/owner/tenants", s.tokenFor(s.admin), nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestOwnerConsoleListsTenants() {
	w := s.do(http.MethodGet, "/api/v1/owner/tenants", s.tokenFor(s.owner), nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ListTenantsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Tenants, 2)
}

func (s *RouterTestSuite) TestOwnerCreateWithoutTenantHeaderIs400() {
	// Writes under the all-tenants scope are rejected; the owner must pick a
	// tenant with X-Tenant-ID.
	w := s.do(http.MethodPost, "/api/v1/members", s.tokenFor(s.owner), dto.CreateMemberRequest{
		FirstName: "Kojo",
		LastName:  "Antwi",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestRegisterIgnoresTenantHeader() {
	// A self-registered admin starts tenant-less regardless of any tenant id
	// the caller smuggles into the request.
	w := s.doWithHeaders(http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Username: "newcomer",
		Name:     "Newcomer",
		Email:    "newcomer@example.com",
		Password: "a-long-enough-password",
	}, map[string]string{"X-Tenant-ID": s.tenantA.TenantID})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Empty(resp.User.TenantID)

	// Without a tenant of record the account cannot read any tenant's data.
	members := s.do(http.MethodGet, "/api/v1/members", resp.Token, nil)
	s.Equal(http.StatusForbidden, members.Code)
}

func (s *RouterTestSuite) TestAPIKeyMintReturnsPlaintextOnce() {
	token := s.tokenFor(s.admin)

	w := s.do(http.MethodPost, "/api/v1/api-keys", token, dto.CreateAPIKeyRequest{Name: "ci"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.CreateAPIKeyResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp.KeyID)
	s.Equal("ci", resp.Name)
	s.True(strings.HasPrefix(resp.Key, "ick_"+resp.KeyID+"."))
	s.Equal(resp.Prefix, resp.Key[:len(resp.Prefix)])

	list := s.do(http.MethodGet, "/api/v1/api-keys", token, nil)
	s.Require().Equal(http.StatusOK, list.Code)
	var keys dto.ListAPIKeysResponse
	s.Require().NoError(json.Unmarshal(list.Body.Bytes(), &keys))
	s.Require().Len(keys.Keys, 1)
	s.Equal(resp.KeyID, keys.Keys[0].KeyID)
	s.Empty(keys.Keys[0].KeyHash)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
