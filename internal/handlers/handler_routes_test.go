package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/newwork/staffhub/internal/core/services"
	"github.com/newwork/staffhub/internal/handlers"
	"github.com/newwork/staffhub/internal/platform/config"
	"github.com/newwork/staffhub/internal/repositories/memory"
)

// RoutesTestSuite exercises the HTTP surface end to end against the seeded
// in-memory store.
type RoutesTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                 "0",
		FrontendBaseURL:      "http://localhost:5173",
		SessionTTL:           time.Hour,
		SessionSweepInterval: time.Minute,
	}

	store := memory.NewStore()
	store.Seed()
	repos := memory.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos, nil)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, container, cfg)
}

func (suite *RoutesTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// login performs a login and returns the session token.
func (suite *RoutesTestSuite) login(email, role string) string {
	w := suite.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "role": role})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().True(resp.Success)
	suite.Require().NotEmpty(resp.Data.Token)
	return resp.Data.Token
}

func (suite *RoutesTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RoutesTestSuite) TestConfigIsPublic() {
	w := suite.do(http.MethodGet, "/api/config", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "annualVacationDays")
}

func (suite *RoutesTestSuite) TestLogin_InvalidCredentials() {
	w := suite.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "nobody@newwork.com", "role": "employee"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), `"success":false`)
}

func (suite *RoutesTestSuite) TestLogin_MalformedBody() {
	w := suite.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "not-an-email", "role": "wizard"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoutesTestSuite) TestMe_RequiresSession() {
	w := suite.do(http.MethodGet, "/api/auth/me", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestMe_ReturnsSessionUser() {
	token := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodGet, "/api/auth/me", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Michael")
}

func (suite *RoutesTestSuite) TestLogout_InvalidatesSession() {
	token := suite.login("manager@newwork.com", "manager")

	w := suite.do(http.MethodPost, "/api/auth/logout", token, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/auth/me", token, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestGetProfile_ManagerSeesSalary() {
	token := suite.login("manager@newwork.com", "manager")

	w := suite.do(http.MethodGet, "/api/profiles/2", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"salary"`)
	suite.Contains(w.Body.String(), "michael.chen@newwork.com")
}

func (suite *RoutesTestSuite) TestGetProfile_CoworkerNeverSeesSalary() {
	token := suite.login("coworker@newwork.com", "coworker")

	w := suite.do(http.MethodGet, "/api/profiles/2", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), `"salary"`)
	suite.NotContains(w.Body.String(), "michael.chen@newwork.com")
	suite.NotContains(w.Body.String(), `"emergencyContact"`)
	suite.Contains(w.Body.String(), "Michael")
}

func (suite *RoutesTestSuite) TestLogin_DeclaredRoleGrantsNoAccess() {
	// An employee declaring the manager role at login still gets an
	// employee session.
	token := suite.login("employee@newwork.com", "manager")

	w := suite.do(http.MethodGet, "/api/profiles/3", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/profiles/list/all", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestGetProfile_EmployeeBlockedFromOthers() {
	token := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodGet, "/api/profiles/3", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestListProfiles_ManagerOnly() {
	managerToken := suite.login("manager@newwork.com", "manager")
	coworkerToken := suite.login("coworker@newwork.com", "coworker")

	w := suite.do(http.MethodGet, "/api/profiles/list/all", managerToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/profiles/list/all", coworkerToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestBrowseProfiles_AnyAuthenticatedRole() {
	token := suite.login("coworker@newwork.com", "coworker")

	w := suite.do(http.MethodGet, "/api/profiles/browse", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), `"salary"`)
}

func (suite *RoutesTestSuite) TestUpdateProfile_OwnerSalaryRejected() {
	token := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodPut, "/api/profiles/2", token, gin.H{"salary": "999999"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestAbsenceLifecycle() {
	employeeToken := suite.login("employee@newwork.com", "employee")
	managerToken := suite.login("manager@newwork.com", "manager")

	start := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 15).Format("2006-01-02")

	w := suite.do(http.MethodPost, "/api/absence/employee/2", employeeToken, gin.H{
		"startDate": start, "endDate": end, "reason": "Family visit",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	// Status decisions are manager-only.
	w = suite.do(http.MethodPut, fmt.Sprintf("/api/absence/%s/status", created.Data.ID), employeeToken, gin.H{"status": "approved"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPut, fmt.Sprintf("/api/absence/%s/status", created.Data.ID), managerToken, gin.H{"status": "approved"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"approved"`)

	// Approved requests cannot be deleted.
	w = suite.do(http.MethodDelete, fmt.Sprintf("/api/absence/%s/employee/2", created.Data.ID), employeeToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Can only delete pending absence requests")
}

func (suite *RoutesTestSuite) TestAbsenceValidationMessageReachesClient() {
	token := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodPost, "/api/absence/employee/2", token, gin.H{
		"startDate": "2020-01-01", "endDate": "2020-01-02", "reason": "Too late",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Start date cannot be in the past")
}

func (suite *RoutesTestSuite) TestAbsenceDelete_CoworkerCannotTouchOthers() {
	token := suite.login("coworker@newwork.com", "coworker")

	w := suite.do(http.MethodDelete, "/api/absence/1/employee/2", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestAbsenceListAll_ManagerOnly() {
	managerToken := suite.login("manager@newwork.com", "manager")
	employeeToken := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodGet, "/api/absence/all", managerToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/absence/all", employeeToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestAbsenceStatistics() {
	token := suite.login("manager@newwork.com", "manager")

	w := suite.do(http.MethodGet, "/api/absence/employee/2/statistics", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"totalDaysRequested":2`)
}

func (suite *RoutesTestSuite) TestFeedbackCreateAndVisibility() {
	coworkerToken := suite.login("coworker@newwork.com", "coworker")
	employeeToken := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodPost, "/api/feedback/profiles/2", coworkerToken, gin.H{
		"content": "Pairing with you on the migration was great.",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	// Author identity comes from the session, not the payload.
	suite.Contains(w.Body.String(), "Emily Davis")

	w = suite.do(http.MethodGet, "/api/feedback/profiles/2", employeeToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Pairing with you on the migration was great.")
}

func (suite *RoutesTestSuite) TestFeedbackDelete_StrangerForbidden() {
	// Feedback 2 on Emily's profile was authored by the manager.
	token := suite.login("employee@newwork.com", "employee")

	w := suite.do(http.MethodDelete, "/api/feedback/2", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestEnhance_NoUpstreamFallsBack() {
	token := suite.login("coworker@newwork.com", "coworker")

	w := suite.do(http.MethodPost, "/api/feedback/enhance", token, gin.H{
		"text": "this was terrible work", "employeeName": "Michael Chen",
	})

	// No enhancer configured: the endpoint still succeeds and echoes the
	// original text.
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"isEnhanced":false`)
	suite.Contains(w.Body.String(), "this was terrible work")
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
