package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentiq/talentiq-backend-go/internal/domain/mobility"
	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
)

func createHandlerTestUser(t *testing.T, ctx context.Context, email string, role user.Role) string {
	var userID string
	err := testHandlerDB.QueryRow(ctx, `
		INSERT INTO users (email, name, role)
		VALUES ($1, 'Test User', $2)
		RETURNING id
	`, email, string(role)).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createHandlerTestDepartment(t *testing.T, ctx context.Context, hrID string, name string) {
	_, err := testHandlerDB.Exec(ctx, `
		INSERT INTO departments (hr_id, name) VALUES ($1, $2)
	`, hrID, name)
	require.NoError(t, err)
}

func accessTokenFor(t *testing.T, tokenService token.Service, userID string, email string, role user.Role) string {
	tokenString, _, err := tokenService.GenerateAccessToken(userID, email, role, nil)
	require.NoError(t, err)
	return tokenString
}

func withBearer(tokenString string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tokenString)
	}
}

func TestMobilityHandler_UpdateMobility(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	hrID := createHandlerTestUser(t, ctx, "hr@example.com", user.RoleHR)
	employeeID := createHandlerTestUser(t, ctx, "employee@example.com", user.RoleEmployee)
	createHandlerTestDepartment(t, ctx, hrID, "Engineering")
	bearer := accessTokenFor(t, tokenService, hrID, "hr@example.com", user.RoleHR)

	rec := doJSON(t, router, http.MethodPost, "/api/hr-api/update-mobility", `{
		"department": "Engineering",
		"position": "Engineer",
		"salary": 5000,
		"userId": "`+employeeID+`",
		"transfer": true,
		"promotion": true
	}`, withBearer(bearer))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp mobility.UpdateMobilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, []string{"Engineering"}, resp.User.Department)
	assert.Equal(t, "5000", resp.User.Salary)
}

func TestMobilityHandler_UpdateMobility_ArrayShapedFields(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	hrID := createHandlerTestUser(t, ctx, "hr@example.com", user.RoleHR)
	employeeID := createHandlerTestUser(t, ctx, "employee@example.com", user.RoleEmployee)
	bearer := accessTokenFor(t, tokenService, hrID, "hr@example.com", user.RoleHR)

	rec := doJSON(t, router, http.MethodPost, "/api/hr-api/update-mobility", `{
		"department": ["Engineering"],
		"position": ["Engineer"],
		"salary": "5000",
		"userId": "`+employeeID+`",
		"transfer": false
	}`, withBearer(bearer))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestMobilityHandler_UpdateMobility_ValidationError(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	hrID := createHandlerTestUser(t, ctx, "hr@example.com", user.RoleHR)
	bearer := accessTokenFor(t, tokenService, hrID, "hr@example.com", user.RoleHR)

	rec := doJSON(t, router, http.MethodPost, "/api/hr-api/update-mobility", `{
		"department": "Engineering",
		"position": "Engineer",
		"salary": "abc",
		"userId": "some-user"
	}`, withBearer(bearer))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "salary")
}

func TestMobilityHandler_UpdateMobility_MissingDestination(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	hrID := createHandlerTestUser(t, ctx, "hr@example.com", user.RoleHR)
	employeeID := createHandlerTestUser(t, ctx, "employee@example.com", user.RoleEmployee)
	bearer := accessTokenFor(t, tokenService, hrID, "hr@example.com", user.RoleHR)

	rec := doJSON(t, router, http.MethodPost, "/api/hr-api/update-mobility", `{
		"department": "Ghost",
		"position": "Engineer",
		"salary": 5000,
		"userId": "`+employeeID+`",
		"transfer": true
	}`, withBearer(bearer))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Ghost")
}

func TestMobilityHandler_RequiresHRRole(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	employeeID := createHandlerTestUser(t, ctx, "employee@example.com", user.RoleEmployee)
	bearer := accessTokenFor(t, tokenService, employeeID, "employee@example.com", user.RoleEmployee)

	rec := doJSON(t, router, http.MethodPost, "/api/hr-api/update-mobility", `{
		"department": "Engineering",
		"position": "Engineer",
		"salary": 5000,
		"userId": "`+employeeID+`",
		"transfer": false
	}`, withBearer(bearer))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMobilityHandler_RequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/hr-api/update-mobility", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDepartmentHandler_CreateAndList(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	hrID := createHandlerTestUser(t, ctx, "hr@example.com", user.RoleHR)
	bearer := accessTokenFor(t, tokenService, hrID, "hr@example.com", user.RoleHR)

	created := doJSON(t, router, http.MethodPost, "/api/hr-api/departments", `{
		"name": "Engineering"
	}`, withBearer(bearer))
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	// Duplicate name under the same HR conflicts.
	dup := doJSON(t, router, http.MethodPost, "/api/hr-api/departments", `{
		"name": "Engineering"
	}`, withBearer(bearer))
	assert.Equal(t, http.StatusConflict, dup.Code)

	list := doJSON(t, router, http.MethodGet, "/api/hr-api/departments", "", withBearer(bearer))
	require.Equal(t, http.StatusOK, list.Code)

	var body struct {
		Departments []struct {
			Name string `json:"name"`
		} `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &body))
	require.Len(t, body.Departments, 1)
	assert.Equal(t, "Engineering", body.Departments[0].Name)
}

func TestEmployeeHandler_ProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	employeeID := createHandlerTestUser(t, ctx, "employee@example.com", user.RoleEmployee)
	bearer := accessTokenFor(t, tokenService, employeeID, "employee@example.com", user.RoleEmployee)

	// No profile row yet.
	missing := doJSON(t, router, http.MethodGet, "/api/employee/profile", "", withBearer(bearer))
	assert.Equal(t, http.StatusNotFound, missing.Code)

	saved := doJSON(t, router, http.MethodPut, "/api/employee/profile", `{
		"bio": "Backend engineer",
		"skills": ["go", "postgres"]
	}`, withBearer(bearer))
	require.Equal(t, http.StatusOK, saved.Code, saved.Body.String())

	got := doJSON(t, router, http.MethodGet, "/api/employee/profile", "", withBearer(bearer))
	require.Equal(t, http.StatusOK, got.Code)

	var profile struct {
		UserID string   `json:"userId"`
		Bio    *string  `json:"bio"`
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &profile))
	assert.Equal(t, employeeID, profile.UserID)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "Backend engineer", *profile.Bio)
	assert.Equal(t, []string{"go", "postgres"}, profile.Skills)
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	adminID := createHandlerTestUser(t, ctx, "admin@example.com", user.RoleAdmin)
	victimID := createHandlerTestUser(t, ctx, "victim@example.com", user.RoleEmployee)
	bearer := accessTokenFor(t, tokenService, adminID, "admin@example.com", user.RoleAdmin)

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/users/"+victimID, "", withBearer(bearer))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Deleting again reports not found.
	again := doJSON(t, router, http.MethodDelete, "/api/admin/users/"+victimID, "", withBearer(bearer))
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestAdminHandler_DeleteUser_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	truncateHandlerTables(t, ctx)
	router, tokenService := newTestRouter()

	hrID := createHandlerTestUser(t, ctx, "hr@example.com", user.RoleHR)
	victimID := createHandlerTestUser(t, ctx, "victim@example.com", user.RoleEmployee)
	bearer := accessTokenFor(t, tokenService, hrID, "hr@example.com", user.RoleHR)

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/users/"+victimID, "", withBearer(bearer))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
