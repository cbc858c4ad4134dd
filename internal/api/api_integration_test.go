// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "fintrack-ledger/internal"
)

// testApp is the global application instance for testing.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain is the special entry point for Go tests, executed once before all tests.
// The suite needs a running PostgreSQL with migrations/schema.sql applied; it is
// skipped entirely unless LEDGER_INTEGRATION is set.
func TestMain(m *testing.M) {
	if os.Getenv("LEDGER_INTEGRATION") == "" {
		fmt.Println("LEDGER_INTEGRATION not set; skipping API integration tests")
		return
	}

	// 1. Set up environment variables (ensure DB_NAME points to the test database).
	// In a real CI/CD environment, these variables would be provided by the CI system.
	setupEnvVars()

	// 2. Initialize the application.
	testApp = app.NewApplication()
	if err := testApp.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		os.Exit(1)
	}

	// 3. Start an httptest server to test the HTTP handling layer.
	testServer = httptest.NewServer(testApp.HTTPHandler)
	defer testServer.Close()

	// 4. Run all tests.
	code := m.Run()

	// 5. Shut down application resources after tests (e.g., database connections).
	if err := testApp.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		os.Exit(1)
	}

	os.Exit(code)
}

// setupEnvVars helper function: sets or checks database environment variables required for testing.
func setupEnvVars() {
	if os.Getenv("SERVER_PORT") == "" {
		os.Setenv("SERVER_PORT", "8080")
	}
	if os.Getenv("DB_HOST") == "" {
		os.Setenv("DB_HOST", "localhost")
	}
	if os.Getenv("DB_PORT") == "" {
		os.Setenv("DB_PORT", "5432")
	}
	if os.Getenv("DB_USER") == "" {
		os.Setenv("DB_USER", "user")
	}
	if os.Getenv("DB_PASSWORD") == "" {
		os.Setenv("DB_PASSWORD", "password")
	}
	if os.Getenv("DB_NAME") == "" {
		os.Setenv("DB_NAME", "ledgerdb_test")
	}
	if os.Getenv("DB_SSLMODE") == "" {
		os.Setenv("DB_SSLMODE", "disable")
	}
}

// clearDatabase truncates all mutable tables so every test starts clean.
// Global default categories (user_id IS NULL) are kept; user-owned ones go
// with their users.
func clearDatabase(t *testing.T) {
	tables := []string{"transactions", "budgets", "goals", "reminders", "wallets"}
	for _, table := range tables {
		_, err := testApp.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table))
		require.NoError(t, err, "Failed to truncate table %s", table)
	}
	_, err := testApp.DB.Exec("DELETE FROM categories WHERE user_id IS NOT NULL;")
	require.NoError(t, err)
	_, err = testApp.DB.Exec("DELETE FROM users;")
	require.NoError(t, err)
}

// makeRequest sends an HTTP request to the test server. When userID is
// positive the X-User-ID header is set, standing in for the upstream identity
// provider.
func makeRequest(t *testing.T, method, path string, userID int64, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(method, testServer.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set("X-User-ID", fmt.Sprintf("%d", userID))
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(respBody)
}

// registerUser creates a user plus wallet through the API and returns both ids.
func registerUser(t *testing.T, email, username string) (userID, walletID int64) {
	requestBody := fmt.Sprintf(`{"email": %q, "username": %q}`, email, username)
	resp, body := makeRequest(t, "POST", "/users", 0, strings.NewReader(requestBody))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, "registration failed: %s", body)

	var responseMap map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &responseMap))
	userID = int64(responseMap["user"].(map[string]interface{})["id"].(float64))
	walletID = int64(responseMap["wallet"].(map[string]interface{})["id"].(float64))
	return userID, walletID
}

// globalCategoryID looks up one of the seeded default categories by name.
func globalCategoryID(t *testing.T, userID int64, name string) int64 {
	resp, body := makeRequest(t, "GET", "/categories", userID, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &categories))
	for _, category := range categories {
		if category["name"] == name {
			return int64(category["id"].(float64))
		}
	}
	t.Fatalf("default category %q not seeded", name)
	return 0
}

// walletBalance reads the authenticated user's wallet balance via the API.
func walletBalance(t *testing.T, userID int64) decimal.Decimal {
	resp, body := makeRequest(t, "GET", "/wallet", userID, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var walletMap map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &walletMap))
	balance, err := decimal.NewFromString(walletMap["balance"].(string))
	require.NoError(t, err)
	return balance
}

// TestRegistrationIntegration covers user registration and wallet provisioning.
func TestRegistrationIntegration(t *testing.T) {
	clearDatabase(t)

	t.Run("SuccessfulRegistration", func(t *testing.T) {
		userID, _ := registerUser(t, "alice@example.com", "alice")
		balance := walletBalance(t, userID)
		assert.True(t, balance.IsZero(), "New wallet should start at zero, got %s", balance)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		requestBody := `{"email": "alice@example.com", "username": "alice2"}`
		resp, body := makeRequest(t, "POST", "/users", 0, strings.NewReader(requestBody))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body, "Duplicate entry")
	})

	t.Run("MissingIdentityHeader", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/wallet", 0, nil)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Missing or invalid user identity")
	})
}

// TestLedgerFlowIntegration walks a full income/expense lifecycle and checks
// the wallet balance after every step.
func TestLedgerFlowIntegration(t *testing.T) {
	clearDatabase(t)
	userID, walletID := registerUser(t, "bob@example.com", "bob")
	categoryID := globalCategoryID(t, userID, "Groceries")
	salaryID := globalCategoryID(t, userID, "Salary")

	// Income: 0 + 1000 = 1000.
	incomeBody := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "1000.00", "date": "2025-06-01"}`, walletID, salaryID)
	resp, body := makeRequest(t, "POST", "/incomes", userID, strings.NewReader(incomeBody))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, "income create failed: %s", body)

	var responseMap map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &responseMap))
	newBalance, err := decimal.NewFromString(responseMap["balance"].(string))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1000.00").Equal(newBalance))

	// Expense: 1000 - 150 = 850.
	expenseBody := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "150.00", "date": "2025-06-10"}`, walletID, categoryID)
	resp2, body2 := makeRequest(t, "POST", "/expenses", userID, strings.NewReader(expenseBody))
	defer resp2.Body.Close()
	require.Equal(t, http.StatusCreated, resp2.StatusCode, "expense create failed: %s", body2)

	require.NoError(t, json.Unmarshal([]byte(body2), &responseMap))
	expenseID := int64(responseMap["transaction"].(map[string]interface{})["id"].(float64))
	newBalance, err = decimal.NewFromString(responseMap["balance"].(string))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("850.00").Equal(newBalance))

	// Edit the expense down to 100: balance moves by +50 to 900.
	updateBody := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "100.00", "date": "2025-06-10"}`, walletID, categoryID)
	resp3, body3 := makeRequest(t, "PUT", fmt.Sprintf("/expenses/%d", expenseID), userID, strings.NewReader(updateBody))
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode, "expense update failed: %s", body3)

	require.NoError(t, json.Unmarshal([]byte(body3), &responseMap))
	newBalance, err = decimal.NewFromString(responseMap["balance"].(string))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("900.00").Equal(newBalance))

	// Delete the expense: its contribution is reversed, back to 1000.
	resp4, body4 := makeRequest(t, "DELETE", fmt.Sprintf("/expenses/%d", expenseID), userID, nil)
	defer resp4.Body.Close()
	require.Equal(t, http.StatusOK, resp4.StatusCode, "expense delete failed: %s", body4)

	require.NoError(t, json.Unmarshal([]byte(body4), &responseMap))
	newBalance, err = decimal.NewFromString(responseMap["balance"].(string))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1000.00").Equal(newBalance))

	// The wallet read agrees with the last write.
	assert.True(t, decimal.RequireFromString("1000.00").Equal(walletBalance(t, userID)))

	// Income listing shows one entry, expense listing none.
	resp5, body5 := makeRequest(t, "GET", "/incomes", userID, nil)
	defer resp5.Body.Close()
	assert.Equal(t, http.StatusOK, resp5.StatusCode)
	var listMap map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body5), &listMap))
	assert.Len(t, listMap["data"], 1)

	resp6, body6 := makeRequest(t, "GET", "/expenses", userID, nil)
	defer resp6.Body.Close()
	assert.Equal(t, http.StatusOK, resp6.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body6), &listMap))
	assert.Equal(t, float64(0), listMap["total_count"])
}

// TestBudgetCapIntegration verifies that expense creates are rejected once
// they would push the category's period total over its budget.
func TestBudgetCapIntegration(t *testing.T) {
	clearDatabase(t)
	userID, walletID := registerUser(t, "carol@example.com", "carol")
	categoryID := globalCategoryID(t, userID, "Groceries")
	salaryID := globalCategoryID(t, userID, "Salary")

	// Fund the wallet so rejections can only come from the budget cap.
	incomeBody := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "1000.00", "date": "2025-06-01"}`, walletID, salaryID)
	respFund, _ := makeRequest(t, "POST", "/incomes", userID, strings.NewReader(incomeBody))
	defer respFund.Body.Close()
	require.Equal(t, http.StatusCreated, respFund.StatusCode)

	budgetBody := fmt.Sprintf(`{"category_id": %d, "amount": "250.00", "start_date": "2025-06-01", "end_date": "2025-06-30"}`, categoryID)
	respBudget, bodyBudget := makeRequest(t, "POST", "/budgets", userID, strings.NewReader(budgetBody))
	defer respBudget.Body.Close()
	require.Equal(t, http.StatusCreated, respBudget.StatusCode, "budget create failed: %s", bodyBudget)

	// 200 fits under the 250 limit.
	firstExpense := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "200.00", "date": "2025-06-10"}`, walletID, categoryID)
	resp1, body1 := makeRequest(t, "POST", "/expenses", userID, strings.NewReader(firstExpense))
	defer resp1.Body.Close()
	require.Equal(t, http.StatusCreated, resp1.StatusCode, "first expense failed: %s", body1)

	// 200 + 100 > 250: rejected, nothing persisted.
	secondExpense := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "100.00", "date": "2025-06-15"}`, walletID, categoryID)
	resp2, body2 := makeRequest(t, "POST", "/expenses", userID, strings.NewReader(secondExpense))
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp2.StatusCode)
	assert.Contains(t, body2, "budget exceeded for category")

	// The rejection left the balance and the transaction list untouched.
	assert.True(t, decimal.RequireFromString("800.00").Equal(walletBalance(t, userID)))

	resp3, body3 := makeRequest(t, "GET", "/expenses", userID, nil)
	defer resp3.Body.Close()
	var listMap map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body3), &listMap))
	assert.Len(t, listMap["data"], 1, "rejected expense must not be persisted")

	// A different category is not constrained by this budget.
	otherID := globalCategoryID(t, userID, "Transport")
	otherExpense := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "100.00", "date": "2025-06-15"}`, walletID, otherID)
	resp4, body4 := makeRequest(t, "POST", "/expenses", userID, strings.NewReader(otherExpense))
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusCreated, resp4.StatusCode, "uncapped category expense failed: %s", body4)
}

// TestGoalAchievementIntegration verifies goal achievement is recorded when
// the balance reaches the target, and never reverts afterwards.
func TestGoalAchievementIntegration(t *testing.T) {
	clearDatabase(t)
	userID, walletID := registerUser(t, "dave@example.com", "dave")
	salaryID := globalCategoryID(t, userID, "Salary")
	categoryID := globalCategoryID(t, userID, "Groceries")

	goalBody := `{"name": "Vacation", "target_amount": "500.00", "start_date": "2025-01-01", "end_date": "2026-12-31"}`
	respGoal, bodyGoal := makeRequest(t, "POST", "/goals", userID, strings.NewReader(goalBody))
	defer respGoal.Body.Close()
	require.Equal(t, http.StatusCreated, respGoal.StatusCode, "goal create failed: %s", bodyGoal)

	isGoalAchieved := func() bool {
		resp, body := makeRequest(t, "GET", "/goals", userID, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var goals []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &goals))
		require.Len(t, goals, 1)
		return goals[0]["is_achieved"].(bool)
	}

	assert.False(t, isGoalAchieved())

	// Reaching the target exactly flips the flag.
	incomeBody := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "500.00", "date": "2025-06-01"}`, walletID, salaryID)
	resp1, body1 := makeRequest(t, "POST", "/incomes", userID, strings.NewReader(incomeBody))
	defer resp1.Body.Close()
	require.Equal(t, http.StatusCreated, resp1.StatusCode, "income create failed: %s", body1)
	assert.True(t, isGoalAchieved())

	// Dropping below the target afterwards does not un-achieve the goal.
	expenseBody := fmt.Sprintf(`{"wallet_id": %d, "category_id": %d, "amount": "100.00", "date": "2025-06-10"}`, walletID, categoryID)
	resp2, body2 := makeRequest(t, "POST", "/expenses", userID, strings.NewReader(expenseBody))
	defer resp2.Body.Close()
	require.Equal(t, http.StatusCreated, resp2.StatusCode, "expense create failed: %s", body2)
	assert.True(t, isGoalAchieved())
}
