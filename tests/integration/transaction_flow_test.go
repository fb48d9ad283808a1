package integration

import (
	"net/http"
	"testing"

	"fintrack/internal/models"
)

func TestTransactionFlow_RecordAndList(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "txflow@test.com", "password123")
	app.createCategory(t, token, "Salary", "💰", "income")
	app.createCategory(t, token, "Groceries", "🛒", "expense")

	app.recordTransaction(t, token, 5000, "2024-03-15", "income", "Salary")
	app.recordTransaction(t, token, 120.50, "2024-03-16", "expense", "Groceries")

	// List newest first
	rec := app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 2 {
		t.Fatalf("expected 2 transactions, got %v", result["total_items"])
	}
	data := result["data"].([]interface{})
	first := data[0].(map[string]interface{})
	if first["category"] != "Groceries" {
		t.Errorf("expected newest transaction first, got %v", first["category"])
	}
	if first["category_icon"] != "🛒" {
		t.Errorf("expected icon snapshot, got %v", first["category_icon"])
	}

	// Filter by type
	rec = app.request("GET", "/api/v1/transactions?type=income", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered list failed: %d", rec.Code)
	}
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 income transaction, got %v", result["total_items"])
	}
}

func TestTransactionFlow_RollupsUpdated(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "rollup@test.com", "password123")
	app.createCategory(t, token, "Salary", "💰", "income")

	app.recordTransaction(t, token, 5000, "2024-03-15", "income", "Salary")
	app.recordTransaction(t, token, 2000, "2024-03-20", "income", "Salary")

	var daily models.DailyHistory
	err := app.DB.Where("user_id = ? AND day = ? AND month = ? AND year = ?", userID, 15, 2, 2024).
		First(&daily).Error
	if err != nil {
		t.Fatalf("expected daily bucket for March 15th: %v", err)
	}
	if daily.Income != 5000 {
		t.Errorf("expected daily income 5000, got %v", daily.Income)
	}

	var monthly models.MonthlyHistory
	err = app.DB.Where("user_id = ? AND month = ? AND year = ?", userID, 2, 2024).
		First(&monthly).Error
	if err != nil {
		t.Fatalf("expected monthly bucket for March: %v", err)
	}
	if monthly.Income != 7000 {
		t.Errorf("expected monthly income 7000, got %v", monthly.Income)
	}
}

func TestTransactionFlow_UnknownCategoryRejected(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "nocategory@test.com", "password123")

	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":100,"date":"2024-03-15","type":"expense","category":"Nonexistent"}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	// Nothing was written
	var count int64
	if err := app.DB.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no transactions, got %d", count)
	}
}

func TestTransactionFlow_UsersIsolated(t *testing.T) {
	app := setupApp(t)

	aliceToken, _ := app.registerUser(t, "alice@test.com", "password123")
	bobToken, _ := app.registerUser(t, "bob@test.com", "password123")

	app.createCategory(t, aliceToken, "Salary", "💰", "income")
	app.recordTransaction(t, aliceToken, 5000, "2024-03-15", "income", "Salary")

	// Bob cannot use Alice's category
	rec := app.request("POST", "/api/v1/transactions",
		`{"amount":100,"date":"2024-03-15","type":"income","category":"Salary"}`, bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other user's category, got %d", rec.Code)
	}

	// Bob sees no transactions
	rec = app.request("GET", "/api/v1/transactions", "", bobToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Error("expected no transactions for Bob")
	}
}

func TestCategoryFlow_DeleteKeepsHistory(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "delete@test.com", "password123")
	categoryID := app.createCategory(t, token, "Groceries", "🛒", "expense")
	app.recordTransaction(t, token, 80, "2024-03-15", "expense", "Groceries")

	rec := app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// The transaction keeps its snapshot
	rec = app.request("GET", "/api/v1/transactions", "", token)
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(data))
	}
	tx := data[0].(map[string]interface{})
	if tx["category"] != "Groceries" || tx["category_icon"] != "🛒" {
		t.Errorf("expected snapshot intact, got %v/%v", tx["category"], tx["category_icon"])
	}

	// And recording against the deleted name now fails
	rec = app.request("POST", "/api/v1/transactions",
		`{"amount":10,"date":"2024-03-16","type":"expense","category":"Groceries"}`, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}
