package common

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	CategoryID   string `json:"categoryID,omitempty" doc:"Category UUID, absent when uncategorized"`
	CategoryName string `json:"categoryName,omitempty" doc:"Category name"`
	Description  string `json:"description" doc:"Free text description"`
	Amount       string `json:"amount" doc:"Decimal amount, always positive"`
	Type         string `json:"type" enum:"income,expense" doc:"Transaction type"`
	Date         string `json:"date" doc:"Business date, YYYY-MM-DD"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

// Category is the API response model for a category.
type Category struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name" doc:"Category name"`
	Type string `json:"type" enum:"income,expense" doc:"Transaction type the category groups"`
}

// Goal is the API response model for a goal.
type Goal struct {
	ID            string `json:"id" doc:"Goal UUID"`
	CategoryID    string `json:"categoryID,omitempty" doc:"Category UUID, absent for general goals"`
	Name          string `json:"name" doc:"Goal name"`
	TargetAmount  string `json:"targetAmount" doc:"Decimal target"`
	CurrentAmount string `json:"currentAmount" doc:"Decimal progress derived from the ledger"`
	Deadline      string `json:"deadline" doc:"Deadline, YYYY-MM-DD"`
	Status        string `json:"status" enum:"active,completed,cancelled" doc:"Derived status"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt     string `json:"updatedAt" doc:"RFC3339 time of the last recompute"`
}

// CategoryTotal is the API response model for a per-category aggregate.
type CategoryTotal struct {
	CategoryID   string `json:"categoryID,omitempty" doc:"Category UUID, absent for uncategorized transactions"`
	CategoryName string `json:"categoryName,omitempty" doc:"Category name"`
	Type         string `json:"type" doc:"Category type"`
	Income       string `json:"income" doc:"Decimal income"`
	Expenses     string `json:"expenses" doc:"Decimal expenses"`
	Net          string `json:"net" doc:"Decimal income minus expenses"`
	Total        string `json:"total" doc:"Decimal income plus expenses"`
	Count        int    `json:"count" doc:"Number of transactions"`
}

func NewTransaction(tx ledger.Transaction, category *ledger.Category) Transaction {
	resp := Transaction{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Type:        string(tx.Type),
		Date:        tx.Date.Format(DateLayout),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID.Valid {
		resp.CategoryID = tx.CategoryID.UUID.String()
	}
	if category != nil {
		resp.CategoryName = category.Name
	}
	return resp
}

func NewCategorizedTransactions(txs []service.CategorizedTransaction) []Transaction {
	resp := make([]Transaction, len(txs))
	for i, tx := range txs {
		resp[i] = NewTransaction(tx.Transaction, tx.Category)
	}
	return resp
}

func NewCategory(category ledger.Category) Category {
	return Category{
		ID:   category.ID.String(),
		Name: category.Name,
		Type: string(category.Type),
	}
}

func NewGoal(goal ledger.Goal) Goal {
	resp := Goal{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.StringFixed(2),
		CurrentAmount: goal.CurrentAmount.StringFixed(2),
		Deadline:      goal.Deadline.Format(DateLayout),
		Status:        string(goal.Status),
		CreatedAt:     goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     goal.UpdatedAt.Format(time.RFC3339),
	}
	if goal.CategoryID.Valid {
		resp.CategoryID = goal.CategoryID.UUID.String()
	}
	return resp
}

func NewGoals(goals []ledger.Goal) []Goal {
	resp := make([]Goal, len(goals))
	for i, goal := range goals {
		resp[i] = NewGoal(goal)
	}
	return resp
}

func NewCategoryTotals(totals []service.CategoryTotal) []CategoryTotal {
	resp := make([]CategoryTotal, len(totals))
	for i, total := range totals {
		resp[i] = CategoryTotal{
			Type:     string(total.Type),
			Income:   total.Income.StringFixed(2),
			Expenses: total.Expenses.StringFixed(2),
			Net:      total.Net.StringFixed(2),
			Total:    total.Total.StringFixed(2),
			Count:    total.Count,
		}
		if total.Category != nil {
			resp[i].CategoryID = total.Category.ID.String()
			resp[i].CategoryName = total.Category.Name
		}
	}
	return resp
}
