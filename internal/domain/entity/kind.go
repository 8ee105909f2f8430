// Package entity defines the core business entities for the domain layer.
package entity

// Kind discriminates income from expense on categories and transactions.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// IsValid reports whether the kind is one of the two enumerated values.
func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}
