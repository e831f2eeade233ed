package domain

// Numeric identifiers assigned by the relational store.
type (
	UserID    int64
	BoardID   int64
	ProjectID int64
	TaskID    int64
)
