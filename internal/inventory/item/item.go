// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
Package item implements the principal-scoped inventory item domain.

Every operation in this package is filtered by the owning user: a principal
can only ever see or mutate rows where owner matches their own ID. A row
that exists but belongs to someone else is reported as not-found, never as
forbidden, so item IDs cannot be probed across tenants.

# Architecture

  - Entities: Item, StatusSummary.
  - Service: Validation, blob persistence, and summary cache coordination.
  - Repository: Postgres rows plus a Redis-backed summary cache.
*/
package item

import "time"

// # Domain Entities

// Item statuses. "Ada" marks an item as present, "Hilang" as missing.
const (
	StatusAvailable   = "Ada"
	StatusUnavailable = "Hilang"
)

// Item represents a single tracked inventory entry belonging to one user.
type Item struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Stock        int       `json:"stock"`
	Location     string    `json:"location"`
	Condition    string    `json:"condition"`
	ReminderDate string    `json:"reminder_date"`
	ImagePath    string    `json:"image_path"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatusSummary is the per-user aggregate over item statuses.
//
// It is always a single zero-filled row, even for a user with no items.
type StatusSummary struct {
	TotalItems       int `json:"totalItems"`
	AvailableItems   int `json:"availableItems"`
	UnavailableItems int `json:"unavailableItems"`
}

// # Field Identifiers

// Global field names for validation and transport mapping in the item domain.
const (
	FieldName         = "name"
	FieldStock        = "stock"
	FieldLocation     = "location"
	FieldCondition    = "condition"
	FieldReminderDate = "reminder_date"
	FieldDescription  = "description"
	FieldImage        = "image_path"
	FieldStatus       = "status"
	FieldQuery        = "query"
	FieldItemID       = "itemId"
)
