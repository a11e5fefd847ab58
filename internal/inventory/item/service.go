// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/blob"
	"github.com/gudangku/gudangku/internal/platform/constants"
)

// # Service Layer

// Service orchestrates business logic for inventory items.
//
// It coordinates the Postgres repository, the blob store for item images,
// and the volatile summary cache. Cache failures degrade to the database
// path; they are logged but never surfaced to the client.
type Service struct {
	itemRepository ItemRepository
	summaryCache   SummaryCache
	blobStore      blob.Store
	logger         *slog.Logger
}

// NewService constructs a new item [Service] with its dependencies.
func NewService(itemRepo ItemRepository, cache SummaryCache, blobStore blob.Store, logger *slog.Logger) *Service {
	return &Service{
		itemRepository: itemRepo,
		summaryCache:   cache,
		blobStore:      blobStore,
		logger:         logger,
	}
}

// # Reads

/*
List retrieves every item belonging to the principal.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []Item: The principal's items
  - error: apperr.NotFound when they have none, or retrieval failures
*/
func (service *Service) List(context context.Context, userID int64) ([]Item, error) {
	return service.itemRepository.ListByOwner(context, userID)
}

/*
Search matches the principal's item names case-insensitively.

Parameters:
  - context: context.Context
  - userID: int64
  - query: string

Returns:
  - []Item: Matching items
  - error: Validation (empty query), apperr.NotFound, or retrieval failures
*/
func (service *Service) Search(context context.Context, userID int64, query string) ([]Item, error) {
	if query == "" {
		return nil, apperr.ValidationError("Search query is required")
	}
	return service.itemRepository.SearchByName(context, userID, query)
}

/*
Get retrieves a single item owned by the principal.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64

Returns:
  - *Item: The item
  - error: apperr.NotFound (missing or not owned) or storage failures
*/
func (service *Service) Get(context context.Context, userID, itemID int64) (*Item, error) {
	return service.itemRepository.FindByIDAndOwner(context, itemID, userID)
}

/*
StatusSummary aggregates the principal's item counts by status.

Description: Consults the Redis cache first; a miss or cache failure falls
through to the database, and the fresh aggregate is written back with a
short TTL. Always yields a row, zero-filled for an empty inventory.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *StatusSummary: Aggregate counts
  - error: Database retrieval failures only
*/
func (service *Service) StatusSummary(context context.Context, userID int64) (*StatusSummary, error) {

	// Fast path: cached aggregate
	cached, err := service.summaryCache.Get(context, userID)
	if err == nil {
		return cached, nil
	}
	if !apperr.IsNotFound(err) {
		// Degrade to the database on cache trouble
		service.logger.WarnContext(context, "summary_cache_read_failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	summary, err := service.itemRepository.StatusSummaryByOwner(context, userID)
	if err != nil {
		return nil, fmt.Errorf("item_service_summary_failed: %w", err)
	}

	// Best-effort write-back
	if err := service.summaryCache.Set(context, userID, summary, constants.ItemSummaryCacheTTL); err != nil {
		service.logger.WarnContext(context, "summary_cache_write_failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	return summary, nil
}

// # Mutations

// CreateItemInput holds the data required to add a new item.
type CreateItemInput struct {
	Name         string
	Stock        int
	Location     string
	Condition    string
	ReminderDate string
	Description  string

	// ImageBytes holds the uploaded item photo. Mandatory at creation.
	ImageBytes    []byte
	ImageFilename string
}

/*
Create persists a new item for the principal.

Description: Saves the uploaded image through the blob store, stores its URL
on the row, and invalidates the principal's cached summary.

Parameters:
  - context: context.Context
  - userID: int64
  - input: CreateItemInput

Returns:
  - *Item: Created entity with its generated ID
  - error: Storage or blob failures
*/
func (service *Service) Create(context context.Context, userID int64, input CreateItemInput) (*Item, error) {
	imageURL, err := service.blobStore.Save(context, input.ImageFilename, input.ImageBytes)
	if err != nil {
		return nil, fmt.Errorf("item_service_image_save_failed: %w", err)
	}

	item := &Item{
		UserID:       userID,
		Name:         input.Name,
		Stock:        input.Stock,
		Location:     input.Location,
		Condition:    input.Condition,
		ReminderDate: input.ReminderDate,
		ImagePath:    imageURL,
		Description:  input.Description,
		Status:       StatusAvailable,
	}

	if err := service.itemRepository.Create(context, item); err != nil {
		return nil, fmt.Errorf("item_service_create_failed: %w", err)
	}

	service.invalidateSummary(context, userID)

	return item, nil
}

// UpdateItemInput holds the full replacement state for an item edit.
type UpdateItemInput struct {
	Name         string
	Stock        int
	Location     string
	Condition    string
	ReminderDate string
	Description  string

	// Status is optional; an empty value keeps the stored status.
	Status string

	// ImageBytes is optional on edit; when absent the stored image URL is kept.
	ImageBytes    []byte
	ImageFilename string
}

/*
Update overwrites an owned item with the submitted state.

Description: Item edits are full-row overwrites, not sparse patches. The one
exception is the image: an edit without a re-uploaded file keeps the stored
URL instead of clearing it.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64
  - input: UpdateItemInput

Returns:
  - *Item: The updated entity
  - error: apperr.NotFound (missing or not owned), blob, or storage failures
*/
func (service *Service) Update(context context.Context, userID, itemID int64, input UpdateItemInput) (*Item, error) {

	// Ownership gate and source of the carried-over fields
	existing, err := service.itemRepository.FindByIDAndOwner(context, itemID, userID)
	if err != nil {
		return nil, err
	}

	imageURL := existing.ImagePath
	if input.ImageBytes != nil {
		imageURL, err = service.blobStore.Save(context, input.ImageFilename, input.ImageBytes)
		if err != nil {
			return nil, fmt.Errorf("item_service_image_save_failed: %w", err)
		}
	}

	status := input.Status
	if status == "" {
		status = existing.Status
	}

	item := &Item{
		ID:           itemID,
		UserID:       userID,
		Name:         input.Name,
		Stock:        input.Stock,
		Location:     input.Location,
		Condition:    input.Condition,
		ReminderDate: input.ReminderDate,
		ImagePath:    imageURL,
		Description:  input.Description,
		Status:       status,
		CreatedAt:    existing.CreatedAt,
	}

	if err := service.itemRepository.Update(context, item); err != nil {
		return nil, err
	}

	service.invalidateSummary(context, userID)

	return item, nil
}

/*
Delete removes an owned item.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64

Returns:
  - error: apperr.NotFound (missing or not owned) or storage failures
*/
func (service *Service) Delete(context context.Context, userID, itemID int64) error {
	if err := service.itemRepository.DeleteByIDAndOwner(context, itemID, userID); err != nil {
		return err
	}

	service.invalidateSummary(context, userID)

	service.logger.Info("item_deleted",
		slog.Int64("user_id", userID), slog.Int64("item_id", itemID))

	return nil
}

// invalidateSummary drops the principal's cached aggregate after a mutation.
// Failures are logged and swallowed; the TTL bounds staleness regardless.
func (service *Service) invalidateSummary(context context.Context, userID int64) {
	if err := service.summaryCache.Invalidate(context, userID); err != nil {
		service.logger.WarnContext(context, "summary_cache_invalidate_failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
}
