// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gudangku/gudangku/internal/inventory/item"
	"github.com/gudangku/gudangku/internal/platform/apperr"
)

// duplicateMessage is the single message for both the pre-check rejection and
// the constraint-violation backstop, so the client cannot tell which path
// caught the duplicate.
const duplicateMessage = "Item is already in your favorites"

// # Service Layer

// Service orchestrates business logic for favorites.
type Service struct {
	favoriteRepository FavoriteRepository
	logger             *slog.Logger
}

// NewService constructs a new favorite [Service].
func NewService(favoriteRepo FavoriteRepository, logger *slog.Logger) *Service {
	return &Service{
		favoriteRepository: favoriteRepo,
		logger:             logger,
	}
}

/*
Add marks an item as a favorite of the principal.

Description: Check-then-insert. The existence check catches the common case;
the composite primary key catches the race where two concurrent adds both
pass the check. Both paths report the same invalid-state rejection.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64

Returns:
  - error: Invalid-state on duplicates, or storage failures
*/
func (service *Service) Add(context context.Context, userID, itemID int64) error {
	exists, err := service.favoriteRepository.Exists(context, userID, itemID)
	if err != nil {
		return fmt.Errorf("favorite_service_exists_failed: %w", err)
	}
	if exists {
		return apperr.InvalidState(duplicateMessage)
	}

	err = service.favoriteRepository.Create(context, &Favorite{
		UserID: userID,
		ItemID: itemID,
	})
	if err != nil {
		// Race backstop: a concurrent insert won; report it exactly like the pre-check.
		if apperr.IsConflict(err) {
			return apperr.InvalidState(duplicateMessage)
		}
		return fmt.Errorf("favorite_service_create_failed: %w", err)
	}

	service.logger.Info("favorite_added",
		slog.Int64("user_id", userID), slog.Int64("item_id", itemID))

	return nil
}

/*
Remove unmarks an item as a favorite of the principal.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64

Returns:
  - error: apperr.NotFound when the pair was not favorited, or storage failures
*/
func (service *Service) Remove(context context.Context, userID, itemID int64) error {
	if err := service.favoriteRepository.Delete(context, userID, itemID); err != nil {
		return err
	}

	service.logger.Info("favorite_removed",
		slog.Int64("user_id", userID), slog.Int64("item_id", itemID))

	return nil
}

/*
List returns the full item rows the principal has favorited.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []item.Item: Favorited items
  - error: apperr.NotFound when there are none, or retrieval failures
*/
func (service *Service) List(context context.Context, userID int64) ([]item.Item, error) {
	return service.favoriteRepository.ListItems(context, userID)
}
