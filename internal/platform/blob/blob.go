// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
Package blob handles storage of user-uploaded binary files.

Inventory items and user profiles both carry photos. This package owns the
mapping between an uploaded file and the public URL the API hands back to
clients.

Core Responsibilities:

  - Persistence: Writing upload bytes to a durable location.
  - Addressing: Producing stable, collision-free public URLs.
  - Abstraction: The [Store] interface lets services stay agnostic of the
    backing medium (local disk today, object storage later).
*/
package blob

import "context"

// Store persists uploaded files and returns their public URL.
type Store interface {

	// Save writes content under a name derived from originalName and returns
	// the public URL at which the file can be fetched.
	Save(ctx context.Context, originalName string, content []byte) (string, error)
}
