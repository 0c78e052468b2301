// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import "context"

// ResetReloadClient clears the server's caches and reloads its
// configuration.
type ResetReloadClient struct {
	conn *connection
}

// Reset drops all cached store connections and resources.
func (r *ResetReloadClient) Reset(ctx context.Context) error {
	return r.conn.postTo(ctx, "reset", nil, nil, nil, nil)
}

// Reload rereads the catalog and configuration from the data
// directory.  This implies a reset.
func (r *ResetReloadClient) Reload(ctx context.Context) error {
	return r.conn.postTo(ctx, "reload", nil, nil, nil, nil)
}
