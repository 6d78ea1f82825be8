package storage

import "context"

// ConnectionStore defines the interface for per-user WebSocket connection ids.
type ConnectionStore interface {
	AddConnection(ctx context.Context, userID, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetUserConnections(ctx context.Context, userID string) ([]string, error)
}
