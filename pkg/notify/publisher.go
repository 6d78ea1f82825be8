package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// APIGatewayNotifier pushes events to a user's WebSocket connections through
// the API Gateway Management API.
type APIGatewayNotifier struct {
	connections storage.ConnectionStore
	apiGwClient *apigatewaymanagementapi.Client
}

// NewAPIGatewayNotifier creates a notifier posting to the given API Gateway
// WebSocket endpoint.
func NewAPIGatewayNotifier(connections storage.ConnectionStore, apiEndpoint string) (*APIGatewayNotifier, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return &APIGatewayNotifier{
		connections: connections,
		apiGwClient: apiGwClient,
	}, nil
}

var _ Notifier = (*APIGatewayNotifier)(nil)

// Send posts the event to every live connection of the user. Stale
// connections are pruned as they are discovered.
func (n *APIGatewayNotifier) Send(ctx context.Context, userID string, event string, payload interface{}) error {
	connectionIDs, err := n.connections.GetUserConnections(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get connections for user %s: %w", userID, err)
	}

	data, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := n.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         data,
		})

		if err != nil {
			var goneErr *apigwtypes.GoneException
			if errors.As(err, &goneErr) {
				slog.Info("stale connection found, deleting", "connectionId", connectionID)
				if err := n.connections.RemoveConnection(ctx, connectionID); err != nil {
					slog.Error("failed to delete stale connection", "error", err)
				}
			} else {
				slog.Error("failed to post to connection", "connectionId", connectionID, "error", err)
			}
		}
	}

	return nil
}
