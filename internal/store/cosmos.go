package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/notinterrested/isitskiingyet/internal/config"
)

// Docs: https://learn.microsoft.com/azure/cosmos-db/nosql/sdk-go
const recentQuery = "SELECT TOP @limit c.id, c.created_at, c.forecast FROM c " +
	"WHERE c.pk = @pk ORDER BY c.created_at DESC"

// itemContainer is the part of *azcosmos.ContainerClient the store uses
type itemContainer interface {
	UpsertItem(ctx context.Context, partitionKey azcosmos.PartitionKey, item []byte, o *azcosmos.ItemOptions) (azcosmos.ItemResponse, error)
	NewQueryItemsPager(query string, partitionKey azcosmos.PartitionKey, o *azcosmos.QueryOptions) *runtime.Pager[azcosmos.QueryItemsResponse]
}

// CosmosStore persists records to an Azure Cosmos DB container
type CosmosStore struct {
	container    itemContainer
	partitionKey azcosmos.PartitionKey
	logger       *slog.Logger
}

// OpenCosmos connects with a key credential and creates the database and
// container when they do not exist yet.
func OpenCosmos(ctx context.Context, cfg config.CosmosConfig, logger *slog.Logger) (*CosmosStore, error) {
	cred, err := azcosmos.NewKeyCredential(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create key credential: %w", err)
	}

	client, err := azcosmos.NewClientWithKey(cfg.Endpoint, cred, &azcosmos.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			// failures surface to the caller as-is
			Retry:     policy.RetryOptions{MaxRetries: -1},
			Transport: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cosmos client: %w", err)
	}

	if _, err := client.CreateDatabase(ctx, azcosmos.DatabaseProperties{ID: cfg.Database}, nil); err != nil && !isConflict(err) {
		return nil, fmt.Errorf("failed to create database %s: %w", cfg.Database, err)
	}

	db, err := client.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database, err)
	}

	throughput := azcosmos.NewManualThroughputProperties(cfg.Throughput)
	props := azcosmos.ContainerProperties{
		ID: cfg.Container,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{PartitionKeyPath},
		},
	}
	if _, err := db.CreateContainer(ctx, props, &azcosmos.CreateContainerOptions{ThroughputProperties: &throughput}); err != nil && !isConflict(err) {
		return nil, fmt.Errorf("failed to create container %s: %w", cfg.Container, err)
	}

	container, err := db.NewContainer(cfg.Container)
	if err != nil {
		return nil, fmt.Errorf("failed to open container %s: %w", cfg.Container, err)
	}

	return newCosmosStore(container, logger), nil
}

func newCosmosStore(container itemContainer, logger *slog.Logger) *CosmosStore {
	return &CosmosStore{
		container:    container,
		partitionKey: azcosmos.NewPartitionKeyString(PartitionValue),
		logger:       logger.With("backend", "cosmos"),
	}
}

func (s *CosmosStore) Enabled() bool { return true }

func (s *CosmosStore) Backend() string { return BackendCosmos }

func (s *CosmosStore) Save(ctx context.Context, record ForecastRecord) (bool, error) {
	item, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("failed to encode record: %w", err)
	}

	if _, err := s.container.UpsertItem(ctx, s.partitionKey, item, nil); err != nil {
		s.logger.Error("failed to upsert record", "id", record.ID, "error", err)
		return false, fmt.Errorf("failed to upsert record %s: %w", record.ID, err)
	}

	s.logger.Debug("upserted record", "id", record.ID, "created_at", record.CreatedAt)
	return true, nil
}

// QueryRecent runs a single-partition TOP-N query; every record shares PartitionValue
func (s *CosmosStore) QueryRecent(ctx context.Context, limit int) (*History, error) {
	pager := s.container.NewQueryItemsPager(recentQuery, s.partitionKey, &azcosmos.QueryOptions{
		QueryParameters: []azcosmos.QueryParameter{
			{Name: "@limit", Value: limit},
			{Name: "@pk", Value: PartitionValue},
		},
	})

	var rows [][]byte
	for pager.More() && len(rows) < limit {
		page, err := pager.NextPage(ctx)
		if err != nil {
			s.logger.Error("failed to query records", "limit", limit, "error", err)
			return nil, fmt.Errorf("failed to query records: %w", err)
		}
		rows = append(rows, page.Items...)
	}

	return &History{Items: decodeHistoryRows(rows, limit, s.logger)}, nil
}

func (s *CosmosStore) Close() error { return nil }

// isConflict reports a 409 from Cosmos, returned by create calls when the resource exists
func isConflict(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusConflict
}
