// File: internal/platform/elasticsearch/index.go
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// CreateIndexIfNotExists creates index with the given mapping unless it already exists.
func CreateIndexIfNotExists(ctx context.Context, client *ESClientWrapper, index string, mapping map[string]interface{}, logger *zap.Logger) error {
	log := logger.Named("elasticsearch_index_setup").With(zap.String("index_name", index))

	existsRes, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error checking if index exists", zap.Error(err))
		return fmt.Errorf("error checking if index %s exists: %w", index, err)
	}
	existsRes.Body.Close()

	switch existsRes.StatusCode {
	case http.StatusOK:
		log.Debug("Index already exists")
		return nil
	case http.StatusNotFound:
	default:
		log.Error("Unexpected status checking index", zap.String("status", existsRes.Status()))
		return fmt.Errorf("error checking if index %s exists: status %s", index, existsRes.Status())
	}

	body, err := json.Marshal(map[string]interface{}{"mappings": mapping})
	if err != nil {
		return fmt.Errorf("error marshalling %s mapping to JSON: %w", index, err)
	}

	createRes, err := esapi.IndicesCreateRequest{Index: index, Body: bytes.NewReader(body)}.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error creating index", zap.Error(err))
		return fmt.Errorf("error creating index %s: %w", index, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		reason := ErrorReason(createRes.Body)
		log.Error("Failed to create index", zap.String("status", createRes.Status()), zap.String("reason", reason))
		return fmt.Errorf("failed to create index %s: status %s: %s", index, createRes.Status(), reason)
	}

	log.Info("Index created successfully")
	return nil
}
