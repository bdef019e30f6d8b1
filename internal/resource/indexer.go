// File: internal/resource/indexer.go
package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	platformES "revert_connect_backend/internal/platform/elasticsearch"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// IndexName is the Elasticsearch index holding resource documents.
const IndexName = "resources"

// ErrSearchDisabled is returned when no Elasticsearch client is configured.
var ErrSearchDisabled = common.ErrServiceUnavailable.WithDetails("Resource search is not configured.")

var indexMapping = map[string]interface{}{
	"properties": map[string]interface{}{
		"id":               map[string]interface{}{"type": "keyword"},
		"title":            map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword", "ignore_above": 256}}},
		"description":      map[string]interface{}{"type": "text"},
		"category":         map[string]interface{}{"type": "keyword"},
		"resource_type":    map[string]interface{}{"type": "keyword"},
		"difficulty_level": map[string]interface{}{"type": "keyword"},
		"url":              map[string]interface{}{"type": "keyword", "index": false},
		"author":           map[string]interface{}{"type": "text"},
		"created_date":     map[string]interface{}{"type": "date"},
	},
}

// SyncStats summarizes a bulk rebuild.
type SyncStats struct {
	Batches int
	Synced  int
	Failed  int
}

// Indexer keeps the resource search index in step with the store.
type Indexer struct {
	client *platformES.ESClientWrapper
	repo   Repository
	logger *zap.Logger
}

// NewIndexer creates an Indexer. client may be nil, which disables indexing and search.
func NewIndexer(client *platformES.ESClientWrapper, repo Repository, logger *zap.Logger) *Indexer {
	return &Indexer{client: client, repo: repo, logger: logger.Named("ResourceIndexer")}
}

// Enabled reports whether an Elasticsearch client is configured.
func (i *Indexer) Enabled() bool {
	return i != nil && i.client != nil
}

// EnsureIndex creates the resources index when missing.
func (i *Indexer) EnsureIndex(ctx context.Context) error {
	if !i.Enabled() {
		return ErrSearchDisabled
	}
	return platformES.CreateIndexIfNotExists(ctx, i.client, IndexName, indexMapping, i.logger)
}

// Index writes one resource document.
func (i *Indexer) Index(ctx context.Context, r Resource) error {
	if !i.Enabled() {
		return ErrSearchDisabled
	}
	body, err := json.Marshal(ToDocument(r))
	if err != nil {
		return fmt.Errorf("marshal resource document: %w", err)
	}
	res, err := esapi.IndexRequest{
		Index:      IndexName,
		DocumentID: r.ID.String(),
		Body:       bytes.NewReader(body),
	}.Do(ctx, i.client.Client)
	if err != nil {
		return fmt.Errorf("index resource %s: %w", r.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index resource %s: %s: %s", r.ID, res.Status(), platformES.ErrorReason(res.Body))
	}
	return nil
}

// SyncAll re-indexes every stored resource in batches through the bulk API.
// refresh is passed through as the bulk refresh policy (true, false, wait_for).
func (i *Indexer) SyncAll(ctx context.Context, batchSize int, refresh string) (SyncStats, error) {
	var stats SyncStats
	if !i.Enabled() {
		return stats, ErrSearchDisabled
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if err := i.EnsureIndex(ctx); err != nil {
		return stats, err
	}
	i.logger.Info("Starting resource synchronization to Elasticsearch",
		zap.Int("batchSize", batchSize), zap.String("esRefreshPolicy", refresh))

	for offset := 0; ; {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		resources, err := i.repo.FindAllForSync(ctx, offset, batchSize)
		if err != nil {
			return stats, fmt.Errorf("failed to fetch batch %d: %w", stats.Batches+1, err)
		}
		if len(resources) == 0 {
			break
		}
		stats.Batches++

		synced, failed := i.bulkIndex(ctx, resources, refresh)
		stats.Synced += synced
		stats.Failed += failed
		i.logger.Info("Batch processed",
			zap.Int("batchNumber", stats.Batches),
			zap.Int("syncedInBatch", synced),
			zap.Int("failedInBatch", failed))

		offset += len(resources)
		if len(resources) < batchSize {
			break
		}
	}

	i.logger.Info("Resource synchronization finished",
		zap.Int("synced", stats.Synced), zap.Int("failed", stats.Failed))
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%d resources failed to sync", stats.Failed)
	}
	return stats, nil
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []struct {
		Index struct {
			ID     string                 `json:"_id"`
			Status int                    `json:"status"`
			Error  map[string]interface{} `json:"error,omitempty"`
		} `json:"index"`
	} `json:"items"`
}

func (i *Indexer) bulkIndex(ctx context.Context, resources []Resource, refresh string) (synced, failed int) {
	var body strings.Builder
	for _, r := range resources {
		doc, err := json.Marshal(ToDocument(r))
		if err != nil {
			i.logger.Error("Failed to convert resource to document", zap.String("resourceID", r.ID.String()), zap.Error(err))
			failed++
			continue
		}
		fmt.Fprintf(&body, `{"index":{"_index":%q,"_id":%q}}`+"\n", IndexName, r.ID.String())
		body.Write(doc)
		body.WriteString("\n")
	}
	sent := len(resources) - failed
	if sent == 0 {
		return 0, failed
	}

	res, err := esapi.BulkRequest{Body: strings.NewReader(body.String()), Refresh: refresh}.Do(ctx, i.client.Client)
	if err != nil {
		i.logger.Error("Failed to send bulk request to Elasticsearch", zap.Error(err))
		return 0, failed + sent
	}
	defer res.Body.Close()
	if res.IsError() {
		i.logger.Error("Elasticsearch bulk request returned an error",
			zap.String("status", res.Status()), zap.String("reason", platformES.ErrorReason(res.Body)))
		return 0, failed + sent
	}

	var parsed bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		i.logger.Error("Failed to parse Elasticsearch bulk response body", zap.Error(err))
		return 0, failed + sent
	}
	for _, item := range parsed.Items {
		if item.Index.Error != nil {
			i.logger.Error("Failed to index document in bulk batch",
				zap.String("resourceID", item.Index.ID),
				zap.Any("error", item.Index.Error),
				zap.Int("status", item.Index.Status))
			failed++
			continue
		}
		synced++
	}
	return synced, failed
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a full-text query over title, description and author.
// Category and type narrow the hits the same way the filter bar does.
func (i *Indexer) Search(ctx context.Context, q SearchQuery) ([]Resource, error) {
	if !i.Enabled() {
		return nil, ErrSearchDisabled
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	var filters []interface{}
	if directory.Active(q.Category) {
		filters = append(filters, map[string]interface{}{"term": map[string]interface{}{"category": q.Category}})
	}
	if directory.Active(q.Type) {
		filters = append(filters, map[string]interface{}{"term": map[string]interface{}{"resource_type": q.Type}})
	}
	query := map[string]interface{}{
		"size": q.Limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":     q.Text,
						"fields":    []string{"title^3", "description", "author"},
						"fuzziness": "AUTO",
					},
				},
				"filter": filters,
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal search query: %w", err)
	}

	res, err := esapi.SearchRequest{Index: []string{IndexName}, Body: bytes.NewReader(body)}.Do(ctx, i.client.Client)
	if err != nil {
		return nil, fmt.Errorf("search resources: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search resources: %s: %s", res.Status(), platformES.ErrorReason(res.Body))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	out := make([]Resource, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		out = append(out, FromDocument(hit.Source))
	}
	return out, nil
}
