package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
)

type Repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

var _ repository.OpenSearchRepository = (*Repository)(nil)

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) *Repository {
	return &Repository{
		client: client,
		config: config,
	}
}

func indexTime(entry *domain.ActionLogEntry) time.Time {
	if entry.Timestamp.IsZero() {
		return time.Now()
	}
	return entry.Timestamp
}

func (r *Repository) Index(ctx context.Context, entry *domain.ActionLogEntry) error {
	t := indexTime(entry)
	if err := r.CreateIndex(ctx, t); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetIndexName(t),
		DocumentID: entry.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *Repository) BulkIndex(ctx context.Context, entries []domain.ActionLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	groups := make(map[string][]domain.ActionLogEntry)
	months := make(map[string]time.Time)
	for _, entry := range entries {
		t := indexTime(&entry)
		name := r.config.GetIndexName(t)
		groups[name] = append(groups[name], entry)
		months[name] = t
	}

	for name, group := range groups {
		if err := r.CreateIndex(ctx, months[name]); err != nil {
			return fmt.Errorf("failed to ensure index %s exists: %w", name, err)
		}
		if err := r.bulkIndexGroup(ctx, name, group); err != nil {
			return fmt.Errorf("failed to bulk index group for index %s: %w", name, err)
		}
	}

	return nil
}

func (r *Repository) bulkIndexGroup(ctx context.Context, indexName string, entries []domain.ActionLogEntry) error {
	var body strings.Builder
	for _, entry := range entries {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    entry.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		body.Write(actionLine)
		body.WriteString("\n")

		docLine, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		body.Write(docLine)
		body.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(body.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *Repository) Search(ctx context.Context, filter domain.ActionLogFilter) ([]domain.ActionLogEntry, error) {
	queryJSON, err := json.Marshal(buildSearchQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexPattern()},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.ActionLogEntry{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.ActionLogEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	entries := make([]domain.ActionLogEntry, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		entries = append(entries, hit.Source)
	}

	return entries, nil
}

func buildSearchQuery(filter domain.ActionLogFilter) map[string]any {
	must := make([]map[string]any, 0)

	terms := map[string]string{
		"brand_id":    filter.BrandID,
		"actor_email": filter.ActorEmail,
		"action_type": string(filter.ActionType),
	}
	for field, value := range terms {
		if value != "" {
			must = append(must, map[string]any{"term": map[string]any{field: value}})
		}
	}

	if !filter.Since.IsZero() {
		must = append(must, map[string]any{
			"range": map[string]any{
				"timestamp": map[string]any{"gte": filter.Since},
			},
		})
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
		"sort": []map[string]any{
			{"timestamp": map[string]any{"order": "desc"}},
		},
	}
	if filter.Limit > 0 {
		query["size"] = filter.Limit
	}

	return query
}

const indexMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"actor_email": { "type": "keyword" },
			"action_type": { "type": "keyword" },
			"target_id": { "type": "keyword" },
			"brand_id": { "type": "keyword" },
			"details": { "type": "object", "dynamic": true },
			"timestamp": { "type": "date" }
		}
	},
	"settings": {
		"index": {
			"number_of_shards": 1,
			"number_of_replicas": 1,
			"refresh_interval": "1s"
		}
	}
}`

func (r *Repository) CreateIndex(ctx context.Context, t time.Time) error {
	indexName := r.config.GetIndexName(t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(indexMapping),
	}
	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	// A concurrent creator may have won the race.
	if res.IsError() && !strings.Contains(res.String(), "resource_already_exists_exception") {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
