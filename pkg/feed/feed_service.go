package feed

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/pkg/store"
	"context"
	"strings"
)

type (
	FeedService interface {
		GetFeedItems(ctx context.Context, query domain.FeedQuery) ([]map[string]any, error)
		GetFeedItemByID(ctx context.Context, id string) (map[string]any, error)
		CreateFeedItem(ctx context.Context, body map[string]any) (string, error)
		UpdateFeedItem(ctx context.Context, id string, body map[string]any) error
		DeleteFeedItem(ctx context.Context, id string) error
	}

	feedService struct {
		feedRepository FeedRepository
	}
)

func NewFeedService(feedRepository FeedRepository) FeedService {
	return &feedService{feedRepository: feedRepository}
}

func (s *feedService) GetFeedItems(ctx context.Context, query domain.FeedQuery) ([]map[string]any, error) {
	docs, err := s.feedRepository.GetFeedItems(ctx, query)
	if err != nil {
		return nil, err
	}

	// Firestore has no contains-query, so free-text search filters the
	// fetched page in memory.
	needle := strings.ToLower(strings.TrimSpace(query.Q))

	items := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		item := ShapeFeedItem(doc.ID, doc.Data)
		if needle != "" && !matchesQuery(item, needle) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *feedService) GetFeedItemByID(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.feedRepository.GetFeedItemByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrFeedItemNotFound
		}
		return nil, err
	}
	return ShapeFeedItem(doc.ID, doc.Data), nil
}

func (s *feedService) CreateFeedItem(ctx context.Context, body map[string]any) (string, error) {
	data := SanitizeFeedItem(body)
	if _, ok := data["content"]; !ok {
		data["content"] = map[string]any{"products": []map[string]any{}}
	}
	return s.feedRepository.CreateFeedItem(ctx, data)
}

func (s *feedService) UpdateFeedItem(ctx context.Context, id string, body map[string]any) error {
	return s.feedRepository.MergeFeedItem(ctx, id, SanitizeFeedItem(body))
}

func (s *feedService) DeleteFeedItem(ctx context.Context, id string) error {
	return s.feedRepository.DeleteFeedItem(ctx, id)
}

func matchesQuery(item map[string]any, needle string) bool {
	for _, k := range []string{"title", "description", "category"} {
		if s, _ := item[k].(string); strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	if tags, _ := item["tags"].([]string); tags != nil {
		for _, t := range tags {
			if strings.Contains(strings.ToLower(t), needle) {
				return true
			}
		}
	}
	return false
}
