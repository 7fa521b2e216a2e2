package aicard

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/pkg/store"
	"context"
)

type (
	AiCardService interface {
		GetAiCards(ctx context.Context, limit int) ([]map[string]any, error)
		GetAiCardByID(ctx context.Context, id string) (map[string]any, error)
		CreateAiCard(ctx context.Context, body map[string]any) (map[string]any, error)
		UpdateAiCard(ctx context.Context, id string, body map[string]any) (map[string]any, error)
		DeleteAiCard(ctx context.Context, id string) error
	}

	aiCardService struct {
		aiCardRepository AiCardRepository
	}
)

func NewAiCardService(aiCardRepository AiCardRepository) AiCardService {
	return &aiCardService{aiCardRepository: aiCardRepository}
}

func (s *aiCardService) GetAiCards(ctx context.Context, limit int) ([]map[string]any, error) {
	docs, err := s.aiCardRepository.GetAiCards(ctx, limit)
	if err != nil {
		return nil, err
	}

	cards := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		cards = append(cards, ShapeAiCard(doc.ID, doc.Data))
	}
	return cards, nil
}

func (s *aiCardService) GetAiCardByID(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.aiCardRepository.GetAiCardByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrAiCardNotFound
		}
		return nil, err
	}
	return ShapeAiCard(doc.ID, doc.Data), nil
}

func (s *aiCardService) CreateAiCard(ctx context.Context, body map[string]any) (map[string]any, error) {
	data := SanitizeAiCard(body)
	id, err := s.aiCardRepository.CreateAiCard(ctx, data)
	if err != nil {
		return nil, err
	}
	return ShapeAiCard(id, data), nil
}

// UpdateAiCard merges the sanitized fields onto the card. The stored
// createdAt is preserved verbatim; a fresh server timestamp is substituted
// only when the document never carried one.
func (s *aiCardService) UpdateAiCard(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	doc, err := s.aiCardRepository.GetAiCardByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrAiCardNotFound
		}
		return nil, err
	}

	data := SanitizeAiCard(body)
	if doc.Data["createdAt"] == nil {
		err = s.aiCardRepository.MergeAiCardWithCreatedAt(ctx, id, data)
	} else {
		err = s.aiCardRepository.MergeAiCard(ctx, id, data)
	}
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(doc.Data)+len(data))
	for k, v := range doc.Data {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}
	return ShapeAiCard(id, merged), nil
}

func (s *aiCardService) DeleteAiCard(ctx context.Context, id string) error {
	return s.aiCardRepository.DeleteAiCard(ctx, id)
}
