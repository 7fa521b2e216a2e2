package ingest

import (
	"Wardrobe-Backend/domain"
	"context"
)

type (
	IngestService interface {
		WriteDocument(ctx context.Context, req domain.IngestRequest) (string, error)
	}

	ingestService struct {
		ingestRepository IngestRepository
	}
)

func NewIngestService(ingestRepository IngestRepository) IngestService {
	return &ingestService{ingestRepository: ingestRepository}
}

func (s *ingestService) WriteDocument(ctx context.Context, req domain.IngestRequest) (string, error) {
	return s.ingestRepository.WriteDocument(ctx, req.Collection, req.DocID, req.Data)
}
