package image

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/utils"
	"Wardrobe-Backend/internal/utils/storage"
	"Wardrobe-Backend/pkg/store"
	"context"
	"fmt"
	"mime/multipart"
	"strings"
)

type (
	ImageService interface {
		GetImages(ctx context.Context, query domain.ImageQuery) ([]map[string]any, error)
		GetImageByID(ctx context.Context, id string) (map[string]any, error)
		CreateImage(ctx context.Context, body map[string]any) (string, error)
		UpdateImage(ctx context.Context, id string, body map[string]any) error
		DeleteImage(ctx context.Context, id string) error
		UploadImageFile(ctx context.Context, id string, file *multipart.FileHeader) (map[string]any, error)
	}

	imageService struct {
		imageRepository ImageRepository
		s3              storage.AwsS3
	}
)

func NewImageService(imageRepository ImageRepository, s3 storage.AwsS3) ImageService {
	return &imageService{
		imageRepository: imageRepository,
		s3:              s3,
	}
}

func (s *imageService) GetImages(ctx context.Context, query domain.ImageQuery) ([]map[string]any, error) {
	docs, err := s.imageRepository.GetImages(ctx, query)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query.Q))

	items := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		item := ShapeImage(doc.ID, doc.Data)
		if needle != "" && !matchesQuery(item, needle) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *imageService) GetImageByID(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.imageRepository.GetImageByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return ShapeImage(doc.ID, doc.Data), nil
}

func (s *imageService) CreateImage(ctx context.Context, body map[string]any) (string, error) {
	return s.imageRepository.CreateImage(ctx, SanitizeImage(body))
}

func (s *imageService) UpdateImage(ctx context.Context, id string, body map[string]any) error {
	return s.imageRepository.MergeImage(ctx, id, SanitizeImage(body))
}

func (s *imageService) DeleteImage(ctx context.Context, id string) error {
	return s.imageRepository.DeleteImage(ctx, id)
}

// UploadImageFile stores the file on S3 and merges the resulting public URL
// onto the document; the thumbnail follows the image URL when unset.
func (s *imageService) UploadImageFile(ctx context.Context, id string, file *multipart.FileHeader) (map[string]any, error) {
	doc, err := s.imageRepository.GetImageByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(fmt.Sprintf("image-%s", id), file, "images", storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	url := s.s3.GetPublicLinkKey(objectKey)
	data := map[string]any{"imageUrl": url}
	if thumb, _ := utils.CoerceString(doc.Data["thumbnailUrl"]); thumb == "" {
		data["thumbnailUrl"] = url
	}

	if err := s.imageRepository.MergeImage(ctx, id, data); err != nil {
		return nil, err
	}
	return data, nil
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
