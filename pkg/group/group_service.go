package group

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/utils"
	"Wardrobe-Backend/pkg/store"
	"context"
	"strconv"
	"time"
)

type (
	GroupService interface {
		GetGroups(ctx context.Context) ([]map[string]any, error)
		AddItem(ctx context.Context, groupID string, body map[string]any) (map[string]any, error)
		UpdateItem(ctx context.Context, groupID string, itemID string, body map[string]any) (map[string]any, error)
		DeleteItem(ctx context.Context, groupID string, itemID string) error
	}

	groupService struct {
		groupRepository GroupRepository
	}
)

func NewGroupService(groupRepository GroupRepository) GroupService {
	return &groupService{groupRepository: groupRepository}
}

// GetGroups returns every group document verbatim, identifier included.
func (s *groupService) GetGroups(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.groupRepository.GetGroups(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		g := map[string]any{"id": doc.ID}
		for k, v := range doc.Data {
			g[k] = v
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// AddItem appends the payload to the group's items list, generating a
// time-based identifier when the caller supplied none. Uniqueness of the
// generated token is best-effort, not a cryptographic guarantee.
func (s *groupService) AddItem(ctx context.Context, groupID string, body map[string]any) (map[string]any, error) {
	item := make(map[string]any, len(body)+1)
	for k, v := range body {
		item[k] = v
	}
	if id, ok := utils.CoerceString(item["id"]); !ok || id == "" {
		item["id"] = strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	if err := s.groupRepository.AppendItem(ctx, groupID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem shallow-merges the payload onto the matching item and writes
// the whole list back. This read-modify-write path is last-writer-wins
// under concurrent updates to the same group; only the append path is
// race-free.
func (s *groupService) UpdateItem(ctx context.Context, groupID string, itemID string, body map[string]any) (map[string]any, error) {
	doc, err := s.groupRepository.GetGroupByID(ctx, groupID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	items := itemList(doc.Data["items"])
	idx := indexOfItem(items, itemID)
	if idx < 0 {
		return nil, domain.ErrGroupItemNotFound
	}

	existing, _ := items[idx].(map[string]any)
	merged := make(map[string]any, len(existing)+len(body))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range body {
		merged[k] = v
	}
	items[idx] = merged

	if err := s.groupRepository.SetItems(ctx, groupID, items); err != nil {
		return nil, err
	}
	return merged, nil
}

// DeleteItem filters the item out and writes the list back; deleting an
// identifier that is already gone succeeds. Same race caveat as UpdateItem.
func (s *groupService) DeleteItem(ctx context.Context, groupID string, itemID string) error {
	doc, err := s.groupRepository.GetGroupByID(ctx, groupID)
	if err != nil {
		if store.IsNotFound(err) {
			return domain.ErrGroupNotFound
		}
		return err
	}

	items := itemList(doc.Data["items"])
	kept := make([]any, 0, len(items))
	for _, e := range items {
		if m, ok := e.(map[string]any); ok {
			if id, _ := utils.CoerceString(m["id"]); id == itemID {
				continue
			}
		}
		kept = append(kept, e)
	}

	return s.groupRepository.SetItems(ctx, groupID, kept)
}

func itemList(v any) []any {
	switch items := v.(type) {
	case []any:
		return items
	case []map[string]any:
		out := make([]any, len(items))
		for i, m := range items {
			out[i] = m
		}
		return out
	default:
		return nil
	}
}

func indexOfItem(items []any, itemID string) int {
	for i, e := range items {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if id, _ := utils.CoerceString(m["id"]); id == itemID {
			return i
		}
	}
	return -1
}
