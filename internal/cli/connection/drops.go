package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/yndnr/kappa-go/internal/core/domain"
)

// ListDrops fetches every drop.
func (c *HTTPClient) ListDrops(ctx context.Context) ([]domain.Drop, error) {
	resp, err := c.Get(ctx, c.endpoints.List, url.Values{"all_drops": {"true"}})
	if err != nil {
		return nil, fmt.Errorf("list drops: %w", err)
	}

	var drops []domain.Drop
	if err := ParseResponse(resp, &drops, domain.DropKeys...); err != nil {
		return nil, fmt.Errorf("list drops: %w", err)
	}
	return drops, nil
}

// GetDrop fetches the drop called name.
func (c *HTTPClient) GetDrop(ctx context.Context, name string) (domain.Drop, error) {
	resp, err := c.Get(ctx, c.endpoints.List, url.Values{"drop": {name}})
	if err != nil {
		return domain.Drop{}, fmt.Errorf("get drop: %w", err)
	}

	var drop domain.Drop
	if err := ParseResponse(resp, &drop, domain.DropKeys...); err != nil {
		return domain.Drop{}, fmt.Errorf("get drop: %w", err)
	}
	return drop, nil
}

// CreateDrop asks the service to create a drop.
func (c *HTTPClient) CreateDrop(ctx context.Context, req domain.DropCreateRequest) (domain.OperationResult, error) {
	var result domain.OperationResult
	if err := c.postOperation(ctx, c.endpoints.Create, req, &result); err != nil {
		return domain.OperationResult{}, fmt.Errorf("create drop: %w", err)
	}
	return result, nil
}

// EditDrop asks the service to change one field of a drop.
func (c *HTTPClient) EditDrop(ctx context.Context, req domain.DropEditRequest) (domain.EditResult, error) {
	var reply editReply
	if err := c.postOperation(ctx, c.endpoints.Edit, req, &reply); err != nil {
		return domain.EditResult{}, fmt.Errorf("edit drop: %w", err)
	}
	return domain.EditResult{Success: reply.Success, Message: updatedDrop(reply.Message)}, nil
}

// editReply leaves message undecoded. Services answer with the updated
// drop, a status string or nothing at all.
type editReply struct {
	Success bool            `json:"success"`
	Message json.RawMessage `json:"message"`
}

// updatedDrop returns the drop in an edit message, or nil when the message
// is anything but a complete drop.
func updatedDrop(raw json.RawMessage) *domain.Drop {
	if len(raw) == 0 || checkKeys(raw, domain.DropKeys) != nil {
		return nil
	}

	var drop domain.Drop
	if err := json.Unmarshal(raw, &drop); err != nil {
		return nil
	}
	return &drop
}

// DeleteDrop asks the service to remove the drop called name.
func (c *HTTPClient) DeleteDrop(ctx context.Context, name string) (domain.OperationResult, error) {
	var result domain.OperationResult
	if err := c.postOperation(ctx, c.endpoints.Delete, domain.DeleteRequest{Name: name}, &result); err != nil {
		return domain.OperationResult{}, fmt.Errorf("delete drop: %w", err)
	}
	return result, nil
}

func (c *HTTPClient) postOperation(ctx context.Context, endpoint string, body, result any) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	return ParseResponse(resp, result, "success")
}
