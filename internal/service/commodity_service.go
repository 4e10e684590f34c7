package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emrebkr/vendcare/internal/listview"
	"github.com/emrebkr/vendcare/internal/model"
)

type CommodityStore interface {
	Create(ctx context.Context, commodity *model.Commodity) error
	List(ctx context.Context) ([]model.Commodity, error)
	Get(ctx context.Context, id string) (*model.Commodity, error)
	Update(ctx context.Context, commodity *model.Commodity) error
	Delete(ctx context.Context, id string) error
}

type CommodityService struct {
	store CommodityStore
}

func NewCommodityService(store CommodityStore) *CommodityService {
	return &CommodityService{store: store}
}

type CommodityInput struct {
	CommodityCode string
	ProductName   string
	UnitPrice     string
	CostPrice     string
	Supplier      string
	Specs         string
	Type          string
	Description   string
}

func (s *CommodityService) Create(ctx context.Context, input CommodityInput, principal model.Principal) (*model.Commodity, error) {
	if !principal.Can(model.CapManageCommodities) {
		return nil, ErrPermissionDenied
	}
	commodity, err := buildCommodity(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, commodity); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, fmt.Errorf("%w: commodity code %s", ErrConflict, commodity.CommodityCode)
		}
		return nil, err
	}
	return commodity, nil
}

type CommodityListResult struct {
	Items      []model.Commodity
	TotalCount int
}

// List runs the catalog through the same view engine as the report table.
// Any authenticated user may read the catalog; fridge report forms need it.
func (s *CommodityService) List(ctx context.Context, query listview.CommodityQuery) (*CommodityListResult, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if query.PageSize <= 0 {
		query.PageSize = len(items)
		if query.PageSize == 0 {
			query.PageSize = 1
		}
	}
	page, total := listview.ApplyCommodities(items, query)
	return &CommodityListResult{Items: page, TotalCount: total}, nil
}

func (s *CommodityService) Get(ctx context.Context, id string) (*model.Commodity, error) {
	commodity, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return commodity, nil
}

func (s *CommodityService) Update(ctx context.Context, id string, input CommodityInput, principal model.Principal) (*model.Commodity, error) {
	if !principal.Can(model.CapManageCommodities) {
		return nil, ErrPermissionDenied
	}
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated, err := buildCommodity(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, updated); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, fmt.Errorf("%w: commodity code %s", ErrConflict, updated.CommodityCode)
		}
		return nil, err
	}
	return updated, nil
}

func (s *CommodityService) Delete(ctx context.Context, id string, principal model.Principal) error {
	if !principal.Can(model.CapManageCommodities) {
		return ErrPermissionDenied
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type ImportItemResult struct {
	CommodityCode string `json:"commodityCode"`
	Imported      bool   `json:"imported"`
	Error         string `json:"error,omitempty"`
}

// Import loads catalog entries best-effort: each item succeeds or fails on
// its own and a partial import is an accepted outcome. There is no
// transactional guarantee across items.
func (s *CommodityService) Import(ctx context.Context, items []CommodityInput, principal model.Principal) ([]ImportItemResult, error) {
	if !principal.Can(model.CapManageCommodities) {
		return nil, ErrPermissionDenied
	}

	results := make([]ImportItemResult, 0, len(items))
	for _, item := range items {
		result := ImportItemResult{CommodityCode: strings.TrimSpace(item.CommodityCode)}

		commodity, err := buildCommodity(item)
		if err == nil {
			err = s.store.Create(ctx, commodity)
			if err == gorm.ErrDuplicatedKey {
				err = fmt.Errorf("%w: commodity code %s", ErrConflict, commodity.CommodityCode)
			}
		}
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Imported = true
		}
		results = append(results, result)
	}
	return results, nil
}

func buildCommodity(input CommodityInput) (*model.Commodity, error) {
	code := strings.TrimSpace(input.CommodityCode)
	name := strings.TrimSpace(input.ProductName)
	if code == "" {
		return nil, fmt.Errorf("%w: commodity code is required", ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	return &model.Commodity{
		ID:            uuid.NewString(),
		CommodityCode: code,
		ProductName:   name,
		UnitPrice:     strings.TrimSpace(input.UnitPrice),
		CostPrice:     strings.TrimSpace(input.CostPrice),
		Supplier:      strings.TrimSpace(input.Supplier),
		Specs:         strings.TrimSpace(input.Specs),
		Type:          strings.TrimSpace(input.Type),
		Description:   strings.TrimSpace(input.Description),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
