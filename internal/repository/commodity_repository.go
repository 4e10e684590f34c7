package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/emrebkr/vendcare/internal/model"
)

type CommodityRepository struct {
	db *gorm.DB
}

func NewCommodityRepository(db *gorm.DB) *CommodityRepository {
	return &CommodityRepository{db: db}
}

const commodityColumns = `
	id, commodity_code, product_name, unit_price, cost_price, supplier,
	specs, type, description, created_at, updated_at
`

func (r *CommodityRepository) Create(ctx context.Context, commodity *model.Commodity) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO commodities (`+commodityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		commodity.ID, commodity.CommodityCode, commodity.ProductName,
		commodity.UnitPrice, commodity.CostPrice, commodity.Supplier,
		commodity.Specs, commodity.Type, commodity.Description,
		commodity.CreatedAt, commodity.UpdatedAt,
	).Error
	if err != nil && isDuplicateKey(err) {
		return gorm.ErrDuplicatedKey
	}
	return err
}

func (r *CommodityRepository) List(ctx context.Context) ([]model.Commodity, error) {
	var items []model.Commodity
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + commodityColumns + `
		FROM commodities
		ORDER BY product_name ASC
	`).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommodityRepository) Get(ctx context.Context, id string) (*model.Commodity, error) {
	var item model.Commodity
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+commodityColumns+`
		FROM commodities
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&item).Error; err != nil {
		return nil, err
	}
	if item.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *CommodityRepository) Update(ctx context.Context, commodity *model.Commodity) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE commodities
		SET commodity_code = ?, product_name = ?, unit_price = ?, cost_price = ?,
			supplier = ?, specs = ?, type = ?, description = ?, updated_at = ?
		WHERE id = ?
	`,
		commodity.CommodityCode, commodity.ProductName, commodity.UnitPrice,
		commodity.CostPrice, commodity.Supplier, commodity.Specs,
		commodity.Type, commodity.Description, commodity.UpdatedAt,
		commodity.ID,
	)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return gorm.ErrDuplicatedKey
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CommodityRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM commodities WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isDuplicateKey(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}
