// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/persistence/model"
)

// materialRepository implements the adapter.MaterialRepository interface.
type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository instance.
func NewMaterialRepository(db *gorm.DB) adapter.MaterialRepository {
	return &materialRepository{
		db: db,
	}
}

// Create creates a new material in the database and assigns its id.
func (r *materialRepository) Create(ctx context.Context, material *entity.Material) error {
	materialModel := model.MaterialFromEntity(material)
	result := r.db.WithContext(ctx).Create(materialModel)
	if result.Error != nil {
		return result.Error
	}
	material.ID = materialModel.ID
	return nil
}

// FindByUser retrieves all materials for a user, ordered by name.
func (r *materialRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Material, error) {
	var materialModels []model.MaterialModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&materialModels)
	if result.Error != nil {
		return nil, result.Error
	}

	materials := make([]*entity.Material, len(materialModels))
	for i, mm := range materialModels {
		materials[i] = mm.ToEntity()
	}
	return materials, nil
}

// FindByIDAndUser retrieves a material owned by the given user.
func (r *materialRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Material, error) {
	var materialModel model.MaterialModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&materialModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewMaterialError(
				domainerror.ErrCodeMaterialNotFound,
				"material not found",
				domainerror.ErrMaterialNotFound,
			)
		}
		return nil, result.Error
	}
	return materialModel.ToEntity(), nil
}

// Delete removes a material owned by the given user.
func (r *materialRepository) Delete(ctx context.Context, id, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MaterialModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateWithMaterials stores the product and its usage rows atomically.
func (r *productRepository) CreateWithMaterials(ctx context.Context, product *entity.Product, materials []*entity.ProductMaterial) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productModel := model.ProductFromEntity(product)
		if err := tx.Create(productModel).Error; err != nil {
			return err
		}
		product.ID = productModel.ID

		for _, pm := range materials {
			pm.ProductID = productModel.ID
			usageModel := model.ProductMaterialFromEntity(pm)
			if err := tx.Create(usageModel).Error; err != nil {
				return err
			}
			pm.ID = usageModel.ID
		}
		return nil
	})
}
