package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. La creación es transaccional:
// producto + registro de inventario inicial deben persistirse ambos o ninguno.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	cache    inventory.AlertsCache
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, cache inventory.AlertsCache) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, cache: cache}
}

// CreateWithInventory crea un producto y su inventario inicial en una sola
// transacción. La verificación de SKU se hace dentro de la tx; ante una
// carrera con el mismo SKU, el constraint único de la BD rechaza al segundo
// escritor y el error se mapea a ErrDuplicate (exactamente un 201, el resto 409).
func (uc *ProductUseCase) CreateWithInventory(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	// Campos requeridos: el contrato trata el cero como ausente (price = 0 es 400).
	if in.Name == "" || in.SKU == "" || in.Price.IsZero() || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		existing, err := productRepo.GetBySKU(in.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return invRepo.Upsert(&entity.InventoryRecord{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.InitialQuantity,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && in.CompanyID != "" {
		uc.cache.Invalidate(ctx, in.CompanyID)
	}

	return &dto.CreateProductResponse{
		Message:   "Product created successfully",
		ProductID: product.ID,
	}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (no permite tocar SKU ni stock).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
