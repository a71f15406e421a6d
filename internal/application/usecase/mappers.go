package usecase

import (
	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/pkg/validators"
)

// paramsFor aplica sobre los parámetros configurados los que vengan en la petición.
func paramsFor(defaults costing.Params, in *dto.CostingParamsDTO) costing.Params {
	p := defaults
	if in == nil {
		return p
	}
	if in.HourlyRate != nil {
		p.HourlyRate = *in.HourlyRate
	}
	if in.WorkingHoursPerMonth != nil {
		p.WorkingHoursPerMonth = *in.WorkingHoursPerMonth
	}
	if in.TaxRate != nil {
		p.TaxRate = *in.TaxRate
	}
	if in.CardFeeRate != nil {
		p.CardFeeRate = *in.CardFeeRate
	}
	if in.FixedCosts != nil {
		entries := make([]entity.FixedCostEntry, 0, len(in.FixedCosts))
		for _, fc := range in.FixedCosts {
			entries = append(entries, fc)
		}
		p.FixedCosts = entries
	}
	return p
}

// Los nombres llegan de formularios del cliente y se muestran en reportes y alertas.
func toMaterial(in dto.MaterialDTO) entity.Material {
	return entity.Material{
		ID:          in.ID,
		Name:        validators.SanitizeString(in.Name),
		Unit:        in.Unit,
		Cost:        in.Cost,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Colors:      in.Colors,
	}
}

func toMaterials(in []dto.MaterialDTO) []entity.Material {
	out := make([]entity.Material, 0, len(in))
	for _, m := range in {
		out = append(out, toMaterial(m))
	}
	return out
}

func toProduct(in dto.ProductDTO) entity.Product {
	lines := make([]entity.ProductMaterial, 0, len(in.Materials))
	for _, l := range in.Materials {
		pm := entity.ProductMaterial{MaterialID: l.MaterialID, Quantity: l.Quantity, Unit: l.Unit}
		if l.Material != nil {
			m := toMaterial(*l.Material)
			pm.Material = &m
		}
		lines = append(lines, pm)
	}
	return entity.Product{
		ID:           in.ID,
		Name:         validators.SanitizeString(in.Name),
		LaborTime:    in.LaborTime,
		ProfitMargin: in.ProfitMargin,
		Materials:    lines,
		Price:        in.Price,
		PurchaseCost: in.Cost,
	}
}

func toOrderItems(in []dto.OrderItemDTO) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		item := entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Discount:  it.Discount,
		}
		if it.Product != nil {
			p := toProduct(*it.Product)
			item.Product = &p
		}
		out = append(out, item)
	}
	return out
}

func toOrders(in []dto.OrderDTO) []entity.Order {
	out := make([]entity.Order, 0, len(in))
	for _, o := range in {
		out = append(out, entity.Order{
			ID:         o.ID,
			Status:     entity.OrderStatus(o.Status),
			TotalValue: o.TotalValue,
			Discount:   o.Discount,
			CreatedAt:  o.CreatedAt,
			Items:      toOrderItems(o.Items),
		})
	}
	return out
}

func toMovements(in []dto.StockMovementDTO) []entity.StockMovement {
	out := make([]entity.StockMovement, 0, len(in))
	for _, mv := range in {
		out = append(out, entity.StockMovement{
			MaterialID: mv.MaterialID,
			Type:       entity.MovementType(mv.Type),
			Quantity:   mv.Quantity,
			Color:      mv.Color,
		})
	}
	return out
}

func fromMaterial(m entity.Material) dto.MaterialDTO {
	return dto.MaterialDTO{
		ID:          m.ID,
		Name:        m.Name,
		Unit:        m.Unit,
		Cost:        m.Cost,
		Quantity:    m.Quantity,
		MinQuantity: m.MinQuantity,
		Colors:      m.Colors,
	}
}

func fromProduct(p entity.Product) dto.ProductDTO {
	lines := make([]dto.ProductMaterialDTO, 0, len(p.Materials))
	for _, l := range p.Materials {
		line := dto.ProductMaterialDTO{MaterialID: l.MaterialID, Quantity: l.Quantity, Unit: l.Unit}
		if l.Material != nil {
			m := fromMaterial(*l.Material)
			line.Material = &m
		}
		lines = append(lines, line)
	}
	return dto.ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		LaborTime:    p.LaborTime,
		ProfitMargin: p.ProfitMargin,
		Materials:    lines,
		Price:        p.Price,
		Cost:         p.PurchaseCost,
	}
}

func fromOrders(in []entity.Order) []dto.OrderDTO {
	out := make([]dto.OrderDTO, 0, len(in))
	for _, o := range in {
		items := make([]dto.OrderItemDTO, 0, len(o.Items))
		for _, it := range o.Items {
			item := dto.OrderItemDTO{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
				Discount:  it.Discount,
			}
			if it.Product != nil {
				p := fromProduct(*it.Product)
				item.Product = &p
			}
			items = append(items, item)
		}
		out = append(out, dto.OrderDTO{
			ID:         o.ID,
			Status:     string(o.Status),
			TotalValue: o.TotalValue,
			Discount:   o.Discount,
			CreatedAt:  o.CreatedAt,
			Items:      items,
		})
	}
	return out
}
