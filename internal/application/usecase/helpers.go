package usecase

import "github.com/jhoicas/Atelie-api/internal/domain/entity"

func linesWithoutMaterial(lines []entity.ProductMaterial) int {
	n := 0
	for _, l := range lines {
		if l.Material == nil {
			n++
		}
	}
	return n
}

func itemsWithoutProduct(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		for _, it := range o.Items {
			if it.Product == nil {
				n++
			}
		}
	}
	return n
}
