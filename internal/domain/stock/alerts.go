package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/entity"
)

// Severity gravedad de una alerta de stock.
type Severity string

const (
	SeverityCritical Severity = "critical" // saldo <= 0
	SeverityHigh     Severity = "high"     // saldo <= mínimo / 2
	SeverityMedium   Severity = "medium"
)

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	}
	return 2
}

// Alert variante de un insumo con saldo <= mínimo.
type Alert struct {
	ID              string
	MaterialID      string
	Name            string
	Unit            string
	Color           *string
	CurrentQuantity decimal.Decimal
	MinQuantity     decimal.Decimal
	Severity        Severity
}

// Alerts revisa cada insumo con mínimo configurado. Las variantes revisadas son los colores
// con movimientos más los colores declarados en el insumo; sin ninguno se revisa la variante
// por defecto. El resultado va ordenado por gravedad y luego por el orden de los insumos.
func Alerts(materials []entity.Material, movements []entity.StockMovement) []Alert {
	balances := Reduce(movements)
	byMaterial := make(map[string][]Balance)
	for _, b := range balances {
		byMaterial[b.MaterialID] = append(byMaterial[b.MaterialID], b)
	}

	out := make([]Alert, 0)
	for _, m := range materials {
		if m.MinQuantity == nil {
			continue
		}
		minQty := *m.MinQuantity
		for _, color := range colorsToCheck(m, byMaterial[m.ID]) {
			balance := BalanceOf(byMaterial[m.ID], m.ID, colorPtr(color))
			if balance.GreaterThan(minQty) {
				continue
			}
			out = append(out, Alert{
				ID:              alertID(m.ID, color),
				MaterialID:      m.ID,
				Name:            alertName(m.Name, color),
				Unit:            m.Unit,
				Color:           colorPtr(color),
				CurrentQuantity: balance,
				MinQuantity:     minQty,
				Severity:        severityOf(balance, minQty),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Severity.rank() < out[j].Severity.rank() })
	return out
}

func colorsToCheck(m entity.Material, balances []Balance) []string {
	seen := make(map[string]bool)
	colors := make([]string, 0, len(balances)+len(m.Colors))
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			colors = append(colors, c)
		}
	}
	for _, b := range balances {
		add(NormalizeColor(b.Color))
	}
	for _, c := range m.Colors {
		add(NormalizeColor(&c))
	}
	if len(colors) == 0 {
		add("")
	}
	return colors
}

func severityOf(balance, minQty decimal.Decimal) Severity {
	switch {
	case !balance.IsPositive():
		return SeverityCritical
	case balance.LessThanOrEqual(minQty.Div(decimal.NewFromInt(2))):
		return SeverityHigh
	}
	return SeverityMedium
}

func alertID(materialID, color string) string {
	if color == "" {
		return materialID + "|DEFAULT"
	}
	return materialID + "|" + color
}

func alertName(name, color string) string {
	if color == "" {
		return name
	}
	return name + " (" + color + ")"
}
