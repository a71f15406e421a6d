package entity

import "github.com/shopspring/decimal"

// MovementType tipo de movimiento de stock (dirección + motivo).
type MovementType string

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada       MovementType = "ENTRADA"        // compra / entrada
	MovementTypeEntradaAjuste MovementType = "ENTRADA_AJUSTE" // ajuste positivo
	MovementTypeSaida         MovementType = "SAIDA"          // consumo en producción
	MovementTypeSaidaAjuste   MovementType = "SAIDA_AJUSTE"   // ajuste negativo
	MovementTypePerda         MovementType = "PERDA"          // pérdida
	MovementTypeRetirada      MovementType = "RETIRADA"       // retiro manual
)

// StockMovement movimiento de stock de un insumo. Quantity es siempre una magnitud
// positiva; el signo lo determina Type. Color nil = variante por defecto.
type StockMovement struct {
	MaterialID string
	Type       MovementType
	Quantity   decimal.Decimal
	Color      *string
}

// MovementDirection sentido del movimiento sobre el saldo.
type MovementDirection int

const (
	DirectionUnknown MovementDirection = iota
	DirectionInbound
	DirectionOutbound
)

// Direction clasifica el tipo en entrada o salida. Tipos no reconocidos devuelven DirectionUnknown.
func (t MovementType) Direction() MovementDirection {
	switch t {
	case MovementTypeEntrada, MovementTypeEntradaAjuste:
		return DirectionInbound
	case MovementTypeSaida, MovementTypeSaidaAjuste, MovementTypePerda, MovementTypeRetirada:
		return DirectionOutbound
	}
	return DirectionUnknown
}

// Sign devuelve +1 para entradas, -1 para salidas y 0 para tipos desconocidos.
func (t MovementType) Sign() int64 {
	switch t.Direction() {
	case DirectionInbound:
		return 1
	case DirectionOutbound:
		return -1
	}
	return 0
}
