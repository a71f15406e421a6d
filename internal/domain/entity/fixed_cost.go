package entity

// FixedCostKeys claves sinónimas bajo las que se ha guardado históricamente el valor
// de un costo fijo, en orden de prioridad. Agregar un alias nuevo solo requiere extender esta lista.
var FixedCostKeys = []string{"value", "amount", "valor", "custo"}

// FixedCostEntry costo fijo mensual (alquiler, luz, internet...) tal como llega de la configuración.
// Es un mapa genérico porque el valor puede venir bajo cualquiera de FixedCostKeys.
type FixedCostEntry map[string]any
