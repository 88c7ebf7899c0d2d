package alert

import "fmt"

// ThresholdPolicy es la tabla de umbrales de stock bajo por categoría de
// producto, con un valor por defecto obligatorio para categorías no listadas.
// Es configuración inyectada, no dato derivado: se carga desde pkg/config y
// puede sobreescribirse por despliegue o por test.
type ThresholdPolicy struct {
	byCategory map[string]int64
	def        int64
}

// NewThresholdPolicy construye la política. El valor por defecto es
// obligatorio y debe ser positivo; cada umbral por categoría también.
func NewThresholdPolicy(byCategory map[string]int64, def int64) (ThresholdPolicy, error) {
	if def <= 0 {
		return ThresholdPolicy{}, fmt.Errorf("threshold policy: default debe ser positivo, recibido %d", def)
	}
	m := make(map[string]int64, len(byCategory))
	for cat, t := range byCategory {
		if t <= 0 {
			return ThresholdPolicy{}, fmt.Errorf("threshold policy: umbral de %q debe ser positivo, recibido %d", cat, t)
		}
		m[cat] = t
	}
	return ThresholdPolicy{byCategory: m, def: def}, nil
}

// Resolve devuelve el umbral para la categoría, o el valor por defecto si la
// categoría no está en la tabla (incluida la categoría vacía).
func (p ThresholdPolicy) Resolve(category string) int64 {
	if t, ok := p.byCategory[category]; ok {
		return t
	}
	return p.def
}

// Default devuelve el umbral por defecto.
func (p ThresholdPolicy) Default() int64 {
	return p.def
}
