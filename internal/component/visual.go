// internal/component/visual.go
package component

// FireFlash подсвечивает башню сразу после срабатывания перезарядки.
// Dry — выстрела не было, целей не нашлось.
type FireFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
	Dry      bool
}

// Strength убывает от 1 до 0 за время эффекта.
func (f *FireFlash) Strength() float64 {
	if f.Duration <= 0 || f.Timer <= 0 {
		return 0
	}
	return f.Timer / f.Duration
}
