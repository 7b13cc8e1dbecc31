// internal/interfaces/game.go
package interfaces

// LayoutStore — сохранение и загрузка раскладки башен (F5 / F8).
// Реализуется app.Runtime; клиенты знают только этот интерфейс.
type LayoutStore interface {
	SaveLayout() error
	LoadLayout() (bool, error)
	HasSavedLayout() bool
}
