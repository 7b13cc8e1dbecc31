// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. Zero is never allocated.
type EntityID uint64

// NoEntity is the zero EntityID, used for "no parent" and "not found".
const NoEntity EntityID = 0
