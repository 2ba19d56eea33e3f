// internal/defs/types.go
package defs

// Variant defines the behavior variant of an enemy.
type Variant string

const (
	VariantPlain    Variant = "PLAIN"
	VariantSprinter Variant = "SPRINTER"
	VariantDevourer Variant = "DEVOURER"
	VariantSmart    Variant = "SMART"
	VariantHealer   Variant = "HEALER"
	VariantCourier  Variant = "COURIER"
	VariantSymbiote Variant = "SYMBIOTE"
	VariantJammer   Variant = "JAMMER"
	VariantBoss     Variant = "BOSS"
)

// TargetStrategy defines how a tower picks its target among enemies in range.
type TargetStrategy string

const (
	TargetFirst     TargetStrategy = "FIRST"     // ближайший
	TargetStrongest TargetStrategy = "STRONGEST" // максимум текущего HP
	TargetLowest    TargetStrategy = "LOWEST"    // минимальная доля HP
)
