package schema

import "time"

// CircuitBreaker represents the circuit_breakers table - history of global treasury halts
// At most one row is active at a time (partial unique index on is_active)
type CircuitBreaker struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// IsActive is true while the breaker blocks execution
	IsActive bool `gorm:"column:is_active;not null"`
	// ActivationTime is when the breaker tripped
	ActivationTime time.Time `gorm:"column:activation_time;not null;type:timestamptz"`
	// DeactivationTime is when the breaker was reset
	DeactivationTime *time.Time `gorm:"column:deactivation_time;type:timestamptz"`
	// Reason describes the unusual activity that caused the halt
	Reason string `gorm:"column:reason;not null;type:text"`
	// ActivatedBy is the identity that tripped the breaker
	ActivatedBy string `gorm:"column:activated_by;not null;type:text"`
	// DeactivatedBy is the identity that reset the breaker
	DeactivatedBy *string `gorm:"column:deactivated_by;type:text"`
}

// TableName specifies the table name for the CircuitBreaker model
func (CircuitBreaker) TableName() string {
	return "circuit_breakers"
}
