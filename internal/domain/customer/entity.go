package customer

import "time"

type Customer struct {
	ID        int64      `json:"id" db:"id"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name" db:"last_name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone,omitempty" db:"phone"`
	Address   string     `json:"address,omitempty" db:"address"`
	City      string     `json:"city,omitempty" db:"city"`
	Country   string     `json:"country,omitempty" db:"country"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
