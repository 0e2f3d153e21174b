package account

import "time"

type AccountDB struct {
	ID           int64
	Name         string
	Phone        string
	Role         string
	Verified     bool
	DocumentPath *string
	Blocked      bool
	BlockReason  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
