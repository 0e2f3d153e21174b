package entities

import "time"

type Account struct {
	ID           int64
	Name         string
	Phone        string
	Role         RoleType
	Verified     bool
	DocumentPath *string // непрозрачная ссылка на документы водителя, содержимое не читаем
	Blocked      bool
	BlockReason  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoleType string

const (
	RoleShipper RoleType = "shipper"
	RoleDriver  RoleType = "driver"
	RoleAdmin   RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

// Actor идентичность вызывающего, приходит из сессионного шлюза и не перепроверяется.
type Actor struct {
	ID   int64
	Role RoleType
}

const BlockReasonOutstandingPayment = "outstanding platform fee"
