package account

import "prevoz/internal/entities"

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}
	return &entities.Account{
		ID:           a.ID,
		Name:         a.Name,
		Phone:        a.Phone,
		Role:         entities.RoleType(a.Role),
		Verified:     a.Verified,
		DocumentPath: a.DocumentPath,
		Blocked:      a.Blocked,
		BlockReason:  a.BlockReason,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
