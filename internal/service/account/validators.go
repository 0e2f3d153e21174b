package account

func isValidAccountID(id int64) bool {
	return id > 0
}
