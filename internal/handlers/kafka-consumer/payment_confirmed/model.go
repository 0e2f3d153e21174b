package payment_confirmed

// confirmedEvent событие платежного шлюза из топика payment.confirmed.
type confirmedEvent struct {
	ExternalRef string `json:"external_ref"`
	AccountID   int64  `json:"account_id"`
	Amount      int64  `json:"amount"`
	Outcome     string `json:"outcome"`
}
