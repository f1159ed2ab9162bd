package domain

type Payment struct {
	ID          string `json:"id"`
	ContractID  string `json:"contract_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method,omitempty"`
	PaidOn      string `json:"paid_on"`
	Note        string `json:"note,omitempty"`
	CreatedOn   string `json:"created_on"`
}
