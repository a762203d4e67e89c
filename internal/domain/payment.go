package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
)

type Payment struct {
	ID         int32         `json:"id"`
	ContractID int32         `json:"contract_id"`
	Amount     int64         `json:"amount"`
	Method     PaymentMethod `json:"method"`
	Reference  string        `json:"reference,omitempty"`
	PaidOn     time.Time     `json:"paid_on"`
	CreatedOn  time.Time     `json:"created_on"`
}
