package validation

import (
	"fmt"

	"motorent-backend/internal/domain"
)

// PaymentValidator enforces the preconditions for recording a payment against
// a contract. The sum check here is advisory; the payment repository repeats
// it inside a transaction so concurrent payments cannot both slip through.
type PaymentValidator struct{}

func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// ForProcessPayment expects a contract loaded with its payments.
func (v *PaymentValidator) ForProcessPayment(contract *domain.RentalContract, amount int64, method domain.PaymentMethod) []string {
	var violations []string

	switch contract.Status {
	case domain.ContractStatusCancelled, domain.ContractStatusCompleted:
		violations = append(violations, fmt.Sprintf("contract %d does not accept payments (status %s)", contract.ID, contract.Status))
	}

	if amount <= 0 {
		violations = append(violations, "payment amount must be positive")
	}

	switch method {
	case domain.PaymentMethodCash, domain.PaymentMethodBankTransfer, domain.PaymentMethodCreditCard:
	default:
		violations = append(violations, fmt.Sprintf("unknown payment method %q", method))
	}

	if paid := contract.PaidAmount(); paid+amount > contract.TotalPrice {
		violations = append(violations, fmt.Sprintf("payment exceeds total price: %d already paid of %d", paid, contract.TotalPrice))
	}

	return violations
}
