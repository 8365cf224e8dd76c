package wallet

import "dispatch/internal/entities"

func isValidCourierID(courierID int64) bool {
	return courierID > 0
}

// validateDetails enforces the tagged-variant rule: at most the member
// matching the kind is set.
func validateDetails(kind entities.TransactionKind, details entities.TransactionDetails) bool {
	switch kind {
	case entities.TxnPayment:
		return details.Tip == nil
	case entities.TxnTip:
		return details.Payment == nil && details.Reversal == nil
	case entities.TxnCredit, entities.TxnDebit:
		return details.Payment == nil && details.Tip == nil
	default:
		return details.Payment == nil && details.Tip == nil && details.Reversal == nil
	}
}
