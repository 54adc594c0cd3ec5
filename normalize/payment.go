package normalize

// PaymentCleanup strips payment-amount descriptions that survive field
// cleanup.
func PaymentCleanup() Pass {
	return NewReplacements("payment", paymentRules)
}

// ResidualCleanup strips the remaining descriptions and fixes bold and
// underline fragments left around them.
func ResidualCleanup() Pass {
	return NewReplacements("residual", residualRules)
}
