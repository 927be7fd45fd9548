package enum

// DiscountType describes how a discount value is applied to a cart.
// "fixed" and "amount" are synonyms for an absolute currency deduction.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypeAmount     DiscountType = "amount"
)

func (t DiscountType) String() string {
	return string(t)
}

// Absolute reports whether the discount value is a currency amount rather
// than a percentage of the subtotal.
func (t DiscountType) Absolute() bool {
	return t == DiscountTypeFixed || t == DiscountTypeAmount
}
