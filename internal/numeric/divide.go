package numeric

// Div32 divides a by b, truncating toward zero.
// MinInt32 / -1 wraps to MinInt32.
func Div32(a, b int32) (int32, error) {
	if b == 0 {
		return 0, divideByZero("div32", int64(a))
	}
	return a / b, nil
}
