package utils

// DigitCount returns the number of decimal digits needed to print n,
// that is floor(log10(n)) + 1. Zero and negative counts need one digit.
func DigitCount(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for ; n > 0; n /= 10 {
		digits++
	}
	return digits
}
