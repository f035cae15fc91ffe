package core

// itoa converts an integer to a string without pulling in fmt or strconv
func itoa(n int) string {
	var buf [20]byte
	pos := len(buf)

	negative := n < 0
	if negative {
		n = -n
	}
	for {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	if negative {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}
