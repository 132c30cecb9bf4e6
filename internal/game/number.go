package game

import "math/rand/v2"

// UniverseSize is the number of 4-digit sequences with all digits distinct:
// 10*9*8*7.
const UniverseSize = 5040

// Number is an ordered sequence of 4 distinct digits (0-9).
// The zero value (0,0,0,0) is not a valid Number; construct via ParseNumber.
type Number [4]byte

// ParseNumber validates s as exactly 4 distinct digits.
func ParseNumber(s string) (Number, error) {
	if len(s) != 4 {
		return Number{}, ErrInvalidNumber
	}
	var n Number
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Number{}, ErrInvalidNumber
		}
		n[i] = s[i] - '0'
	}
	if !n.valid() {
		return Number{}, ErrInvalidNumber
	}
	return n, nil
}

func (n Number) String() string {
	b := [4]byte{n[0] + '0', n[1] + '0', n[2] + '0', n[3] + '0'}
	return string(b[:])
}

func (n Number) valid() bool {
	var seen [10]bool
	for _, d := range n {
		if d > 9 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// mask is the digit set of n as a bitmap.
func (n Number) mask() uint16 {
	return 1<<n[0] | 1<<n[1] | 1<<n[2] | 1<<n[3]
}

// Universe returns all valid Numbers in lexicographic order.
func Universe() []Number {
	nums := make([]Number, 0, UniverseSize)
	for a := byte(0); a <= 9; a++ {
		for b := byte(0); b <= 9; b++ {
			if b == a {
				continue
			}
			for c := byte(0); c <= 9; c++ {
				if c == a || c == b {
					continue
				}
				for d := byte(0); d <= 9; d++ {
					if d == a || d == b || d == c {
						continue
					}
					nums = append(nums, Number{a, b, c, d})
				}
			}
		}
	}
	return nums
}

// RandomSecret draws a Number uniformly from the universe.
func RandomSecret() Number {
	p := rand.Perm(10)
	return Number{byte(p[0]), byte(p[1]), byte(p[2]), byte(p[3])}
}
