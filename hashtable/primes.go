// SPDX-License-Identifier: MIT

package hashtable

// nextPrime returns the smallest prime >= n (and >= 2).
// Trial division is fine here: it only runs on construction and growth,
// whose cost is already linear in the table size.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}

	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}
