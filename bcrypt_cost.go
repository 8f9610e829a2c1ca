//go:build !race

package access

func passwordHashCost() int {
	// Fixed at a level resistant to offline brute force.
	return 12
}
