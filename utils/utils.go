package utils

// ContainsString returns true iff the provided string slice hay contains
// string needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// RemoveString returns a new slice with every occurrence of needle removed,
// preserving the order of the remaining elements. The input is not modified.
func RemoveString(hay []string, needle string) []string {
	out := []string{}
	for _, str := range hay {
		if str != needle {
			out = append(out, str)
		}
	}
	return out
}
