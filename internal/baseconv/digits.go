package baseconv

// Alphabet is the ordered digit set shared by the parser and renderer.
// Input is case-insensitive; output always uses these uppercase forms.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digitValue returns the numeric value of a digit rune, or -1 if the
// rune is not part of the alphabet.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	default:
		return -1
	}
}
