package validators

import "strings"

// NormalizeEmail é a forma usada como chave de contato.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
