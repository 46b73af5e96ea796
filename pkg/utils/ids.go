package utils

import "github.com/google/uuid"

// MakeID builds a prefixed unique identifier, e.g. "mun_7f9c…".
func MakeID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
