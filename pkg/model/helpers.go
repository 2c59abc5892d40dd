package model

// String returns a pointer to the given string. Helper for building sparse
// documents.
func String(s string) *string { return &s }

// Bool returns a pointer to the given bool.
func Bool(b bool) *bool { return &b }

// TernaryPtr returns a pointer to the given Ternary.
func TernaryPtr(t Ternary) *Ternary { return &t }

// StrEqual compares two optional strings; two nils are equal.
func StrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
