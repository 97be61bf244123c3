package types

// Ptr returns a pointer to a copy of v
func Ptr[T any](v T) *T {
	return &v
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}
