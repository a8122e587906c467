package helpers

// StringValue dereferences a string pointer, treating nil as empty.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
