package models

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}
