package ptr

func Of[T any](v T) *T {
	return &v
}

// Or returns *p when p is set, otherwise fallback.
func Or[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
