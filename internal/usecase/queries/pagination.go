package queries

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
	SearchLimit      = 20
	MinSearchLength  = 2
)

type Pagination struct {
	Limit  int
	Offset int
	Count  int
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
