package domain

// Principal is the acting user. The zero value is anonymous.
type Principal struct {
	UserID uint64
}

var Anonymous = Principal{}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != 0
}
