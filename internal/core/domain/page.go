package domain

import "math"

const DefaultPageSize = 20

type PageRequest struct {
	Number int
	Size   int
}

func (p PageRequest) Normalize() PageRequest {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// InRange reports whether the page's offset fits in an int.
func (p PageRequest) InRange() bool {
	return p.Number >= 1 && p.Size >= 1 && p.Number-1 <= math.MaxInt/p.Size
}

func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

type Page[T any] struct {
	Items []T
	Total int
}
