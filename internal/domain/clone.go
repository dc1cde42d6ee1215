package domain

import "slices"

// clonePtr returns a pointer to a copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a copy of e that shares no pointers or slices with it.
func (e Event) Clone() Event {
	e.EndsAt = clonePtr(e.EndsAt)
	e.Requirements = slices.Clone(e.Requirements)
	e.Includes = slices.Clone(e.Includes)
	e.Tags = slices.Clone(e.Tags)
	return e
}

// Clone returns a copy of s that shares no pointers or slices with it.
func (s Store) Clone() Store {
	s.Rating = clonePtr(s.Rating)
	s.ReviewCount = clonePtr(s.ReviewCount)
	s.DeliveryTimeMinutes = clonePtr(s.DeliveryTimeMinutes)
	s.IsOpen = clonePtr(s.IsOpen)
	s.PriceLevel = clonePtr(s.PriceLevel)
	s.Features = slices.Clone(s.Features)
	return s
}

// Clone returns a copy of p that shares no pointers with it.
func (p Product) Clone() Product {
	p.OriginalPrice = clonePtr(p.OriginalPrice)
	p.Store = clonePtr(p.Store)
	p.Rating = clonePtr(p.Rating)
	return p
}

// Clone returns a copy of u that shares no pointers with it.
func (u UserProfile) Clone() UserProfile {
	u.Address = clonePtr(u.Address)
	u.MemberSince = clonePtr(u.MemberSince)
	return u
}
