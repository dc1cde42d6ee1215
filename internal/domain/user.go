package domain

import (
	"fmt"
	"strings"
	"time"
)

// MembershipTier is the loyalty level of a user. Tiers are ordered by
// benefit: silver < gold < platinum.
type MembershipTier string

// Membership tier constants.
const (
	TierSilver   MembershipTier = "silver"
	TierGold     MembershipTier = "gold"
	TierPlatinum MembershipTier = "platinum"
)

// ValidTiers returns the membership tiers in ascending benefit order.
func ValidTiers() []MembershipTier {
	return []MembershipTier{TierSilver, TierGold, TierPlatinum}
}

// Rank orders tiers by benefit level. Unknown tiers rank 0.
func (t MembershipTier) Rank() int {
	switch t {
	case TierSilver:
		return 1
	case TierGold:
		return 2
	case TierPlatinum:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether t grants at least the benefits of other.
func (t MembershipTier) AtLeast(other MembershipTier) bool {
	return t.Rank() >= other.Rank()
}

// Valid reports whether t is a known tier.
func (t MembershipTier) Valid() bool {
	return t.Rank() > 0
}

// UnmarshalText accepts tier names case-insensitively. An empty value
// defaults to silver, the tier every new member starts on.
func (t *MembershipTier) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "" {
		*t = TierSilver
		return nil
	}
	tier := MembershipTier(s)
	if !tier.Valid() {
		return fmt.Errorf("unknown membership tier %q", s)
	}
	*t = tier
	return nil
}

// Address is a postal address attached to a profile.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

// UserProfile is the authenticated user as returned by the backend.
type UserProfile struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Phone          string         `json:"phone,omitempty"`
	Address        *Address       `json:"address,omitempty"`
	MembershipTier MembershipTier `json:"membership_tier"`
	LoyaltyPoints  int            `json:"loyalty_points"`
	MemberSince    *time.Time     `json:"member_since,omitempty"`
	EmailVerified  bool           `json:"email_verified"`
}

// FullName is derived on every call and never stored.
func (u UserProfile) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Initials returns up to two uppercase initials for avatar placeholders.
func (u UserProfile) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		if r := []rune(strings.TrimSpace(part)); len(r) > 0 {
			b.WriteString(strings.ToUpper(string(r[0])))
		}
	}
	return b.String()
}
