package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipTier_Ordering(t *testing.T) {
	assert.Less(t, TierSilver.Rank(), TierGold.Rank())
	assert.Less(t, TierGold.Rank(), TierPlatinum.Rank())
	assert.True(t, TierPlatinum.AtLeast(TierGold))
	assert.False(t, TierSilver.AtLeast(TierGold))
	assert.False(t, MembershipTier("diamond").Valid())
}

func TestMembershipTier_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    MembershipTier
		wantErr bool
	}{
		{`"platinum"`, TierPlatinum, false},
		{`"GOLD"`, TierGold, false},
		{`""`, TierSilver, false},
		{`"diamond"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var tier MembershipTier
			err := json.Unmarshal([]byte(tt.in), &tier)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tier)
		})
	}
}

func TestUserProfile_FullName(t *testing.T) {
	u := UserProfile{FirstName: "Ana", LastName: "Pérez"}
	assert.Equal(t, "Ana Pérez", u.FullName())
	assert.Equal(t, "AP", u.Initials())

	u.FirstName = "Lucía"
	assert.Equal(t, "Lucía Pérez", u.FullName())

	assert.Equal(t, "Lucía ", UserProfile{FirstName: "Lucía"}.FullName())
	assert.Equal(t, " Pérez", UserProfile{LastName: "Pérez"}.FullName())
}

func TestUserProfile_RoundTrip(t *testing.T) {
	since := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	original := UserProfile{
		ID:             "u-1",
		Email:          "admin@proyectox.com",
		FirstName:      "Admin",
		LastName:       "Proyecto",
		Phone:          "+5215512345678",
		Address:        &Address{Street: "Av. Reforma 1", City: "CDMX", Country: "MX"},
		MembershipTier: TierPlatinum,
		LoyaltyPoints:  1250,
		MemberSince:    &since,
		EmailVerified:  true,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded UserProfile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
	assert.NotContains(t, string(data), "full_name")
}

func TestUpdateProfileRequest_Apply(t *testing.T) {
	first := "María"
	u := UserProfile{ID: "u-1", FirstName: "Ana", LastName: "Pérez", Phone: "+1"}

	got := UpdateProfileRequest{FirstName: &first}.Apply(u)

	assert.Equal(t, "María", got.FirstName)
	assert.Equal(t, "Pérez", got.LastName)
	assert.Equal(t, "+1", got.Phone)
	assert.Equal(t, "Ana", u.FirstName)
}
