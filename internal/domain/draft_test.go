package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlot(t *testing.T) Slot {
	t.Helper()
	slot, err := BuildSlot(2026, time.September, 20, PeriodEvening, 0, nil)
	require.NoError(t, err)
	return slot
}

func validDraft(t *testing.T) BookingDraft {
	t.Helper()
	draft := NewDraft(testSlot(t), "adv-1", TierStandard)
	draft.Name = "Андрей"
	draft.Contact = "@andrey"
	draft.Agree = true
	return draft
}

func TestNewDraft(t *testing.T) {
	slot := testSlot(t)

	draft := NewDraft(slot, "", TierPremium)
	assert.Equal(t, slot.ID, draft.SlotID)
	assert.Equal(t, TierPremium, draft.Tier)
	assert.Equal(t, DefaultPlayers, draft.Players)
	assert.Equal(t, ChannelTelegram, draft.ContactChannel)
	assert.Empty(t, draft.Name)
	assert.False(t, draft.Agree)

	// Неизвестный тариф из query параметра откатывается на стандартный
	draft = NewDraft(slot, "", Tier("vip"))
	assert.Equal(t, TierStandard, draft.Tier)
}

func TestClampPlayers(t *testing.T) {
	tests := []struct {
		name    string
		players int
		want    int
	}{
		{name: "below minimum", players: 1, want: MinPlayers},
		{name: "at minimum", players: 2, want: 2},
		{name: "inside range", players: 4, want: 4},
		{name: "at maximum", players: 6, want: 6},
		{name: "above maximum", players: 7, want: MaxPlayers},
		{name: "negative", players: -3, want: MinPlayers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPlayers(tt.players, MinPlayers, MaxPlayers))
		})
	}
}

func TestDraftValidate(t *testing.T) {
	t.Run("complete draft is valid", func(t *testing.T) {
		draft := validDraft(t)
		assert.Empty(t, draft.Validate())
		assert.True(t, draft.IsValid())
	})

	tests := []struct {
		name     string
		mutate   func(d *BookingDraft)
		field    string
		message  string
	}{
		{
			name:    "no adventure chosen",
			mutate:  func(d *BookingDraft) { d.AdventureID = "" },
			field:   "adventureId",
			message: MsgChooseAdventure,
		},
		{
			name:    "empty name",
			mutate:  func(d *BookingDraft) { d.Name = "   " },
			field:   "name",
			message: MsgNameRequired,
		},
		{
			name:    "empty contact for telegram channel",
			mutate:  func(d *BookingDraft) { d.Contact = "" },
			field:   "contact",
			message: MsgContactRequired,
		},
		{
			name: "empty email for email channel",
			mutate: func(d *BookingDraft) {
				d.ContactChannel = ChannelEmail
				d.Email = ""
			},
			field:   "email",
			message: MsgEmailRequired,
		},
		{
			name:    "agreement unchecked",
			mutate:  func(d *BookingDraft) { d.Agree = false },
			field:   "agree",
			message: MsgAgreeRequired,
		},
		{
			name: "auto adventure requires comment",
			mutate: func(d *BookingDraft) {
				d.AdventureID = AdventureAuto
				d.Comment = ""
			},
			field:   "comment",
			message: MsgCommentRequired,
		},
		{
			name:    "unknown contact channel",
			mutate:  func(d *BookingDraft) { d.ContactChannel = ContactChannel("fax") },
			field:   "contactChannel",
			message: MsgUnknownChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft(t)
			tt.mutate(&draft)

			errs := draft.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
			assert.False(t, draft.IsValid())
		})
	}

	t.Run("auto adventure with comment is valid", func(t *testing.T) {
		draft := validDraft(t)
		draft.AdventureID = AdventureAuto
		draft.Comment = "Хотим мрачный детектив без хоррора"
		assert.True(t, draft.IsValid())
		assert.True(t, draft.NeedsStorySuggestion())
	})

	t.Run("contact value follows active channel", func(t *testing.T) {
		draft := validDraft(t)
		draft.Email = "user@example.com"
		assert.Equal(t, "@andrey", draft.ContactValue())

		draft.ContactChannel = ChannelEmail
		assert.Equal(t, "user@example.com", draft.ContactValue())
	})
}
