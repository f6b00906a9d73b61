//go:build unit

package lead_test

import (
	"strings"
	"testing"

	"pupperazi-api/internal/domain/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawSubmission struct {
	nameAndPhone      string
	email             string
	newCustomer       string
	petsNameAndBreed  string
	dateTimeRequested string
	message           string
}

func validRaw() rawSubmission {
	return rawSubmission{
		nameAndPhone:     "Jane Doe - 555-867-5309",
		email:            "jane@example.com",
		newCustomer:      "yes",
		petsNameAndBreed: "Biscuit, golden retriever",
		message:          "Looking for a full groom next week.",
	}
}

func build(raw rawSubmission) (lead.Submission, *lead.ValidationError) {
	return lead.NewSubmission(
		raw.nameAndPhone,
		raw.email,
		raw.newCustomer,
		raw.petsNameAndBreed,
		raw.dateTimeRequested,
		raw.message,
	)
}

func TestNewSubmission(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		sub, verr := build(validRaw())
		require.Nil(t, verr)

		assert.Equal(t, "Jane Doe", sub.ContactName())
		assert.Equal(t, "5558675309", sub.PhoneDigits())
		assert.True(t, sub.CanReceiveSMS())
		assert.True(t, sub.IsNewCustomer())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*rawSubmission)
			field  string
		}{
			{
				name:   "missing email",
				mutate: func(r *rawSubmission) { r.email = "" },
				field:  "email",
			},
			{
				name:   "malformed email",
				mutate: func(r *rawSubmission) { r.email = "not-an-address" },
				field:  "email",
			},
			{
				name:   "message below minimum length",
				mutate: func(r *rawSubmission) { r.message = "too short" },
				field:  "message",
			},
			{
				name:   "message above maximum length",
				mutate: func(r *rawSubmission) { r.message = strings.Repeat("a", lead.MaxMessageLength+1) },
				field:  "message",
			},
			{
				name:   "newCustomer token not yes/no",
				mutate: func(r *rawSubmission) { r.newCustomer = "maybe" },
				field:  "newCustomer",
			},
			{
				name:   "missing nameAndPhone",
				mutate: func(r *rawSubmission) { r.nameAndPhone = "" },
				field:  "nameAndPhone",
			},
			{
				name:   "missing petsNameAndBreed",
				mutate: func(r *rawSubmission) { r.petsNameAndBreed = "" },
				field:  "petsNameAndBreed",
			},
			{
				name:   "oversized dateTimeRequested",
				mutate: func(r *rawSubmission) { r.dateTimeRequested = strings.Repeat("x", lead.MaxFieldLength+1) },
				field:  "dateTimeRequested",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				raw := validRaw()
				tc.mutate(&raw)

				_, verr := build(raw)
				require.NotNil(t, verr)
				assert.True(t, verr.HasField(tc.field), "expected violation for %q, got %v", tc.field, verr.Fields)
			})
		}
	})

	t.Run("collects every violation, not just the first", func(t *testing.T) {
		_, verr := lead.NewSubmission("", "bad", "nope", "", "", "short")
		require.NotNil(t, verr)

		assert.True(t, verr.HasField("nameAndPhone"))
		assert.True(t, verr.HasField("email"))
		assert.True(t, verr.HasField("newCustomer"))
		assert.True(t, verr.HasField("petsNameAndBreed"))
		assert.True(t, verr.HasField("message"))
		assert.Len(t, verr.Fields, 5)
	})

	t.Run("newCustomer token is case-insensitive", func(t *testing.T) {
		raw := validRaw()
		raw.newCustomer = "Yes"

		sub, verr := build(raw)
		require.Nil(t, verr)
		assert.Equal(t, lead.NewCustomerYes, sub.NewCustomer())
	})
}

func TestSubmissionPhoneParsing(t *testing.T) {
	cases := []struct {
		name       string
		field      string
		wantDigits string
		wantSMS    bool
	}{
		{
			name:       "name dash phone convention",
			field:      "Jane Doe - (555) 867-5309",
			wantDigits: "5558675309",
			wantSMS:    true,
		},
		{
			name:       "too few digits",
			field:      "Jane - 555-1",
			wantDigits: "5551",
			wantSMS:    false,
		},
		{
			name:       "no separator falls back to whole field",
			field:      "Jane 5558675309",
			wantDigits: "5558675309",
			wantSMS:    true,
		},
		{
			name:       "no phone at all",
			field:      "Jane Doe",
			wantDigits: "",
			wantSMS:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			raw.nameAndPhone = tc.field

			sub, verr := build(raw)
			require.Nil(t, verr)
			assert.Equal(t, tc.wantDigits, sub.PhoneDigits())
			assert.Equal(t, tc.wantSMS, sub.CanReceiveSMS())
		})
	}
}
