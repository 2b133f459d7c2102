package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sched-bot/errors"
)

func TestCodec_RoundTrip_All_Variants(t *testing.T) {
	req := require.New(t)

	payloads := []Payload{
		CreateButton{UserID: "user-1"},
		CreateForm{UserID: "user-1"},
		ActivityPick{UserID: "user-2"},
		SessionButton{UserID: "user-3", RoleID: "role-9"},
		SessionForm{UserID: "user-3", RoleID: "role-9"},
	}

	for _, payload := range payloads {
		// When a payload is encoded and decoded again
		decoded, err := Decode(Encode(payload))

		// Then the original variant and fields come back exactly
		req.NoError(err)
		req.Equal(payload, decoded)
	}
}

func TestCodec_Decode_Unknown_Tag(t *testing.T) {
	req := require.New(t)

	_, err := Decode("vote_button:user-1")

	req.ErrorIs(err, errors.ErrMalformedToken)
}

func TestCodec_Decode_Wrong_Field_Count(t *testing.T) {
	req := require.New(t)

	// A session form token needs both the user and the role
	_, err := Decode("session_form:user-1")
	req.ErrorIs(err, errors.ErrMalformedToken)

	// A create button token carries exactly one field
	_, err = Decode("create_button:user-1:extra")
	req.ErrorIs(err, errors.ErrMalformedToken)
}

func TestCodec_Decode_Empty_Segments(t *testing.T) {
	req := require.New(t)

	for _, malformed := range []string{"", "create_button:", ":user-1", "session_button:user-1:"} {
		_, err := Decode(malformed)
		req.ErrorIs(err, errors.ErrMalformedToken, "input %q", malformed)
	}
}
