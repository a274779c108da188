package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	PHONE = "+2348012345678"
)

func TestMessage(t *testing.T) {
	amount := 25000.0

	out := Message("Dear {{name}}, pay ₦{{amount}} to acct. Phone: {{phone}}", "Jane", &amount, PHONE)

	require.Equal(t, "Dear Jane, pay ₦25,000 to acct. Phone: +2348012345678", out)
}

func TestMessageNoPlaceholders(t *testing.T) {
	body := "Your payment is overdue. Please settle today."

	out := Message(body, "Jane", nil, PHONE)

	require.Equal(t, body, out)
}

func TestMessageNameFallback(t *testing.T) {
	out := Message("Dear {{name}}", "", nil, PHONE)

	require.Equal(t, "Dear Customer", out)
}

func TestMessageMissingAmount(t *testing.T) {
	out := Message("Pay {{amount}} now", "Jane", nil, PHONE)

	require.Equal(t, "Pay  now", out)
}

func TestMessageRepeatedPlaceholder(t *testing.T) {
	out := Message("{{name}} and {{name}} again", "Jane", nil, PHONE)

	require.Equal(t, "Jane and Jane again", out)
}

func TestMessageUnknownPlaceholderPassesThrough(t *testing.T) {
	out := Message("Hello {{nickname}}", "Jane", nil, PHONE)

	require.Equal(t, "Hello {{nickname}}", out)
}

func TestMessageFractionalAmount(t *testing.T) {
	amount := 15000.5

	out := Message("{{amount}}", "Jane", &amount, PHONE)

	require.Equal(t, "15,000.5", out)
}
