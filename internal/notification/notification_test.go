package notification

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures every message it is asked to send
type recordingSender struct {
	messages []string
}

func (r *recordingSender) Send(message string) {
	r.messages = append(r.messages, message)
}

func TestNewNotification_NilSenderPanics(t *testing.T) {
	assert.PanicsWithValue(t, "notification: nil sender", func() {
		NewNotification(nil)
	})
}

func TestNotification_Notify_ForwardsUnmodified(t *testing.T) {
	messages := []string{
		"Hello",
		"",
		"  padded  ",
		"multi\nline\nmessage",
		"unicode: héllo wörld ✓",
		"trailing via SMS",
	}

	for _, msg := range messages {
		t.Run(msg, func(t *testing.T) {
			rec := &recordingSender{}
			n := NewNotification(rec)

			n.Notify(msg)

			require.Len(t, rec.messages, 1)
			assert.Equal(t, msg, rec.messages[0])
		})
	}
}

func TestNotification_Notify_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		variant  Variant
		message  string
		expected string
	}{
		{name: "sms", variant: VariantSMS, message: "Hello", expected: "Hello via SMS\n"},
		{name: "email", variant: VariantEmail, message: "Hello", expected: "Hello via Email\n"},
		{name: "empty message", variant: VariantSMS, message: "", expected: " via SMS\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sender, err := NewConsoleSender(tt.variant, &buf)
			require.NoError(t, err)

			NewNotification(sender).Notify(tt.message)

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestNotification_SwappingVariantKeepsContent(t *testing.T) {
	var smsOut, emailOut bytes.Buffer

	NewNotification(NewSMSSender(&smsOut)).Notify("Status: ok")
	NewNotification(NewEmailSender(&emailOut)).Notify("Status: ok")

	assert.Equal(t, "Status: ok via SMS\n", smsOut.String())
	assert.Equal(t, "Status: ok via Email\n", emailOut.String())
}

func TestNotification_IndependentInstancesDoNotShareState(t *testing.T) {
	var first, second bytes.Buffer

	a := NewNotification(NewSMSSender(&first))
	b := NewNotification(NewSMSSender(&second))

	a.Notify("first")
	b.Notify("second")

	assert.Equal(t, "first via SMS\n", first.String())
	assert.Equal(t, "second via SMS\n", second.String())
}

func TestNotification_SharedSender(t *testing.T) {
	var buf bytes.Buffer
	sender := NewEmailSender(&buf)

	NewNotification(sender).Notify("one")
	NewNotification(sender).Notify("two")

	assert.Equal(t, "one via Email\ntwo via Email\n", buf.String())
}
