package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeliverer struct {
	subject  string
	message  string
	calls    int
	deadline bool
	err      error
}

func (f *fakeDeliverer) Deliver(ctx context.Context, subject, message string) error {
	f.calls++
	f.subject = subject
	f.message = message
	_, f.deadline = ctx.Deadline()
	return f.err
}

func TestNewChannelSender_Defaults(t *testing.T) {
	s := NewChannelSender(&fakeDeliverer{}, "subject", 0, nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultDeliveryTimeout, s.timeout)
	assert.NotNil(t, s.logger)
}

func TestChannelSender_Send_Success(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := &fakeDeliverer{}
	s := NewChannelSender(d, "Alert", time.Second, logrus.NewEntry(logger))

	NewNotification(s).Notify("disk almost full")

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, "Alert", d.subject)
	assert.Equal(t, "disk almost full", d.message)
	assert.True(t, d.deadline)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, entry.Level)
	}
}

func TestChannelSender_Send_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := &fakeDeliverer{err: errors.New("gateway down")}
	s := NewChannelSender(d, "Alert", time.Second, logrus.NewEntry(logger))

	var reported []error
	s.OnError = func(err error) { reported = append(reported, err) }

	s.Send("hello")

	assert.Equal(t, 1, d.calls, "failed deliveries are not retried")
	require.Len(t, reported, 1)
	assert.EqualError(t, reported[0], "gateway down")

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.WarnLevel, last.Level)
	assert.Equal(t, "Failed to deliver message", last.Message)
}

func TestChannelSender_Send_FailureWithoutHook(t *testing.T) {
	logger, _ := test.NewNullLogger()
	d := &fakeDeliverer{err: errors.New("boom")}
	s := NewChannelSender(d, "", time.Second, logrus.NewEntry(logger))

	assert.NotPanics(t, func() { s.Send("x") })
}
