package notification

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sender is the capability of delivering a text message over some channel.
// Notification depends on this interface only, never on a concrete variant.
type Sender interface {
	Send(message string)
}

// Variant names a console sender implementation
type Variant string

const (
	VariantSMS   Variant = "sms"
	VariantEmail Variant = "email"
)

// ErrUnknownVariant is returned when a variant name matches no console sender
var ErrUnknownVariant = errors.New("unknown sender variant")

// ParseVariant converts a user supplied name (case-insensitive) into a Variant
func ParseVariant(name string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(name))); v {
	case VariantSMS, VariantEmail:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// NewConsoleSender returns the console sender for the given variant
func NewConsoleSender(variant Variant, w io.Writer) (Sender, error) {
	switch variant {
	case VariantSMS:
		return NewSMSSender(w), nil
	case VariantEmail:
		return NewEmailSender(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(variant))
	}
}

// SMSSender writes messages annotated with "via SMS"
type SMSSender struct {
	out io.Writer
}

// NewSMSSender creates an SMS sender writing to w, or to stdout when w is nil
func NewSMSSender(w io.Writer) *SMSSender {
	return &SMSSender{out: writerOrStdout(w)}
}

// Send implements Sender. A nil or zero SMSSender writes to stdout.
func (s *SMSSender) Send(message string) {
	var out io.Writer
	if s != nil {
		out = s.out
	}
	writeLine(writerOrStdout(out), message, "SMS")
}

// EmailSender writes messages annotated with "via Email"
type EmailSender struct {
	out io.Writer
}

// NewEmailSender creates an Email sender writing to w, or to stdout when w is nil
func NewEmailSender(w io.Writer) *EmailSender {
	return &EmailSender{out: writerOrStdout(w)}
}

// Send implements Sender. A nil or zero EmailSender writes to stdout.
func (s *EmailSender) Send(message string) {
	var out io.Writer
	if s != nil {
		out = s.out
	}
	writeLine(writerOrStdout(out), message, "Email")
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// writeLine emits the whole line in a single Write call
func writeLine(w io.Writer, message, channel string) {
	_, _ = io.WriteString(w, message+" via "+channel+"\n")
}
