package notification

// Notification is the high-level component that forwards messages to the
// Sender it was built with. The sender cannot be replaced after construction.
type Notification struct {
	sender Sender
}

// NewNotification creates a Notification bound to sender. It panics if sender is nil.
func NewNotification(sender Sender) *Notification {
	if sender == nil {
		panic("notification: nil sender")
	}
	return &Notification{sender: sender}
}

// Notify forwards message, unmodified, to the held sender
func (n *Notification) Notify(message string) {
	n.sender.Send(message)
}
