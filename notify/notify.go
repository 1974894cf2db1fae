// Package notify delivers user-visible messages outside any console.
//
// When a double-clicked script fails to resolve there is no terminal to
// print to; an OS notification is the only way the user learns anything
// happened at all.
package notify

import "github.com/gen2brain/beeep"

// Notifier sends a message to the OS notification system.
type Notifier interface {
	Send(title, message string) error
}

// New returns the platform notifier.
func New() Notifier {
	return beeepNotifier{}
}

// beeepNotifier uses the cross-platform beeep library, which handles
// platform detection internally.
type beeepNotifier struct{}

func (beeepNotifier) Send(title, message string) error {
	return beeep.Notify(title, message, "")
}
