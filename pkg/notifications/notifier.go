// Package notifications delivers completion summaries for push and sync
// passes over shoutrrr service URLs. An unconfigured notifier is a no-op so
// callers never have to branch on whether notifications are enabled.
package notifications

import (
	"fmt"
	"log"
	"os"

	"github.com/nicholas-fedor/shoutrrr"
	"github.com/sirupsen/logrus"

	shoutrrrTypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// Notifier sends one-line summaries to a set of shoutrrr service URLs.
type Notifier struct {
	router shoutrrrRouter
	params *shoutrrrTypes.Params
}

// shoutrrrRouter is the subset of the shoutrrr sender used here, split out
// so tests can substitute a recorder.
type shoutrrrRouter interface {
	Send(message string, params *shoutrrrTypes.Params) []error
}

// NewNotifier builds a notifier for the given shoutrrr URLs. With no URLs
// the notifier is inert. Invalid URLs fail fast: a typo in a notification
// target should not surface only after a long sync pass.
func NewNotifier(urls []string) (*Notifier, error) {
	if len(urls) == 0 {
		return &Notifier{}, nil
	}

	var logger shoutrrrTypes.StdLogger = log.New(os.Stderr, "shoutrrr: ", 0)

	router, err := shoutrrr.NewSender(logger, urls...)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification sender: %w", err)
	}

	return &Notifier{router: router, params: &shoutrrrTypes.Params{}}, nil
}

// Send delivers message to every configured service. Delivery failures are
// logged and swallowed; a broken notification channel must not fail the
// operation it reports on.
func (n *Notifier) Send(message string) {
	if n.router == nil {
		return
	}

	for _, err := range n.router.Send(message, n.params) {
		if err != nil {
			logrus.WithError(err).Warn("Failed to send notification")
		}
	}
}
