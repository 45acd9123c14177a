// Package notify sends operational announcements to a Telegram admin chat.
// The notifier is optional; a nil *Notifier is safe to call.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Notifier struct {
	api    sender
	chatID int64
}

// New connects the bot API. Returns nil (and no error) when no token is
// configured so callers can wire the notifier unconditionally.
func New(token string, chatID int64) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logrus.WithField("account", api.Self.UserName).Info("telegram notifier ready")
	return &Notifier{api: api, chatID: chatID}, nil
}

// UserRegistered announces a successful registration. Delivery is
// fire-and-forget; failures are logged only.
func (n *Notifier) UserRegistered(username string) {
	if n == nil {
		return
	}

	go func() {
		msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("New user registered: %s", username))
		if _, err := n.api.Send(msg); err != nil {
			logrus.WithError(err).Warn("failed to send registration notification")
		}
	}()
}
