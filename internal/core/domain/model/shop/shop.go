// Package shop contains the minimal shop directory entry the engine needs:
// identity plus the chat the notification dispatcher delivers updates to.
package shop

import (
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Shop is a delivery customer: it creates orders and receives lifecycle
// notifications in its bot chat.
type Shop struct {
	id             uuid.UUID
	name           string
	telegramChatID int64
}

// NewShop registers a shop with its notification chat.
func NewShop(id uuid.UUID, name string, telegramChatID int64) (*Shop, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("shopId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if telegramChatID == 0 {
		return nil, errs.NewValueIsRequiredError("telegramChatId")
	}

	return &Shop{id: id, name: name, telegramChatID: telegramChatID}, nil
}

func (s *Shop) ID() uuid.UUID         { return s.id }
func (s *Shop) Name() string          { return s.name }
func (s *Shop) TelegramChatID() int64 { return s.telegramChatID }
