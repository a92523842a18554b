// Package chat answers free-text questions with canned hints chosen by keyword.
package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/mofassist/internal/logger"
	"github.com/kailas-cloud/mofassist/internal/metrics"
)

// Intent is the keyword class a message matched.
type Intent string

const (
	// IntentCO2 matches CO2 capture questions.
	IntentCO2 Intent = "co2"
	// IntentH2 matches hydrogen storage questions.
	IntentH2 Intent = "h2"
	// IntentMenu is the fallback when nothing matches.
	IntentMenu Intent = "menu"
)

// Canned replies.
const (
	ReplyCO2  = "Forward tip: set application=CO2_capture at 298 K, 1 bar; try UiO-66-NH2 as a baseline."
	ReplyH2   = "For H₂ storage, consider high surface area MOFs; try 77 K, high P. Use Forward to rank candidates."
	ReplyMenu = "Choose: Forward (application→MOF) or Inverse (MOF→applications). You can also submit experiments."
)

// rule maps keywords to a reply. Rules are checked in order; first match wins.
type rule struct {
	intent   Intent
	keywords []string
	reply    string
}

var rules = []rule{
	{intent: IntentCO2, keywords: []string{"co2"}, reply: ReplyCO2},
	{intent: IntentH2, keywords: []string{"h2", "hydrogen"}, reply: ReplyH2},
}

// Reply is a chat answer.
type Reply struct {
	Text   string
	Intent Intent
}

// Service is the keyword chat responder.
type Service struct{}

// New creates a chat service.
func New() *Service { return &Service{} }

// Reply matches the lower-cased message against the keyword rules.
func (s *Service) Reply(ctx context.Context, message string) Reply {
	r := classify(message)

	metrics.ChatRepliesTotal.WithLabelValues(string(r.Intent)).Inc()
	logger.Component(ctx, "chat").Debug("chat reply",
		zap.String("intent", string(r.Intent)),
		zap.Int("message_len", len(message)),
	)
	return r
}

func classify(message string) Reply {
	msg := strings.ToLower(message)
	for _, rl := range rules {
		for _, kw := range rl.keywords {
			if strings.Contains(msg, kw) {
				return Reply{Text: rl.reply, Intent: rl.intent}
			}
		}
	}
	return Reply{Text: ReplyMenu, Intent: IntentMenu}
}
