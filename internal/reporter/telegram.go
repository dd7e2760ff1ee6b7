package reporter

import (
	"fmt"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shivani7798/JobSpy/internal/report"
)

// TelegramReporter pushes a short run summary to a chat so a search run can
// be followed from a phone. Entirely optional: the CLI only builds one when
// a token is configured.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendRunSummary reports the headline statistics and the artifacts written.
func (t *TelegramReporter) SendRunSummary(s report.Summary, artifacts []report.Artifact) error {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>Job report ready</b>\n")
	for _, row := range s.Rows() {
		fmt.Fprintf(&b, "• %s: %s\n", row[0], row[1])
	}
	if len(artifacts) > 0 {
		fmt.Fprintf(&b, "\n📁 Files:\n")
		for _, a := range artifacts {
			fmt.Fprintf(&b, "• %s\n", filepath.Base(a.Path))
		}
	}
	return t.SendMessage(b.String())
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Report run failed</b>:\n%v", errReq)
	return t.SendMessage(text)
}
