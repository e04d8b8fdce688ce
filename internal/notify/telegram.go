package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"wxpay-errcode-api/internal/dto"
	"wxpay-errcode-api/internal/event"
)

const defaultAPIBase = "https://api.telegram.org"

type TelegramMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
	Parse  string `json:"parse_mode"`
}

// TelegramNotifier 将未收录错误码事件推送到 Telegram 群
type TelegramNotifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
	log      logrus.FieldLogger
}

func NewTelegramNotifier(botToken, chatID string, log logrus.FieldLogger) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultAPIBase,
		client:   &http.Client{Timeout: 5 * time.Second},
		log:      log,
	}
}

// Send 同步发送一条 MarkdownV2 消息，动态内容需先经 escapeMarkdown
func (n *TelegramNotifier) Send(ctx context.Context, content string) error {
	if n.botToken == "" {
		return fmt.Errorf("missing telegram bot token")
	}
	body, _ := json.Marshal(TelegramMessage{ChatID: n.chatID, Text: content, Parse: "MarkdownV2"})
	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

// Publish 实现 event.Publisher，异步发送，失败只打日志
func (n *TelegramNotifier) Publish(topic string, msg any) error {
	if topic != event.TopicUnknownCode {
		return nil
	}
	evt, ok := msg.(dto.UnknownCodeMQ)
	if !ok {
		return fmt.Errorf("unexpected message type %T", msg)
	}
	content := FormatUnknownCode(evt)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := n.Send(ctx, content); err != nil {
			n.log.WithError(err).WithField("code", evt.Code).Error("Telegram 消息发送失败")
		}
	}()
	return nil
}

// FormatUnknownCode 告警内容，错误码来自外部请求，全部转义
func FormatUnknownCode(evt dto.UnknownCodeMQ) string {
	var b strings.Builder
	b.WriteString("⚠️ *未收录的微信支付错误码*\n")
	fmt.Fprintf(&b, "*错误码:* %s\n", escapeMarkdown(evt.Code))
	fmt.Fprintf(&b, "*来源:* %s\n", escapeMarkdown(evt.Source))
	fmt.Fprintf(&b, "*时间:* %s\n", escapeMarkdown(time.Unix(evt.SeenAt, 0).Format("2006-01-02 15:04:05")))
	fmt.Fprintf(&b, "*事件ID:* %d", evt.EventID)
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// escapeMarkdown 转义 MarkdownV2 保留字符
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
