package telegram

import (
	"fmt"
	"net/http"
	"net/url"
)

// Notifier pushes plain-text messages to a single admin chat.
type Notifier struct {
	token   string
	chatID  string
	baseURL string
}

func NewNotifier(token, chatID string) *Notifier {
	return &Notifier{
		token:   token,
		chatID:  chatID,
		baseURL: "https://api.telegram.org/bot" + token,
	}
}

func (n *Notifier) Send(text string) error {
	endpoint := n.baseURL + "/sendMessage"

	params := url.Values{}
	params.Add("chat_id", n.chatID)
	params.Add("text", text)

	resp, err := http.PostForm(endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
