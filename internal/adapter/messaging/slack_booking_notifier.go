package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"
	"time"
)

// SlackBookingNotifier posts a short message to an incoming webhook for every
// delivered booking. An empty webhook URL turns it into a no-op.
type SlackBookingNotifier struct {
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.IBookingNotifier = (*SlackBookingNotifier)(nil)

type slackMessage struct {
	Text string `json:"text"`
}

func NewSlackBookingNotifier(webhookURL string, timeout time.Duration) *SlackBookingNotifier {
	return &SlackBookingNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (n *SlackBookingNotifier) NotifyBooking(ctx context.Context, s entities.BookingSubmission) error {
	if n.webhookURL == "" {
		return nil
	}
	r := s.Review
	text := fmt.Sprintf(":calendar: New booking %s\n*Service:* %s (%s) %s\n*When:* %s at %s\n*Customer:* %s, %s, %s\n*Location:* %s",
		s.Reference, r.ServiceName, r.UrgencyLabel, r.PriceLabel, r.DateLabel, r.TimeLabel, r.Name, r.Phone, r.Email, r.Location)

	body, err := json.Marshal(slackMessage{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack webhook returned status %d: %s", resp.StatusCode, string(msg))
	}
	log.Printf("[booking][slack] notified reference=%s", s.Reference)
	return nil
}
