package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/logger"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// twilioSender delivers SMS through the Twilio Messages API. The API is a
// single form-encoded POST, so it is called directly rather than through a
// vendor SDK.
type twilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
}

// NewTwilioSender returns an SMSSender backed by Twilio. An empty
// accountSID disables delivery; sends then succeed as no-ops.
func NewTwilioSender(accountSID, authToken, fromNumber string) SMSSender {
	return &twilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *twilioSender) Send(ctx context.Context, toPhone, message string) error {
	if s.accountSID == "" {
		logger.Warn("SMS delivery disabled, no Twilio account configured", "to", toPhone)
		return nil
	}

	logger.ExternalServiceCall("twilio", "send_sms", "to", toPhone)

	form := url.Values{}
	form.Set("To", toPhone)
	form.Set("From", s.fromNumber)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building twilio request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("twilio", "send_sms", err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("twilio error: status %d, body: %s", resp.StatusCode, body)
		logger.ExternalServiceResult("twilio", "send_sms", err)
		return err
	}

	logger.ExternalServiceResult("twilio", "send_sms", nil, "to", toPhone)
	return nil
}
