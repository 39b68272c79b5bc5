package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is a thin wrapper over the Resend transactional email API.
// Every send carries a fresh Idempotency-Key so a retried request cannot
// double-deliver.
type Client struct {
	baseURL     string
	apiKey      string
	fromAddress string
	httpClient  *http.Client
	log         Logger
}

func NewClient(baseURL, apiKey, fromAddress string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		fromAddress: fromAddress,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation emails the customer their booking summary.
func (c *Client) SendBookingConfirmation(ctx context.Context, to string, data BookingEmailData) error {
	return c.send(ctx, to, bookingConfirmationSubject, bookingConfirmationHTML(data))
}

// SendBookingReminder emails the customer the day before their visit.
func (c *Client) SendBookingReminder(ctx context.Context, to string, data BookingEmailData) error {
	return c.send(ctx, to, bookingReminderSubject, bookingReminderHTML(data))
}

// SendVerificationCode emails a stamp-card verification code.
func (c *Client) SendVerificationCode(ctx context.Context, to, code string) error {
	return c.send(ctx, to, verificationCodeSubject, verificationCodeHTML(code))
}

// SendErrorReport emails a failure summary to the shop owner. Callers
// treat this as best effort.
func (c *Client) SendErrorReport(ctx context.Context, to string, report ErrorReportData) error {
	return c.send(ctx, to, errorReportSubject, errorReportHTML(report))
}

func (c *Client) send(ctx context.Context, to, subject, html string) error {
	payload := sendEmailRequest{
		From:    c.fromAddress,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var result sendEmailResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		c.log.Debug("Email sent to=%s subject=%q id=%s", to, subject, result.ID)
		return nil

	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrServer, resp.StatusCode, decodeAPIError(raw))

	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, decodeAPIError(raw))
	}
}

func decodeAPIError(raw []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return string(raw)
}
