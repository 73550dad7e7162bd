package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
)

type Mail struct {
	From     string
	To       []string
	CC       []string
	Subject  string
	HTMLBody string
}

type recipient struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type sendMailRequest struct {
	Message struct {
		Subject string `json:"subject"`
		Body    struct {
			ContentType string `json:"contentType"`
			Content     string `json:"content"`
		} `json:"body"`
		ToRecipients []recipient `json:"toRecipients"`
		CcRecipients []recipient `json:"ccRecipients,omitempty"`
	} `json:"message"`
	SaveToSentItems bool `json:"saveToSentItems"`
}

// SendMail sends an HTML message from the From mailbox and keeps a copy in Sent Items.
func (c *Client) SendMail(ctx context.Context, m Mail) error {
	if m.From == "" {
		return errors.New("sender mailbox is not configured")
	}
	if len(m.To) == 0 {
		return errors.New("mail has no recipients")
	}

	var req sendMailRequest
	req.Message.Subject = m.Subject
	req.Message.Body.ContentType = "HTML"
	req.Message.Body.Content = m.HTMLBody
	req.Message.ToRecipients = toRecipients(m.To)
	req.Message.CcRecipients = toRecipients(m.CC)
	req.SaveToSentItems = true

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(m.From)+"/sendMail", bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func toRecipients(addrs []string) []recipient {
	out := make([]recipient, 0, len(addrs))
	for _, a := range addrs {
		if a == "" {
			continue
		}
		var r recipient
		r.EmailAddress.Address = a
		out = append(out, r)
	}
	return out
}
