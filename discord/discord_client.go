package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -source=discord_client.go -destination=mocks/discord_client_mock.go -package=mocks

type Message struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds"`
}

type Embed struct {
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Color     int          `json:"color,omitempty"`
	Fields    []EmbedField `json:"fields"`
	ChannelID string       `json:"channelId"`
	Content   string       `json:"content"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

const defaultBaseURL = "https://discord.com/api/v10"

type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

type DiscordClient interface {
	SendMessage(ctx context.Context, channelID string, message Message) error
}

func NewClient(token string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  client,
	}
}

func (c *Client) SendMessage(ctx context.Context, channelID string, message Message) error {
	if len(strings.TrimSpace(channelID)) == 0 {
		return errors.New("channelID cannot be empty")
	}
	msgURL, err := c.getURL("channels", channelID, "messages")

	if err != nil {
		return err
	}

	body, err := json.Marshal(message)

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", msgURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bot "+c.token)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
