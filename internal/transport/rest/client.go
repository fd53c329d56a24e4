package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type matchRequest struct {
	MatchID string `json:"match_id"`
	Index   *int   `json:"index,omitempty"`
}

type matchResponse struct {
	MatchID string `json:"match_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client talks to the move service over HTTP JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient - deadlines come from the caller's context.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (that *Client) StartMatch(ctx context.Context) (string, error) {
	var resp matchResponse
	if err := that.post(ctx, "/start", nil, &resp); err != nil {
		return "", err
	}

	if resp.MatchID == "" {
		return "", fmt.Errorf("%w: empty match id", ErrUnexpectedStatus)
	}

	return resp.MatchID, nil
}

func (that *Client) SubmitMove(ctx context.Context, matchID string, lastHumanIndex int) (*entity.MoveReply, error) {
	var reply entity.MoveReply
	if err := that.post(ctx, "/move", matchRequest{MatchID: matchID, Index: &lastHumanIndex}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

func (that *Client) ResetMatch(ctx context.Context, matchID string) error {
	return that.post(ctx, "/reset", matchRequest{MatchID: matchID}, nil)
}

func (that *Client) post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := that.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("%w: %s %d %s", ErrUnexpectedStatus, path, resp.StatusCode, apiErr.Error)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}
