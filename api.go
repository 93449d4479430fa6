package client

import (
	"context"
	"errors"
	"fmt"
)

// maxOnlineStatusIDs is the API's ceiling on ids per presence query.
const maxOnlineStatusIDs = 100

// SetWebhook registers url as the bot's webhook. An empty url unregisters
// the current webhook. isInline enables inline queries on the webhook.
func (c *Client) SetWebhook(ctx context.Context, url string, isInline bool) (*WebhookResponse, error) {
	req := &webhookRequest{
		URL:      url,
		IsInline: isInline,
	}

	var resp WebhookResponse
	if err := c.send(ctx, opSetWebhook, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// RemoveWebhook unregisters the bot's webhook.
func (c *Client) RemoveWebhook(ctx context.Context) (*WebhookResponse, error) {
	return c.SetWebhook(ctx, "", false)
}

// SendMessage delivers a message to a user or group chat. The bot's
// identity is stamped as the sender.
func (c *Client) SendMessage(ctx context.Context, msg Message) (*MessageResponse, error) {
	if msg.Receiver == "" && msg.ChatID == "" {
		return nil, errors.New("receiver or chat id must be set")
	}

	if msg.Type != "" && msg.Data == nil {
		return nil, errors.New("message data must be set when a message type is given")
	}

	if msg.Type == "" && msg.Data == nil && msg.Keyboard == nil {
		return nil, errors.New("a message requires a type and data, or a keyboard")
	}

	trackingData, err := encodeTrackingData(msg.TrackingData)
	if err != nil {
		return nil, fmt.Errorf("invalid tracking data: %w", err)
	}

	req := &messageRequest{
		Receiver: msg.Receiver,
		ChatID:   msg.ChatID,
		Sender: sender{
			Name:   c.identity.Name,
			Avatar: c.identity.Avatar,
		},
		Type:          msg.Type,
		TrackingData:  trackingData,
		Keyboard:      msg.Keyboard,
		MinAPIVersion: msg.MinAPIVersion,
		data:          msg.Data,
	}

	var resp MessageResponse
	if err := c.send(ctx, opSendMessage, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetAccountInfo fetches the bot account's registration details.
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	var resp AccountInfo
	if err := c.send(ctx, opGetAccountInfo, &authRequest{}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetUserDetails looks up a single user by id.
func (c *Client) GetUserDetails(ctx context.Context, userID string) (*UserDetailsResponse, error) {
	if userID == "" {
		return nil, errors.New("user id must be set")
	}

	var resp UserDetailsResponse
	if err := c.send(ctx, opGetUserDetails, &userDetailsRequest{ID: userID}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetOnlineStatus queries the presence of up to 100 users in one call.
func (c *Client) GetOnlineStatus(ctx context.Context, userIDs ...string) (*OnlineStatusResponse, error) {
	if len(userIDs) == 0 {
		return nil, errors.New("at least one user id must be given")
	}

	if len(userIDs) > maxOnlineStatusIDs {
		return nil, fmt.Errorf("at most %d user ids can be queried at once, got %d", maxOnlineStatusIDs, len(userIDs))
	}

	var resp OnlineStatusResponse
	if err := c.send(ctx, opGetOnlineStatus, &onlineStatusRequest{IDs: userIDs}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// PostToPublicChat posts a message to the bot's public chat on behalf of the
// given sender profile. minAPIVersion may be zero to accept the API default.
func (c *Client) PostToPublicChat(ctx context.Context, from SenderProfile, msgType MessageType, data map[string]any, minAPIVersion int) (*MessageResponse, error) {
	if from.ID == "" || from.Name == "" {
		return nil, errors.New("sender profile id and name must be set")
	}

	if msgType == "" {
		return nil, errors.New("message type must be set")
	}

	if data == nil {
		return nil, errors.New("message data must be set")
	}

	req := &publicChatRequest{
		From: from.ID,
		Sender: sender{
			Name:   from.Name,
			Avatar: from.Avatar,
		},
		Type:          msgType,
		MinAPIVersion: minAPIVersion,
		data:          data,
	}

	var resp MessageResponse
	if err := c.send(ctx, opPost, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
