package client

import "encoding/json"

// authRequest is embedded in every wire request; the dispatcher stamps the
// bot token into it just before sending.
type authRequest struct {
	AuthToken string `json:"auth_token"`
}

func (r *authRequest) stampAuthToken(token string) {
	r.AuthToken = token
}

type webhookRequest struct {
	authRequest
	URL      string `json:"url"`
	IsInline bool   `json:"is_inline"`
}

type userDetailsRequest struct {
	authRequest
	ID string `json:"id"`
}

type onlineStatusRequest struct {
	authRequest
	IDs []string `json:"ids"`
}

// sender is the wire shape of a message sender identity.
type sender struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type messageRequest struct {
	authRequest
	Receiver      string      `json:"receiver,omitempty"`
	ChatID        string      `json:"chat_id,omitempty"`
	Sender        sender      `json:"sender"`
	Type          MessageType `json:"type,omitempty"`
	TrackingData  string      `json:"tracking_data"`
	Keyboard      *Keyboard   `json:"keyboard,omitempty"`
	MinAPIVersion int         `json:"min_api_version,omitempty"`

	data map[string]any
}

func (r *messageRequest) MarshalJSON() ([]byte, error) {
	type plain messageRequest

	return flattenData((*plain)(r), r.data)
}

type publicChatRequest struct {
	authRequest
	From          string      `json:"from"`
	Sender        sender      `json:"sender"`
	Type          MessageType `json:"type"`
	MinAPIVersion int         `json:"min_api_version,omitempty"`

	data map[string]any
}

func (r *publicChatRequest) MarshalJSON() ([]byte, error) {
	type plain publicChatRequest

	return flattenData((*plain)(r), r.data)
}

// flattenData merges the caller's message-type-specific data flat into the
// marshalled request body. Data keys win on conflict, except auth_token,
// which always stays the stamped bot token.
func flattenData(req any, data map[string]any) ([]byte, error) {
	base, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return base, nil
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(base, &body); err != nil {
		return nil, err
	}

	for k, v := range data {
		if k == "auth_token" {
			continue
		}

		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}

		body[k] = raw
	}

	return json.Marshal(body)
}

// encodeTrackingData serializes caller-supplied tracking data to the wire
// string. Nil and empty values normalize to the empty string; the API cannot
// handle a literal null for this field.
func encodeTrackingData(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	switch s := string(b); s {
	case "null", "{}", `""`:
		return "", nil
	default:
		return s, nil
	}
}

// WebhookResponse is the API's answer to a webhook registration or removal.
type WebhookResponse struct {
	Status        int      `json:"status"`
	StatusMessage string   `json:"status_message"`
	EventTypes    []string `json:"event_types,omitempty"`
}

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AccountMember is a member of the bot account.
type AccountMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

// AccountInfo describes the bot account as registered with the platform.
type AccountInfo struct {
	Status           int             `json:"status"`
	StatusMessage    string          `json:"status_message"`
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	URI              string          `json:"uri"`
	Icon             string          `json:"icon"`
	Background       string          `json:"background"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory"`
	Location         *Location       `json:"location,omitempty"`
	Country          string          `json:"country"`
	Webhook          string          `json:"webhook"`
	EventTypes       []string        `json:"event_types"`
	SubscribersCount int             `json:"subscribers_count"`
	Members          []AccountMember `json:"members"`
}

// UserDetails describes a single platform user.
type UserDetails struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	Country         string `json:"country"`
	Language        string `json:"language"`
	PrimaryDeviceOS string `json:"primary_device_os"`
	APIVersion      int    `json:"api_version"`
	AppVersion      string `json:"app_version"`
	DeviceType      string `json:"device_type"`
	MCC             int    `json:"mcc"`
	MNC             int    `json:"mnc"`
}

// UserDetailsResponse is the API's answer to a user lookup.
type UserDetailsResponse struct {
	Status        int         `json:"status"`
	StatusMessage string      `json:"status_message"`
	User          UserDetails `json:"user"`
}

// UserOnlineStatus is the presence of a single queried user.
type UserOnlineStatus struct {
	ID                  string `json:"id"`
	OnlineStatus        int    `json:"online_status"`
	OnlineStatusMessage string `json:"online_status_message"`
	LastOnline          int64  `json:"last_online,omitempty"`
}

// OnlineStatusResponse is the API's answer to a presence query.
type OnlineStatusResponse struct {
	Status        int                `json:"status"`
	StatusMessage string             `json:"status_message"`
	Users         []UserOnlineStatus `json:"users"`
}

// MessageResponse is the API's answer to a sent message or public-chat post.
type MessageResponse struct {
	Status        int    `json:"status"`
	StatusMessage string `json:"status_message"`
	MessageToken  int64  `json:"message_token"`
	ChatHostname  string `json:"chat_hostname,omitempty"`
}
