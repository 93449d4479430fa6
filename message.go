package client

// MessageType identifies the payload shape of a message. The library does
// not validate the data against the type's schema; the API does.
type MessageType string

const (
	MessageTypeText      MessageType = "text"
	MessageTypePicture   MessageType = "picture"
	MessageTypeVideo     MessageType = "video"
	MessageTypeFile      MessageType = "file"
	MessageTypeContact   MessageType = "contact"
	MessageTypeLocation  MessageType = "location"
	MessageTypeURL       MessageType = "url"
	MessageTypeSticker   MessageType = "sticker"
	MessageTypeRichMedia MessageType = "rich_media"
)

// Message describes a message to be delivered with [Client.SendMessage].
// Either Receiver (a user id) or ChatID must be set. Data carries the
// message-type-specific fields and is merged flat into the request body.
type Message struct {
	Receiver      string
	ChatID        string
	Type          MessageType
	Data          map[string]any
	TrackingData  any
	Keyboard      *Keyboard
	MinAPIVersion int
}

// SenderProfile identifies the author of a public-chat post.
type SenderProfile struct {
	ID     string
	Name   string
	Avatar string
}

// TextData shapes the data of a [MessageTypeText] message.
func TextData(text string) map[string]any {
	return map[string]any{"text": text}
}

// PictureData shapes the data of a [MessageTypePicture] message. The
// thumbnail is optional and may be empty.
func PictureData(text, media, thumbnail string) map[string]any {
	data := map[string]any{
		"text":  text,
		"media": media,
	}

	if thumbnail != "" {
		data["thumbnail"] = thumbnail
	}

	return data
}

// VideoData shapes the data of a [MessageTypeVideo] message. Size is the
// video size in bytes, duration in seconds.
func VideoData(media string, size, duration int) map[string]any {
	data := map[string]any{
		"media": media,
		"size":  size,
	}

	if duration > 0 {
		data["duration"] = duration
	}

	return data
}

// URLData shapes the data of a [MessageTypeURL] message.
func URLData(media string) map[string]any {
	return map[string]any{"media": media}
}

// LocationData shapes the data of a [MessageTypeLocation] message.
func LocationData(lat, lon float64) map[string]any {
	return map[string]any{
		"location": map[string]any{"lat": lat, "lon": lon},
	}
}

// StickerData shapes the data of a [MessageTypeSticker] message.
func StickerData(stickerID int) map[string]any {
	return map[string]any{"sticker_id": stickerID}
}
