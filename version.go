package client

// Version is the library version reported in the User-Agent header of every
// outgoing request.
const Version = "1.0.0"

func userAgent() string {
	return "chatline-bot-go-client/" + Version
}
