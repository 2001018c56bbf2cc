package notify

import (
	"errors"
	"log"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNotConfigured = errors.New("whatsapp service not configured")

// TwilioNotifier sends WhatsApp messages through Twilio's messaging
// API. With empty credentials it stays a no-op that logs what it would
// have sent, so the rest of the service works without a Twilio account.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSID, authToken, from string) *TwilioNotifier {
	n := &TwilioNotifier{from: from}
	if accountSID != "" && authToken != "" {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return n
}

func (n *TwilioNotifier) Send(to, message string) error {
	if n.client == nil {
		log.Printf("[notify] twilio not configured, dropping message to %s", to)
		return ErrNotConfigured
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(whatsappAddr(n.from))
	params.SetTo(whatsappAddr(to))
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("[notify] whatsapp message sent: %s", *resp.Sid)
	}
	return nil
}

func whatsappAddr(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
