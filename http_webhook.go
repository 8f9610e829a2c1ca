package access

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agencykit/go-access/webhook"
)

const (
	// WebhookSignatureHeader carries the hex HMAC of the raw body
	WebhookSignatureHeader = "X-Webhook-Signature"
	// WebhookEventHeader names the delivered event type
	WebhookEventHeader = "X-Webhook-Event"
)

// WebhookHandler returns a fiber handler that runs the inbound webhook
// pipeline. A signature rejection yields 401; a handler failure yields 500
// so the source retries; everything else, including unknown event types, is
// acknowledged with 202.
func WebhookHandler(rtr *webhook.Router, logger Logger) fiber.Handler {
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx) error {
		eventType := c.Get(WebhookEventHeader)
		signature := c.Get(WebhookSignatureHeader)

		// Raw bytes, exactly as received. Re-serializing the parsed body
		// would change the digest.
		payload := c.Body()

		err := rtr.Receive(c.UserContext(), eventType, payload, signature)
		if err == nil {
			return c.SendStatus(fiber.StatusAccepted)
		}

		if errors.Is(err, webhook.ErrSignatureRejected) {
			logger.Warn("webhook signature rejected", "event", eventType)
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		logger.Error("webhook processing failed", "event", eventType, "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}
