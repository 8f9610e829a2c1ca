package webhook

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event is the canonical inbound delivery. RawPayload holds the exact bytes
// received on the wire; Body is only populated after a successful parse.
type Event struct {
	Type       string         `json:"type"`
	RawPayload []byte         `json:"-"`
	Signature  string         `json:"-"`
	Body       map[string]any `json:"-"`
}

// HandlerFunc processes one verified event
type HandlerFunc func(ctx context.Context, evt Event) error

// Router dispatches verified events to registered handlers by event type.
// Unknown event types are logged and acknowledged, never rejected, so new
// event types from the source do not break delivery.
type Router struct {
	handlers map[string]HandlerFunc
	verifier *SignatureVerifier
	logger   Logger
}

// NewRouter creates a Router. The verifier runs before any handler; pass a
// skip-mode verifier to accept unsigned deliveries.
func NewRouter(verifier *SignatureVerifier, logger Logger) *Router {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Router{
		handlers: map[string]HandlerFunc{},
		verifier: verifier,
		logger:   logger,
	}
}

// Handle registers a handler for an event type, replacing any previous one
func (r *Router) Handle(eventType string, h HandlerFunc) *Router {
	if h != nil {
		r.handlers[eventType] = h
	}
	return r
}

// Dispatch routes a verified event to its handler. Unknown types are a
// no-op: we log and acknowledge so the source does not retry forever.
func (r *Router) Dispatch(ctx context.Context, evt Event) error {
	h, ok := r.handlers[evt.Type]
	if !ok {
		r.logger.Info("webhook event type has no handler, acknowledging", "type", evt.Type)
		return nil
	}

	if err := h(ctx, evt); err != nil {
		return fmt.Errorf("webhook handler %q: %w", evt.Type, err)
	}

	return nil
}

// Receive runs the full inbound pipeline for one delivery: signature check
// over the raw bytes, body parse, then dispatch. A signature failure
// returns ErrSignatureRejected, distinct from any processing error, and
// never affects subsequent deliveries.
func (r *Router) Receive(ctx context.Context, eventType string, payload []byte, signature string) error {
	if r.verifier != nil {
		if err := r.verifier.Check(payload, signature); err != nil {
			return err
		}
	}

	evt := Event{
		Type:       eventType,
		RawPayload: payload,
		Signature:  signature,
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &evt.Body); err != nil {
			r.logger.Debug("webhook payload is not a JSON object", "type", eventType)
		}
	}

	return r.Dispatch(ctx, evt)
}
