package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/Priya8975/travel-agency/internal/metrics"
)

const (
	msgSubscribed      = "Successfully subscribed!"
	msgEmailRequired   = "Email is required"
	msgSubscribeFailed = "Email already subscribed or invalid"
	msgInvalidBody     = "invalid request body"

	maxSubscribeBody = 1 << 20
)

var errInvalidBody = errors.New("invalid request body")

type SubscriberHandler struct {
	store   SubscriberStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewSubscriberHandler(s SubscriberStore, m *metrics.Metrics, logger *slog.Logger) *SubscriberHandler {
	return &SubscriberHandler{store: s, metrics: m, logger: logger}
}

// Subscribe handles POST /subscribe. The email comes from a JSON body when the
// request is JSON and from the "email" form field otherwise.
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubscribeBody)

	raw, err := readEmail(r)
	if err != nil {
		h.metrics.ObserveSubscribe(metrics.OutcomeInvalid)
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	email, err := domain.NormalizeEmail(raw)
	if err != nil {
		h.metrics.ObserveSubscribe(metrics.OutcomeInvalid)
		respondError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	sub, err := h.store.CreateSubscriber(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadySubscribed):
			h.metrics.ObserveSubscribe(metrics.OutcomeDuplicate)
			h.logger.Info("subscribe rejected: email already subscribed", "email", email)
		default:
			h.metrics.ObserveSubscribe(metrics.OutcomeRejected)
			h.logger.Error("subscribe rejected: insert failed", "email", email, "error", err)
		}
		respondError(w, http.StatusBadRequest, msgSubscribeFailed)
		return
	}

	h.metrics.ObserveSubscribe(metrics.OutcomeSubscribed)
	h.logger.Info("new subscriber", "subscriber_id", sub.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": msgSubscribed})
}

func readEmail(r *http.Request) (string, error) {
	if isJSON(r) {
		var req domain.SubscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", errInvalidBody
		}
		return req.Email, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", errInvalidBody
	}
	return r.PostForm.Get("email"), nil
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
