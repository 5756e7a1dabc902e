package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arogyamitra/arogya-bot/internal/platform/observability"
	"github.com/arogyamitra/arogya-bot/internal/storage"
)

type webhookRequest struct {
	From string `json:"from"`
	Body string `json:"body"`
}

type webhookResponse struct {
	To    string   `json:"to"`
	Parts []string `json:"parts"`
}

type registerRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	Frequency string `json:"frequency"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const welcomeTemplate = "Welcome to Arogya Mitra, %s! You are subscribed to %s health alerts. Send any health question to this number at any time."

func (s *Server) handleWebhook(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})

		return
	}

	if strings.TrimSpace(req.Body) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message body is required"})

		return
	}

	parts := s.responder.Answer(c.Request.Context(), req.Body)

	c.JSON(http.StatusOK, webhookResponse{To: req.From, Parts: parts})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})

		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "name and phone are required"})

		return
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = storage.FrequencyDaily
	}

	if frequency != storage.FrequencyDaily && frequency != storage.FrequencyWeekly {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "frequency must be daily or weekly"})

		return
	}

	sub := &storage.Subscriber{
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Region:    req.Region,
		Frequency: frequency,
	}

	if err := s.store.CreateSubscriber(c.Request.Context(), sub); err != nil {
		if errors.Is(err, storage.ErrDuplicatePhone) {
			c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})

			return
		}

		s.logger.Error().Err(err).Msg("create subscriber failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})

		return
	}

	observability.SubscribersRegistered.Inc()

	welcome := fmt.Sprintf(welcomeTemplate, sub.Name, sub.Frequency)
	if err := s.gw.Send(c.Request.Context(), sub.Phone, welcome); err != nil {
		// Registration already succeeded; a failed welcome is logged, not
		// surfaced.
		s.logger.Warn().Err(err).Str("phone", sub.Phone).Msg("welcome message send failed")
	}

	c.JSON(http.StatusCreated, gin.H{"id": sub.ID.String()})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.CountSubscribers(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("count subscribers failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  stats.Total,
		"daily":  stats.Daily,
		"weekly": stats.Weekly,
	})
}
