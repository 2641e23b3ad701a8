package proxy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/logger"
)

const systemPrompt = "You are AgriBot, the FarmSmart Haven assistant. " +
	"You help farmers, agricultural investors, and young agripreneurs with " +
	"practical advice on crops, livestock, weather planning, market prices, " +
	"and farm finance. Answer plainly and keep responses short enough to " +
	"read on a phone. If a question is outside agriculture, say so and " +
	"steer back to farming topics."

// ChatHandler relays conversations to the hosted chat-completion
// gateway, prepending the assistant's system prompt and truncating the
// history so long conversations stay inside the upstream context limit.
type ChatHandler struct {
	relay        *Relay
	gatewayURL   string
	apiKey       string
	model        string
	historyLimit int
}

func NewChatHandler(relay *Relay, gatewayURL, apiKey, model string, historyLimit int) *ChatHandler {
	return &ChatHandler{
		relay:        relay,
		gatewayURL:   gatewayURL,
		apiKey:       apiKey,
		model:        model,
		historyLimit: historyLimit,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type upstreamChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	history := req.Messages
	if len(history) > h.historyLimit {
		history = history[len(history)-h.historyLimit:]
	}

	payload := upstreamChatRequest{
		Model:    h.model,
		Messages: append([]chatMessage{{Role: "system", Content: systemPrompt}}, history...),
	}

	headers := map[string]string{}
	if h.apiKey != "" {
		headers["Authorization"] = "Bearer " + h.apiKey
	}

	status, body, err := h.relay.PostJSON(c.Request.Context(), h.gatewayURL, headers, payload)
	if err != nil {
		logger.Error("chat upstream failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "chat service unavailable"})
		return
	}

	c.Data(status, "application/json", body)
}
