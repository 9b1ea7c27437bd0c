package router

import (
	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/http/middleware"
	"mindhaven.app/server/internal/service"
)

func registerChatRoutes(r *gin.Engine, llmLimiter *middleware.RateLimiter, services *service.Services) {
	chat := handler.NewChatHandler(services.Chat())
	assistant := handler.NewAssistantHandler(services.Assistant())

	r.POST("/chatbot", chat.Chat)
	r.POST("/ai-chat", llmLimiter.Middleware(), assistant.Chat)
}
