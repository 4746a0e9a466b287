package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

func RegisterChatRoutes(e *echo.Echo, auth *service.AuthService, chats *service.ChatService) {
	g := e.Group("/api/chat", RequireAuth(auth))
	g.POST("/new", newChatHandler(chats))
	g.POST("/send", sendMessageHandler(chats))
	g.GET("/list", listChatsHandler(chats))
	g.GET("/:id", getChatHandler(chats))
	g.DELETE("/:id", deleteChatHandler(chats))
}

func newChatHandler(chats *service.ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}
		chat, err := chats.CreateChat(c.Request().Context(), user.ID)
		if err != nil {
			c.Logger().Errorf("create chat: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Error creating chat"))
		}
		return c.JSON(http.StatusOK, chat)
	}
}

func sendMessageHandler(chats *service.ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SendMessageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
		}
		chatID, err := uuid.Parse(req.ChatID)
		if err != nil {
			return c.JSON(http.StatusNotFound, util.Error("Chat not found"))
		}
		if strings.TrimSpace(req.Content) == "" {
			return c.JSON(http.StatusBadRequest, util.Error("Message content is required."))
		}

		reply, chat, err := chats.SendMessage(c.Request().Context(), chatID, req.Content)
		if err != nil {
			if errors.Is(err, service.ErrChatNotFound) {
				return c.JSON(http.StatusNotFound, util.Error("Chat not found"))
			}
			c.Logger().Errorf("send message: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("AI request failed"))
		}
		return c.JSON(http.StatusOK, SendMessageResponse{Reply: reply, Chat: chat})
	}
}

func listChatsHandler(chats *service.ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}
		summaries, err := chats.ListChats(c.Request().Context(), user.ID)
		if err != nil {
			c.Logger().Errorf("list chats: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Could not load chats"))
		}
		return c.JSON(http.StatusOK, summaries)
	}
}

func getChatHandler(chats *service.ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, util.Error("Chat not found"))
		}
		chat, err := chats.GetChat(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrChatNotFound) {
				return c.JSON(http.StatusNotFound, util.Error("Chat not found"))
			}
			c.Logger().Errorf("get chat: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Error loading chat"))
		}
		return c.JSON(http.StatusOK, chat)
	}
}

func deleteChatHandler(chats *service.ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized."))
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, util.Error("Chat not found"))
		}
		if err := chats.DeleteChat(c.Request().Context(), id, user.ID); err != nil {
			if errors.Is(err, service.ErrChatNotFound) {
				return c.JSON(http.StatusNotFound, util.Error("Chat not found"))
			}
			c.Logger().Errorf("delete chat: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Failed to delete chat"))
		}
		return c.JSON(http.StatusOK, util.Message("Chat deleted"))
	}
}
