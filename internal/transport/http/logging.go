package http

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

// sensitive JSON keys are redacted before any request or response body is
// logged. Tokens and codes are credentials in this system.
var redactedKeyFragments = []string{"password", "token", "code", "otp", "secret"}

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if user, ok := c.Get(contextUserKey).(*domain.User); ok && user != nil {
				userID = user.ID.String()
			}

			payload := struct {
				Time      string `json:"time"`
				UserID    string `json:"user_id"`
				LatencyMS int64  `json:"latency_ms"`
				Request   struct {
					Method string      `json:"method"`
					URI    string      `json:"uri"`
					Body   interface{} `json:"body,omitempty"`
				} `json:"request"`
				Response struct {
					Status int         `json:"status"`
					Body   interface{} `json:"body,omitempty"`
					Error  string      `json:"error,omitempty"`
				} `json:"response"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				UserID:    userID,
				LatencyMS: v.Latency.Milliseconds(),
			}

			payload.Request.Method = v.Method
			payload.Request.URI = v.URI
			if summary := c.Get(requestBodyLogKey); summary != nil {
				payload.Request.Body = summary
			}

			payload.Response.Status = v.Status
			if summary := c.Get(responseBodyLogKey); summary != nil {
				payload.Response.Body = summary
			}
			if v.Error != nil {
				payload.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

func sanitizeBody(body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	if len(body) > maxLoggedBody {
		return "truncated"
	}
	if !json.Valid(body) {
		return "non-json body"
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}
	return sanitizeJSON(data)
}

func sanitizeJSON(data interface{}) interface{} {
	switch value := data.(type) {
	case map[string]interface{}:
		sanitized := make(map[string]interface{}, len(value))
		for key, nested := range value {
			if isSensitiveKey(key) {
				sanitized[key] = "redacted"
				continue
			}
			sanitized[key] = sanitizeJSON(nested)
		}
		return sanitized
	case []interface{}:
		sanitized := make([]interface{}, 0, len(value))
		for _, item := range value {
			sanitized = append(sanitized, sanitizeJSON(item))
		}
		return sanitized
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	lowered := strings.ToLower(key)
	for _, fragment := range redactedKeyFragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}
