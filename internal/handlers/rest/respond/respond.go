package respond

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// JSON пишет единый конверт ответа. Статус берется из самого конверта.
func JSON(w http.ResponseWriter, log errorLogger, response dto.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
