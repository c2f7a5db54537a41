// Package middleware — recovery.go перехватывает паники обработчиков,
// чтобы один сломанный запрос не ронял весь сервис.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Recovery перехватывает панику, логирует стек и отвечает 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"panic": r,
					"path":  c.Request.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("Паника при обработке запроса")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "внутренняя ошибка",
				})
			}
		}()
		c.Next()
	}
}
