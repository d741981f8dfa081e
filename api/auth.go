package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// requesterMiddleware identifies the calling account from the Requester
// header. Authentication itself lives in front of this service; by the time a
// request reaches here the gateway has verified the caller owns the account
// number it presents.
func (s *Server) requesterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetHeader("Requester")
		if requester == "" {
			abortWithEncoding(c, http.StatusUnauthorized, errorMissingRequester)
			return
		}

		c.Set("requester", requester)
		c.Next()
	}
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// recognizeAccountMiddleware is a middleware to make sure the API user
// has already register an account in our system. It attaches an "account"
// key in gin's context.
func (s *Server) recognizeAccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetString("requester")
		account, err := s.store.GetAccount(requester)

		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		if account == nil {
			abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
			return
		}

		c.Set("account", account)
		c.Next()
	}
}
