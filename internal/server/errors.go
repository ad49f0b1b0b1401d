package server

import "github.com/gin-gonic/gin"

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func fail(c *gin.Context, status int, msg string, err error) {
	body := errorBody{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(status, body)
}
