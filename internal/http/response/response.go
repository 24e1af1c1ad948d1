package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/platform/apierr"
)

// PrettyJSONKey is the gin context flag selecting indented JSON output.
const PrettyJSONKey = "response.pretty_json"

type ErrorBody struct {
	Error string `json:"error"`
}

func RespondJSON(c *gin.Context, status int, payload any) {
	if c.GetBool(PrettyJSONKey) {
		c.IndentedJSON(status, payload)
		return
	}
	c.JSON(status, payload)
}

func RespondOK(c *gin.Context, payload any) {
	RespondJSON(c, http.StatusOK, payload)
}

// RespondError writes {"error": "..."} using the status carried by an apierr.Error.
// Anything else is reported as an opaque 500.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	_ = c.Error(err)
	RespondJSON(c, ae.Status, ErrorBody{Error: ae.Error()})
}

func RespondHTML(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}

// RespondNoRoute mirrors gin's default 404 for path values the route cannot accept.
func RespondNoRoute(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
}
