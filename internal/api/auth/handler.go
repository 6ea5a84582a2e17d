package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The portal is gated by two shared passphrases, one per artist. This is a
// toy gate, not a security boundary: no hashing, no lockout, no session
// token. Login answers with the artist's landing path and the client's
// subsequent navigation is the only "session".
var passphrases = map[string]string{
	"pass1": "/artist1",
	"pass2": "/artist2",
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redirectURL, ok := passphrases[input.Password]
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "redirectUrl": redirectURL})
}
