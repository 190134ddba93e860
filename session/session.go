package session

import (
	"encoding/gob"

	"news-portal-cms/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserKey = "LOGIN_USER"

// User is the identity stored in the cookie session. The password hash
// never enters the session.
type User struct {
	ID       uint
	Username string
	Role     models.UserRole
}

func init() {
	gob.Register(User{})
}

func SetLoginUser(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, User{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *User {
	s := sessions.Default(c)
	if obj := s.Get(loginUserKey); obj != nil {
		if user, ok := obj.(User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
