package controllers

import (
	"github.com/Sittipanpee/dessert-site/configs"
	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/pkg/resp"
	"github.com/Sittipanpee/dessert-site/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /auth/login — admin ใส่ passphrase แลก token
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var admin entity.Admin
	if err := a.DB.First(&admin).Error; err != nil {
		resp.Unauthorized(c, "admin not configured")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PassphraseHash), []byte(req.Passphrase)) != nil {
		resp.Unauthorized(c, "wrong passphrase")
		return
	}

	token, err := utils.GenerateToken("admin", a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}
