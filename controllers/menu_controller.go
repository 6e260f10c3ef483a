package controllers

import (
	"github.com/Sittipanpee/dessert-site/pkg/resp"
	"github.com/Sittipanpee/dessert-site/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	menus, err := mc.Menu.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

type QuoteReq struct {
	Items []services.QuoteItemIn `json:"items" binding:"required,min=1"`
}

// POST /menu/quote — คิดราคา cart ฝั่ง server ก่อนยืนยันสั่ง
func (mc *MenuController) Quote(c *gin.Context) {
	var req QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	lines, total, err := mc.Menu.Quote(req.Items)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "total": total})
}
