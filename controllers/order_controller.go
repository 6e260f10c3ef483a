package controllers

import (
	"github.com/Sittipanpee/dessert-site/pkg/resp"
	"github.com/Sittipanpee/dessert-site/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?day=YYYY-MM-DD (ไม่ส่ง = วันนี้) ฝั่ง admin poll ทุก 5 วิ
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.ListByDay(c.Query("day"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Orders.GetByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id — แก้ได้แค่ status / paymentProofUrl
func (oc *OrderController) Patch(c *gin.Context) {
	var req services.PatchOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.Patch(c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/queue — คิวข้างหน้า + นาทีโดยประมาณ ลูกค้า poll ทุก 5 วิ
func (oc *OrderController) QueuePosition(c *gin.Context) {
	pos, err := oc.Orders.QueuePosition(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, pos)
}
