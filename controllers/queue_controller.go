package controllers

import (
	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/pkg/resp"
	"github.com/Sittipanpee/dessert-site/services"
	"github.com/gin-gonic/gin"
)

type QueueController struct {
	Queue *services.QueueService
}

func NewQueueController(queue *services.QueueService) *QueueController {
	return &QueueController{Queue: queue}
}

// GET /queue-config — public ลูกค้าต้องเห็นเลขพร้อมเพย์
func (qc *QueueController) GetConfig(c *gin.Context) {
	cfg, err := qc.Queue.Config()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// PUT /queue-config (admin) — ทับทั้งแถว
func (qc *QueueController) SaveConfig(c *gin.Context) {
	var cfg entity.QueueConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	saved, err := qc.Queue.SaveConfig(&cfg)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, saved)
}

// POST /queue-reset (admin)
func (qc *QueueController) Reset(c *gin.Context) {
	if err := qc.Queue.Reset(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}
