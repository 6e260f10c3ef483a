package controllers

import (
	"os"
	"path/filepath"

	"github.com/Sittipanpee/dessert-site/pkg/resp"
	"github.com/Sittipanpee/dessert-site/services"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Orders *services.OrderService
	Dir    string
}

func NewUploadController(orders *services.OrderService, dir string) *UploadController {
	return &UploadController{Orders: orders, Dir: dir}
}

// POST /upload-proof — รับสลิปแล้วผูก URL เข้า order
// เก็บไฟล์อย่างเดียว ไม่ตรวจสลิป
func (uc *UploadController) UploadProof(c *gin.Context) {
	file, err := c.FormFile("file")
	orderID := c.PostForm("orderId")
	if err != nil || orderID == "" {
		resp.BadRequest(c, "missing file or orderId")
		return
	}

	// ตรวจว่า order มีจริงก่อนเซฟไฟล์
	if _, err := uc.Orders.GetByID(orderID); err != nil {
		writeServiceError(c, err)
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	rel := filepath.Join("proofs", orderID+ext)
	dst := filepath.Join(uc.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		resp.ServerError(c, err)
		return
	}

	url := "/uploads/" + filepath.ToSlash(rel)
	if _, err := uc.Orders.Patch(orderID, &services.PatchOrderReq{PaymentProofUrl: &url}); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"url": url})
}
