package controller

import (
	"elearn_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID อ่าน path param เป็นตัวเลข id ตอบ 400 ให้เลยเมื่อ parse ไม่ได้
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		util.BadRequest(c, util.MsgInvalidData)
		return 0, false
	}
	return uint(id), true
}
