package handler

import (
	"net/http"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// DatabaseHandler 全量文档持久化端点处理器
//
// GET/POST /api/database：整个文档是唯一的读写单元，没有局部更新端点
type DatabaseHandler struct {
	store *store.DocumentStore
}

// NewDatabaseHandler 创建DatabaseHandler实例
func NewDatabaseHandler(docStore *store.DocumentStore) *DatabaseHandler {
	return &DatabaseHandler{store: docStore}
}

// GetDatabase 返回全量文档，尚无数据时返回空对象
func (h *DatabaseHandler) GetDatabase(c *gin.Context) {
	doc := h.store.Read(c.Request.Context())
	c.JSON(http.StatusOK, doc)
}

// SaveDatabase 整体替换全量文档
func (h *DatabaseHandler) SaveDatabase(c *gin.Context) {
	var doc domain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON document"})
		return
	}
	if doc == nil {
		doc = domain.EmptyDocument()
	}

	if !h.store.Write(c.Request.Context(), doc) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save database"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
