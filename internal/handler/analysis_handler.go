package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/supportbot/copilot-go/internal/middleware"
	"github.com/supportbot/copilot-go/internal/model"
	"github.com/supportbot/copilot-go/internal/service"
	"go.uber.org/zap"
)

// MaxUploadMemory multipart 表单保留在内存中的上限，超出部分落盘
const MaxUploadMemory = 8 << 20

// AnalysisHandler 查询分析处理器
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

// NewAnalysisHandler 创建查询分析处理器
func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Chat 完整分析接口，支持 JSON 和 multipart（附件只计数，不参与分析）
func (h *AnalysisHandler) Chat(c *gin.Context) {
	query, attachments, ok := h.bindQuery(c)
	if !ok {
		return
	}

	h.logger.Info("收到分析请求",
		zap.String("requestId", middleware.GetRequestID(c)),
		zap.Int("queryLen", len(query)),
		zap.Int("attachments", attachments))

	result := h.analysisService.Analyze(query)

	c.JSON(http.StatusOK, model.ChatResponse{
		Query:          query,
		AnalysisResult: result,
		AgentsUsed:     h.analysisService.AgentsUsed(),
		Attachments:    attachments,
	})
}

func (h *AnalysisHandler) bindQuery(c *gin.Context) (string, int, bool) {
	if strings.EqualFold(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return "", 0, false
		}
		values, ok := form.Value["query"]
		if !ok || len(values) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'query' field in request"})
			return "", 0, false
		}
		return values[0], len(form.File["files"]), true
	}

	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return "", 0, false
	}
	if req.Query == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'query' field in request"})
		return "", 0, false
	}
	return *req.Query, 0, true
}

// Classify 只分类接口
func (h *AnalysisHandler) Classify(c *gin.Context) {
	start := time.Now()

	var req model.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Text == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'text' field in request"})
		return
	}

	classification := h.analysisService.Classify(*req.Text)
	c.JSON(http.StatusOK, model.ClassifyResponse{
		Classification: classification,
		Confidence:     h.analysisService.Confidence(),
		ProcessingTime: time.Since(start).Milliseconds(),
	})
}
