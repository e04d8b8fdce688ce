package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"wxpay-errcode-api/internal/constant"
	"wxpay-errcode-api/internal/dto"
	"wxpay-errcode-api/internal/middleware"
	"wxpay-errcode-api/internal/service"
	"wxpay-errcode-api/internal/utils"
)

// 微信支付错误响应体上限
const maxBodyBytes = 64 << 10

// ErrcodeHandler 错误码查询处理器
type ErrcodeHandler struct {
	svc *service.ErrcodeService
}

func NewErrcodeHandler(svc *service.ErrcodeService) *ErrcodeHandler {
	return &ErrcodeHandler{svc: svc}
}

// Register 注册路由
func (h *ErrcodeHandler) Register(g *gin.RouterGroup) {
	g.GET("/error-codes", h.List)
	g.GET("/error-codes/unknown", h.Unknown)
	g.DELETE("/error-codes/unknown/:code", h.ResolveUnknown)
	g.GET("/error-codes/:code", h.Get)
	g.POST("/error-codes/decode", h.Decode)
}

// List 列出错误码，可按 group 过滤
func (h *ErrcodeHandler) List(c *gin.Context) {
	var req dto.ListErrorCodeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.svc.Catalog(req.Group)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(list).WithTrace(middleware.GetTraceID(c)))
}

// Get 按原始错误码查询
func (h *ErrcodeHandler) Get(c *gin.Context) {
	vo, err := h.svc.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo).WithTrace(middleware.GetTraceID(c)))
}

// Decode 解析微信支付错误响应，status 为微信支付返回的 HTTP 状态码
func (h *ErrcodeHandler) Decode(c *gin.Context) {
	var req dto.DecodeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusOK, utils.Error(constant.CodeMissingParams).WithTrace(middleware.GetTraceID(c)))
		return
	}

	res, err := h.svc.ParseResponse(c.Request.Context(), req.Status, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(res).WithTrace(middleware.GetTraceID(c)))
}

// Unknown 待补充的错误码
func (h *ErrcodeHandler) Unknown(c *gin.Context) {
	list, err := h.svc.Unknown(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(list).WithTrace(middleware.GetTraceID(c)))
}

// ResolveUnknown 错误码补充进目录后清除待补充记录
func (h *ErrcodeHandler) ResolveUnknown(c *gin.Context) {
	if err := h.svc.ResolveUnknown(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil).WithTrace(middleware.GetTraceID(c)))
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusOK, utils.FromError(err).WithTrace(middleware.GetTraceID(c)))
}

// respondBindError 校验失败时返回出错的字段
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams).WithTrace(middleware.GetTraceID(c)))
		return
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	c.JSON(http.StatusOK, utils.ErrorWithData(constant.CodeInvalidParams, fields).WithTrace(middleware.GetTraceID(c)))
}
