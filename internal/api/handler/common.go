package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
	"github.com/padhaihub/padhai_go_server/internal/pkg/response"
	"github.com/padhaihub/padhai_go_server/internal/repository"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

// bindListQuery 绑定统一的列表查询参数
func bindListQuery(c *gin.Context) (*dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ParamError(c, err.Error())
		return nil, false
	}
	return &q, true
}

// listError 列表查询错误统一映射，limit 和排序字段非法都是参数错误
func listError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLimit):
		response.ParamError(c, err.Error())
	case errors.Is(err, repository.ErrBadSortField):
		response.ParamError(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}
