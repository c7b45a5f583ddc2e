package service

import (
	"errors"

	"github.com/padhaihub/padhai_go_server/internal/model/dto"
)

var (
	ErrInvalidLimit = errors.New("limit 必须大于 0")
	ErrInvalidSort  = errors.New("不支持的排序字段")
)

// normalizeListQuery 校验并规范化列表查询参数
// limit <= 0 直接拒绝；page 小于 1 归为 1；超过最后一页由调用方返回空列表
func normalizeListQuery(q *dto.ListQuery) error {
	if q.Limit <= 0 {
		return ErrInvalidLimit
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Sort == "" {
		q.Sort = "createdAt"
	}
	if q.Order == "" {
		q.Order = "desc"
	}
	return nil
}
