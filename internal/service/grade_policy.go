package service

import (
	"errors"

	"github.com/padhaihub/padhai_go_server/internal/model"
	"github.com/padhaihub/padhai_go_server/internal/pkg/slug"
)

var (
	ErrStreamRequired   = errors.New("高年级班级必须指定选科")
	ErrStreamNotAllowed = errors.New("该班级不允许指定选科")
	ErrStreamMismatch   = errors.New("选科不属于该班级")
)

// ValidateStreamSelection 校验选科规则
// 高年级班级（11/12）必须指定选科，且选科必须属于该班级；
// 其他班级不允许指定选科。每次写入都重新判断，不使用缓存的标记。
func ValidateStreamSelection(category *model.MainCategory, stream *model.Stream) error {
	if slug.IsUpperGrade(category.Title) {
		if stream == nil {
			return ErrStreamRequired
		}
		if stream.MainCategoryID != category.ID {
			return ErrStreamMismatch
		}
		return nil
	}

	if stream != nil {
		return ErrStreamNotAllowed
	}
	return nil
}
