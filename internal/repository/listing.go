package repository

import (
	"errors"
	"strings"
)

// ErrBadSortField 排序字段不在白名单内
var ErrBadSortField = errors.New("不支持的排序字段")

// orderClause 将 API 层的排序参数转换为安全的 ORDER BY 子句
// 排序字段只允许白名单内的列，防止拼接注入
func orderClause(sort, order string, columns map[string]string) (string, error) {
	if sort == "" {
		sort = "createdAt"
	}
	col, ok := columns[sort]
	if !ok {
		return "", ErrBadSortField
	}

	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return col + " " + dir, nil
}
