package dto

// ListQuery 列表查询的统一契约，所有目录列表接口共用
// search 为大小写不敏感的子串匹配；page 从 1 开始
type ListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Sort   string `form:"sort,default=createdAt"`
	Order  string `form:"order,default=desc"`
}
