package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	ordinalNumber   = regexp.MustCompile(`^([0-9]+)(st|nd|rd|th)$`)
)

// Make 生成 URL 安全的 slug
// 例: "Hello, World!" → "hello-world"
// 幂等: Make(Make(x)) == Make(x)
func Make(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// NormalizeClassTitle 规范化班级标题
// 去掉 "class" 和序数后缀，只保留有意义的部分
// 例: "Class 11th" → "11", "CLASS-11-TH" → "11"
func NormalizeClassTitle(s string) string {
	lowered := strings.ToLower(s)
	lowered = nonAlphanumeric.ReplaceAllString(lowered, " ")

	var kept []string
	for _, token := range strings.Fields(lowered) {
		if token == "class" {
			continue
		}
		// 独立的序数后缀（"11 th" 这种写法）
		if token == "st" || token == "nd" || token == "rd" || token == "th" {
			continue
		}
		// 带序数后缀的数字: "11th" → "11"
		if m := ordinalNumber.FindStringSubmatch(token); m != nil {
			token = m[1]
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

// MakeClassSlug 生成班级实体的 slug（先规范化再转 slug）
func MakeClassSlug(s string) string {
	return Make(NormalizeClassTitle(s))
}

// IsUpperGrade 判断是否为高年级班级（11/12 年级，需要选科）
func IsUpperGrade(title string) bool {
	for _, token := range strings.Fields(NormalizeClassTitle(title)) {
		if token == "11" || token == "12" {
			return true
		}
	}
	return false
}
