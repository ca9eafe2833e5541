// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

// Message tables. Keys are stable identifiers; the zh-hans table is the
// reference set and en must cover every key it defines.

var msgZhHans = map[string]string{
	"app.title":         "文档",
	"common.loading":    "加载中...",
	"common.save":       "保存",
	"common.cancel":     "取消",
	"common.delete":     "删除",
	"common.back":       "返回",
	"common.confirm":    "确认",
	"common.yes":        "是",
	"common.no":         "否",
	"auth.login":        "登录",
	"auth.logout":       "登出",
	"auth.verifying":    "登录中",
	"auth.denied":       "未经授权访问",
	"auth.loginHint":    "请在浏览器中完成登录，然后粘贴授权码",
	"docs.listTitle":    "旧识",
	"docs.newDoc":       "新篇",
	"docs.search":       "关键字搜索",
	"docs.searchTitle":  "按标题",
	"docs.searchContent": "按内容",
	"docs.searchAll":    "标题和内容",
	"docs.noDocs":       "暂无文档",
	"docs.author":       "作者",
	"docs.public":       "公开",
	"docs.private":      "私有",
	"docs.notExist":     "页面不存在，请检查访问链接",
	"docs.deleteConfirm": "确认删除此文章吗？",
	"editor.title":      "标题",
	"editor.titleRequired":   "请填写标题",
	"editor.contentRequired": "请填写内容",
	"editor.headerImg":  "头图",
	"editor.tags":       "标签",
	"editor.tagHint":    "输入后回车保存标签",
	"editor.isPublic":   "公开",
	"editor.saveDoc":    "保存文章",
	"editor.saveSuccess": "保存成功",
	"editor.draftRestored": "已恢复未保存的草稿",
	"editor.upload":     "上传",
	"editor.uploadFailed":   "上传失败",
	"editor.noUploadPerm":   "没有上传权限",
	"lang.changed":      "语言已切换",
}

var msgEn = map[string]string{
	"app.title":         "Docs",
	"common.loading":    "Loading...",
	"common.save":       "Save",
	"common.cancel":     "Cancel",
	"common.delete":     "Delete",
	"common.back":       "Back",
	"common.confirm":    "Confirm",
	"common.yes":        "Yes",
	"common.no":         "No",
	"auth.login":        "Log in",
	"auth.logout":       "Log out",
	"auth.verifying":    "Signing in",
	"auth.denied":       "Access denied",
	"auth.loginHint":    "Complete the login in your browser, then paste the authorization code",
	"docs.listTitle":    "All Documents",
	"docs.newDoc":       "New Document",
	"docs.search":       "Search keywords",
	"docs.searchTitle":  "Title",
	"docs.searchContent": "Content",
	"docs.searchAll":    "Title and content",
	"docs.noDocs":       "No documents yet",
	"docs.author":       "Author",
	"docs.public":       "Public",
	"docs.private":      "Private",
	"docs.notExist":     "Page not found, check the link",
	"docs.deleteConfirm": "Delete this document?",
	"editor.title":      "Title",
	"editor.titleRequired":   "Title is required",
	"editor.contentRequired": "Content is required",
	"editor.headerImg":  "Header image",
	"editor.tags":       "Tags",
	"editor.tagHint":    "Type a tag and press enter",
	"editor.isPublic":   "Public",
	"editor.saveDoc":    "Save Document",
	"editor.saveSuccess": "Saved",
	"editor.draftRestored": "Restored an unsaved draft",
	"editor.upload":     "Upload",
	"editor.uploadFailed":   "Upload failed",
	"editor.noUploadPerm":   "No upload permission",
	"lang.changed":      "Language changed",
}
