package listview

import (
	apperrors "github.com/louisbranch/farmhouse.admin/internal/platform/errors"
)

// NoticeKind selects how a notice is styled.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Catalog keys of the generic notices.
const (
	NoticeFetchFailed  = "notice.fetch_failed"
	NoticeActionFailed = "notice.action_failed"
)

// Notice is a transient message for the operator.
type Notice struct {
	Kind NoticeKind
	// Key is the message catalog key.
	Key string
	// Detail is server-provided text shown verbatim, if any.
	Detail string
	// Code classifies the failure behind an error notice.
	Code apperrors.Code
}

func fetchFailed(err error) *Notice {
	return &Notice{Kind: NoticeError, Key: NoticeFetchFailed, Code: apperrors.CodeOf(err)}
}

func actionFailed(key string, err error) *Notice {
	if key == "" {
		key = NoticeActionFailed
	}
	notice := &Notice{Kind: NoticeError, Key: key, Code: apperrors.CodeOf(err)}
	if domainErr, ok := apperrors.As(err); ok {
		notice.Detail = domainErr.Message
	}
	return notice
}
