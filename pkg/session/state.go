package session

import "maps"

// Durable storage keys.
const (
	KeyToken       = "token"
	KeyUserInfo    = "userInfo"
	KeyHistoryList = "historyList"
)

// UserInfo is the last profile the backend returned. Fields are opaque.
type UserInfo map[string]any

// Clone returns a shallow copy. A nil UserInfo clones to an empty one.
func (u UserInfo) Clone() UserInfo {
	if u == nil {
		return UserInfo{}
	}
	return maps.Clone(u)
}

// HistoryEntry is one play-history record. Fields are opaque.
type HistoryEntry map[string]any

// State is a point-in-time copy of the store.
type State struct {
	Token           string
	IsLogin         bool
	UserInfo        UserInfo
	ShowLoginPrompt bool
	HistoryList     []HistoryEntry
}
