package memos

// Visibility is the access level of a memo.
type Visibility string

// Visibility values accepted by the Memos API.
const (
	VisibilityPrivate   Visibility = "PRIVATE"
	VisibilityProtected Visibility = "PROTECTED"
	VisibilityPublic    Visibility = "PUBLIC"
)

// Visibilities lists every Visibility in declaration order.
var Visibilities = []Visibility{VisibilityPrivate, VisibilityProtected, VisibilityPublic}

// Valid reports whether v is one of the known visibilities.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityProtected, VisibilityPublic:
		return true
	default:
		return false
	}
}

// State is the lifecycle state of a memo.
type State string

// State values.
const (
	StateNormal   State = "NORMAL"
	StateArchived State = "ARCHIVED"
)

// Memo is a note resource as returned by the Memos API. Name has the form
// "memos/{id}".
type Memo struct {
	Name        string     `json:"name"`
	State       State      `json:"state"`
	Creator     string     `json:"creator"`
	CreateTime  string     `json:"createTime"`
	UpdateTime  string     `json:"updateTime"`
	DisplayTime string     `json:"displayTime"`
	Content     string     `json:"content"`
	Visibility  Visibility `json:"visibility"`
	Tags        []string   `json:"tags"`
	Pinned      bool       `json:"pinned"`
	Snippet     string     `json:"snippet"`
	Property    Property   `json:"property"`
}

// Property holds flags the server derives from memo content.
type Property struct {
	HasLink            bool `json:"hasLink"`
	HasTaskList        bool `json:"hasTaskList"`
	HasCode            bool `json:"hasCode"`
	HasIncompleteTasks bool `json:"hasIncompleteTasks"`
}

// MemoList is one page of memos. An empty NextPageToken means there are no
// further pages.
type MemoList struct {
	Memos         []Memo `json:"memos"`
	NextPageToken string `json:"nextPageToken"`
}
