package shop

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// Stage is a step of the interactive shop menu
type Stage int

const (
	StageChooseApplication Stage = iota
	StageChooseCategory
	StageChooseItem
	StageConfirm
	StageCompleted
	StageExpired
)

func (s Stage) String() string {
	switch s {
	case StageChooseApplication:
		return "choose_application"
	case StageChooseCategory:
		return "choose_category"
	case StageChooseItem:
		return "choose_item"
	case StageConfirm:
		return "confirm"
	case StageCompleted:
		return "completed"
	case StageExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further selection is accepted
func (s Stage) Terminal() bool {
	return s == StageCompleted || s == StageExpired
}

// Flow tracks one user's walk through the shop menus:
// application, category, item, confirmation.
//
// Any event arriving after Timeout of inactivity moves the flow to
// StageExpired and is rejected with domain.ErrSessionExpired.
type Flow struct {
	ID    string
	Owner domain.UserKey

	mu           sync.Mutex
	stage        Stage
	application  string
	category     string
	itemID       int64
	timeout      time.Duration
	lastActivity time.Time
}

// NewFlow starts a flow at StageChooseApplication
func NewFlow(id string, owner domain.UserKey, now time.Time, timeout time.Duration) *Flow {
	if timeout <= 0 {
		timeout = domain.ShopSessionTimeout
	}
	return &Flow{
		ID:           id,
		Owner:        owner,
		stage:        StageChooseApplication,
		timeout:      timeout,
		lastActivity: now,
	}
}

// Snapshot is a read-only copy of a flow's selections
type Snapshot struct {
	Stage       Stage
	Application string
	Category    string
	ItemID      int64
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Stage: f.stage, Application: f.application, Category: f.category, ItemID: f.itemID}
}

// Expired reports whether the flow has timed out as of now, without
// counting as activity.
func (f *Flow) Expired(now time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expireLocked(now)
}

func (f *Flow) expireLocked(now time.Time) bool {
	if f.stage == StageExpired {
		return true
	}
	if f.stage != StageCompleted && now.Sub(f.lastActivity) > f.timeout {
		f.stage = StageExpired
		return true
	}
	return false
}

// advance checks the flow is alive and at want, then records activity.
func (f *Flow) advance(now time.Time, want Stage, event string) error {
	if f.expireLocked(now) {
		return fmt.Errorf("%w: %s", domain.ErrSessionExpired, f.ID)
	}
	if f.stage != want {
		return fmt.Errorf(ErrMsgWrongStageFmt, domain.ErrInvalidSelection, event, f.stage)
	}
	f.lastActivity = now
	return nil
}

func checkPlaceholder(value string) error {
	if value == "" || value == PlaceholderValue {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSelection, ErrMsgPlaceholderSelected)
	}
	return nil
}

// SelectApplication moves to StageChooseCategory.
func (f *Flow) SelectApplication(app string, now time.Time) error {
	if err := checkPlaceholder(app); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.advance(now, StageChooseApplication, "select_application"); err != nil {
		return err
	}
	f.application = app
	f.stage = StageChooseCategory
	return nil
}

// SelectCategory moves to StageChooseItem.
func (f *Flow) SelectCategory(category string, now time.Time) error {
	if err := checkPlaceholder(category); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.advance(now, StageChooseCategory, "select_category"); err != nil {
		return err
	}
	f.category = category
	f.stage = StageChooseItem
	return nil
}

// SelectItem parses the picked option value as an item id and moves to
// StageConfirm.
func (f *Flow) SelectItem(value string, now time.Time) (int64, error) {
	if err := checkPlaceholder(value); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: item %q", domain.ErrInvalidSelection, value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.advance(now, StageChooseItem, "select_item"); err != nil {
		return 0, err
	}
	f.itemID = id
	f.stage = StageConfirm
	return id, nil
}

// Confirm completes the flow and returns the item to buy. A flow can be
// confirmed once; repeated clicks get domain.ErrInvalidSelection.
func (f *Flow) Confirm(now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage == StageCompleted {
		return 0, fmt.Errorf(ErrMsgWrongStageFmt, domain.ErrInvalidSelection, "confirm", f.stage)
	}
	if err := f.advance(now, StageConfirm, "confirm"); err != nil {
		return 0, err
	}
	f.stage = StageCompleted
	return f.itemID, nil
}
