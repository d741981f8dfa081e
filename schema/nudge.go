package schema

import "time"

const DailyNudgeCollection = "dailyNudge"

type NudgeTag string

const (
	NudgeSleep     NudgeTag = "sleep"
	NudgeMovement  NudgeTag = "movement"
	NudgeSodium    NudgeTag = "sodium"
	NudgeMeds      NudgeTag = "meds"
	NudgeHydration NudgeTag = "hydration"
	NudgeWeight    NudgeTag = "weight"
)

type NudgeStatus string

const (
	NudgePending NudgeStatus = "pending"
	NudgeDone    NudgeStatus = "done"
	NudgeSnoozed NudgeStatus = "snoozed"
)

// NudgeItem is one entry of the fixed behavioral suggestion catalog. Burden
// is an ordinal effort rating, 1 lowest.
type NudgeItem struct {
	Key    string   `json:"key" bson:"key"`
	Tag    NudgeTag `json:"tag" bson:"tag"`
	Text   string   `json:"text" bson:"text"`
	Burden int      `json:"burden" bson:"burden"`
}

// NudgeCatalog is the fixed catalog daily nudges are drawn from. Pool order
// matters: selection indexes into the tag-filtered pool with a date-derived
// seed, so reordering entries changes which nudge a date maps to.
var NudgeCatalog = []NudgeItem{
	{Key: "sleep_early_20", Tag: NudgeSleep, Burden: 1, Text: "Try getting to bed 20 minutes earlier tonight."},
	{Key: "sleep_screen_break", Tag: NudgeSleep, Burden: 1, Text: "Pause screens 30 minutes before sleep to improve recovery."},
	{Key: "sleep_breathing", Tag: NudgeSleep, Burden: 1, Text: "Do 3 minutes of slow breathing before bed."},
	{Key: "move_walk_10", Tag: NudgeMovement, Burden: 1, Text: "Add a 10-minute easy walk after a meal today."},
	{Key: "move_breaks", Tag: NudgeMovement, Burden: 1, Text: "Take a 2-minute movement break every hour for 4 hours."},
	{Key: "move_steps_goal", Tag: NudgeMovement, Burden: 2, Text: "Set a realistic step goal and check progress by evening."},
	{Key: "sodium_swap", Tag: NudgeSodium, Burden: 1, Text: "Swap one salty snack for fruit or unsalted nuts today."},
	{Key: "sodium_label", Tag: NudgeSodium, Burden: 2, Text: "Check labels and keep sodium lower at one meal today."},
	{Key: "meds_checkin", Tag: NudgeMeds, Burden: 1, Text: "Take meds on schedule and mark them done in the app."},
	{Key: "meds_refill", Tag: NudgeMeds, Burden: 2, Text: "Verify your next refill date to avoid missed doses."},
	{Key: "hydrate_water", Tag: NudgeHydration, Burden: 1, Text: "Drink one extra glass of water before lunch."},
	{Key: "hydrate_reduce_soda", Tag: NudgeHydration, Burden: 2, Text: "Replace one sugary drink with water today."},
	{Key: "weight_portion", Tag: NudgeWeight, Burden: 2, Text: "Use a smaller portion at one meal today."},
	{Key: "weight_evening_walk", Tag: NudgeWeight, Burden: 1, Text: "Take a light 10-minute evening walk."},
}

// DailyNudge is the one suggestion picked for a (user, date). Status is
// mutated by user action; the pick itself is only re-derived on an explicit
// recompute.
type DailyNudge struct {
	UserID    string      `json:"user_id" bson:"user_id"`
	AsOfDate  string      `json:"as_of_date" bson:"as_of_date"`
	Key       string      `json:"key" bson:"key"`
	Tag       NudgeTag    `json:"tag" bson:"tag"`
	Text      string      `json:"text" bson:"text"`
	Burden    int         `json:"burden" bson:"burden"`
	Status    NudgeStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}
