package entity

// NotificationContent is the text shown when a reminder fires.
type NotificationContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// WeeklyNotificationTrigger describes when a weekly reminder fires.
// The weekday convention depends on which side of the scheduler boundary the
// value lives on; see valueobject.Weekday.
type WeeklyNotificationTrigger struct {
	Weekday int  `json:"weekday"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Repeats bool `json:"repeats"`
}

// NotificationRequest is a scheduled notification handle.
type NotificationRequest struct {
	Identifier string                    `json:"identifier"`
	Content    NotificationContent       `json:"content"`
	Trigger    WeeklyNotificationTrigger `json:"trigger"`
}
