package models

// DayWindow represents one weekday's operating window, either for the clinic
// as a whole or for a single doctor. Times are zero-padded "HH:MM" strings so
// they compare lexically. The break fields are optional; empty means the day
// has no break.
type DayWindow struct {
	Day            string `bson:"day" json:"day"`
	IsOpen         bool   `bson:"isOpen" json:"isOpen"`
	StartTime      string `bson:"startTime" json:"startTime"`
	EndTime        string `bson:"endTime" json:"endTime"`
	BreakStartTime string `bson:"breakStartTime,omitempty" json:"breakStartTime,omitempty"`
	BreakEndTime   string `bson:"breakEndTime,omitempty" json:"breakEndTime,omitempty"`
}

// HasBreak reports whether the window carries a configured break.
func (w DayWindow) HasBreak() bool {
	return w.BreakStartTime != "" && w.BreakEndTime != ""
}

// WeeklySchedule maps weekday names ("Sunday".."Saturday") to that day's
// window. A missing key means no window for that day.
type WeeklySchedule map[string]DayWindow

// WeekdayNames lists the weekday keys in display order.
var WeekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}
