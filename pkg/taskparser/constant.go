package taskparser

import "regexp"

const (
	DefaultTitle        = "Công việc mới"
	DefaultReminderTime = "08:00"
	minTitleRunes       = 3
)

// intentKeywords mark a message as an explicit request to create a task.
var intentKeywords = []string{
	"tạo công việc",
	"tạo task",
	"thêm công việc",
	"thêm task",
	"nhắc tôi",
	"nhắc nhở",
	"cần làm",
	"phải làm",
	"giao việc",
	"giúp tôi nhớ",
}

// timeKeywords let a message without an intent keyword still count as a task.
var timeKeywords = []string{
	"ngày mai",
	"hôm nay",
	"tuần này",
	"tháng này",
	"lúc",
	"phải",
	"cần",
	"nhớ",
}

var (
	urgentKeywords = []string{"khẩn cấp", "gấp", "ngay lập tức", "cấp cứu"}
	highKeywords   = []string{"quan trọng", "ưu tiên cao"}
	lowKeywords    = []string{"khi rảnh", "ưu tiên thấp", "từ từ"}
)

var reminderKeywords = []string{"nhắc", "báo trước", "hẹn giờ"}

type category struct {
	name     string
	keywords []string
}

// categories are checked in declaration order; the first hit wins.
var categories = []category{
	{name: "work", keywords: []string{"họp", "báo cáo", "dự án", "hồ sơ", "ca trực"}},
	{name: "study", keywords: []string{"học", "nghiên cứu", "đọc sách", "khóa học"}},
	{name: "personal", keywords: []string{"cá nhân", "gia đình", "sinh nhật"}},
	{name: "health", keywords: []string{"sức khỏe", "tập thể dục", "uống thuốc", "khám bệnh"}},
	{name: "shopping", keywords: []string{"mua sắm", "mua", "đi chợ"}},
	{name: "appointment", keywords: []string{"lịch hẹn", "hẹn", "gặp"}},
}

var tagVocabulary = []string{"họp", "bệnh nhân", "xét nghiệm", "báo cáo", "đào tạo"}

var (
	intentPattern       = buildAlternation(intentKeywords)
	leadingActionRegexp = regexp.MustCompile(`(?i)^(hãy|làm|thực hiện)\s+`)
	colonCaptureRegexp  = regexp.MustCompile(`:\s*(.+)`)

	// Explicit dates, tried in order.
	slashDateRegexp = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{4}))?`)
	dashDateRegexp  = regexp.MustCompile(`(\d{1,2})-(\d{1,2})(?:-(\d{4}))?`)
	wordDateRegexp  = regexp.MustCompile(`ngày\s+(\d{1,2})(?:\s+tháng\s+(\d{1,2}))?(?:\s+năm\s+(\d{4}))?`)

	atTimeRegexp   = regexp.MustCompile(`(?:vào lúc|lúc)\s*(\d{1,2})(?::(\d{2}))?`)
	hourTimeRegexp = regexp.MustCompile(`(\d{1,2})\s*giờ(?:\s*(\d{1,2}))?(?:\s*(sáng|chiều|tối))?`)

	durationRegexp = regexp.MustCompile(`(\d+)\s*(phút|giờ|giờ đồng hồ)`)
)
