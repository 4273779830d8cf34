package suggestion

const (
	prefixAsk  = "Hãy "
	prefixHelp = "Hãy giúp tôi "

	reportTodaySentence = "Hãy tạo báo cáo tổng hợp hôm nay"
	statsTodaySentence  = "Hãy cho tôi xem thống kê hồ sơ hôm nay"
)

// phrases maps the lowercase chip labels the assistant emits to the sentence
// sent on the user's behalf. Every sentence keeps the keywords the router
// matches on for its chip.
var phrases = map[string]string{
	// shared
	"xem danh sách công việc": "Hãy cho tôi xem danh sách công việc của tôi",
	"xem công việc ưu tiên":   "Hãy cho tôi xem danh sách công việc ưu tiên cao",
	"xem báo cáo":             "Hãy cho tôi xem báo cáo chi tiết",
	"báo cáo tổng hợp":        "Hãy cho tôi xem báo cáo tổng hợp",
	"thống kê tuần này":       "Hãy cho tôi xem thống kê tuần này",
	"danh sách bệnh nhân":     "Hãy cho tôi xem danh sách bệnh nhân",
	"danh sách khách hàng":    "Hãy cho tôi xem danh sách khách hàng",
	"hướng dẫn sử dụng":       "Hãy hướng dẫn tôi sử dụng trợ lý",
	"xem thêm":                "Hãy cho tôi xem thêm thông tin",
	"bắt đầu lại":             "Hãy bắt đầu lại cuộc trò chuyện",

	// receptionist
	"tiếp nhận bệnh nhân": "Hãy giúp tôi tiếp nhận bệnh nhân mới",
	"đăng ký khám":        "Hãy giúp tôi đăng ký khám cho bệnh nhân",
	"xem hồ sơ":           "Hãy cho tôi xem hồ sơ bệnh nhân",
	"tìm bệnh nhân":       "Hãy giúp tôi tìm bệnh nhân theo tên hoặc số điện thoại",
	"tra cứu hồ sơ":       "Hãy giúp tôi tra cứu hồ sơ bệnh nhân",
	"trả hồ sơ":           "Hãy hướng dẫn tôi trả hồ sơ cho bệnh nhân",
	"ký nhận hồ sơ":       "Hãy hướng dẫn tôi ký nhận khi trả hồ sơ",
	"lịch hẹn hôm nay":    "Hãy cho tôi xem lịch hẹn hôm nay",
	"in phiếu khám":       "Hãy giúp tôi in phiếu khám cho bệnh nhân",

	// doctor
	"bệnh nhân chờ khám":  "Hãy cho tôi xem các bệnh nhân đang chờ khám",
	"hồ sơ chờ khám":      "Hãy cho tôi xem các hồ sơ đang chờ khám",
	"hỗ trợ chẩn đoán":    "Hãy gợi ý hướng chẩn đoán cho bệnh nhân",
	"kê đơn thuốc":        "Hãy giúp tôi kê đơn thuốc cho bệnh nhân",
	"chỉ định xét nghiệm": "Hãy giúp tôi chỉ định xét nghiệm cho bệnh nhân",
	"xem lịch sử khám":    "Hãy cho tôi xem lịch sử khám của bệnh nhân",

	// technician / nurse
	"nhập kết quả xét nghiệm": "Hãy giúp tôi nhập kết quả xét nghiệm",
	"gửi kết quả":             "Hãy giúp tôi gửi kết quả cho bác sĩ",
	"kiểm tra thiết bị":       "Hãy giúp tôi kiểm tra tình trạng thiết bị",
	"cập nhật tiến độ":        "Hãy giúp tôi cập nhật tiến độ xử lý hồ sơ",
	"mẫu chờ xử lý":           "Hãy cho tôi xem các mẫu đang chờ xử lý",
	"hồ sơ đã hoàn thành":     "Hãy cho tôi xem các hồ sơ đã hoàn thành",

	// admin
	"tổng quan hệ thống": "Hãy cho tôi xem tổng quan hệ thống",
	"nhật ký hệ thống":   "Hãy cho tôi xem nhật ký hệ thống",
	"quản lý người dùng": "Hãy giúp tôi quản lý người dùng",
	"quản lý quyền":      "Hãy giúp tôi quản lý quyền truy cập tài khoản",
	"sao lưu dữ liệu":    "Hãy giúp tôi sao lưu toàn bộ dữ liệu",
	"xuất dữ liệu":       "Hãy giúp tôi xuất dữ liệu ra tệp",
	"cài đặt":            "Hãy mở phần cài đặt phòng khám",

	// patient
	"xem kết quả":        "Hãy cho tôi xem kết quả xét nghiệm của tôi",
	"đặt lịch hẹn":       "Hãy giúp tôi đặt lịch hẹn khám",
	"xem lịch hẹn":       "Hãy cho tôi xem lịch hẹn sắp tới",
	"hồ sơ của tôi":      "Hãy cho tôi xem hồ sơ của tôi",
	"liên hệ phòng khám": "Hãy cho tôi thông tin liên hệ phòng khám",
	"tư vấn sức khỏe":    "Hãy tư vấn sức khỏe cho tôi",
}

type rule struct {
	all    []string // every keyword must appear
	any    []string // at least one keyword must appear
	fixed  string
	prefix string
}

// rules apply in order when no phrase matches exactly.
var rules = []rule{
	{all: []string{"báo cáo", "hôm nay"}, fixed: reportTodaySentence},
	{all: []string{"thống kê", "hôm nay"}, fixed: statsTodaySentence},
	{any: []string{"tiếp nhận"}, prefix: prefixHelp},
	{any: []string{"tìm", "tìm kiếm"}, prefix: prefixHelp},
	{any: []string{"xem"}, prefix: prefixAsk},
	{any: []string{"nhập"}, prefix: prefixHelp},
	{any: []string{"quản lý"}, prefix: prefixHelp},
}
