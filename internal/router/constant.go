package router

// Log prefixes
const (
	LogPrefixRoute      = "internal.router.Route"
	LogPrefixCreateTask = "internal.router.createTask"
)

// Keyword groups checked before role dispatch.
var (
	taskWords     = []string{"task", "công việc", "todo"}
	viewWords     = []string{"xem", "danh sách", "liệt kê", "hiển thị"}
	statsWords    = []string{"thống kê", "báo cáo"}
	customerWords = []string{"danh sách khách hàng", "xem khách hàng", "danh sách bệnh nhân"}
)

// Suggestion chips
const (
	ChipViewTasks      = "Xem danh sách công việc"
	ChipPriorityTasks  = "Xem công việc ưu tiên"
	ChipViewReport     = "Xem báo cáo"
	ChipSummaryReport  = "Báo cáo tổng hợp"
	ChipWeekStats      = "Thống kê tuần này"
	ChipGuide          = "Hướng dẫn sử dụng"
	ChipIntake         = "Tiếp nhận bệnh nhân"
	ChipRegister       = "Đăng ký khám"
	ChipViewRecords    = "Xem hồ sơ"
	ChipFindPatient    = "Tìm bệnh nhân"
	ChipLookupRecord   = "Tra cứu hồ sơ"
	ChipReturnRecord   = "Trả hồ sơ"
	ChipSignReturn     = "Ký nhận hồ sơ"
	ChipTodayBookings  = "Lịch hẹn hôm nay"
	ChipPrintTicket    = "In phiếu khám"
	ChipWaitingList    = "Bệnh nhân chờ khám"
	ChipDiagnosis      = "Hỗ trợ chẩn đoán"
	ChipPrescribe      = "Kê đơn thuốc"
	ChipOrderLab       = "Chỉ định xét nghiệm"
	ChipHistory        = "Xem lịch sử khám"
	ChipEnterResults   = "Nhập kết quả xét nghiệm"
	ChipSendResults    = "Gửi kết quả"
	ChipCheckEquipment = "Kiểm tra thiết bị"
	ChipUpdateProgress = "Cập nhật tiến độ"
	ChipPendingSamples = "Mẫu chờ xử lý"
	ChipCompleted      = "Hồ sơ đã hoàn thành"
	ChipOverview       = "Tổng quan hệ thống"
	ChipSystemLogs     = "Nhật ký hệ thống"
	ChipManageUsers    = "Quản lý người dùng"
	ChipPermissions    = "Quản lý quyền"
	ChipBackup         = "Sao lưu dữ liệu"
	ChipExport         = "Xuất dữ liệu"
	ChipSettings       = "Cài đặt"
	ChipViewResults    = "Xem kết quả"
	ChipBookVisit      = "Đặt lịch hẹn"
	ChipViewBookings   = "Xem lịch hẹn"
	ChipMyRecord       = "Hồ sơ của tôi"
	ChipContact        = "Liên hệ phòng khám"
	ChipConsult        = "Tư vấn sức khỏe"
)

// Replies
const (
	msgTaskCreated   = "✅ Đã tạo công việc: %s"
	msgTaskPriority  = "\n• Mức ưu tiên: %s"
	msgTaskDue       = "\n• Hạn: %s"
	msgTaskReminder  = "\n• Nhắc nhở: %s"
	msgTaskCategory  = "\n• Phân loại: %s"
	msgTaskAssigned  = "\n• Giao bởi: %s"
	msgTaskFailed    = "❌ Xin lỗi, tôi chưa lưu được công việc \"%s\". Vui lòng thử lại sau."
	msgViewTasks     = "📋 Đang mở danh sách công việc của bạn. Bạn có thể lọc theo mức ưu tiên hoặc hạn hoàn thành."
	msgStats         = "📊 Thống kê hồ sơ hiện tại:\n• Tổng số hồ sơ: %d\n• Chờ khám: %d\n• Đang xử lý: %d\n• Đã hoàn thành: %d\n• Đã trả hồ sơ: %d"
	msgCustomers     = "👥 Danh sách bệnh nhân được quản lý trong mục Hồ sơ. Bạn có thể tìm theo tên, số điện thoại hoặc mã hồ sơ."
	msgEcho          = "Tôi đã nhận được tin nhắn: \"%s\". Hiện tôi chưa hỗ trợ vai trò của bạn, vui lòng liên hệ quản trị viên."
	msgReceptionHelp = "Tôi có thể giúp bạn tiếp nhận bệnh nhân, tra cứu hồ sơ, trả hồ sơ và quản lý lịch hẹn. Bạn cần làm gì?"
)

var priorityLabels = map[string]string{
	"low":    "Thấp",
	"medium": "Trung bình",
	"high":   "Cao",
	"urgent": "Khẩn cấp",
}
