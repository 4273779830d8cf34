package router

import (
	"context"
	"fmt"

	"clinic-assistant/internal/model"
)

type rule struct {
	keywords    []string
	fallback    bool
	intent      Intent
	content     func(model.Stats) string
	suggestions []string
	action      func(Callbacks) func(context.Context)
}

func static(msg string) func(model.Stats) string {
	return func(model.Stats) string { return msg }
}

func onNewRecord(cb Callbacks) func(context.Context)   { return cb.OnNewRecord }
func onViewRecords(cb Callbacks) func(context.Context) { return cb.OnViewRecords }

// roleRules returns each role's rules in evaluation order. The last rule of
// every role is its fallback.
func roleRules() map[model.Role][]rule {
	technician := technicianRules()
	return map[model.Role][]rule{
		model.RoleReceptionist: receptionistRules(),
		model.RoleDoctor:       doctorRules(),
		model.RoleNurse:        technician,
		model.RoleTechnician:   technician,
		model.RoleAdmin:        adminRules(),
		model.RolePatient:      patientRules(),
	}
}

func receptionistRules() []rule {
	return []rule{
		{
			keywords:    []string{"tiếp nhận", "bệnh nhân mới", "đăng ký"},
			intent:      IntentReceptionistIntake,
			content:     static("📝 Đang mở form tiếp nhận bệnh nhân mới. Vui lòng nhập họ tên, ngày sinh, số điện thoại và lý do khám."),
			suggestions: []string{ChipPrintTicket, ChipTodayBookings},
			action:      onNewRecord,
		},
		{
			keywords:    []string{"xem hồ sơ", "danh sách hồ sơ"},
			intent:      IntentReceptionistRecords,
			content:     static("📂 Đang mở danh sách hồ sơ. Bạn có thể lọc theo trạng thái hoặc ngày tiếp nhận."),
			suggestions: []string{ChipLookupRecord, ChipReturnRecord},
			action:      onViewRecords,
		},
		{
			keywords:    []string{"tìm", "tra cứu"},
			intent:      IntentReceptionistSearch,
			content:     static("🔍 Nhập họ tên, số điện thoại hoặc mã hồ sơ để tra cứu bệnh nhân."),
			suggestions: []string{ChipViewRecords, ChipIntake},
		},
		{
			keywords:    []string{"trả hồ sơ", "ký nhận"},
			intent:      IntentReceptionistReturn,
			content:     static("📤 Để trả hồ sơ: chọn hồ sơ đã hoàn thành, kiểm tra thông tin bệnh nhân và lấy chữ ký xác nhận."),
			suggestions: []string{ChipSignReturn, ChipViewRecords},
		},
		{
			keywords:    []string{"lịch hẹn", "đặt lịch"},
			intent:      IntentReceptionistAppointment,
			content:     static("📅 Đang hiển thị lịch hẹn. Bạn có thể thêm, đổi hoặc hủy lịch hẹn của bệnh nhân."),
			suggestions: []string{ChipIntake, ChipFindPatient},
		},
		{
			keywords:    []string{"phiếu khám"},
			intent:      IntentReceptionistTicket,
			content:     static("🖨️ Chọn hồ sơ cần in phiếu khám, phiếu sẽ có số thứ tự và phòng khám tương ứng."),
			suggestions: []string{ChipIntake, ChipViewRecords},
		},
		{
			fallback:    true,
			intent:      IntentReceptionistFallback,
			content:     static(msgReceptionHelp),
			suggestions: []string{ChipIntake, ChipFindPatient, ChipReturnRecord},
		},
	}
}

func doctorRules() []rule {
	return []rule{
		{
			keywords: []string{"chờ khám"},
			intent:   IntentDoctorQueue,
			content: func(s model.Stats) string {
				return fmt.Sprintf("🩺 Hiện có %d bệnh nhân đang chờ khám và %d hồ sơ đang xử lý.", s.PendingExamination, s.InProgress)
			},
			suggestions: []string{ChipDiagnosis, ChipOrderLab},
			action:      onViewRecords,
		},
		{
			keywords:    []string{"lịch sử"},
			intent:      IntentDoctorHistory,
			content:     static("📖 Chọn bệnh nhân để xem lịch sử khám, chẩn đoán và đơn thuốc trước đây."),
			suggestions: []string{ChipDiagnosis, ChipPrescribe},
			action:      onViewRecords,
		},
		{
			keywords:    []string{"chẩn đoán"},
			intent:      IntentDoctorDiagnosis,
			content:     static("🧠 Nhập triệu chứng và kết quả cận lâm sàng, tôi sẽ gợi ý các hướng chẩn đoán để bác sĩ tham khảo."),
			suggestions: []string{ChipOrderLab, ChipPrescribe},
		},
		{
			keywords:    []string{"kê đơn", "đơn thuốc"},
			intent:      IntentDoctorPrescription,
			content:     static("💊 Đang mở form kê đơn. Vui lòng kiểm tra tiền sử dị ứng trước khi kê thuốc."),
			suggestions: []string{ChipHistory, ChipWaitingList},
		},
		{
			keywords:    []string{"chỉ định", "xét nghiệm"},
			intent:      IntentDoctorOrder,
			content:     static("🧪 Chọn các xét nghiệm cần chỉ định, yêu cầu sẽ được chuyển tới phòng xét nghiệm."),
			suggestions: []string{ChipDiagnosis, ChipWaitingList},
		},
		{
			fallback:    true,
			intent:      IntentDoctorFallback,
			content:     static("Tôi có thể giúp bác sĩ xem bệnh nhân chờ khám, hỗ trợ chẩn đoán, kê đơn và chỉ định xét nghiệm."),
			suggestions: []string{ChipWaitingList, ChipDiagnosis, ChipPrescribe},
		},
	}
}

func technicianRules() []rule {
	return []rule{
		{
			keywords:    []string{"xét nghiệm", "kết quả"},
			intent:      IntentTechnicianResults,
			content:     static("🧪 Đang mở form nhập kết quả xét nghiệm. Kết quả sẽ được gửi tới bác sĩ chỉ định sau khi lưu."),
			suggestions: []string{ChipPendingSamples, ChipUpdateProgress},
		},
		{
			keywords:    []string{"mẫu"},
			intent:      IntentTechnicianSamples,
			content:     static("🧫 Đang hiển thị các mẫu chờ xử lý, sắp xếp theo thời gian nhận mẫu."),
			suggestions: []string{ChipEnterResults, ChipCheckEquipment},
			action:      onViewRecords,
		},
		{
			keywords:    []string{"thiết bị", "máy"},
			intent:      IntentTechnicianEquipment,
			content:     static("🔧 Tất cả thiết bị đang hoạt động bình thường. Lịch bảo trì tiếp theo được hiển thị ở mục Thiết bị."),
			suggestions: []string{ChipEnterResults, ChipPendingSamples},
		},
		{
			keywords: []string{"cập nhật", "tiến độ"},
			intent:   IntentTechnicianProgress,
			content: func(s model.Stats) string {
				return fmt.Sprintf("⏱️ Có %d hồ sơ đang xử lý. Chọn hồ sơ để cập nhật tiến độ.", s.InProgress)
			},
			suggestions: []string{ChipEnterResults, ChipCompleted},
			action:      onViewRecords,
		},
		{
			keywords: []string{"hoàn thành"},
			intent:   IntentTechnicianCompleted,
			content: func(s model.Stats) string {
				return fmt.Sprintf("✅ Đã hoàn thành %d hồ sơ, %d hồ sơ đã trả cho bệnh nhân.", s.Completed, s.Returned)
			},
			suggestions: []string{ChipSendResults, ChipUpdateProgress},
			action:      onViewRecords,
		},
		{
			fallback:    true,
			intent:      IntentTechnicianFallback,
			content:     static("Tôi có thể giúp bạn nhập kết quả xét nghiệm, theo dõi mẫu, kiểm tra thiết bị và cập nhật tiến độ."),
			suggestions: []string{ChipEnterResults, ChipPendingSamples, ChipCheckEquipment},
		},
	}
}

func adminRules() []rule {
	return []rule{
		{
			keywords:    []string{"nhật ký"},
			intent:      IntentAdminLogs,
			content:     static("🗒️ Đang mở nhật ký hệ thống, bao gồm đăng nhập và thay đổi dữ liệu gần đây."),
			suggestions: []string{ChipOverview, ChipManageUsers},
		},
		{
			keywords:    []string{"tổng quan", "hệ thống"},
			intent:      IntentAdminOverview,
			content:     overview,
			suggestions: []string{ChipSummaryReport, ChipManageUsers},
		},
		{
			keywords:    []string{"người dùng", "tài khoản", "quyền"},
			intent:      IntentAdminUsers,
			content:     static("👤 Đang mở trang quản lý người dùng. Bạn có thể thêm tài khoản, đổi vai trò hoặc khóa truy cập."),
			suggestions: []string{ChipPermissions, ChipSystemLogs},
		},
		{
			keywords:    []string{"sao lưu", "xuất dữ liệu"},
			intent:      IntentAdminBackup,
			content:     static("💾 Chọn phạm vi dữ liệu cần sao lưu hoặc xuất. Tệp sẽ sẵn sàng để tải xuống khi hoàn tất."),
			suggestions: []string{ChipExport, ChipSettings},
		},
		{
			keywords:    []string{"cài đặt", "cấu hình"},
			intent:      IntentAdminSettings,
			content:     static("⚙️ Đang mở cài đặt phòng khám: giờ làm việc, phòng khám và mẫu in."),
			suggestions: []string{ChipBackup, ChipOverview},
		},
		{
			fallback:    true,
			intent:      IntentAdminFallback,
			content:     static("Tôi có thể giúp quản trị viên xem tổng quan hệ thống, quản lý người dùng, sao lưu dữ liệu và cài đặt."),
			suggestions: []string{ChipOverview, ChipManageUsers, ChipBackup},
		},
	}
}

// overview counts returned records as finished alongside completed ones.
func overview(s model.Stats) string {
	rate := 0
	if s.TotalRecords > 0 {
		rate = (s.Completed + s.Returned) * 100 / s.TotalRecords
	}
	return fmt.Sprintf("📊 Tổng quan hệ thống:\n• Tổng số hồ sơ: %d\n• Chờ khám: %d\n• Đang xử lý: %d\n• Tỷ lệ hoàn thành: %d%%",
		s.TotalRecords, s.PendingExamination, s.InProgress, rate)
}

func patientRules() []rule {
	return []rule{
		{
			keywords:    []string{"kết quả", "xét nghiệm"},
			intent:      IntentPatientResults,
			content:     static("📄 Kết quả của bạn sẽ hiển thị ở mục Hồ sơ khi bác sĩ đã xác nhận."),
			suggestions: []string{ChipBookVisit, ChipConsult},
			action:      onViewRecords,
		},
		{
			keywords:    []string{"lịch hẹn", "đặt lịch"},
			intent:      IntentPatientAppointment,
			content:     static("📅 Chọn ngày và giờ phù hợp, phòng khám sẽ xác nhận lịch hẹn qua tin nhắn."),
			suggestions: []string{ChipViewBookings, ChipContact},
		},
		{
			keywords:    []string{"hồ sơ"},
			intent:      IntentPatientRecords,
			content:     static("🗂️ Đang mở hồ sơ của bạn, bao gồm lịch sử khám và đơn thuốc."),
			suggestions: []string{ChipViewResults, ChipBookVisit},
			action:      onViewRecords,
		},
		{
			keywords:    []string{"liên hệ"},
			intent:      IntentPatientContact,
			content:     static("☎️ Bạn có thể gọi tổng đài phòng khám hoặc nhắn tin trực tiếp tại đây trong giờ làm việc."),
			suggestions: []string{ChipBookVisit, ChipMyRecord},
		},
		{
			keywords:    []string{"tư vấn", "sức khỏe"},
			intent:      IntentPatientConsult,
			content:     static("💬 Hãy mô tả triệu chứng của bạn, nhân viên y tế sẽ phản hồi sớm nhất có thể."),
			suggestions: []string{ChipBookVisit, ChipContact},
		},
		{
			fallback:    true,
			intent:      IntentPatientFallback,
			content:     static("Tôi có thể giúp bạn xem kết quả, đặt lịch hẹn và xem hồ sơ khám bệnh."),
			suggestions: []string{ChipViewResults, ChipBookVisit, ChipMyRecord},
		},
	}
}
