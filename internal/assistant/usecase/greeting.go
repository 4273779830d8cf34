package usecase

import (
	"context"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/router"
)

type greeting struct {
	content     string
	suggestions []string
}

var greetings = map[model.Role]greeting{
	model.RoleReceptionist: {
		content:     "Xin chào! Tôi là trợ lý lễ tân. Tôi có thể giúp bạn tiếp nhận bệnh nhân, tra cứu và trả hồ sơ, quản lý lịch hẹn.",
		suggestions: []string{router.ChipIntake, router.ChipLookupRecord, router.ChipTodayBookings, router.ChipViewTasks},
	},
	model.RoleDoctor: {
		content:     "Xin chào bác sĩ! Tôi có thể giúp bạn xem danh sách chờ khám, lịch sử khám, kê đơn và chỉ định xét nghiệm.",
		suggestions: []string{router.ChipWaitingList, router.ChipHistory, router.ChipPrescribe, router.ChipViewTasks},
	},
	model.RoleNurse: {
		content:     "Xin chào! Tôi có thể giúp bạn nhập kết quả, theo dõi mẫu chờ xử lý và cập nhật tiến độ.",
		suggestions: []string{router.ChipEnterResults, router.ChipPendingSamples, router.ChipUpdateProgress, router.ChipViewTasks},
	},
	model.RoleTechnician: {
		content:     "Xin chào! Tôi có thể giúp bạn nhập kết quả xét nghiệm, kiểm tra thiết bị và theo dõi mẫu chờ xử lý.",
		suggestions: []string{router.ChipEnterResults, router.ChipPendingSamples, router.ChipCheckEquipment, router.ChipViewTasks},
	},
	model.RoleAdmin: {
		content:     "Xin chào quản trị viên! Tôi có thể giúp bạn xem tổng quan hệ thống, nhật ký, người dùng và sao lưu dữ liệu.",
		suggestions: []string{router.ChipOverview, router.ChipSystemLogs, router.ChipManageUsers, router.ChipBackup},
	},
	model.RolePatient: {
		content:     "Xin chào! Tôi có thể giúp bạn xem kết quả, đặt lịch hẹn và liên hệ phòng khám.",
		suggestions: []string{router.ChipViewResults, router.ChipBookVisit, router.ChipMyRecord, router.ChipContact},
	},
}

var defaultGreeting = greeting{
	content:     "Xin chào! Tôi là trợ lý phòng khám. Bạn cần hỗ trợ gì?",
	suggestions: []string{router.ChipGuide},
}

// Greeting returns the opening message for a role.
func (uc *implUseCase) Greeting(ctx context.Context, role model.Role) model.Message {
	g, ok := greetings[role]
	if !ok {
		g = defaultGreeting
	}
	return model.Message{
		Type:        model.MessageTypeAI,
		Content:     g.content,
		Suggestions: append([]string(nil), g.suggestions...),
	}
}
