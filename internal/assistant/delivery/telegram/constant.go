package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	msgHelp = "ℹ️ Hướng dẫn sử dụng:\n" +
		"• Gõ câu hỏi hoặc chọn một gợi ý bên dưới.\n" +
		"• Ghi việc cần làm, ví dụ: \"Nhắc tôi họp lúc 14:30 ngày mai, khẩn cấp\".\n" +
		"• /reset để bắt đầu cuộc trò chuyện mới."
	msgReset = "🔄 Đã bắt đầu cuộc trò chuyện mới."
	msgError = "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."
)
