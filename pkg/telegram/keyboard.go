package telegram

// DefaultButtonsPerRow is how many chips NewReplyKeyboard puts on a row.
const DefaultButtonsPerRow = 2

// NewReplyKeyboard lays chips out row by row. Nil is returned for no chips so
// the previous keyboard is left untouched.
func NewReplyKeyboard(chips []string, perRow int) *ReplyMarkup {
	if len(chips) == 0 {
		return nil
	}
	if perRow <= 0 {
		perRow = DefaultButtonsPerRow
	}

	rows := make([][]KeyboardButton, 0, (len(chips)+perRow-1)/perRow)
	for i := 0; i < len(chips); i += perRow {
		end := min(i+perRow, len(chips))
		row := make([]KeyboardButton, 0, end-i)
		for _, chip := range chips[i:end] {
			row = append(row, KeyboardButton{Text: chip})
		}
		rows = append(rows, row)
	}
	return &ReplyMarkup{Keyboard: rows, ResizeKeyboard: true}
}

// RemoveKeyboard hides the current reply keyboard.
func RemoveKeyboard() *ReplyMarkup {
	return &ReplyMarkup{RemoveKeyboard: true}
}
