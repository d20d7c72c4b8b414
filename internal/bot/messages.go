package bot

// Chat-visible messages. The group is Taiwanese, so the bot speaks Chinese.
const (
	MsgBotStarted        = "✅ Bot 已啟動"
	MsgPollAlreadyActive = "⚠️ 已有投票進行中，先 /close 再開新的"
	MsgRadarLoadFailed   = "❌ 雷達圖載入失敗，請稍後再試"
)

// Internal failures surfaced to the chat without details.
const (
	MsgInternalError   = "❌ 發生內部錯誤，請稍後再試"
	MsgFailedOpenPoll  = "❌ 發起投票失敗，請稍後再試"
	MsgFailedClosePoll = "❌ 結束投票失敗，請稍後再試"
)
