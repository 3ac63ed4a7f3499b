package logger

const MatchCreatedMsg = "新對局建立，畫布 %vx%v"
const MatchRestartMsg = "玩家按下空白鍵，重新開始對局"
const PointScoredMsg = "玩家 %d 得分！"
const MatchWonMsg = "玩家 %d 獲勝！比分 %d:%d"

const LoopStartMsg = "遊戲迴圈開始，每秒 %d 幀"
const LoopStopMsg = "遊戲迴圈結束"
const ScreenResizeMsg = "視窗大小改變：%dx%d"
const QuitKeyMsg = "玩家按下離開鍵"

const LevelReloadedMsg = "日誌等級更新為 %s"
