// internal/component/game_state.go
package component

// Session — состояние текущей игровой сессии
type Session struct {
	Score     int
	HighScore int // максимум за время работы процесса, не сбрасывается при рестарте
	Lives     int
	Paused    bool
	Restarts  int
}
