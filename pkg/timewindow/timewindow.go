// Package timewindow вычисляет границы календарных окон (день, неделя, месяц).
//
// Календарём служит Location переданного значения time.Time: чтобы получить
// окна в часовом поясе барбершопа, передавайте t.In(loc). Границы строятся
// через time.Date, поэтому переходы на летнее время и длина месяцев
// (включая 29 февраля) учитываются автоматически.
package timewindow

import "time"

// Window замкнутый интервал [Start, End] с точностью до секунды
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains проверяет, что t попадает в окно (обе границы включительно)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Day окно календарного дня, содержащего t
func Day(t time.Time) Window {
	return Window{Start: StartOfDay(t), End: EndOfDay(t)}
}

// Week окно недели (понедельник - воскресенье), содержащей t
func Week(t time.Time) Window {
	return Window{Start: StartOfWeek(t), End: EndOfWeek(t)}
}

// Month окно календарного месяца, содержащего t
func Month(t time.Time) Window {
	return Window{Start: StartOfMonth(t), End: EndOfMonth(t)}
}

// StartOfDay 00:00:00 дня, содержащего t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay 23:59:59 дня, содержащего t
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// StartOfWeek понедельник 00:00:00 недели, содержащей t
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-daysSinceMonday(t), 0, 0, 0, 0, t.Location())
}

// EndOfWeek воскресенье 23:59:59 недели, содержащей t
func EndOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-daysSinceMonday(t)+6, 23, 59, 59, 0, t.Location())
}

// StartOfMonth первое число месяца 00:00:00
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth последний день месяца 23:59:59
// День 0 следующего месяца нормализуется в последний день текущего
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 23, 59, 59, 0, t.Location())
}

// daysSinceMonday 0 для понедельника, 6 для воскресенья
func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
