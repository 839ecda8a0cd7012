package events

import "github.com/atomicstack/menubar/internal/logging"

type MenuTracer struct{}

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Open(entry string) {
	logging.Trace("menu.open", map[string]interface{}{"entry": entry})
}

func (MenuTracer) Close(entry string) {
	logging.Trace("menu.close", map[string]interface{}{"entry": entry})
}

func (MenuTracer) Focus(entry string, open []string, focused string) {
	logging.Trace("menu.focus", map[string]interface{}{
		"entry":   entry,
		"open":    open,
		"focused": focused,
	})
}

func (MenuTracer) Select(id string) {
	logging.Trace("menu.select", map[string]interface{}{"id": id})
}

func (MenuTracer) Toggle(id string, checked bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"id": id, "checked": checked})
}

func (MenuTracer) TypeAhead(buffer string, gen int) {
	logging.Trace("menu.typeahead", map[string]interface{}{"buffer": buffer, "gen": gen})
}

func (MenuTracer) TypeAheadExpired(gen int, live bool) {
	logging.Trace("menu.typeahead-expired", map[string]interface{}{"gen": gen, "live": live})
}

func (MenuTracer) Reveal(query, id string) {
	logging.Trace("menu.reveal", map[string]interface{}{"query": query, "id": id})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) MouseMode(allMotion bool) {
	logging.Trace("ui.mouse-mode", map[string]interface{}{"allMotion": allMotion})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
