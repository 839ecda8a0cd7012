// Package ui contains the Bubble Tea program that hosts a menu bar in the
// terminal. The Model owns message orchestration while the headless engine in
// internal/menubar owns every navigation decision.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are matched against a bubbles/key map and translated into
//     menubar.Key values; printable runes become type-ahead characters.
//   - Mouse events are resolved with bubblezone marks placed on every bar
//     entry and visible item. A press that hits no mark while a menu is open
//     is an outside click and closes the menu.
//
// Engine side effects:
//   - Each menubar.Result is traced through internal/logging/events.
//   - Activated actions reach the host through the engine's selection
//     callback and are executed by the internal/ui/command bus.
//   - Type-ahead reset timers come back as tea.Tick messages carrying the
//     timer generation; stale generations are ignored by the engine.
//   - Mouse all-motion tracking is switched on only while a menu is open and
//     dropped back to cell motion once everything closes.
package ui
