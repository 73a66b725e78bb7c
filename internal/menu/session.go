package menu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Menu choices.
const (
	ChoiceTeams  = 1
	ChoiceStats  = 2
	ChoiceExport = 3
	ChoiceExit   = 4
)

const menuText = `
==========Меню==========
1. Информация о Департаментах
2. Сводный отчёт по Департаментам
3. Сохранить сводный отчёт
4. Выход
========================
`

// MaxLineSize is the longest input line the menu accepts.
const MaxLineSize = 1024 * 1024

const (
	choicePrompt      = "\n>>Выбрать: "
	departmentsPrompt = "\n>>Введите имена Департаментов через пробел (нажмите <Enter> для всех департаментов): "
)

// Session is one run of the interactive menu.
type Session struct {
	Actions
	In io.Reader
}

// Run shows the menu until the user exits or input ends. Unknown choices
// re-prompt silently. Validation and export failures are reported to the user
// and the menu continues; any other error ends the session and is returned.
func (s *Session) Run() error {
	scanner := bufio.NewScanner(s.In)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for {
		s.print(menuText)
		s.print(choicePrompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}

		var actionErr error
		switch choice {
		case ChoiceTeams, ChoiceStats:
			s.print(departmentsPrompt)
			if !scanner.Scan() {
				return scanner.Err()
			}
			names := strings.Fields(scanner.Text())
			if choice == ChoiceTeams {
				actionErr = s.ShowTeams(names...)
			} else {
				actionErr = s.ShowStats(names...)
			}
		case ChoiceExport:
			actionErr = s.Export()
		case ChoiceExit:
			return nil
		default:
			continue
		}

		if actionErr == nil {
			continue
		}
		if !IsRecoverable(actionErr) {
			return actionErr
		}
		log.Printf("menu action %d failed: %v", choice, actionErr)
		s.print("\n" + actionErr.Error() + "\n")
	}
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.Out, text)
}
