package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m mainLoopModel) View() string {
	if m.confirm != confirmNone {
		return m.viewConfirm()
	}

	switch m.screen {
	case screenCodebooks:
		return m.viewCodebooks()
	case screenCodebookCreate:
		return m.viewCodebookCreate()
	case screenEntries:
		return m.viewEntries()
	case screenEntryDetail:
		return m.viewEntryDetail()
	case screenEntryForm:
		return m.viewEntryForm()
	case screenGenerator:
		return m.viewGenerator()
	}

	return renderPage("ХРАНИЛИЩЕ", "", "")
}

func (m mainLoopModel) viewConfirm() string {
	subject := "записную книжку со всеми записями"
	if m.confirm == confirmEntry {
		subject = "запись"
	}

	box := overlayBoxStyle.Render("Удалить " + subject + "?\n\n  y: да │ n: нет")
	return appStyle.Render(box)
}

func (m mainLoopModel) viewCodebooks() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.codebooks) == 0 {
		b.WriteString("Записных книжек пока нет. Нажмите n, чтобы создать.\n")
	} else {
		nameColWidth := lipgloss.Width("Имя")
		for _, cb := range m.codebooks {
			if w := lipgloss.Width(cb.Name); w > nameColWidth {
				nameColWidth = w
			}
		}

		b.WriteString(fmt.Sprintf("  %-*s │ %s\n", nameColWidth, "Имя", "Создана"))
		b.WriteString("  " + strings.Repeat("─", nameColWidth) + "─┼─────────────────\n")
		for i, cb := range m.codebooks {
			cursor := " "
			if i == m.codebookIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-*s │ %s\n", cursor, nameColWidth, cb.Name, cb.CreatedAt.Format("2006-01-02 15:04")))
		}
	}

	m.appendStatus(&b)

	return renderPage(
		"ЗАПИСНЫЕ КНИЖКИ — "+m.session.username,
		strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: создать │ d: удалить │ g: генератор │ q: выйти из аккаунта",
	)
}

func (m mainLoopModel) viewCodebookCreate() string {
	var b strings.Builder
	b.WriteString("Имя │ [")
	b.WriteString(m.nameInput.View())
	b.WriteString("]\n")

	if m.creating {
		b.WriteString("\n[Сохранение...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("НОВАЯ ЗАПИСНАЯ КНИЖКА", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: сохранить")
}

func (m mainLoopModel) viewEntries() string {
	var b strings.Builder

	codebookName := ""
	if m.codebookIdx < len(m.codebooks) {
		codebookName = m.codebooks[m.codebookIdx].Name
	}

	b.WriteString("Фильтр │ [")
	b.WriteString(m.filterInput.View())
	b.WriteString("]\n\n")

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.entries) == 0 {
		if m.filter != "" || m.page > 0 {
			b.WriteString("Ничего не найдено.\n")
		} else {
			b.WriteString("Записей пока нет. Нажмите a, чтобы добавить.\n")
		}
	} else {
		for i, entry := range m.entries {
			cursor := " "
			if i == m.entryIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-30s │ %s\n", cursor, fitText(entry.Address, 30), fitText(valueOrDash(entry.Notes), 30)))
		}
	}

	b.WriteString(fmt.Sprintf("\nСтраница %d\n", m.page+1))
	m.appendStatus(&b)

	return renderPage(
		"ЗАПИСИ — "+codebookName,
		strings.TrimRight(b.String(), "\n"),
		"enter: детали │ a: добавить │ e: изменить │ d: удалить │ /: фильтр │ ←/→: страницы │ esc: назад",
	)
}

func (m mainLoopModel) viewEntryDetail() string {
	var b strings.Builder

	if m.entryIdx >= len(m.entries) {
		return renderPage("ДЕТАЛИ ЗАПИСИ", "-", "esc: назад")
	}
	entry := m.entries[m.entryIdx]

	password := maskedStyle.Render(maskPassword())
	if m.revealed != "" {
		password = m.revealed
	} else if m.revealBusy {
		password = "расшифровка..."
	}

	b.WriteString("Адрес   │ " + entry.Address + "\n")
	b.WriteString("Пароль  │ " + password + "\n")
	b.WriteString("Заметки │ " + valueOrDash(entry.Notes) + "\n")
	b.WriteString("Создана │ " + entry.CreatedAt.Format("2006-01-02 15:04") + "\n")

	m.appendStatus(&b)

	return renderPage(
		"ДЕТАЛИ ЗАПИСИ",
		strings.TrimRight(b.String(), "\n"),
		"r: показать пароль │ c: копировать │ esc: назад",
	)
}

func (m mainLoopModel) viewEntryForm() string {
	var b strings.Builder

	b.WriteString("Адрес   │ [" + m.formAddress.View() + "]\n")
	b.WriteString("Пароль  │ [" + m.formPass.View() + "]\n")
	b.WriteString("Заметки │\n")
	b.WriteString(m.formNotes.View())
	b.WriteString("\n")

	if m.formSaving {
		b.WriteString("\n[Сохранение...]\n")
	}
	if m.formErr != "" {
		b.WriteString("\nОшибка: " + m.formErr + "\n")
	}

	title := "НОВАЯ ЗАПИСЬ"
	if m.formEditing {
		title = "ИЗМЕНЕНИЕ ЗАПИСИ"
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ ctrl+g: сгенерировать пароль │ enter: сохранить │ esc: отмена",
	)
}

func (m mainLoopModel) viewGenerator() string {
	var b strings.Builder

	charset := "базовый (буквы и цифры)"
	if m.genExtended {
		charset = "расширенный (буквы, цифры и символы)"
	}

	b.WriteString("Длина   │ [" + m.genLenInput.View() + "]\n")
	b.WriteString("Набор   │ " + charset + "\n")

	if m.genResult != "" {
		b.WriteString("\nРезультат: " + m.genResult + "\n")
	}

	m.appendStatus(&b)

	return renderPage(
		"ГЕНЕРАТОР ПАРОЛЕЙ",
		strings.TrimRight(b.String(), "\n"),
		"enter: сгенерировать │ e: сменить набор │ c: копировать │ esc: назад",
	)
}

func (m mainLoopModel) appendStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
}
