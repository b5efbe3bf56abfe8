package search_adventures

import (
	"strings"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// fieldValues возвращает значения поля сюжета для шага фильтра
func fieldValues(adv domain.Adventure, stepID string) []string {
	switch stepID {
	case domain.StepBaseSetting:
		return adv.BaseSettings
	case domain.StepSubsetting:
		if adv.Subsetting == "" {
			return nil
		}
		return []string{adv.Subsetting}
	case domain.StepTone:
		return adv.Tones
	case domain.StepFocus:
		if adv.Focus == "" {
			return nil
		}
		return []string{adv.Focus}
	case domain.StepWorld:
		if adv.World == "" {
			return nil
		}
		return []string{adv.World}
	}
	return nil
}

// matchesStep проверяет сюжет против выбранных значений одного шага
// Сюжет без значения поля не проходит активный фильтр этого шага.
// Для тональности выбранное значение совпадает и с полной формой
// ("мрачная атмосфера"), и с короткой ("мрачная")
func matchesStep(adv domain.Adventure, stepID string, selected []string) bool {
	values := fieldValues(adv, stepID)
	if len(values) == 0 {
		return false
	}

	if stepID == domain.StepTone {
		tones := make(map[string]struct{}, len(values))
		for _, tone := range values {
			tones[strings.ToLower(tone)] = struct{}{}
		}
		for _, sel := range selected {
			lowered := strings.ToLower(sel)
			if _, ok := tones[lowered]; ok {
				return true
			}
			if _, ok := tones[domain.NormalizeTone(sel)]; ok {
				return true
			}
		}
		return false
	}

	for _, sel := range selected {
		for _, value := range values {
			if value == sel {
				return true
			}
		}
	}
	return false
}

// matchesFilters проверяет сюжет против всех шагов фильтра
// Шаги соединяются по И, значения внутри шага - по ИЛИ
func matchesFilters(adv domain.Adventure, filters map[string][]string) bool {
	for stepID, selected := range filters {
		if len(selected) == 0 {
			continue
		}
		if !matchesStep(adv, stepID, selected) {
			return false
		}
	}
	return true
}

// matchesQuery проверяет сюжет против текстового поиска
// Запрос режется на слова, каждое слово должно входить подстрокой
// в нормализованный текст сюжета
func matchesQuery(adv domain.Adventure, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	fields := []string{adv.Title, adv.Subsetting, adv.Focus, adv.World}
	fields = append(fields, adv.BaseSettings...)
	fields = append(fields, adv.Tones...)

	var b strings.Builder
	for _, field := range fields {
		if field == "" {
			continue
		}
		b.WriteString(domain.NormalizeForSearch(field))
		b.WriteByte(' ')
	}
	text := b.String()

	for _, word := range strings.Fields(domain.NormalizeForSearch(query)) {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}

// stepOptions возвращает опции шага, доступные при текущем выборе
// Сюжеты фильтруются по всем остальным шагам (свой шаг не сужает сам себя),
// затем собираются значения поля. Для тональности значения дополнительно
// пересекаются со списком допустимых тагглов
func stepOptions(adventures []domain.Adventure, stepID string, filters map[string][]string) []string {
	otherFilters := make(map[string][]string, len(filters))
	for key, selected := range filters {
		if key != stepID {
			otherFilters[key] = selected
		}
	}

	seen := make(map[string]struct{})
	options := make([]string, 0)
	for _, adv := range adventures {
		if !matchesFilters(adv, otherFilters) {
			continue
		}
		for _, value := range fieldValues(adv, stepID) {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			options = append(options, value)
		}
	}

	if stepID != domain.StepTone {
		return options
	}

	// Тагглы тональности показываются только из допустимых пар
	// и только если встречаются в сюжетах
	available := make(map[string]struct{}, len(options))
	for _, opt := range options {
		available[strings.ToLower(opt)] = struct{}{}
	}

	toneOptions := make([]string, 0)
	for _, tone := range domain.ToneOptions() {
		lowered := strings.ToLower(tone)
		if _, ok := available[lowered]; ok {
			toneOptions = append(toneOptions, tone)
			continue
		}
		if _, ok := available[domain.NormalizeTone(tone)]; ok {
			toneOptions = append(toneOptions, tone)
		}
	}
	return toneOptions
}
