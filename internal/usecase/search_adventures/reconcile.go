package search_adventures

import "github.com/questarium/QST-ScheduleService/internal/domain"

// reconcileHierarchy согласует иерархию базовых и конкретных сеттингов
// Направление зависит от того, какой шаг только что изменился:
//   - выбор конкретного сеттинга дотягивает его базовую категорию;
//   - смена базовых сеттингов сбрасывает осиротевшие конкретные
//
// Возвращает согласованные фильтры и сообщение о конфликте (пустая строка,
// если конфликта не было)
func reconcileHierarchy(filters map[string][]string, changedStep string) (map[string][]string, string) {
	result := copyFilters(filters)

	switch changedStep {
	case domain.StepSubsetting:
		reconcileUp(result)
		return result, ""
	case domain.StepBaseSetting:
		return result, reconcileDown(result)
	}
	return result, ""
}

// reconcileUp дотягивает базовые категории выбранных конкретных сеттингов
func reconcileUp(filters map[string][]string) {
	subs := filters[domain.StepSubsetting]
	if len(subs) == 0 {
		return
	}

	bases := filters[domain.StepBaseSetting]
	selected := make(map[string]struct{}, len(bases))
	for _, base := range bases {
		selected[base] = struct{}{}
	}

	for _, sub := range subs {
		base, ok := domain.BaseSettingFor(sub)
		if !ok {
			continue
		}
		if _, exists := selected[base]; exists {
			continue
		}
		selected[base] = struct{}{}
		bases = append(bases, base)
	}

	if len(bases) > 0 {
		filters[domain.StepBaseSetting] = bases
	}
}

// reconcileDown сбрасывает конкретные сеттинги, не входящие ни в один
// из выбранных базовых
func reconcileDown(filters map[string][]string) string {
	bases := filters[domain.StepBaseSetting]
	subs := filters[domain.StepSubsetting]
	if len(bases) == 0 || len(subs) == 0 {
		return ""
	}

	valid := make([]string, 0, len(subs))
	for _, sub := range subs {
		for _, base := range bases {
			if domain.IsChildSetting(base, sub) {
				valid = append(valid, sub)
				break
			}
		}
	}

	if len(valid) == len(subs) {
		return ""
	}

	if len(valid) == 0 {
		delete(filters, domain.StepSubsetting)
		return MsgAllSubsDropped
	}

	filters[domain.StepSubsetting] = valid
	return MsgSomeSubsDropped
}

func copyFilters(filters map[string][]string) map[string][]string {
	result := make(map[string][]string, len(filters))
	for key, selected := range filters {
		if len(selected) == 0 {
			continue
		}
		result[key] = append([]string(nil), selected...)
	}
	return result
}
