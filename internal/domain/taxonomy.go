package domain

import "strings"

// Идентификаторы шагов фасетного фильтра
const (
	StepBaseSetting = "base_setting"
	StepSubsetting  = "subsetting"
	StepTone        = "tone"
	StepFocus       = "focus"
	StepWorld       = "world"
)

// FilterStepIDs шаги фильтра в порядке прохождения
var FilterStepIDs = []string{StepBaseSetting, StepSubsetting, StepTone, StepFocus, StepWorld}

// BaseSettings базовые сеттинги
var BaseSettings = []string{
	"Реализм",
	"Фентези",
	"Фантастика",
	"Реализм + Фентези",
	"Реализм + Фантастика",
	"Фентези + Фантастика",
	"Реализм + Фентези + Фантастика",
}

// SettingRelations связи базовых и конкретных сеттингов
// Каждый конкретный сеттинг принадлежит ровно одной базовой категории
var SettingRelations = map[string][]string{
	"Реализм":                        {"История", "Современность", "Будущее"},
	"Фентези":                        {"Эпическое фентези", "Темное фентези", "Сказочное фентези"},
	"Фантастика":                     {"Твердая НФ", "Мягкая НФ", "Космическая НФ"},
	"Реализм + Фентези":              {"Городское фентези", "Фольклор", "Историческое фентези"},
	"Реализм + Фантастика":           {"Стимпанк", "Ретрофутуризм", "Киберпанк"},
	"Фентези + Фантастика":           {"Техномагия", "Научная фантазия", "Космоопера"},
	"Реализм + Фентези + Фантастика": {"Постапокалипсис", "Супергероика", "Странность"},
}

// TonePair пара противоположных тональностей одного таггла
type TonePair struct {
	Group   string
	Options [2]string
}

// TonePairs допустимые пары тональностей
// Опции шага "тональность" показываются только из этого списка
var TonePairs = []TonePair{
	{Group: "Светлая/Мрачная", Options: [2]string{"Светлая атмосфера", "Мрачная атмосфера"}},
	{Group: "Серьезная/Комедийная", Options: [2]string{"Серьезная атмосфера", "Комедийная атмосфера"}},
	{Group: "Реалистичная/Сказочная", Options: [2]string{"Реалистичная атмосфера", "Сказочная атмосфера"}},
	{Group: "Жестокая/Щадящая", Options: [2]string{"Жестокая атмосфера", "Щадящая атмосфера"}},
}

// FocusGenres фокус игры (жанр)
var FocusGenres = []string{
	"Приключение", "Экшен", "Военный", "Выживание", "Детектив",
	"Хоррор", "Мистика", "Драма", "Комедия", "Криминал",
	"Политический", "Шпионский", "Гротеск", "Катастрофа", "Путешествие",
}

// Worlds конкретные игровые вселенные
var Worlds = []string{
	"Вестерос", "Средиземье", "DnD Миры", "Тамриэль", "Город парового солнца",
}

// toneSuffix суффикс значений тональности
const toneSuffix = " атмосфера"

// SubSettings возвращает все конкретные сеттинги
func SubSettings() []string {
	subs := make([]string, 0, len(BaseSettings)*3)
	for _, base := range BaseSettings {
		subs = append(subs, SettingRelations[base]...)
	}
	return subs
}

// ToneOptions возвращает все значения тональности из допустимых пар
func ToneOptions() []string {
	options := make([]string, 0, len(TonePairs)*2)
	for _, pair := range TonePairs {
		options = append(options, pair.Options[0], pair.Options[1])
	}
	return options
}

// NormalizeSetting нормализует название сеттинга для сравнения
// Буквенные варианты (ё/е, э/е) и пунктуация не должны влиять на совпадение
func NormalizeSetting(s string) string {
	lowered := NormalizeForSearch(s)
	lowered = strings.ReplaceAll(lowered, "э", "е")

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'а' && r <= 'я':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeForSearch нормализует строку для текстового поиска (ё -> е)
func NormalizeForSearch(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "ё", "е")
}

// NormalizeTone убирает суффикс " атмосфера" и приводит к нижнему регистру
// Значение тональности "Мрачная атмосфера" совпадает и с "мрачная атмосфера",
// и с голым "мрачная"
func NormalizeTone(s string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), toneSuffix)
}

// BaseSettingFor возвращает базовый сеттинг для конкретного
func BaseSettingFor(sub string) (string, bool) {
	normalized := NormalizeSetting(sub)
	for _, base := range BaseSettings {
		for _, candidate := range SettingRelations[base] {
			if NormalizeSetting(candidate) == normalized {
				return base, true
			}
		}
	}
	return "", false
}

// IsChildSetting проверяет, что sub принадлежит базовому сеттингу base
func IsChildSetting(base, sub string) bool {
	normalized := NormalizeSetting(sub)
	for _, candidate := range SettingRelations[base] {
		if NormalizeSetting(candidate) == normalized {
			return true
		}
	}
	return false
}
