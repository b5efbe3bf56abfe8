package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// rawAdventure запись каталога как она приходит по проводу
// Каталог накопил исторические алиасы полей (genre/focus, universe/world,
// players/playerCount, durationHours/durationMinutes, price/priceLabel),
// здесь они приводятся к канонической доменной форме
type rawAdventure struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Logline     string `json:"logline"`

	BaseSetting json.RawMessage `json:"base_setting"`
	Subsetting  string          `json:"subsetting"`
	Tone        json.RawMessage `json:"tone"`
	Focus       string          `json:"focus"`
	Genre       json.RawMessage `json:"genre"`
	World       string          `json:"world"`
	Universe    string          `json:"universe"`

	DurationMinutes int    `json:"durationMinutes"`
	DurationHours   string `json:"durationHours"`
	Time            string `json:"time"`

	Players     string       `json:"players"`
	PlayerCount *playerCount `json:"playerCount"`

	Price      string `json:"price"`
	PriceLabel string `json:"priceLabel"`

	Tags               string `json:"tags"`
	IsBeginnerFriendly bool   `json:"isBeginnerFriendly"`
	AgeRating          string `json:"ageRating"`
}

type playerCount struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain приводит запись каталога к канонической форме
func (r rawAdventure) toDomain() domain.Adventure {
	adv := domain.Adventure{
		ID:                 r.ID,
		Title:              r.Title,
		Description:        r.Description,
		Logline:            r.Logline,
		BaseSettings:       stringList(r.BaseSetting, ",;"),
		Subsetting:         strings.TrimSpace(r.Subsetting),
		Tones:              stringList(r.Tone, ",;|"),
		Focus:              strings.TrimSpace(r.Focus),
		World:              strings.TrimSpace(r.World),
		DurationMinutes:    r.DurationMinutes,
		Players:            r.playerRange(),
		PriceLabel:         strings.TrimSpace(r.PriceLabel),
		Tags:               parseTags(r.Tags),
		IsBeginnerFriendly: r.IsBeginnerFriendly,
		AgeRating:          strings.TrimSpace(r.AgeRating),
	}

	// genre - старое имя поля "фокус игры"
	if adv.Focus == "" {
		if genres := stringList(r.Genre, ",;"); len(genres) > 0 {
			adv.Focus = genres[0]
		}
	}

	// universe - старое имя поля world, еще старее - тег "вселенная:..."
	if adv.World == "" {
		adv.World = strings.TrimSpace(r.Universe)
	}
	if adv.World == "" {
		adv.World = universeFromTags(r.Tags)
	}

	if adv.DurationMinutes == 0 {
		adv.DurationMinutes = durationFromLegacy(r.DurationHours, r.Time)
	}

	if adv.PriceLabel == "" {
		adv.PriceLabel = strings.TrimSpace(r.Price)
	}

	return adv
}

// stringList разбирает поле, которое исторически бывает и строкой, и списком
// Строка режется по разделителям из seps
func stringList(raw json.RawMessage, seps string) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimNonEmpty(list)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil
	}

	parts := strings.FieldsFunc(single, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	return trimNonEmpty(parts)
}

func trimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// parseTags разбирает строку тегов каталога
// Теги разделены символом "^", дубликаты (без учета регистра) отбрасываются
// с сохранением первого написания
func parseTags(tags string) []string {
	if tags == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var result []string
	for _, tag := range strings.Split(tags, "^") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, tag)
	}
	return result
}

// universeFromTags достает вселенную из тега вида "Вселенная: Средиземье"
func universeFromTags(tags string) string {
	for _, tag := range strings.Split(tags, "^") {
		tag = strings.TrimSpace(tag)
		if !strings.HasPrefix(strings.ToLower(tag), "вселенная:") {
			continue
		}
		parts := strings.SplitN(tag, ":", 2)
		if len(parts) == 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// durationFromLegacy выводит длительность из устаревших полей
// durationHours и time хранят часы строкой ("4", "4 часа", "4-5 часов") -
// берется первое число
func durationFromLegacy(fields ...string) int {
	for _, field := range fields {
		if hours := leadingInt(field); hours > 0 {
			return hours * 60
		}
	}
	return 0
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// playerRange выводит диапазон игроков из playerCount или строки "2-6"
func (r rawAdventure) playerRange() *domain.PlayerRange {
	if r.PlayerCount != nil && r.PlayerCount.Max > 0 {
		return &domain.PlayerRange{Min: r.PlayerCount.Min, Max: r.PlayerCount.Max}
	}

	s := strings.TrimSpace(r.Players)
	if s == "" {
		return nil
	}

	for _, sep := range []string{"-", "–", "—"} {
		if !strings.Contains(s, sep) {
			continue
		}
		parts := strings.SplitN(s, sep, 2)
		minV := leadingInt(parts[0])
		maxV := leadingInt(parts[1])
		if minV > 0 && maxV >= minV {
			return &domain.PlayerRange{Min: minV, Max: maxV}
		}
		return nil
	}

	if n := leadingInt(s); n > 0 {
		return &domain.PlayerRange{Min: n, Max: n}
	}
	return nil
}
