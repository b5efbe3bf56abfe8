package domain

// Tier тариф игры
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// IsValid проверяет, что тариф известен
func (t Tier) IsValid() bool {
	return t == TierStandard || t == TierPremium
}

// pricing цена за игрока по тарифу, в рублях
var pricing = map[Tier]int{
	TierStandard: 1000,
	TierPremium:  2600,
}

// PricePerPlayer возвращает цену за игрока для тарифа
// Неизвестный тариф дает 0 - это сознательный тихий дефолт, а не ошибка:
// цена пересчитывается на сервере и некорректный тариф не роняет форму
func PricePerPlayer(tier Tier) int {
	return pricing[tier]
}

// TotalPrice возвращает полную стоимость игры
func TotalPrice(tier Tier, players int) int {
	return PricePerPlayer(tier) * players
}
